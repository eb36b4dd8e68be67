package shader

import (
	"fmt"

	"github.com/Faultbox/gym-scene/pkg/math"
)

// Uniform names of the scene program.
const (
	Model        = "model"
	View         = "view"
	Projection   = "projection"
	ViewPosition = "viewPosition"

	ObjectColor   = "objectColor"
	ObjectTexture = "objectTexture"
	UseTexture    = "bUseTexture"
	UseLighting   = "bUseLighting"
	UVScale       = "UVscale"

	MaterialAmbientColor    = "material.ambientColor"
	MaterialAmbientStrength = "material.ambientStrength"
	MaterialDiffuseColor    = "material.diffuseColor"
	MaterialSpecularColor   = "material.specularColor"
	MaterialShininess       = "material.shininess"
)

// Point light fields, see PointLight.
const (
	LightPosition = "position"
	LightAmbient  = "ambient"
	LightDiffuse  = "diffuse"
	LightSpecular = "specular"
	LightActive   = "bActive"
)

// PointLight returns the uniform name of field in light slot i,
// e.g. "pointLights[1].diffuse".
func PointLight(i int, field string) string {
	return fmt.Sprintf("pointLights[%d].%s", i, field)
}

// Uniforms sets named uniforms of a shader program. Unknown names are
// ignored, as GL does for inactive uniforms.
type Uniforms interface {
	SetMat4(name string, m math.Mat4)
	SetVec2(name string, v [2]float32)
	SetVec3(name string, v [3]float32)
	SetVec4(name string, v [4]float32)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	// SetSampler2D points a sampler uniform at a texture unit.
	SetSampler2D(name string, unit int32)
}

// Nop is a Uniforms that discards every write. It stands in when no program
// is attached.
type Nop struct{}

func (Nop) SetMat4(string, math.Mat4)  {}
func (Nop) SetVec2(string, [2]float32) {}
func (Nop) SetVec3(string, [3]float32) {}
func (Nop) SetVec4(string, [4]float32) {}
func (Nop) SetFloat(string, float32)   {}
func (Nop) SetInt(string, int32)       {}
func (Nop) SetBool(string, bool)       {}
func (Nop) SetSampler2D(string, int32) {}
