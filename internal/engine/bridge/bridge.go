// Package bridge translates scene state into the named uniforms of the
// scene shader.
package bridge

import (
	"github.com/Faultbox/gym-scene/internal/engine/lighting"
	"github.com/Faultbox/gym-scene/internal/engine/material"
	"github.com/Faultbox/gym-scene/internal/engine/shader"
	"github.com/Faultbox/gym-scene/pkg/math"
)

// Bridge writes scene state to a shader program.
type Bridge struct {
	u shader.Uniforms
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithDirtyTracking skips writes whose value equals the last value written
// to the same uniform.
func WithDirtyTracking() Option {
	return func(b *Bridge) {
		b.u = newDirtyUniforms(b.u)
	}
}

// New creates a bridge writing to u. A nil u turns every call into a no-op.
func New(u shader.Uniforms, opts ...Option) *Bridge {
	if u == nil {
		u = shader.Nop{}
	}
	b := &Bridge{u: u}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetModelMatrix sets the object transform.
func (b *Bridge) SetModelMatrix(m math.Mat4) {
	b.u.SetMat4(shader.Model, m)
}

// SetViewProjection sets the camera matrices and the eye position used for
// specular highlights.
func (b *Bridge) SetViewProjection(view, projection math.Mat4, eye math.Vec3) {
	b.u.SetMat4(shader.View, view)
	b.u.SetMat4(shader.Projection, projection)
	b.u.SetVec3(shader.ViewPosition, eye.Array())
}

// SetSolidColor draws following objects in a flat RGBA color.
func (b *Bridge) SetSolidColor(rgba [4]float32) {
	b.u.SetBool(shader.UseTexture, false)
	b.u.SetVec4(shader.ObjectColor, rgba)
}

// SetTexture draws following objects with the texture bound to unit slot.
func (b *Bridge) SetTexture(slot int) {
	b.u.SetBool(shader.UseTexture, true)
	b.u.SetSampler2D(shader.ObjectTexture, int32(slot))
}

// SetUVScale scales texture coordinates.
func (b *Bridge) SetUVScale(u, v float32) {
	b.u.SetVec2(shader.UVScale, [2]float32{u, v})
}

// SetMaterial sets the surface parameters.
func (b *Bridge) SetMaterial(m material.Material) {
	b.u.SetVec3(shader.MaterialAmbientColor, m.AmbientColor)
	b.u.SetFloat(shader.MaterialAmbientStrength, m.AmbientStrength)
	b.u.SetVec3(shader.MaterialDiffuseColor, m.DiffuseColor)
	b.u.SetVec3(shader.MaterialSpecularColor, m.SpecularColor)
	b.u.SetFloat(shader.MaterialShininess, m.Shininess)
}

// SetLightingEnabled switches Phong shading on or off.
func (b *Bridge) SetLightingEnabled(enabled bool) {
	b.u.SetBool(shader.UseLighting, enabled)
}

// SetLights writes every point light slot. Lights beyond
// lighting.MaxPointLights are dropped and unused slots are switched off.
func (b *Bridge) SetLights(lights []lighting.PointLight) {
	buf := lighting.NewPointLightBuffer()
	buf.SetLights(lights)

	for i, l := range buf.Slots() {
		b.u.SetVec3(shader.PointLight(i, shader.LightPosition), l.Position)
		b.u.SetVec3(shader.PointLight(i, shader.LightAmbient), l.Ambient)
		b.u.SetVec3(shader.PointLight(i, shader.LightDiffuse), l.Diffuse)
		b.u.SetVec3(shader.PointLight(i, shader.LightSpecular), l.Specular)
		b.u.SetBool(shader.PointLight(i, shader.LightActive), l.Active)
	}
}
