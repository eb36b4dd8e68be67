// Package scene prepares and renders the gym scene: a fixed list of
// primitive draws with their textures, materials and lights.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gym-scene/internal/engine/lighting"
	"github.com/Faultbox/gym-scene/internal/engine/material"
	"github.com/Faultbox/gym-scene/internal/engine/mesh"
	"github.com/Faultbox/gym-scene/internal/engine/texture"
	"github.com/Faultbox/gym-scene/internal/engine/transform"
	"github.com/Faultbox/gym-scene/pkg/math"
)

//go:embed data/gym.yaml
var gymYAML []byte

// White is the solid color of objects with neither a usable texture nor a
// color of their own.
var White = [4]float32{1, 1, 1, 1}

// TextureSpec names a texture file and the tag objects refer to it by.
type TextureSpec struct {
	Tag  string `yaml:"tag"`
	Path string `yaml:"path"`
}

// DrawCommand is one object of the scene.
type DrawCommand struct {
	Name  string    `yaml:"name"`
	Group string    `yaml:"group,omitempty"`
	Mesh  mesh.Kind `yaml:"mesh"`

	Scale    [3]float32 `yaml:"scale"`
	Rotation [3]float32 `yaml:"rotation"` // degrees
	Position [3]float32 `yaml:"position"`

	// Optional appearance. UVScale and Material stay in effect for later
	// commands that do not set their own.
	Color    *[4]float32 `yaml:"color,omitempty"`
	Material string      `yaml:"material,omitempty"`
	UVScale  *[2]float32 `yaml:"uv_scale,omitempty"`
	Texture  string      `yaml:"texture,omitempty"`
}

// Transform returns the model matrix of the command.
func (c *DrawCommand) Transform() math.Mat4 {
	return transform.Compose(math.V3(c.Scale), math.V3(c.Rotation), math.V3(c.Position))
}

// SolidColor returns the color used when no texture applies.
func (c *DrawCommand) SolidColor() [4]float32 {
	if c.Color == nil {
		return White
	}
	return *c.Color
}

// Definition is a complete scene description.
type Definition struct {
	Textures  []TextureSpec         `yaml:"textures"`
	Materials []material.Material   `yaml:"materials"`
	Lighting  bool                  `yaml:"lighting"`
	Lights    []lighting.PointLight `yaml:"lights"`
	Objects   []DrawCommand         `yaml:"objects"`
}

// Gym returns the built-in gym scene.
func Gym() (*Definition, error) {
	def, err := Parse(gymYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in scene: %w", err)
	}
	return def, nil
}

// LoadFile reads a scene definition from a YAML file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes and validates a YAML scene. Unknown keys are errors.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks that every tag an object refers to is declared and that
// the resource counts fit the shader.
func (d *Definition) Validate() error {
	var errs []error

	if len(d.Textures) > texture.MaxTextureUnits {
		errs = append(errs, fmt.Errorf("%d textures exceed the %d texture units", len(d.Textures), texture.MaxTextureUnits))
	}
	if len(d.Lights) > lighting.MaxPointLights {
		errs = append(errs, fmt.Errorf("%d lights exceed the %d light slots", len(d.Lights), lighting.MaxPointLights))
	}

	textures := make(map[string]bool, len(d.Textures))
	for i, t := range d.Textures {
		if t.Tag == "" || t.Path == "" {
			errs = append(errs, fmt.Errorf("texture %d: tag and path are required", i))
		}
		textures[t.Tag] = true
	}
	materials := make(map[string]bool, len(d.Materials))
	for i, m := range d.Materials {
		if m.Tag == "" {
			errs = append(errs, fmt.Errorf("material %d: tag is required", i))
		}
		materials[m.Tag] = true
	}

	for i, o := range d.Objects {
		if !o.Mesh.Valid() {
			errs = append(errs, fmt.Errorf("object %d (%s): no mesh", i, o.Name))
		}
		if o.Texture != "" && !textures[o.Texture] {
			errs = append(errs, fmt.Errorf("object %d (%s): undeclared texture %q", i, o.Name, o.Texture))
		}
		if o.Material != "" && !materials[o.Material] {
			errs = append(errs, fmt.Errorf("object %d (%s): undeclared material %q", i, o.Name, o.Material))
		}
	}

	return errors.Join(errs...)
}

// ActiveLights returns the number of lights switched on.
func (d *Definition) ActiveLights() int {
	n := 0
	for _, l := range d.Lights {
		if l.Active {
			n++
		}
	}
	return n
}
