package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gym-scene/internal/engine/bridge"
	"github.com/Faultbox/gym-scene/internal/engine/material"
	"github.com/Faultbox/gym-scene/internal/engine/mesh"
	"github.com/Faultbox/gym-scene/internal/engine/texture"
	"github.com/Faultbox/gym-scene/internal/logger"
)

var (
	// ErrNotPrepared is returned by Render before Prepare succeeded.
	ErrNotPrepared = errors.New("scene not prepared")
	// ErrAlreadyPrepared is returned by a second Prepare.
	ErrAlreadyPrepared = errors.New("scene already prepared")
	// ErrClosed is returned by Prepare and Render after Close. A closed
	// director cannot be reused.
	ErrClosed = errors.New("scene closed")
)

// State is the lifecycle stage of a Director.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// FrameStats counts what the last Render did.
type FrameStats struct {
	Draws    int `yaml:"draws"`
	Textured int `yaml:"textured"`
	Solid    int `yaml:"solid"`
	Skipped  int `yaml:"skipped"`
}

// Director loads the resources of a Definition once and replays its draw
// list every frame. It must be used from the thread owning the GL context.
type Director struct {
	def       *Definition
	textures  *texture.Registry
	materials *material.Table
	bridge    *bridge.Bridge
	meshes    mesh.Provider

	state      State
	loadErrs   []error
	unresolved []string
	frames     int
	last       FrameStats

	log *zap.Logger
}

// NewDirector creates a director for def. Nothing is loaded until Prepare.
func NewDirector(def *Definition, textures *texture.Registry, b *bridge.Bridge, meshes mesh.Provider) *Director {
	return &Director{
		def:       def,
		textures:  textures,
		materials: material.NewTable(),
		bridge:    b,
		meshes:    meshes,
		log:       logger.Named("scene"),
	}
}

// Prepare loads meshes and textures, defines materials and sets up lighting.
// A texture that fails to load is logged and skipped; objects using it fall
// back to their solid color. A mesh that fails to load aborts Prepare.
func (d *Director) Prepare() error {
	switch d.state {
	case StateReady:
		return ErrAlreadyPrepared
	case StateClosed:
		return ErrClosed
	}

	for _, k := range mesh.Kinds {
		if err := mesh.Load(d.meshes, k); err != nil {
			return fmt.Errorf("loading %v mesh: %w", k, err)
		}
	}

	for _, t := range d.def.Textures {
		if err := d.textures.Register(t.Path, t.Tag); err != nil {
			d.loadErrs = append(d.loadErrs, err)
			d.log.Warn("texture not loaded",
				zap.String("tag", t.Tag),
				zap.String("path", t.Path),
				zap.Error(err),
			)
		}
	}
	d.textures.BindAll()

	for _, m := range d.def.Materials {
		d.materials.Define(m)
	}

	d.bridge.SetLightingEnabled(d.def.Lighting)
	d.bridge.SetLights(d.def.Lights)

	d.reportUnresolved()

	d.state = StateReady
	d.log.Info("scene prepared",
		zap.Int("textures", d.textures.Len()),
		zap.Int("materials", d.materials.Len()),
		zap.Int("lights", d.def.ActiveLights()),
		zap.Int("objects", len(d.def.Objects)),
	)
	return nil
}

// reportUnresolved logs each tag that objects refer to but that has no
// loaded resource. Render falls back silently for these.
func (d *Director) reportUnresolved() {
	seen := make(map[string]bool)
	for _, o := range d.def.Objects {
		if o.Texture != "" && !seen["texture:"+o.Texture] {
			if _, ok := d.textures.FindSlot(o.Texture); !ok {
				seen["texture:"+o.Texture] = true
				d.unresolved = append(d.unresolved, "texture:"+o.Texture)
				d.log.Warn("objects use a missing texture, drawing solid color",
					zap.String("tag", o.Texture))
			}
		}
		if o.Material != "" && !seen["material:"+o.Material] {
			if _, ok := d.materials.Find(o.Material); !ok {
				seen["material:"+o.Material] = true
				d.unresolved = append(d.unresolved, "material:"+o.Material)
				d.log.Warn("objects use an undefined material",
					zap.String("tag", o.Material))
			}
		}
	}
}

// Render issues the draw list once. A missing resource never stops the
// remaining draws.
func (d *Director) Render() error {
	switch d.state {
	case StateUninitialized:
		return ErrNotPrepared
	case StateClosed:
		return ErrClosed
	}

	var stats FrameStats
	for i := range d.def.Objects {
		cmd := &d.def.Objects[i]

		d.bridge.SetModelMatrix(cmd.Transform())

		if cmd.UVScale != nil {
			d.bridge.SetUVScale(cmd.UVScale[0], cmd.UVScale[1])
		}
		if cmd.Material != "" {
			if m, ok := d.materials.Find(cmd.Material); ok {
				d.bridge.SetMaterial(m)
			}
		}

		if slot, ok := d.textureSlot(cmd.Texture); ok {
			d.bridge.SetTexture(slot)
			stats.Textured++
		} else {
			d.bridge.SetSolidColor(cmd.SolidColor())
			stats.Solid++
		}

		if mesh.Draw(d.meshes, cmd.Mesh) {
			stats.Draws++
		} else {
			stats.Skipped++
		}
	}

	d.frames++
	d.last = stats
	return nil
}

func (d *Director) textureSlot(tag string) (int, bool) {
	if tag == "" {
		return -1, false
	}
	return d.textures.FindSlot(tag)
}

// Close releases textures and meshes. The director cannot be reused.
func (d *Director) Close() {
	if d.state == StateClosed {
		return
	}
	d.textures.Release()
	if c, ok := d.meshes.(interface{ Close() }); ok {
		c.Close()
	}
	d.state = StateClosed
	d.log.Debug("scene closed", zap.Int("frames", d.frames))
}

// State returns the lifecycle stage.
func (d *Director) State() State { return d.state }

// Definition returns the scene being rendered.
func (d *Director) Definition() *Definition { return d.def }

// Textures returns the texture registry.
func (d *Director) Textures() *texture.Registry { return d.textures }

// Materials returns the material table.
func (d *Director) Materials() *material.Table { return d.materials }

// LoadErrors returns the texture failures of Prepare.
func (d *Director) LoadErrors() []error { return d.loadErrs }

// Unresolved returns the "texture:tag" and "material:tag" references that
// had no resource after Prepare.
func (d *Director) Unresolved() []string { return d.unresolved }

// Frames returns the number of completed renders.
func (d *Director) Frames() int { return d.frames }

// LastFrame returns the counts of the last render.
func (d *Director) LastFrame() FrameStats { return d.last }
