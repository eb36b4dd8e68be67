package bridge

import (
	"github.com/Faultbox/gym-scene/internal/engine/shader"
	"github.com/Faultbox/gym-scene/pkg/math"
)

// dirtyUniforms forwards a write only when the value differs from the last
// one written under the same name.
type dirtyUniforms struct {
	next shader.Uniforms
	last map[string]interface{}
}

func newDirtyUniforms(next shader.Uniforms) *dirtyUniforms {
	return &dirtyUniforms{next: next, last: make(map[string]interface{})}
}

func changed[T comparable](d *dirtyUniforms, name string, v T) bool {
	if prev, ok := d.last[name].(T); ok && prev == v {
		return false
	}
	d.last[name] = v
	return true
}

func (d *dirtyUniforms) SetMat4(name string, m math.Mat4) {
	if changed(d, name, m) {
		d.next.SetMat4(name, m)
	}
}

func (d *dirtyUniforms) SetVec2(name string, v [2]float32) {
	if changed(d, name, v) {
		d.next.SetVec2(name, v)
	}
}

func (d *dirtyUniforms) SetVec3(name string, v [3]float32) {
	if changed(d, name, v) {
		d.next.SetVec3(name, v)
	}
}

func (d *dirtyUniforms) SetVec4(name string, v [4]float32) {
	if changed(d, name, v) {
		d.next.SetVec4(name, v)
	}
}

func (d *dirtyUniforms) SetFloat(name string, v float32) {
	if changed(d, name, v) {
		d.next.SetFloat(name, v)
	}
}

func (d *dirtyUniforms) SetInt(name string, v int32) {
	if changed(d, name, v) {
		d.next.SetInt(name, v)
	}
}

func (d *dirtyUniforms) SetBool(name string, v bool) {
	if changed(d, name, v) {
		d.next.SetBool(name, v)
	}
}

// Samplers share the int cache since both are glUniform1i underneath.
func (d *dirtyUniforms) SetSampler2D(name string, unit int32) {
	if changed(d, name, unit) {
		d.next.SetSampler2D(name, unit)
	}
}
