// Package trace records the GPU work of a frame without a GL context.
//
// Recorder stands in for the shader program, the mesh provider and the
// texture device at once, so a whole scene can be prepared and rendered
// headless and the resulting call sequence inspected or dumped.
package trace

import (
	"github.com/Faultbox/gym-scene/internal/engine/mesh"
	"github.com/Faultbox/gym-scene/internal/engine/texture"
	"github.com/Faultbox/gym-scene/pkg/math"
)

// Operations recorded by Recorder.
const (
	OpUniform = "uniform"
	OpLoad    = "load"
	OpDraw    = "draw"
	OpUpload  = "upload"
	OpBind    = "bind"
	OpDelete  = "delete"
)

// Call is one recorded operation. For uniforms Name is the uniform name;
// for mesh operations it is the mesh kind.
type Call struct {
	Op    string      `yaml:"op"`
	Name  string      `yaml:"name,omitempty"`
	Value interface{} `yaml:"value,omitempty"`
}

// Recorder records every call in order.
type Recorder struct {
	calls      []Call
	nextHandle uint32

	// LoadErr, when set, is returned by every mesh load.
	LoadErr error
	// UploadErr, when set, is returned by every texture upload.
	UploadErr error
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(op, name string, value interface{}) {
	r.calls = append(r.calls, Call{Op: op, Name: name, Value: value})
}

// Calls returns the recorded calls.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Reset forgets recorded calls. Texture handles keep counting.
func (r *Recorder) Reset() {
	r.calls = nil
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Writes returns the values written to a uniform, in order.
func (r *Recorder) Writes(name string) []interface{} {
	var out []interface{}
	for _, c := range r.calls {
		if c.Op == OpUniform && c.Name == name {
			out = append(out, c.Value)
		}
	}
	return out
}

// Last returns the last value written to a uniform.
func (r *Recorder) Last(name string) (interface{}, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		c := r.calls[i]
		if c.Op == OpUniform && c.Name == name {
			return c.Value, true
		}
	}
	return nil, false
}

// Draws returns the kinds drawn, in order.
func (r *Recorder) Draws() []string {
	var out []string
	for _, c := range r.calls {
		if c.Op == OpDraw {
			out = append(out, c.Name)
		}
	}
	return out
}

// Uniforms.

func (r *Recorder) SetMat4(name string, m math.Mat4)     { r.record(OpUniform, name, m) }
func (r *Recorder) SetVec2(name string, v [2]float32)    { r.record(OpUniform, name, v) }
func (r *Recorder) SetVec3(name string, v [3]float32)    { r.record(OpUniform, name, v) }
func (r *Recorder) SetVec4(name string, v [4]float32)    { r.record(OpUniform, name, v) }
func (r *Recorder) SetFloat(name string, v float32)      { r.record(OpUniform, name, v) }
func (r *Recorder) SetInt(name string, v int32)          { r.record(OpUniform, name, v) }
func (r *Recorder) SetBool(name string, v bool)          { r.record(OpUniform, name, v) }
func (r *Recorder) SetSampler2D(name string, unit int32) { r.record(OpUniform, name, unit) }

// Meshes.

func (r *Recorder) load(k mesh.Kind) error {
	if r.LoadErr != nil {
		return r.LoadErr
	}
	r.record(OpLoad, k.String(), nil)
	return nil
}

func (r *Recorder) LoadPlane() error    { return r.load(mesh.Plane) }
func (r *Recorder) LoadBox() error      { return r.load(mesh.Box) }
func (r *Recorder) LoadCylinder() error { return r.load(mesh.Cylinder) }
func (r *Recorder) LoadSphere() error   { return r.load(mesh.Sphere) }

func (r *Recorder) DrawPlane()    { r.record(OpDraw, mesh.Plane.String(), nil) }
func (r *Recorder) DrawBox()      { r.record(OpDraw, mesh.Box.String(), nil) }
func (r *Recorder) DrawCylinder() { r.record(OpDraw, mesh.Cylinder.String(), nil) }
func (r *Recorder) DrawSphere()   { r.record(OpDraw, mesh.Sphere.String(), nil) }

// Textures.

// Upload assigns handles 1, 2, 3... in upload order.
func (r *Recorder) Upload(img *texture.Image) (uint32, error) {
	if r.UploadErr != nil {
		return 0, r.UploadErr
	}
	r.nextHandle++
	r.record(OpUpload, "", [3]int{img.Width, img.Height, img.Channels})
	return r.nextHandle, nil
}

func (r *Recorder) Bind(unit int, handle uint32) {
	r.record(OpBind, "", [2]uint32{uint32(unit), handle})
}

func (r *Recorder) Delete(handle uint32) {
	r.record(OpDelete, "", handle)
}
