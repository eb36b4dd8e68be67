package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gym-scene/internal/engine/lighting"
	"github.com/Faultbox/gym-scene/internal/engine/material"
	"github.com/Faultbox/gym-scene/internal/engine/shader"
	"github.com/Faultbox/gym-scene/internal/engine/trace"
	"github.com/Faultbox/gym-scene/pkg/math"
)

func last(t *testing.T, r *trace.Recorder, name string) interface{} {
	t.Helper()
	v, ok := r.Last(name)
	require.True(t, ok, "uniform %q never written", name)
	return v
}

func TestSolidColorAndTexture(t *testing.T) {
	r := trace.NewRecorder()
	b := New(r)

	b.SetSolidColor([4]float32{0.15, 0.15, 0.15, 1})
	assert.Equal(t, false, last(t, r, shader.UseTexture))
	assert.Equal(t, [4]float32{0.15, 0.15, 0.15, 1}, last(t, r, shader.ObjectColor))

	b.SetTexture(4)
	assert.Equal(t, true, last(t, r, shader.UseTexture))
	assert.Equal(t, int32(4), last(t, r, shader.ObjectTexture))
}

func TestMaterialUniforms(t *testing.T) {
	r := trace.NewRecorder()
	New(r).SetMaterial(material.Material{
		Tag:             "woodMAT",
		AmbientColor:    [3]float32{0.3, 0.25, 0.1},
		AmbientStrength: 0.8,
		DiffuseColor:    [3]float32{0.6, 0.5, 0.2},
		SpecularColor:   [3]float32{0.1, 0.2, 0.2},
		Shininess:       5,
	})

	assert.Equal(t, [3]float32{0.3, 0.25, 0.1}, last(t, r, shader.MaterialAmbientColor))
	assert.Equal(t, float32(0.8), last(t, r, shader.MaterialAmbientStrength))
	assert.Equal(t, [3]float32{0.6, 0.5, 0.2}, last(t, r, shader.MaterialDiffuseColor))
	assert.Equal(t, [3]float32{0.1, 0.2, 0.2}, last(t, r, shader.MaterialSpecularColor))
	assert.Equal(t, float32(5), last(t, r, shader.MaterialShininess))
}

func TestSetLightsWritesEverySlot(t *testing.T) {
	r := trace.NewRecorder()
	New(r).SetLights([]lighting.PointLight{
		{Position: [3]float32{16, 25, 1.5}, Diffuse: [3]float32{0.7, 0.7, 0.8}, Active: true},
	})

	for i := 0; i < lighting.MaxPointLights; i++ {
		for _, field := range []string{shader.LightPosition, shader.LightAmbient, shader.LightDiffuse, shader.LightSpecular, shader.LightActive} {
			assert.Len(t, r.Writes(shader.PointLight(i, field)), 1, "slot %d %s", i, field)
		}
	}
	assert.Equal(t, true, last(t, r, shader.PointLight(0, shader.LightActive)))
	assert.Equal(t, [3]float32{16, 25, 1.5}, last(t, r, shader.PointLight(0, shader.LightPosition)))
	assert.Equal(t, false, last(t, r, shader.PointLight(1, shader.LightActive)))
}

func TestSetLightsTruncates(t *testing.T) {
	r := trace.NewRecorder()
	lights := make([]lighting.PointLight, lighting.MaxPointLights+2)
	New(r).SetLights(lights)

	_, ok := r.Last(shader.PointLight(lighting.MaxPointLights, shader.LightActive))
	assert.False(t, ok)
}

func TestViewProjection(t *testing.T) {
	r := trace.NewRecorder()
	view := math.Translate(0, 0, -10)
	proj := math.Perspective(math.Radians(45), 16.0/9, 0.1, 100)
	New(r).SetViewProjection(view, proj, math.Vec3{Z: 10})

	assert.Equal(t, view, last(t, r, shader.View))
	assert.Equal(t, proj, last(t, r, shader.Projection))
	assert.Equal(t, [3]float32{0, 0, 10}, last(t, r, shader.ViewPosition))
}

func TestWritesAreUnconditionalByDefault(t *testing.T) {
	r := trace.NewRecorder()
	b := New(r)
	b.SetUVScale(2, 2)
	b.SetUVScale(2, 2)
	b.SetLightingEnabled(true)
	b.SetLightingEnabled(true)

	assert.Len(t, r.Writes(shader.UVScale), 2)
	assert.Len(t, r.Writes(shader.UseLighting), 2)
}

func TestDirtyTrackingSkipsRepeats(t *testing.T) {
	r := trace.NewRecorder()
	b := New(r, WithDirtyTracking())

	b.SetUVScale(2, 2)
	b.SetUVScale(2, 2)
	b.SetUVScale(3, 3)
	assert.Equal(t, []interface{}{[2]float32{2, 2}, [2]float32{3, 3}}, r.Writes(shader.UVScale))

	m := math.Translate(1, 2, 3)
	b.SetModelMatrix(m)
	b.SetModelMatrix(m)
	assert.Len(t, r.Writes(shader.Model), 1)

	b.SetTexture(0)
	b.SetSolidColor([4]float32{1, 1, 1, 1})
	b.SetTexture(0)
	assert.Equal(t, []interface{}{true, false, true}, r.Writes(shader.UseTexture))
	assert.Len(t, r.Writes(shader.ObjectTexture), 1)
}

func TestNilUniformsIsNoop(t *testing.T) {
	b := New(nil, WithDirtyTracking())
	assert.NotPanics(t, func() {
		b.SetModelMatrix(math.Identity())
		b.SetSolidColor([4]float32{1, 1, 1, 1})
		b.SetTexture(0)
		b.SetUVScale(1, 1)
		b.SetMaterial(material.Material{})
		b.SetLights(nil)
		b.SetLightingEnabled(true)
		b.SetViewProjection(math.Identity(), math.Identity(), math.Vec3{})
	})
}
