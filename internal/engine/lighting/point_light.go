// Package lighting provides the point lights of the scene shader.
package lighting

// MaxPointLights is the number of point light slots in the scene shader.
const MaxPointLights = 4

// PointLight is one Phong point light. Inactive lights occupy a slot but
// contribute nothing.
type PointLight struct {
	Position [3]float32 `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
	Active   bool       `yaml:"active"`
}

// PointLightBuffer holds the lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
	Count  int
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if b.Count >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	b.Count++
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
	b.Count = count
}

// Slots returns every shader slot. Slots past Count hold inactive lights so
// a previous upload never leaves a stale light switched on.
func (b *PointLightBuffer) Slots() [MaxPointLights]PointLight {
	var slots [MaxPointLights]PointLight
	copy(slots[:], b.Lights)
	return slots
}

// ActiveCount returns the number of lights with Active set.
func (b *PointLightBuffer) ActiveCount() int {
	n := 0
	for _, l := range b.Lights {
		if l.Active {
			n++
		}
	}
	return n
}
