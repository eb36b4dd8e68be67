package lighting

import "testing"

func TestAddLightRespectsCapacity(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{Active: true}) {
			t.Fatalf("AddLight(%d) = false, want true", i)
		}
	}
	if b.AddLight(PointLight{Active: true}) {
		t.Error("AddLight past capacity = true, want false")
	}
	if b.Count != MaxPointLights {
		t.Errorf("Count = %d, want %d", b.Count, MaxPointLights)
	}
}

func TestSetLightsTruncates(t *testing.T) {
	b := NewPointLightBuffer()
	b.SetLights(make([]PointLight, MaxPointLights+3))
	if b.Count != MaxPointLights || len(b.Lights) != MaxPointLights {
		t.Errorf("Count = %d, len = %d, want %d", b.Count, len(b.Lights), MaxPointLights)
	}
}

func TestSlotsPadWithInactive(t *testing.T) {
	b := NewPointLightBuffer()
	b.SetLights([]PointLight{
		{Position: [3]float32{16, 25, 1.5}, Active: true},
		{Position: [3]float32{-14, 25, -10}, Active: true},
	})

	slots := b.Slots()
	if slots[0].Position != [3]float32{16, 25, 1.5} {
		t.Errorf("slot 0 position = %v", slots[0].Position)
	}
	for i := 2; i < MaxPointLights; i++ {
		if slots[i].Active {
			t.Errorf("slot %d active, want inactive padding", i)
		}
	}
	if got := b.ActiveCount(); got != 2 {
		t.Errorf("ActiveCount() = %d, want 2", got)
	}
}

func TestClear(t *testing.T) {
	b := NewPointLightBuffer()
	b.AddLight(PointLight{Active: true})
	b.Clear()
	if b.Count != 0 || b.ActiveCount() != 0 {
		t.Errorf("after Clear: Count = %d, active = %d", b.Count, b.ActiveCount())
	}
}
