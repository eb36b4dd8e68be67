package mesh

import "fmt"

// Provider loads primitive meshes onto the GPU and draws them with the
// currently set uniforms.
type Provider interface {
	LoadPlane() error
	LoadBox() error
	LoadCylinder() error
	LoadSphere() error

	DrawPlane()
	DrawBox()
	DrawCylinder()
	DrawSphere()
}

// Load loads the mesh of kind k.
func Load(p Provider, k Kind) error {
	switch k {
	case Plane:
		return p.LoadPlane()
	case Box:
		return p.LoadBox()
	case Cylinder:
		return p.LoadCylinder()
	case Sphere:
		return p.LoadSphere()
	}
	return fmt.Errorf("cannot load mesh %v", k)
}

// Draw draws the mesh of kind k. It reports false for an unknown kind.
func Draw(p Provider, k Kind) bool {
	switch k {
	case Plane:
		p.DrawPlane()
	case Box:
		p.DrawBox()
	case Cylinder:
		p.DrawCylinder()
	case Sphere:
		p.DrawSphere()
	default:
		return false
	}
	return true
}
