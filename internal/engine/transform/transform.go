// Package transform builds object model matrices.
package transform

import "github.com/Faultbox/gym-scene/pkg/math"

// Compose returns the model matrix T * Rz * Ry * Rx * S: the object is
// scaled, rotated about X, then Y, then Z, and finally translated.
// Rotation angles are in degrees.
func Compose(scale, rotationDegrees, position math.Vec3) math.Mat4 {
	s := math.Scale(scale.X, scale.Y, scale.Z)
	rx := math.RotateX(math.Radians(rotationDegrees.X))
	ry := math.RotateY(math.Radians(rotationDegrees.Y))
	rz := math.RotateZ(math.Radians(rotationDegrees.Z))
	t := math.Translate(position.X, position.Y, position.Z)

	return t.Mul(rz).Mul(ry).Mul(rx).Mul(s)
}
