package math

// Vec2 is a 2D vector. The scene uses it for texture UV scaling.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Mul returns the component-wise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Array returns the components as a fixed array for uniform upload.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}
