// Package camera provides the orbit camera the scene is viewed through.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/gym-scene/pkg/math"
)

// Projection selects how the camera projects the scene.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Projection
	Projection Projection
	FOV        float32 // Vertical field of view, radians
	Near       float32
	Far        float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        45,
		Pitch:           math.Radians(25),
		FOV:             math.Radians(45),
		Near:            0.1,
		Far:             200,
		MinDistance:     2,
		MaxDistance:     150,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinPitch, cosPitch := math32.Sincos(c.Pitch)
	sinYaw, cosYaw := math32.Sincos(c.Yaw)

	return c.Center.Add(math.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the projection for a viewport of the given
// aspect ratio (width / height). The orthographic volume frames the same
// height at the center point as the perspective one.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if c.Projection == Orthographic {
		halfH := c.Distance * math32.Tan(c.FOV/2)
		halfW := halfH * aspect
		return math.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	}
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// SetProjection switches between perspective and orthographic projection.
func (c *OrbitCamera) SetProjection(p Projection) {
	c.Projection = p
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandleMovement pans the camera center point based on keyboard input.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sinYaw, cosYaw := math32.Sincos(c.Yaw)

	// negate forward so W moves "into" the scene
	c.Center.X += (-sinYaw*forward + cosYaw*right) * speed
	c.Center.Z += (-cosYaw*forward - sinYaw*right) * speed
	c.Center.Y += up * speed
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to see all of it.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)

	radius := hi.Sub(lo).Length() / 2
	c.Distance = radius / math32.Sin(c.FOV/2)
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
