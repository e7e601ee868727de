// Package camera provides the orbit camera used to inspect the water surface.
package camera

import (
	gomath "math"

	"github.com/Faultbox/wavefield/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	FovY      float32 // radians
	Near, Far float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        40.0,
		RotationX:       0.4,
		RotationY:       0.0,
		MinDistance:     2.0,
		MaxDistance:     1000.0,
		MinPitch:        0.02,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            float32(gomath.Pi / 4),
		Near:            0.1,
		Far:             2000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.RotationX), float64(c.RotationY)
	offset := math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
	return c.Center.Add(offset.Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// ViewProj returns projection * view for a viewport of the given aspect ratio.
func (c *OrbitCamera) ViewProj(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far).Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = math.Clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on a box and backs off far enough to see
// its shorter side, looking down at a shallow angle across the water.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)
	size := min(hi.X-lo.X, hi.Z-lo.Z)
	c.Distance = math.Clamp(size*0.6, c.MinDistance, c.MaxDistance)
	c.RotationX = math.Clamp(0.35, c.MinPitch, c.MaxPitch)
	c.RotationY = 0
}
