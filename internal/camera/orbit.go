// Package camera provides the viewer's orbit camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians
	Yaw      float32 // radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera. Angles are in degrees.
func NewOrbitCamera(target mgl32.Vec3, distance, pitchDeg, yawDeg float32) *OrbitCamera {
	return &OrbitCamera{
		Target:          target,
		Distance:        distance,
		Pitch:           mgl32.DegToRad(pitchDeg),
		Yaw:             mgl32.DegToRad(yawDeg),
		MinDistance:     0.5,
		MaxDistance:     500,
		MinPitch:        mgl32.DegToRad(-85),
		MaxPitch:        mgl32.DegToRad(85),
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp, sp := cosSin(c.Pitch)
	cy, sy := cosSin(c.Yaw)
	return c.Target.Add(mgl32.Vec3{
		c.Distance * cp * sy,
		c.Distance * sp,
		c.Distance * cp * cy,
	})
}

// View returns the world-to-view matrix. The view looks down -Z.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// LocalToWorld returns the camera's local-to-world matrix in a left-handed
// frame: +X right, +Y up, +Z forward.
func (c *OrbitCamera) LocalToWorld() mgl32.Mat4 {
	return c.View().Inv().Mul4(mgl32.Scale3D(1, 1, -1))
}

// Projection returns a GL perspective matrix for the overlay pass.
func (c *OrbitCamera) Projection(fovYDeg, aspect, near float32) mgl32.Mat4 {
	far := c.Distance * 10
	if far < near*2 {
		far = near * 2
	}
	return mgl32.Perspective(mgl32.DegToRad(fovYDeg), aspect, near, far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the target on the XZ plane relative to the yaw.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01
	cy, sy := cosSin(c.Yaw)

	// Negate forward so a positive value moves toward the target.
	c.Target[0] += (-sy*forward + cy*right) * speed
	c.Target[2] += (-cy*forward - sy*right) * speed
	c.Target[1] += up * speed
}

func cosSin(rad float32) (float32, float32) {
	s, co := math.Sincos(float64(rad))
	return float32(co), float32(s)
}
