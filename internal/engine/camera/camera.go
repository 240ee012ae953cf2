// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FlyCamera is a free camera that looks along Front from Position.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	// Speed is the distance covered by one movement step.
	Speed float32

	FOV  float32 // vertical, radians
	Near float32
	Far  float32
}

// NewFlyCamera creates a camera at (0,0,3) looking down -Z.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Position: mgl32.Vec3{0, 0, 3},
		Front:    mgl32.Vec3{0, 0, -1},
		Up:       mgl32.Vec3{0, 1, 0},
		Speed:    0.05,
		FOV:      mgl32.DegToRad(39.6),
		Near:     0.1,
		Far:      100,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns a perspective projection for the given aspect
// ratio (width / height).
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Right returns the unit vector to the camera's right.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// MoveForward steps along Front.
func (c *FlyCamera) MoveForward() {
	c.Position = c.Position.Add(c.Front.Mul(c.Speed))
}

// MoveBackward steps against Front.
func (c *FlyCamera) MoveBackward() {
	c.Position = c.Position.Sub(c.Front.Mul(c.Speed))
}

// MoveLeft strafes left.
func (c *FlyCamera) MoveLeft() {
	c.Position = c.Position.Sub(c.Right().Mul(c.Speed))
}

// MoveRight strafes right.
func (c *FlyCamera) MoveRight() {
	c.Position = c.Position.Add(c.Right().Mul(c.Speed))
}
