package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-5
}

func TestFlyCameraMovement(t *testing.T) {
	tests := []struct {
		name string
		move func(*FlyCamera)
		want mgl32.Vec3
	}{
		{"forward", (*FlyCamera).MoveForward, mgl32.Vec3{0, 0, 2.95}},
		{"backward", (*FlyCamera).MoveBackward, mgl32.Vec3{0, 0, 3.05}},
		{"left", (*FlyCamera).MoveLeft, mgl32.Vec3{-0.05, 0, 3}},
		{"right", (*FlyCamera).MoveRight, mgl32.Vec3{0.05, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFlyCamera()
			tt.move(c)
			if !vecNear(c.Position, tt.want) {
				t.Errorf("got %v, want %v", c.Position, tt.want)
			}
		})
	}
}

func TestFlyCameraForwardBackCancel(t *testing.T) {
	c := NewFlyCamera()
	start := c.Position
	c.MoveForward()
	c.MoveRight()
	c.MoveBackward()
	c.MoveLeft()
	if !vecNear(c.Position, start) {
		t.Errorf("got %v, want %v", c.Position, start)
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewFlyCamera()
	v := c.ViewMatrix()

	eye := v.Mul4x1(c.Position.Vec4(1)).Vec3()
	if !vecNear(eye, mgl32.Vec3{}) {
		t.Errorf("eye in view space: got %v, want origin", eye)
	}

	// A point in front of the camera lands on -Z.
	ahead := v.Mul4x1(c.Position.Add(c.Front).Vec4(1)).Vec3()
	if !vecNear(ahead, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("point ahead: got %v, want (0,0,-1)", ahead)
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := NewFlyCamera()
	got := c.ProjectionMatrix(2)
	want := mgl32.Perspective(mgl32.DegToRad(39.6), 2, 0.1, 100)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
