package demo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/curvewalk/internal/engine/camera"
	"github.com/Faultbox/curvewalk/internal/engine/input"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(camera.NewFlyCamera(), 1)
	if s.Active != 1 {
		t.Errorf("Active = %d, want 1", s.Active)
	}
	if s.Axis != input.AxisNone {
		t.Errorf("Axis = %v, want none", s.Axis)
	}
	if !s.ShowGuides {
		t.Error("guides should start visible")
	}
}

func TestApplyToggleObject(t *testing.T) {
	s := NewState(camera.NewFlyCamera(), 1)
	s.Axis = input.AxisY

	s.Apply(input.CommandToggleObject, 2)
	if s.Active != 0 {
		t.Errorf("Active = %d, want 0", s.Active)
	}
	if s.Axis != input.AxisNone {
		t.Errorf("toggle should clear the axis, got %v", s.Axis)
	}

	s.Apply(input.CommandToggleObject, 2)
	if s.Active != 1 {
		t.Errorf("Active = %d, want 1", s.Active)
	}
}

func TestApplyToggleWithoutObjects(t *testing.T) {
	s := NewState(camera.NewFlyCamera(), 0)
	s.Apply(input.CommandToggleObject, 0)
	if s.Active != 0 {
		t.Errorf("Active = %d, want 0", s.Active)
	}
}

func TestApplyAxis(t *testing.T) {
	tests := []struct {
		cmd  input.Command
		want input.Axis
	}{
		{input.CommandAxisX, input.AxisX},
		{input.CommandAxisY, input.AxisY},
		{input.CommandAxisZ, input.AxisZ},
	}
	for _, tt := range tests {
		s := NewState(camera.NewFlyCamera(), 0)
		s.Apply(tt.cmd, 2)
		if s.Axis != tt.want {
			t.Errorf("%v: got %v, want %v", tt.cmd, s.Axis, tt.want)
		}
		if s.Active != 0 {
			t.Errorf("%v: axis change must not switch objects", tt.cmd)
		}
	}
}

func TestApplyCameraMovement(t *testing.T) {
	tests := []struct {
		cmd  input.Command
		want mgl32.Vec3
	}{
		{input.CommandMoveForward, mgl32.Vec3{0, 0, 2.95}},
		{input.CommandMoveBackward, mgl32.Vec3{0, 0, 3.05}},
		{input.CommandMoveLeft, mgl32.Vec3{-0.05, 0, 3}},
		{input.CommandMoveRight, mgl32.Vec3{0.05, 0, 3}},
	}
	for _, tt := range tests {
		s := NewState(camera.NewFlyCamera(), 0)
		s.Apply(tt.cmd, 2)
		if !s.Camera.Position.ApproxEqualThreshold(tt.want, 1e-5) {
			t.Errorf("%v: got %v, want %v", tt.cmd, s.Camera.Position, tt.want)
		}
	}
}

func TestApplyFlags(t *testing.T) {
	s := NewState(camera.NewFlyCamera(), 0)

	s.Apply(input.CommandToggleGuides, 1)
	if s.ShowGuides {
		t.Error("guides should be hidden after toggle")
	}
	s.Apply(input.CommandScreenshot, 1)
	if !s.ScreenshotRequested {
		t.Error("screenshot not requested")
	}
	s.Apply(input.CommandQuit, 1)
	if !s.Quit {
		t.Error("quit not set")
	}
}

func TestKeyHandler(t *testing.T) {
	s := NewState(camera.NewFlyCamera(), 1)
	h := s.KeyHandler(input.DefaultBindings(), func() int { return 2 })

	h(input.KeyEvent{Key: input.KeySpace, Action: input.Press})
	if s.Active != 0 {
		t.Fatalf("Active = %d, want 0 after space", s.Active)
	}

	// Releases and repeats are ignored.
	h(input.KeyEvent{Key: input.KeySpace, Action: input.Release})
	h(input.KeyEvent{Key: input.KeySpace, Action: input.Repeat})
	if s.Active != 0 {
		t.Errorf("Active = %d, want 0", s.Active)
	}

	h(input.KeyEvent{Key: input.KeyZ, Action: input.Press})
	if s.Axis != input.AxisZ {
		t.Errorf("Axis = %v, want z", s.Axis)
	}

	h(input.KeyEvent{Key: input.KeyUnknown, Action: input.Press})
	if s.Quit || s.Axis != input.AxisZ {
		t.Error("unbound key changed state")
	}
}
