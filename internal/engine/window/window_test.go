package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/curvewalk/internal/engine/input"
)

func TestSDLKeyMapping(t *testing.T) {
	tests := []struct {
		sc   sdl.Scancode
		want input.Key
	}{
		{sdl.SCANCODE_ESCAPE, input.KeyEscape},
		{sdl.SCANCODE_SPACE, input.KeySpace},
		{sdl.SCANCODE_UP, input.KeyUp},
		{sdl.SCANCODE_D, input.KeyD},
		{sdl.SCANCODE_F1, input.KeyUnknown},
	}
	for _, tt := range tests {
		if got := sdlKey(tt.sc); got != tt.want {
			t.Errorf("sdlKey(%d) = %v, want %v", tt.sc, got, tt.want)
		}
	}
}

func TestSDLAction(t *testing.T) {
	if got := sdlAction(sdl.KEYDOWN, 0); got != input.Press {
		t.Errorf("keydown: got %v, want press", got)
	}
	if got := sdlAction(sdl.KEYDOWN, 1); got != input.Repeat {
		t.Errorf("repeat: got %v, want repeat", got)
	}
	if got := sdlAction(sdl.KEYUP, 0); got != input.Release {
		t.Errorf("keyup: got %v, want release", got)
	}
}

func TestGLFWKeyMapping(t *testing.T) {
	tests := []struct {
		k    glfw.Key
		want input.Key
	}{
		{glfw.KeyEscape, input.KeyEscape},
		{glfw.KeyZ, input.KeyZ},
		{glfw.KeyLeft, input.KeyLeft},
		{glfw.KeyF1, input.KeyUnknown},
	}
	for _, tt := range tests {
		if got := glfwKey(tt.k); got != tt.want {
			t.Errorf("glfwKey(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestGLFWAction(t *testing.T) {
	if glfwAction(glfw.Press) != input.Press || glfwAction(glfw.Release) != input.Release || glfwAction(glfw.Repeat) != input.Repeat {
		t.Error("action mapping")
	}
}

func TestBackendKeyTablesAgree(t *testing.T) {
	if len(sdlKeys) != len(glfwKeys) {
		t.Errorf("sdl maps %d keys, glfw maps %d", len(sdlKeys), len(glfwKeys))
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New(Config{Backend: "vulkan"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
