// Package window creates the OpenGL window and delivers keyboard events.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/curvewalk/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	SDL  = "sdl"
	GLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	Backend string
}

// KeyHandler receives every key transition during PollEvents.
type KeyHandler func(input.KeyEvent)

// Backend is an OpenGL 4.1 core window with keyboard input.
type Backend interface {
	// SetKeyHandler installs h; it is called on the main thread from
	// PollEvents.
	SetKeyHandler(h KeyHandler)
	PollEvents()
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	// FramebufferSize returns the drawable size in pixels, which differs
	// from the window size on high-DPI displays.
	FramebufferSize() (int, int)
	Close()
}

// New opens a window using the backend named in cfg. An empty name selects
// SDL.
func New(cfg Config) (Backend, error) {
	switch cfg.Backend {
	case SDL, "":
		return NewSDL(cfg)
	case GLFW:
		return NewGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
