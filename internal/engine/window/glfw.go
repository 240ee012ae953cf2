package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/curvewalk/internal/engine/input"
	"github.com/Faultbox/curvewalk/internal/logger"
)

// GLFWWindow wraps a GLFW window and its OpenGL context.
type GLFWWindow struct {
	config Config
	win    *glfw.Window
}

// NewGLFW creates a GLFW window with an OpenGL 4.1 core context.
func NewGLFW(cfg Config) (*GLFWWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Info("window created",
		zap.String("backend", GLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return &GLFWWindow{config: cfg, win: win}, nil
}

// SetKeyHandler registers h as the GLFW key callback.
func (w *GLFWWindow) SetKeyHandler(h KeyHandler) {
	if h == nil {
		w.win.SetKeyCallback(nil)
		return
	}
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		h(input.KeyEvent{Key: glfwKey(key), Action: glfwAction(action)})
	})
}

// PollEvents processes pending events, invoking the key callback.
func (w *GLFWWindow) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the window was asked to close.
func (w *GLFWWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SetShouldClose sets the close flag.
func (w *GLFWWindow) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

// SwapBuffers swaps the OpenGL buffers.
func (w *GLFWWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

// FramebufferSize returns the drawable size in pixels.
func (w *GLFWWindow) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *GLFWWindow) Close() {
	logger.Info("closing window", zap.String("backend", GLFW))
	w.win.Destroy()
	glfw.Terminate()
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeySpace:  input.KeySpace,
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.KeyX:      input.KeyX,
	glfw.KeyY:      input.KeyY,
	glfw.KeyZ:      input.KeyZ,
	glfw.KeyG:      input.KeyG,
	glfw.KeyP:      input.KeyP,
	glfw.KeyUp:     input.KeyUp,
	glfw.KeyDown:   input.KeyDown,
	glfw.KeyLeft:   input.KeyLeft,
	glfw.KeyRight:  input.KeyRight,
}

func glfwKey(k glfw.Key) input.Key {
	if key, ok := glfwKeys[k]; ok {
		return key
	}
	return input.KeyUnknown
}

func glfwAction(a glfw.Action) input.Action {
	switch a {
	case glfw.Release:
		return input.Release
	case glfw.Repeat:
		return input.Repeat
	default:
		return input.Press
	}
}
