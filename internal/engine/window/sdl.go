package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/curvewalk/internal/engine/input"
	"github.com/Faultbox/curvewalk/internal/logger"
)

// SDLWindow wraps an SDL2 window and OpenGL context.
type SDLWindow struct {
	config      Config
	sdlWindow   *sdl.Window
	glContext   sdl.GLContext
	onKey       KeyHandler
	shouldClose bool
}

// NewSDL creates an SDL2 window with an OpenGL 4.1 core context.
func NewSDL(cfg Config) (*SDLWindow, error) {
	w := &SDLWindow{config: cfg}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window exists. 4.1 is the newest
	// core profile macOS offers.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	logger.Info("window created",
		zap.String("backend", SDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// SetKeyHandler installs the key callback.
func (w *SDLWindow) SetKeyHandler(h KeyHandler) {
	w.onKey = h
}

// PollEvents drains the SDL event queue.
func (w *SDLWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true

		case *sdl.KeyboardEvent:
			if w.onKey == nil {
				continue
			}
			w.onKey(input.KeyEvent{
				Key:    sdlKey(e.Keysym.Scancode),
				Action: sdlAction(e.Type, e.Repeat),
			})
		}
	}
}

// ShouldClose reports whether the user or the program asked to quit.
func (w *SDLWindow) ShouldClose() bool {
	return w.shouldClose
}

// SetShouldClose sets the close flag.
func (w *SDLWindow) SetShouldClose(v bool) {
	w.shouldClose = v
}

// SwapBuffers swaps the OpenGL buffers.
func (w *SDLWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// FramebufferSize returns the drawable size in pixels.
func (w *SDLWindow) FramebufferSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// Close destroys the window and cleans up SDL2.
func (w *SDLWindow) Close() {
	logger.Info("closing window", zap.String("backend", SDL))

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

var sdlKeys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_SPACE:  input.KeySpace,
	sdl.SCANCODE_W:      input.KeyW,
	sdl.SCANCODE_A:      input.KeyA,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_D:      input.KeyD,
	sdl.SCANCODE_X:      input.KeyX,
	sdl.SCANCODE_Y:      input.KeyY,
	sdl.SCANCODE_Z:      input.KeyZ,
	sdl.SCANCODE_G:      input.KeyG,
	sdl.SCANCODE_P:      input.KeyP,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_LEFT:   input.KeyLeft,
	sdl.SCANCODE_RIGHT:  input.KeyRight,
}

func sdlKey(sc sdl.Scancode) input.Key {
	if k, ok := sdlKeys[sc]; ok {
		return k
	}
	return input.KeyUnknown
}

func sdlAction(eventType uint32, repeat uint8) input.Action {
	switch {
	case eventType == sdl.KEYUP:
		return input.Release
	case repeat != 0:
		return input.Repeat
	default:
		return input.Press
	}
}
