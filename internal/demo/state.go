// Package demo holds the curve walk scene: sampled curves, objects and
// their transforms, keyboard state and asset loading. It has no GL
// dependency; package app draws it.
package demo

import (
	"github.com/Faultbox/curvewalk/internal/engine/camera"
	"github.com/Faultbox/curvewalk/internal/engine/input"
)

// State is everything the keyboard can change. It is only touched on the
// main thread, from the key handler during PollEvents and from the loop.
type State struct {
	Active     int // index into the scene's objects
	Axis       input.Axis
	Camera     *camera.FlyCamera
	ShowGuides bool
	Quit       bool

	// ScreenshotRequested is consumed by the loop after the next frame.
	ScreenshotRequested bool
}

// NewState returns the state at startup with guides visible.
func NewState(cam *camera.FlyCamera, active int) *State {
	return &State{
		Active:     active,
		Camera:     cam,
		ShowGuides: true,
	}
}

// Apply executes one command. objectCount bounds the active object index.
func (s *State) Apply(cmd input.Command, objectCount int) {
	if axis, ok := cmd.Axis(); ok {
		s.Axis = axis
		return
	}

	switch cmd {
	case input.CommandQuit:
		s.Quit = true
	case input.CommandToggleObject:
		if objectCount > 0 {
			s.Active = (s.Active + 1) % objectCount
		}
		s.Axis = input.AxisNone
	case input.CommandMoveForward:
		s.Camera.MoveForward()
	case input.CommandMoveBackward:
		s.Camera.MoveBackward()
	case input.CommandMoveLeft:
		s.Camera.MoveLeft()
	case input.CommandMoveRight:
		s.Camera.MoveRight()
	case input.CommandToggleGuides:
		s.ShowGuides = !s.ShowGuides
	case input.CommandScreenshot:
		s.ScreenshotRequested = true
	}
}

// KeyHandler returns a callback that decodes key events with b and applies
// them to s.
func (s *State) KeyHandler(b input.Bindings, objectCount func() int) func(input.KeyEvent) {
	return func(ev input.KeyEvent) {
		cmd := b.Command(ev)
		if cmd == input.CommandNone {
			return
		}
		s.Apply(cmd, objectCount())
	}
}
