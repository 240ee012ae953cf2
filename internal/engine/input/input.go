// Package input maps backend key events to demo commands.
package input

// Key is a backend-neutral key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyX
	KeyY
	KeyZ
	KeyG
	KeyP
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeySpace:   "space",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeyX:       "x",
	KeyY:       "y",
	KeyZ:       "z",
	KeyG:       "g",
	KeyP:       "p",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Action is what happened to a key.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

// KeyEvent is delivered by a window backend for every key transition.
type KeyEvent struct {
	Key    Key
	Action Action
}

// Axis selects the rotation axis of the active object.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "none"
	}
}

// Command is a user intent decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleObject
	CommandAxisX
	CommandAxisY
	CommandAxisZ
	CommandMoveForward
	CommandMoveBackward
	CommandMoveLeft
	CommandMoveRight
	CommandToggleGuides
	CommandScreenshot
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandToggleObject:
		return "toggle_object"
	case CommandAxisX:
		return "axis_x"
	case CommandAxisY:
		return "axis_y"
	case CommandAxisZ:
		return "axis_z"
	case CommandMoveForward:
		return "move_forward"
	case CommandMoveBackward:
		return "move_backward"
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandToggleGuides:
		return "toggle_guides"
	case CommandScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// Axis returns the rotation axis an axis command selects.
func (c Command) Axis() (Axis, bool) {
	switch c {
	case CommandAxisX:
		return AxisX, true
	case CommandAxisY:
		return AxisY, true
	case CommandAxisZ:
		return AxisZ, true
	}
	return AxisNone, false
}

// Bindings maps keys to commands.
type Bindings map[Key]Command

// DefaultBindings returns the standard keyboard layout. Movement has both
// WASD and arrow keys.
func DefaultBindings() Bindings {
	return Bindings{
		KeyEscape: CommandQuit,
		KeySpace:  CommandToggleObject,
		KeyX:      CommandAxisX,
		KeyY:      CommandAxisY,
		KeyZ:      CommandAxisZ,
		KeyW:      CommandMoveForward,
		KeyUp:     CommandMoveForward,
		KeyS:      CommandMoveBackward,
		KeyDown:   CommandMoveBackward,
		KeyA:      CommandMoveLeft,
		KeyLeft:   CommandMoveLeft,
		KeyD:      CommandMoveRight,
		KeyRight:  CommandMoveRight,
		KeyG:      CommandToggleGuides,
		KeyP:      CommandScreenshot,
	}
}

// Command decodes an event. Only presses produce commands; releases and
// auto-repeats return CommandNone.
func (b Bindings) Command(ev KeyEvent) Command {
	if ev.Action != Press {
		return CommandNone
	}
	return b[ev.Key]
}
