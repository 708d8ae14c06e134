package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionExplode        // Space
	ActionAdvance        // any other key on menu and end screens
	ActionQuit           // Esc, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionExplode:
		return "Explode"
	case ActionAdvance:
		return "Advance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a press or release of a key mapped to an action.
// Released events only matter for the four movement actions.
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// Press is shorthand for a pressed KeyEvent.
func Press(a Action) KeyEvent {
	return KeyEvent{Action: a, Pressed: true}
}

// Release is shorthand for a released KeyEvent.
func Release(a Action) KeyEvent {
	return KeyEvent{Action: a}
}
