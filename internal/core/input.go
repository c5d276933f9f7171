package core

// Action represents a semantic game action, abstracted from physical key presses.
// Terminal keys, window keys and mouse clicks all map onto these.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, left click - flap
	ActionPause          // P - pause/unpause
	ActionConfirm        // Enter - start, continue, submit initials
	ActionBack           // Escape - back to the title screen
	ActionHelp           // ? - toggle key help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
