package core

// Action is a semantic game command, abstracted from physical key presses.
// The game only ever sees actions; the platform owns the key bindings.
type Action int

const (
	ActionNone Action = iota // No key pressed this frame
	ActionPlay               // Start from the menu, restart after game over
	ActionQuit               // Leave the game from the menu or game over screen
	ActionFlap               // Upward impulse while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	case ActionFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}
