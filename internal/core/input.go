package core

// Action represents a semantic game command, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Space - leave the welcome screen
	ActionReady            // Enter - release the ball, resume after a lost life
	ActionPause            // P, Escape - pause/unpause gameplay
	ActionRestart          // R - new game after game over
	ActionQuit             // Q - exit from the game over screen
	ActionLeft             // Left, A - move paddle left (held)
	ActionRight            // Right, D - move paddle right (held)
	ActionBackspace        // Backspace - erase the last initial
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionReady:
		return "Ready"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBackspace:
		return "Backspace"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation tick.
// It contains all actions that were triggered during this frame plus any
// characters typed, in order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Chars holds typed characters (used for initials entry).
	Chars []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Type appends a typed character to this frame.
func (f *InputFrame) Type(r rune) {
	f.Chars = append(f.Chars, r)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and characters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Chars = f.Chars[:0]
}
