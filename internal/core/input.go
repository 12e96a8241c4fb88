package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, W, Up
	ActionSelectA        // 1 - pick the first bird
	ActionSelectB        // 2 - pick the second bird
	ActionRestart        // R, Enter - reset after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionSelectA:
		return "SelectA"
	case ActionSelectB:
		return "SelectB"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
// Arrival order is kept so the first of two competing actions wins.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set records an action. Repeats of an action already in the frame are dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
