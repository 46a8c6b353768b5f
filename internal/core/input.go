package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionFly               // Space, Up, W - upward impulse
	ActionConfirm           // Y, Enter - start or replay
	ActionDecline           // N - leave from the menu or the score screen
	ActionQuit              // Q, Ctrl+C - exit immediately
	ActionScreenshot        // Ctrl+S - dump the screen to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFly:
		return "Fly"
	case ActionConfirm:
		return "Confirm"
	case ActionDecline:
		return "Decline"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two host frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
