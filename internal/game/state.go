package game

// State is the top-level phase of a session.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StateDead
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Event is an input delivered by the host.
type Event int

const (
	EventNone    Event = iota
	EventFly           // Space - upward impulse
	EventConfirm       // Y - start or replay
	EventDecline       // N - leave the game
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventFly:
		return "Fly"
	case EventConfirm:
		return "Confirm"
	case EventDecline:
		return "Decline"
	default:
		return "Unknown"
	}
}
