package pilots

import "github.com/vovakirdan/tui-flyer/internal/game"

// Idle never flies. The flyer drops straight to the floor.
type Idle struct{}

// ID returns the unique identifier for this pilot.
func (*Idle) ID() string { return "idle" }

// Title returns the display name for this pilot.
func (*Idle) Title() string { return "Idle (never flies)" }

// Reset does nothing; Idle has no state.
func (*Idle) Reset() {}

// Decide always returns false.
func (*Idle) Decide(*game.Simulation) bool { return false }
