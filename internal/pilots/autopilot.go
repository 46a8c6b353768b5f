package pilots

import "github.com/vovakirdan/tui-flyer/internal/game"

// Autopilot steers for the gap of the next barrier. It holds the flyer's
// bottom edge just above the bottom of the gap: each time the flyer sinks
// below that line while falling it flies again.
type Autopilot struct {
	Margin float32 // Distance kept above the bottom of the gap
}

// NewAutopilot returns an autopilot with the default margin.
func NewAutopilot() *Autopilot {
	return &Autopilot{Margin: 10}
}

// ID returns the unique identifier for this pilot.
func (*Autopilot) ID() string { return "autopilot" }

// Title returns the display name for this pilot.
func (*Autopilot) Title() string { return "Autopilot (tracks the next gap)" }

// Reset does nothing; decisions depend only on the current world.
func (*Autopilot) Reset() {}

// Decide flies when the flyer is falling and below the target line.
func (a *Autopilot) Decide(sim *game.Simulation) bool {
	f := sim.Flyer()
	if f.Velocity.Y < 0 {
		return false
	}
	bottom := f.Position.Y + f.Size()
	return bottom > a.target(sim)
}

// target returns the line the flyer's bottom edge should stay above.
func (a *Autopilot) target(sim *game.Simulation) float32 {
	p := sim.Params()
	for _, b := range sim.Barriers() {
		if b.Passed || b.Right() < sim.Flyer().Position.X {
			continue
		}
		return b.GapTop + float32(p.GapSize) - a.Margin
	}
	return float32(p.ScreenHeight) / 2
}
