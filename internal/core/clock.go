package core

import "time"

// Accumulator converts variable host frame times into whole fixed steps.
// Elapsed time is clamped to MaxFrame so a stall does not trigger a long
// catch-up burst; the unspent remainder carries over to the next frame.
type Accumulator struct {
	Step     float64 // Seconds per fixed step
	MaxFrame float64 // Largest elapsed time accepted per frame, in seconds
	acc      float64
}

// NewAccumulator creates an accumulator for the given step and clamp.
func NewAccumulator(step, maxFrame float64) *Accumulator {
	return &Accumulator{Step: step, MaxFrame: maxFrame}
}

// Advance adds one frame of elapsed time and returns the number of fixed
// steps to run now.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if a.Step <= 0 {
		return 0
	}
	dt := elapsed.Seconds()
	if dt < 0 {
		dt = 0
	}
	if a.MaxFrame > 0 && dt > a.MaxFrame {
		dt = a.MaxFrame
	}
	a.acc += dt

	steps := 0
	for a.acc >= a.Step {
		a.acc -= a.Step
		steps++
	}
	return steps
}

// Pending returns the time banked towards the next step, in seconds.
func (a *Accumulator) Pending() float64 {
	return a.acc
}

// Reset drops any banked time.
func (a *Accumulator) Reset() {
	a.acc = 0
}
