package game

// ScoreTracker counts passed barriers. It never decreases.
type ScoreTracker struct {
	score uint32
}

// Increment adds one pass.
func (s *ScoreTracker) Increment() {
	s.score++
}

// Value returns the current score.
func (s ScoreTracker) Value() uint32 {
	return s.score
}
