package core

// RuntimeConfig contains host settings passed to the play model.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Host frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
