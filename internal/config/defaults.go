package config

import (
	_ "embed"
)

//go:embed defaults/flyer.yaml
var defaultFlyerYAML []byte

// DefaultFlyerConfig returns the default configuration.
func DefaultFlyerConfig() FlyerConfig {
	return FlyerConfig{
		World: WorldConfig{
			Width:    1200,
			Height:   600,
			StepRate: 120,
			MaxFrame: 0.25,
		},
		Flyer: FlyerBody{
			StartX:       300,
			StartY:       300,
			Size:         30,
			FlySpeed:     400,
			GravityScale: 8,
			Color:        "#FFD700",
		},
		Barrier: BarrierConfig{
			Width:    30,
			Spacing:  300,
			GapSize:  150,
			GapBound: 50,
			Speed:    60,
			Color:    "#FFFFFF",
		},
		UI: UIConfig{
			TextOffset:  20,
			LineHeight:  40,
			ScoreOffset: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlyerYAML
}
