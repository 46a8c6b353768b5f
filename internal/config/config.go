// Package config provides YAML-based configuration loading for the flyer
// game and its conversion into simulation parameters.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-flyer/internal/game"
)

// FlyerConfig contains all configuration for the game.
type FlyerConfig struct {
	World   WorldConfig   `yaml:"world"`
	Flyer   FlyerBody     `yaml:"flyer"`
	Barrier BarrierConfig `yaml:"barrier"`
	UI      UIConfig      `yaml:"ui"`
}

// WorldConfig defines the play field and the clock.
type WorldConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	StepRate int     `yaml:"step_rate"` // Fixed steps per second
	MaxFrame float64 `yaml:"max_frame"` // Clamp for elapsed host time, seconds
}

// FlyerBody defines the player entity.
type FlyerBody struct {
	StartX       float32 `yaml:"start_x"`
	StartY       float32 `yaml:"start_y"`
	Size         float32 `yaml:"size"`
	FlySpeed     float32 `yaml:"fly_speed"`
	GravityScale float32 `yaml:"gravity_scale"`
	Color        string  `yaml:"color"`
}

// BarrierConfig defines obstacle geometry and speed.
type BarrierConfig struct {
	Width    int     `yaml:"width"`
	Spacing  int     `yaml:"spacing"`
	GapSize  int     `yaml:"gap_size"`
	GapBound int     `yaml:"gap_bound"`
	Speed    float32 `yaml:"speed"`
	Color    string  `yaml:"color"`
}

// UIConfig defines where text and the score are placed.
type UIConfig struct {
	TextOffset  float32 `yaml:"text_offset"`
	LineHeight  float32 `yaml:"line_height"`
	ScoreOffset float32 `yaml:"score_offset"`
}

// FixedDT returns the simulation step in seconds.
func (c FlyerConfig) FixedDT() float32 {
	if c.World.StepRate <= 0 {
		return 0
	}
	return float32(1) / float32(c.World.StepRate)
}

// Params converts the configuration into validated simulation parameters.
func (c FlyerConfig) Params() (game.Params, error) {
	flyerColor, err := ParseColor(c.Flyer.Color)
	if err != nil {
		return game.Params{}, fmt.Errorf("config: flyer color: %w", err)
	}
	barrierColor, err := ParseColor(c.Barrier.Color)
	if err != nil {
		return game.Params{}, fmt.Errorf("config: barrier color: %w", err)
	}

	p := game.Params{
		ScreenWidth:  c.World.Width,
		ScreenHeight: c.World.Height,
		FixedDT:      c.FixedDT(),

		FlyerStart:   game.Vec(c.Flyer.StartX, c.Flyer.StartY),
		FlyerSize:    c.Flyer.Size,
		FlySpeed:     c.Flyer.FlySpeed,
		GravityScale: c.Flyer.GravityScale,
		FlyerColor:   flyerColor,

		BarrierWidth:   c.Barrier.Width,
		BarrierSpacing: c.Barrier.Spacing,
		GapSize:        c.Barrier.GapSize,
		GapBound:       c.Barrier.GapBound,
		BarrierSpeed:   c.Barrier.Speed,
		BarrierColor:   barrierColor,

		TextOffset:  c.UI.TextOffset,
		LineHeight:  c.UI.LineHeight,
		ScoreOffset: c.UI.ScoreOffset,
	}
	if err := p.Validate(); err != nil {
		return game.Params{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
