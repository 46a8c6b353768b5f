package game

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidParams is returned when a parameter set cannot drive a session.
var ErrInvalidParams = errors.New("game: invalid parameters")

// Params holds the fixed constants of a session. All distances are in
// world units (pixels of the logical play field), speeds in units per second.
type Params struct {
	// Play field
	ScreenWidth  int
	ScreenHeight int
	FixedDT      float32 // Seconds per simulation step

	// Flyer
	FlyerStart   Vector2
	FlyerSize    float32
	FlySpeed     float32 // Upward speed set by an impulse
	GravityScale float32 // Added to vertical velocity every step
	FlyerColor   color.RGBA

	// Barriers
	BarrierWidth   int
	BarrierSpacing int
	GapSize        int
	GapBound       int     // Minimum distance between the gap and the ceiling/floor
	BarrierSpeed   float32 // Leftward speed
	BarrierColor   color.RGBA

	// HUD placement
	TextOffset  float32
	LineHeight  float32
	ScoreOffset float32
}

// DefaultParams returns the compiled-in constants.
func DefaultParams() Params {
	return Params{
		ScreenWidth:  1200,
		ScreenHeight: 600,
		FixedDT:      1.0 / 120.0,

		FlyerStart:   Vector2{X: 300, Y: 300},
		FlyerSize:    30,
		FlySpeed:     400,
		GravityScale: 8,
		FlyerColor:   color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},

		BarrierWidth:   30,
		BarrierSpacing: 300,
		GapSize:        150,
		GapBound:       50,
		BarrierSpeed:   60,
		BarrierColor:   color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},

		TextOffset:  20,
		LineHeight:  40,
		ScoreOffset: 20,
	}
}

// Validate checks that the parameters describe a playable field.
// Barrier generation needs a non-empty gap range, so
// 2*GapBound + GapSize must be smaller than ScreenHeight.
func (p Params) Validate() error {
	switch {
	case p.ScreenWidth <= 0 || p.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidParams, p.ScreenWidth, p.ScreenHeight)
	case p.FixedDT <= 0:
		return fmt.Errorf("%w: fixed timestep must be positive, got %v", ErrInvalidParams, p.FixedDT)
	case p.FlyerSize <= 0:
		return fmt.Errorf("%w: flyer size must be positive, got %v", ErrInvalidParams, p.FlyerSize)
	case p.BarrierWidth <= 0:
		return fmt.Errorf("%w: barrier width must be positive, got %d", ErrInvalidParams, p.BarrierWidth)
	case p.BarrierSpacing < 0:
		return fmt.Errorf("%w: barrier spacing must not be negative, got %d", ErrInvalidParams, p.BarrierSpacing)
	case p.BarrierSpacing+p.BarrierWidth >= p.ScreenWidth:
		return fmt.Errorf("%w: barrier width %d plus spacing %d must be smaller than screen width %d",
			ErrInvalidParams, p.BarrierWidth, p.BarrierSpacing, p.ScreenWidth)
	case p.BarrierSpeed <= 0:
		return fmt.Errorf("%w: barrier speed must be positive, got %v", ErrInvalidParams, p.BarrierSpeed)
	case p.GapSize <= 0 || p.GapBound < 0:
		return fmt.Errorf("%w: gap size %d and bound %d out of range", ErrInvalidParams, p.GapSize, p.GapBound)
	case 2*p.GapBound+p.GapSize >= p.ScreenHeight:
		return fmt.Errorf("%w: gap range is empty (2*%d + %d >= %d)", ErrInvalidParams, p.GapBound, p.GapSize, p.ScreenHeight)
	}
	return nil
}

// gapRange returns the half-open range GapTop is sampled from.
func (p Params) gapRange() (lo, hi int) {
	return p.GapBound, p.ScreenHeight - p.GapBound - p.GapSize
}
