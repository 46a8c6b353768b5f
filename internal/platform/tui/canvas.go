package tui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flyer/internal/core"
)

// FillRune is drawn for every cell covered by a rectangle.
const FillRune = '█'

// Canvas rasterises world-space draw primitives onto a cell screen.
// World coordinates are scaled so the whole play field fits the screen;
// a rectangle covers every cell it touches. Later primitives overwrite
// earlier ones.
type Canvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas mapping a worldW x worldH field onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH int) *Canvas {
	return &Canvas{
		screen: screen,
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

// Screen returns the target screen.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// col and row map world coordinates to (unclamped) cell coordinates.
func (c *Canvas) col(x float32) float64 {
	return float64(x) * float64(c.screen.Width()) / c.worldW
}

func (c *Canvas) row(y float32) float64 {
	return float64(y) * float64(c.screen.Height()) / c.worldH
}

// cell converts a scaled coordinate to an int, clamped just outside
// [0, limit] so far off-screen entities cannot overflow.
func cell(v float64, limit int) int {
	switch {
	case v < -1:
		return -1
	case v > float64(limit)+1:
		return limit + 1
	}
	return int(v)
}

// FillRect covers every cell the world rectangle touches.
func (c *Canvas) FillRect(x, y, w, h float32, col color.RGBA) {
	x0 := cell(math.Floor(c.col(x)), c.screen.Width())
	y0 := cell(math.Floor(c.row(y)), c.screen.Height())
	x1 := cell(math.Ceil(c.col(x+w)), c.screen.Width())
	y1 := cell(math.Ceil(c.row(y+h)), c.screen.Height())
	c.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), FillRune, core.RGB(col))
}

// DrawText writes text starting at the cell containing (x, y).
func (c *Canvas) DrawText(text string, x, y float32) {
	cx := cell(math.Floor(c.col(x)), c.screen.Width())
	cy := cell(math.Floor(c.row(y)), c.screen.Height())
	c.screen.DrawText(cx, cy, text, core.ColorDefault)
}

// DrawDigits writes n in decimal starting at the cell containing (x, y).
func (c *Canvas) DrawDigits(n uint32, x, y float32) {
	c.DrawText(strconv.FormatUint(uint64(n), 10), x, y)
}
