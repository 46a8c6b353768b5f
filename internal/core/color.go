package core

import (
	"fmt"
	"image/color"
)

// Color is the foreground color of a screen cell as a "#rrggbb" hex string.
// The empty string means the terminal default.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// RGB converts an RGBA value to a cell color. Alpha is ignored since
// terminal cells are opaque.
func RGB(c color.RGBA) Color {
	return Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
