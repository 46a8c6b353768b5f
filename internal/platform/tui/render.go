package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flyer/internal/core"
)

var (
	stylesMu    sync.Mutex
	colorStyles = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

// styleFor returns the cached foreground style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if st, ok := colorStyles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	colorStyles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
