package game

import "image/color"

//go:generate go tool mockgen -destination=mocks/draw_sink_mock.go -package=mocks . DrawSink

// DrawSink receives the primitives a Simulation emits when rendering.
// Primitives arrive in painter's order: later ones occlude earlier ones.
type DrawSink interface {
	FillRect(x, y, w, h float32, c color.RGBA)
	DrawText(text string, x, y float32)
	DrawDigits(n uint32, x, y float32)
}

// Prompts shown outside of play.
const (
	PromptMainMenu  = "want to play? (y/n)"
	PromptPlayAgain = "play again? (y/n)"
)
