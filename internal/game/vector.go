package game

// Vector2 is a 2D vector in screen space (y grows downward).
type Vector2 struct {
	X, Y float32
}

// Vec creates a new vector.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Unit directions.
var (
	Up   = Vector2{X: 0, Y: -1}
	Down = Vector2{X: 0, Y: 1}
	Left = Vector2{X: -1, Y: 0}
)
