package game

// RandomSource supplies uniform integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Barrier is a vertical obstacle with a passable gap.
// Position is the top-left corner of its horizontal extent.
type Barrier struct {
	Position Vector2
	Velocity Vector2
	GapTop   float32 // Top edge of the gap
	Passed   bool    // Whether the flyer has been scored for this barrier
	Upper    CollisionBox
	Lower    CollisionBox
	width    float32
}

// NewBarrier spawns a barrier at the right edge of the play field with
// a gap drawn from [GapBound, ScreenHeight-GapBound-GapSize).
// The parameters must have passed Validate.
func NewBarrier(p Params, rng RandomSource) Barrier {
	lo, hi := p.gapRange()
	gapTop := float32(lo + rng.IntN(hi-lo))

	w := float32(p.BarrierWidth)
	pos := Vector2{X: float32(p.ScreenWidth), Y: 0}
	lowerTop := gapTop + float32(p.GapSize)

	return Barrier{
		Position: pos,
		Velocity: Left.Scale(p.BarrierSpeed),
		GapTop:   gapTop,
		Upper:    NewBox(pos, w, gapTop),
		Lower:    NewBox(Vector2{X: pos.X, Y: lowerTop}, w, float32(p.ScreenHeight)-lowerTop),
		width:    w,
	}
}

// Advance drifts the barrier and both of its boxes by Velocity*dt.
func (b *Barrier) Advance(dt float32) {
	d := b.Velocity.Scale(dt)
	b.Position = b.Position.Add(d)
	b.Upper = b.Upper.Translate(d)
	b.Lower = b.Lower.Translate(d)
}

// Right returns the x coordinate of the trailing (right) edge.
func (b Barrier) Right() float32 {
	return b.Position.X + b.width
}

// Width returns the horizontal extent of the barrier.
func (b Barrier) Width() float32 {
	return b.width
}
