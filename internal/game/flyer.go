package game

// Flyer is the player entity. Position is the top-left corner of a square
// of side Params.FlyerSize; Box always covers exactly that square.
type Flyer struct {
	Position Vector2
	Velocity Vector2
	Box      CollisionBox
	size     float32
}

// NewFlyer places a flyer at the start position with zero velocity.
func NewFlyer(p Params) Flyer {
	return Flyer{
		Position: p.FlyerStart,
		Box:      NewBox(p.FlyerStart, p.FlyerSize, p.FlyerSize),
		size:     p.FlyerSize,
	}
}

// ApplyImpulse replaces the vertical velocity with the upward fly speed.
// Previous vertical momentum is discarded.
func (f *Flyer) ApplyImpulse(p Params) {
	f.Velocity.Y = Up.Y * p.FlySpeed
}

// Advance integrates one step. Gravity is a flat per-step velocity
// increment, not acceleration*dt, so its strength depends on the timestep.
func (f *Flyer) Advance(p Params, dt float32) {
	f.Velocity = f.Velocity.Add(Down.Scale(p.GravityScale))
	f.Position = f.Position.Add(f.Velocity.Scale(dt))
	f.Box = NewBox(f.Position, f.size, f.size)
}

// HasPassed reports whether the flyer's x position is beyond the barrier's right edge.
func (f Flyer) HasPassed(b Barrier) bool {
	return f.Position.X > b.Right()
}

// CollidesWith reports whether the flyer overlaps either segment of the barrier.
func (f Flyer) CollidesWith(b Barrier) bool {
	return f.Box.CollidesWith(b.Upper) || f.Box.CollidesWith(b.Lower)
}

// Size returns the side length of the flyer square.
func (f Flyer) Size() float32 {
	return f.size
}
