package game

// CollisionBox is an axis-aligned bounding box.
// Min is the top-left corner and Max the bottom-right corner.
type CollisionBox struct {
	Min, Max Vector2
}

// NewBox creates a box from its top-left corner and its dimensions.
func NewBox(pos Vector2, w, h float32) CollisionBox {
	return CollisionBox{Min: pos, Max: Vector2{X: pos.X + w, Y: pos.Y + h}}
}

// Width returns the horizontal extent of the box.
func (b CollisionBox) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b CollisionBox) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Translate returns the box moved by d.
func (b CollisionBox) Translate(d Vector2) CollisionBox {
	return CollisionBox{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// CollidesWith reports whether the two boxes overlap.
// Boxes that only share an edge do not collide.
func (b CollisionBox) CollidesWith(other CollisionBox) bool {
	return b.Max.X > other.Min.X &&
		b.Min.X < other.Max.X &&
		b.Max.Y > other.Min.Y &&
		b.Min.Y < other.Max.Y
}
