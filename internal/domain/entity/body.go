package entity

// Body is the physical state shared by every actor.
// Size is fixed after construction; position and velocity change every tick.
type Body struct {
	Kind       Kind
	Pos        Vector
	Size       Vector
	Vel        Vector
	Flip       bool // facing left
	Action     string
	Collisions Collisions

	// AnimFrame counts ticks since the current action started
	AnimFrame int
}

// NewBody creates a body in the idle action
func NewBody(kind Kind, pos, size Vector) Body {
	return Body{
		Kind:   kind,
		Pos:    pos,
		Size:   size,
		Action: "idle",
	}
}

// Rect returns the body's AABB at its current position
func (b *Body) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the center of the body's AABB
func (b *Body) Center() Vector {
	return b.Rect().Center()
}

// SetAction switches the animation key, restarting the frame counter on change
func (b *Body) SetAction(action string) {
	if action != b.Action {
		b.Action = action
		b.AnimFrame = 0
	}
}

// AnimationKey returns the "<kind>/<action>" lookup key for the asset provider
func (b *Body) AnimationKey() string {
	return b.Kind.String() + "/" + b.Action
}

// FacingLeft reports the sticky facing flag
func (b *Body) FacingLeft() bool {
	return b.Flip
}
