package system

import "github.com/younwookim/hellfall/internal/domain/entity"

// TileQuery is the tile map as seen by the simulation
type TileQuery interface {
	// PhysicsRectsAround returns solid rects near area
	PhysicsRectsAround(area entity.Rect) []entity.Rect
	// SolidCheck reports whether p lies inside a solid tile
	SolidCheck(p entity.Vector) bool
}

// UpdateBody advances b by intent plus its velocity and resolves tile
// collisions. The x axis is resolved completely before y, so on corners
// the horizontal clamp wins. A nil tiles query means no solids.
func UpdateBody(b *entity.Body, tiles TileQuery, intent entity.Vector) {
	// Collision flags only describe this tick
	b.Collisions = entity.Collisions{}

	move := intent.Add(b.Vel)

	moveX(b, tiles, move.X)
	moveY(b, tiles, move.Y)

	// Facing is sticky: zero horizontal intent keeps the previous value
	if intent.X > 0 {
		b.Flip = false
	} else if intent.X < 0 {
		b.Flip = true
	}

	b.AnimFrame++
}

// moveX applies the horizontal displacement and clamps the leading edge
func moveX(b *entity.Body, tiles TileQuery, dx float64) {
	b.Pos.X += dx
	if tiles == nil {
		return
	}

	r := b.Rect()
	for _, solid := range tiles.PhysicsRectsAround(r) {
		if !r.Overlaps(solid) {
			continue
		}
		if dx > 0 {
			r.X = solid.X - r.W
			b.Collisions.Right = true
		}
		if dx < 0 {
			r.X = solid.Right()
			b.Collisions.Left = true
		}
		b.Pos.X = r.X
	}
}

// moveY applies the vertical displacement and clamps the leading edge
func moveY(b *entity.Body, tiles TileQuery, dy float64) {
	b.Pos.Y += dy
	if tiles == nil {
		return
	}

	r := b.Rect()
	for _, solid := range tiles.PhysicsRectsAround(r) {
		if !r.Overlaps(solid) {
			continue
		}
		if dy > 0 {
			r.Y = solid.Y - r.H
			b.Collisions.Down = true
		}
		if dy < 0 {
			r.Y = solid.Bottom()
			b.Collisions.Up = true
		}
		b.Pos.Y = r.Y
	}
}

// Helper functions
func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// directionTo returns the unit vector from a to b and the distance.
// ok is false when the points coincide.
func directionTo(a, b entity.Vector) (dir entity.Vector, dist float64, ok bool) {
	d := b.Sub(a)
	dist = d.Length()
	if dist == 0 {
		return entity.Vector{}, 0, false
	}
	return d.Mult(1 / dist), dist, true
}
