package entity

import "github.com/jakecoffman/cp"

// Vector is a 2D float vector used for positions, velocities and displacements.
type Vector = cp.Vector

// ForAngle returns the unit vector at angle radians
func ForAngle(angle float64) Vector {
	return cp.ForAngle(angle)
}

// Kind tags the identity of a physical entity
type Kind int

const (
	KindPlayer Kind = iota
	KindWalker
	KindLunger
	KindBoss
)

// String returns the asset key prefix for the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWalker:
		return "skele"
	case KindLunger:
		return "spid"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Direction is one of the four cardinal dash directions
type Direction int

const (
	DirNone  Direction = -1
	DirRight Direction = 0
	DirUp    Direction = 1
	DirLeft  Direction = 2
	DirDown  Direction = 3
)

// Unit returns the unit vector for the direction (screen space, +Y is down)
func (d Direction) Unit() Vector {
	switch d {
	case DirRight:
		return Vector{X: 1}
	case DirUp:
		return Vector{Y: -1}
	case DirLeft:
		return Vector{X: -1}
	case DirDown:
		return Vector{Y: 1}
	default:
		return Vector{}
	}
}

// Rect is an axis-aligned bounding box (top-left + size)
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether two rects share interior area.
// Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains reports whether the point lies inside the rect (right/bottom exclusive)
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Collisions records which sides touched a solid during the current tick
type Collisions struct {
	Up, Down, Left, Right bool
}
