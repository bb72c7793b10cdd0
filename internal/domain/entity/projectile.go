package entity

// Projectile constants
const (
	ProjectileMaxAge = 360 // ticks (6s at 60 Hz)
	ArrowSpeed       = 2.5
	BoltSpeed        = 1.5
)

// ProjectileKind distinguishes walker arrows from boss bolts (drawing only)
type ProjectileKind int

const (
	ProjectileArrow ProjectileKind = iota
	ProjectileBolt
)

// Projectile is a straight-line hazard with a lifetime
type Projectile struct {
	Kind ProjectileKind
	Pos  Vector
	Vel  Vector
	Age  int
}

// NewArrow creates a horizontal projectile. dir is -1 (left) or +1 (right).
func NewArrow(pos Vector, dir float64) *Projectile {
	return &Projectile{
		Kind: ProjectileArrow,
		Pos:  pos,
		Vel:  Vector{X: dir * ArrowSpeed},
	}
}

// NewBolt creates a projectile travelling along vel, fixed at spawn
func NewBolt(pos, vel Vector) *Projectile {
	return &Projectile{
		Kind: ProjectileBolt,
		Pos:  pos,
		Vel:  vel,
	}
}

// Advance moves the projectile one tick and ages it
func (p *Projectile) Advance() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Age++
}

// Expired returns true once the projectile has outlived ProjectileMaxAge
func (p *Projectile) Expired() bool {
	return p.Age > ProjectileMaxAge
}

// FacingLeft reports whether the sprite should be mirrored
func (p *Projectile) FacingLeft() bool {
	return p.Vel.X < 0
}
