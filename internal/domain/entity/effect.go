package entity

import "math"

// Spark is a decelerating streak. Purely cosmetic.
type Spark struct {
	Pos   Vector
	Angle float64
	Speed float64
}

// NewSpark creates a spark
func NewSpark(pos Vector, angle, speed float64) *Spark {
	return &Spark{Pos: pos, Angle: angle, Speed: speed}
}

// Update advances the spark and returns true when it should be removed
func (s *Spark) Update() bool {
	s.Pos.X += math.Cos(s.Angle) * s.Speed
	s.Pos.Y += math.Sin(s.Angle) * s.Speed
	s.Speed = math.Max(0, s.Speed-0.1)
	return s.Speed == 0
}

// ParticleType selects the particle animation
type ParticleType string

const (
	ParticleDust ParticleType = "particle"
	ParticleLeaf ParticleType = "leaf"
)

// Animation lengths in ticks (frames × ticks per frame)
const (
	DustLifetime = 4 * 6
	LeafLifetime = 18 * 20
)

// Lifetime returns the total animation ticks for the particle type
func (t ParticleType) Lifetime() int {
	if t == ParticleLeaf {
		return LeafLifetime
	}
	return DustLifetime
}

// Particle is a non-looping animated mote
type Particle struct {
	Type  ParticleType
	Pos   Vector
	Vel   Vector
	Frame int
}

// NewParticle creates a particle starting at the given animation frame
func NewParticle(typ ParticleType, pos, vel Vector, frame int) *Particle {
	return &Particle{Type: typ, Pos: pos, Vel: vel, Frame: frame}
}

// Done reports whether the animation has played out
func (p *Particle) Done() bool {
	return p.Frame >= p.Type.Lifetime()-1
}

// Update advances the particle and returns true when it should be removed.
// The removal decision uses the state before this tick's advance.
func (p *Particle) Update() bool {
	kill := p.Done()
	p.Pos = p.Pos.Add(p.Vel)
	if p.Frame < p.Type.Lifetime()-1 {
		p.Frame++
	}
	if p.Type == ParticleLeaf {
		p.Pos.X += math.Sin(float64(p.Frame)*0.035) * 0.3
	}
	return kill
}

// LeafSpawner emits leaf particles inside a rect
type LeafSpawner struct {
	Area Rect
}
