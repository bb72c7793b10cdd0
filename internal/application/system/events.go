package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

// Cue names an audio cue
type Cue string

const (
	CueDash  Cue = "dash"
	CueHit   Cue = "hit"
	CueShoot Cue = "shoot"
)

// Effect sizes
const (
	ShakeOnHit      = 16
	HitBurstCount   = 30
	TeleportBurst   = 40
	DashBurstCount  = 20
	ShotSparkCount  = 4
	WallSparkCount  = 4
	ParticleMaxSeed = 7 // dust particles start on a random frame in [0, ParticleMaxSeed]
)

// Events collects what behaviors spawn during a pass. The encounter
// merges it into the live collections once the pass is over, so no
// behavior ever appends to a collection that is being iterated.
type Events struct {
	Projectiles []*entity.Projectile
	Sparks      []*entity.Spark
	Particles   []*entity.Particle
	Cues        []Cue
	Shake       int
}

// Reset empties the outbox, keeping capacity
func (e *Events) Reset() {
	e.Projectiles = e.Projectiles[:0]
	e.Sparks = e.Sparks[:0]
	e.Particles = e.Particles[:0]
	e.Cues = e.Cues[:0]
	e.Shake = 0
}

// Play queues an audio cue
func (e *Events) Play(c Cue) {
	e.Cues = append(e.Cues, c)
}

// ShakeAtLeast raises the requested screenshake; smaller requests never lower it
func (e *Events) ShakeAtLeast(n int) {
	if n > e.Shake {
		e.Shake = n
	}
}

// Spark queues a spark
func (e *Events) Spark(pos entity.Vector, angle, speed float64) {
	e.Sparks = append(e.Sparks, entity.NewSpark(pos, angle, speed))
}

// Particle queues a particle
func (e *Events) Particle(typ entity.ParticleType, pos, vel entity.Vector, frame int) {
	e.Particles = append(e.Particles, entity.NewParticle(typ, pos, vel, frame))
}

// Projectile queues a projectile
func (e *Events) Projectile(p *entity.Projectile) {
	e.Projectiles = append(e.Projectiles, p)
}

// Burst emits n sparks flying out at random angles, each paired with a
// dust particle drifting the opposite way
func (e *Events) Burst(rng *rand.Rand, pos entity.Vector, n int) {
	for i := 0; i < n; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Float64() * 5
		e.Spark(pos, angle, 2+rng.Float64())
		vel := entity.ForAngle(angle + math.Pi).Mult(speed * 0.5)
		e.Particle(entity.ParticleDust, pos, vel, rng.Intn(ParticleMaxSeed+1))
	}
}

// DeathBurst is the hit burst plus two fast sparks thrown sideways
func (e *Events) DeathBurst(rng *rand.Rand, pos entity.Vector) {
	e.Burst(rng, pos, HitBurstCount)
	e.Spark(pos, 0, 5+rng.Float64())
	e.Spark(pos, math.Pi, 5+rng.Float64())
}

// Ring emits n dust particles around pos at speed 0.5 to 1
func (e *Events) Ring(rng *rand.Rand, pos entity.Vector, n int) {
	for i := 0; i < n; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := rng.Float64()*0.5 + 0.5
		e.Particle(entity.ParticleDust, pos, entity.ForAngle(angle).Mult(speed), rng.Intn(ParticleMaxSeed+1))
	}
}
