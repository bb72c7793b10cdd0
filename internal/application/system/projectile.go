package system

import (
	"math"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

// ProjectileOutcome is what happened to a projectile this tick.
// At most one removal reason applies per tick.
type ProjectileOutcome int

const (
	ProjectileAlive ProjectileOutcome = iota
	ProjectileHitWall
	ProjectileTimedOut
	ProjectileHitPlayer
)

// AdvanceProjectile moves p one tick and checks, in order, wall impact,
// age timeout and player impact. The first match wins. The player is
// only tested when vulnerable is set.
func AdvanceProjectile(w *World, p *entity.Projectile, vulnerable bool, ev *Events) ProjectileOutcome {
	p.Advance()

	if w.Tiles != nil && w.Tiles.SolidCheck(p.Pos) {
		// Sparks bounce back against the travel direction
		base := 0.0
		if p.Vel.X > 0 {
			base = math.Pi
		}
		for i := 0; i < WallSparkCount; i++ {
			ev.Spark(p.Pos, w.Rand.Float64()-0.5+base, 2+w.Rand.Float64())
		}
		return ProjectileHitWall
	}

	if p.Expired() {
		return ProjectileTimedOut
	}

	if vulnerable && w.Player != nil && w.Player.Rect().Contains(p.Pos) {
		return ProjectileHitPlayer
	}

	return ProjectileAlive
}

// UpdateSparks advances every spark and returns the survivors.
// The input slice is iterated as a snapshot; survivors go to a new slice.
func UpdateSparks(sparks []*entity.Spark) []*entity.Spark {
	live := make([]*entity.Spark, 0, len(sparks))
	for _, s := range sparks {
		if !s.Update() {
			live = append(live, s)
		}
	}
	return live
}

// UpdateParticles advances every particle and returns the survivors
func UpdateParticles(particles []*entity.Particle) []*entity.Particle {
	live := make([]*entity.Particle, 0, len(particles))
	for _, p := range particles {
		if !p.Update() {
			live = append(live, p)
		}
	}
	return live
}

// Leaf spawn tuning
const (
	leafSpawnDivisor = 49999
	leafMaxSeed      = 20
)

var leafVelocity = entity.Vector{X: -0.1, Y: 0.3}

// SpawnLeaves rolls each spawner once. Larger canopies drop leaves more often.
func SpawnLeaves(w *World, spawners []entity.LeafSpawner, ev *Events) {
	for _, s := range spawners {
		a := s.Area
		if w.Rand.Float64()*leafSpawnDivisor >= a.W*a.H {
			continue
		}
		pos := entity.Vector{
			X: a.X + w.Rand.Float64()*a.W,
			Y: a.Y + w.Rand.Float64()*a.H,
		}
		ev.Particle(entity.ParticleLeaf, pos, leafVelocity, w.Rand.Intn(leafMaxSeed+1))
	}
}
