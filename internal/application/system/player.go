package system

import "github.com/younwookim/hellfall/internal/domain/entity"

// Dash starts a dash toward dir and queues the dash cue.
// Returns false without side effects while a dash is already running.
func Dash(p *entity.Player, dir entity.Direction, ev *Events) bool {
	if !p.StartDash(dir) {
		return false
	}
	ev.Play(CueDash)
	return true
}

// UpdatePlayer runs one player tick: locomotion, dash phases, anti-drift snap
func UpdatePlayer(w *World, p *entity.Player, intent entity.Vector, ev *Events) {
	UpdateBody(&p.Body, w.Tiles, intent)

	// Dash start and dash end are both marked by a ring of dust
	if mag := p.DashMagnitude(); mag == entity.DashLength || mag == entity.DashSettle {
		ev.Ring(w.Rand, p.Center(), DashBurstCount)
	}

	if p.Dash > 0 {
		p.Dash--
	} else if p.Dash < 0 {
		p.Dash++
	}

	if p.InBurst() {
		// Direction is locked at dash start
		p.Vel = p.DashDir.Unit().Mult(entity.DashSpeed)
		if p.DashMagnitude() == entity.DashDampAt {
			p.Vel = p.Vel.Mult(entity.DashDamping)
		}
		trail := entity.Vector{X: -p.DashSign() * w.Rand.Float64() * 3}
		ev.Particle(entity.ParticleDust, p.Center(), trail, w.Rand.Intn(ParticleMaxSeed+1))
	}

	if abs(p.Vel.X) < entity.SnapEpsilon {
		p.Vel.X = 0
	}
	if abs(p.Vel.Y) < entity.SnapEpsilon {
		p.Vel.Y = 0
	}

	switch {
	case intent.X != 0:
		p.SetAction("run")
	case intent.Y < 0:
		p.SetAction("runUp")
	case intent.Y > 0:
		p.SetAction("runDown")
	default:
		p.SetAction("idle")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
