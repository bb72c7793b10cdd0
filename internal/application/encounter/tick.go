package encounter

import (
	"log"

	"github.com/younwookim/hellfall/internal/application/system"
	"github.com/younwookim/hellfall/internal/domain/entity"
)

// Tick advances the encounter by one fixed step.
// Order: leaves, walkers, lungers, bosses, player, projectiles, sparks,
// particles, then the level counters. Every pass walks a snapshot and
// builds the survivor list; spawns are merged after the pass.
func (e *Encounter) Tick(in system.InputState) {
	s := e.state
	e.ticks++

	if s.Screenshake > 0 {
		s.Screenshake--
	}

	system.SpawnLeaves(e.world, s.Leaves, &e.ev)
	e.flush()

	s.Walkers = e.updateEnemies(s.Walkers)
	s.Lungers = e.updateEnemies(s.Lungers)
	s.Bosses = e.updateEnemies(s.Bosses)

	if s.Cooldown > 0 {
		s.Cooldown--
	}

	// The player is frozen once every life is spent
	if s.Dead < 1 {
		if in.Dash != entity.DirNone {
			system.Dash(s.Player, in.Dash, &e.ev)
		}
		system.UpdatePlayer(e.world, s.Player, in.Movement(), &e.ev)
		e.flush()
	}

	e.updateProjectiles()

	s.Sparks = system.UpdateSparks(s.Sparks)
	s.Particles = system.UpdateParticles(s.Particles)

	e.updateCounters()
}

// updateEnemies ticks one enemy collection and returns the survivors.
// Contact with a surviving or dying enemy can still hurt the player.
func (e *Encounter) updateEnemies(enemies []*entity.Enemy) []*entity.Enemy {
	live := make([]*entity.Enemy, 0, len(enemies))
	for _, en := range enemies {
		if !system.UpdateEnemy(e.world, en, &e.ev) {
			live = append(live, en)
		}
		if e.PlayerVulnerable() && e.state.Player.Rect().Overlaps(en.Rect()) {
			e.hitPlayer()
		}
	}
	e.flush()
	return live
}

// updateProjectiles advances live projectiles, then admits the ones
// spawned this tick
func (e *Encounter) updateProjectiles() {
	s := e.state
	live := make([]*entity.Projectile, 0, len(s.Projectiles)+len(e.pending))
	for _, p := range s.Projectiles {
		switch system.AdvanceProjectile(e.world, p, e.PlayerVulnerable(), &e.ev) {
		case system.ProjectileAlive:
			live = append(live, p)
		case system.ProjectileHitPlayer:
			e.hitPlayer()
		}
	}
	e.flush()

	s.Projectiles = append(live, e.pending...)
	e.pending = e.pending[:0]
}

// updateCounters runs the level wipe and the death countdown
func (e *Encounter) updateCounters() {
	s := e.state

	if e.EnemiesLeft() == 0 {
		s.Transition++
		if s.Transition > TransitionMax {
			next := min(e.level+1, len(e.levels)-1)
			log.Printf("Level %d cleared", e.level)
			e.load(next)
			return
		}
	}
	if s.Transition < 0 {
		s.Transition++
	}

	if s.Dead >= 1 {
		s.Dead++
		if s.Dead > DeathNudgeAfter {
			s.Transition = min(s.Transition+1, TransitionMax)
		}
		if s.Dead > DeathResetAfter {
			log.Printf("Out of lives on level %d, restarting", e.level)
			e.load(0)
		}
	}
}
