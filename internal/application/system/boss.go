package system

import (
	"math"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

// Teleport offsets from the player, chosen by the player's x
var (
	teleportFarRight = entity.Vector{X: -15, Y: -12}
	teleportFarLeft  = entity.Vector{X: 14, Y: -12}
	teleportMiddle   = entity.Vector{X: 14, Y: -8}
)

// TeleportOffset picks where the boss lands relative to a player at x
func TeleportOffset(x float64) entity.Vector {
	switch {
	case x >= entity.BossRightThreshold:
		return teleportFarRight
	case x <= entity.BossLeftThreshold:
		return teleportFarLeft
	case x > entity.BossLeftThreshold && x < entity.BossRightThreshold:
		return teleportMiddle
	default:
		// NaN
		return teleportFarRight
	}
}

// updateBoss runs the phase cycle: teleport next to the player, open a
// vulnerability window, then pepper the player with bolts until the
// next cycle. Reports death once every hit point is spent.
func updateBoss(w *World, e *entity.Enemy, ev *Events) bool {
	p := w.Player

	if e.PhaseTimer == 0 {
		e.PhaseTimer = entity.BossPhaseCycle
		e.TeleportTarget = p.Pos.Add(TeleportOffset(p.Pos.X))
		e.TeleportTimer = entity.BossTeleportDelay
		ev.ShakeAtLeast(ShakeOnHit)
		ev.Play(CueDash)
		ev.Burst(w.Rand, e.Center(), TeleportBurst)
	}

	if e.TeleportTimer == 0 {
		e.Pos = e.TeleportTarget
		e.TeleportTimer = entity.TimerDisarmed
		ev.ShakeAtLeast(ShakeOnHit)
		ev.Burst(w.Rand, e.Center(), TeleportBurst)
	}

	if e.PhaseTimer > entity.BossBoltLow && e.PhaseTimer < entity.BossBoltHigh && e.PhaseTimer%6 == 0 {
		castBolt(e, p, ev)
	}

	if e.PhaseTimer > 0 {
		e.PhaseTimer--
	}
	if e.TeleportTimer > 0 {
		e.TeleportTimer--
	}
	if e.GraceTimer > 0 {
		e.GraceTimer--
	}
	e.StaffPhase = (e.StaffPhase + 1) % entity.BossStaffCycle

	UpdateBody(&e.Body, w.Tiles, entity.Vector{})
	if e.TeleportTimer > 0 {
		e.SetAction("dash")
	} else {
		e.SetAction("idle")
	}

	if scoringHit(e, p) {
		ev.ShakeAtLeast(ShakeOnHit)
		ev.Play(CueHit)
		ev.DeathBurst(w.Rand, e.Center())
		e.GraceTimer = entity.BossGrace
		e.HitPoints++
	}

	return e.Defeated()
}

// scoringHit reports whether the player's dash lands on a vulnerable boss
func scoringHit(e *entity.Enemy, p *entity.Player) bool {
	return p.DashInvulnerable() && e.Vulnerable() && e.Rect().Overlaps(p.Rect())
}

// castBolt fires a bolt from the boss toward where the player is now
func castBolt(e *entity.Enemy, p *entity.Player, ev *Events) {
	from := e.Center()
	dir, _, ok := directionTo(from, p.Center())
	if !ok || math.IsNaN(dir.X) || math.IsNaN(dir.Y) {
		return
	}
	ev.Projectile(entity.NewBolt(from, dir.Mult(entity.BoltSpeed)))
}
