package system

import (
	"math"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

// updateWalker drives the skeleton: idle until a walk episode starts,
// close in on the player, then hold the standoff and shoot along the row
func updateWalker(w *World, e *entity.Enemy, ev *Events) bool {
	var intent entity.Vector

	if e.Walking > 0 {
		dir, dist, ok := directionTo(e.Pos, w.Player.Pos)
		d := w.Player.Pos.Sub(e.Pos)
		switch {
		case ok && dist >= entity.WalkerStandoff:
			intent = dir.Mult(e.Speed)
		case d.Y != 0:
			intent = entity.Vector{Y: sign(d.Y) * 1.5 * e.Speed}
			if e.ShootCooldown == 0 && facesTarget(e, d.X) {
				shoot(w, e, ev)
			}
		}
		e.Walking--
	} else if w.Rand.Float64() < entity.WalkerWalkChance {
		e.Walking = entity.WalkerMinWalk + w.Rand.Intn(entity.WalkerMaxWalk-entity.WalkerMinWalk+1)
	}

	if e.ShootCooldown > 0 {
		e.ShootCooldown--
	}

	UpdateBody(&e.Body, w.Tiles, intent)
	e.SetAction(moveAction(intent))

	return slainByDash(w, e, ev)
}

// facesTarget reports whether e looks toward a target dx away horizontally
func facesTarget(e *entity.Enemy, dx float64) bool {
	return (e.Flip && dx < 0) || (!e.Flip && dx > 0)
}

// shoot fires an arrow from the side e is facing
func shoot(w *World, e *entity.Enemy, ev *Events) {
	dir, base := 1.0, 0.0
	if e.Flip {
		dir, base = -1.0, math.Pi
	}

	c := e.Center()
	muzzle := entity.Vector{X: c.X + dir*entity.WalkerMuzzleOffset, Y: c.Y}

	ev.Projectile(entity.NewArrow(muzzle, dir))
	ev.Play(CueShoot)
	for i := 0; i < ShotSparkCount; i++ {
		ev.Spark(muzzle, w.Rand.Float64()-0.5+base, 2+w.Rand.Float64())
	}
	e.ShootCooldown = entity.WalkerShootDelay
}
