package system

import "github.com/younwookim/hellfall/internal/domain/entity"

// updateLunger drives the spider. It always tracks the player; after a
// bite it backs off into a hold band until the bite cooldown runs out.
func updateLunger(w *World, e *entity.Enemy, ev *Events) bool {
	var intent entity.Vector

	dir, dist, ok := directionTo(e.Pos, w.Player.Pos)
	switch {
	case dist < entity.LungerBiteRange:
		// Keep closing inside bite range
		if ok {
			intent = dir.Mult(e.Speed)
		}
		e.BiteCooldown = entity.LungerBiteDelay
	case e.BiteCooldown == 0 || dist > entity.LungerHoldRange:
		intent = dir.Mult(e.Speed)
	}

	if e.BiteCooldown > 0 {
		e.BiteCooldown--
	}

	UpdateBody(&e.Body, w.Tiles, intent)
	e.SetAction(moveAction(intent))

	return slainByDash(w, e, ev)
}
