package system

import "github.com/younwookim/hellfall/internal/domain/entity"

// UpdateEnemy runs one behavior tick for e and reports whether it died
func UpdateEnemy(w *World, e *entity.Enemy, ev *Events) bool {
	switch e.Kind {
	case entity.KindWalker:
		return updateWalker(w, e, ev)
	case entity.KindLunger:
		return updateLunger(w, e, ev)
	case entity.KindBoss:
		return updateBoss(w, e, ev)
	default:
		return false
	}
}

// slainByDash reports whether the dashing player cuts through e, and
// emits the kill effects when it does
func slainByDash(w *World, e *entity.Enemy, ev *Events) bool {
	p := w.Player
	if p == nil || !p.DashInvulnerable() || !e.Rect().Overlaps(p.Rect()) {
		return false
	}
	ev.ShakeAtLeast(ShakeOnHit)
	ev.Play(CueHit)
	ev.DeathBurst(w.Rand, e.Center())
	return true
}

func moveAction(intent entity.Vector) string {
	if intent.X != 0 || intent.Y != 0 {
		return "run"
	}
	return "idle"
}
