package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

func TestTeleportOffset(t *testing.T) {
	tests := []struct {
		x    float64
		want entity.Vector
	}{
		{200, vec(-15, -12)},
		{160, vec(-15, -12)},
		{120, vec(14, -12)},
		{0, vec(14, -12)},
		{140, vec(14, -8)},
		{math.NaN(), vec(-15, -12)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TeleportOffset(tt.x), "x=%v", tt.x)
	}
}

func createTestBoss() (*World, *entity.Enemy, *entity.Player) {
	p := createTestPlayer()
	p.Pos = vec(200, 40)
	w := createTestWorld(nil, p)
	return w, entity.NewBoss(vec(60, 100)), p
}

func TestUpdateBoss_Teleport(t *testing.T) {
	w, e, p := createTestBoss()
	e.PhaseTimer = 0
	var ev Events

	UpdateEnemy(w, e, &ev)

	target := p.Pos.Add(vec(-15, -12))
	assert.Equal(t, entity.BossPhaseCycle-1, e.PhaseTimer)
	assert.Equal(t, entity.BossTeleportDelay-1, e.TeleportTimer)
	assert.Equal(t, target, e.TeleportTarget)
	assert.Equal(t, vec(60, 100), e.Pos, "waits before snapping")
	assert.Equal(t, "dash", e.Action)
	assert.Equal(t, ShakeOnHit, ev.Shake)
	assert.Equal(t, []Cue{CueDash}, ev.Cues)
	assert.Len(t, ev.Sparks, TeleportBurst)
	assert.Len(t, ev.Particles, TeleportBurst)

	// Player moves; the target stays where it was computed
	p.Pos = vec(10, 10)
	for i := 0; i < entity.BossTeleportDelay; i++ {
		ev.Reset()
		UpdateEnemy(w, e, &ev)
	}

	assert.Equal(t, target, e.Pos)
	assert.Equal(t, entity.TimerDisarmed, e.TeleportTimer)
	assert.Len(t, ev.Sparks, TeleportBurst)
	assert.Equal(t, "idle", e.Action)

	// Disarmed timer never fires again
	ev.Reset()
	UpdateEnemy(w, e, &ev)
	assert.Empty(t, ev.Sparks)
	assert.Equal(t, entity.TimerDisarmed, e.TeleportTimer)
}

func TestUpdateBoss_Bolts(t *testing.T) {
	tests := []struct {
		phase int
		want  int
	}{
		{444, 1},
		{60, 1},
		{445, 0},
		{450, 0},
		{48, 0},
		{498, 0},
	}

	for _, tt := range tests {
		w, e, p := createTestBoss()
		e.PhaseTimer = tt.phase
		var ev Events

		UpdateEnemy(w, e, &ev)

		require.Len(t, ev.Projectiles, tt.want, "phase %d", tt.phase)
		if tt.want == 1 {
			bolt := ev.Projectiles[0]
			assert.Equal(t, entity.ProjectileBolt, bolt.Kind)
			assert.InDelta(t, entity.BoltSpeed, bolt.Vel.Length(), 1e-9)
			toPlayer := p.Center().Sub(bolt.Pos)
			assert.InDelta(t, 0, toPlayer.Cross(bolt.Vel), 1e-9, "aimed at the player")
			assert.Greater(t, toPlayer.Dot(bolt.Vel), 0.0)
		}
	}
}

func TestUpdateBoss_NoHitWithoutDash(t *testing.T) {
	w, e, p := createTestBoss()
	p.Pos = e.Pos
	var ev Events

	dead := UpdateEnemy(w, e, &ev)

	assert.False(t, dead)
	assert.Equal(t, entity.BossHitPoints, e.HitPoints)
}

func TestUpdateBoss_SixSpacedHitsToDefeat(t *testing.T) {
	w, e, p := createTestBoss()
	var ev Events

	var hitTicks []int
	dead := false
	for tick := 0; tick < 5000 && !dead; tick++ {
		// Keep the dashing player glued to the boss
		p.Pos = e.Pos.Add(vec(5, 5))
		p.Dash = entity.DashSettle + 5

		before := e.HitPoints
		ev.Reset()
		dead = UpdateEnemy(w, e, &ev)
		if e.HitPoints != before {
			require.Equal(t, before+1, e.HitPoints)
			hitTicks = append(hitTicks, tick)
			assert.Equal(t, entity.BossGrace, e.GraceTimer)
			// a hit on the cycle's first tick shares it with the teleport burst
			assert.Contains(t, []int{HitBurstCount + 2, HitBurstCount + 2 + TeleportBurst}, len(ev.Sparks))
		}
		if !dead {
			assert.Less(t, e.HitPoints, 0)
		}
	}

	require.True(t, dead)
	require.Len(t, hitTicks, 6)
	assert.Equal(t, 0, e.HitPoints)
	for i := 1; i < len(hitTicks); i++ {
		assert.GreaterOrEqual(t, hitTicks[i]-hitTicks[i-1], entity.BossGrace)
	}
}

func TestUpdateBoss_StaffCycles(t *testing.T) {
	w, e, _ := createTestBoss()
	var ev Events

	for i := 0; i < entity.BossStaffCycle; i++ {
		UpdateEnemy(w, e, &ev)
	}

	assert.Equal(t, 0, e.StaffPhase)
}
