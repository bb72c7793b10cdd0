// Package encounter runs the fixed-step simulation of one level: it owns
// every live entity, advances them in a fixed order, applies the damage
// policy and drives level transitions.
package encounter

import (
	"errors"
	"log"
	"math/rand"

	"github.com/younwookim/hellfall/internal/application/state"
	"github.com/younwookim/hellfall/internal/application/system"
	"github.com/younwookim/hellfall/internal/domain/entity"
	"github.com/younwookim/hellfall/internal/domain/tilemap"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// Damage and transition timing
const (
	LivesStart      = -2 // three lives: -2, -1, 0
	HitCooldown     = 150
	TransitionStart = -30
	TransitionMax   = 30
	DeathNudgeAfter = 10 // the wipe starts closing once the death countdown passes this
	DeathResetAfter = 40 // the run restarts from level 0 once the death countdown passes this
	WipeScale       = 8
)

// CuePlayer plays fire-and-forget audio cues
type CuePlayer interface {
	Play(name string)
}

type nopCues struct{}

func (nopCues) Play(string) {}

// State is everything the encounter owns for the current level.
// The presentation layer reads it; only the encounter writes it.
type State struct {
	Tiles       *tilemap.Tilemap
	Player      *entity.Player
	Walkers     []*entity.Enemy
	Lungers     []*entity.Enemy
	Bosses      []*entity.Enemy
	Projectiles []*entity.Projectile
	Sparks      []*entity.Spark
	Particles   []*entity.Particle
	Leaves      []entity.LeafSpawner

	Transition  int
	Dead        int // life counter, see LivesShown
	Cooldown    int // post-hit invulnerability
	Screenshake int
}

// Encounter is the simulation root
type Encounter struct {
	levels []*config.LevelConfig
	level  int
	cues   CuePlayer
	rng    *rand.Rand

	state *State
	world *system.World

	ev      system.Events
	pending []*entity.Projectile
	ticks   int
}

// New creates an encounter over the given levels and loads start.
// A nil cue player is silent; rng drives every random roll in the simulation.
func New(levels []*config.LevelConfig, start int, cues CuePlayer, rng *rand.Rand) (*Encounter, error) {
	if len(levels) == 0 {
		return nil, errors.New("encounter needs at least one level")
	}
	if cues == nil {
		cues = nopCues{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	player := entity.NewPlayer(entity.Vector{}, system.PlayerSize)
	e := &Encounter{
		levels: levels,
		cues:   cues,
		rng:    rng,
		state:  &State{Player: player},
	}
	e.world = system.NewWorld(nil, player, rng)
	e.load(start)
	return e, nil
}

// State returns the live state for drawing
func (e *Encounter) State() *State {
	return e.state
}

// Level returns the current level index
func (e *Encounter) Level() int {
	return e.level
}

// MaxLevel returns the number of levels
func (e *Encounter) MaxLevel() int {
	return len(e.levels)
}

// Ticks returns the number of ticks simulated since creation
func (e *Encounter) Ticks() int {
	return e.ticks
}

// load resets the per-level state from level id, clamped to the valid range
func (e *Encounter) load(id int) {
	if id < 0 {
		id = 0
	}
	if id > len(e.levels)-1 {
		id = len(e.levels) - 1
	}
	e.level = id
	log.Printf("Loading level %d", id)

	lvl := system.LoadLevel(e.levels[id])
	s := e.state
	if lvl.HasPlayer {
		s.Player.Pos = lvl.PlayerSpawn
	}
	s.Tiles = lvl.Tiles
	s.Walkers = lvl.Walkers
	s.Lungers = lvl.Lungers
	s.Bosses = lvl.Bosses
	s.Leaves = lvl.Leaves
	s.Projectiles = nil
	s.Sparks = nil
	s.Particles = nil
	s.Dead = LivesStart
	s.Transition = TransitionStart

	e.world.Tiles = lvl.Tiles
	e.pending = e.pending[:0]
	e.ev.Reset()
}

// EnemiesLeft returns the number of live enemies of every kind
func (e *Encounter) EnemiesLeft() int {
	s := e.state
	return len(s.Walkers) + len(s.Lungers) + len(s.Bosses)
}

// Status summarizes the encounter for the state machine above it
func (e *Encounter) Status() state.GameState {
	switch {
	case e.state.Dead >= 1:
		return state.StateGameOver
	case e.EnemiesLeft() == 0:
		return state.StateStageClear
	default:
		return state.StatePlaying
	}
}

// LivesShown returns how many life indicators to draw
func (e *Encounter) LivesShown() int {
	switch d := e.state.Dead; {
	case d <= -2:
		return 3
	case d <= -1:
		return 2
	case d <= 0:
		return 1
	default:
		return 0
	}
}

// TransitionRadius returns the radius of the level wipe circle.
// Zero means fully closed.
func (e *Encounter) TransitionRadius() float64 {
	t := e.state.Transition
	if t < 0 {
		t = -t
	}
	return float64(TransitionMax-t) * WipeScale
}

// ShakeOffset returns a random camera offset for the current screenshake.
// Drawing uses its own rng so replays stay deterministic.
func (e *Encounter) ShakeOffset(rng *rand.Rand) entity.Vector {
	shake := float64(e.state.Screenshake)
	if shake == 0 {
		return entity.Vector{}
	}
	return entity.Vector{
		X: rng.Float64()*shake - shake/2,
		Y: rng.Float64()*shake - shake/2,
	}
}

// PlayerVulnerable reports whether a contact would land a hit now
func (e *Encounter) PlayerVulnerable() bool {
	s := e.state
	return s.Dead < 1 && s.Cooldown == 0 && !s.Player.DashInvulnerable()
}

// hitPlayer applies one scoring hit to the player
func (e *Encounter) hitPlayer() {
	s := e.state
	s.Dead++
	s.Cooldown = HitCooldown
	e.ev.Play(system.CueHit)
	e.ev.ShakeAtLeast(system.ShakeOnHit)
	e.ev.Burst(e.rng, s.Player.Center(), system.HitBurstCount)
}

// flush merges what the last pass spawned. Projectiles wait for the end
// of the tick so they start moving on the next one.
func (e *Encounter) flush() {
	s := e.state
	s.Sparks = append(s.Sparks, e.ev.Sparks...)
	s.Particles = append(s.Particles, e.ev.Particles...)
	for _, c := range e.ev.Cues {
		e.cues.Play(string(c))
	}
	s.Screenshake = max(s.Screenshake, e.ev.Shake)
	e.pending = append(e.pending, e.ev.Projectiles...)
	e.ev.Reset()
}
