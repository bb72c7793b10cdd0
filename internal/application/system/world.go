package system

import (
	"math/rand"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

// World is the context a behavior ticks against. Behaviors read the
// player and the tiles but only write to their own entity and the
// events outbox.
type World struct {
	Tiles  TileQuery
	Player *entity.Player
	Rand   *rand.Rand
}

// NewWorld creates a world; a nil rng gets a fixed seed
func NewWorld(tiles TileQuery, player *entity.Player, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &World{Tiles: tiles, Player: player, Rand: rng}
}
