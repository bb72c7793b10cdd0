package system

import (
	"math/rand"

	"github.com/younwookim/hellfall/internal/domain/entity"
	"github.com/younwookim/hellfall/internal/domain/tilemap"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// createTestTiles builds a 16px map with stone at the given tile coords
func createTestTiles(solids ...tilemap.GridPos) *tilemap.Tilemap {
	m := tilemap.New(16)
	for _, g := range solids {
		m.Set(g.X, g.Y, "stone", 0)
	}
	return m
}

func createTestWorld(tiles TileQuery, player *entity.Player) *World {
	return NewWorld(tiles, player, testRNG())
}

func vec(x, y float64) entity.Vector {
	return entity.Vector{X: x, Y: y}
}
