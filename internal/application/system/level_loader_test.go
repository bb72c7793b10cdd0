package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hellfall/internal/domain/entity"
	"github.com/younwookim/hellfall/internal/domain/tilemap"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

func createTestLevelConfig() *config.LevelConfig {
	return &config.LevelConfig{
		TileSize: 16,
		Tilemap: map[string]config.TileConfig{
			"0;5": {Type: "stone", Variant: 0, Pos: [2]float64{0, 5}},
			"1;5": {Type: "grass", Variant: 1, Pos: [2]float64{1, 5}},
			"3;1": {Type: "spawners", Variant: SpawnerPlayer, Pos: [2]float64{3, 1}},
			"6;4": {Type: "spawners", Variant: SpawnerWalker, Pos: [2]float64{6, 4}},
			"7;4": {Type: "spawners", Variant: SpawnerLunger, Pos: [2]float64{7, 4}},
			"9;2": {Type: "spawners", Variant: SpawnerBoss, Pos: [2]float64{9, 2}},
		},
		Offgrid: []config.TileConfig{
			{Type: "large_decor", Variant: 2, Pos: [2]float64{40, 24}},
			{Type: "large_decor", Variant: 0, Pos: [2]float64{80, 24}},
		},
	}
}

func TestLoadLevel(t *testing.T) {
	lvl := LoadLevel(createTestLevelConfig())

	require.NotNil(t, lvl.Tiles)
	assert.Equal(t, 16, lvl.Tiles.TileSize)

	t.Run("places the player in pixels", func(t *testing.T) {
		assert.True(t, lvl.HasPlayer)
		assert.Equal(t, vec(48, 16), lvl.PlayerSpawn)
	})

	t.Run("spawns one enemy per spawner", func(t *testing.T) {
		require.Len(t, lvl.Walkers, 1)
		require.Len(t, lvl.Lungers, 1)
		require.Len(t, lvl.Bosses, 1)

		assert.Equal(t, vec(96, 64), lvl.Walkers[0].Pos)
		assert.Equal(t, vec(7, 15), lvl.Walkers[0].Size)
		assert.Equal(t, entity.KindLunger, lvl.Lungers[0].Kind)
		assert.Equal(t, vec(10, 7), lvl.Lungers[0].Size)
		assert.Equal(t, vec(21, 31), lvl.Bosses[0].Size)
		assert.Equal(t, entity.BossPhaseCycle, lvl.Bosses[0].PhaseTimer)
	})

	t.Run("removes spawners from the grid", func(t *testing.T) {
		assert.Len(t, lvl.Tiles.Grid, 2)
		_, ok := lvl.Tiles.Grid[tilemap.GridPos{X: 3, Y: 1}]
		assert.False(t, ok)
	})

	t.Run("tree canopies become leaf spawners", func(t *testing.T) {
		require.Len(t, lvl.Leaves, 1)
		assert.Equal(t, entity.Rect{X: 44, Y: 28, W: 23, H: 13}, lvl.Leaves[0].Area)
		assert.Len(t, lvl.Tiles.Offgrid, 2, "decorations are kept")
	})

	t.Run("solid tiles collide", func(t *testing.T) {
		assert.True(t, lvl.Tiles.SolidCheck(vec(20, 85)))
		assert.False(t, lvl.Tiles.SolidCheck(vec(40, 85)))
	})
}

func TestLoadLevel_KeyFallback(t *testing.T) {
	cfg := &config.LevelConfig{
		Tilemap: map[string]config.TileConfig{
			"bogus": {Type: "stone", Pos: [2]float64{2, 3}},
		},
	}

	lvl := LoadLevel(cfg)

	assert.Equal(t, 16, lvl.Tiles.TileSize, "default tile size")
	assert.True(t, lvl.Tiles.SolidCheck(vec(33, 49)))
	assert.False(t, lvl.HasPlayer)
}

func TestParseGridKey(t *testing.T) {
	tests := []struct {
		key    string
		x, y   int
		wantOK bool
	}{
		{"3;4", 3, 4, true},
		{"-2;10", -2, 10, true},
		{"3,4", 0, 0, false},
		{"a;1", 0, 0, false},
		{"1;b", 0, 0, false},
	}

	for _, tt := range tests {
		x, y, ok := parseGridKey(tt.key)
		assert.Equal(t, tt.wantOK, ok, tt.key)
		assert.Equal(t, tt.x, x, tt.key)
		assert.Equal(t, tt.y, y, tt.key)
	}
}
