package system

import (
	"strconv"
	"strings"

	"github.com/younwookim/hellfall/internal/domain/entity"
	"github.com/younwookim/hellfall/internal/domain/tilemap"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// Spawner variants in level data
const (
	SpawnerPlayer = iota
	SpawnerWalker
	SpawnerLunger
	SpawnerBoss
)

// PlayerSize is the player's collision box
var PlayerSize = entity.Vector{X: 15, Y: 15}

// Leaf spawner geometry relative to a tree decoration
const (
	leafTreeVariant = 2
	leafOffset      = 4
	leafWidth       = 23
	leafHeight      = 13
)

// Level is a loaded level: geometry plus everything placed by spawners
type Level struct {
	Tiles       *tilemap.Tilemap
	PlayerSpawn entity.Vector
	HasPlayer   bool
	Walkers     []*entity.Enemy
	Lungers     []*entity.Enemy
	Bosses      []*entity.Enemy
	Leaves      []entity.LeafSpawner
}

// LoadLevel converts a LevelConfig into a tilemap and places spawners.
// Grid keys that do not parse as "x;y" fall back to the tile's pos.
func LoadLevel(cfg *config.LevelConfig) *Level {
	m := tilemap.New(cfg.TileSize)
	for key, t := range cfg.Tilemap {
		x, y, ok := parseGridKey(key)
		if !ok {
			x, y = int(t.Pos[0]), int(t.Pos[1])
		}
		m.Set(x, y, t.Type, t.Variant)
	}
	for _, t := range cfg.Offgrid {
		m.Offgrid = append(m.Offgrid, tilemap.Tile{
			Type:    t.Type,
			Variant: t.Variant,
			Pos:     entity.Vector{X: t.Pos[0], Y: t.Pos[1]},
		})
	}

	lvl := &Level{Tiles: m}

	for _, tree := range m.Extract([]tilemap.TagPair{{Type: "large_decor", Variant: leafTreeVariant}}, true) {
		lvl.Leaves = append(lvl.Leaves, entity.LeafSpawner{Area: entity.Rect{
			X: tree.Pos.X + leafOffset,
			Y: tree.Pos.Y + leafOffset,
			W: leafWidth,
			H: leafHeight,
		}})
	}

	spawners := []tilemap.TagPair{
		{Type: "spawners", Variant: SpawnerPlayer},
		{Type: "spawners", Variant: SpawnerWalker},
		{Type: "spawners", Variant: SpawnerLunger},
		{Type: "spawners", Variant: SpawnerBoss},
	}
	for _, s := range m.Extract(spawners, false) {
		switch s.Variant {
		case SpawnerPlayer:
			lvl.PlayerSpawn = s.Pos
			lvl.HasPlayer = true
		case SpawnerWalker:
			lvl.Walkers = append(lvl.Walkers, entity.NewWalker(s.Pos))
		case SpawnerLunger:
			lvl.Lungers = append(lvl.Lungers, entity.NewLunger(s.Pos))
		default:
			lvl.Bosses = append(lvl.Bosses, entity.NewBoss(s.Pos))
		}
	}

	return lvl
}

func parseGridKey(key string) (int, int, bool) {
	xs, ys, found := strings.Cut(key, ";")
	if !found {
		return 0, 0, false
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}
