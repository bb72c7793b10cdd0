// Package tilemap holds level geometry and answers the solidity queries
// the simulation needs: solid rects near an area, point solidity, and
// tag extraction at level load.
package tilemap

import (
	"math"
	"sort"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

// Tile types that block movement
var physicsTiles = map[string]bool{
	"grass": true,
	"stone": true,
}

// GridPos is a tile coordinate
type GridPos struct {
	X, Y int
}

// Tile is a single placed tile. Pos is in tile units for grid tiles
// and in pixels for off-grid decorations.
type Tile struct {
	Type    string
	Variant int
	Pos     entity.Vector
}

// TagPair selects tiles by type and variant for Extract
type TagPair struct {
	Type    string
	Variant int
}

// Tilemap is the level geometry for one encounter
type Tilemap struct {
	TileSize int
	Grid     map[GridPos]Tile
	Offgrid  []Tile
}

// New creates an empty tilemap
func New(tileSize int) *Tilemap {
	if tileSize <= 0 {
		tileSize = 16
	}
	return &Tilemap{
		TileSize: tileSize,
		Grid:     make(map[GridPos]Tile),
	}
}

// Set places a grid tile at tile coordinates
func (m *Tilemap) Set(x, y int, typ string, variant int) {
	m.Grid[GridPos{X: x, Y: y}] = Tile{
		Type:    typ,
		Variant: variant,
		Pos:     entity.Vector{X: float64(x), Y: float64(y)},
	}
}

func (m *Tilemap) gridPos(p entity.Vector) GridPos {
	ts := float64(m.TileSize)
	return GridPos{X: int(math.Floor(p.X / ts)), Y: int(math.Floor(p.Y / ts))}
}

func (m *Tilemap) tileRect(g GridPos) entity.Rect {
	ts := float64(m.TileSize)
	return entity.Rect{X: float64(g.X) * ts, Y: float64(g.Y) * ts, W: ts, H: ts}
}

// PhysicsRectsAround returns the solid tile rects within one tile of area,
// ordered row by row. Tiles outside the map are not solid.
func (m *Tilemap) PhysicsRectsAround(area entity.Rect) []entity.Rect {
	lo := m.gridPos(entity.Vector{X: area.X, Y: area.Y})
	hi := m.gridPos(entity.Vector{X: area.Right(), Y: area.Bottom()})

	var rects []entity.Rect
	for y := lo.Y - 1; y <= hi.Y+1; y++ {
		for x := lo.X - 1; x <= hi.X+1; x++ {
			g := GridPos{X: x, Y: y}
			if tile, ok := m.Grid[g]; ok && physicsTiles[tile.Type] {
				rects = append(rects, m.tileRect(g))
			}
		}
	}
	return rects
}

// SolidCheck reports whether the point lies in a solid tile
func (m *Tilemap) SolidCheck(p entity.Vector) bool {
	tile, ok := m.Grid[m.gridPos(p)]
	return ok && physicsTiles[tile.Type]
}

// Extract returns every tile matching one of pairs, with grid positions
// converted to pixels. Unless keep is set, matches are removed from the map.
func (m *Tilemap) Extract(pairs []TagPair, keep bool) []Tile {
	match := func(t Tile) bool {
		for _, p := range pairs {
			if p.Type == t.Type && p.Variant == t.Variant {
				return true
			}
		}
		return false
	}

	var out []Tile
	remaining := m.Offgrid[:0:0]
	for _, t := range m.Offgrid {
		if match(t) {
			out = append(out, t)
			if keep {
				remaining = append(remaining, t)
			}
			continue
		}
		remaining = append(remaining, t)
	}
	m.Offgrid = remaining

	for _, g := range m.sortedGrid() {
		t := m.Grid[g]
		if !match(t) {
			continue
		}
		ts := float64(m.TileSize)
		out = append(out, Tile{
			Type:    t.Type,
			Variant: t.Variant,
			Pos:     entity.Vector{X: t.Pos.X * ts, Y: t.Pos.Y * ts},
		})
		if !keep {
			delete(m.Grid, g)
		}
	}
	return out
}

// sortedGrid returns grid keys in row-major order for deterministic extraction
func (m *Tilemap) sortedGrid() []GridPos {
	keys := make([]GridPos, 0, len(m.Grid))
	for g := range m.Grid {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}
