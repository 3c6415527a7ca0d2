package services

import (
	"github.com/zyedidia/generic/mapset"

	"tilepath/server/models"
)

// TileGrid is a sparse in-memory tile store keyed by cell position.
// It is not synchronized; LevelService guards access to the grid it owns.
type TileGrid struct {
	tiles map[models.Position]models.TileKind
}

// NewTileGrid creates an empty grid
func NewTileGrid() *TileGrid {
	return &TileGrid{
		tiles: make(map[models.Position]models.TileKind),
	}
}

// Set places a tile at pos, replacing whatever was there
func (g *TileGrid) Set(pos models.Position, kind models.TileKind) {
	g.tiles[pos] = kind
}

// Get returns the tile at pos and whether the cell is occupied
func (g *TileGrid) Get(pos models.Position) (models.TileKind, bool) {
	kind, ok := g.tiles[pos]
	return kind, ok
}

// Clear removes every tile
func (g *TileGrid) Clear() {
	g.tiles = make(map[models.Position]models.TileKind)
}

// Len returns the number of occupied cells
func (g *TileGrid) Len() int {
	return len(g.tiles)
}

// Bounds returns the inclusive corners of the occupied cells
func (g *TileGrid) Bounds() (min, max models.Position, ok bool) {
	for pos := range g.tiles {
		if !ok {
			min, max, ok = pos, pos, true
			continue
		}
		if pos.X < min.X {
			min.X = pos.X
		}
		if pos.Y < min.Y {
			min.Y = pos.Y
		}
		if pos.X > max.X {
			max.X = pos.X
		}
		if pos.Y > max.Y {
			max.Y = pos.Y
		}
	}
	return min, max, ok
}

// Size returns the width and height of the occupied bounding box
func (g *TileGrid) Size() (width, height int) {
	min, max, ok := g.Bounds()
	if !ok {
		return 0, 0
	}
	return max.X - min.X + 1, max.Y - min.Y + 1
}

// CellsByKind groups the occupied cells by tile kind
func (g *TileGrid) CellsByKind() map[models.TileKind]mapset.Set[models.Position] {
	groups := make(map[models.TileKind]mapset.Set[models.Position])
	for pos, kind := range g.tiles {
		cells, exists := groups[kind]
		if !exists {
			cells = mapset.New[models.Position]()
			groups[kind] = cells
		}
		cells.Put(pos)
	}
	return groups
}
