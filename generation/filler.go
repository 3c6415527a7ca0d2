package generation

import "tilepath/server/models"

// FillBackground writes tile into every empty cell of a box the size of the
// occupied bounding box, anchored at origin. Occupied cells are left alone.
// When origin is the bottom-left of the occupied cells, running it twice
// changes nothing.
func FillBackground(grid Grid, origin models.Position, tile models.TileKind) {
	min, max, ok := grid.Bounds()
	if !ok {
		return
	}

	size := max.Sub(min).Add(models.One)
	for i := 0; i < size.X; i++ {
		for j := 0; j < size.Y; j++ {
			pos := origin.Add(models.Position{X: i, Y: j})
			if _, occupied := grid.Get(pos); !occupied {
				grid.Set(pos, tile)
			}
		}
	}
}
