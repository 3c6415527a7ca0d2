package generation

import "tilepath/server/models"

// mapGrid is a minimal Grid for exercising the generator in isolation
type mapGrid map[models.Position]models.TileKind

func (g mapGrid) Set(pos models.Position, kind models.TileKind) { g[pos] = kind }

func (g mapGrid) Get(pos models.Position) (models.TileKind, bool) {
	kind, ok := g[pos]
	return kind, ok
}

func (g mapGrid) Clear() {
	for pos := range g {
		delete(g, pos)
	}
}

func (g mapGrid) Bounds() (lo, hi models.Position, ok bool) {
	for pos := range g {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo.X, lo.Y = min(lo.X, pos.X), min(lo.Y, pos.Y)
		hi.X, hi.Y = max(hi.X, pos.X), max(hi.Y, pos.Y)
	}
	return lo, hi, ok
}

func (g mapGrid) clone() mapGrid {
	out := make(mapGrid, len(g))
	for pos, kind := range g {
		out[pos] = kind
	}
	return out
}

// scriptedRand replays fixed draws, wrapping around when exhausted
type scriptedRand struct {
	draws []int
	next  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.draws[r.next%len(r.draws)]
	r.next++
	return v % n
}

func pos(x, y int) models.Position {
	return models.Position{X: x, Y: y}
}
