package generation

import (
	"math/rand"
	"time"

	"tilepath/server/models"
)

// LevelGenerator handles procedural generation of side-scrolling level layouts
type LevelGenerator struct {
	rng Rand
}

// Result describes what a generation run drew
type Result struct {
	Waypoints []models.Position
	// Min and Max are the inclusive corners of the level area inside the
	// border. Min is always the configured grid origin.
	Min    models.Position
	Max    models.Position
	Border []models.Position
}

// NewLevelGenerator creates a generator drawing from rng
func NewLevelGenerator(rng Rand) *LevelGenerator {
	return &LevelGenerator{rng: rng}
}

// NewSeededLevelGenerator creates a generator with a reproducible seed
func NewSeededLevelGenerator(seed int64) *LevelGenerator {
	return NewLevelGenerator(rand.New(rand.NewSource(seed)))
}

// NewRandomLevelGenerator creates a generator seeded from the clock
func NewRandomLevelGenerator() *LevelGenerator {
	return NewSeededLevelGenerator(time.Now().UnixNano())
}

// SetSeed allows setting a specific seed for reproducible levels
func (g *LevelGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate clears grid and draws a complete level into it: waypoints, the
// road joining them, the background fill and the border. The config is
// checked before the grid is touched, so a rejected config leaves the grid
// as it was.
func (g *LevelGenerator) Generate(grid Grid, cfg models.LevelConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkSeparation(cfg); err != nil {
		return nil, err
	}

	grid.Clear()

	waypoints, err := PlaceWaypoints(grid, cfg, g.rng)
	if err != nil {
		grid.Clear()
		return nil, err
	}
	if err := ConnectWaypoints(grid, waypoints, cfg.Offset.Y, cfg.Tiles.Road); err != nil {
		grid.Clear()
		return nil, err
	}
	// The last elbow runs into the final waypoint, so mark the end again.
	grid.Set(waypoints[len(waypoints)-1], cfg.Tiles.RoadEnd)

	FillBackground(grid, cfg.Offset, cfg.Tiles.Background)

	_, max, _ := grid.Bounds()
	border := borderCells(cfg.Offset, max)
	for _, pos := range border {
		grid.Set(pos, cfg.Tiles.Border)
	}

	return &Result{
		Waypoints: waypoints,
		Min:       cfg.Offset,
		Max:       max,
		Border:    border,
	}, nil
}
