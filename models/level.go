package models

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for level configurations that cannot be generated
var ErrInvalidConfig = errors.New("invalid level config")

// LevelConfig describes one level layout. It is passed by value so a
// generation run always sees the same settings from start to finish.
type LevelConfig struct {
	Width  int `json:"width" yaml:"width"`   // columns
	Height int `json:"height" yaml:"height"` // rows

	// Offset is the grid origin: the bottom-left cell of the level area.
	// Its X is the first column and its Y the floor the road drops to.
	Offset        Position `json:"offset" yaml:"offset"`
	MinSeparation int      `json:"min_separation" yaml:"min_separation"`

	// SkipOneIn drops an interior waypoint column once in this many draws.
	// Zero or less keeps every candidate column.
	SkipOneIn int     `json:"skip_one_in" yaml:"skip_one_in"`
	Tiles     TileSet `json:"tiles" yaml:"tiles"`
}

// DefaultLevelConfig returns the 12x8 layout the generator was tuned for
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Width:         12,
		Height:        8,
		Offset:        Position{X: -6, Y: -4},
		MinSeparation: 3,
		SkipOneIn:     9,
		Tiles:         DefaultTileSet(),
	}
}

// Columns returns the first and last x coordinate of the level
func (c LevelConfig) Columns() (first, last int) {
	return c.Offset.X, c.Offset.X + c.Width - 1
}

// Rows returns the inclusive row range waypoints are drawn from
func (c LevelConfig) Rows() (lo, hi int) {
	return -(c.Height / 2), c.Height / 2
}

// Validate checks the settings that can be judged without generating
func (c LevelConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	}
	if lowest, _ := c.Rows(); c.Offset.Y > lowest {
		return fmt.Errorf("%w: floor %d is above the lowest waypoint row %d", ErrInvalidConfig, c.Offset.Y, lowest)
	}
	if c.MinSeparation < 0 {
		return fmt.Errorf("%w: min separation must not be negative, got %d", ErrInvalidConfig, c.MinSeparation)
	}
	for role, kind := range map[string]TileKind{
		"road":       c.Tiles.Road,
		"road_end":   c.Tiles.RoadEnd,
		"background": c.Tiles.Background,
		"border":     c.Tiles.Border,
	} {
		if _, ok := tileNames[kind]; !ok {
			return fmt.Errorf("%w: %s tile %d is not in the catalog", ErrInvalidConfig, role, int(kind))
		}
	}
	return nil
}
