package generation

import (
	"fmt"

	"tilepath/server/models"
)

// maxRowAttempts bounds the redraw loop when a row lands too close to the
// previous waypoint. Past it the row is clamped to the nearest valid one.
const maxRowAttempts = 64

// PlaceWaypoints walks the level columns left to right and drops a road tile
// on a random row of every other column. Interior columns are occasionally
// skipped; the first and last columns always get a waypoint. The last
// waypoint is marked with the road end tile.
func PlaceWaypoints(grid Grid, cfg models.LevelConfig, rng Rand) ([]models.Position, error) {
	if cfg.Width <= 0 {
		return nil, nil
	}
	if err := checkSeparation(cfg); err != nil {
		return nil, err
	}

	startX, _ := cfg.Columns()
	minY, maxY := cfg.Rows()
	lastColumn := cfg.Width - 1

	placed := make([]models.Position, 0, cfg.Width/2+1)
	previousRow := 0
	skipCurrent := true

	for column := 0; column < cfg.Width; column++ {
		skipCurrent = !skipCurrent
		if skipCurrent && column != lastColumn {
			continue
		}

		if column != 0 && column != lastColumn && cfg.SkipOneIn > 0 {
			if intRange(rng, 0, cfg.SkipOneIn) == 0 {
				continue
			}
		}

		row, err := pickRow(rng, previousRow, minY, maxY, cfg.MinSeparation)
		if err != nil {
			return nil, err
		}
		previousRow = row

		pos := models.Position{X: startX + column, Y: row}
		grid.Set(pos, cfg.Tiles.Road)
		placed = append(placed, pos)
	}

	grid.Set(placed[len(placed)-1], cfg.Tiles.RoadEnd)
	return placed, nil
}

// pickRow draws rows from [minY, maxY] until one is at least separation away
// from previous.
func pickRow(rng Rand, previous, minY, maxY, separation int) (int, error) {
	fallback, ok := separatedRow(previous, minY, maxY, separation)
	if !ok {
		return 0, fmt.Errorf("%w: no row in [%d, %d] is %d away from %d",
			ErrInvalidConfig, minY, maxY, separation, previous)
	}

	for attempt := 0; attempt < maxRowAttempts; attempt++ {
		row := intRangeInclusive(rng, minY, maxY)
		if abs(row-previous) >= separation {
			return row, nil
		}
	}
	return fallback, nil
}

// separatedRow returns the closest row to previous that still keeps the
// separation, preferring the one above.
func separatedRow(previous, minY, maxY, separation int) (int, bool) {
	if previous+separation <= maxY {
		return previous + separation, true
	}
	if previous-separation >= minY {
		return previous - separation, true
	}
	return 0, false
}

// checkSeparation rejects configs where the separation cannot be kept.
// Rows are symmetric around the starting row 0, so every previous row has a
// valid successor exactly when 0 does.
func checkSeparation(cfg models.LevelConfig) error {
	minY, maxY := cfg.Rows()
	if _, ok := separatedRow(0, minY, maxY, cfg.MinSeparation); !ok {
		return fmt.Errorf("%w: min separation %d cannot be kept for %d rows",
			ErrInvalidConfig, cfg.MinSeparation, cfg.Height)
	}
	return nil
}
