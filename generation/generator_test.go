package generation

import (
	"errors"
	"reflect"
	"testing"

	"tilepath/server/models"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := models.DefaultLevelConfig()

	for seed := int64(0); seed < 20; seed++ {
		first, second := mapGrid{}, mapGrid{}

		if _, err := NewSeededLevelGenerator(seed).Generate(first, cfg); err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if _, err := NewSeededLevelGenerator(seed).Generate(second, cfg); err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("seed %d: runs differ", seed)
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	cfg := models.DefaultLevelConfig()

	for seed := int64(0); seed < 50; seed++ {
		grid := mapGrid{}
		result, err := NewSeededLevelGenerator(seed).Generate(grid, cfg)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		if result.Min != cfg.Offset {
			t.Errorf("seed %d: level starts at %v, want the grid origin %v", seed, result.Min, cfg.Offset)
		}

		last := result.Waypoints[len(result.Waypoints)-1]
		if grid[last] != cfg.Tiles.RoadEnd {
			t.Errorf("seed %d: last waypoint holds %v, want road end", seed, grid[last])
		}

		width := result.Max.X - result.Min.X + 3
		height := result.Max.Y - result.Min.Y + 3
		if len(grid) != width*height {
			t.Errorf("seed %d: got %d cells, want a full %dx%d frame", seed, len(grid), width, height)
		}

		for p, kind := range grid {
			inside := p.X >= result.Min.X && p.X <= result.Max.X && p.Y >= result.Min.Y && p.Y <= result.Max.Y
			if inside && kind == cfg.Tiles.Border {
				t.Errorf("seed %d: border tile inside the level at %v", seed, p)
			}
			if !inside && kind != cfg.Tiles.Border {
				t.Errorf("seed %d: %v outside the level holds %v", seed, p, kind)
			}
		}
		if len(result.Border) != 2*width+2*height-4 {
			t.Errorf("seed %d: got %d border cells, want %d", seed, len(result.Border), 2*width+2*height-4)
		}
	}
}

func TestGenerateSingleColumn(t *testing.T) {
	cfg := models.DefaultLevelConfig()
	cfg.Width = 1
	grid := mapGrid{}

	result, err := NewSeededLevelGenerator(3).Generate(grid, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Waypoints) != 1 {
		t.Fatalf("got %d waypoints, want 1", len(result.Waypoints))
	}
	if grid[result.Waypoints[0]] != cfg.Tiles.RoadEnd {
		t.Errorf("waypoint holds %v, want road end", grid[result.Waypoints[0]])
	}
	if result.Min.X != cfg.Offset.X || result.Max.X != cfg.Offset.X {
		t.Errorf("level spans x %d..%d, want the single column %d", result.Min.X, result.Max.X, cfg.Offset.X)
	}
}

func TestGenerateHonorsOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset models.Position
	}{
		{"origin column", models.Position{X: 0, Y: -4}},
		{"shifted right", models.Position{X: 10, Y: -9}},
		{"far left", models.Position{X: -40, Y: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultLevelConfig()
			cfg.Offset = tt.offset

			for seed := int64(0); seed < 20; seed++ {
				grid := mapGrid{}
				result, err := NewSeededLevelGenerator(seed).Generate(grid, cfg)
				if err != nil {
					t.Fatalf("seed %d: unexpected error: %v", seed, err)
				}

				if result.Min != cfg.Offset {
					t.Errorf("seed %d: level starts at %v, want %v", seed, result.Min, cfg.Offset)
				}
				first, last := result.Waypoints[0], result.Waypoints[len(result.Waypoints)-1]
				if first.X != cfg.Offset.X {
					t.Errorf("seed %d: first waypoint at x=%d, want %d", seed, first.X, cfg.Offset.X)
				}
				if last.X != cfg.Offset.X+cfg.Width-1 {
					t.Errorf("seed %d: last waypoint at x=%d, want %d", seed, last.X, cfg.Offset.X+cfg.Width-1)
				}

				for p, kind := range grid {
					inside := p.X >= result.Min.X && p.X <= result.Max.X && p.Y >= result.Min.Y && p.Y <= result.Max.Y
					if !inside && kind != cfg.Tiles.Border {
						t.Errorf("seed %d: %v outside the level holds %v", seed, p, kind)
					}
					if inside && kind == cfg.Tiles.Border {
						t.Errorf("seed %d: border tile inside the level at %v", seed, p)
					}
				}

				width := result.Max.X - result.Min.X + 3
				height := result.Max.Y - result.Min.Y + 3
				if len(grid) != width*height {
					t.Errorf("seed %d: got %d cells, want a full %dx%d frame", seed, len(grid), width, height)
				}
			}
		})
	}
}

func TestGenerateRejectsConfigWithoutTouchingGrid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.LevelConfig)
	}{
		{"zero width", func(c *models.LevelConfig) { c.Width = 0 }},
		{"negative height", func(c *models.LevelConfig) { c.Height = -1 }},
		{"negative separation", func(c *models.LevelConfig) { c.MinSeparation = -2 }},
		{"unsatisfiable separation", func(c *models.LevelConfig) { c.MinSeparation = 5 }},
		{"floor above lowest row", func(c *models.LevelConfig) { c.Offset.Y = 0 }},
		{"unknown tile", func(c *models.LevelConfig) { c.Tiles.Border = models.TileKind(99) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultLevelConfig()
			tt.modify(&cfg)
			grid := mapGrid{pos(1, 1): models.TileSnow}

			_, err := NewSeededLevelGenerator(1).Generate(grid, cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if len(grid) != 1 || grid[pos(1, 1)] != models.TileSnow {
				t.Errorf("grid was modified: %v", grid)
			}
		})
	}
}

func TestGenerateClearsPreviousLevel(t *testing.T) {
	grid := mapGrid{pos(100, 100): models.TileWater}

	if _, err := NewSeededLevelGenerator(9).Generate(grid, models.DefaultLevelConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := grid[pos(100, 100)]; ok {
		t.Errorf("stale tile survived regeneration")
	}
}
