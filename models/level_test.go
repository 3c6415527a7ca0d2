package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDefaultLevelConfigIsValid(t *testing.T) {
	if err := DefaultLevelConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LevelConfig)
	}{
		{"zero width", func(c *LevelConfig) { c.Width = 0 }},
		{"negative width", func(c *LevelConfig) { c.Width = -4 }},
		{"zero height", func(c *LevelConfig) { c.Height = 0 }},
		{"negative separation", func(c *LevelConfig) { c.MinSeparation = -1 }},
		{"floor above lowest row", func(c *LevelConfig) { c.Offset.Y = -3 }},
		{"road outside catalog", func(c *LevelConfig) { c.Tiles.Road = TileKind(-1) }},
		{"border outside catalog", func(c *LevelConfig) { c.Tiles.Border = TileKind(500) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLevelConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestColumnsAndRows(t *testing.T) {
	tests := []struct {
		width, height int
		offset        Position
		firstX, lastX int
		minY, maxY    int
	}{
		{12, 8, Position{X: -6, Y: -4}, -6, 5, -4, 4},
		{1, 1, Position{X: 0, Y: 0}, 0, 0, 0, 0},
		{7, 5, Position{X: 10, Y: -2}, 10, 16, -2, 2},
	}

	for _, tt := range tests {
		cfg := LevelConfig{Width: tt.width, Height: tt.height, Offset: tt.offset}
		if first, last := cfg.Columns(); first != tt.firstX || last != tt.lastX {
			t.Errorf("%dx%d: Columns() = %d, %d, want %d, %d", tt.width, tt.height, first, last, tt.firstX, tt.lastX)
		}
		if lo, hi := cfg.Rows(); lo != tt.minY || hi != tt.maxY {
			t.Errorf("%dx%d: Rows() = %d, %d, want %d, %d", tt.width, tt.height, lo, hi, tt.minY, tt.maxY)
		}
	}
}

func TestTileSetNamesInJSON(t *testing.T) {
	data, err := json.Marshal(DefaultTileSet())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"road":"basic_road","road_end":"end_stone","background":"grass","border":"brick"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}

	var tiles TileSet
	if err := json.Unmarshal([]byte(`{"road":"pavement","road_end":"stone","background":"Sand","border":"ice"}`), &tiles); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tiles != (TileSet{Road: TilePavement, RoadEnd: TileStone, Background: TileSand, Border: TileIce}) {
		t.Errorf("got %+v", tiles)
	}

	if err := json.Unmarshal([]byte(`{"road":"lava"}`), &tiles); err == nil {
		t.Errorf("unknown tile name accepted")
	}
}
