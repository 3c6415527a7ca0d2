package models

import (
	"fmt"
	"strings"
)

// TileKind identifies a tile in the catalog. The generator treats values as
// opaque identifiers; only the TileSet roles give them meaning.
type TileKind int

// Tile kinds represented as integers for memory efficiency
const (
	TileGrass TileKind = iota
	TileBasicRoad
	TileEndStone
	TileBrick
	TileSand
	TilePavement
	TileSnow
	TileWater
	TileStone
	TileIce
)

var tileNames = map[TileKind]string{
	TileGrass:     "grass",
	TileBasicRoad: "basic_road",
	TileEndStone:  "end_stone",
	TileBrick:     "brick",
	TileSand:      "sand",
	TilePavement:  "pavement",
	TileSnow:      "snow",
	TileWater:     "water",
	TileStone:     "stone",
	TileIce:       "ice",
}

// String returns the catalog name of the tile
func (k TileKind) String() string {
	if name, ok := tileNames[k]; ok {
		return name
	}
	return fmt.Sprintf("tile(%d)", int(k))
}

// ParseTileKind looks a tile up by its catalog name
func ParseTileKind(name string) (TileKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range tileNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown tile kind %q", name)
}

// MarshalText lets configs refer to tiles by name in both JSON and YAML
func (k TileKind) MarshalText() ([]byte, error) {
	if _, ok := tileNames[k]; !ok {
		return nil, fmt.Errorf("tile kind %d is not in the catalog", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText parses a tile name
func (k *TileKind) UnmarshalText(text []byte) error {
	kind, err := ParseTileKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// TileSet assigns catalog tiles to the roles the generator writes
type TileSet struct {
	Road       TileKind `json:"road" yaml:"road"`
	RoadEnd    TileKind `json:"road_end" yaml:"road_end"`
	Background TileKind `json:"background" yaml:"background"`
	Border     TileKind `json:"border" yaml:"border"`
}

// DefaultTileSet mirrors the classic level look: road over grass inside a brick frame
func DefaultTileSet() TileSet {
	return TileSet{
		Road:       TileBasicRoad,
		RoadEnd:    TileEndStone,
		Background: TileGrass,
		Border:     TileBrick,
	}
}
