package models

// Position is a cell coordinate on the level grid. Y grows upward.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Unit steps used when drawing runs of tiles
var (
	Up    = Position{X: 0, Y: 1}
	Down  = Position{X: 0, Y: -1}
	Right = Position{X: 1, Y: 0}
	One   = Position{X: 1, Y: 1}
)

// Add returns p translated by o
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by -o
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}
