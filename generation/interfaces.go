package generation

import (
	"errors"

	"tilepath/server/models"
)

// Grid is the tile store the generator draws into. The generator only
// mutates it through these methods and never keeps a reference after a call.
type Grid interface {
	Set(pos models.Position, kind models.TileKind)
	Get(pos models.Position) (models.TileKind, bool)
	Clear()
	// Bounds returns the inclusive corners of all occupied cells, or ok=false
	// when the grid is empty.
	Bounds() (min, max models.Position, ok bool)
}

// Rand is the randomness source consumed by waypoint placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ErrInvalidConfig is returned when a level config cannot be generated
var ErrInvalidConfig = models.ErrInvalidConfig

// ErrNoWaypoints is returned when the connector is handed an empty path
var ErrNoWaypoints = errors.New("no waypoints to connect")

// intRange draws from [lo, hi)
func intRange(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// intRangeInclusive draws from [lo, hi]
func intRangeInclusive(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
