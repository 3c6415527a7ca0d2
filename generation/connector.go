package generation

import "tilepath/server/models"

// ConnectWaypoints draws the road between waypoints. The first waypoint
// drops straight down to floorY, then every pair is joined by an elbow: a run
// to the right along the earlier waypoint's row followed by a run up or down
// into the next waypoint.
func ConnectWaypoints(grid Grid, waypoints []models.Position, floorY int, road models.TileKind) error {
	if len(waypoints) == 0 {
		return ErrNoWaypoints
	}

	start := waypoints[0]
	placeRun(grid, start, models.Down, abs(floorY-start.Y), road)

	for i := 0; i < len(waypoints)-1; i++ {
		target := waypoints[i+1]

		current := placeRun(grid, waypoints[i], models.Right, target.X-waypoints[i].X, road)
		placeRun(grid, current, verticalStep(current, target), abs(target.Y-current.Y), road)
	}
	return nil
}

// placeRun writes count tiles stepping away from from (exclusive) and
// returns the last cell reached.
func placeRun(grid Grid, from, step models.Position, count int, tile models.TileKind) models.Position {
	current := from
	for i := 0; i < count; i++ {
		current = current.Add(step)
		grid.Set(current, tile)
	}
	return current
}

func verticalStep(current, target models.Position) models.Position {
	if target.Y-current.Y > 0 {
		return models.Up
	}
	return models.Down
}
