package generation

import "tilepath/server/models"

// TraceBorder returns the perimeter of the rectangle spanned by the two
// corners in a normalized frame: i runs along the longer side, j along the
// shorter one, both starting at 0. A rectangle with a zero-length side has
// no perimeter.
func TraceBorder(topLeft, bottomRight models.Position) []models.Position {
	height := abs(topLeft.Y - bottomRight.Y)
	width := abs(topLeft.X - bottomRight.X)

	long := max(height, width)
	short := min(height, width)
	if long == 0 || short == 0 {
		return nil
	}

	contour := make([]models.Position, 0, 2*(long+short))
	for i := 0; i < long; i++ {
		for j := 0; j < short; j++ {
			if i == 0 || i == long-1 || j == 0 || j == short-1 {
				contour = append(contour, models.Position{X: i, Y: j})
			}
		}
	}
	return contour
}

// borderCells frames the inclusive box [origin, hi] one cell outside it, in
// absolute grid coordinates.
func borderCells(origin, hi models.Position) []models.Position {
	frameMin := origin.Sub(models.One)
	frameEnd := hi.Add(models.One).Add(models.One)
	tallerThanWide := abs(frameMin.Y-frameEnd.Y) > abs(frameMin.X-frameEnd.X)

	cells := TraceBorder(frameMin, frameEnd)
	for k, cell := range cells {
		if tallerThanWide {
			cell = models.Position{X: cell.Y, Y: cell.X}
		}
		cells[k] = frameMin.Add(cell)
	}
	return cells
}
