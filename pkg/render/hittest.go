package render

import (
	"github.com/cbodonnell/tictaccube/pkg/game"
	"github.com/cbodonnell/tictaccube/pkg/projection"
)

// CellCorners returns the projected corners of a cell on the front face.
func CellCorners(t projection.Transform, idx int) []projection.Point {
	corners := square(CellCenter(t, idx), t.Size()/6)
	return t.ProjectAll(corners[:]...)
}

// CellAt returns the cell under the surface point (x, y), or NoCell.
// Cells are tested with the cube at rest, whatever t's flip angle.
func CellAt(t projection.Transform, x, y float64) int {
	rest := t.WithFlip(0)
	for idx := 0; idx < game.BoardSize; idx++ {
		if PointInPolygon(x, y, CellCorners(rest, idx)) {
			return idx
		}
	}
	return NoCell
}

// PointInPolygon tests containment with the even-odd rule.
func PointInPolygon(x, y float64, polygon []projection.Point) bool {
	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
