package mosaic

import "fmt"

// InterpolateCell blends one cell from curr to next at blend factor t.
//
// Geometry follows four cases:
//   - both squares, or triangles with the same skipped corner: the static
//     polygon
//   - triangles with different skipped corners: the corner curr skips grows
//     out of the centre while the corner next skips shrinks into it
//   - square to triangle: next's skipped corner shrinks into the centre
//   - triangle to square: curr's skipped corner grows out of the centre
//
// Morphing polygons always carry four vertices; a corner that is "absent"
// sits on the centre.
func InterpolateCell(curr, next CellState, origin Point, size, t float64) []Point {
	switch {
	case curr.IsSquare && next.IsSquare:
		return StaticShape(curr, origin, size)
	case !curr.IsSquare && !next.IsSquare && curr.SkipCorner == next.SkipCorner:
		return StaticShape(curr, origin, size)
	}

	corners, center := cellGeometry(origin, size)
	pts := make([]Point, NumCorners)
	for i, c := range corners {
		corner := Corner(i)
		switch {
		case !curr.IsSquare && corner == curr.SkipCorner:
			// emerging
			pts[i] = lerpPoint(center, c, t)
		case !next.IsSquare && corner == next.SkipCorner:
			// receding
			pts[i] = lerpPoint(c, center, t)
		default:
			pts[i] = c
		}
	}
	return pts
}

// Interpolate blends two snapshots of the same grid into shapes, one per
// cell, in cell order. It panics if the snapshots differ in size.
func Interpolate(curr, next Snapshot, cellSize, t float64) []Shape {
	if curr.Len() != next.Len() || curr.Cols != next.Cols {
		panic(fmt.Sprintf("mosaic: interpolating %dx%d snapshot into %dx%d", curr.Cols, curr.Rows, next.Cols, next.Rows))
	}

	shapes := make([]Shape, curr.Len())
	for i := range curr.Cells {
		c, n := curr.Cells[i], next.Cells[i]
		shapes[i] = Shape{
			Cell:   i,
			Fill:   lerpColor(c.Color, n.Color, t),
			Points: InterpolateCell(c, n, CellOrigin(i, curr.Cols, cellSize), cellSize, t),
		}
	}
	return shapes
}
