package mosaic

import "math/rand/v2"

// Corner identifies one corner of a cell, clockwise from the top left.
type Corner int

// Cell corners.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// NumCorners is the number of corners of a cell.
const NumCorners = 4

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "invalid"
	}
}

// Cell is one grid cell. A triangle cell is the square minus SkipCorner;
// SkipCorner is ignored for squares. RegionRoot is set by [Cluster].
type Cell struct {
	IsSquare   bool
	SkipCorner Corner
	RegionRoot int
}

// Grid is a row-major array of cells.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

// BuildGrid allocates cols*rows cells with random shapes. For every cell, in
// row-major order, it draws the square/triangle coin and then the skipped
// corner.
func BuildGrid(cols, rows int, rng *rand.Rand) *Grid {
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = Cell{
			IsSquare:   rng.Float64() > 0.5,
			SkipCorner: Corner(rng.IntN(NumCorners)),
		}
	}
	return &Grid{Cols: cols, Rows: rows, Cells: cells}
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.Cells) }

// Index returns the cell index for a column and row.
func (g *Grid) Index(col, row int) int { return row*g.Cols + col }
