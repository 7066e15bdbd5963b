package mosaic

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// CellState is the resolved, renderer-ready state of one cell.
type CellState struct {
	Color      colorful.Color
	IsSquare   bool
	SkipCorner Corner
}

// Snapshot is the frozen state of a whole grid at one generation.
type Snapshot struct {
	Cols, Rows int
	Cells      []CellState
}

// Len returns the number of cells.
func (s Snapshot) Len() int { return len(s.Cells) }

// Clone returns a copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Cols: s.Cols, Rows: s.Rows, Cells: slices.Clone(s.Cells)}
}

// Capture resolves every cell of g against p into a newly allocated
// snapshot. It panics if a cell's RegionRoot has no region, which can only
// happen if the clustering pass is broken.
func Capture(g *Grid, p *Partition) Snapshot {
	s := Snapshot{Cols: g.Cols, Rows: g.Rows, Cells: make([]CellState, g.Len())}
	for i, cell := range g.Cells {
		region, ok := p.Region(cell.RegionRoot)
		if !ok {
			panic(fmt.Sprintf("mosaic: cell %d references unknown region root %d", i, cell.RegionRoot))
		}
		s.Cells[i] = CellState{
			Color:      region.Color,
			IsSquare:   cell.IsSquare,
			SkipCorner: cell.SkipCorner,
		}
	}
	return s
}
