package mosaic

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Region is a group of adjacent cells sharing one colour. Root is the
// union-find root all members resolve to.
type Region struct {
	Root    int
	Members []int
	Color   colorful.Color
	Accent  bool
}

// Size returns the number of member cells.
func (r *Region) Size() int { return len(r.Members) }

// Partition maps union-find roots to regions. Roots are dense cell indices,
// so the lookup is a slice of slot numbers rather than a map.
type Partition struct {
	slots   []int
	Regions []Region
}

// Region returns the region whose root is root.
func (p *Partition) Region(root int) (*Region, bool) {
	if root < 0 || root >= len(p.slots) || p.slots[root] < 0 {
		return nil, false
	}
	return &p.Regions[p.slots[root]], true
}

// Len returns the number of regions.
func (p *Partition) Len() int { return len(p.Regions) }

// TotalCells returns the sum of all region sizes.
func (p *Partition) TotalCells() int {
	n := 0
	for i := range p.Regions {
		n += p.Regions[i].Size()
	}
	return n
}

// Cluster groups the cells of g into regions of at most maxRegionSize cells.
//
// Cells are visited in row-major order; each one tries to join its right and
// then its bottom neighbour, each with probability mergeProbability. A draw
// is only taken when the neighbour exists. Afterwards every cell's
// RegionRoot is resolved and regions are listed in order of their first
// member.
func Cluster(g *Grid, maxRegionSize int, mergeProbability float64, rng *rand.Rand) *Partition {
	uf := NewUnionFind(g.Len(), maxRegionSize)

	for row := range g.Rows {
		for col := range g.Cols {
			idx := g.Index(col, row)
			if col < g.Cols-1 && rng.Float64() < mergeProbability {
				uf.Union(idx, idx+1)
			}
			if row < g.Rows-1 && rng.Float64() < mergeProbability {
				uf.Union(idx, idx+g.Cols)
			}
		}
	}

	p := &Partition{slots: make([]int, g.Len())}
	for i := range p.slots {
		p.slots[i] = -1
	}
	for i := range g.Cells {
		root := uf.Find(i)
		g.Cells[i].RegionRoot = root
		slot := p.slots[root]
		if slot < 0 {
			slot = len(p.Regions)
			p.slots[root] = slot
			p.Regions = append(p.Regions, Region{Root: root})
		}
		p.Regions[slot].Members = append(p.Regions[slot].Members, i)
	}
	return p
}

// RegionEdge connects two touching regions, identified by their index in
// [Partition.Regions]. Weight counts the shared cell borders.
type RegionEdge struct {
	From, To int
	Weight   int
}

// Adjacency lists every pair of regions that share at least one cell border.
// Edges are ordered by first discovery in row-major order with From < To.
func Adjacency(g *Grid, p *Partition) []RegionEdge {
	index := make(map[[2]int]int)
	var edges []RegionEdge

	link := func(a, b int) {
		sa, sb := p.slots[g.Cells[a].RegionRoot], p.slots[g.Cells[b].RegionRoot]
		if sa == sb {
			return
		}
		if sa > sb {
			sa, sb = sb, sa
		}
		key := [2]int{sa, sb}
		if i, ok := index[key]; ok {
			edges[i].Weight++
			return
		}
		index[key] = len(edges)
		edges = append(edges, RegionEdge{From: sa, To: sb, Weight: 1})
	}

	for row := range g.Rows {
		for col := range g.Cols {
			idx := g.Index(col, row)
			if col < g.Cols-1 {
				link(idx, idx+1)
			}
			if row < g.Rows-1 {
				link(idx, idx+g.Cols)
			}
		}
	}
	return edges
}
