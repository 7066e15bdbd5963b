package mosaic

import (
	"math/rand/v2"

	"github.com/matzehuels/mosaic/pkg/palette"
)

// Generation is the output of one full generation pass. Grid and Partition
// are only kept for inspection; the engine itself retains the snapshot.
type Generation struct {
	Grid      *Grid
	Partition *Partition
	Snapshot  Snapshot
	Palette   string
}

// Generate runs BuildGrid, Cluster, AssignColors and Capture for a
// cols x rows grid.
func Generate(cols, rows int, cfg Config, accent, neutral palette.Palette, rng *rand.Rand) Generation {
	g := BuildGrid(cols, rows, rng)
	p := Cluster(g, cfg.MaxRegionSize, cfg.MergeProbability, rng)
	AssignColors(p, accent, neutral, cfg.RegionThreshold, rng)
	return Generation{
		Grid:      g,
		Partition: p,
		Snapshot:  Capture(g, p),
		Palette:   accent.Name,
	}
}

// NewRand returns the random stream used for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
