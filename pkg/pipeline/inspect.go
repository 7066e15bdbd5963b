package pipeline

import (
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/render/nodelink"
)

// Inspection describes one generation: its regions, their adjacency and the
// resulting statistics.
type Inspection struct {
	Generation mosaic.Generation
	Edges      []mosaic.RegionEdge
	DOT        string
	Meta       Meta
}

// NewInspection builds the inspection of the first generation a driver
// with opts would show. Options must already be validated.
func NewInspection(opts Options) (*Inspection, error) {
	gen, err := firstGeneration(opts)
	if err != nil {
		return nil, err
	}
	edges := mosaic.Adjacency(gen.Grid, gen.Partition)
	return &Inspection{
		Generation: gen,
		Edges:      edges,
		DOT:        nodelink.ToDOT(gen.Partition, edges, nodelink.Options{Detailed: opts.Detailed}),
		Meta: Meta{
			Palette: gen.Palette,
			Cols:    gen.Grid.Cols,
			Rows:    gen.Grid.Rows,
			Frames:  1,
			Stats:   mosaic.ComputeStats(gen.Partition),
		},
	}, nil
}

// Report is the JSON form of an inspection.
type Report struct {
	Meta    Meta           `json:"meta"`
	Regions []RegionReport `json:"regions"`
	Edges   int            `json:"edges"`
}

// RegionReport summarises one region.
type RegionReport struct {
	Index  int    `json:"index"`
	Root   int    `json:"root"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
	Accent bool   `json:"accent"`
}

// Report returns the JSON-friendly summary.
func (ins *Inspection) Report() Report {
	regions := ins.Generation.Partition.Regions
	out := Report{
		Meta:    ins.Meta,
		Regions: make([]RegionReport, len(regions)),
		Edges:   len(ins.Edges),
	}
	for i, r := range regions {
		out.Regions[i] = RegionReport{
			Index:  i,
			Root:   r.Root,
			Size:   r.Size(),
			Color:  r.Color.Hex(),
			Accent: r.Accent,
		}
	}
	return out
}
