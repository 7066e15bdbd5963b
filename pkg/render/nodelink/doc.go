// Package nodelink renders the region adjacency graph of a mosaic
// generation as a node-link diagram.
//
// # Overview
//
// Every region of a [mosaic.Partition] becomes a node filled with the
// region's colour, and every pair of regions sharing a cell border becomes
// an undirected edge whose pen width grows with the shared border length.
// The diagram is useful for checking how the size cap and merge
// probability shape a generation.
//
// # Usage
//
//	gen := mosaic.Generate(cols, rows, cfg, accent, neutral, rng)
//	edges := mosaic.Adjacency(gen.Grid, gen.Partition)
//	dot := nodelink.ToDOT(gen.Partition, edges, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels include region size and root cell
//   - MinWeight: hide edges with a shorter shared border
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
//
// [mosaic.Partition]: github.com/matzehuels/mosaic/pkg/mosaic.Partition
package nodelink
