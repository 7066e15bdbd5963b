// Package render groups the output side of mosaic.
//
// # Overview
//
// The engine in [mosaic] only produces frames: a background colour plus one
// coloured polygon per grid cell. This package tree turns those frames into
// files and diagrams:
//
//   - [sink]: frame renderers (SVG, PNG, JSON, animated GIF, terminal)
//   - [nodelink]: region adjacency diagrams rendered with Graphviz
//
// Both SVG and raster sinks implement [mosaic.Renderer], so a live
// [mosaic.Engine] can draw straight onto them.
//
// [mosaic]: github.com/matzehuels/mosaic/pkg/mosaic
// [mosaic.Renderer]: github.com/matzehuels/mosaic/pkg/mosaic.Renderer
// [mosaic.Engine]: github.com/matzehuels/mosaic/pkg/mosaic.Engine
// [sink]: github.com/matzehuels/mosaic/pkg/render/sink
// [nodelink]: github.com/matzehuels/mosaic/pkg/render/nodelink
package render
