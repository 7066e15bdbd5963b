// Package pkg provides the core libraries for mosaic generation and morphing.
//
// # Overview
//
// Mosaic tiles a canvas with squares and corner-cut triangles, clusters the
// cells into capacity-bounded colour regions and continuously morphs one
// random generation into the next. The pkg directory is organized into four
// main areas:
//
//  1. [mosaic] - The engine (grid, clustering, colouring, snapshots,
//     interpolation, transition driver)
//  2. [render] - Output sinks and region graph diagrams
//  3. [pipeline] - Orchestration shared by the CLI and the HTTP service
//  4. Supporting packages: [palette], [config], [cache], [gallery],
//     [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow through one transition:
//
//	GridBuilder (random shapes)
//	         ↓
//	RegionClusterer (union-find with a size cap)
//	         ↓
//	ColorAssigner (accent or neutral palette by region size)
//	         ↓
//	StateCapture (immutable snapshot)
//	         ↓
//	Interpolator (current → next at eased progress)
//	         ↓
//	Renderer (SVG, PNG, JSON, GIF, terminal)
//
// # Quick Start
//
// Render the frame a driver shows after a few ticks:
//
//	import (
//	    "github.com/matzehuels/mosaic/pkg/mosaic"
//	    "github.com/matzehuels/mosaic/pkg/render/sink"
//	)
//
//	d, _ := mosaic.NewDriver(mosaic.DefaultConfig())
//	for range 12 {
//	    d.Advance()
//	}
//	svg := sink.RenderSVG(d.Frame())
//
// # Main Packages
//
// [mosaic] - The transition engine. [mosaic.Driver] owns the current and
// next snapshots and an integer frame counter; [mosaic.Engine] adds a mutex,
// pause/resume, resize and destroy for live use.
//
// [palette] - Named colour palettes and the accent rotation policies.
//
// [render/sink] - Frame renderers implementing [mosaic.Renderer].
//
// [render/nodelink] - Region adjacency graphs as DOT and SVG via Graphviz.
//
// [pipeline] - Option validation, caching and gallery recording around the
// driver. The CLI and the HTTP service both go through [pipeline.Runner].
//
// [cache] - Artifact caches (file, Redis, null) with pluggable key schemes.
//
// [gallery] - Records of rendered generations (memory, MongoDB).
//
// [config] - The TOML configuration file.
//
// [mosaic]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/mosaic
// [mosaic.Driver]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/mosaic#Driver
// [mosaic.Engine]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/mosaic#Engine
// [mosaic.Renderer]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/mosaic#Renderer
// [render]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/pipeline#Runner
// [palette]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/palette
// [config]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/cache
// [gallery]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/gallery
// [errors]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/buildinfo
package pkg
