// Package mosaic generates tiled mosaics and morphs between successive
// generations.
//
// # Overview
//
// A mosaic is a grid of cells. Each cell is either a square or a triangle
// obtained by cutting one corner off the square. Cells are clustered into
// regions with a size-capped union-find, and every region is painted with a
// single colour: large regions draw from the active accent palette, small
// ones from the neutral palette.
//
// One generation pass runs:
//
//	BuildGrid → Cluster → AssignColors → Capture
//
// and yields an immutable [Snapshot]. A [Driver] keeps two snapshots
// (current and next) and, every tick, blends them with [Interpolate] into a
// [Frame] of polygons. When a transition completes the next snapshot is
// promoted and a fresh one is generated.
//
// # Morphing
//
// Shapes change by moving vertices, never by adding or removing them. A
// corner that disappears slides into the cell centre, and a corner that
// appears slides out of it. Colours blend linearly per RGB channel.
//
// # Determinism
//
// All randomness comes from one [math/rand/v2.Rand] stream seeded from
// [Config.Seed], so the same configuration always produces the same
// animation.
//
// # Rendering
//
// Frames are backend-agnostic. [DrawFrame] replays a frame onto any
// [Renderer]; the render/sink package provides SVG, raster, GIF and
// terminal renderers. [Engine] wraps a driver with the pause, resume,
// resize and destroy lifecycle used by interactive front-ends.
package mosaic
