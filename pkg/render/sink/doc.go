// Package sink provides output format renderers for mosaic frames.
//
// # Overview
//
// A "sink" turns a [mosaic.Frame] (or a sequence of frames) into a final
// output format. This package provides:
//
//   - SVG: one <polygon> per shape, see [RenderSVG]
//   - PNG: rasterised with gg, optionally rescaled, see [RenderPNG]
//   - JSON: the frame geometry for external tools, see [RenderJSON]
//   - GIF: an animated loop of frames, see [RenderGIF]
//   - Terminal: half-block characters coloured with lipgloss, see
//     [RenderTerminal]
//
// The SVG and raster sinks implement [mosaic.Renderer], so they can also be
// handed directly to [mosaic.Engine.Step]:
//
//	svg := sink.NewSVG(width, height)
//	_ = engine.Step(svg)
//	data := svg.Bytes()
//
// # Adding New Formats
//
// Implement [mosaic.Renderer] and replay frames onto it with
// [mosaic.DrawFrame], or walk f.Shapes directly for data formats.
//
// [mosaic.Frame]: github.com/matzehuels/mosaic/pkg/mosaic.Frame
// [mosaic.Renderer]: github.com/matzehuels/mosaic/pkg/mosaic.Renderer
// [mosaic.DrawFrame]: github.com/matzehuels/mosaic/pkg/mosaic.DrawFrame
// [mosaic.Engine.Step]: github.com/matzehuels/mosaic/pkg/mosaic.Engine.Step
package sink
