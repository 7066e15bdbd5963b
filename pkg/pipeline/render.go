package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/render/nodelink"
	"github.com/matzehuels/mosaic/pkg/render/sink"
)

// renderStill renders one frame in every requested format.
func renderStill(f mosaic.Frame, meta Meta, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(f)
		case FormatPNG:
			data, err = sink.RenderPNG(f, pngOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(f,
				sink.WithJSONSeed(opts.Config.Seed),
				sink.WithJSONPalette(meta.Palette),
				sink.WithJSONStats(meta.Stats))
		default:
			return nil, fmt.Errorf("unsupported still format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func pngOptions(opts Options) []sink.PNGOption {
	if opts.PixelWidth > 0 {
		return []sink.PNGOption{sink.WithWidth(opts.PixelWidth)}
	}
	return []sink.PNGOption{sink.WithScale(opts.Scale)}
}

// renderAnimation encodes the recorded frames.
func renderAnimation(frames []mosaic.Frame, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if format != FormatGIF {
			return nil, fmt.Errorf("unsupported animation format: %s", format)
		}
		gifOpts := []sink.GIFOption{sink.WithFPS(opts.FPS)}
		if opts.PixelWidth > 0 {
			gifOpts = append(gifOpts, sink.WithGIFWidth(opts.PixelWidth))
		}
		data, err := sink.RenderGIF(frames, gifOpts...)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderInspection renders the inspection report.
func renderInspection(ctx context.Context, ins *Inspection, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = json.MarshalIndent(ins.Report(), "", "  ")
		case FormatDOT:
			data = []byte(ins.DOT)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, ins.DOT)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, ins.DOT)
		default:
			return nil, fmt.Errorf("unsupported inspect format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
