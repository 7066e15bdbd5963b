package sink

import (
	"encoding/json"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed    uint64
	palette string
	stats   *mosaic.RegionStats
}

// WithJSONSeed records the seed the frame was generated from.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONPalette records the active accent palette name.
func WithJSONPalette(name string) JSONOption { return func(r *jsonRenderer) { r.palette = name } }

// WithJSONStats includes the region statistics of the generation.
func WithJSONStats(s mosaic.RegionStats) JSONOption {
	return func(r *jsonRenderer) { r.stats = &s }
}

type jsonOutput struct {
	Width      float64             `json:"width"`
	Height     float64             `json:"height"`
	Background string              `json:"background"`
	Progress   float64             `json:"progress"`
	Eased      float64             `json:"eased"`
	Seed       uint64              `json:"seed,omitempty"`
	Palette    string              `json:"palette,omitempty"`
	Stats      *mosaic.RegionStats `json:"stats,omitempty"`
	Shapes     []jsonShape         `json:"shapes"`
}

type jsonShape struct {
	Cell   int          `json:"cell"`
	Fill   string       `json:"fill"`
	Points [][2]float64 `json:"points"`
}

// RenderJSON exports the frame geometry as a pretty-printed JSON document.
func RenderJSON(f mosaic.Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      f.Width,
		Height:     f.Height,
		Background: f.Background.Hex(),
		Progress:   f.Progress,
		Eased:      f.Eased,
		Seed:       r.seed,
		Palette:    r.palette,
		Stats:      r.stats,
		Shapes:     make([]jsonShape, len(f.Shapes)),
	}
	for i, s := range f.Shapes {
		pts := make([][2]float64, len(s.Points))
		for j, p := range s.Points {
			pts[j] = [2]float64{p.X, p.Y}
		}
		out.Shapes[i] = jsonShape{Cell: s.Cell, Fill: s.Fill.Clamped().Hex(), Points: pts}
	}
	return json.MarshalIndent(out, "", "  ")
}
