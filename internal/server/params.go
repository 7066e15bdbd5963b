package server

import (
	"net/url"
	"strconv"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// Query parameters understood by the render routes.
const (
	paramWidth    = "width"
	paramHeight   = "height"
	paramCell     = "cell"
	paramFrames   = "frames"
	paramSeed     = "seed"
	paramEasing   = "easing"
	paramRotation = "rotation"
	paramPalette  = "palette"
	paramTicks    = "ticks"
	paramCycles   = "cycles"
	paramFPS      = "fps"
	paramScale    = "scale"
	paramPixels   = "px"
	paramDetailed = "detailed"
	paramRecord   = "record"
	paramRefresh  = "refresh"
)

// options applies the query to a copy of the base options.
func (s *Server) options(q url.Values) (pipeline.Options, error) {
	opts := s.base
	opts.Formats = nil
	p := queryParser{q: q}

	p.float(paramWidth, &opts.Config.Width)
	p.float(paramHeight, &opts.Config.Height)
	p.float(paramCell, &opts.Config.CellSize)
	p.int(paramFrames, &opts.Config.TransitionFrames)
	p.uint(paramSeed, &opts.Config.Seed)
	p.string(paramEasing, &opts.Config.Easing)
	p.string(paramRotation, &opts.Config.Rotation)
	p.string(paramPalette, &opts.Palette)
	p.int(paramTicks, &opts.Ticks)
	p.int(paramCycles, &opts.Cycles)
	p.float(paramFPS, &opts.FPS)
	p.float(paramScale, &opts.Scale)
	p.int(paramPixels, &opts.PixelWidth)
	p.bool(paramDetailed, &opts.Detailed)
	p.bool(paramRecord, &opts.Record)
	p.bool(paramRefresh, &opts.Refresh)
	return opts, p.err
}

// queryParser keeps the first conversion error so callers can parse every
// field and check once.
type queryParser struct {
	q   url.Values
	err error
}

func (p *queryParser) value(name string) (string, bool) {
	if p.err != nil || !p.q.Has(name) {
		return "", false
	}
	return p.q.Get(name), true
}

func (p *queryParser) fail(name, v string) {
	p.err = errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, v)
}

func (p *queryParser) string(name string, dst *string) {
	if v, ok := p.value(name); ok {
		*dst = v
	}
}

func (p *queryParser) float(name string, dst *float64) {
	if v, ok := p.value(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			p.fail(name, v)
			return
		}
		*dst = f
	}
}

func (p *queryParser) int(name string, dst *int) {
	if v, ok := p.value(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(name, v)
			return
		}
		*dst = n
	}
}

func (p *queryParser) uint(name string, dst *uint64) {
	if v, ok := p.value(name); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.fail(name, v)
			return
		}
		*dst = n
	}
}

func (p *queryParser) bool(name string, dst *bool) {
	if v, ok := p.value(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(name, v)
			return
		}
		*dst = b
	}
}
