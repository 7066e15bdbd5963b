// Package pipeline provides the render pipeline shared by the CLI and the
// HTTP service.
//
// The pipeline wraps a [mosaic.Driver] with everything around it: option
// validation and defaults, palette resolution, format rendering through
// [sink] and [nodelink], artifact caching and gallery recording. By
// centralizing this logic, the CLI and the server behave identically for the
// same options.
//
// # Operations
//
//   - [Runner.RenderStill]: advance the driver a number of ticks and render
//     one frame as SVG, PNG and/or JSON
//   - [Runner.RenderAnimation]: render whole transition cycles as an
//     animated GIF
//   - [Runner.Inspect]: region statistics and the region adjacency graph of
//     one generation as JSON, DOT and/or SVG
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, nil, logger)
//	opts := pipeline.Options{
//	    Config:  mosaic.DefaultConfig(),
//	    Ticks:   12,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.RenderStill(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Rendering is deterministic for a given seed, so artifacts are cached by a
// hash of the options that produced them.
//
// [sink]: github.com/matzehuels/mosaic/pkg/render/sink
// [nodelink]: github.com/matzehuels/mosaic/pkg/render/nodelink
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/gallery"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/palette"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCycles is the number of transitions in an animation.
	DefaultCycles = 2

	// DefaultFPS is the animation playback rate.
	DefaultFPS = 25.0

	// DefaultScale is the raster scale factor.
	DefaultScale = 1.0

	// MaxAnimationFrames bounds the size of a single GIF.
	MaxAnimationFrames = 600

	// MaxTicks bounds how far a still is advanced before rendering.
	MaxTicks = 100 * MaxAnimationFrames

	// MaxRasterPixels bounds the area of a PNG or GIF frame.
	MaxRasterPixels = 50_000_000
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatGIF  = "gif"
	FormatDOT  = "dot"
)

// Render kinds, matching the cache artifact kinds.
const (
	KindStill     = "still"
	KindAnimation = "animation"
	KindInspect   = "inspect"
)

// ValidFormats lists the formats each kind can produce.
var ValidFormats = map[string][]string{
	KindStill:     {FormatSVG, FormatPNG, FormatJSON},
	KindAnimation: {FormatGIF},
	KindInspect:   {FormatJSON, FormatDOT, FormatSVG, FormatPNG},
}

var defaultFormats = map[string]string{
	KindStill:     FormatSVG,
	KindAnimation: FormatGIF,
	KindInspect:   FormatJSON,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Engine options
	Config mosaic.Config `json:"config"`

	// Palette pins the accent palette by name. Empty rotates through the
	// built-in accents plus Palettes according to Config.Rotation.
	Palette  string         `json:"palette,omitempty"`
	Palettes []palette.Spec `json:"palettes,omitempty"`

	// Ticks advances the driver before rendering.
	Ticks int `json:"ticks,omitempty"`

	// Animation options
	Cycles int     `json:"cycles,omitempty"`
	FPS    float64 `json:"fps,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	PixelWidth int      `json:"pixel_width,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"`

	// Runtime options (not part of the cache key)
	Refresh bool        `json:"-"`
	Record  bool        `json:"-"`
	Logger  *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns options with the default engine configuration.
func DefaultOptions() Options {
	return Options{Config: mosaic.DefaultConfig()}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Meta describes the generation that was rendered.
	Meta Meta

	// Record is the gallery record, if the run was recorded.
	Record *gallery.Record

	// CacheHit reports whether every artifact came from the cache.
	CacheHit bool

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Meta is the cached description of a rendered generation.
type Meta struct {
	Palette string             `json:"palette"`
	Cols    int                `json:"cols"`
	Rows    int                `json:"rows"`
	Frames  int                `json:"frames"`
	Stats   mosaic.RegionStats `json:"stats"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid for kind.
func ValidateFormat(kind, format string) error {
	valid, ok := ValidFormats[kind]
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "invalid kind: %q", kind)
	}
	if !slices.Contains(valid, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid %s format: %q (must be one of: %s)",
			kind, format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid for kind.
func ValidateFormats(kind string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(kind, f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for kind.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults(kind string) error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		if f, ok := defaultFormats[kind]; ok {
			o.Formats = []string{f}
		}
	}
	if err := ValidateFormats(kind, o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)

	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Ticks < 0 || o.Ticks > MaxTicks {
		return errors.New(errors.ErrCodeInvalidInput, "ticks must be between 0 and %d, got %d", MaxTicks, o.Ticks)
	}
	if o.Cycles == 0 {
		o.Cycles = DefaultCycles
	}
	if o.Cycles < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cycles must be positive, got %d", o.Cycles)
	}
	if kind == KindAnimation && o.Cycles > MaxAnimationFrames/o.Config.TransitionFrames {
		return errors.New(errors.ErrCodeInvalidInput, "animation of %d cycles x %d frames exceeds %d frames",
			o.Cycles, o.Config.TransitionFrames, MaxAnimationFrames)
	}
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.FPS < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "fps must be positive, got %v", o.FPS)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) || o.PixelWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale and pixel width must be positive and finite")
	}
	if px := o.rasterPixels(kind); px > MaxRasterPixels {
		return errors.New(errors.ErrCodeInvalidInput, "raster output of %.0f pixels exceeds %d", px, MaxRasterPixels)
	}
	if _, err := o.accents(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// rasterPixels is the pixel area of one PNG or GIF frame for kind, or zero
// when no raster format is requested.
func (o *Options) rasterPixels(kind string) float64 {
	if kind == KindInspect || !slices.ContainsFunc(o.Formats, func(f string) bool {
		return f == FormatPNG || f == FormatGIF
	}) {
		return 0
	}
	w, h := o.Config.Width, o.Config.Height
	switch {
	case o.PixelWidth > 0:
		return float64(o.PixelWidth) * float64(o.PixelWidth) * h / w
	case kind == KindStill:
		return w * h * o.Scale * o.Scale
	default:
		return w * h
	}
}

// customPalettes converts the inline palette specs.
func (o *Options) customPalettes() ([]palette.Palette, error) {
	out := make([]palette.Palette, 0, len(o.Palettes))
	for _, s := range o.Palettes {
		p, err := palette.FromSpec(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// accents resolves the accent palettes: the pinned palette alone, or the
// built-in accents followed by any custom ones.
func (o *Options) accents() ([]palette.Palette, error) {
	custom, err := o.customPalettes()
	if err != nil {
		return nil, err
	}
	if o.Palette != "" {
		p, ok := palette.Lookup(o.Palette, custom...)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidPalette, "unknown palette: %q (available: %s)",
				o.Palette, strings.Join(palette.Names(custom...), ", "))
		}
		return []palette.Palette{p}, nil
	}
	return append(palette.Accents(), custom...), nil
}

// DriverOptions resolves the palettes and logger into driver options.
func (o *Options) DriverOptions() ([]mosaic.DriverOption, error) {
	accents, err := o.accents()
	if err != nil {
		return nil, err
	}
	return []mosaic.DriverOption{
		mosaic.WithAccents(accents...),
		mosaic.WithLogger(o.Logger),
	}, nil
}

// keyParams is the part of the options that determines the output.
func (o *Options) keyParams(kind string) any {
	type params struct {
		Config     mosaic.Config
		Palette    string
		Palettes   []palette.Spec
		Ticks      int
		Cycles     int     `json:",omitempty"`
		FPS        float64 `json:",omitempty"`
		Scale      float64
		PixelWidth int
		Detailed   bool
	}
	p := params{
		Config:     o.Config,
		Palette:    o.Palette,
		Palettes:   o.Palettes,
		Ticks:      o.Ticks,
		Scale:      o.Scale,
		PixelWidth: o.PixelWidth,
		Detailed:   o.Detailed,
	}
	if kind == KindAnimation {
		p.Cycles, p.FPS = o.Cycles, o.FPS
	}
	return p
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
