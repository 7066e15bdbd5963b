package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/buildinfo"
	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/gallery"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/palette"
)

// formatMeta is the cache slot for [Meta] alongside the artifacts.
const formatMeta = "meta"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its backends - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Gallery gallery.Store
	Logger  *log.Logger
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer scoped to the build version is used.
// If c is nil, a NullCache is used (caching disabled).
// A nil store disables recording.
func NewRunner(c cache.Cache, keyer cache.Keyer, store gallery.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), "mosaic:"+buildinfo.Version+":")
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   cache.Observed(c),
		Keyer:   keyer,
		Gallery: store,
		Logger:  logger,
	}
}

// NewDriver builds the driver described by opts. Options must already be
// validated.
func NewDriver(opts Options) (*mosaic.Driver, error) {
	dopts, err := opts.DriverOptions()
	if err != nil {
		return nil, err
	}
	return mosaic.NewDriver(opts.Config, dopts...)
}

// NewEngine builds a live engine for opts, as used by the terminal viewer.
// Options must already be validated.
func NewEngine(opts Options) (*mosaic.Engine, error) {
	dopts, err := opts.DriverOptions()
	if err != nil {
		return nil, err
	}
	return mosaic.NewEngine(opts.Config, dopts...)
}

// RenderStill advances a fresh driver opts.Ticks times and renders the frame
// it lands on.
func (r *Runner) RenderStill(ctx context.Context, opts Options) (*Result, error) {
	return r.run(ctx, KindStill, opts, func(opts Options) (map[string][]byte, Meta, error) {
		d, err := NewDriver(opts)
		if err != nil {
			return nil, Meta{}, err
		}
		for i := range opts.Ticks {
			if i%MaxAnimationFrames == 0 {
				if err := ctx.Err(); err != nil {
					return nil, Meta{}, err
				}
			}
			d.Advance()
		}
		f := d.Frame()
		meta := driverMeta(d, 1)
		artifacts, err := renderStill(f, meta, opts)
		return artifacts, meta, err
	})
}

// RenderAnimation renders opts.Cycles full transitions as an animated GIF.
//
// A fresh driver starts with identical current and next snapshots, so the
// first (static) transition is skipped before recording, along with any
// extra opts.Ticks.
func (r *Runner) RenderAnimation(ctx context.Context, opts Options) (*Result, error) {
	return r.run(ctx, KindAnimation, opts, func(opts Options) (map[string][]byte, Meta, error) {
		d, err := NewDriver(opts)
		if err != nil {
			return nil, Meta{}, err
		}
		for range opts.Config.TransitionFrames + opts.Ticks {
			d.Advance()
		}
		n := opts.Cycles * opts.Config.TransitionFrames
		frames := make([]mosaic.Frame, 0, n)
		for range n {
			if err := ctx.Err(); err != nil {
				return nil, Meta{}, err
			}
			frames = append(frames, d.Tick())
		}
		meta := driverMeta(d, n)
		artifacts, err := renderAnimation(frames, opts)
		return artifacts, meta, err
	})
}

// Inspect renders the region statistics and adjacency graph of the first
// generation a driver with opts would show.
func (r *Runner) Inspect(ctx context.Context, opts Options) (*Result, error) {
	return r.run(ctx, KindInspect, opts, func(opts Options) (map[string][]byte, Meta, error) {
		ins, err := NewInspection(opts)
		if err != nil {
			return nil, Meta{}, err
		}
		artifacts, err := renderInspection(ctx, ins, opts)
		return artifacts, ins.Meta, err
	})
}

type renderFunc func(opts Options) (map[string][]byte, Meta, error)

// run is the cache-aware wrapper shared by every operation.
func (r *Runner) run(ctx context.Context, kind string, opts Options, render renderFunc) (result *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(kind); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, kind, opts.Formats)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, kind, opts.Formats, time.Since(start), err)
	}()

	result = &Result{}
	if !opts.Refresh {
		if artifacts, meta, ok := r.lookup(ctx, kind, opts); ok {
			result.Artifacts, result.Meta, result.CacheHit = artifacts, meta, true
		}
	}

	if !result.CacheHit {
		artifacts, meta, err := render(opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", kind, err)
		}
		result.Artifacts, result.Meta = artifacts, meta
		r.store(ctx, kind, opts, artifacts, meta)
	}

	if opts.Record && r.Gallery != nil {
		rec := gallery.NewRecord(kind, opts.Config)
		rec.Formats = opts.Formats
		rec.Palette = result.Meta.Palette
		rec.Ticks = opts.Ticks
		rec.Stats = result.Meta.Stats
		if err := r.Gallery.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("record %s: %w", kind, err)
		}
		result.Record = &rec
	}

	result.Duration = time.Since(start)
	r.Logger.Debug("pipeline run",
		"kind", kind,
		"formats", opts.Formats,
		"cache_hit", result.CacheHit,
		"duration", result.Duration)
	return result, nil
}

func (r *Runner) key(kind, format string, opts Options) string {
	return r.Keyer.ArtifactKey(cache.ArtifactKeyOpts{
		Kind:   kind,
		Format: format,
		Params: opts.keyParams(kind),
	})
}

// lookup returns the cached artifacts if every requested format and the
// meta entry are present.
func (r *Runner) lookup(ctx context.Context, kind string, opts Options) (map[string][]byte, Meta, bool) {
	var meta Meta
	data, hit, err := r.Cache.Get(ctx, r.key(kind, formatMeta, opts))
	if err != nil || !hit || json.Unmarshal(data, &meta) != nil {
		return nil, Meta{}, false
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.key(kind, format, opts))
		if err != nil || !hit {
			return nil, Meta{}, false
		}
		artifacts[format] = data
	}
	return artifacts, meta, true
}

func (r *Runner) store(ctx context.Context, kind string, opts Options, artifacts map[string][]byte, meta Meta) {
	for format, data := range artifacts {
		if err := r.Cache.Set(ctx, r.key(kind, format, opts), data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
		}
	}
	if data, err := json.Marshal(meta); err == nil {
		_ = r.Cache.Set(ctx, r.key(kind, formatMeta, opts), data, cache.TTLArtifact)
	}
}

// Close releases resources held by the runner.
func (r *Runner) Close(ctx context.Context) error {
	var err error
	if r.Cache != nil {
		err = r.Cache.Close()
	}
	if r.Gallery != nil {
		if gerr := r.Gallery.Close(ctx); err == nil {
			err = gerr
		}
	}
	return err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func driverMeta(d *mosaic.Driver, frames int) Meta {
	cols, rows := d.Dimensions()
	return Meta{
		Palette: d.Palette().Name,
		Cols:    cols,
		Rows:    rows,
		Frames:  frames,
		Stats:   d.Stats(),
	}
}

// firstGeneration reproduces the generation a fresh driver starts with.
func firstGeneration(opts Options) (mosaic.Generation, error) {
	accents, err := opts.accents()
	if err != nil {
		return mosaic.Generation{}, err
	}
	rng := mosaic.NewRand(opts.Config.Seed)
	rot, err := palette.NewRotator(opts.Config.Rotation, accents, rng)
	if err != nil {
		return mosaic.Generation{}, err
	}
	cols, rows := opts.Config.Dimensions()
	return mosaic.Generate(cols, rows, opts.Config, rot.Current(), palette.Neutral(), rng), nil
}
