package mosaic

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/palette"
)

// =============================================================================
// Options
// =============================================================================

// DriverOption configures a [Driver].
type DriverOption func(*driverOptions)

type driverOptions struct {
	accents []palette.Palette
	rotator palette.Rotator
	neutral palette.Palette
	logger  *log.Logger
	rng     *rand.Rand
}

// WithAccents sets the accent palettes rotated according to [Config.Rotation].
func WithAccents(p ...palette.Palette) DriverOption {
	return func(o *driverOptions) { o.accents = p }
}

// WithRotator replaces the accent rotation policy entirely.
func WithRotator(r palette.Rotator) DriverOption {
	return func(o *driverOptions) { o.rotator = r }
}

// WithNeutral sets the palette used for small regions.
func WithNeutral(p palette.Palette) DriverOption {
	return func(o *driverOptions) { o.neutral = p }
}

// WithLogger sets the logger used for regeneration events.
func WithLogger(l *log.Logger) DriverOption {
	return func(o *driverOptions) { o.logger = l }
}

// WithRand replaces the random stream derived from [Config.Seed].
func WithRand(rng *rand.Rand) DriverOption {
	return func(o *driverOptions) { o.rng = rng }
}

// =============================================================================
// Driver
// =============================================================================

// Driver is the transition state machine. It owns the current and next
// snapshots and the progress between them.
//
// Progress is kept as an integer step so a transition lasts exactly
// TransitionFrames ticks; Progress() = step / TransitionFrames is always in
// [0,1). A Driver is not safe for concurrent use; see [Engine].
type Driver struct {
	cfg     Config
	rng     *rand.Rand
	rotator palette.Rotator
	neutral palette.Palette
	ease    Easing
	logger  *log.Logger

	cols, rows    int
	current, next Snapshot
	step          int
	cycle         int
	stats         RegionStats
}

// NewDriver validates cfg and builds the first snapshot pair. Configuration
// problems are returned here and never surface per frame.
func NewDriver(cfg Config, opts ...DriverOption) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := driverOptions{accents: palette.Accents(), neutral: palette.Neutral()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(cfg.Seed)
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := o.neutral.Validate(); err != nil {
		return nil, err
	}
	if o.rotator == nil {
		r, err := palette.NewRotator(cfg.Rotation, o.accents, o.rng)
		if err != nil {
			return nil, err
		}
		o.rotator = r
	}

	ease, err := EasingByName(cfg.Easing)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		cfg:     cfg,
		rng:     o.rng,
		rotator: o.rotator,
		neutral: o.neutral,
		ease:    ease,
		logger:  o.logger,
	}
	d.reset()
	return d, nil
}

// Config returns the active configuration, including the latest canvas size.
func (d *Driver) Config() Config { return d.cfg }

// Dimensions returns the grid size.
func (d *Driver) Dimensions() (cols, rows int) { return d.cols, d.rows }

// Progress returns the raw transition progress in [0,1).
func (d *Driver) Progress() float64 {
	return float64(d.step) / float64(d.cfg.TransitionFrames)
}

// Eased returns the eased blend factor for the current progress.
func (d *Driver) Eased() float64 { return d.ease(d.Progress()) }

// Cycle returns the number of completed transitions since the last reset.
func (d *Driver) Cycle() int { return d.cycle }

// Current returns the snapshot being blended from.
func (d *Driver) Current() Snapshot { return d.current }

// Next returns the snapshot being blended to.
func (d *Driver) Next() Snapshot { return d.next }

// Palette returns the active accent palette.
func (d *Driver) Palette() palette.Palette { return d.rotator.Current() }

// Stats returns the region statistics of the most recent generation.
func (d *Driver) Stats() RegionStats { return d.stats }

// Frame renders the current state without advancing.
func (d *Driver) Frame() Frame {
	progress := d.Progress()
	eased := d.ease(progress)
	return Frame{
		Width:      d.cfg.Width,
		Height:     d.cfg.Height,
		Background: Background,
		Progress:   progress,
		Eased:      eased,
		Shapes:     Interpolate(d.current, d.next, d.cfg.CellSize, eased),
	}
}

// Tick renders the current frame and then advances by one step.
func (d *Driver) Tick() Frame {
	f := d.Frame()
	d.Advance()
	return f
}

// Advance moves progress forward by one step. When the transition
// completes, next is promoted to current, the accent palette may rotate,
// a fresh next is generated and progress returns to 0.
func (d *Driver) Advance() {
	d.step++
	if d.step < d.cfg.TransitionFrames {
		return
	}
	d.regenerate()
}

func (d *Driver) regenerate() {
	d.current = d.next
	if d.rng.Float64() < d.cfg.PaletteChangeProbability {
		d.rotator.Advance(d.rng)
	}
	d.next = d.generate()
	d.step = 0
	d.cycle++
}

// Resize rebuilds the grid for a new canvas size. Both snapshots are
// captured from one fresh generation and progress returns to 0.
func (d *Driver) Resize(width, height float64) error {
	if err := validateCanvas(width, height, d.cfg.CellSize); err != nil {
		return err
	}
	d.cfg.Width, d.cfg.Height = width, height
	d.reset()
	observability.Engine().OnResize(d.cols, d.rows)
	return nil
}

func (d *Driver) reset() {
	d.cols, d.rows = d.cfg.Dimensions()
	d.current = d.generate()
	d.next = d.current.Clone()
	d.step = 0
	d.cycle = 0
}

func (d *Driver) generate() Snapshot {
	start := time.Now()
	gen := Generate(d.cols, d.rows, d.cfg, d.rotator.Current(), d.neutral, d.rng)
	d.stats = ComputeStats(gen.Partition)
	elapsed := time.Since(start)

	d.logger.Debug("generated mosaic",
		"cols", d.cols, "rows", d.rows,
		"regions", d.stats.Regions, "accent", d.stats.AccentRegions,
		"palette", gen.Palette, "elapsed", elapsed)
	observability.Engine().OnGenerate(d.stats.Regions, d.stats.AccentRegions, elapsed)
	return gen.Snapshot
}
