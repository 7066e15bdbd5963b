package mosaic

import (
	"math"
	"slices"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/palette"
)

// Default configuration values.
const (
	DefaultWidth                    = 800.0
	DefaultHeight                   = 600.0
	DefaultCellSize                 = 16.0
	DefaultTransitionFrames         = 25
	DefaultRegionThreshold          = 4
	DefaultMaxRegionSize            = 24
	DefaultMergeProbability         = 0.5
	DefaultPaletteChangeProbability = 0.85
	DefaultEasing                   = EasingInOutCubic
	DefaultSeed                     = uint64(42)

	// MaxCells bounds cols*rows so a typo in the cell size cannot allocate
	// gigabytes of union-find state.
	MaxCells = 4_000_000
)

// Config holds every engine knob. It is read-only once a [Driver] has been
// built from it.
type Config struct {
	// Width and Height are the canvas size in pixels.
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`

	// CellSize is the side length of one grid cell in pixels.
	CellSize float64 `toml:"cell_size" json:"cell_size"`

	// TransitionFrames is the number of ticks one transition lasts.
	TransitionFrames int `toml:"transition_frames" json:"transition_frames"`

	// RegionThreshold separates accent regions (size > threshold) from
	// neutral ones.
	RegionThreshold int `toml:"region_threshold" json:"region_threshold"`

	// MaxRegionSize caps the number of cells in one region.
	MaxRegionSize int `toml:"max_region_size" json:"max_region_size"`

	// MergeProbability is the chance of attempting a union with each of a
	// cell's right and bottom neighbours.
	MergeProbability float64 `toml:"merge_probability" json:"merge_probability"`

	// PaletteChangeProbability is the chance of rotating the accent palette
	// when a transition completes.
	PaletteChangeProbability float64 `toml:"palette_change_probability" json:"palette_change_probability"`

	// Easing names the easing curve applied to the blend factor.
	Easing string `toml:"easing" json:"easing"`

	// Rotation names the accent palette rotation policy.
	Rotation string `toml:"rotation" json:"rotation"`

	// Seed seeds the random stream.
	Seed uint64 `toml:"seed" json:"seed"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:                    DefaultWidth,
		Height:                   DefaultHeight,
		CellSize:                 DefaultCellSize,
		TransitionFrames:         DefaultTransitionFrames,
		RegionThreshold:          DefaultRegionThreshold,
		MaxRegionSize:            DefaultMaxRegionSize,
		MergeProbability:         DefaultMergeProbability,
		PaletteChangeProbability: DefaultPaletteChangeProbability,
		Easing:                   DefaultEasing,
		Rotation:                 palette.RotationSequential,
		Seed:                     DefaultSeed,
	}
}

// Dimensions returns the grid size that covers the canvas.
func (c Config) Dimensions() (cols, rows int) {
	return gridDimensions(c.Width, c.Height, c.CellSize)
}

func gridDimensions(width, height, cellSize float64) (cols, rows int) {
	return int(math.Ceil(width / cellSize)), int(math.Ceil(height / cellSize))
}

// Validate reports the first configuration error, if any. Every error has
// code [errors.ErrCodeInvalidConfig] or [errors.ErrCodeInvalidEasing].
func (c Config) Validate() error {
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "cell size must be positive, got %v", c.CellSize)
	}
	if err := validateCanvas(c.Width, c.Height, c.CellSize); err != nil {
		return err
	}
	if c.TransitionFrames < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "transition frames must be at least 1, got %d", c.TransitionFrames)
	}
	if c.MaxRegionSize < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max region size must be at least 1, got %d", c.MaxRegionSize)
	}
	if c.RegionThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "region threshold cannot be negative, got %d", c.RegionThreshold)
	}
	if !probability(c.MergeProbability) {
		return errors.New(errors.ErrCodeInvalidConfig, "merge probability must be in [0,1], got %v", c.MergeProbability)
	}
	if !probability(c.PaletteChangeProbability) {
		return errors.New(errors.ErrCodeInvalidConfig, "palette change probability must be in [0,1], got %v", c.PaletteChangeProbability)
	}
	if _, err := EasingByName(c.Easing); err != nil {
		return err
	}
	if c.Rotation != "" && !slices.Contains([]string{palette.RotationSequential, palette.RotationRandom}, c.Rotation) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid rotation: %q (must be one of: sequential, random)", c.Rotation)
	}
	return nil
}

func validateCanvas(width, height, cellSize float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas must have positive area, got %vx%v", width, height)
	}
	cols, rows := math.Ceil(width/cellSize), math.Ceil(height/cellSize)
	if cols*rows > MaxCells {
		return errors.New(errors.ErrCodeInvalidConfig, "grid %.0fx%.0f exceeds %d cells", cols, rows, MaxCells)
	}
	return nil
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}
