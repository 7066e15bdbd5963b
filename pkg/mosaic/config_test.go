package mosaic

import (
	"math"
	"testing"

	"github.com/matzehuels/mosaic/pkg/errors"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if got := DefaultConfig().PaletteChangeProbability; got != 0.85 {
		t.Errorf("PaletteChangeProbability = %v, want 0.85", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   errors.Code
	}{
		{"zero cell size", func(c *Config) { c.CellSize = 0 }, errors.ErrCodeInvalidConfig},
		{"negative cell size", func(c *Config) { c.CellSize = -4 }, errors.ErrCodeInvalidConfig},
		{"NaN cell size", func(c *Config) { c.CellSize = math.NaN() }, errors.ErrCodeInvalidConfig},
		{"zero width", func(c *Config) { c.Width = 0 }, errors.ErrCodeInvalidConfig},
		{"zero height", func(c *Config) { c.Height = 0 }, errors.ErrCodeInvalidConfig},
		{"too many cells", func(c *Config) { c.Width, c.Height, c.CellSize = 1e6, 1e6, 1 }, errors.ErrCodeInvalidConfig},
		{"no frames", func(c *Config) { c.TransitionFrames = 0 }, errors.ErrCodeInvalidConfig},
		{"zero cap", func(c *Config) { c.MaxRegionSize = 0 }, errors.ErrCodeInvalidConfig},
		{"negative threshold", func(c *Config) { c.RegionThreshold = -1 }, errors.ErrCodeInvalidConfig},
		{"merge above one", func(c *Config) { c.MergeProbability = 1.5 }, errors.ErrCodeInvalidConfig},
		{"palette change below zero", func(c *Config) { c.PaletteChangeProbability = -0.1 }, errors.ErrCodeInvalidConfig},
		{"unknown easing", func(c *Config) { c.Easing = "elastic" }, errors.ErrCodeInvalidEasing},
		{"unknown rotation", func(c *Config) { c.Rotation = "shuffle" }, errors.ErrCodeInvalidConfig},
		{"empty rotation", func(c *Config) { c.Rotation = "" }, ""},
		{"probabilities at bounds", func(c *Config) { c.MergeProbability, c.PaletteChangeProbability = 0, 1 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestConfigDimensions(t *testing.T) {
	tests := []struct {
		w, h, size float64
		cols, rows int
	}{
		{800, 600, 16, 50, 38},
		{160, 160, 16, 10, 10},
		{1, 1, 16, 1, 1},
		{33, 17, 16, 3, 2},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.CellSize = tt.w, tt.h, tt.size
		cols, rows := cfg.Dimensions()
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("Dimensions(%vx%v/%v) = %dx%d, want %dx%d", tt.w, tt.h, tt.size, cols, rows, tt.cols, tt.rows)
		}
	}
}
