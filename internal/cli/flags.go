package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// =============================================================================
// Engine Flags
// =============================================================================

// engineFlags are the engine knobs shared by every rendering command. Only
// flags the user set override the config file.
type engineFlags struct {
	width, height, cell float64
	frames              int
	threshold, maxSize  int
	merge, change       float64
	seed                uint64
	easing, rotation    string
	palette             string
}

func (f *engineFlags) register(cmd *cobra.Command) {
	d := mosaic.DefaultConfig()
	fs := cmd.Flags()
	fs.Float64Var(&f.width, "width", d.Width, "canvas width in pixels")
	fs.Float64Var(&f.height, "height", d.Height, "canvas height in pixels")
	fs.Float64Var(&f.cell, "cell", d.CellSize, "cell size in pixels")
	fs.IntVar(&f.frames, "frames", d.TransitionFrames, "ticks per transition")
	fs.IntVar(&f.threshold, "threshold", d.RegionThreshold, "regions larger than this get accent colours")
	fs.IntVar(&f.maxSize, "max-region", d.MaxRegionSize, "maximum cells per region")
	fs.Float64Var(&f.merge, "merge", d.MergeProbability, "probability of merging with each neighbour")
	fs.Float64Var(&f.change, "palette-change", d.PaletteChangeProbability, "probability of rotating the accent palette per transition")
	fs.Uint64Var(&f.seed, "seed", d.Seed, "random seed")
	fs.StringVar(&f.easing, "easing", d.Easing, "easing: "+strings.Join(mosaic.EasingNames, ", "))
	fs.StringVar(&f.rotation, "rotation", d.Rotation, "palette rotation: sequential, random")
	fs.StringVarP(&f.palette, "palette", "p", "", "pin the accent palette by name")
}

// apply copies the flags the user set onto opts.
func (f *engineFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	cfg := &opts.Config
	set("width", func() { cfg.Width = f.width })
	set("height", func() { cfg.Height = f.height })
	set("cell", func() { cfg.CellSize = f.cell })
	set("frames", func() { cfg.TransitionFrames = f.frames })
	set("threshold", func() { cfg.RegionThreshold = f.threshold })
	set("max-region", func() { cfg.MaxRegionSize = f.maxSize })
	set("merge", func() { cfg.MergeProbability = f.merge })
	set("palette-change", func() { cfg.PaletteChangeProbability = f.change })
	set("seed", func() { cfg.Seed = f.seed })
	set("easing", func() { cfg.Easing = f.easing })
	set("rotation", func() { cfg.Rotation = f.rotation })
	set("palette", func() { opts.Palette = f.palette })
}

// =============================================================================
// Output Flags
// =============================================================================

// outputFlags control where artifacts go and which backends a run uses.
type outputFlags struct {
	output  string
	formats string
	noCache bool
	refresh bool
	record  bool
}

func (f *outputFlags) register(cmd *cobra.Command, formatHelp string) {
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	if formatHelp != "" {
		fs.StringVarP(&f.formats, "format", "f", "", formatHelp)
	}
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	fs.BoolVar(&f.refresh, "refresh", false, "re-render even if cached")
	fs.BoolVar(&f.record, "record", false, "record the render in the gallery")
}

func (f *outputFlags) apply(opts *pipeline.Options) {
	opts.Formats = parseFormats(f.formats)
	opts.Refresh = f.refresh
	opts.Record = f.record
}

// =============================================================================
// Artifact Output
// =============================================================================

// outputPaths maps each format to its file. A single format is written to
// output as given; several formats share output as a base path with the
// format as extension.
func outputPaths(output string, formats []string) (map[string]string, error) {
	if output == "" {
		output = defaultOutput
	}
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && filepath.Ext(output) != "" {
		paths[formats[0]] = output
	} else {
		base := output
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); slices.Contains(formats, ext) {
			base = strings.TrimSuffix(output, filepath.Ext(output))
		}
		for _, f := range formats {
			paths[f] = base + "." + f
		}
	}
	for _, p := range paths {
		if err := errors.ValidateOutputPath(p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// writeArtifacts writes every requested artifact and lists the files.
func writeArtifacts(result *pipeline.Result, formats []string, output string) error {
	paths, err := outputPaths(output, formats)
	if err != nil {
		return err
	}
	for _, format := range formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
