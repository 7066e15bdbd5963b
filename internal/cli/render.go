package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// renderCommand creates the render command for single frames.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		engine engineFlags
		out    outputFlags
		ticks  int
		scale  float64
		px     int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one mosaic frame to SVG, PNG or JSON",
		Long: `Render one mosaic frame.

A fresh engine is advanced --ticks times and the frame it lands on is written
in each requested format. Rendering is deterministic for a given seed, so
results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			engine.apply(cmd, &opts)
			out.apply(&opts)
			opts.Ticks = ticks
			opts.Scale = scale
			opts.PixelWidth = px
			return c.runRender(cmd.Context(), opts, out)
		},
	}

	engine.register(cmd)
	out.register(cmd, "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "advance the engine this many ticks before rendering")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "raster scale factor (png)")
	cmd.Flags().IntVar(&px, "px", 0, "resize the png to this pixel width")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, out outputFlags) error {
	if err := opts.ValidateAndSetDefaults(pipeline.KindStill); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, runnerOpts{noCache: out.noCache, record: out.record})
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close(ctx)

	stage := startStage(loggerFromContext(ctx), "render", "ticks", opts.Ticks)
	spin := startSpinner(ctx, os.Stderr, "Rendering frame...")

	result, err := runner.RenderStill(ctx, opts)
	if err != nil {
		spin.Fail("Render failed")
		return err
	}
	spin.Stop()
	stage.done("cached", result.CacheHit)

	if err := writeArtifacts(result, opts.Formats, out.output); err != nil {
		return err
	}
	printSuccess("Render complete")
	printMeta(result)
	return nil
}

// animateCommand creates the animate command for GIF output.
func (c *CLI) animateCommand() *cobra.Command {
	var (
		engine engineFlags
		out    outputFlags
		ticks  int
		cycles int
		fps    float64
		px     int
	)

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render whole transitions as an animated GIF",
		Long: `Render whole transitions as an animated GIF.

Each cycle morphs one generation into the next over --frames ticks. The GIF
plays back at --fps frames per second.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			engine.apply(cmd, &opts)
			out.apply(&opts)
			opts.Ticks = ticks
			opts.Cycles = cycles
			opts.FPS = fps
			opts.PixelWidth = px
			return c.runAnimate(cmd.Context(), opts, out)
		},
	}

	engine.register(cmd)
	out.register(cmd, "")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "advance the engine this many ticks before recording")
	cmd.Flags().IntVar(&cycles, "cycles", pipeline.DefaultCycles, "number of transitions to record")
	cmd.Flags().Float64Var(&fps, "fps", pipeline.DefaultFPS, "playback frames per second")
	cmd.Flags().IntVar(&px, "px", 0, "resize frames to this pixel width")

	return cmd
}

func (c *CLI) runAnimate(ctx context.Context, opts pipeline.Options, out outputFlags) error {
	if err := opts.ValidateAndSetDefaults(pipeline.KindAnimation); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, runnerOpts{noCache: out.noCache, record: out.record})
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close(ctx)

	frames := opts.Cycles * opts.Config.TransitionFrames
	stage := startStage(loggerFromContext(ctx), "animate", "frames", frames)
	spin := startSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %d frames...", frames))

	result, err := runner.RenderAnimation(ctx, opts)
	if err != nil {
		spin.Fail("Animation failed")
		return err
	}
	spin.Stop()
	stage.done("cached", result.CacheHit)

	if err := writeArtifacts(result, opts.Formats, out.output); err != nil {
		return err
	}
	printSuccess("Animation complete")
	printMeta(result)
	return nil
}
