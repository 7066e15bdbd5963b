package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// inspectCommand creates the inspect command for region statistics and the
// region adjacency graph.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		engine   engineFlags
		out      outputFlags
		detailed bool
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show region statistics and the region graph of a generation",
		Long: `Show region statistics and the region graph of a generation.

The first generation an engine with the given options shows is clustered and
summarised. With --write (or -o / -f) the report (json), the region graph
(dot) or its rendering (svg) are written to files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			engine.apply(cmd, &opts)
			out.apply(&opts)
			opts.Detailed = detailed
			write = write || out.output != "" || out.formats != ""
			return c.runInspect(cmd.Context(), opts, out, write)
		},
	}

	engine.register(cmd)
	out.register(cmd, "output format(s): json (default), dot, svg, png (comma-separated)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label graph nodes with colour and root")
	cmd.Flags().BoolVar(&write, "write", false, "write the inspection to files")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, opts pipeline.Options, out outputFlags, write bool) error {
	if err := opts.ValidateAndSetDefaults(pipeline.KindInspect); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, runnerOpts{noCache: out.noCache, record: out.record})
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close(ctx)

	result, err := runner.Inspect(ctx, opts)
	if err != nil {
		return err
	}

	m := result.Meta
	printKeyValue("Grid", fmt.Sprintf("%dx%d (%d cells)", m.Cols, m.Rows, m.Stats.Cells))
	printKeyValue("Palette", m.Palette)
	printKeyValue("Regions", fmt.Sprintf("%d (%d accent, %d neutral)", m.Stats.Regions, m.Stats.AccentRegions, m.Stats.NeutralRegions))
	printKeyValue("Sizes", fmt.Sprintf("min %d · max %d · mean %.2f · median %.1f · p90 %.1f",
		m.Stats.Smallest, m.Stats.Largest, m.Stats.Mean, m.Stats.Median, m.Stats.P90))

	if write {
		printNewline()
		if err := writeArtifacts(result, opts.Formats, out.output); err != nil {
			return err
		}
	}
	return nil
}
