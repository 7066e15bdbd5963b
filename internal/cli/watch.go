package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// watchCommand creates the watch command for live terminal animation.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		engine engineFlags
		fps    float64
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate the mosaic live in the terminal",
		Long: `Animate the mosaic live in the terminal.

The canvas follows the terminal size. Press space to pause or resume and q
to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			engine.apply(cmd, &opts)
			return c.runWatch(cmd.Context(), opts, fps)
		},
	}

	engine.register(cmd)
	cmd.Flags().Float64Var(&fps, "fps", pipeline.DefaultFPS, "frames per second")
	return cmd
}

func (c *CLI) runWatch(ctx context.Context, opts pipeline.Options, fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %v", fps)
	}
	if err := opts.ValidateAndSetDefaults(pipeline.KindStill); err != nil {
		return err
	}
	e, err := pipeline.NewEngine(opts)
	if err != nil {
		return err
	}
	defer e.Destroy()

	interval := time.Duration(float64(time.Second) / fps)
	model := NewWatchModel(e, interval, opts.Config.CellSize)
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
