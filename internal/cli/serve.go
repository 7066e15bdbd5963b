package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/internal/server"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		engine  engineFlags
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve frames, animations and the gallery over HTTP",
		Long: `Serve frames, animations and the gallery over HTTP.

Engine flags set the defaults every request starts from; query parameters
override them per request, e.g.

  curl 'localhost:8080/v1/frame.svg?seed=7&ticks=12'

Without a [gallery] mongo_uri, recorded renders are kept in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), cmd, engine, addr, noCache)
		},
	}

	engine.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, cmd *cobra.Command, engine engineFlags, addr string, noCache bool) error {
	base := c.baseOptions()
	engine.apply(cmd, &base)
	if c.Config.Server.FPS > 0 {
		base.FPS = c.Config.Server.FPS
	}
	probe := base
	if err := probe.ValidateAndSetDefaults(pipeline.KindStill); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, runnerOpts{noCache: noCache, memoryGallery: true})
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close(context.WithoutCancel(ctx))

	printSuccess("Serving on %s", StyleLink.Render("http://"+displayAddr(addr)))
	return server.New(runner, base, c.Logger).ListenAndServe(ctx, addr)
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
