package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render artifact cache",
		Long: `Manage the render artifact cache.

Rendered frames, animations and region graphs are cached by their render
options. The cache lives in a directory unless [cache] redis_addr is set in
the config file.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every cached artifact",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.clearCache(cmd)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print where artifacts are cached",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				loc, err := c.cacheLocation()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), loc)
				return nil
			},
		},
	)
	return cmd
}

func (c *CLI) clearCache(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if c.Config.Cache.RedisAddr == "" {
		dir, err := c.cacheDir()
		if err != nil {
			return err
		}
		// Nothing to clear, and opening a FileCache would create the directory.
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			printInfo("Cache is empty")
			return nil
		}
	}

	cc, err := c.newCache(ctx, false)
	if err != nil {
		return err
	}
	defer cc.Close()

	clearer, ok := cc.(cache.Clearer)
	if !ok {
		printWarning("%T cannot be cleared", cc)
		return nil
	}
	n, err := clearer.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	printSuccess("Cleared %d cached entries", n)
	loc, _ := c.cacheLocation()
	printDetail("%s", loc)
	return nil
}

// cacheLocation describes the active backend: a redis:// address or the
// cache directory.
func (c *CLI) cacheLocation() (string, error) {
	if cfg := c.Config.Cache; cfg.RedisAddr != "" {
		return fmt.Sprintf("redis://%s/%d (prefix %q)", cfg.RedisAddr, cfg.RedisDB, cfg.RedisPrefix), nil
	}
	return c.cacheDir()
}

// cacheDir resolves the file cache directory: [cache] dir from the config
// file, then $XDG_CACHE_HOME/mosaic, then the platform cache directory.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}
