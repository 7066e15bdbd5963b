package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/config"
	"github.com/matzehuels/mosaic/pkg/gallery"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "mosaic"

	// defaultOutput is the base name of rendered files when -o is omitted.
	defaultOutput = "mosaic"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded by the root command before any subcommand runs.
	Config     config.File
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// runnerOpts selects the backends of a CLI runner.
type runnerOpts struct {
	noCache bool
	record  bool
	// memoryGallery keeps records in process when no MongoDB is configured.
	memoryGallery bool
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, ro runnerOpts) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, ro.noCache)
	if err != nil {
		return nil, err
	}
	var store gallery.Store
	if ro.record || ro.memoryGallery {
		if store, err = c.newGallery(ctx, ro.memoryGallery); err != nil {
			_ = cc.Close()
			return nil, err
		}
	}
	return pipeline.NewRunner(cc, nil, store, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		c.Logger.Debug("using redis cache", "addr", cfg.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newGallery connects to MongoDB when configured. Without a MongoDB URI it
// falls back to an in-memory store if allowed, and otherwise records nothing.
func (c *CLI) newGallery(ctx context.Context, allowMemory bool) (gallery.Store, error) {
	cfg := c.Config.Gallery
	if cfg.MongoURI != "" {
		c.Logger.Debug("using mongo gallery", "database", cfg.Database, "collection", cfg.Collection)
		return gallery.NewMongoStore(ctx, gallery.MongoOptions{
			URI:        cfg.MongoURI,
			Database:   cfg.Database,
			Collection: cfg.Collection,
		})
	}
	if allowMemory {
		return gallery.NewMemoryStore(), nil
	}
	c.Logger.Warn("no gallery configured; set [gallery] mongo_uri to record renders")
	return nil, nil
}

// baseOptions returns pipeline options seeded from the config file.
func (c *CLI) baseOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.Config = c.Config.Mosaic
	opts.Palettes = c.Config.Palettes
	opts.Logger = c.Logger
	return opts
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// An empty string leaves the choice to the pipeline defaults.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
