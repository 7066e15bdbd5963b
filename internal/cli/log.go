// Package cli implements the mosaic command-line interface.
//
// The CLI wraps the render pipeline: it renders frames, animations and
// region graphs to files, animates the mosaic live in the terminal, serves
// it over HTTP and manages the artifact cache and configuration file. It is
// built using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Render one frame as SVG, PNG or JSON
//   - animate: Render whole transitions as an animated GIF
//   - inspect: Region statistics and the region adjacency graph
//   - watch: Live terminal animation
//   - palettes: List the colour palettes
//   - serve: HTTP service
//   - cache, config: Manage the artifact cache and configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/mosaic/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stage times one pipeline step. Its keyvals are repeated on the closing
// log line so a debug run reads as a flat list of timed steps.
type stage struct {
	logger  *log.Logger
	name    string
	keyvals []any
	start   time.Time
}

func startStage(l *log.Logger, name string, keyvals ...any) *stage {
	l.Debug("start "+name, keyvals...)
	return &stage{logger: l, name: name, keyvals: keyvals, start: time.Now()}
}

// done logs the stage with its elapsed time, rounded to milliseconds, and
// any result keyvals.
func (s *stage) done(keyvals ...any) time.Duration {
	elapsed := time.Since(s.start).Round(time.Millisecond)
	kv := append(append([]any{}, s.keyvals...), keyvals...)
	s.logger.Info(s.name, append(kv, "took", elapsed)...)
	return elapsed
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or a logger
// that discards everything when none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && l != nil {
		return l
	}
	return log.New(io.Discard)
}
