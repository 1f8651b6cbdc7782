// Package cli implements the cellchart command-line interface.
//
// This package provides commands for rendering chart documents to the
// terminal, viewing them full-screen, and inspecting the computed layout.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw a chart document once and print it
//   - view: Show a chart full-screen, redrawn on every resize
//   - layout: Print the regions the chart reserves for a given size
//   - version: Print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; render events reach the same logger
// through the observability hooks.
//
// # Example
//
//	import "github.com/matzehuels/cellchart/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Loaded chart.toml (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports render events at debug level to the context logger.
type logHooks struct{}

func (logHooks) OnLayout(ctx context.Context, area, plot buffer.Rect) {
	loggerFromContext(ctx).Debug("layout",
		"area", formatRect(area),
		"plot", formatRect(plot))
}

func (logHooks) OnRender(ctx context.Context, area buffer.Rect, plotted, skipped int, d time.Duration) {
	loggerFromContext(ctx).Debug("render",
		"area", formatRect(area),
		"plotted", plotted,
		"skipped", skipped,
		"took", d.Round(time.Microsecond))
}
