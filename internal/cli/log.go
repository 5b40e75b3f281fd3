// Package cli implements the lvdist command-line interface.
//
// The CLI reads a binary grid as text, runs the squared Euclidean distance
// transform, optionally post-processes the result and writes it back as text
// or CSV. It is built on cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - transform: distance transform of a text grid (file or stdin)
//   - version:   print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so commands can report timed progress.
//
// # Configuration
//
// --config points at a TOML file holding defaults for the transform flags.
// Flags given on the command line win over file values.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times the phases of one command run. Each step is logged at debug
// level with the time since the previous step; done logs the total at info.
type progress struct {
	logger *log.Logger
	start  time.Time
	last   time.Time
}

func newProgress(l *log.Logger) *progress {
	now := time.Now()
	return &progress{logger: l, start: now, last: now}
}

// step logs the end of a phase with its own duration and optional key/values.
// Example output (with -v): "DEBU transform took=3.2ms workers=4 unreachable=sentinel"
func (p *progress) step(phase string, keyvals ...any) {
	now := time.Now()
	kv := append([]any{"took", now.Sub(p.last).Round(time.Microsecond)}, keyvals...)
	p.logger.Debug(phase, kv...)
	p.last = now
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Transformed 512x512 grid (38ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
