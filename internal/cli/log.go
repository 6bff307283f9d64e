package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anselmoo/moplots/pkg/observability"
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
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 6 plots (12.345s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports series and renderer events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRunStart(_ context.Context, runID string, jobs int) {
	h.logger.Debug("run started", "run", shortID(runID), "jobs", jobs)
}

func (h logHooks) OnRunComplete(_ context.Context, runID string, completed int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run aborted", "run", shortID(runID), "completed", completed, "duration", d, "err", err)
		return
	}
	h.logger.Debug("run finished", "run", shortID(runID), "completed", completed, "duration", d)
}

func (h logHooks) OnJobStart(context.Context, string, int, string) {}

func (h logHooks) OnJobComplete(_ context.Context, _ string, orbital int, spin string, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("orbital rendered", "orbital", orbital, "spin", spin, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnLaunch(_ context.Context, path string, args []string) {
	h.logger.Debug("launching renderer", "path", path, "args", args)
}

func (h logHooks) OnExit(_ context.Context, path string, exitCode int, d time.Duration) {
	h.logger.Debug("renderer exited", "path", path, "code", exitCode, "duration", d.Round(time.Millisecond))
}

// registerHooks routes observability events to logger.
func registerHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetSeriesHooks(h)
	observability.SetProcessHooks(h)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
