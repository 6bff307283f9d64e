// Package observability provides hooks for logging and metrics around a
// plot series.
//
// The series runner emits events without depending on a particular
// backend. The CLI registers a logging implementation at startup; library
// users can register their own (Prometheus, OpenTelemetry, ...).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSeriesHooks(&mySeriesHooks{})
//	    observability.SetProcessHooks(&myProcessHooks{})
//	    // ... run application
//	}
//
// The runner calls hooks to emit events:
//
//	observability.Series().OnJobStart(ctx, runID, orbital, "alpha")
//	// ... run orca_plot ...
//	observability.Series().OnJobComplete(ctx, runID, orbital, "alpha", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Series Hooks
// =============================================================================

// SeriesHooks receives events from the orbital series runner.
type SeriesHooks interface {
	// Run events
	OnRunStart(ctx context.Context, runID string, jobs int)
	OnRunComplete(ctx context.Context, runID string, completed int, duration time.Duration, err error)

	// Job events
	OnJobStart(ctx context.Context, runID string, orbital int, spin string)
	OnJobComplete(ctx context.Context, runID string, orbital int, spin string, duration time.Duration, err error)
}

// =============================================================================
// Process Hooks
// =============================================================================

// ProcessHooks receives events about renderer child processes.
type ProcessHooks interface {
	// OnLaunch records a renderer process about to start.
	OnLaunch(ctx context.Context, path string, args []string)

	// OnExit records a renderer process that ran to completion.
	OnExit(ctx context.Context, path string, exitCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSeriesHooks is a no-op implementation of SeriesHooks.
type NoopSeriesHooks struct{}

func (NoopSeriesHooks) OnRunStart(context.Context, string, int) {}
func (NoopSeriesHooks) OnRunComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopSeriesHooks) OnJobStart(context.Context, string, int, string) {}
func (NoopSeriesHooks) OnJobComplete(context.Context, string, int, string, time.Duration, error) {
}

// NoopProcessHooks is a no-op implementation of ProcessHooks.
type NoopProcessHooks struct{}

func (NoopProcessHooks) OnLaunch(context.Context, string, []string)         {}
func (NoopProcessHooks) OnExit(context.Context, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	seriesHooks  SeriesHooks  = NoopSeriesHooks{}
	processHooks ProcessHooks = NoopProcessHooks{}
	hooksMu      sync.RWMutex
)

// SetSeriesHooks registers custom series hooks.
// This should be called once at application startup before any run starts.
func SetSeriesHooks(h SeriesHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		seriesHooks = h
	}
}

// SetProcessHooks registers custom process hooks.
func SetProcessHooks(h ProcessHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		processHooks = h
	}
}

// Series returns the registered series hooks.
func Series() SeriesHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return seriesHooks
}

// Process returns the registered process hooks.
func Process() ProcessHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return processHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	seriesHooks = NoopSeriesHooks{}
	processHooks = NoopProcessHooks{}
}
