package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSeriesHooks{}
	s.OnRunStart(ctx, "run", 6)
	s.OnJobStart(ctx, "run", 10, "alpha")
	s.OnJobComplete(ctx, "run", 10, "alpha", time.Second, nil)
	s.OnRunComplete(ctx, "run", 6, time.Minute, errors.New("boom"))

	p := NoopProcessHooks{}
	p.OnLaunch(ctx, "/usr/bin/orca_plot", []string{"water.gbw", "-i"})
	p.OnExit(ctx, "/usr/bin/orca_plot", 0, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Series().(NoopSeriesHooks); !ok {
		t.Error("Series() should return NoopSeriesHooks by default")
	}
	if _, ok := Process().(NoopProcessHooks); !ok {
		t.Error("Process() should return NoopProcessHooks by default")
	}

	customSeries := &testSeriesHooks{}
	SetSeriesHooks(customSeries)
	if Series() != customSeries {
		t.Error("SetSeriesHooks should set custom hooks")
	}

	customProcess := &testProcessHooks{}
	SetProcessHooks(customProcess)
	if Process() != customProcess {
		t.Error("SetProcessHooks should set custom hooks")
	}

	Reset()
	if _, ok := Series().(NoopSeriesHooks); !ok {
		t.Error("Reset() should restore NoopSeriesHooks")
	}
	if _, ok := Process().(NoopProcessHooks); !ok {
		t.Error("Reset() should restore NoopProcessHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSeriesHooks{}
	SetSeriesHooks(custom)
	SetSeriesHooks(nil)

	if Series() != custom {
		t.Error("SetSeriesHooks(nil) should be ignored")
	}

	Reset()
}

type testSeriesHooks struct{ NoopSeriesHooks }
type testProcessHooks struct{ NoopProcessHooks }
