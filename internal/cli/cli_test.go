package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/series"
)

// fakeLauncher records invocations instead of starting orca_plot.
type fakeLauncher struct {
	calls  []series.Invocation
	failOn int // 1-based call that fails; 0 never fails
}

func (f *fakeLauncher) Launch(_ context.Context, inv series.Invocation) error {
	f.calls = append(f.calls, inv)
	if f.failOn == len(f.calls) {
		return errors.New("exit status 1")
	}
	return nil
}

// newTestCLI returns a CLI logging to a buffer with its config file in a
// temp directory.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	return c, &logs
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// writeOrbitalFile creates an empty orbital file with the given name.
func writeOrbitalFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("gbw"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeRenderer creates an executable stand-in for orca_plot.
func writeRenderer(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script renderer requires a POSIX system")
	}
	path := filepath.Join(t.TempDir(), rendererName)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveRenderer(t *testing.T) {
	renderer := writeRenderer(t)

	t.Run("flag wins", func(t *testing.T) {
		got, err := resolveRenderer(renderer, "/does/not/exist")
		if err != nil {
			t.Fatalf("resolveRenderer() error: %v", err)
		}
		if got != renderer {
			t.Errorf("resolveRenderer() = %q, want %q", got, renderer)
		}
	})

	t.Run("configured path", func(t *testing.T) {
		got, err := resolveRenderer("", renderer)
		if err != nil {
			t.Fatalf("resolveRenderer() error: %v", err)
		}
		if got != renderer {
			t.Errorf("resolveRenderer() = %q, want %q", got, renderer)
		}
	})

	t.Run("path lookup", func(t *testing.T) {
		t.Setenv("PATH", filepath.Dir(renderer))
		got, err := resolveRenderer("", "")
		if err != nil {
			t.Fatalf("resolveRenderer() error: %v", err)
		}
		if got != renderer {
			t.Errorf("resolveRenderer() = %q, want %q", got, renderer)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		_, err := resolveRenderer("", "")
		if !moerrors.Is(err, moerrors.ErrCodeRendererNotFound) {
			t.Errorf("resolveRenderer() error = %v, want RENDERER_NOT_FOUND", err)
		}
	})
}

func TestWorkDir(t *testing.T) {
	if got := workDir("/scratch"); got != "/scratch" {
		t.Errorf("workDir(/scratch) = %q", got)
	}
	if got := workDir(""); got != os.TempDir() {
		t.Errorf("workDir(\"\") = %q, want %q", got, os.TempDir())
	}
}

func TestSetLogLevel(t *testing.T) {
	c, logs := newTestCLI(t)
	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	if bytes.Contains(logs.Bytes(), []byte("hidden")) {
		t.Error("debug message logged at info level")
	}
	if !bytes.Contains(logs.Bytes(), []byte("shown")) {
		t.Error("debug message missing after SetLogLevel(LogDebug)")
	}
}
