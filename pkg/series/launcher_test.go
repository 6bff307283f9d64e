package series

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/orbital"
)

// fakeRenderer writes an executable shell script standing in for orca_plot.
func fakeRenderer(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script renderer requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "orca_plot")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeTestScript(t *testing.T, dir string, job orbital.Job) string {
	t.Helper()
	path, err := writeScript(dir, job, orbital.BuildScript(job.Orbital, job.Spin, 80, 5))
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecLauncherCapturesOutput(t *testing.T) {
	renderer := fakeRenderer(t, `echo "input=$1 flag=$2"
cat
echo "to stderr" >&2
`)
	dir := t.TempDir()
	job := orbital.Job{Orbital: 7, Spin: orbital.Beta}
	script := writeTestScript(t, dir, job)

	inv := Invocation{
		Job:        job,
		Renderer:   renderer,
		Input:      "water.gbw",
		ScriptPath: script,
		LogPath:    script + LogSuffix,
	}
	if err := (ExecLauncher{}).Launch(context.Background(), inv); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}

	data, err := os.ReadFile(inv.LogPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	log := string(data)
	if !strings.Contains(log, "input=water.gbw flag=-i") {
		t.Errorf("log should record arguments, got %q", log)
	}
	if !strings.Contains(log, orbital.BuildScript(7, orbital.Beta, 80, 5)) {
		t.Errorf("renderer stdin should be the script, log %q", log)
	}
	if !strings.Contains(log, "to stderr") {
		t.Errorf("log should capture stderr, got %q", log)
	}
}

func TestExecLauncherNonZeroExit(t *testing.T) {
	renderer := fakeRenderer(t, "cat >/dev/null\nexit 3\n")
	dir := t.TempDir()
	job := orbital.Job{Orbital: 1, Spin: orbital.Alpha}
	script := writeTestScript(t, dir, job)

	inv := Invocation{Job: job, Renderer: renderer, Input: "x.gbw", ScriptPath: script, LogPath: script + LogSuffix}
	err := (ExecLauncher{}).Launch(context.Background(), inv)
	if !moerrors.Is(err, moerrors.ErrCodeRendererFailed) {
		t.Fatalf("error code = %v, want %v", moerrors.GetCode(err), moerrors.ErrCodeRendererFailed)
	}
	var exitErr *moerrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should carry *ExitError, got %v", err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", exitErr.ExitCode)
	}
	if exitErr.LogPath != inv.LogPath {
		t.Errorf("LogPath = %q, want %q", exitErr.LogPath, inv.LogPath)
	}
	if _, err := os.Stat(inv.LogPath); err != nil {
		t.Errorf("log should remain after failure: %v", err)
	}
}

func TestExecLauncherMissingRenderer(t *testing.T) {
	dir := t.TempDir()
	job := orbital.Job{Orbital: 1, Spin: orbital.Alpha}
	script := writeTestScript(t, dir, job)

	inv := Invocation{
		Job:        job,
		Renderer:   filepath.Join(dir, "no-such-orca_plot"),
		Input:      "x.gbw",
		ScriptPath: script,
		LogPath:    script + LogSuffix,
	}
	err := (ExecLauncher{}).Launch(context.Background(), inv)
	if !moerrors.Is(err, moerrors.ErrCodeRendererLaunch) {
		t.Errorf("error code = %v, want %v", moerrors.GetCode(err), moerrors.ErrCodeRendererLaunch)
	}
}

func TestRunnerWithExecLauncher(t *testing.T) {
	renderer := fakeRenderer(t, "cat\n")
	plan := Plan{
		Range:    orbital.Range{First: 1, Last: 2},
		Spin:     orbital.SpinBoth,
		Grid:     60,
		Format:   orbital.FormatASCII,
		Renderer: renderer,
		Input:    "water.qro",
		WorkDir:  t.TempDir(),
	}

	res, err := testRunner(ExecLauncher{}).Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(res.Records) != 4 {
		t.Fatalf("got %d records, want 4", len(res.Records))
	}
	for _, rec := range res.Records {
		want := orbital.BuildScript(rec.Job.Orbital, rec.Job.Spin, 60, 6)
		logData, err := os.ReadFile(rec.LogPath)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if string(logData) != want {
			t.Errorf("log for %v = %q, want echoed script %q", rec.Job, logData, want)
		}
	}

	entries, err := os.ReadDir(plan.WorkDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 8 {
		t.Errorf("work dir has %d files, want 4 scripts and 4 logs", len(entries))
	}
}

func TestRunnerWithExecLauncherStopsAfterFailure(t *testing.T) {
	// Fails on the second orbital only.
	renderer := fakeRenderer(t, `script=$(cat)
case "$script" in
  *"2
3"*) exit 1 ;;
esac
`)
	plan := Plan{
		Range:    orbital.Range{First: 1, Last: 4},
		Spin:     orbital.SpinAlpha,
		Grid:     80,
		Format:   orbital.FormatBinary,
		Renderer: renderer,
		Input:    "water.gbw",
		WorkDir:  t.TempDir(),
	}

	_, err := testRunner(ExecLauncher{}).Run(context.Background(), plan)
	if !moerrors.Is(err, moerrors.ErrCodeRendererFailed) {
		t.Fatalf("error code = %v, want %v", moerrors.GetCode(err), moerrors.ErrCodeRendererFailed)
	}

	entries, err := os.ReadDir(plan.WorkDir)
	if err != nil {
		t.Fatal(err)
	}
	// Orbitals 1 and 2 were attempted: two scripts, two logs.
	if len(entries) != 4 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("work dir entries = %v, want 4", names)
	}
}
