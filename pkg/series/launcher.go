package series

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/observability"
	"github.com/anselmoo/moplots/pkg/orbital"
)

// Invocation is one renderer run: the script file is fed to stdin and all
// output goes to LogPath.
type Invocation struct {
	Job        orbital.Job
	Renderer   string
	Input      string
	ScriptPath string
	LogPath    string
}

// Args returns the renderer arguments (without the executable).
func (inv Invocation) Args() []string {
	return []string{inv.Input, "-i"}
}

// Launcher runs a renderer invocation to completion.
// Launch must not return before the process has exited.
type Launcher interface {
	Launch(ctx context.Context, inv Invocation) error
}

// ExecLauncher runs orca_plot as a child process.
type ExecLauncher struct{}

// Launch starts the renderer and waits for it. A non-zero exit status is
// reported as RENDERER_FAILED carrying an [moerrors.ExitError]; a process
// that cannot be started is RENDERER_LAUNCH.
func (ExecLauncher) Launch(ctx context.Context, inv Invocation) (err error) {
	stdin, err := os.Open(inv.ScriptPath)
	if err != nil {
		return moerrors.Wrap(moerrors.ErrCodeFilesystem, err, "open script %s", inv.ScriptPath)
	}
	defer stdin.Close()

	logFile, err := os.Create(inv.LogPath)
	if err != nil {
		return moerrors.Wrap(moerrors.ErrCodeFilesystem, err, "create log %s", inv.LogPath)
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil && err == nil {
			err = moerrors.Wrap(moerrors.ErrCodeFilesystem, cerr, "close log %s", inv.LogPath)
		}
	}()

	args := inv.Args()
	cmd := exec.CommandContext(ctx, inv.Renderer, args...)
	cmd.Stdin = stdin
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	hooks := observability.Process()
	hooks.OnLaunch(ctx, inv.Renderer, args)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return moerrors.Wrap(moerrors.ErrCodeRendererLaunch, err, "start %s", inv.Renderer)
	}
	waitErr := cmd.Wait()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	hooks.OnExit(ctx, inv.Renderer, exitCode, time.Since(start))

	if waitErr == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return moerrors.Wrap(moerrors.ErrCodeRendererFailed,
			&moerrors.ExitError{ExitCode: exitErr.ExitCode(), LogPath: inv.LogPath},
			"orca_plot failed on orbital %s", inv.Job)
	}
	return moerrors.Wrap(moerrors.ErrCodeRendererFailed, waitErr, "wait for %s", inv.Renderer)
}

var _ Launcher = ExecLauncher{}
