package series

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/observability"
	"github.com/anselmoo/moplots/pkg/orbital"
)

// LogSuffix is appended to a script path to name the renderer's log file.
const LogSuffix = ".log"

// Plan describes one plot series. Values are expected to be validated by
// the caller; the runner passes grid and format through unchanged.
type Plan struct {
	Range    orbital.Range
	Spin     orbital.SpinSelection
	Grid     int
	Format   orbital.OutputFormat
	Renderer string // path to orca_plot
	Input    string // ORCA orbital file
	WorkDir  string // directory for scripts and logs; os.TempDir() when empty
}

// ProgressFunc is called once per attempted job, before its script is
// written, whether or not the job then succeeds. done counts the jobs
// attempted so far, including job.
type ProgressFunc func(done, total int, job orbital.Job)

// JobRecord describes a job that rendered successfully.
type JobRecord struct {
	Job        orbital.Job
	ScriptPath string
	LogPath    string
	Duration   time.Duration
}

// Result is returned by a run in which every job succeeded.
type Result struct {
	RunID    string
	Records  []JobRecord
	Duration time.Duration
}

// Runner executes plot series. A Runner holds no per-run state and may be
// reused, but a single run is strictly sequential.
type Runner struct {
	Launcher Launcher
	Logger   *log.Logger
	Progress ProgressFunc
}

// NewRunner creates a runner using the given launcher.
// If launcher is nil, an ExecLauncher is used.
// If logger is nil, log.Default() is used.
func NewRunner(launcher Launcher, logger *log.Logger) *Runner {
	if launcher == nil {
		launcher = ExecLauncher{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Launcher: launcher, Logger: logger}
}

// Run renders every job of the plan in order. It returns at the first job
// whose script cannot be written or whose renderer fails; later jobs are
// not attempted.
func (r *Runner) Run(ctx context.Context, p Plan) (*Result, error) {
	runID := uuid.NewString()
	jobs := orbital.Jobs(p.Range, p.Spin)
	logger := r.Logger.With("run", runID[:8])
	hooks := observability.Series()

	logger.Debug("starting series",
		"range", p.Range,
		"spin", p.Spin,
		"jobs", len(jobs),
		"grid", p.Grid,
		"format", p.Format)
	hooks.OnRunStart(ctx, runID, len(jobs))

	start := time.Now()
	result := &Result{RunID: runID, Records: make([]JobRecord, 0, len(jobs))}

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			hooks.OnRunComplete(ctx, runID, i, time.Since(start), err)
			return nil, err
		}

		rec, err := r.runJob(ctx, logger, runID, p, job, i+1, len(jobs))
		if err != nil {
			hooks.OnRunComplete(ctx, runID, i, time.Since(start), err)
			return nil, err
		}
		result.Records = append(result.Records, rec)
	}

	result.Duration = time.Since(start)
	hooks.OnRunComplete(ctx, runID, len(jobs), result.Duration, nil)
	logger.Debug("series complete", "jobs", len(jobs), "duration", result.Duration)
	return result, nil
}

func (r *Runner) runJob(ctx context.Context, logger *log.Logger, runID string, p Plan, job orbital.Job, done, total int) (JobRecord, error) {
	if r.Progress != nil {
		r.Progress(done, total, job)
	}

	script := orbital.BuildScript(job.Orbital, job.Spin, p.Grid, p.Format.Value())
	scriptPath, err := writeScript(p.WorkDir, job, script)
	if err != nil {
		return JobRecord{}, err
	}

	inv := Invocation{
		Job:        job,
		Renderer:   p.Renderer,
		Input:      p.Input,
		ScriptPath: scriptPath,
		LogPath:    scriptPath + LogSuffix,
	}

	hooks := observability.Series()
	hooks.OnJobStart(ctx, runID, job.Orbital, job.Spin.String())
	logger.Debug("rendering orbital", "orbital", job.Orbital, "spin", job.Spin, "script", scriptPath)

	start := time.Now()
	err = r.Launcher.Launch(ctx, inv)
	elapsed := time.Since(start)
	hooks.OnJobComplete(ctx, runID, job.Orbital, job.Spin.String(), elapsed, err)

	if err != nil {
		if ctx.Err() != nil {
			return JobRecord{}, ctx.Err()
		}
		logger.Debug("render failed", "orbital", job.Orbital, "spin", job.Spin, "log", inv.LogPath, "err", err)
		if moerrors.GetCode(err) != "" {
			return JobRecord{}, err
		}
		return JobRecord{}, moerrors.Wrap(moerrors.ErrCodeRendererFailed, err,
			"render orbital %s (log: %s)", job, inv.LogPath)
	}

	return JobRecord{
		Job:        job,
		ScriptPath: scriptPath,
		LogPath:    inv.LogPath,
		Duration:   elapsed,
	}, nil
}

// scriptPattern names the temp file so the job is visible in a directory
// listing; os.CreateTemp replaces the '*' with a random suffix.
func scriptPattern(job orbital.Job) string {
	return fmt.Sprintf("moplots-mo%d-%s-*.inp", job.Orbital, job.Spin)
}

// writeScript stores text in a new uniquely named file under dir. The file
// is closed before returning, on success and on error.
func writeScript(dir string, job orbital.Job, text string) (path string, err error) {
	f, err := os.CreateTemp(dir, scriptPattern(job))
	if err != nil {
		return "", moerrors.Wrap(moerrors.ErrCodeFilesystem, err, "create script for orbital %s", job)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = moerrors.Wrap(moerrors.ErrCodeFilesystem, cerr, "close script %s", f.Name())
		}
	}()

	if _, err = f.WriteString(text); err != nil {
		return f.Name(), moerrors.Wrap(moerrors.ErrCodeFilesystem, err, "write script %s", f.Name())
	}
	return f.Name(), nil
}
