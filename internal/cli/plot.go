package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/anselmoo/moplots/pkg/config"
	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/orbital"
	"github.com/anselmoo/moplots/pkg/series"
	"github.com/anselmoo/moplots/pkg/theme"
)

// plotOpts holds the command-line flags for plotting an orbital series.
type plotOpts struct {
	first    int    // first orbital index
	last     int    // last orbital index
	spin     string // alpha, beta, both
	grid     int    // grid points per axis
	format   string // BINARY, ASCII, CUBE
	color    string // theme name; empty keeps the stored theme
	renderer string // orca_plot override
	workDir  string // script and log directory
	plain    bool   // disable the progress bar
}

// plan validates the flags and converts them into a series plan.
// Renderer and work directory are filled in by the caller.
func (o plotOpts) plan(input string) (series.Plan, error) {
	r, err := orbital.NewRange(o.first, o.last)
	if err != nil {
		return series.Plan{}, err
	}
	spin, err := orbital.ParseSpinSelection(o.spin)
	if err != nil {
		return series.Plan{}, err
	}
	format, err := orbital.ParseOutputFormat(o.format)
	if err != nil {
		return series.Plan{}, err
	}
	if err := moerrors.ValidateGrid(o.grid); err != nil {
		return series.Plan{}, err
	}
	if o.color != "" {
		if _, err := theme.Lookup(o.color); err != nil {
			return series.Plan{}, err
		}
	}
	if err := moerrors.ValidateOrbitalFile(input); err != nil {
		return series.Plan{}, err
	}

	return series.Plan{
		Range:  r,
		Spin:   spin,
		Grid:   o.grid,
		Format: format,
		Input:  input,
	}, nil
}

// runPlot validates the selection, prints it and renders the series.
func (c *CLI) runPlot(ctx context.Context, input string, opts plotOpts) error {
	logger := loggerFromContext(ctx)

	plan, err := opts.plan(input)
	if err != nil {
		return err
	}

	cfg := c.loadConfig(logger, opts.color)
	applyTheme(theme.LookupOrDefault(cfg.Theme))

	plan.Renderer, err = resolveRenderer(opts.renderer, cfg.OrcaPlot)
	if err != nil {
		return err
	}
	plan.WorkDir = workDir(opts.workDir)

	fmt.Println(renderSelection(selection{
		Input:  plan.Input,
		Range:  plan.Range,
		Spin:   plan.Spin,
		Format: plan.Format,
		Grid:   plan.Grid,
		Jobs:   len(orbital.Jobs(plan.Range, plan.Spin)),
	}))

	runner := c.newRunner(logger)
	prog := newProgress(logger)

	var result *series.Result
	if c.useProgressUI(opts.plain) {
		result, err = c.runWithProgressUI(ctx, runner, plan)
	} else {
		runner.Progress = logProgress(logger)
		result, err = runner.Run(ctx, plan)
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d plots", len(result.Records)))
	printSuccess("Plotted orbitals %s (%s)", plan.Range, plan.Spin)
	printDetail("Scripts and logs: %s", plan.WorkDir)
	return nil
}

// loadConfig reads the stored settings and persists color when it differs
// from the stored theme. Config problems are logged and defaults are used,
// so a read-only home directory never blocks plotting.
func (c *CLI) loadConfig(logger *log.Logger, color string) config.Config {
	store, err := c.configStore()
	if err != nil {
		logger.Warn("config unavailable", "err", err)
		return withColor(config.Defaults(), color)
	}

	cfg, err := store.Load()
	if err != nil {
		logger.Warn("config unavailable", "path", store.Path(), "err", moerrors.UserMessage(err))
		return withColor(config.Defaults(), color)
	}

	if color == "" || theme.Normalize(color) == cfg.Theme {
		return cfg
	}
	updated, err := store.SetTheme(color)
	if err != nil {
		logger.Warn("could not store theme", "theme", color, "err", moerrors.UserMessage(err))
		return withColor(cfg, color)
	}
	logger.Debug("theme updated", "theme", updated.Theme, "path", store.Path())
	return updated
}

func withColor(cfg config.Config, color string) config.Config {
	if color != "" {
		cfg.Theme = theme.Normalize(color)
	}
	return cfg
}

// useProgressUI reports whether the progress bar should be drawn: stderr
// must be a terminal and neither --plain nor --verbose may be set.
func (c *CLI) useProgressUI(plain bool) bool {
	if plain || c.Logger.GetLevel() <= log.DebugLevel {
		return false
	}
	f, ok := c.stderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// logProgress reports each job as an info log line.
func logProgress(logger *log.Logger) series.ProgressFunc {
	return func(done, total int, job orbital.Job) {
		logger.Info("Rendering orbital",
			"orbital", job.Orbital,
			"spin", job.Spin,
			"progress", fmt.Sprintf("%d/%d", done, total))
	}
}
