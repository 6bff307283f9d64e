// Package cli implements the moplots command-line interface.
package cli

import (
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/anselmoo/moplots/pkg/config"
	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/series"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "moplots"

	// rendererName is the ORCA plotting executable looked up on $PATH.
	rendererName = "orca_plot"

	// defaultGrid is the default number of grid points per axis.
	defaultGrid = 80
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Launcher runs renderer processes; nil means series.ExecLauncher.
	Launcher series.Launcher

	// ConfigPath overrides the config file location.
	ConfigPath string

	// stderr receives the progress bar.
	stderr io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner & Config Factories
// =============================================================================

// newRunner creates a series runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger) *series.Runner {
	return series.NewRunner(c.Launcher, logger)
}

// configStore opens the config file store.
func (c *CLI) configStore() (*config.Store, error) {
	return config.NewStore(c.ConfigPath)
}

// resolveRenderer picks the orca_plot executable: the flag value, then the
// configured path, then $PATH.
func resolveRenderer(flag, configured string) (string, error) {
	candidate := rendererName
	switch {
	case flag != "":
		candidate = flag
	case configured != "":
		candidate = configured
	}

	path, err := exec.LookPath(candidate)
	if err != nil {
		return "", moerrors.Wrap(moerrors.ErrCodeRendererNotFound, err,
			"%s not found. Please make sure that '%s' is installed", candidate, rendererName)
	}
	return path, nil
}

// workDir returns the directory for scripts and logs.
func workDir(flag string) string {
	if flag != "" {
		return flag
	}
	return os.TempDir()
}
