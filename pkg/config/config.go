// Package config persists moplots settings in a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/moplots/config.toml, falling back to
// ~/.config/moplots/config.toml. It is created with defaults the first
// time it is loaded:
//
//	theme = "dracula"
//	# orca_plot = "/opt/orca/orca_plot"
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
	"github.com/anselmoo/moplots/pkg/theme"
)

const (
	appName  = "moplots"
	fileName = "config.toml"
)

// Config is the persisted configuration.
type Config struct {
	// Theme is the color scheme name, see [theme.Names].
	Theme string `toml:"theme"`

	// OrcaPlot overrides the orca_plot executable found on $PATH.
	OrcaPlot string `toml:"orca_plot,omitempty"`
}

// Defaults returns the configuration written on first use.
func Defaults() Config {
	return Config{Theme: theme.Default}
}

// Dir returns the configuration directory using the XDG standard.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Store reads and writes a single config file.
type Store struct {
	path string
}

// NewStore creates a store for path. If path is empty, the default
// location under [Dir] is used.
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return nil, moerrors.Wrap(moerrors.ErrCodeConfig, err, "locate config directory")
		}
		path = filepath.Join(dir, fileName)
	}
	return &Store{path: path}, nil
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file is created with [Defaults].
func (s *Store) Load() (Config, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		cfg := Defaults()
		if err := s.Save(cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(s.path, &cfg); err != nil {
		return Config{}, moerrors.Wrap(moerrors.ErrCodeConfig, err, "parse %s", s.path)
	}
	if cfg.Theme == "" {
		cfg.Theme = theme.Default
	}
	if _, err := theme.Lookup(cfg.Theme); err != nil {
		return Config{}, moerrors.Wrap(moerrors.ErrCodeConfig, err, "invalid theme in %s", s.path)
	}
	cfg.Theme = theme.Normalize(cfg.Theme)
	return cfg, nil
}

// Save writes cfg, creating the parent directory if needed.
func (s *Store) Save(cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return moerrors.Wrap(moerrors.ErrCodeConfig, err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return moerrors.Wrap(moerrors.ErrCodeConfig, err, "create config directory")
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return moerrors.Wrap(moerrors.ErrCodeConfig, err, "write %s", s.path)
	}
	return nil
}

// SetTheme validates name and stores it as the active theme.
func (s *Store) SetTheme(name string) (Config, error) {
	if _, err := theme.Lookup(name); err != nil {
		return Config{}, err
	}
	cfg, err := s.Load()
	if err != nil {
		return Config{}, err
	}
	cfg.Theme = theme.Normalize(name)
	if err := s.Save(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
