// SPDX-License-Identifier: MIT

// Package config holds the routeopt shell settings, read from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/routeopt/core"
)

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds routeopt configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Log     LogConfig     `toml:"log"`
	Report  ReportConfig  `toml:"report"`
	Metrics MetricsConfig `toml:"metrics"`
}

// EditorConfig controls connect mode.
type EditorConfig struct {
	DefaultWeight string `toml:"default_weight"`
}

// LogConfig controls the shell logger.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text", "json"
}

// ReportConfig controls result rendering.
type ReportConfig struct {
	Color    bool `toml:"color"`
	Humanize bool `toml:"humanize"`
}

// MetricsConfig controls the metrics dump.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor:  EditorConfig{DefaultWeight: "10"},
		Log:     LogConfig{Level: "info", Format: "text"},
		Report:  ReportConfig{Color: true, Humanize: true},
		Metrics: MetricsConfig{Enabled: false},
	}
}

// Path returns the default config file location.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, "routeopt", "config.toml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated fields and the default weight.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if _, ok := core.ParseWeight(c.Editor.DefaultWeight); !ok {
		return fmt.Errorf("%w: editor.default_weight %q", ErrInvalid, c.Editor.DefaultWeight)
	}

	return nil
}

// ParseLevel maps a level name onto slog. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, name)
	}

	return lvl, nil
}
