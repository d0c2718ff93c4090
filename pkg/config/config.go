// Package config loads the outloud configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/outloud/config.toml, or
// ~/.config/outloud/config.toml when XDG_CONFIG_HOME is unset:
//
//	file = "notes"
//
//	[log]
//	level = "info"
//
//	[editor]
//	history_size = 8
//	wrap = 80
//
//	[limits]
//	max_nodes = 0
//
// Every key is optional. A missing file yields [Default].
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/outloud/pkg/errors"
)

// AppName names the config directory.
const AppName = "outloud"

// Config is the decoded configuration.
type Config struct {
	// File is the document opened when no file argument is given.
	File   string `toml:"file"`
	Log    Log    `toml:"log"`
	Editor Editor `toml:"editor"`
	Limits Limits `toml:"limits"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"`
}

// Editor configures the interactive editor and dump output.
type Editor struct {
	// HistorySize is the number of recent exchanges the editor shows.
	HistorySize int `toml:"history_size"`
	// Wrap is the dump line width. Zero disables wrapping.
	Wrap int `toml:"wrap"`
}

// Limits bounds the document size.
type Limits struct {
	// MaxNodes caps the document arena. Zero means unlimited.
	MaxNodes int `toml:"max_nodes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		File:   "notes",
		Log:    Log{Level: "info"},
		Editor: Editor{HistorySize: 8, Wrap: 80},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads path on top of Default. An empty path means Path(). A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFile, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeFile, err, "parse config %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Default(), errors.New(errors.ErrCodeFile, "config %s: unknown key %q", path, keys[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Editor.HistorySize < 0 {
		return errors.New(errors.ErrCodePrecondition, "editor.history_size must not be negative")
	}
	if c.Editor.Wrap < 0 {
		return errors.New(errors.ErrCodePrecondition, "editor.wrap must not be negative")
	}
	if c.Limits.MaxNodes < 0 {
		return errors.New(errors.ErrCodePrecondition, "limits.max_nodes must not be negative")
	}
	return nil
}

// Level parses the configured log level.
func (c Config) Level() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodePrecondition, err, "log.level %q", c.Log.Level)
	}
	return lvl, nil
}
