// Package cli implements the outloud command-line interface.
//
// The commands open one outline document and hand it to the engine:
//   - edit: interactive editing, as a full-screen editor on a terminal or
//     one word per token from stdin otherwise
//   - dump: print the outline as an indented bullet list
//   - export: render the outline as DOT, SVG, PDF or PNG
//   - check: load a document, verify its structure and print statistics
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The level
// can also be set in the config file (see package config).
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/outloud/pkg/buildinfo"
	"github.com/matzehuels/outloud/pkg/cache"
	"github.com/matzehuels/outloud/pkg/config"
	"github.com/matzehuels/outloud/pkg/engine"
)

// =============================================================================
// Constants
// =============================================================================

const appName = config.AppName

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
	Config config.Config

	configPath string
	in         io.Reader
	out        io.Writer
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Outloud edits outlines one word at a time",
		Long: `Outloud is an outline editor driven by single words, built for voice input.
Every word either moves the cursor, edits the outline or answers with a short
spoken-style reply. Documents are saved as the words that rebuild them.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/outloud/config.toml)")

	root.AddCommand(c.editCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and wires logging before any command runs.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	c.Config = cfg
	c.SetLogLevel(level)
	installHooks(c.Logger)
	c.Logger.Debug("config loaded", "file", cfg.File, "max_nodes", cfg.Limits.MaxNodes)
	return nil
}

// =============================================================================
// Sessions
// =============================================================================

// docPath returns the document named on the command line or the configured
// default.
func (c *CLI) docPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.Config.File
}

// open starts a session on the document named by args.
func (c *CLI) open(args []string) (*engine.Session, error) {
	return engine.Open(c.docPath(args),
		engine.WithLogger(c.Logger),
		engine.WithNodeLimit(c.Config.Limits.MaxNodes),
	)
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/outloud/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
