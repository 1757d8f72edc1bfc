// platformer is a side-scrolling platformer with a built-in level editor that runs in
// a terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	platformer                   - Play in the terminal (same as "play")
//	platformer play              - Play in the terminal
//	platformer gui               - Play in a desktop window
//	platformer serve             - Start SSH server for remote play
//	platformer levels <command>  - Inspect and manage saved levels
//
// Global flags:
//
//	--config <path>      - Configuration file (default: search order in config.Load)
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--store <backend>    - Level storage: file or sqlite
//	--level-file <path>  - YAML level file for the file backend
//	--db <path>          - Database path for the sqlite backend
//	--slot <name>        - Level slot inside the database
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagFPS       int
	flagStore     string
	flagLevelFile string
	flagDBPath    string
	flagSlot      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - Jump around and build levels in your terminal",
	Long: `Platformer is a small side-scrolling game with a level editor.

Available commands:
  play     - Play in the terminal (default)
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  levels   - Inspect and manage saved levels

Examples:
  platformer
  platformer gui
  platformer --store sqlite --slot castle
  platformer serve
  platformer levels list`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Level storage backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagLevelFile, "level-file", "", "Path to the YAML level file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the levels database")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "", "Level slot name in the database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagStore != "" {
		cfg.Storage.Backend = flagStore
	}
	if flagLevelFile != "" {
		cfg.Storage.LevelFile = flagLevelFile
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagSlot != "" {
		cfg.Storage.Slot = flagSlot
	}
	return cfg
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// fileLogger opens the configured log file so terminal sessions keep the screen clean.
// It falls back to discarding output when the file cannot be opened.
func fileLogger(cfg config.Config) (*log.Logger, func()) {
	path := config.ExpandHome(cfg.Log.File)
	if path == "" {
		return newLogger(io.Discard, cfg), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, cfg), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLogger(io.Discard, cfg), func() {}
	}
	return newLogger(f, cfg), func() { f.Close() } //nolint:errcheck // Best-effort close
}

// openLevelStore returns the level store selected by the configuration.
// The returned close function releases the database, if one was opened.
func openLevelStore(cfg config.Config) (level.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendFile, "":
		return level.NewFileStore(config.ExpandHome(cfg.Storage.LevelFile)), func() {}, nil
	case config.BackendSQLite:
		db, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return storage.Slot{Store: db, Name: cfg.Storage.Slot}, func() { db.Close() }, nil //nolint:errcheck // Best-effort close
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q (expected %s or %s)",
			cfg.Storage.Backend, config.BackendFile, config.BackendSQLite)
	}
}
