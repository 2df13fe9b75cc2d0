package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// options holds the global command-line flags.
type options struct {
	seed       int64
	dbPath     string
	configPath string
	preset     string
	size       int
	target     int
	logLevel   string
	logFile    string
}

// apply layers the flags over cfg: preset first, then explicit values.
// changed reports whether a flag was set on the command line.
func (o options) apply(cfg *config.Config, changed func(name string) bool) error {
	if o.preset != "" {
		p, err := config.ParsePreset(o.preset)
		if err != nil {
			return err
		}
		config.ApplyPreset(cfg, p)
	}

	if changed("size") {
		cfg.Board.Size = o.size
	}
	if changed("target") {
		cfg.Board.WinTarget = o.target
	}
	if changed("db") {
		cfg.Storage.Path = o.dbPath
	}
	if changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = o.logFile
	}

	return cfg.Validate()
}

// loadConfig reads the config file and applies the command-line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if err := flags.apply(&cfg, cmd.Flags().Changed); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustSetup loads config, logger and storage or exits. The store is nil when
// the database cannot be opened; the game still works without it.
func mustSetup(cmd *cobra.Command) (config.Config, *log.Logger, *storage.Store, func()) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Open(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(config.ExpandPath(cfg.Storage.Path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", cfg.Storage.Path, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		//nolint:errcheck // Nothing useful to do on a failed log close
		closeLog()
	}
	return cfg, logger, store, cleanup
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
