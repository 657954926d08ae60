package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// newLogger opens the log file. The TUI owns the terminal, so logs never go
// to stdout. On failure logs are discarded and a warning is printed.
func newLogger() (*log.Logger, func()) {
	path := flagLogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return log.New(io.Discard), func() {}
		}
		path = filepath.Join(home, ".arcade", "breakout.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }
}

// openStore opens the database. Commands that can run without it get nil
// and a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// fileSettings returns the difficulty and sound from breakout.yaml. They
// apply until the player stores their own with 'breakout settings'.
func fileSettings(logger *log.Logger) storage.Settings {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		logger.Warn("config unreadable, using default settings", "err", err)
		return storage.DefaultSettings()
	}
	return storage.Settings{Difficulty: cfg.Difficulty, Sound: cfg.Sound}
}

// loadSettings returns the stored settings layered over the config file.
func loadSettings(store *storage.Store, logger *log.Logger) storage.Settings {
	base := fileSettings(logger)
	if store == nil {
		return base
	}
	st, err := store.LoadSettingsOver(base)
	if err != nil {
		logger.Warn("using config file settings", "err", err)
	}
	return st
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}
