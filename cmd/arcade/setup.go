package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kiro-arcade/internal/config"
	"github.com/vovakirdan/kiro-arcade/internal/core"
	"github.com/vovakirdan/kiro-arcade/internal/platform/tui"
	"github.com/vovakirdan/kiro-arcade/internal/storage"
)

var (
	settings config.Settings
	logger   = log.New(io.Discard)
	logFile  *os.File
)

// setup loads settings, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	s = applyFlags(cmd, s)
	if err := s.Validate(); err != nil {
		return err
	}
	settings = s

	var out io.Writer = io.Discard
	if settings.Log.File != "" {
		f, err := os.OpenFile(config.ExpandHome(settings.Log.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}
	logger = newLogger(out, settings.Log.Level)
	logger.Debug("settings loaded", "tick_rate", settings.TickRate, "db", settings.DBPath)
	return nil
}

// applyFlags overrides settings with explicitly set global flags.
func applyFlags(cmd *cobra.Command, s config.Settings) config.Settings {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.TickRate = flagFPS
	}
	if flags.Changed("db") {
		s.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		s.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		s.Log.File = flagLogFile
	}
	return s
}

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(out io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if lvl, err := log.ParseLevel(strings.ToLower(level)); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = settings.TickRate
	cfg.Seed = flagSeed
	return cfg
}

// modelOptions describes a local session.
func modelOptions(session tui.Session) tui.ModelOptions {
	return tui.ModelOptions{
		Session:     session,
		Logger:      logger,
		RepeatDelay: settings.Input.RepeatDelay,
		HoldWindow:  settings.Input.HoldWindow,
	}
}
