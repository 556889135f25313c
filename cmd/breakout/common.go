package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/scoreboard"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// loadConfig reads the configuration and applies the difficulty preset.
func loadConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	return cfg, nil
}

// newLogger returns a logger writing to --log, or discarding output.
// The alt screen owns the terminal while playing, so nothing goes to stderr.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openBoard opens the leaderboard: the SQLite database when --db is set,
// the flat score file otherwise. source names where the scores live.
func openBoard(limit int) (board *scoreboard.Board, source string, closeFn func(), err error) {
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, "", nil, err
		}
		store.SetLimit(limit)
		return scoreboard.NewBoard(store, limit), flagDBPath, func() {
			//nolint:errcheck // Best-effort close
			store.Close()
		}, nil
	}

	store, err := scoreboard.NewFileStore(flagScores, limit)
	if err != nil {
		return nil, "", nil, err
	}
	return scoreboard.NewBoard(store, limit), store.Path(), func() {}, nil
}
