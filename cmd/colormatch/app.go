package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/colormatch/internal/config"
	"github.com/vovakirdan/colormatch/internal/core"
	"github.com/vovakirdan/colormatch/internal/game"
	"github.com/vovakirdan/colormatch/internal/kv"
	"github.com/vovakirdan/colormatch/internal/platform/tui"
	"github.com/vovakirdan/colormatch/internal/slot"
	"github.com/vovakirdan/colormatch/internal/storage"
)

// resettable is a best-score store that can also be cleared.
type resettable interface {
	game.BestScoreStore
	Reset() error
}

// app holds everything a command opens from the global flags.
type app struct {
	cfg     config.GameConfig
	history *storage.Store
	bolt    *kv.DB
	best    game.BestScoreStore
	logger  *log.Logger
	logOut  io.Closer
}

// openApp loads config, opens the stores and builds the logger.
// Interactive commands log to --log-file only, so the alt screen stays clean.
func openApp(interactive bool) (*app, error) {
	a := &app{}

	logger, closer, err := newLogger(interactive)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.logOut = closer

	cfg, err := config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyDifficultyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			a.Close()
			return nil, err
		}
	}
	a.cfg = cfg

	history, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		if !interactive {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		}
	} else {
		a.history = history
	}

	switch flagBestStore {
	case "sqlite", "":
		if a.history != nil {
			a.best = a.history.BestScoreSlot(slot.BestScoreKey, logger)
		}
	case "bolt":
		db, err := kv.Open(flagBoltPath)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.bolt = db
		a.best = db.Slot(slot.BestScoreKey, logger)
	default:
		a.Close()
		return nil, fmt.Errorf("unknown best store %q (expected sqlite or bolt)", flagBestStore)
	}

	if a.best == nil {
		logger.Warn("best score will not be saved")
		a.best = game.NewMemoryStore(0)
	}

	logger.Debug("app ready",
		"db", flagDBPath,
		"best_store", flagBestStore,
		"difficulty", cfg.Difficulty,
	)
	return a, nil
}

// newLogger builds the process logger from --log-file and --log-level.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "colormatch",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	return logger, closer, nil
}

// deps returns what the screens need.
func (a *app) deps() tui.Deps {
	return tui.Deps{
		Config:  a.cfg,
		History: a.history,
		Best:    a.best,
		Logger:  a.logger,
	}
}

// Close releases every store the app opened.
func (a *app) Close() {
	if a.history != nil {
		a.history.Close()
	}
	if a.bolt != nil {
		a.bolt.Close()
	}
	if a.logOut != nil {
		a.logOut.Close()
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
