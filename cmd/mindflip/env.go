package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mindflip/internal/config"
	"github.com/vovakirdan/mindflip/internal/games/mindflip/core"
	"github.com/vovakirdan/mindflip/internal/games/mindflip/levels"
)

// env bundles what every subcommand needs.
type env struct {
	cfg    config.MindFlipConfig
	logger *log.Logger
	loader *levels.Loader
}

// loadEnv reads config, applies flag overrides and prepares the logger and level loader.
func loadEnv() (*env, error) {
	cfg, err := config.LoadMindFlip(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	var loader *levels.Loader
	if cfg.Levels.Dir != "" {
		loader = levels.NewLoader(cfg.Levels.Dir)
	} else {
		loader = levels.Builtin()
	}
	loader.SetLogger(logger)

	return &env{cfg: cfg, logger: logger, loader: loader}, nil
}

// newLogger writes to stderr, switching to JSON lines when stderr is not a terminal.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mindflip",
		Level:           lvl,
	})
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, nil
}

// buildLevel loads a level by ID and constructs it with the configured heuristic.
func (e *env) buildLevel(id string, opts ...core.LevelOption) (levels.Definition, *core.Level, error) {
	def, err := e.loader.LoadByID(id)
	if err != nil {
		return def, nil, err
	}

	h, err := e.cfg.Pathfinding.HeuristicFor(def.Dims)
	if err != nil {
		return def, nil, err
	}

	opts = append([]core.LevelOption{
		core.WithLogger(e.logger.With("level", def.ID)),
		core.WithHeuristic(h),
	}, opts...)

	lv, err := def.Build(opts...)
	if err != nil {
		return def, nil, err
	}
	return def, lv, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
