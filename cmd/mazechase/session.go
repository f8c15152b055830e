package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/levels"
)

// session is the resolved configuration and logger of one command run.
type session struct {
	cfg    config.Config
	logger *log.Logger
	runID  string
	maze   levels.Source
	close  func()
}

// newSession loads config, applies environment and flag overrides, and
// builds the logger. defaultLog receives logs when --log-file is not set.
//
// Precedence: flags > environment (.env included) > config file > defaults.
func newSession(cmd *cobra.Command, defaultLog io.Writer) (*session, error) {
	env, err := config.ReadEnv(flagEnvFile)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	env.Apply(&cfg)

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Runtime.Seed = flagSeed
	}
	if flags.Changed("maze") {
		cfg.Runtime.Maze = flagMaze
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := flagLogLevel
	if !flags.Changed("log-level") && env.LogLevel != "" {
		level = env.LogLevel
	}

	logger, closeLog, err := newLogger(flagLogFile, level, defaultLog)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger = logger.With("run", runID[:8])

	s := &session{
		cfg:    cfg,
		logger: logger,
		runID:  runID,
		close:  closeLog,
	}
	s.maze = levels.NewLoader(flagMazeDir).Resolve(cfg.Runtime.Maze, logger)
	if s.maze.Fallback {
		fmt.Fprintf(os.Stderr, "Warning: maze %q unavailable, using %s\n", cfg.Runtime.Maze, s.maze.Name)
	}

	logger.Debug("session ready", "maze", s.maze.ID, "seed", cfg.Runtime.Seed, "tick_rate", cfg.Runtime.TickRate)
	return s, nil
}

// newLogger builds the charm logger. With a path it appends to that file.
func newLogger(path, level string, fallback io.Writer) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w := fallback
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazechase",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
