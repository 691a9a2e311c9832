package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// loadConfig loads the YAML config and applies CLI overrides.
func loadConfig() (config.TetrisConfig, config.Source, error) {
	cfg, src, err := config.Load(expandHome(flagConfig))
	if err != nil {
		return cfg, src, err
	}

	if flagFPS != 0 {
		cfg.Timing.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, src, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, src, nil
}

// runtimeConfig converts cfg for the engine and applies the seed flag.
func runtimeConfig(cfg config.TetrisConfig) core.RuntimeConfig {
	rc := cfg.ToRuntime()
	rc.Seed = flagSeed
	return rc
}

// openLogger creates the file logger. The TUI owns the terminal, so nothing
// is logged to stdout or stderr while a game runs.
func openLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	path := expandHome(flagLogFile)
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			return log.New(io.Discard), nopCloser{}, nil
		}
		path = filepath.Join(dir, "tetris.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
