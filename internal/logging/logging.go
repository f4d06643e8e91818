// Package logging builds the structured logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

// New creates a logger writing to w at the configured level.
// An empty level means info.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Stderr creates a logger on standard error, used by the SSH server and the
// plain-text commands.
func Stderr(cfg config.LogConfig, prefix string) (*log.Logger, error) {
	return New(os.Stderr, cfg.Level, prefix)
}

// File creates a logger appending to the configured log file.
// While the TUI owns the terminal nothing else may write to it, so the local
// game logs here. An empty path discards output.
// The returned close function must be called on exit.
func File(cfg config.LogConfig) (*log.Logger, func() error, error) {
	if cfg.File == "" {
		logger, err := New(io.Discard, cfg.Level, "")
		return logger, func() error { return nil }, err
	}

	path, err := config.ExpandHome(cfg.File)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}

	logger, err := New(f, cfg.Level, "")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
