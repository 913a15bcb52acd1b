// Package logging builds the zap logger used across pokedex.
//
// The terminal belongs to the UI, so logs are written as JSON lines to a
// file instead of stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// DefaultPath returns $XDG_STATE_HOME/pokedex/pokedex.log, falling back to
// ~/.local/state/pokedex/pokedex.log.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "pokedex", "pokedex.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pokedex", "pokedex.log")
	}
	return filepath.Join(home, ".local", "state", "pokedex", "pokedex.log")
}

// ParseLevel converts a level name (debug, info, warn, error) to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(strings.ToLower(level))
}

// New creates a JSON logger appending to path at the given level. The
// returned sync func flushes buffered entries; call it before exit.
func New(path, level string) (*zap.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, logger.Sync, nil
}

// NewOrNop is New, but falls back to a no-op logger when the file cannot
// be opened. The error is returned alongside for the caller to report.
func NewOrNop(path, level string) (*zap.Logger, func() error, error) {
	logger, sync, err := New(path, level)
	if err != nil {
		return zap.NewNop(), func() error { return nil }, err
	}
	return logger, sync, nil
}
