// Package logging sets up charmbracelet/log loggers for the CLI and the
// game loop. The full-screen TUI owns stdout, so interactive sessions log
// to a file instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

// DefaultFile is where interactive sessions write their log.
const DefaultFile = "~/.invasion/invasion.log"

// New creates a timestamped logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending, creating it and its directory as needed.
// A leading ~ is expanded to the home directory.
func OpenFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Events logs the events of one simulation step. Frequent combat events go
// to debug; session-level changes go to info.
func Events(logger *log.Logger, events []core.Event) {
	for _, e := range events {
		kv := []any{"tick", e.Tick, "value", e.Value}
		if e.Detail != "" {
			kv = append(kv, "detail", e.Detail)
		}

		switch e.Kind {
		case core.EventEnemyDestroyed, core.EventBombDropped, core.EventPauseToggled:
			logger.Debug(e.Kind.String(), kv...)
		case core.EventSwarmLanded, core.EventPlayerHit:
			logger.Warn(e.Kind.String(), kv...)
		default:
			logger.Info(e.Kind.String(), kv...)
		}
	}
}
