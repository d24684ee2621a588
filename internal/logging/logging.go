// Package logging sets up the diagnostic log. The terminal belongs to the
// UI, so records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ParseLevel maps debug, info, warn(ing) and error to slog levels.
// Unknown input yields info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a JSON slog logger writing to w at the given level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	})
	return slog.New(handler)
}

// InitLogger configures the default slog logger (and the standard log
// package) to append to path. With an empty path everything is discarded.
// The returned close func must be called on exit.
func InitLogger(path, level, prefix string) (*slog.Logger, func() error, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := NewLogger(f, level)
	slog.SetDefault(logger)
	return logger, f.Close, nil
}
