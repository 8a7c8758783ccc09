// Package logging builds the application logger. Output goes to a file,
// never the terminal: bubbletea owns stdout and stderr while the tour
// is running.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Open creates a logger appending to path at the given level. An empty
// path, or a file that cannot be opened, yields a no-op logger — the
// tour never fails because of its debug log.
func Open(path, level string) (*slog.Logger, func()) {
	if path == "" {
		return NewNop(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return NewNop(), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	return logger, func() { _ = f.Close() }
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
