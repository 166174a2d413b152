package starkgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/starklab/starkgo/state"
)

// Logger wraps slog.Logger with starkgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithState adds the quantum-number and id fields of a state to the logger.
func (l *Logger) WithState(s state.State) *Logger {
	return &Logger{
		Logger: l.Logger.With("state", s.String(), "id", s.ID()),
	}
}

// WithMolecule adds a molecule name field to the logger.
func (l *Logger) WithMolecule(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("molecule", name),
	}
}

// LogSweep logs one completed M sweep of a Stark calculation.
func (l *Logger) LogSweep(ctx context.Context, m, states int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "M sweep failed",
			"M", m,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "M sweep merged and flushed",
			"M", m,
			"states", states,
		)
	}
}

// LogSkippedPath logs a storage path that could not be parsed back into a
// state during enumeration. The entry is skipped, not fatal.
func (l *Logger) LogSkippedPath(ctx context.Context, path string, err error) {
	l.WarnContext(ctx, "skipping foreign storage path",
		"path", path,
		"error", err,
	)
}
