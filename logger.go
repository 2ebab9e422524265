package embedgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with embedgo-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithSource adds a source field (file path or blob name) to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogLoad logs a pretrained table load.
func (l *Logger) LogLoad(ctx context.Context, source string, rows, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "embedding load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "embedding loaded",
			"source", source,
			"rows", rows,
			"dimension", dimension,
		)
	}
}

// LogRandomInit logs a random initialization.
func (l *Logger) LogRandomInit(ctx context.Context, rows, dimension int, scale float32) {
	l.DebugContext(ctx, "embedding randomly initialized",
		"rows", rows,
		"dimension", dimension,
		"scale", scale,
	)
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot "+op+" failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot "+op+" completed",
			"name", name,
		)
	}
}
