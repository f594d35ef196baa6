package execgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with execgo-specific context.
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

// WithK adds a k (selection size) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogTopK logs a top-k selection.
func (l *Logger) LogTopK(ctx context.Context, k, workers, n, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "top-k selection failed",
			"k", k,
			"workers", workers,
			"n", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "top-k selection completed",
			"k", k,
			"workers", workers,
			"n", n,
			"results", resultsFound,
		)
	}
}

// LogGroupSum logs a grouped summation.
func (l *Logger) LogGroupSum(ctx context.Context, n, groups int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "group sum failed",
			"n", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "group sum completed",
			"n", n,
			"groups", groups,
		)
	}
}

// LogMatch logs a substring match pass.
func (l *Logger) LogMatch(ctx context.Context, n, matches int) {
	l.DebugContext(ctx, "substring match completed",
		"n", n,
		"matches", matches,
	)
}

// LogIntersect logs a sorted intersection.
func (l *Logger) LogIntersect(ctx context.Context, lenA, lenB, size int) {
	l.DebugContext(ctx, "intersection completed",
		"len_a", lenA,
		"len_b", lenB,
		"size", size,
	)
}
