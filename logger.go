package closestpair

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with closestpair-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w,
// or to stderr when w is nil.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w,
// or to stderr when w is nil.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSet adds a set name field to the logger (useful in batch runs).
func (l *Logger) WithSet(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("set", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSolve logs a completed closest-pair computation.
func (l *Logger) LogSolve(ctx context.Context, stats Stats, result uint64, ok bool) {
	if !ok {
		l.WarnContext(ctx, "no pair exists",
			"points", stats.Points,
		)
		return
	}
	l.DebugContext(ctx, "closest pair computed",
		"points", stats.Points,
		"result", result,
		"evaluations", stats.Evaluations,
		"merges", stats.Merges,
		"depth", stats.MaxDepth,
		"elapsed", stats.Elapsed,
	)
}

// LogDuplicate logs the duplicate pre-check short circuit.
func (l *Logger) LogDuplicate(ctx context.Context, points int, p Point) {
	l.DebugContext(ctx, "duplicate point found",
		"points", points,
		"point", p.String(),
	)
}

// LogLoad logs reading a point set.
func (l *Logger) LogLoad(ctx context.Context, source, format string, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", source,
			"format", format,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "point set loaded",
			"source", source,
			"format", format,
			"points", points,
		)
	}
}

// LogBatch logs a batch run.
func (l *Logger) LogBatch(ctx context.Context, count, failed int, elapsed time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"count", count,
			"elapsed", elapsed,
		)
	}
}
