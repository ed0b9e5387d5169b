package stargrid

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with catalog-specific helpers so build and
// query logging uses consistent field names.
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

// WithStars adds the catalog size to the logger.
func (l *Logger) WithStars(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("stars", count),
	}
}

// LogSort logs a catalog sort.
func (l *Logger) LogSort(stars int, elapsed time.Duration) {
	l.Debug("catalog sorted",
		"stars", stars,
		"elapsed", elapsed,
	)
}

// LogRetain logs a retain pass.
func (l *Logger) LogRetain(before, after int, elapsed time.Duration) {
	l.Debug("catalog filtered",
		"before", before,
		"after", after,
		"dropped", before-after,
		"elapsed", elapsed,
	)
}

// LogDeriveIndex logs an index derivation.
func (l *Logger) LogDeriveIndex(stars int, occupiedCells uint64, elapsed time.Duration) {
	l.Debug("cell index derived",
		"stars", stars,
		"occupied_cells", occupiedCells,
		"elapsed", elapsed,
	)
}

// LogNearest logs a nearest-star query.
func (l *Logger) LogNearest(found bool, cos float64, elapsed time.Duration) {
	l.Debug("nearest query completed",
		"found", found,
		"cos", cos,
		"elapsed", elapsed,
	)
}

// LogNearestK logs a k-nearest query.
func (l *Logger) LogNearestK(k, found int, elapsed time.Duration) {
	l.Debug("nearest-k query completed",
		"k", k,
		"found", found,
		"elapsed", elapsed,
	)
}

// LogTriples logs a triangle search.
func (l *Logger) LogTriples(cellRange int, matches int, elapsed time.Duration) {
	l.Debug("triangle search completed",
		"cell_range", cellRange,
		"matches", matches,
		"elapsed", elapsed,
	)
}
