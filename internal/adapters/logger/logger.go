// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/importcache/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	level    *slog.LevelVar
}

// New creates a Logger that pretty-prints to stderr at info level.
func New() ports.Logger {
	l := &Logger{
		output: os.Stderr,
		level:  &slog.LevelVar{},
	}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild swaps the slog handler. Callers hold l.mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination, keeping the current
// format. A nil w selects os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug output.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a debug message with optional key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message with optional key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning with optional key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs err. Pretty output walks the zerr chain and prints each layer
// with its metadata; JSON output logs the error as a single attribute.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
