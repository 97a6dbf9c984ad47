// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.trai.ch/packlink/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput updates the logger's output destination, keeping the current format.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Output logs a line of command output. Lines written to stderr are logged at warn level.
func (l *Logger) Output(prefix, line string, stderr bool) {
	level, stream := slog.LevelInfo, streamStdout
	if stderr {
		level, stream = slog.LevelWarn, streamStderr
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Log(context.Background(), level, line,
		slog.String(keyPrefix, prefix),
		slog.String(keyStream, stream),
	)
}

// Step logs a finished step with its duration. Failed steps are logged at warn level;
// the error itself is reported once by the caller through Error.
func (l *Logger) Step(name string, elapsed time.Duration, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err != nil {
		l.logger.Warn(name,
			slog.Bool(keyStep, true),
			slog.Duration(keyElapsed, elapsed),
			slog.String(keyError, err.Error()),
		)
		return
	}
	l.logger.Info(name,
		slog.Bool(keyStep, true),
		slog.Duration(keyElapsed, elapsed),
	)
}

// Error logs an error. In pretty mode the error chain is rendered with its
// causes and metadata; in JSON mode it is attached as an attribute.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error())
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
