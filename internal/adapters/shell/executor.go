// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes command in dir and returns its combined output.
// Output is captured, streamed to the vertex carried by ctx (if any) and logged line by line.
func (e *Executor) Run(ctx context.Context, dir string, command []string) (string, error) {
	if len(command) == 0 {
		return "", nil
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // command built by adapters
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	prefix := outputPrefix(dir, command[0])
	stdoutLog := &logWriter{logger: e.logger, prefix: prefix}
	stderrLog := &logWriter{logger: e.logger, prefix: prefix, stderr: true}

	stdout := []io.Writer{&stdoutBuf, stdoutLog}
	stderr := []io.Writer{&stderrBuf, stderrLog}
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		stdout = append(stdout, vertex.Stdout())
		stderr = append(stderr, vertex.Stderr())
	}

	cmd.Stdout = io.MultiWriter(stdout...)
	cmd.Stderr = io.MultiWriter(stderr...)

	err := cmd.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(err, "failed to run "+command[0]), "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "command", strings.Join(command, " "))
		if dir != "" {
			wrapped = zerr.With(wrapped, "dir", dir)
		}
		if tail := strings.TrimSpace(stderrBuf.String()); tail != "" {
			wrapped = zerr.With(wrapped, "stderr", tail)
		}
		return "", errors.Join(domain.ErrCommandFailed, wrapped)
	}

	return combineOutput(stdoutBuf.String(), stderrBuf.String()), nil
}

// combineOutput appends stderr to stdout after a line break, only if stderr is non-empty.
func combineOutput(stdout, stderr string) string {
	if stderr == "" {
		return stdout
	}
	return stdout + "\nstderr: " + stderr
}

// outputPrefix names the project a command runs in, falling back to the program name.
func outputPrefix(dir, program string) string {
	if dir == "" {
		return filepath.Base(program)
	}
	return filepath.Base(dir)
}

// logWriter forwards complete lines to the logger. Output from a command arrives in
// arbitrary chunks, so partial lines are buffered until a newline or Close.
type logWriter struct {
	logger ports.Logger
	prefix string
	stderr bool

	mu  sync.Mutex
	buf []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}

	w.logger.Output(w.prefix, msg, w.stderr)
}
