package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlink/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil).WithAttrs([]slog.Attr{slog.String("source", "/work/lib-x")})
	slog.New(h).Warn("keeping archive", "path", "/work/lib-x-1.0.0.tgz")

	assert.Equal(t, "! keeping archive source=/work/lib-x path=/work/lib-x-1.0.0.tgz\n", buf.String())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil).WithGroup("npm")
	slog.New(h).Info("packed", "archive", "lib-x-1.0.0.tgz")

	assert.Equal(t, "packed npm.archive=lib-x-1.0.0.tgz\n", buf.String())
}

func TestPrettyHandler_OutputPrefixFromHandlerAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil).WithAttrs([]slog.Attr{slog.String("prefix", "app-b")})
	slog.New(h).Info("up to date", "stream", "stdout")

	assert.Equal(t, "app-b │ up to date\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	require.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}
