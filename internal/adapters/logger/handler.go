package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/packlink/internal/ui/output"
	"go.trai.ch/packlink/internal/ui/style"
)

// Attribute keys understood by PrettyHandler.
const (
	keyPrefix  = "prefix"
	keyStream  = "stream"
	keyStep    = "step"
	keyElapsed = "elapsed"
	keyError   = "error"

	streamStdout = "stdout"
	streamStderr = "stderr"
)

// PrettyHandler is a slog.Handler for terminals.
//
// Records carrying a stream attribute are command output and render as
// "prefix │ line". Records carrying a step attribute render as a check or
// cross mark, the step name and its duration. Everything else renders as the
// message followed by key=value pairs, marked by level.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := slices.Clone(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})

	var line string
	switch {
	case hasAttr(attrs, keyStream):
		line = h.outputLine(r.Message, attrs)
	case hasAttr(attrs, keyStep):
		line = h.stepLine(r.Message, attrs)
	default:
		line = h.messageLine(r.Level, r.Message, attrs)
	}

	_, err := h.out.WriteString(line + "\n")
	return err
}

func (h *PrettyHandler) outputLine(msg string, attrs []slog.Attr) string {
	prefix := h.paint(attrString(attrs, keyPrefix), style.Iris)
	pipe := h.paint(style.Pipe, style.Slate)

	color := style.Slate
	if attrString(attrs, keyStream) == streamStderr {
		color = style.Yellow
	}
	return prefix + " " + pipe + " " + h.paint(msg, color)
}

func (h *PrettyHandler) stepLine(msg string, attrs []slog.Attr) string {
	elapsed := h.paint("("+attrDuration(attrs, keyElapsed).Round(time.Millisecond).String()+")", style.Slate)

	if reason := attrString(attrs, keyError); reason != "" {
		return h.paint(style.Cross+" "+msg, style.Red) + " " + elapsed + h.paint(": "+reason, style.Red)
	}
	return h.paint(style.Check+" "+msg, style.Green) + " " + elapsed
}

func (h *PrettyHandler) messageLine(level slog.Level, msg string, attrs []slog.Attr) string {
	color := style.Slate
	switch {
	case level >= slog.LevelError:
		msg = style.Cross + " " + msg
		color = style.Red
	case level >= slog.LevelWarn:
		msg = style.Warning + " " + msg
		color = style.Yellow
	}

	for _, attr := range attrs {
		key := attr.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		msg += " " + key + "=" + attr.Value.String()
	}
	return h.paint(msg, color)
}

func (h *PrettyHandler) paint(s string, color lipgloss.Color) string {
	return h.out.String(s).Foreground(termenv.RGBColor(string(color))).String()
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clone(h.attrs), attrs...)
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func hasAttr(attrs []slog.Attr, key string) bool {
	return slices.ContainsFunc(attrs, func(a slog.Attr) bool { return a.Key == key })
}

func attrString(attrs []slog.Attr, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value.String()
		}
	}
	return ""
}

func attrDuration(attrs []slog.Attr, key string) time.Duration {
	for _, a := range attrs {
		if a.Key == key && a.Value.Kind() == slog.KindDuration {
			return a.Value.Duration()
		}
	}
	return 0
}
