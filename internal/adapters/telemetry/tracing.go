package telemetry

import (
	"context"
	"errors"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Tracing)(nil)

// Tracing decorates a Telemetry so that every vertex is also an OpenTelemetry span.
// Vertex output is attached to the span as batched "output" events.
type Tracing struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
	inner    ports.Telemetry
	sinks    []io.Closer
}

// NewTracing creates a Tracing on a new SDK tracer provider and registers that
// provider globally. Spans are only written once ExportTo is called.
func NewTracing(name string, inner ports.Telemetry) *Tracing {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return NewTracingWithProvider(tp, name, inner)
}

// NewTracingWithProvider creates a Tracing using tp. ExportTo requires tp to be
// an SDK tracer provider.
func NewTracingWithProvider(tp trace.TracerProvider, name string, inner ports.Telemetry) *Tracing {
	t := &Tracing{
		tracer: tp.Tracer(name),
		inner:  inner,
	}
	if sdk, ok := tp.(*sdktrace.TracerProvider); ok {
		t.provider = sdk
	}
	return t
}

// ExportTo writes every span that ends from now on to w as JSON.
// w is closed by Close when it implements io.Closer.
func (t *Tracing) ExportTo(w io.Writer) error {
	if t.provider == nil {
		return errors.Join(domain.ErrTraceExportFailed, zerr.New("tracer provider does not support exporters"))
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return errors.Join(domain.ErrTraceExportFailed, zerr.Wrap(err, "failed to create span exporter"))
	}

	t.provider.RegisterSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter))
	if c, ok := w.(io.Closer); ok {
		t.sinks = append(t.sinks, c)
	}
	return nil
}

// Record starts a span and an inner vertex for name.
func (t *Tracing) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	ctx, inner := t.inner.Record(ctx, name)

	v := &tracedVertex{inner: inner, span: span}
	if span.IsRecording() {
		v.stdout = NewBatchProcessor(0, 0, v.event("stdout"))
		v.stderr = NewBatchProcessor(0, 0, v.event("stderr"))
	}

	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes pending spans, closes export sinks and then the inner telemetry.
func (t *Tracing) Close() error {
	var errs []error
	if t.provider != nil {
		if err := t.provider.Shutdown(context.Background()); err != nil {
			errs = append(errs, errors.Join(domain.ErrTraceExportFailed, zerr.Wrap(err, "failed to flush spans")))
		}
	}
	for _, sink := range t.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, errors.Join(domain.ErrTraceExportFailed, zerr.Wrap(err, "failed to close trace output")))
		}
	}
	if err := t.inner.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

type tracedVertex struct {
	inner  ports.Vertex
	span   trace.Span
	stdout *BatchProcessor
	stderr *BatchProcessor
}

func (v *tracedVertex) event(stream string) func([]byte) {
	return func(data []byte) {
		v.span.AddEvent("output", trace.WithAttributes(
			attribute.String("stream", stream),
			attribute.String("message", string(data)),
		))
	}
}

func (v *tracedVertex) Stdout() io.Writer {
	if v.stdout == nil {
		return v.inner.Stdout()
	}
	return io.MultiWriter(v.inner.Stdout(), v.stdout)
}

func (v *tracedVertex) Stderr() io.Writer {
	if v.stderr == nil {
		return v.inner.Stderr()
	}
	return io.MultiWriter(v.inner.Stderr(), v.stderr)
}

func (v *tracedVertex) Complete(err error) {
	if v.stdout != nil {
		_ = v.stdout.Close()
		_ = v.stderr.Close()
	}

	if err != nil {
		v.span.RecordError(err)
		v.span.SetStatus(codes.Error, err.Error())
	}
	v.span.End()
	v.inner.Complete(err)
}
