// Package telemetry exports game sessions as traces. Each session becomes one
// span opened by SessionTracer.Begin; feedback events are attached as span
// events and the end summary as attributes.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Setup installs the global tracer provider that NewSessionTracer(nil) picks
// up, exporting session spans over OTLP/HTTP to endpoint. When tracing is
// disabled or no endpoint is set nothing is installed and session spans go to
// the default no-op provider.
//
// The returned function flushes buffered session spans; call it before exit.
func Setup(ctx context.Context, serviceName, endpoint string, enabled bool) (func(context.Context) error, error) {
	flush := func(context.Context) error { return nil }
	if !enabled || endpoint == "" {
		return flush, nil
	}

	tp, err := newSessionProvider(ctx, serviceName, endpoint)
	if err != nil {
		return flush, fmt.Errorf("telemetry: %w", err)
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

// newSessionProvider batches session spans to an OTLP/HTTP collector. Every
// session is sampled; a run produces only a handful of spans.
func newSessionProvider(ctx context.Context, serviceName, endpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, fmt.Errorf("resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
