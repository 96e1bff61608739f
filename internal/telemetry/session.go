package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
)

const instrumentation = "github.com/hongjigr-sebon/tmposegame/internal/telemetry"

// SessionTracer records one span per game session. Feedback events become
// span events and the summary becomes span attributes.
// It is a sim.Sink; End is meant to be registered with sim.OnEnd.
type SessionTracer struct {
	tracer trace.Tracer

	mu   sync.Mutex
	span trace.Span
}

var _ sim.Sink = (*SessionTracer)(nil)

// NewSessionTracer creates a tracer from tp, or from the global provider when tp is nil.
func NewSessionTracer(tp trace.TracerProvider) *SessionTracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &SessionTracer{tracer: tp.Tracer(instrumentation)}
}

// Begin opens the span for a new session. An open span from an earlier
// session is ended first.
func (t *SessionTracer) Begin(ctx context.Context, gameID string, gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.span != nil {
		t.span.End()
	}
	_, t.span = t.tracer.Start(ctx, "session "+gameID,
		trace.WithAttributes(
			attribute.String("game.id", gameID),
			attribute.Int64("session.generation", int64(gen)),
		),
	)
}

// Feedback implements sim.Sink.
func (t *SessionTracer) Feedback(ev core.Feedback) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.span == nil {
		return nil
	}
	t.span.AddEvent(ev.Kind.String(), trace.WithAttributes(
		attribute.String("feedback.key", ev.Key),
		attribute.Int("feedback.value", ev.Value),
	))
	return nil
}

// End closes the session span with the summary attached.
func (t *SessionTracer) End(sum sim.Summary) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.span == nil {
		return
	}
	t.span.SetAttributes(
		attribute.String("session.reason", sum.Reason.String()),
		attribute.Int("session.score", sum.Score),
		attribute.Int("session.level", sum.Level),
		attribute.Float64("session.progress", sum.Progress),
		attribute.Int("session.warnings", sum.Warnings),
		attribute.Int64("session.duration_ms", sum.Duration.Milliseconds()),
	)
	if sum.Won() {
		t.span.SetStatus(codes.Ok, "")
	} else {
		t.span.SetStatus(codes.Error, sum.Reason.String())
	}
	t.span.End()
	t.span = nil
}
