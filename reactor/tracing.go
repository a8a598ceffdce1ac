package reactor

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// startLaunchSpan opens one span for a top-level Launch call. Nested
// re-entrant Launches run inside the outer call's span rather than opening
// their own, since they share the same drain loop.
//
// When no tracer is configured (the zero-config default), this returns ctx
// unchanged and a nil span; every caller must check for nil before using
// the span.
func (eng *Engine) startLaunchSpan(ctx context.Context, propagationID string) (context.Context, trace.Span) {
	if eng.tracer == nil {
		return ctx, nil
	}
	ctx, span := eng.tracer.Start(ctx, "reactor.launch")
	span.SetAttributes(attribute.String("reactor.propagation_id", propagationID))
	return ctx, span
}

// addSpanEvent records a checkpoint event on the active top-level span.
// It is a no-op when no span is active (no tracer configured, or no
// top-level Launch running). Checkpoints reached inside a nested re-entrant
// Launch are recorded on the outer call's span.
func (eng *Engine) addSpanEvent(name string, attrs ...attribute.KeyValue) {
	if eng.activeSpan == nil {
		return
	}
	eng.activeSpan.AddEvent(name, trace.WithAttributes(attrs...))
}

func endLaunchSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}
