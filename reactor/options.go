package reactor

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/dflowlabs/reactor-go/reactor/emit"
)

// engineConfig accumulates Option application before New builds the
// Engine itself.
type engineConfig struct {
	metrics  *Metrics
	tracer   trace.Tracer
	emitter  emit.Emitter
	recorder Recorder
}

// Option configures an Engine at construction time. Options are applied
// in the order passed to New; a later WithX call overrides an earlier
// one of the same kind.
type Option func(*engineConfig) error

// WithMetrics attaches Prometheus instrumentation. Without this option,
// metric calls are no-ops.
func WithMetrics(m *Metrics) Option {
	return func(cfg *engineConfig) error {
		cfg.metrics = m
		return nil
	}
}

// WithTracer attaches an OpenTelemetry tracer. Every top-level Launch
// opens one "reactor.launch" span under it. Without this option, Launch
// does not trace.
func WithTracer(tracer trace.Tracer) Option {
	return func(cfg *engineConfig) error {
		cfg.tracer = tracer
		return nil
	}
}

// WithEmitter attaches an observability sink for propagation events.
// Without this option, the Engine emits to nothing (equivalent to
// emit.NewNullEmitter()).
func WithEmitter(emitter emit.Emitter) Option {
	return func(cfg *engineConfig) error {
		cfg.emitter = emitter
		return nil
	}
}

// WithRecorder attaches an audit trail sink. RecordPropagation is
// invoked from a detached goroutine strictly after a top-level Launch's
// drain completes; a nil recorder (the default) disables the audit trail
// entirely.
func WithRecorder(recorder Recorder) Option {
	return func(cfg *engineConfig) error {
		cfg.recorder = recorder
		return nil
	}
}
