package reactor

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNew_ZeroConfigBehavesPerDefault(t *testing.T) {
	eng := New()
	if eng.metrics != nil {
		t.Error("expected no metrics wired without WithMetrics")
	}
	if eng.emitter != nil {
		t.Error("expected no emitter wired without WithEmitter")
	}
	if eng.recorder != nil {
		t.Error("expected no recorder wired without WithRecorder")
	}
	if eng.tracer != nil {
		t.Error("expected no tracer wired without WithTracer")
	}

	node := computeNode("a", func(v, scope Value, stack *StackFrame) (Value, error) { return v, nil })
	if err := eng.Launch(context.Background(), node, 1, false); err != nil {
		t.Fatalf("a zero-config Engine should still Launch cleanly: %v", err)
	}
}

func TestWithMetrics_Wires(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	eng := New(WithMetrics(m))
	if eng.metrics != m {
		t.Error("expected WithMetrics to set Engine.metrics")
	}
}

func TestWithEmitter_Wires(t *testing.T) {
	capture := &captureEmitter{}
	eng := New(WithEmitter(capture))
	if eng.emitter != capture {
		t.Error("expected WithEmitter to set Engine.emitter")
	}
}

func TestWithRecorder_Wires(t *testing.T) {
	rec := newRecordingRecorder()
	eng := New(WithRecorder(rec))
	if eng.recorder != rec {
		t.Error("expected WithRecorder to set Engine.recorder")
	}
}
