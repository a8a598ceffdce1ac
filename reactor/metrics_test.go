package reactor

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	// None of these should panic on a nil *Metrics; Engine relies on that
	// to call metrics methods unconditionally when WithMetrics was never
	// passed to New.
	m.observeQueueDepth(NewQueue())
	m.setBarriersInflight(3)
	m.incBarrierCoalesced()
	m.incNodeFailures()
	m.incNodesCompleted()
	m.observeLaunchDuration(time.Millisecond)
}

func TestNewMetrics_RegistersWithoutPanicking(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}

	m.incNodesCompleted()
	m.incNodeFailures()
	m.incBarrierCoalesced()
	m.setBarriersInflight(1)
	m.observeQueueDepth(NewQueue())
	m.observeLaunchDuration(time.Second)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected at least one registered metric family")
	}
}
