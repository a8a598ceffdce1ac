package reactor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus-compatible instrumentation for an Engine.
//
// Metrics exposed (all namespaced with "reactor_"):
//
//  1. queue_depth (gauge): Current size of one priority class's bucket.
//     Labels: class.
//  2. barriers_inflight (gauge): Number of barrier ids currently
//     registered (pending or suspended).
//  3. barrier_coalesced_total (counter): Barrier layers that coalesced
//     into an already-pending registration instead of being enqueued.
//  4. node_failures_total (counter): filter/compute/run user functions
//     that returned an error.
//  5. nodes_completed_total (counter): Nodes that reached outcomeComplete.
//  6. launch_duration_seconds (histogram): Wall time of one top-level
//     Launch call, one observation per Launch (not per nested re-entrant
//     call).
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	metrics := reactor.NewMetrics(registry)
//	eng := reactor.New(reactor.WithMetrics(metrics))
type Metrics struct {
	queueDepth       *prometheus.GaugeVec
	barriersInflight prometheus.Gauge
	barrierCoalesced prometheus.Counter
	nodeFailures     prometheus.Counter
	nodesCompleted   prometheus.Counter
	launchDuration   prometheus.Histogram
}

// NewMetrics creates and registers all Engine metrics with the provided
// Prometheus registry. Pass nil to use prometheus.DefaultRegisterer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	m := &Metrics{}

	m.queueDepth = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "reactor",
		Name:      "queue_depth",
		Help:      "Number of layers currently queued at one priority class",
	}, []string{"class"})

	m.barriersInflight = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: "reactor",
		Name:      "barriers_inflight",
		Help:      "Number of barrier ids currently registered as pending or suspended",
	})

	m.barrierCoalesced = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "reactor",
		Name:      "barrier_coalesced_total",
		Help:      "Cumulative count of barrier layers that coalesced into an already-pending barrier",
	})

	m.nodeFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "reactor",
		Name:      "node_failures_total",
		Help:      "Cumulative count of filter/compute/run user functions that returned an error",
	})

	m.nodesCompleted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: "reactor",
		Name:      "nodes_completed_total",
		Help:      "Cumulative count of nodes that ran their sequence to completion",
	})

	m.launchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: "reactor",
		Name:      "launch_duration_seconds",
		Help:      "Wall time of one top-level Launch call",
		Buckets:   prometheus.DefBuckets,
	})

	return m
}

func (m *Metrics) observeQueueDepth(q *Queue) {
	if m == nil {
		return
	}
	for p := PriorityClass(0); p < numPriorityClasses; p++ {
		m.queueDepth.WithLabelValues(p.String()).Set(float64(q.DepthOf(p)))
	}
}

func (m *Metrics) setBarriersInflight(n int) {
	if m == nil {
		return
	}
	m.barriersInflight.Set(float64(n))
}

func (m *Metrics) incBarrierCoalesced() {
	if m == nil {
		return
	}
	m.barrierCoalesced.Inc()
}

func (m *Metrics) incNodeFailures() {
	if m == nil {
		return
	}
	m.nodeFailures.Inc()
}

func (m *Metrics) incNodesCompleted() {
	if m == nil {
		return
	}
	m.nodesCompleted.Inc()
}

func (m *Metrics) observeLaunchDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.launchDuration.Observe(d.Seconds())
}
