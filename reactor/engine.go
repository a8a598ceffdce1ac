package reactor

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/dflowlabs/reactor-go/reactor/emit"
)

// UnitOrSpec is the union of values Launch accepts as a seed. Go has no
// sum-type syntax for "one of these concrete types", so UnitOrSpec is the
// unconstrained interface and Launch type-switches on the concrete value
// in seed; see LaunchSpec below for the three documented shapes:
//
//   - *GraphNode: seed a single node with payload as its propagated value.
//   - []*GraphNode: seed each node in order, paired with the matching
//     entry of a []Value payload of the same length.
//   - LaunchSpec: seed one node with an explicit priority choice.
type UnitOrSpec interface{}

// LaunchSpec seeds a single node with an explicit scheduling choice: by
// default a seed enters at Pure priority, but Defer requests Effect
// priority instead (the node's first step must still be a run step for
// that to make sense; the interpreter enforces the actual ordering rule).
type LaunchSpec struct {
	Target *GraphNode
	Params Value
	Defer  bool
}

// Engine is a propagation engine: one shared queue, one barrier registry,
// and the optional diagnostics collaborators wired in at construction via
// functional options. The zero value returned by New (no options) carries
// no metrics, no tracing, no emitted events, and no audit trail.
//
// An Engine value is not safe for concurrent Launch calls from separate
// goroutines and does not detect them: a Launch from a second goroutine
// while a drain is active is treated like a re-entrant nested call.
// ErrConcurrentLaunch is returned only for an upsert Launch made while no
// drain is active.
type Engine struct {
	mu       sync.Mutex
	started  bool
	queue    *Queue
	barriers *barrierRegistry

	currentPropagationID string
	activeSpan           trace.Span

	metrics  *Metrics
	tracer   trace.Tracer
	emitter  emit.Emitter
	recorder Recorder
}

// New constructs an Engine. Option application never fails in practice
// (every WithX option is a plain field assignment), so New does not need
// to surface option errors to the caller; Option still returns error to
// leave room for a future validating option without a breaking signature
// change.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		_ = opt(cfg)
	}
	return &Engine{
		queue:    NewQueue(),
		barriers: newBarrierRegistry(),
		metrics:  cfg.metrics,
		tracer:   cfg.tracer,
		emitter:  cfg.emitter,
		recorder: cfg.recorder,
	}
}

// Launch seeds unit with payload and drains the queue.
//
// If no drain is currently active, this call becomes the outer,
// top-level Launch: it opens the trace span, starts the duration timer,
// runs the drain loop to completion, and dispatches the audit record.
//
// If a drain is already active (this Launch was reached synchronously
// from within a filter/compute/run callback the active drain invoked),
// the caller intends one of two things: upsert true means "merge this
// seed into the active drain and let it pick the new layer up", so
// Launch seeds and returns without draining again itself; upsert false
// means "run a nested propagation now", so Launch seeds and drains —
// draining the shared queue until it's empty, which includes whatever
// the outer call had not yet processed.
//
// Calling Launch with upsert true while no drain is active is a caller
// error (there is nothing active to merge into) and returns
// ErrConcurrentLaunch without seeding anything.
func (eng *Engine) Launch(ctx context.Context, unit UnitOrSpec, payload Value, upsert bool) error {
	eng.mu.Lock()
	if !eng.started && upsert {
		eng.mu.Unlock()
		return ErrConcurrentLaunch
	}
	becameOwner := !eng.started
	if becameOwner {
		eng.started = true
	}
	eng.mu.Unlock()

	var rec *PropagationRecord
	if becameOwner {
		rec = &PropagationRecord{PropagationID: NextUnitID()}
	}

	if err := eng.seed(unit, payload, rec); err != nil {
		if becameOwner {
			eng.mu.Lock()
			eng.started = false
			eng.mu.Unlock()
		}
		return err
	}

	if becameOwner {
		return eng.runTopLevel(ctx, rec)
	}

	if upsert {
		return nil
	}

	return eng.drain(ctx, nil)
}

// seed enqueues the layer(s) unit describes at Pure priority (or Effect,
// for a LaunchSpec with Defer set), recording each into rec when rec is
// non-nil (the outer Launch call only; nested calls pass a nil rec since
// their seeds fold into the same PropagationRecord the outer call already
// owns).
func (eng *Engine) seed(unit UnitOrSpec, payload Value, rec *PropagationRecord) error {
	switch u := unit.(type) {
	case *GraphNode:
		eng.enqueueSeed(u, payload, Pure, rec)
		return nil

	case []*GraphNode:
		payloads, ok := payload.([]Value)
		if !ok {
			return &EngineError{Code: CodeBadSeed, Message: "[]*GraphNode launch requires a []Value payload"}
		}
		if len(payloads) != len(u) {
			return &EngineError{Code: CodeBadSeed, Message: "[]*GraphNode launch payload length does not match unit length"}
		}
		for i, node := range u {
			eng.enqueueSeed(node, payloads[i], Pure, rec)
		}
		return nil

	case LaunchSpec:
		priority := Pure
		if u.Defer {
			priority = Effect
		}
		eng.enqueueSeed(u.Target, u.Params, priority, rec)
		return nil

	default:
		return &EngineError{Code: CodeUnknownUnit, Message: "Launch unit is not *GraphNode, []*GraphNode, or LaunchSpec"}
	}
}

func (eng *Engine) enqueueSeed(node *GraphNode, payload Value, priority PriorityClass, rec *PropagationRecord) {
	stack := &StackFrame{Value: payload, Node: node}
	eng.queue.Enqueue(priority, Layer{Idx: 0, Stack: stack})
	if rec != nil {
		rec.Seeds = append(rec.Seeds, SeedRecord{NodeID: node.ID, Payload: payload})
	}
}

// runTopLevel drives the outer Launch call: trace span, duration metric,
// the drain itself, and the detached audit-record dispatch.
func (eng *Engine) runTopLevel(ctx context.Context, rec *PropagationRecord) error {
	eng.currentPropagationID = rec.PropagationID
	ctx, span := eng.startLaunchSpan(ctx, rec.PropagationID)
	eng.activeSpan = span
	start := time.Now()

	eng.emitEvent("", "drain_start", nil)
	err := eng.drain(ctx, rec)
	eng.emitEvent("", "drain_end", nil)

	duration := time.Since(start)
	eng.metrics.observeLaunchDuration(duration)
	endLaunchSpan(span, err)

	eng.activeSpan = nil
	eng.currentPropagationID = ""
	eng.mu.Lock()
	eng.started = false
	eng.mu.Unlock()

	if eng.recorder != nil {
		rec.Duration = duration
		go eng.recordAsync(*rec)
	}

	return err
}

func (eng *Engine) recordAsync(rec PropagationRecord) {
	if err := eng.recorder.RecordPropagation(context.Background(), rec); err != nil {
		eng.emitEvent("", "recorder_error", map[string]interface{}{"error": err.Error()})
	}
}

// drain pops layers off the queue and interprets each one until the
// queue is empty, fanning out to a completed node's children and
// recording metrics/events/audit bookkeeping along the way. rec is nil
// for a nested re-entrant call (its bookkeeping already belongs to the
// outer call's record).
func (eng *Engine) drain(ctx context.Context, rec *PropagationRecord) error {
	for {
		layer, ok := eng.queue.Dequeue()
		if !ok {
			return nil
		}

		eng.metrics.observeQueueDepth(eng.queue)
		eng.metrics.setBarriersInflight(eng.barriers.len())

		node := layer.Stack.Node
		eng.emitEvent(node.ID, "node_start", map[string]interface{}{"priority": layer.Priority.String()})

		result, structErr := eng.interpret(layer)
		if structErr != nil {
			return structErr
		}

		switch result.outcome {
		case outcomeSuspended:
			if result.coalesced {
				eng.metrics.incBarrierCoalesced()
				if rec != nil {
					rec.BarrierCoalesced++
				}
			}

		case outcomeSkip:
			eng.emitEvent(node.ID, "node_skip", map[string]interface{}{"reason": result.skipReason})

		case outcomeFail:
			eng.metrics.incNodeFailures()
			if rec != nil {
				rec.Failures++
			}
			eng.emitEvent(node.ID, "node_fail", map[string]interface{}{"error": result.userErr.Error()})

		case outcomeComplete:
			eng.metrics.incNodesCompleted()
			if rec != nil {
				rec.Executed = append(rec.Executed, node.ID)
			}
			eng.emitEvent(node.ID, "node_complete", nil)
			for _, child := range node.Next {
				childStack := result.stack.childFrame(child)
				eng.queue.Enqueue(Child, Layer{Idx: 0, Stack: childStack})
			}
		}
	}
}

// emitEvent is a no-op when no Emitter is configured (the zero-config
// default). nodeID is empty for propagation-level events.
func (eng *Engine) emitEvent(nodeID UnitID, msg string, meta map[string]interface{}) {
	if eng.emitter == nil {
		return
	}
	eng.emitter.Emit(emit.Event{
		PropagationID: eng.currentPropagationID,
		NodeID:        nodeID,
		Msg:           msg,
		Meta:          meta,
	})
}
