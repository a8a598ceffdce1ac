package emit

// Event represents an observability event emitted during propagation.
//
// Events provide detailed insight into propagation behavior:
//   - Node dequeue / skip / failure / completion
//   - Barrier suspend / coalesce / resume
//   - Drain start/end
//
// Events are emitted to an Emitter which can:
//   - Log to stdout/stderr
//   - Send to OpenTelemetry
//   - Store in time-series databases
//   - Trigger alerts
type Event struct {
	// PropagationID identifies the top-level Launch that emitted this
	// event. Re-entrant nested launches share their outer propagation's
	// id.
	PropagationID string

	// NodeID identifies which node emitted this event. Empty for
	// propagation-level events (drain_start, drain_end).
	NodeID string

	// Msg is a short machine-checkable event name, e.g. "node_skip",
	// "barrier_coalesced".
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "priority": the PriorityClass name the layer ran at
	//   - "reason": why a node skipped ("defined", "changed", "filter")
	//   - "error": error details for node_fail
	//   - "barrier_id": the BarrierID for barrier_* events
	Meta map[string]interface{}
}
