package emit

import (
	"context"
	"sync"
)

// BufferedEmitter implements Emitter by storing events in memory.
//
// This emitter captures all events and provides query capabilities for
// post-hoc inspection. Events are organized by PropagationID for
// efficient retrieval and filtering.
//
// Features:
//   - Thread-safe concurrent access
//   - Query by PropagationID with optional filtering
//   - Filter by NodeID, Msg
//   - Clear events by PropagationID or all events
//
// Use cases:
//   - Development and debugging
//   - Testing and validation
//   - Post-propagation analysis
//
// Warning: This emitter stores all events in memory. For long-running
// processes with many Launches, consider using a persistent backend
// (see reactor/trace) or implement event rotation/cleanup via Clear.
//
// Example usage:
//
//	emitter := emit.NewBufferedEmitter()
//	eng := reactor.New(reactor.WithEmitter(emitter))
//
//	// ... eng.Launch(ctx, root, payload, false) ...
//
//	history := emitter.GetHistory("launch-001")
//	failures := emitter.GetHistoryWithFilter("launch-001", emit.HistoryFilter{Msg: "node_fail"})
type BufferedEmitter struct {
	mu     sync.RWMutex
	events map[string][]Event // PropagationID -> events
}

// HistoryFilter specifies criteria for filtering a propagation's event
// history.
//
// All filter fields are optional. When multiple fields are set, they are
// combined with AND logic (all conditions must match).
type HistoryFilter struct {
	NodeID string // Filter by node ID (empty = no filter)
	Msg    string // Filter by message (empty = no filter)
}

// NewBufferedEmitter creates a new BufferedEmitter.
//
// Returns a BufferedEmitter that stores all events in memory and provides
// query capabilities. Safe for concurrent use.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{
		events: make(map[string][]Event),
	}
}

// Emit stores an event in the buffer.
func (b *BufferedEmitter) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events[event.PropagationID] = append(b.events[event.PropagationID], event)
}

// EmitBatch stores each event in the batch in order.
func (b *BufferedEmitter) EmitBatch(_ context.Context, events []Event) error {
	for _, event := range events {
		b.Emit(event)
	}
	return nil
}

// Flush is a no-op: BufferedEmitter writes directly into its in-memory
// map, there is nothing to flush.
func (b *BufferedEmitter) Flush(_ context.Context) error {
	return nil
}

// GetHistory retrieves all events for a specific propagation id.
//
// Returns events in the order they were emitted. Returns an empty slice
// if no events exist for the given id.
func (b *BufferedEmitter) GetHistory(propagationID string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[propagationID]
	if events == nil {
		return []Event{}
	}

	result := make([]Event, len(events))
	copy(result, events)
	return result
}

// GetHistoryWithFilter retrieves filtered events for a specific
// propagation id.
func (b *BufferedEmitter) GetHistoryWithFilter(propagationID string, filter HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[propagationID]
	if events == nil {
		return []Event{}
	}

	if filter.NodeID == "" && filter.Msg == "" {
		result := make([]Event, len(events))
		copy(result, events)
		return result
	}

	var result []Event
	for _, event := range events {
		if !b.matchesFilter(event, filter) {
			continue
		}
		result = append(result, event)
	}

	if result == nil {
		return []Event{}
	}
	return result
}

func (b *BufferedEmitter) matchesFilter(event Event, filter HistoryFilter) bool {
	if filter.NodeID != "" && event.NodeID != filter.NodeID {
		return false
	}
	if filter.Msg != "" && event.Msg != filter.Msg {
		return false
	}
	return true
}

// Clear removes stored events.
//
// If propagationID is non-empty, clears only events for that specific
// propagation. If empty, clears all stored events.
func (b *BufferedEmitter) Clear(propagationID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if propagationID == "" {
		b.events = make(map[string][]Event)
	} else {
		delete(b.events, propagationID)
	}
}
