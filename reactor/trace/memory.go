// Package trace provides audit-trail Recorder implementations for
// reactor.Engine: an in-memory recorder for tests and single-process use,
// and a SQL-backed recorder for durable storage.
package trace

import (
	"context"
	"sync"

	"github.com/dflowlabs/reactor-go/reactor"
)

// MemoryRecorder stores PropagationRecords in process memory, keyed by
// PropagationID. It never fails: RecordPropagation only ever returns nil,
// making it suitable for tests and for development setups where an audit
// trail is wanted without provisioning a database.
type MemoryRecorder struct {
	mu      sync.RWMutex
	records map[string]reactor.PropagationRecord
	order   []string
}

// NewMemoryRecorder constructs an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{records: map[string]reactor.PropagationRecord{}}
}

// RecordPropagation stores rec, overwriting any prior record with the same
// PropagationID.
func (m *MemoryRecorder) RecordPropagation(_ context.Context, rec reactor.PropagationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[rec.PropagationID]; !exists {
		m.order = append(m.order, rec.PropagationID)
	}
	m.records[rec.PropagationID] = rec
	return nil
}

// Get returns the record for propagationID, if any.
func (m *MemoryRecorder) Get(propagationID string) (reactor.PropagationRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[propagationID]
	return rec, ok
}

// All returns every stored record in the order it was first recorded.
func (m *MemoryRecorder) All() []reactor.PropagationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]reactor.PropagationRecord, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.records[id])
	}
	return out
}
