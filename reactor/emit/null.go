package emit

import "context"

// NullEmitter implements Emitter by discarding all events.
//
// This is a no-op emitter for deployments where event emission is not
// desired. It implements the Emitter interface but does nothing with
// emitted events.
//
// Use cases:
//   - Deployments where observability overhead is unwanted
//   - Testing scenarios where event capture is not needed
//   - Disabling event emission without changing code
//
// Example usage:
//
//	// Disable all event logging
//	eng := reactor.New(reactor.WithEmitter(emit.NewNullEmitter()))
type NullEmitter struct{}

// NewNullEmitter creates a new NullEmitter.
//
// Returns a NullEmitter that discards all events without any processing.
// This is safe for concurrent use and has zero overhead.
func NewNullEmitter() *NullEmitter {
	return &NullEmitter{}
}

// Emit discards the event without any processing.
func (n *NullEmitter) Emit(event Event) {
	// No-op: discard the event
}

// EmitBatch discards every event in the batch without any processing.
func (n *NullEmitter) EmitBatch(_ context.Context, _ []Event) error {
	return nil
}

// Flush is a no-op: NullEmitter buffers nothing.
func (n *NullEmitter) Flush(_ context.Context) error {
	return nil
}
