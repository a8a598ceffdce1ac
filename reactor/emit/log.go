// Package emit provides event emission and observability for the
// propagation engine.
package emit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LogEmitter implements Emitter by writing structured log output to a writer.
//
// Supports two output modes:
// - Text mode (default): Human-readable format with key=value pairs.
// - JSON mode: Machine-readable JSON format, one event per line.
//
// Example text output:
//
// [node_start] propagationID=launch-001 nodeID=nodeA
//
// Example JSON output:
//
// {"propagationID":"launch-001","nodeID":"nodeA","msg":"node_start","meta":null}
//
// Usage:
//
// // Text output to stdout.
// emitter := emit.NewLogEmitter(os.Stdout, false).
//
// // JSON output to file.
// f, _ := os.Create("events.jsonl").
// defer func() { _ = f.Close() }().
// emitter := emit.NewLogEmitter(f, true).
type LogEmitter struct {
	writer   io.Writer
	jsonMode bool
}

// NewLogEmitter creates a new LogEmitter.
//
// Parameters:
// - writer: Where to write the log output (e.g., os.Stdout, file).
// - jsonMode: If true, emit JSON format; if false, emit text format.
//
// Returns a LogEmitter that writes structured event data to the provided writer.
func NewLogEmitter(writer io.Writer, jsonMode bool) *LogEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LogEmitter{
		writer:   writer,
		jsonMode: jsonMode,
	}
}

// Emit writes an event to the configured writer.
//
// Format depends on jsonMode:
// - JSON mode: Writes event as single-line JSON object.
// - Text mode: Writes human-readable format with [msg] prefix.
func (l *LogEmitter) Emit(event Event) {
	if l.jsonMode {
		l.emitJSON(event)
	} else {
		l.emitText(event)
	}
}

func (l *LogEmitter) emitJSON(event Event) {
	data, err := json.Marshal(struct {
		PropagationID string                 `json:"propagationID"`
		NodeID        string                 `json:"nodeID"`
		Msg           string                 `json:"msg"`
		Meta          map[string]interface{} `json:"meta"`
	}{
		PropagationID: event.PropagationID,
		NodeID:        event.NodeID,
		Msg:           event.Msg,
		Meta:          event.Meta,
	})
	if err != nil {
		// Fallback to error message if marshal fails.
		_, _ = fmt.Fprintf(l.writer, "{\"error\":\"failed to marshal event: %v\"}\n", err)
		return
	}

	_, _ = fmt.Fprintf(l.writer, "%s\n", data)
}

func (l *LogEmitter) emitText(event Event) {
	_, _ = fmt.Fprintf(l.writer, "[%s] propagationID=%s nodeID=%s",
		event.Msg, event.PropagationID, event.NodeID)

	if len(event.Meta) > 0 {
		metaJSON, err := json.Marshal(event.Meta)
		if err == nil {
			_, _ = fmt.Fprintf(l.writer, " meta=%s", metaJSON)
		} else {
			_, _ = fmt.Fprintf(l.writer, " meta=%v", event.Meta)
		}
	}

	_, _ = fmt.Fprint(l.writer, "\n")
}

// EmitBatch sends multiple events in a single operation for improved performance.
//
// For LogEmitter, a batch is written event by event, in order, with the
// same writes Emit makes for each event; it does not combine the batch
// into a single write.
//
// In text mode, events are written one per line. In JSON mode, events
// are written as JSONL (one per line) for easy parsing.
func (l *LogEmitter) EmitBatch(_ context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	if l.jsonMode {
		for _, event := range events {
			l.emitJSON(event)
		}
	} else {
		for _, event := range events {
			l.emitText(event)
		}
	}

	return nil
}

// Flush ensures all buffered events are sent to the backend.
//
// For LogEmitter, this is a no-op because all writes go directly to the
// underlying io.Writer, which owns its own buffering (if any). Wrap the
// writer with bufio.Writer and call Flush on it directly if you need
// flush control.
//
// This method is provided to satisfy the Emitter interface and enable
// polymorphic usage with other emitters (e.g., OTelEmitter) that do
// require flushing.
func (l *LogEmitter) Flush(_ context.Context) error {
	return nil
}
