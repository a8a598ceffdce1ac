package emit

import (
	"testing"
	"time"
)

func TestBufferedEmitter_StoresEvents(t *testing.T) {
	t.Run("stores single event", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		event := Event{
			PropagationID: "launch-001",
			NodeID:        "node1",
			Msg:           "node_start",
		}

		emitter.Emit(event)

		history := emitter.GetHistory("launch-001")
		if len(history) != 1 {
			t.Fatalf("expected 1 event, got %d", len(history))
		}
		if history[0].NodeID != "node1" {
			t.Errorf("expected NodeID = 'node1', got %q", history[0].NodeID)
		}
	})

	t.Run("stores multiple events", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{PropagationID: "launch-001", NodeID: "node1", Msg: "node_start"},
			{PropagationID: "launch-001", NodeID: "node1", Msg: "node_complete"},
			{PropagationID: "launch-001", NodeID: "node2", Msg: "node_start"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		history := emitter.GetHistory("launch-001")
		if len(history) != 3 {
			t.Fatalf("expected 3 events, got %d", len(history))
		}
	})

	t.Run("isolates events by propagation id", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{PropagationID: "launch-001", Msg: "event1"})
		emitter.Emit(Event{PropagationID: "launch-002", Msg: "event2"})
		emitter.Emit(Event{PropagationID: "launch-001", Msg: "event3"})

		history1 := emitter.GetHistory("launch-001")
		history2 := emitter.GetHistory("launch-002")

		if len(history1) != 2 {
			t.Errorf("expected 2 events for launch-001, got %d", len(history1))
		}
		if len(history2) != 1 {
			t.Errorf("expected 1 event for launch-002, got %d", len(history2))
		}
	})

	t.Run("returns empty slice for unknown propagation id", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		history := emitter.GetHistory("unknown-launch")
		if history == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(history) != 0 {
			t.Errorf("expected 0 events, got %d", len(history))
		}
	})
}

func TestBufferedEmitter_GetHistoryWithFilter(t *testing.T) {
	t.Run("filters by nodeID", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{PropagationID: "launch-001", NodeID: "node1", Msg: "event1"},
			{PropagationID: "launch-001", NodeID: "node2", Msg: "event2"},
			{PropagationID: "launch-001", NodeID: "node1", Msg: "event3"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		filter := HistoryFilter{NodeID: "node1"}
		history := emitter.GetHistoryWithFilter("launch-001", filter)

		if len(history) != 2 {
			t.Fatalf("expected 2 events, got %d", len(history))
		}
		for _, event := range history {
			if event.NodeID != "node1" {
				t.Errorf("expected NodeID = 'node1', got %q", event.NodeID)
			}
		}
	})

	t.Run("filters by message", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{PropagationID: "launch-001", Msg: "node_start"},
			{PropagationID: "launch-001", Msg: "node_complete"},
			{PropagationID: "launch-001", Msg: "node_start"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		filter := HistoryFilter{Msg: "node_start"}
		history := emitter.GetHistoryWithFilter("launch-001", filter)

		if len(history) != 2 {
			t.Fatalf("expected 2 events, got %d", len(history))
		}
		for _, event := range history {
			if event.Msg != "node_start" {
				t.Errorf("expected Msg = 'node_start', got %q", event.Msg)
			}
		}
	})

	t.Run("combines multiple filters", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{PropagationID: "launch-001", NodeID: "node1", Msg: "node_start"},
			{PropagationID: "launch-001", NodeID: "node2", Msg: "node_start"},
			{PropagationID: "launch-001", NodeID: "node1", Msg: "node_complete"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		filter := HistoryFilter{
			NodeID: "node1",
			Msg:    "node_start",
		}
		history := emitter.GetHistoryWithFilter("launch-001", filter)

		if len(history) != 1 {
			t.Fatalf("expected 1 event, got %d", len(history))
		}
		if history[0].NodeID != "node1" || history[0].Msg != "node_start" {
			t.Error("expected event with nodeID=node1, msg=node_start")
		}
	})

	t.Run("empty filter returns all events", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		events := []Event{
			{PropagationID: "launch-001", Msg: "event1"},
			{PropagationID: "launch-001", Msg: "event2"},
			{PropagationID: "launch-001", Msg: "event3"},
		}

		for _, event := range events {
			emitter.Emit(event)
		}

		filter := HistoryFilter{}
		history := emitter.GetHistoryWithFilter("launch-001", filter)

		if len(history) != 3 {
			t.Fatalf("expected 3 events, got %d", len(history))
		}
	})
}

func TestBufferedEmitter_Clear(t *testing.T) {
	t.Run("clears all events for a propagation id", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{PropagationID: "launch-001", Msg: "event1"})
		emitter.Emit(Event{PropagationID: "launch-002", Msg: "event2"})

		emitter.Clear("launch-001")

		history1 := emitter.GetHistory("launch-001")
		history2 := emitter.GetHistory("launch-002")

		if len(history1) != 0 {
			t.Errorf("expected 0 events for launch-001, got %d", len(history1))
		}
		if len(history2) != 1 {
			t.Errorf("expected 1 event for launch-002, got %d", len(history2))
		}
	})

	t.Run("clears all events when propagation id is empty", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		emitter.Emit(Event{PropagationID: "launch-001", Msg: "event1"})
		emitter.Emit(Event{PropagationID: "launch-002", Msg: "event2"})

		emitter.Clear("")

		history1 := emitter.GetHistory("launch-001")
		history2 := emitter.GetHistory("launch-002")

		if len(history1) != 0 || len(history2) != 0 {
			t.Error("expected all events to be cleared")
		}
	})
}

func TestBufferedEmitter_ThreadSafety(t *testing.T) {
	t.Run("concurrent emit and read", func(t *testing.T) {
		emitter := NewBufferedEmitter()

		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func(_ int) {
				for j := 0; j < 100; j++ {
					emitter.Emit(Event{
						PropagationID: "launch-001",
						Msg:           "concurrent_event",
					})
				}
				done <- true
			}(i)
		}

		readDone := make(chan bool)
		go func() {
			for i := 0; i < 100; i++ {
				emitter.GetHistory("launch-001")
				time.Sleep(1 * time.Millisecond)
			}
			readDone <- true
		}()

		for i := 0; i < 10; i++ {
			<-done
		}
		<-readDone

		history := emitter.GetHistory("launch-001")
		if len(history) != 1000 {
			t.Errorf("expected 1000 events, got %d", len(history))
		}
	})
}

func TestBufferedEmitter_InterfaceContract(_ *testing.T) {
	var _ Emitter = NewBufferedEmitter()
}
