package reactor

import "testing"

func TestQueue_FIFOBucketOrdering(t *testing.T) {
	q := NewQueue()
	q.Enqueue(Pure, Layer{Stack: &StackFrame{Value: 1}})
	q.Enqueue(Pure, Layer{Stack: &StackFrame{Value: 2}})
	q.Enqueue(Pure, Layer{Stack: &StackFrame{Value: 3}})

	for _, want := range []int{1, 2, 3} {
		layer, ok := q.Dequeue()
		if !ok {
			t.Fatalf("expected layer with value %d, got empty queue", want)
		}
		if layer.Stack.Value != want {
			t.Errorf("Dequeue() value = %v, want %v", layer.Stack.Value, want)
		}
	}
}

func TestQueue_PriorityOrder(t *testing.T) {
	q := NewQueue()
	// Enqueue out of priority order; Dequeue must still honor Child < Pure
	// < Barrier < Sampler < Effect.
	q.Enqueue(Effect, Layer{Stack: &StackFrame{Value: "effect"}})
	q.Enqueue(Sampler, Layer{ID: "00000001", Stack: &StackFrame{Value: "sampler"}})
	q.Enqueue(Barrier, Layer{ID: "00000001", Stack: &StackFrame{Value: "barrier"}})
	q.Enqueue(Pure, Layer{Stack: &StackFrame{Value: "pure"}})
	q.Enqueue(Child, Layer{Stack: &StackFrame{Value: "child"}})

	want := []string{"child", "pure", "barrier", "sampler", "effect"}
	for _, w := range want {
		layer, ok := q.Dequeue()
		if !ok {
			t.Fatalf("expected %q, got empty queue", w)
		}
		if layer.Stack.Value != w {
			t.Errorf("Dequeue() = %v, want %v", layer.Stack.Value, w)
		}
	}
}

func TestQueue_DequeueEmpty(t *testing.T) {
	q := NewQueue()
	if _, ok := q.Dequeue(); ok {
		t.Error("expected Dequeue on empty queue to report ok = false")
	}
}

func TestQueue_LenAndDepthOf(t *testing.T) {
	q := NewQueue()
	q.Enqueue(Pure, Layer{Stack: &StackFrame{}})
	q.Enqueue(Pure, Layer{Stack: &StackFrame{}})
	q.Enqueue(Barrier, Layer{ID: "00000001", Stack: &StackFrame{}})

	if got := q.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := q.DepthOf(Pure); got != 2 {
		t.Errorf("DepthOf(Pure) = %d, want 2", got)
	}
	if got := q.DepthOf(Barrier); got != 1 {
		t.Errorf("DepthOf(Barrier) = %d, want 1", got)
	}
	if got := q.DepthOf(Child); got != 0 {
		t.Errorf("DepthOf(Child) = %d, want 0", got)
	}

	q.Dequeue()
	if got := q.Len(); got != 2 {
		t.Errorf("Len() after one Dequeue = %d, want 2", got)
	}
}

func TestQueue_HeapClassesShareOneHeap(t *testing.T) {
	q := NewQueue()
	q.Enqueue(Sampler, Layer{ID: "00000005", Stack: &StackFrame{Value: "later-sampler"}})
	q.Enqueue(Barrier, Layer{ID: "00000009", Stack: &StackFrame{Value: "later-barrier"}})
	q.Enqueue(Barrier, Layer{ID: "00000001", Stack: &StackFrame{Value: "earlier-barrier"}})

	layer, ok := q.Dequeue()
	if !ok {
		t.Fatal("expected a layer")
	}
	if layer.Stack.Value != "earlier-barrier" {
		t.Errorf("expected earlier-barrier to dequeue first, got %v", layer.Stack.Value)
	}
}
