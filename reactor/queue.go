package reactor

// fifoNode is one link of a singly-linked FIFO bucket.
type fifoNode struct {
	v    Layer
	next *fifoNode
}

// fifo is a singly-linked FIFO list used by the Child, Pure and Effect
// buckets, which have no within-class ordering beyond insertion order and
// so need no heap overhead.
type fifo struct {
	head, tail *fifoNode
	size       int
}

func (f *fifo) push(v Layer) {
	n := &fifoNode{v: v}
	if f.tail == nil {
		f.head, f.tail = n, n
	} else {
		f.tail.next = n
		f.tail = n
	}
	f.size++
}

func (f *fifo) pop() (Layer, bool) {
	if f.head == nil {
		return Layer{}, false
	}
	n := f.head
	f.head = n.next
	if f.head == nil {
		f.tail = nil
	}
	f.size--
	return n.v, true
}

// Queue is the composite priority queue: five buckets indexed by
// PriorityClass. Child, Pure and Effect are independent FIFO lists.
// Barrier and Sampler share one skew heap; their buckets only track size
// so Dequeue can tell the heap is non-empty and attribute a size to each
// class.
type Queue struct {
	fifoBuckets [numPriorityClasses]*fifo
	heap        *skewNode
	heapSize    [numPriorityClasses]int
}

// NewQueue constructs an empty Queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.fifoBuckets[Child] = &fifo{}
	q.fifoBuckets[Pure] = &fifo{}
	q.fifoBuckets[Effect] = &fifo{}
	return q
}

// Enqueue adds a layer at priority p. Barrier and Sampler layers meld into
// the shared heap; the other three classes append to their FIFO bucket.
func (q *Queue) Enqueue(p PriorityClass, layer Layer) {
	layer.Priority = p
	if p.usesSharedHeap() {
		q.heap = skewPush(q.heap, layer)
		q.heapSize[p]++
		return
	}
	q.fifoBuckets[p].push(layer)
}

// Dequeue scans buckets 0..4 in order; the first non-empty bucket wins.
// FIFO buckets pop their head; heap-backed buckets pop the shared heap's
// root via skew-heap meld.
func (q *Queue) Dequeue() (Layer, bool) {
	for p := PriorityClass(0); p < numPriorityClasses; p++ {
		if p.usesSharedHeap() {
			if q.heapSize[p] == 0 {
				continue
			}
			v, newRoot, ok := skewPop(q.heap)
			if !ok {
				continue
			}
			q.heap = newRoot
			q.heapSize[v.Priority]--
			return v, true
		}
		if v, ok := q.fifoBuckets[p].pop(); ok {
			return v, true
		}
	}
	return Layer{}, false
}

// Len returns the total number of layers across every bucket.
func (q *Queue) Len() int {
	n := 0
	for p := PriorityClass(0); p < numPriorityClasses; p++ {
		if p.usesSharedHeap() {
			n += q.heapSize[p]
		} else {
			n += q.fifoBuckets[p].size
		}
	}
	return n
}

// DepthOf returns the current size attributed to one priority class, used
// by the metrics integration.
func (q *Queue) DepthOf(p PriorityClass) int {
	if p.usesSharedHeap() {
		return q.heapSize[p]
	}
	return q.fifoBuckets[p].size
}
