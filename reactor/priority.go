// Package reactor implements the propagation engine of a reactive dataflow
// runtime: given an injection of values into source nodes, it walks every
// reachable downstream node in priority order, running each node's
// instruction sequence and fanning out to children.
//
// Construction of graphs (createStore/createEvent/createEffect/sample/
// combine), subscription dispatch, and effect wrapping are external
// collaborators and are not part of this package.
package reactor

// PriorityClass is a closed enumeration with a fixed total order. Lower
// numbers are dequeued first.
type PriorityClass int

const (
	// Child is the priority assigned to layers produced by fan-out from a
	// completed node.
	Child PriorityClass = iota
	// Pure is the priority assigned to externally seeded layers (the
	// default for Launch).
	Pure
	// Barrier is the priority used by combine-style coalescing nodes.
	Barrier
	// Sampler is the priority used by sample-style observer nodes.
	Sampler
	// Effect is the priority required for `run` steps.
	Effect
)

// String returns the canonical lowercase name of the priority class, used
// in diagnostics, metrics labels, and error messages.
func (p PriorityClass) String() string {
	switch p {
	case Child:
		return "child"
	case Pure:
		return "pure"
	case Barrier:
		return "barrier"
	case Sampler:
		return "sampler"
	case Effect:
		return "effect"
	default:
		return "unknown"
	}
}

// numPriorityClasses is the fixed bucket count backing Queue.
const numPriorityClasses = 5

// usesSharedHeap reports whether layers of this class live in the shared
// skew heap rather than a FIFO bucket.
func (p PriorityClass) usesSharedHeap() bool {
	return p == Barrier || p == Sampler
}
