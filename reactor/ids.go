package reactor

import (
	"strconv"
	"sync/atomic"
)

// UnitID names a graph node. StepID names a step; for `barrier` steps the
// StepID doubles as the BarrierID the barrier registry coalesces on and
// as a Layer's heap-ordering id.
type UnitID = string
type StepID = string
type BarrierID = string

var (
	unitCounter uint64
	stepCounter uint64
)

// idWidth is the zero-padded width of generated ids. Fixing the width
// means the base-36 text sorts identically to the underlying counter, so
// Layer ids (strings) can be compared with plain string `<` while honoring
// "older barriers (smaller ids) fire before newer ones".
const idWidth = 8

// NextUnitID returns a fresh, short, base-36 identifier for naming a graph
// node. Each call returns a distinct value; callers (graph construction)
// use this to name units without coordinating a registry.
func NextUnitID() UnitID {
	return encodeID(atomic.AddUint64(&unitCounter, 1))
}

// NextStepID returns a fresh, short, base-36 identifier for naming a step.
// Graph construction uses this both to label steps for diagnostics and,
// for `barrier` steps, to drive deterministic heap ordering.
func NextStepID() StepID {
	return encodeID(atomic.AddUint64(&stepCounter, 1))
}

func encodeID(n uint64) string {
	s := strconv.FormatUint(n, 36)
	if len(s) >= idWidth {
		return s
	}
	pad := make([]byte, idWidth-len(s))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + s
}
