package reactor

import "errors"

// ErrConcurrentLaunch is returned when Launch is called with upsert true
// while no drain is currently active on the Engine: there is nothing for
// the seed to merge into, which is a caller contract violation rather
// than a race to arbitrate. Launch does not attempt to distinguish a
// legitimate same-goroutine re-entrant call (upsert false, reached
// synchronously from within a running filter/compute/run) from an
// unsynchronized call on a second goroutine; the engine is
// single-threaded cooperative by design, and this check exists to catch
// the specific, cheaply-detectable misuse above, not to provide
// cross-goroutine safety.
var ErrConcurrentLaunch = errors.New("reactor: concurrent Launch on the same Engine")

// EngineError reports structural corruption: an unknown opcode, an
// unregistered ref cell, or any other programming error that cannot arise
// from correct graph-construction code. Unlike a user-function failure
// (which the engine swallows, flags, and continues past), an EngineError
// aborts the drain.
type EngineError struct {
	Code    string
	Message string
	NodeID  UnitID
}

func (e *EngineError) Error() string {
	if e.NodeID != "" {
		return "reactor: " + e.Code + ": node " + e.NodeID + ": " + e.Message
	}
	return "reactor: " + e.Code + ": " + e.Message
}

const (
	// CodeUnknownStep marks a Step whose Kind has no interpreter case.
	CodeUnknownStep = "UNKNOWN_STEP"
	// CodeUnknownRegister marks a mov/check referencing a store id absent
	// from the node's register table.
	CodeUnknownRegister = "UNKNOWN_REGISTER"
	// CodeBadMovSource marks a mov step whose From/To slot combination is
	// not one of the documented source/destination sets.
	CodeBadMovSource = "BAD_MOV_SOURCE"
	// CodeBadSeed marks a Launch call whose UnitOrSpec/payload pairing is
	// malformed (e.g. a []*GraphNode seed without a matching []Value
	// payload of the same length).
	CodeBadSeed = "BAD_SEED"
	// CodeUnknownUnit marks a Launch call whose UnitOrSpec value is not
	// one of *GraphNode, []*GraphNode, or LaunchSpec.
	CodeUnknownUnit = "UNKNOWN_UNIT"
)
