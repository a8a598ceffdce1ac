package reactor

// GraphNode is an immutable-after-construction record: an ordered
// instruction sequence, an ordered child list, a register table mapping
// local store ids to ref cells, and an opaque scope passed to user
// functions. Graph construction (external to this package) builds these;
// the engine only ever reads them during propagation.
type GraphNode struct {
	ID UnitID

	// Seq is the ordered instruction sequence the interpreter runs.
	Seq []Step

	// Next is the ordered list of child nodes fanned out to on clean
	// completion.
	Next []*GraphNode

	// Reg maps a local store id (the Store field of mov/check steps) to
	// the ref cell it addresses.
	Reg map[RefID]*RefCell

	// Scope is opaque user data passed to filter/compute/run functions.
	Scope Value
}

// NewGraphNode constructs a GraphNode. reg and next may be nil; a nil reg
// is normalized to an empty map, a nil next is kept as nil (no children).
func NewGraphNode(id UnitID, seq []Step, next []*GraphNode, reg map[RefID]*RefCell, scope Value) *GraphNode {
	if reg == nil {
		reg = map[RefID]*RefCell{}
	}
	return &GraphNode{ID: id, Seq: seq, Next: next, Reg: reg, Scope: scope}
}

// ref looks up a ref cell by local store id, reporting whether it is
// registered. A missing register is structural corruption: it cannot
// arise from correct graph-construction code.
func (n *GraphNode) ref(store RefID) (*RefCell, bool) {
	cell, ok := n.Reg[store]
	return cell, ok
}
