package reactor

// skewNode is a node of the skew heap shared by the Barrier and Sampler
// priority classes. Children are explicit optional pointers (nil for
// empty), not the source's `0` sentinel (Design Notes, "heap nodes with 0
// sentinels").
type skewNode struct {
	v    Layer
	l, r *skewNode
}

// skewLess reports whether a sorts before b under the two-key comparison
// this heap orders by:
//  1. Same priority class: smaller id wins.
//  2. Different class: Barrier always wins over Sampler.
func skewLess(a, b Layer) bool {
	if a.Priority == b.Priority {
		return a.ID < b.ID
	}
	return a.Priority == Barrier
}

// skewMeld merges two skew heaps into one, min-first. An empty heap (nil)
// melded with anything returns the other heap unchanged, so push/pop
// compose correctly when one side is empty.
func skewMeld(a, b *skewNode) *skewNode {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	winner, loser := a, b
	if !skewLess(a.v, b.v) {
		winner, loser = b, a
	}
	winner.r = skewMeld(winner.r, loser)
	winner.l, winner.r = winner.r, winner.l
	return winner
}

// skewPush inserts layer v into heap root, returning the new root.
func skewPush(root *skewNode, v Layer) *skewNode {
	return skewMeld(root, &skewNode{v: v})
}

// skewPop removes and returns the minimum layer, along with the new root
// and whether the heap was non-empty.
func skewPop(root *skewNode) (Layer, *skewNode, bool) {
	if root == nil {
		return Layer{}, nil, false
	}
	return root.v, skewMeld(root.l, root.r), true
}
