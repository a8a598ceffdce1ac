package reactor

// RefID addresses a RefCell within a GraphNode's register table (the local
// store id a `mov`/`check` step references as `store`).
type RefID = string

// RefCell is a mutable value slot addressed by a stable id. It is owned by
// whichever graph first registers it; any node holding it in its register
// table may read it, but only a `mov` whose destination is `store` may
// write it.
type RefCell struct {
	ID      RefID
	Current Value
}

// NewRefCell constructs a RefCell with an initial value.
func NewRefCell(id RefID, initial Value) *RefCell {
	return &RefCell{ID: id, Current: initial}
}

// Read returns the cell's current value. Identity (not deep equality) is
// what `check{changed}` compares against, so implementations must not
// normalize or copy object values here.
func (c *RefCell) Read() Value {
	return c.Current
}

// write replaces the cell's current value. Only called from `mov` whose
// destination is `store`.
func (c *RefCell) write(v Value) {
	c.Current = v
}
