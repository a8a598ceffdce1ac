package reactor

// Value is the opaque payload carried through the graph: the propagated
// datum, ref-cell contents, and the user-supplied scope are all Value. The
// engine is deliberately not type-parameterized by payload type — the
// graph is heterogeneous by design (see Design Notes, "Opaque scope and
// value").
type Value = any

// valuesEqual implements the `===`-style identity comparison check
// {changed} relies on: distinct instances of the same reference value must
// compare unequal, only identical scalars or the same pointer compare
// equal. Go's `==` already has this semantics for the comparable kinds
// (strings, numbers, bools, pointers, interfaces holding those); for
// slices, maps and funcs `==` is not defined and panics, so we recover and
// treat that as "not changed" is unsafe — those values have no identity
// concept in Go, so we conservatively report them as always-changed
// instead, since there's no correct answer to "do these compare equal"
// for an uncomparable type.
func valuesEqual(a, b Value) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// isUndefined reports whether v is Go's analogue of JavaScript's
// `undefined`: a nil interface value. Graph authors that want a "no value
// yet" register initialize ref cells and stack slots to nil.
func isUndefined(v Value) bool {
	return v == nil
}
