// leaves.go — traversal helpers over error trees.
//
// Group trees are built bottom-up from already-constructed errors, so they
// are acyclic and traversal needs no cycle guards. Leaf granularity here is
// the Group boundary: anything that is not a *Group counts as a leaf, even
// if it wraps further errors internally (those belong to the leaf, not the
// tree).
package xgxgroup

// Leaves returns the leaf errors of err in depth-first order, with
// multiplicity. A non-Group error is its own single leaf; nil yields nil.
func Leaves(err error) []error {
	if err == nil {
		return nil
	}
	g, ok := err.(*Group)
	if !ok {
		return []error{err}
	}
	out := make([]error, 0, len(g.children))
	for _, child := range g.children {
		out = append(out, Leaves(child)...)
	}
	return out
}

// Walk visits every node of the error tree in pre-order (parent before
// children). If visit returns false, traversal stops early. Nil err or nil
// visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	walk(err, visit)
}

func walk(err error, visit func(error) bool) bool {
	if !visit(err) {
		return false
	}
	if g, ok := err.(*Group); ok {
		for _, child := range g.children {
			if !walk(child, visit) {
				return false
			}
		}
	}
	return true
}
