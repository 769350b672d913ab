// split.go — recursive structural partition of an error tree.
//
// Split is the single algorithm the guards reuse: Catch and Chain both
// delegate their partitioning here. O(total node count) time, recursion
// depth equals tree depth; trees are acyclic by construction (group.go).
package xgxgroup

// Split partitions err into the half matching m and the rest.
//
// For a leaf, the leaf itself lands on one side unchanged, never cloned:
// (err, nil) when it satisfies the matcher, (nil, err) otherwise.
//
// For a Group, each (child, source) pair is split recursively, preserving
// relative order. When every child falls on one side, the ORIGINAL group is
// returned for that side — callers comparing by identity can detect the
// untouched case. Otherwise Split returns two clones sharing the source's
// message and Trace but holding the partitioned children and sources.
//
// Split panics with a *ValidationError if err is nil or m is the zero
// Matcher; both are API misuse, in the same way errors.As treats a malformed
// target.
func Split(m Matcher, err error) (matched, rest error) {
	if err == nil {
		panic(validationf("split: expected an error value, got nil"))
	}
	if !m.ok() {
		panic(validationf("split: matcher has no target type"))
	}
	return split(m, err)
}

func split(m Matcher, err error) (matched, rest error) {
	g, ok := err.(*Group)
	if !ok {
		if m.Matches(err) {
			return err, nil
		}
		return nil, err
	}

	var (
		matchedKids []error
		matchedSrcs []string
		restKids    []error
		restSrcs    []string
	)
	for i, child := range g.children {
		cm, cr := split(m, child)
		if cm != nil {
			matchedKids = append(matchedKids, cm)
			matchedSrcs = append(matchedSrcs, g.sources[i])
		}
		if cr != nil {
			restKids = append(restKids, cr)
			restSrcs = append(restSrcs, g.sources[i])
		}
	}

	// Identity short-circuits: hand back the original when one side is empty.
	switch {
	case len(restKids) == 0:
		return g, nil
	case len(matchedKids) == 0:
		return nil, g
	default:
		return g.withChildren(matchedKids, matchedSrcs),
			g.withChildren(restKids, restSrcs)
	}
}
