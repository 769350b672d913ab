// group.go — the aggregate error value for xgx-group core.
//
// Scope (tiny core):
//   - Group: message + ordered children + parallel source labels + Trace.
//   - Validated construction (New) and the internal clone path Split uses.
//   - Stdlib interop: Unwrap() []error so errors.Is/As traverse the tree.
//
// Immutability:
//   - children/sources are defensively copied at construction and never
//     mutated afterwards. Accessors return fresh slices (copy-on-read), so
//     callers may rely on value identity across Split's short-circuit path.
//   - The Trace is the one mutable region; the dispatch guards stamp and
//     restore causal metadata through it.
package xgxgroup

import "fmt"

// ValidationError reports malformed construction or API misuse: a nil child,
// a children/sources length mismatch, or a zero Matcher / nil error handed to
// the dispatch entry points. It is never produced by normal error flow.
type ValidationError struct {
	reason string
}

func (e *ValidationError) Error() string { return e.reason }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{reason: fmt.Sprintf(format, args...)}
}

// Group is an error that contains other errors. Its main use is to represent
// multiple child tasks failing "in parallel": each child error is paired with
// a source label describing where it came from.
type Group struct {
	msg      string
	children []error
	sources  []string
	trace    Trace
}

// New constructs a Group from parallel children and sources slices.
// It returns a *ValidationError if any child is nil or the slices differ in
// length. The input slices are copied; the caller may reuse them freely.
func New(msg string, children []error, sources []string) (*Group, error) {
	if len(children) != len(sources) {
		return nil, validationf(
			"group: different number of children (%d) and sources (%d)",
			len(children), len(sources))
	}
	for i, child := range children {
		if child == nil {
			return nil, validationf("group: child %d is nil, expected an error value", i)
		}
	}
	cs := make([]error, len(children))
	copy(cs, children)
	ss := make([]string, len(sources))
	copy(ss, sources)
	return &Group{msg: msg, children: cs, sources: ss}, nil
}

// withChildren is the clone path used by Split: a new Group sharing msg and
// the Trace field values with g, but owning the given children/sources.
// Callers hand over freshly built slices, so no copy is taken here.
func (g *Group) withChildren(children []error, sources []string) *Group {
	return &Group{
		msg:      g.msg,
		children: children,
		sources:  sources,
		trace:    g.trace,
	}
}

// Error returns the group's message. Child detail is available via %+v.
func (g *Group) Error() string {
	if g.msg == "" {
		return "error group"
	}
	return g.msg
}

// Message returns the human-readable description set at construction.
func (g *Group) Message() string { return g.msg }

// Len returns the number of child errors.
func (g *Group) Len() int { return len(g.children) }

// Errors returns a copy of the child errors in order.
func (g *Group) Errors() []error {
	out := make([]error, len(g.children))
	copy(out, g.children)
	return out
}

// Sources returns a copy of the per-child source labels in order.
func (g *Group) Sources() []string {
	out := make([]string, len(g.sources))
	copy(out, g.sources)
	return out
}

// Unwrap exposes the children to stdlib traversal (errors.Is/As walk
// pre-order). The returned slice is shared; callers must not modify it.
func (g *Group) Unwrap() []error { return g.children }

// Trace returns the group's mutable causal metadata.
func (g *Group) Trace() *Trace { return &g.trace }

var (
	_ error        = (*Group)(nil)
	_ TraceCarrier = (*Group)(nil)
)
