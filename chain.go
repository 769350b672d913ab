// chain.go — the ordered multi-handler dispatcher for xgx-group core.
//
// A Chain holds an ordered registry of (type, predicate, handler) triples
// and processes an escaping error in a single linear pass: each registration
// splits off its portion of whatever remains, and everything handlers
// re-raise — plus anything no handler claimed — is surfaced as exactly one
// fresh Group. The registry is mutated only during setup; dispatch reads it
// without locking, so concurrent registration during a dispatch is the
// caller's responsibility to serialize.
package xgxgroup

// groupAfterHandlers is the fixed message of the group a Chain surfaces, so
// chain output stays predictable and greppable regardless of content.
const groupAfterHandlers = "errors remaining after running handlers"

type chainEntry struct {
	matcher Matcher
	handler Handler
}

// Chain is a guard dispatching an ordered handler registry over a protected
// block. The zero value is ready to use; NewChain is provided for symmetry
// with the rest of the surface.
type Chain struct {
	entries []chainEntry
}

// NewChain returns an empty handler chain.
func NewChain() *Chain { return &Chain{} }

// Register appends (m, handler) to the dispatch order. Re-registering a
// matcher with the same target type replaces its predicate and handler in
// place, keeping the original position. It panics with a *ValidationError if
// m is the zero Matcher or handler is nil, and returns the chain for fluent
// setup.
func (c *Chain) Register(m Matcher, handler Handler) *Chain {
	if !m.ok() {
		panic(validationf("chain: matcher has no target type"))
	}
	if handler == nil {
		panic(validationf("chain: handler is nil"))
	}
	for i := range c.entries {
		if c.entries[i].matcher.typ == m.typ {
			c.entries[i] = chainEntry{matcher: m, handler: handler}
			return c
		}
	}
	c.entries = append(c.entries, chainEntry{matcher: m, handler: handler})
	return c
}

// Len returns the number of registered handlers.
func (c *Chain) Len() int { return len(c.entries) }

// Run executes fn and applies the chain to any error it returns.
func (c *Chain) Run(fn func() error) error {
	if err := fn(); err != nil {
		return c.Handle(err)
	}
	return nil
}

// Handle dispatches an escaping error through the registered handlers in
// registration order. Each handler receives the portion of the remaining
// error its matcher selects; the loop stops early once nothing remains.
//
// A handler returning nil drops its portion entirely. A handler returning an
// error re-raises it, with the caught portion's Context and Stack reattached
// so the re-raised error does not carry spurious chaining from inside the
// handler. Whatever no handler claimed is kept as-is.
//
// If anything was re-raised or left unclaimed, Handle returns exactly one
// fresh Group collecting it all, with per-child sources set to each child's
// Error() string and no Context attached — the original triggering error is
// never propagated directly once the chain has engaged. Otherwise Handle
// returns nil and control flow resumes as if no error occurred.
func (c *Chain) Handle(err error) error {
	if err == nil {
		return nil
	}
	remaining := err
	var reraised []error
	for _, ent := range c.entries {
		if remaining == nil {
			break
		}
		var caught error
		caught, remaining = Split(ent.matcher, remaining)
		if caught == nil {
			continue
		}
		var snap Trace
		if tr := traceOf(caught); tr != nil {
			snap = *tr
		}
		raised := ent.handler(caught)
		if raised == nil {
			continue // fully handled; dropped
		}
		if tr := traceOf(raised); tr != nil {
			tr.Context = snap.Context
			tr.Stack = snap.Stack
		}
		reraised = append(reraised, raised)
	}
	if remaining != nil {
		reraised = append(reraised, remaining)
	}
	if len(reraised) == 0 {
		return nil
	}
	sources := make([]string, len(reraised))
	for i, e := range reraised {
		sources[i] = e.Error()
	}
	// Built directly: inputs are valid by construction, and the surfaced
	// group deliberately carries no Context.
	return &Group{
		msg:      groupAfterHandlers,
		children: reraised,
		sources:  sources,
	}
}
