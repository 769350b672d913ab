// catch.go — the scoped single-handler guard for xgx-group core.
//
// A Catcher wraps one (Matcher, Handler) pair around a protected block. It
// is the narrow primitive: it declines cleanly (propagating the original
// error unchanged) whenever nothing matches or the handler hands back the
// exact value it was given, keeping failure output minimal in the common
// "observe and continue" case.
package xgxgroup

// Handler processes the matched portion of an error. Returning nil marks the
// portion fully handled (suppressed). Returning the identical value that was
// passed in is a bare re-raise: the guard treats it as declining. Returning
// any other error re-raises that error, with causal metadata managed by the
// guard.
type Handler func(err error) error

// Sources of the synthetic group Catcher builds when a handler re-raises
// while unmatched errors remain.
const (
	sourceRaisedByHandler = "error raised by handler"
	sourceUncaught        = "uncaught errors"
)

// Catcher is a guard around one protected block. Construct with Catch; reuse
// across sequential scopes is safe, as no state persists between calls.
type Catcher struct {
	matcher Matcher
	handler Handler
}

// Catch returns a guard that intercepts the portion of an error selected by
// m and runs handler on it. It panics with a *ValidationError if m is the
// zero Matcher or handler is nil.
func Catch(m Matcher, handler Handler) *Catcher {
	if !m.ok() {
		panic(validationf("catch: matcher has no target type"))
	}
	if handler == nil {
		panic(validationf("catch: handler is nil"))
	}
	return &Catcher{matcher: m, handler: handler}
}

// Run executes fn and applies the guard to any error it returns. A nil
// result from fn is passed through untouched.
func (c *Catcher) Run(fn func() error) error {
	if err := fn(); err != nil {
		return c.Handle(err)
	}
	return nil
}

// Handle applies the guard to an error that escaped a protected block.
//
// The matched portion is handed to the handler with its Context and Stack
// snapshotted beforehand and restored afterwards on every exit path, so a
// handler cannot leave stale causal metadata behind. The outcome is:
//
//   - nothing matched: err propagates unchanged (the guard declines);
//   - handler returns the identical value it was given: err propagates
//     unchanged (bare re-raise);
//   - handler returns a new error H: H alone when everything matched,
//     otherwise a fresh Group holding H and the unmatched rest;
//   - handler returns nil: the unmatched rest (possibly nil — suppressed).
//
// An error the handler raises without an explicit cause is chained to the
// caught portion: its Trace gains Context = caught.
func (c *Catcher) Handle(err error) error {
	if err == nil {
		return nil
	}
	caught, rest := Split(c.matcher, err)
	if caught == nil {
		return err
	}

	raised := c.invoke(caught)
	if raised == nil {
		return rest // handled; may be a full suppression
	}
	if identical(raised, caught) {
		return err // bare re-raise: original propagates, no wrapping
	}
	if tr := traceOf(raised); tr != nil && tr.Cause == nil && tr.Context == nil {
		tr.Context = caught
	}
	if rest == nil {
		return raised
	}
	out := &Group{
		msg:      "caught " + c.matcher.typ.String(),
		children: []error{raised, rest},
		sources:  []string{sourceRaisedByHandler, sourceUncaught},
	}
	return out
}

// invoke runs the handler with the caught error's causal metadata
// snapshotted and restored on all exit paths, including a panicking handler.
func (c *Catcher) invoke(caught error) error {
	tr := traceOf(caught)
	if tr == nil {
		return c.handler(caught)
	}
	savedContext, savedStack := tr.Context, tr.Stack
	defer func() {
		tr.Context, tr.Stack = savedContext, savedStack
	}()
	return c.handler(caught)
}
