// trace.go — causal metadata for xgx-group core.
//
// Every error value flowing through the dispatch guards may carry a Trace:
// an explicit Cause (set by "this error was raised from that one"), the
// implicit Context (the error that was in flight when this one was raised),
// a SuppressContext flag for display policy, and an opaque call Stack.
//
// Go has no ambient in-flight exception, so the guards emulate it: Catch
// stamps Context = caught onto a handler-returned error that carries a Trace
// with neither Cause nor Context set, and both guards snapshot/reattach
// Context and Stack per their protocols. Errors that do not implement
// TraceCarrier are opaque leaves; metadata operations on them are no-ops.
package xgxgroup

import "reflect"

// Trace holds the causal metadata of an error value. The core never
// interprets Stack; it is captured, carried, and restored as-is.
type Trace struct {
	// Cause is the explicitly chained prior error, if any.
	Cause error
	// Context is the error that was in flight when this one was raised.
	Context error
	// SuppressContext tells consumers not to display Context even when set.
	SuppressContext bool
	// Stack is opaque provenance: the call stack at capture time.
	Stack Stack
}

// TraceCarrier is implemented by error values that expose mutable causal
// metadata. Group implements it; user-defined leaf types may too, or plain
// errors can be adapted with Traced/TracedFrom.
type TraceCarrier interface {
	error
	Trace() *Trace
}

// traceOf returns the error's mutable Trace, or nil for opaque leaves.
// The assertion is on the node itself, not its unwrap chain: metadata
// belongs to each tree node individually.
func traceOf(err error) *Trace {
	if c, ok := err.(TraceCarrier); ok {
		return c.Trace()
	}
	return nil
}

// tracedErr adapts an arbitrary leaf error into a TraceCarrier. It keeps the
// wrapped error reachable through Unwrap so type matching and errors.Is/As
// see through the adapter.
type tracedErr struct {
	err   error
	trace Trace
}

func (e *tracedErr) Error() string { return e.err.Error() }
func (e *tracedErr) Unwrap() error { return e.err }
func (e *tracedErr) Trace() *Trace { return &e.trace }

// Traced returns err carrying causal metadata, capturing the call stack as
// its provenance. If err already implements TraceCarrier it is returned
// unchanged; nil yields nil.
func Traced(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(TraceCarrier); ok {
		return err
	}
	return &tracedErr{err: err, trace: Trace{Stack: captureStackDefault(0)}}
}

// TracedFrom models "raise err from cause": err gains a Trace (if it does
// not carry one) with Cause set to cause and SuppressContext set, so
// consumers display the explicit chain rather than the implicit one.
func TracedFrom(err, cause error) error {
	if err == nil {
		return nil
	}
	out := err
	if _, ok := out.(TraceCarrier); !ok {
		out = &tracedErr{err: err, trace: Trace{Stack: captureStackDefault(0)}}
	}
	tr := traceOf(out)
	tr.Cause = cause
	tr.SuppressContext = true
	return out
}

// identical reports whether two errors are the same value, without panicking
// on non-comparable dynamic types. Pointer-typed errors (the common case)
// compare by pointer identity; comparable values by ==; non-comparable,
// non-pointer dynamics are never identical.
func identical(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Pointer && rb.Kind() == reflect.Pointer {
		return ra.Pointer() == rb.Pointer() && ra.Type() == rb.Type()
	}
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}

var _ TraceCarrier = (*tracedErr)(nil)
