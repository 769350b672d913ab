// doc.go — package documentation for xgx-group
//
// Package xgxgroup aggregates multiple simultaneous failures (typically
// collected from parallel work) into one structured error value, partitions
// such aggregates by error type or predicate without losing tree shape, and
// dispatches typed handlers over them while preserving causal metadata.
//
// It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, Unwrap() []error, fmt.Formatter)
//   - Policy-free (no logging/HTTP/JSON/serialization rules in core)
//
// # The Group Value
//
// A Group holds a message, an ordered list of child errors, and a parallel
// list of source labels describing where each child came from. Children may
// themselves be Groups, to arbitrary depth. Structure is immutable after
// construction: accessors return copies, and partitioning never mutates an
// existing Group.
//
//	g, err := xgxgroup.New("3 tasks failed",
//	    []error{errA, errB, errC},
//	    []string{"task 1", "task 2", "task 3"})
//
// Every Group also carries a Trace: the causal metadata of the value (an
// explicit Cause, the implicit in-flight Context, a SuppressContext flag,
// and an opaque call Stack). Leaf errors can carry the same metadata by
// implementing TraceCarrier, or by being wrapped with Traced/TracedFrom.
//
// # Split
//
// Split partitions any error — leaf or Group — into the part matching a
// Matcher and the rest, preserving relative child order:
//
//	matched, rest := xgxgroup.Split(xgxgroup.Match[*net.OpError](), err)
//
// Matchers select leaves by type (errors.As semantics), optionally narrowed
// by a typed predicate via MatchFunc. Nested Groups are split structurally,
// never matched as a unit. When every leaf falls on one side, Split returns
// the original value for that side (identity preserved, no clone); otherwise
// it returns two clones sharing the source's message and Trace but holding
// the partitioned children.
//
// # Guards
//
// Catch wraps one (Matcher, Handler) pair around a protected block; Chain
// dispatches an ordered registry of them. A Handler receives the matched
// portion and either returns nil (handled, suppressed), returns the identical
// value it was given (declines — the original error propagates unchanged,
// Catch only), or returns a new error (re-raised, with causal metadata
// managed by the guard).
//
//	chain := xgxgroup.NewChain()
//	chain.Register(xgxgroup.Match[*QuotaError](), func(err error) error {
//	    return nil // absorb
//	})
//	err := chain.Run(func() error { return runTasks() })
//
// A Chain never lets a raw leaf escape once it has engaged: callers see
// either nil (full suppression) or exactly one Group summarizing everything
// left over.
//
// # Validation
//
// Malformed construction is reported as *ValidationError: New returns it for
// bad dynamic input (nil children, length mismatch); Split, Catch, and
// Register panic with it on API misuse (nil error, zero Matcher, nil
// Handler), the same convention errors.As uses for malformed targets.
//
// # Interop
//
//   - Group implements Unwrap() []error; errors.Is/As traverse aggregates.
//   - %v and %s print the concise message; %+v recurses into children,
//     cause, context, and stack.
//   - The core never spawns or awaits work; it only processes errors that
//     some external concurrent mechanism already collected. Guards are
//     synchronous and safe to reuse across sequential scopes.
package xgxgroup
