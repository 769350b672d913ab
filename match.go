// match.go — leaf matchers for xgx-group core.
//
// A Matcher is a type tag plus an optional predicate over leaf errors. Type
// compatibility uses errors.As semantics — the Go analogue of an isinstance
// check — so interface targets and wrapped leaves (including Traced adapters)
// match through their unwrap chains. The predicate, when present, narrows the
// match and is applied at leaf granularity only: Split never applies a
// Matcher to a Group, it recurses into it.
package xgxgroup

import (
	"errors"
	"reflect"
)

// Matcher classifies leaf errors during Split. The zero value is invalid;
// build one with Match or MatchFunc.
type Matcher struct {
	typ   reflect.Type
	match func(error) bool
}

// Match returns a Matcher selecting leaf errors that errors.As can extract
// as T.
func Match[T error]() Matcher {
	return Matcher{
		typ: reflect.TypeOf((*T)(nil)).Elem(),
		match: func(err error) bool {
			var target T
			return errors.As(err, &target)
		},
	}
}

// MatchFunc returns a Matcher selecting leaf errors extractable as T that
// also satisfy pred. A nil pred matches every T, same as Match[T].
func MatchFunc[T error](pred func(T) bool) Matcher {
	return Matcher{
		typ: reflect.TypeOf((*T)(nil)).Elem(),
		match: func(err error) bool {
			var target T
			if !errors.As(err, &target) {
				return false
			}
			return pred == nil || pred(target)
		},
	}
}

// Matches reports whether the leaf error satisfies the matcher.
func (m Matcher) Matches(err error) bool {
	return m.match != nil && err != nil && m.match(err)
}

// Type returns the matcher's target type tag.
func (m Matcher) Type() reflect.Type { return m.typ }

// ok reports whether the matcher was built by a constructor.
func (m Matcher) ok() bool { return m.typ != nil && m.match != nil }
