package xgxgroup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_NilErrorPanics(t *testing.T) {
	require.PanicsWithError(t, "split: expected an error value, got nil", func() {
		Split(Match[*dialError](), nil)
	})
}

func TestSplit_ZeroMatcherPanics(t *testing.T) {
	require.PanicsWithError(t, "split: matcher has no target type", func() {
		Split(Matcher{}, errors.New("boom"))
	})
}

func TestSplit_LeafMatched(t *testing.T) {
	leaf := &dialError{addr: "db:5432"}
	matched, rest := Split(Match[*dialError](), leaf)

	assert.Same(t, leaf, matched) // unchanged, never cloned
	assert.Nil(t, rest)
}

func TestSplit_LeafUnmatched(t *testing.T) {
	leaf := &dialError{addr: "db:5432"}
	matched, rest := Split(Match[*parseError](), leaf)

	assert.Nil(t, matched)
	assert.Same(t, leaf, rest)
}

// Identity short-circuit: when every leaf matches, the ORIGINAL group comes
// back, not a clone.
func TestSplit_AllMatched(t *testing.T) {
	g := mustGroup(t, "many errors",
		[]error{&dialError{addr: "a"}, &dialError{addr: "b"}},
		[]string{"a", "b"})

	matched, rest := Split(Match[*dialError](), g)

	assert.Same(t, g, matched)
	assert.Nil(t, rest)
}

func TestSplit_AllUnmatched(t *testing.T) {
	g := mustGroup(t, "many errors",
		[]error{&dialError{addr: "a"}, &dialError{addr: "b"}},
		[]string{"a", "b"})

	matched, rest := Split(Match[*parseError](), g)

	assert.Nil(t, matched)
	assert.Same(t, g, rest)
}

func TestSplit_Mixed(t *testing.T) {
	dial := &dialError{addr: "db:5432"}
	parse := &parseError{input: "row 7"}
	g := mustGroup(t, "many errors", []error{dial, parse}, []string{"task 1", "task 2"})

	matched, rest := Split(Match[*dialError](), g)

	mg, ok := matched.(*Group)
	require.True(t, ok)
	rg, ok := rest.(*Group)
	require.True(t, ok)

	assert.NotSame(t, g, mg)
	assert.NotSame(t, g, rg)

	assert.Equal(t, []error{dial}, mg.Errors())
	assert.Equal(t, []string{"task 1"}, mg.Sources())
	assert.Equal(t, []error{parse}, rg.Errors())
	assert.Equal(t, []string{"task 2"}, rg.Sources())

	// Both clones retain the original message.
	assert.Equal(t, "many errors", mg.Message())
	assert.Equal(t, "many errors", rg.Message())

	// The original is untouched.
	assert.Equal(t, []error{dial, parse}, g.Errors())
	assert.Equal(t, []string{"task 1", "task 2"}, g.Sources())
}

func TestSplit_Predicate(t *testing.T) {
	skip := &quotaError{limit: 1}
	keep := &quotaError{limit: 1000}
	g := mustGroup(t, "many errors", []error{skip, keep}, []string{"a", "b"})

	matched, rest := Split(MatchFunc(func(e *quotaError) bool { return e.limit > 100 }), g)

	require.IsType(t, (*Group)(nil), matched)
	require.IsType(t, (*Group)(nil), rest)
	assert.Equal(t, []error{keep}, matched.(*Group).Errors())
	assert.Equal(t, []error{skip}, rest.(*Group).Errors())
}

// Nested groups are split structurally, never matched as a unit, and
// relative leaf order is preserved across both halves.
func TestSplit_Nested(t *testing.T) {
	d1 := &dialError{addr: "a"}
	p1 := &parseError{input: "x"}
	d2 := &dialError{addr: "b"}
	inner := mustGroup(t, "inner", []error{p1, d2}, []string{"p1", "d2"})
	outer := mustGroup(t, "outer", []error{d1, inner}, []string{"d1", "inner"})

	matched, rest := Split(Match[*dialError](), outer)

	mg := matched.(*Group)
	rg := rest.(*Group)

	assert.Equal(t, []error{d1, d2}, Leaves(mg))
	assert.Equal(t, []error{p1}, Leaves(rg))

	// The matched side keeps the tree shape: second child is a clone of the
	// inner group holding only its matched child, under the same source.
	require.Equal(t, 2, mg.Len())
	assert.Equal(t, []string{"d1", "inner"}, mg.Sources())
	innerMatched, ok := mg.Errors()[1].(*Group)
	require.True(t, ok)
	assert.Equal(t, "inner", innerMatched.Message())
	assert.Equal(t, []error{d2}, innerMatched.Errors())
	assert.Equal(t, []string{"d2"}, innerMatched.Sources())

	// The fully-unmatched inner remainder keeps identity inside the clone.
	require.Equal(t, 1, rg.Len())
	assert.Equal(t, []string{"inner"}, rg.Sources())
	innerRest, ok := rg.Errors()[0].(*Group)
	require.True(t, ok)
	assert.Equal(t, []error{p1}, innerRest.Errors())
}

// Union property: leaves of matched plus leaves of rest equal the leaves of
// the input, with multiplicity and order, and each side satisfies (or fails)
// the matcher.
func TestSplit_LeafPartitionProperty(t *testing.T) {
	leaves := []error{
		&dialError{addr: "a"},
		&parseError{input: "x"},
		&dialError{addr: "b"},
		&quotaError{limit: 3},
		&parseError{input: "y"},
	}
	inner := mustGroup(t, "inner", leaves[1:3], []string{"1", "2"})
	g := mustGroup(t, "outer",
		[]error{leaves[0], inner, leaves[3], leaves[4]},
		[]string{"0", "i", "3", "4"})

	m := Match[*parseError]()
	matched, rest := Split(m, g)

	var union []error
	for _, leaf := range Leaves(matched) {
		assert.True(t, m.Matches(leaf))
	}
	for _, leaf := range Leaves(rest) {
		assert.False(t, m.Matches(leaf))
	}
	// Interleave back in original order by walking the input's leaves.
	ml, rl := Leaves(matched), Leaves(rest)
	for _, leaf := range Leaves(g) {
		if len(ml) > 0 && ml[0] == leaf {
			union = append(union, ml[0])
			ml = ml[1:]
		} else if len(rl) > 0 && rl[0] == leaf {
			union = append(union, rl[0])
			rl = rl[1:]
		}
	}
	assert.Equal(t, Leaves(g), union)
	assert.Empty(t, ml)
	assert.Empty(t, rl)
}

// Clones share message and every causal-metadata field with the source;
// only children/sources differ.
func TestSplit_ClonePreservesTrace(t *testing.T) {
	cause := errors.New("root cause")
	inflight := errors.New("in flight")
	stack := captureStackDefault(0)

	g := mustGroup(t, "many errors",
		[]error{&dialError{addr: "a"}, &parseError{input: "x"}},
		[]string{"a", "x"})
	g.Trace().Cause = cause
	g.Trace().Context = inflight
	g.Trace().SuppressContext = true
	g.Trace().Stack = stack

	matched, rest := Split(Match[*dialError](), g)

	for _, clone := range []*Group{matched.(*Group), rest.(*Group)} {
		assert.Equal(t, "many errors", clone.Message())
		assert.Same(t, cause, clone.Trace().Cause)
		assert.Same(t, inflight, clone.Trace().Context)
		assert.True(t, clone.Trace().SuppressContext)
		assert.Equal(t, stack, clone.Trace().Stack)
	}

	// Clones are value copies: mutating a clone's trace never reaches the
	// original or the sibling.
	matched.(*Group).Trace().Context = nil
	assert.Same(t, inflight, g.Trace().Context)
	assert.Same(t, inflight, rest.(*Group).Trace().Context)
}

// An empty group has no unmatched children, so it lands whole on the
// matched side.
func TestSplit_EmptyGroup(t *testing.T) {
	g := mustGroup(t, "empty", nil, nil)
	matched, rest := Split(Match[*dialError](), g)

	assert.Same(t, g, matched)
	assert.Nil(t, rest)
}
