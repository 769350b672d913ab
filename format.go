// format.go — fmt.Formatter implementations for xgx-group core.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, structured multi-line format:
//	             group msg="<message>" errs=<n>
//	             1. [<source>] <child, recursively %+v>
//	             cause: <recursively formatted with %+v>
//	             context: <concise %v>
//	             stack:
//	               funcA file.go:123
//
// Rationale:
//   - Keep core free of logging/serialization policy; only fmt formatting.
//   - Children recurse with %+v so nested groups and traced leaves render
//     their own detail; context stays concise (%v) to avoid ballooning the
//     output with the full in-flight chain.
//   - SuppressContext is honored here: a suppressed context is not printed.
package xgxgroup

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatTrace appends cause/context/stack sections for tr, if present.
func formatTrace(w io.Writer, tr *Trace) {
	if tr.Cause != nil {
		_, _ = fmt.Fprintf(w, "\ncause: %+v", tr.Cause)
	}
	if tr.Context != nil && !tr.SuppressContext {
		_, _ = fmt.Fprintf(w, "\ncontext: %v", tr.Context)
	}
	if len(tr.Stack) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range tr.Stack {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}

// Format implements fmt.Formatter for Group.
func (g *Group) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "group msg=%q errs=%d", g.msg, len(g.children))
			for i, child := range g.children {
				_, _ = fmt.Fprintf(s, "\n%d. [%s] %+v", i+1, g.sources[i], child)
			}
			formatTrace(s, &g.trace)
			return
		}
		formatConcise(s, g)
	case 's':
		formatConcise(s, g)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", g.Error())
	default:
		formatConcise(s, g)
	}
}

// Format implements fmt.Formatter for traced leaves: the wrapped error's own
// %+v rendering followed by the adapter's causal sections.
func (e *tracedErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%+v", e.err)
			formatTrace(s, &e.trace)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
