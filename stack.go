// stack.go — provenance capture for xgx-group core.
//
// A Stack is the opaque provenance a Trace carries: the core captures it,
// copies it across clones, and restores it around handler invocations, but
// never inspects it. Resolution uses runtime.Callers + runtime.CallersFrames
// so inlined frames are expanded correctly.
package xgxgroup

import (
	"runtime"
)

// Frame represents a single call site in a captured stack.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture work on exceptional paths while keeping
// enough context to be useful.
const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' caller frames beyond
// the capture helpers themselves, with the default depth bound.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial
// caller frames.
//
// Skip accounting: +1 for runtime.Callers, +1 for captureStack, +1 for
// captureStackDefault, so the first recorded frame sits at (or very near)
// the user-visible call site. Any caller-provided skip applies on top.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
