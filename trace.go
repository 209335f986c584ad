package backtrace

import "runtime"

// Symbol is a single resolved identity at a stack frame. A position that
// was subject to inlining resolves to several symbols, innermost first.
// Zero values mean the corresponding piece of information is unavailable.
type Symbol struct {
	// Name is the possibly-mangled function name ("" if unknown).
	Name string
	// File is the source file path ("" if unknown).
	File string
	// Line is the 1-indexed source line (0 if unknown).
	Line int
}

// Frame is a single position in a captured call stack.
type Frame struct {
	// PC is the captured program counter (0 if unknown).
	PC uintptr
	// Symbols holds the resolved identities for this position.
	Symbols []Symbol
}

// Trace is an ordered sequence of stack frames, innermost call first.
type Trace struct {
	frames   []Frame
	resolved bool
}

// NewTrace builds an already-resolved trace from the given frames.
// Frames must be ordered innermost first.
func NewTrace(frames []Frame) *Trace {
	return &Trace{frames: frames, resolved: true}
}

// Capture records the current goroutine's stack starting at the caller.
// Symbol resolution is deferred until Resolve or Format.
func Capture() *Trace {
	return capture(3)
}

// capture records program counters, skipping the innermost skip frames.
// skip counts runtime.Callers itself as frame 0.
func capture(skip int) *Trace {
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(skip, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, 2*len(pcs))
	}

	frames := make([]Frame, len(pcs))
	for i, pc := range pcs {
		frames[i] = Frame{PC: pc}
	}
	return &Trace{frames: frames}
}

// Resolve fills in symbol information for every frame. Resolving an
// already-resolved trace is a no-op.
func (t *Trace) Resolve() {
	if t.resolved {
		return
	}
	for i := range t.frames {
		t.frames[i].Symbols = resolvePC(t.frames[i].PC)
	}
	t.resolved = true
}

// Frames returns the resolved frames, innermost first. The returned
// slice is a copy; modifying it leaves the trace untouched.
func (t *Trace) Frames() []Frame {
	t.Resolve()
	frames := make([]Frame, len(t.frames))
	copy(frames, t.frames)
	for i := range frames {
		frames[i].Symbols = append([]Symbol(nil), frames[i].Symbols...)
	}
	return frames
}

// resolvePC expands one program counter into its symbols, innermost
// inlined call first. An unresolvable counter yields no symbols.
func resolvePC(pc uintptr) []Symbol {
	if pc == 0 {
		return nil
	}

	var symbols []Symbol
	frames := runtime.CallersFrames([]uintptr{pc})
	for {
		fr, more := frames.Next()
		if fr.Function != "" || fr.File != "" || fr.Line != 0 {
			symbols = append(symbols, Symbol{
				Name: fr.Function,
				File: fr.File,
				Line: fr.Line,
			})
		}
		if !more {
			break
		}
	}
	return symbols
}
