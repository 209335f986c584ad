package backtrace

import "strings"

// selectFrames trims capture/panic machinery off the innermost end of the
// trace and process or goroutine startup scaffolding off the outermost
// end. The result is a contiguous sub-slice of frames in original order.
//
// Filtering is opportunistic: if a boundary marker is not found the
// corresponding end is kept in full. Under-trimming is acceptable,
// dropping user frames is not, so the start-marker search is confined to
// a small window of innermost frames while the end-marker search scans
// the whole trace (startup frames sit near the outermost end regardless
// of stack depth).
func (f *Formatter) selectFrames(frames []Frame) []Frame {
	// The innermost frames are the capture call, the panic hook and the
	// runtime's panic dispatch. Trim at the last marker hit inside the
	// window.
	window := frames
	if len(window) > f.opts.StartWindow {
		window = window[:f.opts.StartWindow]
	}
	start := -1
	for i := len(window) - 1; i >= 0; i-- {
		if f.frameContainsSymbol(window[i], f.matchStart) {
			start = i
			break
		}
	}

	// The outermost frames are runtime startup, goroutine creation and
	// unwind catching. The marker can sit arbitrarily deep, so scan
	// everything.
	end := -1
	for i := len(frames) - 1; i >= 0; i-- {
		if f.frameContainsSymbol(frames[i], f.matchEnd) {
			end = i
			break
		}
	}

	// When the two boundaries disagree, trust the end marker and keep
	// the innermost frames rather than produce an inverted range.
	if start >= 0 && end >= 0 && start >= end {
		start = -1
	}

	if end < 0 {
		end = len(frames)
	}
	return frames[start+1 : end]
}

func (f *Formatter) matchStart(name string) bool {
	return name == f.opts.Markers.PanicSymbol ||
		strings.HasPrefix(name, f.opts.Markers.PanicPrefix) ||
		strings.Contains(name, f.opts.Markers.ShortBacktrace)
}

func (f *Formatter) matchEnd(name string) bool {
	return strings.Contains(name, f.opts.Markers.ShortBacktrace)
}

// frameContainsSymbol reports whether any of the frame's demangled symbol
// names satisfies pred. Symbols without a name never match.
func (f *Formatter) frameContainsSymbol(frame Frame, pred func(string) bool) bool {
	for _, sym := range frame.Symbols {
		if sym.Name != "" && pred(f.opts.Demangle(sym.Name)) {
			return true
		}
	}
	return false
}
