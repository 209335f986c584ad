// Package backtrace generates a backtrace as a human readable string.
//
// A trace is captured with Capture (or synthesized with NewTrace),
// resolved against the runtime's symbol tables, stripped of capture and
// startup machinery, and rendered one numbered block per frame with a
// source location for every inlined call. Create bundles capture and
// formatting into one call for use inside a panic or crash handler.
package backtrace

// Create captures the caller's stack and formats it with the default
// Options. It is intended to be called from a panic or crash handler and
// never fails; missing symbol information degrades to placeholders.
func Create() string {
	return Format(capture(3))
}

// Format renders the trace with the default Options.
func Format(t *Trace) string {
	return NewFormatter(Options{}).Format(t)
}
