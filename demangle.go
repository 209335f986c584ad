package backtrace

import "github.com/ianlancetaylor/demangle"

// DefaultDemangle converts a compiler-mangled name (cgo-linked C++ or
// Rust symbols) into a readable form. Names it does not recognize, which
// includes every ordinary Go symbol, pass through unchanged.
func DefaultDemangle(name string) string {
	return demangle.Filter(name)
}
