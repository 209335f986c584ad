package backtrace

import (
	"fmt"
	"strings"
)

// Formatter turns a captured trace into a human readable report.
type Formatter struct {
	opts Options
}

// NewFormatter creates a Formatter. Zero-valued Options fields fall back
// to the package defaults.
func NewFormatter(opts Options) *Formatter {
	return &Formatter{opts: opts.withDefaults()}
}

// Format resolves the trace if necessary, drops capture and startup
// scaffolding frames, and renders the remainder with fresh zero-based
// frame indices. The report starts with a newline so it never runs into
// preceding log text, and consists of just that newline when no frames
// survive. Format never fails and performs no I/O.
func (f *Formatter) Format(t *Trace) string {
	t.Resolve()

	var out strings.Builder
	out.WriteString("\n")
	for i, frame := range f.selectFrames(t.frames) {
		f.renderFrame(&out, i, frame)
	}
	return out.String()
}

// renderFrame appends one numbered frame block. Each distinct demangled
// name gets a line of its own; a run of inlined symbols sharing a name
// collapses onto one name line with a location line per occurrence.
func (f *Formatter) renderFrame(out *strings.Builder, index int, frame Frame) {
	fmt.Fprintf(out, "%4d:", index)

	lastName := ""
	for i, sym := range frame.Symbols {
		name := "<unknown>"
		if sym.Name != "" {
			name = f.opts.Demangle(sym.Name)
		}
		switch {
		case i == 0:
			fmt.Fprintf(out, " %s", name)
		case name != lastName:
			fmt.Fprintf(out, "\n      %s", name)
		}
		lastName = name

		out.WriteString("\n          at ")
		switch {
		case sym.File != "" && sym.Line != 0:
			fmt.Fprintf(out, "%s:%d", cleanPath(sym.File, f.opts.CacheMarker), sym.Line)
		case sym.File != "":
			out.WriteString(cleanPath(sym.File, f.opts.CacheMarker))
		case frame.PC != 0:
			fmt.Fprintf(out, "address 0x%x", frame.PC)
		default:
			out.WriteString("<unknown>")
		}
	}

	out.WriteString("\n")
}
