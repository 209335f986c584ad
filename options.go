package backtrace

const (
	// DefaultStartWindow bounds the search for the panic-machinery
	// boundary to the innermost frames; the capture call itself is
	// always shallow.
	DefaultStartWindow = 10

	// DefaultCacheMarker is the path component prefix that marks
	// dependency-cache source directories.
	DefaultCacheMarker = "github.com-"
)

// DefaultMarkers matches the Go runtime's panic dispatch and goroutine
// startup symbols. The names track runtime conventions and may need
// re-pinning when those drift across releases.
var DefaultMarkers = Markers{
	PanicSymbol:    "runtime.gopanic",
	PanicPrefix:    "runtime.panic",
	ShortBacktrace: "runtime.goexit",
}

// Markers names the symbols that separate user code from capture and
// startup scaffolding in a trace. All matching runs on demangled names.
type Markers struct {
	// PanicSymbol is compared for exact equality.
	PanicSymbol string
	// PanicPrefix matches any name it prefixes.
	PanicPrefix string
	// ShortBacktrace matches any name containing it and marks the
	// outermost startup and unwind-catch scaffolding.
	ShortBacktrace string
}

// Options configures a Formatter. Zero-valued fields fall back to the
// documented defaults.
type Options struct {
	// Demangle converts a possibly-mangled symbol name into a readable
	// form, passing unrecognized input through unchanged. Defaults to
	// DefaultDemangle.
	Demangle func(string) string

	// Markers are the boundary markers used by the frame filter.
	// Empty fields default to the corresponding DefaultMarkers field.
	Markers Markers

	// StartWindow is the number of innermost frames searched for the
	// panic-machinery boundary. Defaults to DefaultStartWindow.
	StartWindow int

	// CacheMarker is the path component prefix stripped by the path
	// shortener. Defaults to DefaultCacheMarker.
	CacheMarker string
}

// withDefaults returns a copy of o with every unset field filled in.
func (o Options) withDefaults() Options {
	if o.Demangle == nil {
		o.Demangle = DefaultDemangle
	}
	if o.Markers.PanicSymbol == "" {
		o.Markers.PanicSymbol = DefaultMarkers.PanicSymbol
	}
	if o.Markers.PanicPrefix == "" {
		o.Markers.PanicPrefix = DefaultMarkers.PanicPrefix
	}
	if o.Markers.ShortBacktrace == "" {
		o.Markers.ShortBacktrace = DefaultMarkers.ShortBacktrace
	}
	if o.StartWindow <= 0 {
		o.StartWindow = DefaultStartWindow
	}
	if o.CacheMarker == "" {
		o.CacheMarker = DefaultCacheMarker
	}
	return o
}
