package backtrace

import (
	"path/filepath"
	"strings"
)

// cleanPath shortens an absolute dependency-cache source path. Relative
// paths point at local or standard-library sources and are already
// short, so they pass through untouched. An absolute path is cut
// strictly after the first whole component whose name starts with
// marker; absolute paths without such a component also pass through.
// cleanPath is total and idempotent.
func cleanPath(p, marker string) string {
	if !filepath.IsAbs(p) {
		return p
	}
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if part != "" && strings.HasPrefix(part, marker) {
			return strings.Join(parts[i+1:], "/")
		}
	}
	return p
}
