package extractor

import (
	"path/filepath"
	"strings"

	"github.com/toyz/quicktest/internal/paths"
)

// DiscoverNamespace derives a namespace from the target file's directory. The
// deepest ancestor directory containing a project marker is the namespace
// root; the namespace is that folder's name plus every folder below it.
func DiscoverNamespace(targetFilePath string, markers []string) string {
	if targetFilePath == "" {
		return ""
	}

	dir := filepath.Dir(filepath.Clean(targetFilePath))
	var trail []string
	for {
		trail = append(trail, filepath.Base(dir))
		if paths.HasMarker(dir, markers) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}

	parts := make([]string, 0, len(trail))
	for i := len(trail) - 1; i >= 0; i-- {
		if part := strings.Trim(trail[i], string(filepath.Separator)); part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ".")
}
