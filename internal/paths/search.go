package paths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Build output folders never hold source files worth navigating to.
var skippedDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	".git":         true,
	".vs":          true,
	"node_modules": true,
}

// IsSkippedDir reports whether a directory name is build output or tooling
// state that never holds navigable sources.
func IsSkippedDir(name string) bool {
	return skippedDirs[name]
}

// SearchFile walks root looking for a file named fileName (case-insensitive)
// and returns the first match in lexical walk order.
func SearchFile(root, fileName string) (string, bool, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtrees are skipped, not fatal.
			return fs.SkipDir
		}
		if d.IsDir() {
			if path != root && skippedDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if strings.EqualFold(d.Name(), fileName) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return found, found != "", nil
}

// HasMarker reports whether dir directly contains a file matching any glob
func HasMarker(dir string, markers []string) bool {
	for _, marker := range markers {
		matches, err := filepath.Glob(filepath.Join(dir, marker))
		if err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}

// FindAncestorWithMarker returns the nearest directory at or above start that
// contains a file matching one of markers.
func FindAncestorWithMarker(start string, markers []string) (string, bool) {
	dir := filepath.Clean(start)
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if HasMarker(dir, markers) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
