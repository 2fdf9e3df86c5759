// Package paths maps production source files to their test counterparts and back.
//
// The naming convention is folder based: a production project folder X has
// sibling test projects X.Unit.Tests and X.Integration.Tests, and a file
// Name.ext maps to NameTests.ext inside them.
package paths

import (
	"path/filepath"
	"strings"
)

// Project folder markers recognized when mapping back to production.
const (
	UnitTestsSuffix        = "Unit.Tests"
	IntegrationTestsSuffix = "Integration.Tests"
	testFileToken          = "Tests"
)

var projectSuffixes = []string{"." + UnitTestsSuffix, "." + IntegrationTestsSuffix}

// Map returns the path corresponding to currentPath for the given suffix.
// An empty targetSuffix maps back to the production file. The second return
// value is false when currentPath is not below baseDirectory or has no
// project folder segment.
func Map(currentPath, baseDirectory, targetSuffix string) (string, bool) {
	root, segments, ok := split(currentPath, baseDirectory)
	if !ok {
		return "", false
	}

	segments[0] = rewriteProjectFolder(segments[0], targetSuffix)
	last := len(segments) - 1
	segments[last] = rewriteFileName(segments[last], targetSuffix)

	return root + strings.Join(segments, string(filepath.Separator)), true
}

// ProjectFolder returns the absolute project folder currentPath maps into
// for targetSuffix. It is the search root for the fallback lookup.
func ProjectFolder(currentPath, baseDirectory, targetSuffix string) (string, bool) {
	root, segments, ok := split(currentPath, baseDirectory)
	if !ok {
		return "", false
	}
	return root + rewriteProjectFolder(segments[0], targetSuffix), true
}

// IsTestProject reports whether a project folder name carries a test suffix
func IsTestProject(folder string) bool {
	for _, suffix := range projectSuffixes {
		if strings.HasSuffix(folder, suffix) {
			return true
		}
	}
	return false
}

// split validates that currentPath lies under baseDirectory (case-insensitive)
// and returns the matched root prefix, including its trailing separator, and
// the relative segments.
func split(currentPath, baseDirectory string) (string, []string, bool) {
	if currentPath == "" || baseDirectory == "" {
		return "", nil, false
	}

	current := filepath.Clean(currentPath)
	prefix := filepath.Clean(baseDirectory)
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if len(current) <= len(prefix) || !strings.EqualFold(current[:len(prefix)], prefix) {
		return "", nil, false
	}

	segments := strings.Split(current[len(prefix):], string(filepath.Separator))
	if len(segments) < 2 {
		return "", nil, false
	}
	return current[:len(prefix)], segments, true
}

func rewriteProjectFolder(folder, targetSuffix string) string {
	for _, suffix := range projectSuffixes {
		if strings.HasSuffix(folder, suffix) {
			folder = strings.TrimSuffix(folder, suffix)
			break
		}
	}
	if targetSuffix != "" {
		folder += "." + targetSuffix
	}
	return folder
}

func rewriteFileName(name, targetSuffix string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(strings.TrimSuffix(name, ext), testFileToken)
	if targetSuffix != "" {
		base += testFileToken
	}
	return base + ext
}
