package extractor

import (
	"regexp"
	"strings"
)

var classDeclPattern = regexp.MustCompile(
	`(?m)^[ \t]*((?:\[[^\]\n]*\][ \t]*)*)(?:(?:public|internal|private|protected|static|sealed|abstract|partial|file|unsafe)\s+)*(?:class|record)\s+([A-Za-z_]\w*)`)

// precedingAttributes returns the verbatim attribute lines directly above
// line index decl, in source order. Comment lines between attributes are
// skipped; any other line ends the run.
func precedingAttributes(lines []string, decl int) []string {
	var attrs []string
	for i := decl - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "//") {
			continue
		}
		if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
			break
		}
		attrs = append(attrs, trimmed)
	}

	for l, r := 0, len(attrs)-1; l < r; l, r = l+1, r-1 {
		attrs[l], attrs[r] = attrs[r], attrs[l]
	}
	if attrs == nil {
		attrs = make([]string, 0)
	}
	return attrs
}

// ExtractClassAttributes returns the attribute blocks preceding the class
// declaration named className, or the first class when none matches.
func ExtractClassAttributes(content, className string) []string {
	match := findClassDeclaration(content, className)
	if match == nil {
		return make([]string, 0)
	}

	attrs := precedingAttributes(strings.Split(content, "\n"), lineIndexAt(content, match[0]))
	if inline := strings.TrimSpace(content[match[2]:match[3]]); inline != "" {
		attrs = append(attrs, inline)
	}
	return attrs
}

// findClassDeclaration returns submatch indices for the class declaration
func findClassDeclaration(content, className string) []int {
	matches := classDeclPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}
	for _, match := range matches {
		if content[match[4]:match[5]] == className {
			return match
		}
	}
	return matches[0]
}
