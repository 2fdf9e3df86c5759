package extractor

import (
	"sort"
	"strings"
)

// ExtractImports collects using directives and the file's own namespace
// declaration, deduplicated and sorted.
func ExtractImports(content string) []string {
	seen := make(map[string]bool)
	imports := make([]string, 0)

	add := func(value string) {
		if value == "" || seen[value] {
			return
		}
		seen[value] = true
		imports = append(imports, value)
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "using ") && strings.HasSuffix(trimmed, ";"):
			directive := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "using "), ";"))
			// using var x = ...; and using (...) are statements, not directives
			if strings.HasPrefix(directive, "var ") || strings.HasPrefix(directive, "(") {
				continue
			}
			add(directive)
		case strings.HasPrefix(trimmed, "namespace "):
			ns := strings.TrimPrefix(trimmed, "namespace ")
			ns = strings.TrimSpace(strings.TrimRight(ns, "{; \t"))
			add(ns)
		}
	}

	sort.Strings(imports)
	return imports
}
