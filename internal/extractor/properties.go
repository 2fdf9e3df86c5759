package extractor

import (
	"regexp"
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

var propertyPattern = regexp.MustCompile(
	`(?m)^[ \t]*(?:\[[^\]\n]*\][ \t]*)*(?:public|internal)\s+(?:(?:static|virtual|override|abstract|sealed|new|required|readonly)\s+)*` +
		`([A-Za-z_][\w.]*(?:<[\w\s<>,.?\[\]]*>)?(?:\[[\s,]*\])*\??|\([^()\n]*\))\s+` +
		`([A-Za-z_]\w*)\s*(?:\{\s*(?:get|set|init|private|protected|internal)\b|=>)`)

// Declaration keywords the loose type pattern can mistake for a property type.
var typeKeywords = map[string]bool{
	"class": true, "struct": true, "record": true, "interface": true,
	"enum": true, "event": true, "delegate": true,
}

var collectionTypes = []string{
	"IEnumerable", "ICollection", "IList", "List", "IReadOnlyList", "IReadOnlyCollection",
	"HashSet", "ISet", "Dictionary", "IDictionary", "IReadOnlyDictionary", "Collection",
}

// ExtractProperties returns public and internal property declarations
func ExtractProperties(content string) []models.Property {
	props := make([]models.Property, 0)
	for _, match := range propertyPattern.FindAllStringSubmatch(content, -1) {
		if typeKeywords[match[1]] {
			continue
		}
		props = append(props, models.Property{
			Name:         match[2],
			Type:         match[1],
			IsCollection: IsCollectionType(match[1]),
		})
	}
	return props
}

// IsCollectionType reports whether a type is an array or a known collection
func IsCollectionType(typeName string) bool {
	t := strings.TrimSuffix(strings.TrimSpace(typeName), "?")
	if strings.HasSuffix(t, "]") {
		return true
	}
	base := t
	if i := strings.Index(base, "<"); i >= 0 {
		base = base[:i]
	}
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[i+1:]
	}
	for _, candidate := range collectionTypes {
		if base == candidate {
			return true
		}
	}
	return false
}
