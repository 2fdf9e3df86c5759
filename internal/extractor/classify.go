package extractor

import (
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

type kindRule struct {
	token string
	kind  models.ClassKind
}

// Inheritance clause tokens, checked in order. IRepository, IService and
// IValidator match through their unprefixed substrings.
var inheritanceRules = []kindRule{
	{"Controller", models.ClassKindController},
	{"Repository", models.ClassKindRepository},
	{"Service", models.ClassKindService},
	{"Validator", models.ClassKindValidator},
}

// Class name suffixes, checked in order when the clause is inconclusive.
var suffixRules = []kindRule{
	{"Controller", models.ClassKindController},
	{"Repository", models.ClassKindRepository},
	{"Service", models.ClassKindService},
	{"Validator", models.ClassKindValidator},
	{"Factory", models.ClassKindFactory},
	{"Provider", models.ClassKindProvider},
	{"Manager", models.ClassKindManager},
	{"Handler", models.ClassKindHandler},
}

// Classify infers the role of className from its inheritance clause, then
// from its name suffix.
func Classify(content, className string) models.ClassKind {
	clause := InheritanceClause(content, className)
	for _, rule := range inheritanceRules {
		if strings.Contains(clause, rule.token) {
			return rule.kind
		}
	}

	for _, rule := range suffixRules {
		if strings.HasSuffix(className, rule.token) {
			return rule.kind
		}
	}
	return models.ClassKindUnknown
}

// InheritanceClause returns the base type list following "class Name :",
// without generic constraints. Empty when the class has no base list.
func InheritanceClause(content, className string) string {
	match := findClassDeclaration(content, className)
	if match == nil {
		return ""
	}

	rest := content[match[1]:]
	if end := strings.IndexAny(rest, "{;"); end >= 0 {
		rest = rest[:end]
	}

	// Skip generic parameters and primary constructor parameters.
	depth := 0
	colon := -1
	for i, r := range rest {
		switch r {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ':':
			if depth == 0 && colon < 0 {
				colon = i
			}
		}
		if colon >= 0 {
			break
		}
	}
	if colon < 0 {
		return ""
	}

	clause := " " + collapseWhitespace(rest[colon+1:])
	if where := strings.Index(clause, " where "); where >= 0 {
		clause = clause[:where]
	}
	return strings.TrimSpace(clause)
}
