package extractor

import (
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

// ExtractDependencies returns the parameters of the public constructor with
// the most parameters (first wins on ties).
//
// Parenthesis balancing is naive: parentheses inside string literals or
// comments can end a match early or make it run long.
func ExtractDependencies(content, className string) []models.Dependency {
	deps := make([]models.Dependency, 0)
	if className == "" {
		return deps
	}

	signature := "public " + className + "("
	lines := strings.Split(content, "\n")

	var best []models.Dependency
	bestFound := false

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.Contains(line, signature) {
			continue
		}

		collected := []string{line[strings.Index(line, signature):]}
		balance := strings.Count(collected[0], "(") - strings.Count(collected[0], ")")
		for balance > 0 && i+1 < len(lines) {
			i++
			next := strings.TrimSpace(lines[i])
			collected = append(collected, next)
			balance += strings.Count(next, "(") - strings.Count(next, ")")
		}

		params, ok := firstParenGroup(strings.Join(collected, " "))
		if !ok {
			continue
		}

		current := dependenciesFrom(params)
		if !bestFound || len(current) > len(best) {
			best = current
			bestFound = true
		}
	}

	if best != nil {
		deps = append(deps, best...)
	}
	return deps
}

func dependenciesFrom(rawParams string) []models.Dependency {
	deps := make([]models.Dependency, 0)
	for _, param := range ParseParameters(rawParams) {
		deps = append(deps, models.NewDependency(param.Type, param.Name, DefaultLiteral(param.Type)))
	}
	return deps
}

// firstParenGroup returns the text inside the first balanced (...) pair
func firstParenGroup(text string) (string, bool) {
	start := strings.Index(text, "(")
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return text[start+1 : i], true
			}
		}
	}
	return "", false
}
