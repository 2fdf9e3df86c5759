package extractor

import (
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

var parameterModifiers = map[string]bool{
	"this":     true,
	"in":       true,
	"scoped":   true,
	"readonly": true,
	"out":      true,
	"ref":      true,
	"params":   true,
}

// SplitTopLevel splits s on sep, ignoring separators nested inside
// (), <>, [] or {} pairs.
func SplitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '<', '[', '{':
			depth++
		case ')', '>', ']', '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + len(string(r))
			}
		}
	}
	return append(parts, s[start:])
}

// ParseParameters parses a raw parameter list such as
// "int id, out string error, params object[] args".
func ParseParameters(raw string) []models.Parameter {
	params := make([]models.Parameter, 0)
	if strings.TrimSpace(raw) == "" {
		return params
	}

	for _, piece := range SplitTopLevel(raw, ',') {
		if param, ok := parseParameter(piece); ok {
			params = append(params, param)
		}
	}
	return params
}

func parseParameter(piece string) (models.Parameter, bool) {
	text := stripAttributes(strings.TrimSpace(piece))

	// Drop default values: "int retries = 3" -> "int retries"
	if parts := SplitTopLevel(text, '='); len(parts) > 1 {
		text = parts[0]
	}

	fields := strings.Fields(text)
	var param models.Parameter
	for len(fields) > 0 && parameterModifiers[fields[0]] {
		switch fields[0] {
		case "out":
			param.IsOut = true
		case "ref":
			param.IsRef = true
		case "params":
			param.IsParams = true
		}
		fields = fields[1:]
	}

	if len(fields) < 2 {
		return models.Parameter{}, false
	}

	param.Type = strings.Join(fields[:len(fields)-1], " ")
	param.Name = strings.TrimPrefix(fields[len(fields)-1], "@")
	return param, true
}

// stripAttributes removes leading [Attribute] blocks from a parameter
func stripAttributes(text string) string {
	for strings.HasPrefix(text, "[") {
		depth := 0
		end := -1
		for i, r := range text {
			if r == '[' {
				depth++
			} else if r == ']' {
				depth--
				if depth == 0 {
					end = i
					break
				}
			}
		}
		if end < 0 {
			return text
		}
		text = strings.TrimSpace(text[end+1:])
	}
	return text
}

// collapseWhitespace joins multi-line parameter text onto one line
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
