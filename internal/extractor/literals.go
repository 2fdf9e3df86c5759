package extractor

import "strings"

// defaultLiterals maps lower-cased type names to the literal used when a
// constructor argument is not substituted.
var defaultLiterals = map[string]string{
	"string":   `"test"`,
	"int":      "0",
	"int32":    "0",
	"long":     "0L",
	"int64":    "0L",
	"bool":     "false",
	"boolean":  "false",
	"decimal":  "0m",
	"double":   "0d",
	"float":    "0f",
	"datetime": "DateTime.Now",
	"guid":     "Guid.NewGuid()",
}

// DefaultLiteral returns the default literal for a type, "null" if unknown
func DefaultLiteral(typeName string) string {
	if literal, ok := defaultLiterals[strings.ToLower(strings.TrimSpace(typeName))]; ok {
		return literal
	}
	return "null"
}
