package suggest

import (
	"strings"

	"github.com/google/uuid"
)

// meaningfulLiterals favors non-zero, non-empty values so a failing
// generated test shows informative data. Keys are lower-cased.
var meaningfulLiterals = map[string]string{
	"string":            `"sample"`,
	"int":               "42",
	"int32":             "42",
	"long":              "42L",
	"int64":             "42L",
	"short":             "7",
	"int16":             "7",
	"byte":              "1",
	"bool":              "true",
	"boolean":           "true",
	"decimal":           "99.99m",
	"double":            "3.14d",
	"float":             "1.5f",
	"single":            "1.5f",
	"char":              "'a'",
	"datetime":          "new DateTime(2024, 1, 15)",
	"timespan":          "TimeSpan.FromMinutes(5)",
	"cancellationtoken": "CancellationToken.None",
}

// Generic interfaces and List<T> are arranged as an empty List<T>.
var listTypes = map[string]bool{
	"IEnumerable":         true,
	"ICollection":         true,
	"IList":               true,
	"IReadOnlyList":       true,
	"IReadOnlyCollection": true,
	"List":                true,
}

// MeaningfulLiteral returns the arrange value for a parameter. Guid values
// are derived from the parameter name so output is stable across runs.
func MeaningfulLiteral(typeName, paramName string) string {
	t := strings.TrimSuffix(strings.TrimSpace(typeName), "?")
	if t == "" {
		return "null"
	}

	if i := strings.Index(t, "[]"); i > 0 && strings.HasSuffix(t, "]") {
		return "new " + t[:i] + "[0]" + t[i+2:]
	}

	if open := strings.Index(t, "<"); open > 0 && strings.HasSuffix(t, ">") {
		if listTypes[unqualified(t[:open])] {
			return "new List" + t[open:] + "()"
		}
		return "null"
	}

	if strings.EqualFold(unqualified(t), "Guid") {
		return `Guid.Parse("` + uuid.NewSHA1(uuid.NameSpaceOID, []byte(paramName)).String() + `")`
	}

	if literal, ok := meaningfulLiterals[strings.ToLower(unqualified(t))]; ok {
		return literal
	}
	return "null"
}

// unqualified strips a namespace qualifier: System.String becomes String
func unqualified(typeName string) string {
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}
