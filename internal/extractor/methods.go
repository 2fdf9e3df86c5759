package extractor

import (
	"regexp"
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

// methodPattern matches block-bodied and expression-bodied method
// declarations. Groups: 1 inline attributes, 2 visibility and modifiers,
// 3 return type, 4 name, 5 raw parameters.
var methodPattern = regexp.MustCompile(
	`(?m)^[ \t]*((?:\[[^\]\n]*\][ \t]*)*)` +
		`((?:public|internal)(?:\s+(?:static|virtual|override|abstract|sealed|new|extern|unsafe|partial|async))*)\s+` +
		`([A-Za-z_][\w.]*(?:<[\w\s<>,.?\[\]()]*>)?(?:\[[\s,]*\])*\??|\([^()\n]*\))\s+` +
		`([A-Za-z_]\w*)\s*(?:<[\w\s,]*>)?\s*` +
		`\(([^)]*)\)\s*(?:where\s[^{;]*?)?(?:\{|=>)`)

var asyncModifier = regexp.MustCompile(`\basync\b`)

// ExtractMethods returns the public and internal methods declared in content,
// skipping constructors and property accessor methods.
func ExtractMethods(content, className string) []models.Method {
	methods := make([]models.Method, 0)
	lines := strings.Split(content, "\n")

	for _, match := range methodPattern.FindAllStringSubmatchIndex(content, -1) {
		name := content[match[8]:match[9]]
		if name == className || strings.HasPrefix(name, "get_") || strings.HasPrefix(name, "set_") {
			continue
		}

		modifiers := content[match[4]:match[5]]
		rawReturn := content[match[6]:match[7]]
		rawParams := content[match[10]:match[11]]
		if typeKeywords[rawReturn] {
			continue
		}

		attributes := precedingAttributes(lines, lineIndexAt(content, match[0]))
		if inline := strings.TrimSpace(content[match[2]:match[3]]); inline != "" {
			attributes = append(attributes, inline)
		}

		methods = append(methods, models.Method{
			Name:               name,
			ReturnType:         NormalizeReturnType(rawReturn),
			Parameters:         collapseWhitespace(rawParams),
			ParameterList:      ParseParameters(rawParams),
			IsAsync:            asyncModifier.MatchString(modifiers) || isTaskType(rawReturn),
			Attributes:         attributes,
			SuggestedTestNames: make([]string, 0),
		})
	}
	return methods
}

// NormalizeReturnType unwraps Task<T> and ValueTask<T> to T and maps a bare
// Task or ValueTask to void. Other types pass through unchanged.
func NormalizeReturnType(returnType string) string {
	rt := strings.TrimSpace(returnType)
	for _, wrapper := range []string{"Task", "ValueTask"} {
		for _, qualified := range []string{wrapper, "System.Threading.Tasks." + wrapper} {
			if rt == qualified {
				return "void"
			}
			prefix := qualified + "<"
			if strings.HasPrefix(rt, prefix) && strings.HasSuffix(rt, ">") {
				return strings.TrimSpace(rt[len(prefix) : len(rt)-1])
			}
		}
	}
	return rt
}

func isTaskType(returnType string) bool {
	return NormalizeReturnType(returnType) != strings.TrimSpace(returnType)
}

// lineIndexAt returns the zero-based line number containing offset
func lineIndexAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n")
}
