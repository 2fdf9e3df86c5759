package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

// Block placeholders expanded from RenderData collections
const (
	UsingsKey            = "usings"
	DependencySectionKey = "dependency_section"
	DependencyInitKey    = "dependencyInitSection"
	ConstructorParamsKey = "constructorParams"
	TestMethodsKey       = "testMethods"
)

// Scalar placeholders set by the generators
const (
	NamespaceKey   = "namespace"
	ClassNameKey   = "className"
	MethodStubsKey = "methodStubs"
)

const (
	memberIndent = "        "
	bodyIndent   = "            "
)

// RenderData is everything a template can reference
type RenderData struct {
	Scalars      map[string]string
	Usings       []string
	Dependencies []models.Dependency
	Tests        []models.TestMethodStub
}

// Expand substitutes scalars, expands the block placeholders and finally
// drops blank lines and lines still holding an unresolved placeholder.
func Expand(templateText string, data RenderData) string {
	text := templateText

	keys := make([]string, 0, len(data.Scalars))
	for key := range data.Scalars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		text = strings.ReplaceAll(text, "{{"+key+"}}", data.Scalars[key])
	}

	text = strings.ReplaceAll(text, "{{"+UsingsKey+"}}", usingsBlock(data.Usings))
	text = strings.ReplaceAll(text, "{{"+DependencySectionKey+"}}", dependencyFields(data.Dependencies))
	text = strings.ReplaceAll(text, "{{"+DependencyInitKey+"}}", dependencyInits(data.Dependencies))
	text = strings.ReplaceAll(text, "{{"+ConstructorParamsKey+"}}", constructorArguments(data.Dependencies))
	text = strings.ReplaceAll(text, "{{"+TestMethodsKey+"}}", testMethods(data.Tests))

	return cleanup(text)
}

func usingsBlock(usings []string) string {
	lines := make([]string, 0, len(usings))
	for _, u := range usings {
		lines = append(lines, "using "+u+";")
	}
	return strings.Join(lines, "\n")
}

func dependencyFields(deps []models.Dependency) string {
	var lines []string
	for _, dep := range deps {
		if dep.NeedsSubstitute {
			lines = append(lines, fmt.Sprintf("%sprivate %s _%s;", memberIndent, dep.InterfaceType, dep.Name))
		}
	}
	return strings.Join(lines, "\n")
}

func dependencyInits(deps []models.Dependency) string {
	var lines []string
	for _, dep := range deps {
		if dep.NeedsSubstitute {
			lines = append(lines, fmt.Sprintf("%s_%s = Substitute.For<%s>();", bodyIndent, dep.Name, dep.InterfaceType))
		}
	}
	return strings.Join(lines, "\n")
}

// constructorArguments passes substitutes by field and everything else by
// its default literal.
func constructorArguments(deps []models.Dependency) string {
	args := make([]string, 0, len(deps))
	for _, dep := range deps {
		if dep.NeedsSubstitute {
			args = append(args, "_"+dep.Name)
		} else {
			args = append(args, dep.DefaultValue)
		}
	}
	return strings.Join(args, ", ")
}

func testMethods(tests []models.TestMethodStub) string {
	var b strings.Builder
	for _, test := range tests {
		signature := "public void"
		if test.IsAsync {
			signature = "public async Task"
		}

		b.WriteString("\n")
		b.WriteString(memberIndent + "[TestMethod]\n")
		b.WriteString(fmt.Sprintf("%s%s %s()\n", memberIndent, signature, test.Name))
		b.WriteString(memberIndent + "{\n")
		writeSection(&b, "// Arrange", test.ArrangeCode)
		b.WriteString("\n")
		writeSection(&b, "// Act", test.ActCode)
		b.WriteString("\n")
		writeSection(&b, "// Assert", test.AssertCode)
		b.WriteString(memberIndent + "}\n")
	}
	return b.String()
}

func writeSection(b *strings.Builder, header, code string) {
	b.WriteString(bodyIndent + header + "\n")
	for _, line := range strings.Split(code, "\n") {
		b.WriteString(bodyIndent + line + "\n")
	}
}

// hasTemplateSyntax reports leftover braces, including malformed keys such as
// {{}} or an unterminated {{usings.
func hasTemplateSyntax(line string) bool {
	return strings.Contains(line, "{{") || strings.Contains(line, "}}")
}

// cleanup removes unresolved placeholder lines and blank lines
func cleanup(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || hasTemplateSyntax(line) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t"))
	}
	return strings.Join(kept, "\n") + "\n"
}
