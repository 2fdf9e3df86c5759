package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/quicktest/internal/annotations"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/suggest"
	"github.com/toyz/quicktest/internal/templates"
)

// Namespace prefixes that belong to test tooling, not production code
var testNamespacePrefixes = []string{
	"Microsoft.VisualStudio.TestTools",
	"NUnit",
	"Xunit",
	"NSubstitute",
	"Moq",
	"FluentAssertions",
	"AutoFixture",
}

// Attributes marking a test method across MSTest, NUnit and xUnit
var testMethodAttributes = []string{"TestMethod", "DataTestMethod", "Test", "TestCase", "Fact", "Theory"}

// OriginalGenerator renders a production class skeleton from a test file
type OriginalGenerator struct {
	renderer   templates.Renderer
	attributes *annotations.ParticipleParser
}

// NewOriginalGenerator creates the Original generator
func NewOriginalGenerator(renderer templates.Renderer) *OriginalGenerator {
	return &OriginalGenerator{
		renderer:   renderer,
		attributes: annotations.NewParticipleParser(),
	}
}

// GenerateContent implements ContentGenerator. ctx describes the test file,
// with ClassName already set to the production class name.
func (g *OriginalGenerator) GenerateContent(ctx *models.SourceContext) (string, error) {
	data := templates.RenderData{
		Scalars: map[string]string{
			templates.NamespaceKey:   ctx.Namespace,
			templates.ClassNameKey:   ctx.ClassName,
			templates.MethodStubsKey: methodStubs(g.ProductionMethods(ctx)),
		},
		Usings: productionUsings(ctx.Imports, ctx.Namespace),
	}
	return g.renderer.Render(templates.OriginalTemplate, data)
}

// ProductionMethods returns the distinct leading tokens of the test methods
// in first-seen order. Methods without a test attribute only count when no
// method in the file carries one.
func (g *OriginalGenerator) ProductionMethods(ctx *models.SourceContext) []string {
	var tests []models.Method
	for _, method := range ctx.Methods {
		if g.isTestMethod(method) {
			tests = append(tests, method)
		}
	}
	if len(tests) == 0 {
		for _, method := range ctx.Methods {
			if strings.Contains(method.Name, "_") {
				tests = append(tests, method)
			}
		}
	}

	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, method := range tests {
		token := suggest.LeadingToken(method.Name)
		if token == "" || token == "Constructor" || seen[token] {
			continue
		}
		seen[token] = true
		names = append(names, token)
	}
	return names
}

func (g *OriginalGenerator) isTestMethod(method models.Method) bool {
	attrs, _ := g.attributes.ParseAll(method.Attributes)
	for _, name := range testMethodAttributes {
		if annotations.HasAttribute(attrs, name) {
			return true
		}
	}
	return false
}

func methodStubs(names []string) string {
	blocks := make([]string, 0, len(names))
	for _, name := range names {
		blocks = append(blocks, fmt.Sprintf(
			"        public void %s()\n        {\n            throw new NotImplementedException();\n        }", name))
	}
	return strings.Join(blocks, "\n\n")
}

// productionUsings drops test tooling and test project namespaces and makes
// sure System is present for NotImplementedException.
func productionUsings(imports []string, namespace string) []string {
	kept := make([]string, 0, len(imports))
	for _, u := range imports {
		if u == namespace || isTestNamespace(u) {
			continue
		}
		kept = append(kept, u)
	}
	return mergeUsings(kept, []string{"System"})
}

func isTestNamespace(namespace string) bool {
	for _, prefix := range testNamespacePrefixes {
		if namespace == prefix || strings.HasPrefix(namespace, prefix+".") {
			return true
		}
	}
	return strings.HasSuffix(namespace, ".Tests") || strings.Contains(namespace, ".Tests.")
}
