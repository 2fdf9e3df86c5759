package generator

import (
	"sort"

	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/suggest"
	"github.com/toyz/quicktest/internal/templates"
)

// Namespaces every generated test class relies on
var testFrameworkUsings = []string{
	"Microsoft.VisualStudio.TestTools.UnitTesting",
	"NSubstitute",
	"System",
	"System.Threading.Tasks",
}

// TestClassGenerator renders a unit or integration test class
type TestClassGenerator struct {
	kind     models.ScaffoldKind
	template string
	engine   *suggest.Engine
	renderer templates.Renderer
}

// NewUnitTestGenerator creates the Unit.Tests generator
func NewUnitTestGenerator(engine *suggest.Engine, renderer templates.Renderer) *TestClassGenerator {
	return &TestClassGenerator{
		kind:     models.ScaffoldUnit,
		template: templates.UnitTestTemplate,
		engine:   engine,
		renderer: renderer,
	}
}

// NewIntegrationTestGenerator creates the Integration.Tests generator
func NewIntegrationTestGenerator(engine *suggest.Engine, renderer templates.Renderer) *TestClassGenerator {
	return &TestClassGenerator{
		kind:     models.ScaffoldIntegration,
		template: templates.IntegrationTestTemplate,
		engine:   engine,
		renderer: renderer,
	}
}

// GenerateContent implements ContentGenerator
func (g *TestClassGenerator) GenerateContent(ctx *models.SourceContext) (string, error) {
	data := templates.RenderData{
		Scalars: map[string]string{
			templates.NamespaceKey: ctx.Namespace,
			templates.ClassNameKey: ctx.ClassName,
		},
		Usings:       mergeUsings(ctx.Imports, testFrameworkUsings),
		Dependencies: ctx.Dependencies,
		Tests:        g.engine.Suggest(ctx, g.kind),
	}
	return g.renderer.Render(g.template, data)
}

// mergeUsings returns the sorted union of both lists
func mergeUsings(lists ...[]string) []string {
	seen := make(map[string]bool)
	merged := make([]string, 0)
	for _, list := range lists {
		for _, u := range list {
			if u == "" || seen[u] {
				continue
			}
			seen[u] = true
			merged = append(merged, u)
		}
	}
	sort.Strings(merged)
	return merged
}
