// Package suggest turns an extracted SourceContext into test names and
// arrange/act/assert stubs using ordered rule tables.
package suggest

import (
	"fmt"

	"github.com/toyz/quicktest/internal/annotations"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/utils"
)

// Engine produces the test list for unit and integration scaffolds
type Engine struct {
	attributes  *annotations.ParticipleParser
	diagnostics *utils.DiagnosticSystem
}

// NewEngine creates a suggestion engine
func NewEngine(diagnostics *utils.DiagnosticSystem) *Engine {
	if diagnostics == nil {
		diagnostics = utils.NewSilentDiagnostics()
	}
	return &Engine{
		attributes:  annotations.NewParticipleParser(),
		diagnostics: diagnostics,
	}
}

// UnitTestNames returns the classification names followed by every
// method's suggested names, without duplicates.
func (e *Engine) UnitTestNames(ctx *models.SourceContext) []string {
	names := newNameList()
	names.add(classificationNames(ctx.ClassKind, false)...)
	for _, method := range ctx.Methods {
		names.add(method.SuggestedTestNames...)
	}
	return names.withFloor(ctx.ClassName)
}

// IntegrationTestNames returns the classification names followed by an
// end-to-end test per method and one test per detected body pattern.
func (e *Engine) IntegrationTestNames(ctx *models.SourceContext) []string {
	names := newNameList()
	names.add(classificationNames(ctx.ClassKind, true)...)

	for _, method := range ctx.Methods {
		names.add(method.Name + endToEndSuffix)

		patterns := method.BodyPatterns
		if patterns.UsesDatabaseOperations {
			names.add(method.Name + databaseSuffix(method))
		}
		if patterns.PerformsValidation {
			names.add(method.Name + validationSuffix)
		}
		if patterns.HasExternalDependencies {
			names.add(method.Name + externalServiceSuffix)
		}
		if patterns.UsesFileOperations {
			names.add(method.Name + fileSystemSuffix)
		}

		if ctx.ClassKind == models.ClassKindController {
			if endpoint, ok := e.endpoint(method); ok {
				names.add(fmt.Sprintf("%s_When%sRequested_ReturnsSuccessStatus", method.Name, endpoint.Verb))
			}
		}
	}
	return names.withFloor(ctx.ClassName)
}

// Suggest returns the stubs for a test scaffold kind. Original scaffolds
// have no test methods and yield nil.
func (e *Engine) Suggest(ctx *models.SourceContext, kind models.ScaffoldKind) []models.TestMethodStub {
	var names []string
	switch kind {
	case models.ScaffoldUnit:
		names = e.UnitTestNames(ctx)
	case models.ScaffoldIntegration:
		names = e.IntegrationTestNames(ctx)
	default:
		return nil
	}

	stubs := BuildStubs(names, ctx.Methods)
	e.diagnostics.Debug("Suggested %d %s tests for %s (%s)", len(stubs), kind, ctx.ClassName, ctx.ClassKind)
	return stubs
}

// endpoint parses the method's attribute blocks for an HTTP verb attribute
func (e *Engine) endpoint(method models.Method) (annotations.HTTPEndpoint, bool) {
	if len(method.Attributes) == 0 {
		return annotations.HTTPEndpoint{}, false
	}
	attrs, skipped := e.attributes.ParseAll(method.Attributes)
	for _, block := range skipped {
		e.diagnostics.Debug("Skipping unparsable attribute block on %s: %s", method.Name, block)
	}
	return annotations.FindHTTPEndpoint(attrs)
}

// nameList is an insertion-ordered set of test names
type nameList struct {
	names []string
	seen  map[string]bool
}

func newNameList() *nameList {
	return &nameList{seen: make(map[string]bool)}
}

func (l *nameList) add(names ...string) {
	for _, name := range names {
		if name == "" || l.seen[name] {
			continue
		}
		l.seen[name] = true
		l.names = append(l.names, name)
	}
}

// withFloor guarantees at least one test per generated file
func (l *nameList) withFloor(className string) []string {
	if len(l.names) == 0 {
		return []string{className + basicFunctionality}
	}
	return l.names
}
