// Package extractor recovers a structural model of a C#-style source file
// from raw text using line and regex heuristics. Malformed or unreadable
// input never fails extraction; affected fields fall back to empty values.
package extractor

import (
	"path/filepath"
	"strings"

	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/utils"
)

// DefaultProjectMarkers identify the root folder of a project
var DefaultProjectMarkers = []string{"*.csproj"}

// HeuristicExtractor is the regex-based Extractor implementation
type HeuristicExtractor struct {
	reader      *utils.SourceReader
	diagnostics *utils.DiagnosticSystem
	markers     []string
	analyzer    SourceAnalyzer
}

// NewExtractor creates an extractor using the default project markers
func NewExtractor(diagnostics *utils.DiagnosticSystem) *HeuristicExtractor {
	return NewExtractorWithMarkers(diagnostics, DefaultProjectMarkers)
}

// NewExtractorWithMarkers creates an extractor with custom project marker globs
func NewExtractorWithMarkers(diagnostics *utils.DiagnosticSystem, markers []string) *HeuristicExtractor {
	if diagnostics == nil {
		diagnostics = utils.NewSilentDiagnostics()
	}
	if len(markers) == 0 {
		markers = DefaultProjectMarkers
	}
	return &HeuristicExtractor{
		reader:      utils.NewSourceReader(),
		diagnostics: diagnostics,
		markers:     markers,
		analyzer:    NewRegexAnalyzer(),
	}
}

// Extract implements Extractor. Only empty path arguments are errors.
func (e *HeuristicExtractor) Extract(originalFilePath, targetFilePath string) (*models.SourceContext, error) {
	if err := utils.NotEmpty("originalFilePath")(originalFilePath); err != nil {
		return nil, qterrors.PreconditionError("originalFilePath").WithCause(err)
	}
	if err := utils.NotEmpty("targetFilePath")(targetFilePath); err != nil {
		return nil, qterrors.PreconditionError("targetFilePath").WithCause(err)
	}

	className := ClassNameFromPath(originalFilePath)

	content, err := e.reader.Read(originalFilePath)
	if err != nil {
		e.diagnostics.Verbose("Could not read %s, continuing with an empty context: %v", originalFilePath, err)
		content = ""
	}

	ctx := e.analyzer.Analyze(content, className)
	ctx.Namespace = DiscoverNamespace(targetFilePath, e.markers)
	if ctx.Namespace == "" {
		e.diagnostics.Verbose("No project marker found above %s; namespace left empty", targetFilePath)
	}

	e.diagnostics.Debug("Extracted %s: kind=%s dependencies=%d methods=%d properties=%d",
		className, ctx.ClassKind, len(ctx.Dependencies), len(ctx.Methods), len(ctx.Properties))

	return ctx, nil
}

// ClassNameFromPath returns the file name without its extension
func ClassNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RegexAnalyzer is the heuristic SourceAnalyzer
type RegexAnalyzer struct{}

// NewRegexAnalyzer creates the heuristic analyzer
func NewRegexAnalyzer() *RegexAnalyzer {
	return &RegexAnalyzer{}
}

// Analyze runs every sub-extraction over content. Each one degrades
// independently to an empty value when nothing matches.
func (a *RegexAnalyzer) Analyze(content, className string) *models.SourceContext {
	ctx := &models.SourceContext{
		ClassName:       className,
		Imports:         ExtractImports(content),
		ClassKind:       Classify(content, className),
		Dependencies:    ExtractDependencies(content, className),
		Methods:         ExtractMethods(content, className),
		Properties:      ExtractProperties(content),
		ClassAttributes: ExtractClassAttributes(content, className),
	}

	for i := range ctx.Methods {
		ctx.Methods[i].BodyPatterns = DetectBodyPatterns(content, ctx.Methods[i].Name)
		ctx.Methods[i].SuggestedTestNames = SuggestTestNames(ctx.Methods[i])
	}

	return ctx
}
