// Package generator orchestrates extraction, test suggestion and template
// rendering for each scaffold kind.
package generator

import (
	"time"

	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/extractor"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/suggest"
	"github.com/toyz/quicktest/internal/templates"
	"github.com/toyz/quicktest/internal/utils"
)

// Service dispatches scaffold requests to the generator for their kind
type Service struct {
	extractor   extractor.Extractor
	generators  map[models.ScaffoldKind]ContentGenerator
	recorder    Recorder
	diagnostics *utils.DiagnosticSystem
}

// Option customizes a Service
type Option func(*Service)

// WithRecorder reports every request to r
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithGenerator registers or replaces the generator for kind
func WithGenerator(kind models.ScaffoldKind, g ContentGenerator) Option {
	return func(s *Service) {
		s.generators[kind] = g
	}
}

// NewService wires the builtin generators for every scaffold kind
func NewService(ext extractor.Extractor, renderer templates.Renderer, diagnostics *utils.DiagnosticSystem, opts ...Option) *Service {
	if diagnostics == nil {
		diagnostics = utils.NewSilentDiagnostics()
	}
	engine := suggest.NewEngine(diagnostics)

	s := &Service{
		extractor: ext,
		generators: map[models.ScaffoldKind]ContentGenerator{
			models.ScaffoldUnit:        NewUnitTestGenerator(engine, renderer),
			models.ScaffoldIntegration: NewIntegrationTestGenerator(engine, renderer),
			models.ScaffoldOriginal:    NewOriginalGenerator(renderer),
		},
		recorder:    noopRecorder{},
		diagnostics: diagnostics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns the scaffold text for a kind token such as "Unit.Tests"
func (s *Service) Generate(originalFilePath, targetFilePath, kind string) (string, error) {
	arguments := []struct{ name, value string }{
		{"originalFilePath", originalFilePath},
		{"targetFilePath", targetFilePath},
		{"kind", kind},
	}
	for _, arg := range arguments {
		if err := utils.NotEmpty(arg.name)(arg.value); err != nil {
			return "", qterrors.PreconditionError(arg.name).WithCause(err)
		}
	}

	parsed, ok := models.ParseScaffoldKind(kind)
	if !ok {
		return "", qterrors.UnknownKindError(kind, s.kindNames())
	}

	scaffold, err := s.Scaffold(originalFilePath, targetFilePath, parsed)
	if err != nil {
		return "", err
	}
	return scaffold.Content, nil
}

// Scaffold runs the full pipeline for one file
func (s *Service) Scaffold(originalFilePath, targetFilePath string, kind models.ScaffoldKind) (scaffold *models.GeneratedScaffold, err error) {
	start := time.Now()
	defer func() {
		s.recorder.ObserveScaffold(kind, err, time.Since(start))
	}()

	generator, ok := s.generators[kind]
	if !ok {
		return nil, qterrors.UnknownKindError(string(kind), s.kindNames())
	}

	ctx, err := s.extractor.Extract(originalFilePath, targetFilePath)
	if err != nil {
		return nil, err
	}
	if kind == models.ScaffoldOriginal {
		// The production class is named after the file being created. The
		// extracted context stays as returned; the rename lives on a copy.
		production := *ctx
		production.ClassName = extractor.ClassNameFromPath(targetFilePath)
		ctx = &production
	}

	s.diagnostics.Debug("Generating %s scaffold for %s (%s)", kind, ctx.ClassName, ctx.ClassKind)

	content, err := generator.GenerateContent(ctx)
	if err != nil {
		return nil, err
	}

	return &models.GeneratedScaffold{
		Kind:       kind,
		SourcePath: originalFilePath,
		TargetPath: targetFilePath,
		Content:    content,
		Context:    ctx,
	}, nil
}

// Inspect returns the extracted context without rendering anything
func (s *Service) Inspect(originalFilePath, targetFilePath string) (*models.SourceContext, error) {
	return s.extractor.Extract(originalFilePath, targetFilePath)
}

// kindNames lists registered kinds in canonical order
func (s *Service) kindNames() []string {
	names := make([]string, 0, len(s.generators))
	for _, kind := range models.AllScaffoldKinds {
		if _, ok := s.generators[kind]; ok {
			names = append(names, string(kind))
		}
	}
	return names
}
