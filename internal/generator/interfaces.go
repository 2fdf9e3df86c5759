package generator

import (
	"time"

	"github.com/toyz/quicktest/internal/models"
)

// ContentGenerator renders one scaffold kind from an extracted context
type ContentGenerator interface {
	GenerateContent(ctx *models.SourceContext) (string, error)
}

// ScaffoldGenerator is the entry point used by the CLI and HTTP layers
type ScaffoldGenerator interface {
	Generate(originalFilePath, targetFilePath, kind string) (string, error)
	Scaffold(originalFilePath, targetFilePath string, kind models.ScaffoldKind) (*models.GeneratedScaffold, error)
	Inspect(originalFilePath, targetFilePath string) (*models.SourceContext, error)
}

// Recorder observes completed scaffold requests
type Recorder interface {
	ObserveScaffold(kind models.ScaffoldKind, err error, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveScaffold(models.ScaffoldKind, error, time.Duration) {}
