package extractor

import "github.com/toyz/quicktest/internal/models"

// Extractor builds a SourceContext for a source file. The target path only
// contributes the namespace; everything else comes from the original file.
type Extractor interface {
	Extract(originalFilePath, targetFilePath string) (*models.SourceContext, error)
}

// SourceAnalyzer recovers structure from raw source text without touching the
// filesystem. Regex heuristics implement it today; a real parser can replace
// it without affecting callers of Extractor.
type SourceAnalyzer interface {
	Analyze(content, className string) *models.SourceContext
}
