package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/quicktest/internal/config"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/paths"
)

// ScaffoldJob pairs a source file with the scaffold it is missing
type ScaffoldJob struct {
	Source string
	Target string
}

// SourceScanner finds source files whose counterpart for a kind does not exist
type SourceScanner struct {
	config *config.Config
}

// NewSourceScanner creates a new source scanner
func NewSourceScanner(cfg *config.Config) *SourceScanner {
	return &SourceScanner{config: cfg}
}

// Scan walks dir and returns a job for every eligible source without a target.
// Test kinds read production projects; Original reads test projects.
func (s *SourceScanner) Scan(dir, baseDir string, kind models.ScaffoldKind) ([]ScaffoldJob, error) {
	var jobs []ScaffoldJob
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && paths.IsSkippedDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		target, ok := s.Candidate(path, baseDir, kind)
		if !ok {
			return nil
		}
		if _, err := os.Stat(target); err == nil {
			return nil
		}
		jobs = append(jobs, ScaffoldJob{Source: path, Target: target})
		return nil
	})
	return jobs, err
}

// Candidate reports whether path is a source file kind can scaffold from and
// returns the mapped target.
func (s *SourceScanner) Candidate(path, baseDir string, kind models.ScaffoldKind) (string, bool) {
	if !s.config.HasSourceExtension(path) {
		return "", false
	}

	rel, err := filepath.Rel(baseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	folder := strings.Split(rel, string(filepath.Separator))[0]

	if kind.IsTest() {
		if paths.IsTestProject(folder) || !paths.HasMarker(filepath.Join(baseDir, folder), s.config.ProjectMarkers) {
			return "", false
		}
	} else {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if !paths.IsTestProject(folder) || !strings.HasSuffix(name, "Tests") {
			return "", false
		}
	}

	return paths.Map(path, baseDir, kind.PathSuffix())
}
