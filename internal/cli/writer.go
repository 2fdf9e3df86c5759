package cli

import (
	"os"
	"path/filepath"

	qterrors "github.com/toyz/quicktest/internal/errors"
)

// writeScaffold creates path with content. Existing files are kept unless force is set.
func writeScaffold(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return qterrors.Newf(qterrors.FileSystemErrorCode, "'%s' already exists", path).
				WithLocation(qterrors.SourceLocation{File: path}).
				WithSuggestion("pass --force to overwrite it")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return qterrors.WrapFileSystemError("create directory for", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return qterrors.WrapFileSystemError("write", path, err)
	}
	return nil
}
