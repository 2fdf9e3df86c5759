package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceReader reads C# sources with line endings normalized to "\n".
// Every call reads the file again so each request sees the text on disk.
type SourceReader struct{}

func NewSourceReader() *SourceReader {
	return &SourceReader{}
}

// Read returns the normalized text of path. Empty paths, missing files and
// directories are errors.
func (r *SourceReader) Read(path string) (string, error) {
	if err := NotEmpty("path")(path); err != nil {
		return "", err
	}

	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("file does not exist: %s", clean)
	case err == nil && info.IsDir():
		return "", fmt.Errorf("path is a directory: %s", clean)
	}

	return readNormalized(clean)
}

func readNormalized(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}
