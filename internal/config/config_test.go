package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/utils"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*.csproj"}, cfg.ProjectMarkers)
	assert.Equal(t, []string{"*.sln"}, cfg.SolutionMarkers)
	assert.Equal(t, []string{".cs"}, cfg.SourceExtensions)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Equal(t, "127.0.0.1:8085", cfg.Server.Addr)
	assert.Empty(t, cfg.Templates.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	p := writeConfig(t, dir, "quicktest.yaml", `
log_level: debug
templates:
  dir: templates
project_markers: ["*.csproj", "*.vbproj"]
batch:
  concurrency: 8
`)

	cfg, err := LoadFile(p)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, utils.DiagnosticDebug, cfg.DiagnosticLevel())
	assert.Equal(t, filepath.Join(dir, "templates"), cfg.Templates.Dir)
	assert.Equal(t, []string{"*.csproj", "*.vbproj"}, cfg.ProjectMarkers)
	assert.Equal(t, []string{"*.sln"}, cfg.SolutionMarkers)
	assert.Equal(t, []string{".cs"}, cfg.SourceExtensions)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, "127.0.0.1:8085", cfg.Server.Addr)
	assert.Equal(t, p, cfg.Path)
}

func TestLoadFile_TOML(t *testing.T) {
	dir := t.TempDir()
	absTemplates := filepath.Join(dir, "shared")
	p := writeConfig(t, dir, ".quicktest.toml", `
log_level = "warn"
source_extensions = [".cs", ".vb"]

[templates]
dir = "`+filepath.ToSlash(absTemplates)+`"

[server]
addr = "127.0.0.1:9000"
`)

	cfg, err := LoadFile(p)
	require.NoError(t, err)

	assert.Equal(t, utils.DiagnosticWarn, cfg.DiagnosticLevel())
	assert.Equal(t, []string{".cs", ".vb"}, cfg.SourceExtensions)
	assert.Equal(t, filepath.ToSlash(absTemplates), filepath.ToSlash(cfg.Templates.Dir))
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		contains []string
	}{
		{"bad yaml", "bad.yaml", "log_level: [debug", []string{"failed to parse configuration"}},
		{"bad toml", "bad.toml", "log_level = ", []string{"failed to parse configuration"}},
		{"unsupported extension", "quicktest.json", "{}", []string{"unsupported config format"}},
		{
			name:    "invalid values",
			file:    "invalid.yml",
			content: "log_level: loud\nproject_markers: [\"[\"]\nsource_extensions: [cs]\nbatch:\n  concurrency: 0\nserver:\n  addr: \" \"\n",
			contains: []string{
				"multiple errors (5 total)",
				"log_level",
				"project_markers[0]",
				"source_extensions[0]",
				"batch.concurrency",
				"server.addr",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeConfig(t, dir, tt.file, tt.content)

			_, err := LoadFile(p)
			require.Error(t, err)
			assert.Equal(t, qterrors.ConfigurationErrorCode, qterrors.CodeOf(err))
			for _, fragment := range tt.contains {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, qterrors.ConfigurationErrorCode, qterrors.CodeOf(err))
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	_, ok := Find(dir)
	assert.False(t, ok)

	tomlPath := writeConfig(t, dir, ".quicktest.toml", "")
	found, ok := Find(dir)
	require.True(t, ok)
	assert.Equal(t, tomlPath, found)

	yamlPath := writeConfig(t, dir, "quicktest.yaml", "")
	found, _ = Find(dir)
	assert.Equal(t, yamlPath, found)
}

func TestLoad_ExplicitPath(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "custom.yml", "log_level: quiet\n")

	_, err := Load(p)
	assert.Error(t, err)
}

func TestHasSourceExtension(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.HasSourceExtension("Order.cs"))
	assert.True(t, cfg.HasSourceExtension("Order.CS"))
	assert.False(t, cfg.HasSourceExtension("Order.csproj"))
	assert.False(t, cfg.HasSourceExtension("README"))
}
