package templates

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/utils"
)

// Builtin template names
const (
	UnitTestTemplate        = "UnitTest.template"
	IntegrationTestTemplate = "IntegrationTest.template"
	OriginalTemplate        = "Original.template"
)

//go:embed builtin/*.template
var builtinFS embed.FS

const builtinDir = "builtin"

// Renderer renders a named template
type Renderer interface {
	Render(templateName string, data RenderData) (string, error)
}

// Registry resolves templates from an optional override directory first and
// the embedded builtin set second. Override files are cached and reloaded
// when their modification time or size changes.
type Registry struct {
	overrideDir string
	cache       *utils.FileCache[*Template]
	diagnostics *utils.DiagnosticSystem
}

// NewRegistry creates a registry; overrideDir may be empty
func NewRegistry(overrideDir string, diagnostics *utils.DiagnosticSystem) *Registry {
	if diagnostics == nil {
		diagnostics = utils.NewSilentDiagnostics()
	}
	return &Registry{
		overrideDir: overrideDir,
		cache:       utils.NewFileCache[*Template](),
		diagnostics: diagnostics,
	}
}

// Load returns the named template
func (r *Registry) Load(name string) (*Template, error) {
	if err := utils.NotEmpty("templateName")(name); err != nil {
		return nil, qterrors.PreconditionError("templateName").WithCause(err)
	}

	if r.overrideDir != "" {
		overridePath := filepath.Join(r.overrideDir, name)
		if info, err := os.Stat(overridePath); err == nil && !info.IsDir() {
			tmpl, err := r.cache.Load(overridePath, loadTemplateFile)
			if err != nil {
				return nil, qterrors.WrapTemplateError(name, "load", err)
			}
			r.diagnostics.Debug("Using template override %s", overridePath)
			return tmpl, nil
		}
	}

	data, err := fs.ReadFile(builtinFS, path.Join(builtinDir, name))
	if err != nil {
		return nil, qterrors.TemplateNotFoundError(name).WithCause(err)
	}
	tmpl, err := ParseTemplate("builtin", string(data))
	if err != nil {
		return nil, qterrors.WrapTemplateError(name, "parse", err)
	}
	return tmpl, nil
}

// Render implements Renderer
func (r *Registry) Render(templateName string, data RenderData) (string, error) {
	tmpl, err := r.Load(templateName)
	if err != nil {
		return "", err
	}
	return Expand(tmpl.Body, data), nil
}

// Names lists the builtin templates plus any *.template override files
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	if entries, err := fs.ReadDir(builtinFS, builtinDir); err == nil {
		for _, entry := range entries {
			seen[entry.Name()] = true
		}
	}
	if r.overrideDir != "" {
		if matches, err := filepath.Glob(filepath.Join(r.overrideDir, "*.template")); err == nil {
			for _, match := range matches {
				seen[filepath.Base(match)] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadTemplateFile(filePath string) (*Template, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ParseTemplate(filePath, strings.TrimPrefix(string(data), "\ufeff"))
}
