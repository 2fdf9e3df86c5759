// Package cli implements the quicktest command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/toyz/quicktest/internal/config"
	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/extractor"
	"github.com/toyz/quicktest/internal/generator"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/paths"
	"github.com/toyz/quicktest/internal/templates"
	"github.com/toyz/quicktest/internal/utils"
)

// Version is set at build time
var Version = "dev"

// App holds the state shared by every command
type App struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	baseDir    string
	verbose    bool
	quiet      bool

	config      *config.Config
	diagnostics *utils.DiagnosticSystem
	service     *generator.Service
}

// NewApp creates an App writing scaffolds to stdout and diagnostics to stderr
func NewApp(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr}
}

// Execute runs the command line against os.Args and returns the exit code
func Execute() int {
	return NewApp(os.Stdout, os.Stderr).Run(os.Args[1:])
}

// Run executes args and reports any failure, returning the process exit code
func (a *App) Run(args []string) int {
	root := a.RootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		NewDiagnosticReporter(a.stderr, a.verbose).ReportError(err)
		return 1
	}
	return 0
}

// RootCommand builds the command tree
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "quicktest",
		Short: "Scaffold MSTest unit and integration tests for C# classes",
		Long: `quicktest maps C# source files to their test counterparts and generates
test class scaffolds from the class structure.

Examples:
  quicktest map src/Shop/Services/OrderService.cs --kind Unit.Tests
  quicktest generate src/Shop/Services/OrderService.cs --kind unit --write
  quicktest navigate src/Shop.Unit.Tests/Services/OrderServiceTests.cs --kind Original --create
  quicktest batch src --kind Integration.Tests --write`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default quicktest.yaml, quicktest.yml or .quicktest.toml in the working directory)")
	flags.StringVar(&a.baseDir, "base", "", "solution directory (default: nearest ancestor with a solution file)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(
		a.newMapCmd(),
		a.newGenerateCmd(),
		a.newNavigateCmd(),
		a.newInspectCmd(),
		a.newDiffCmd(),
		a.newBatchCmd(),
		a.newWatchCmd(),
		a.newServeCmd(),
		a.newTemplatesCmd(),
	)
	return root
}

func (a *App) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg

	level := cfg.DiagnosticLevel()
	switch {
	case a.quiet:
		level = utils.DiagnosticError
	case a.verbose:
		level = utils.DiagnosticVerbose
	}
	a.diagnostics = utils.NewDiagnosticSystem(level)
	a.diagnostics.SetOutput(a.stderr, a.stderr)

	if cfg.Path != "" {
		a.diagnostics.Verbose("Loaded configuration from %s", cfg.Path)
	}

	a.service = a.newService()
	return nil
}

func (a *App) newService(opts ...generator.Option) *generator.Service {
	return generator.NewService(
		extractor.NewExtractorWithMarkers(a.diagnostics, a.config.ProjectMarkers),
		templates.NewRegistry(a.config.Templates.Dir, a.diagnostics),
		a.diagnostics,
		opts...,
	)
}

// resolveBase returns --base, else the nearest ancestor of path holding a
// solution marker, else the working directory.
func (a *App) resolveBase(path string) (string, error) {
	if a.baseDir != "" {
		return filepath.Abs(a.baseDir)
	}
	if dir, ok := paths.FindAncestorWithMarker(path, a.config.SolutionMarkers); ok {
		return dir, nil
	}
	return os.Getwd()
}

// mapTarget maps file to its counterpart for kind, or returns explicit when set
func (a *App) mapTarget(file string, kind models.ScaffoldKind, explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}

	base, err := a.resolveBase(file)
	if err != nil {
		return "", fmt.Errorf("cannot determine base directory: %w", err)
	}

	target, ok := paths.Map(file, base, kind.PathSuffix())
	if !ok {
		return "", unmappableError(file, base)
	}
	a.diagnostics.Debug("Mapped %s -> %s (base %s)", file, target, base)
	return target, nil
}

func unmappableError(file, base string) error {
	return qterrors.Newf(qterrors.FileSystemErrorCode, "'%s' is not inside a project folder under '%s'", file, base).
		WithLocation(qterrors.SourceLocation{File: file}).
		WithSuggestion("pass --base with the directory that contains the project folders")
}

func parseKind(value string) (models.ScaffoldKind, error) {
	if err := utils.NotEmpty("kind")(value); err != nil {
		return "", qterrors.PreconditionError("kind").
			WithCause(err).
			WithSuggestion("pass --kind Unit.Tests, Integration.Tests or Original")
	}
	kind, ok := models.ParseScaffoldKind(value)
	if !ok {
		names := make([]string, 0, len(models.AllScaffoldKinds))
		for _, k := range models.AllScaffoldKinds {
			names = append(names, string(k))
		}
		return "", qterrors.UnknownKindError(value, names)
	}
	return kind, nil
}

func absFile(arg string) (string, error) {
	if err := utils.NotEmpty("file")(arg); err != nil {
		return "", qterrors.PreconditionError("file").WithCause(err)
	}
	return filepath.Abs(arg)
}
