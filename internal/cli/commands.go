package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/paths"
	"github.com/toyz/quicktest/internal/templates"
	"gopkg.in/yaml.v3"
)

func (a *App) newMapCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "map <file>",
		Short: "Print the counterpart path of a file for a scaffold kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := absFile(args[0])
			if err != nil {
				return err
			}
			parsed, err := parseKind(kind)
			if err != nil {
				return err
			}

			target, err := a.mapTarget(file, parsed, "")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Unit.Tests, Integration.Tests or Original")
	return cmd
}

func (a *App) newGenerateCmd() *cobra.Command {
	var (
		kind   string
		target string
		write  bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Render a scaffold for a file and print or write it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := absFile(args[0])
			if err != nil {
				return err
			}
			parsed, err := parseKind(kind)
			if err != nil {
				return err
			}
			targetPath, err := a.mapTarget(file, parsed, target)
			if err != nil {
				return err
			}

			content, err := a.service.Generate(file, targetPath, string(parsed))
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(a.stdout, content)
				return nil
			}
			if err := writeScaffold(targetPath, content, force); err != nil {
				return err
			}
			a.diagnostics.Success("Created %s", targetPath)
			fmt.Fprintln(a.stdout, targetPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Unit.Tests, Integration.Tests or Original")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target path (default: mapped from the file)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the scaffold to the target path")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing target")
	return cmd
}

func (a *App) newNavigateCmd() *cobra.Command {
	var (
		kind   string
		create bool
	)

	cmd := &cobra.Command{
		Use:   "navigate <file>",
		Short: "Locate the counterpart of a file, optionally creating it",
		Long: `navigate prints the counterpart of a file for a scaffold kind. When the
mapped path does not exist the target project folder is searched for a file
with the same name. With --create a missing counterpart is generated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := absFile(args[0])
			if err != nil {
				return err
			}
			parsed, err := parseKind(kind)
			if err != nil {
				return err
			}
			target, err := a.mapTarget(file, parsed, "")
			if err != nil {
				return err
			}

			if _, err := os.Stat(target); err == nil {
				fmt.Fprintln(a.stdout, target)
				return nil
			}

			if found, ok := a.searchFallback(file, target, parsed.PathSuffix()); ok {
				a.diagnostics.Warn("%s does not exist, found %s instead", target, found)
				fmt.Fprintln(a.stdout, found)
				return nil
			}

			if !create {
				return qterrors.Newf(qterrors.FileSystemErrorCode, "'%s' does not exist", target).
					WithLocation(qterrors.SourceLocation{File: target}).
					WithSuggestion("pass --create to generate it")
			}

			content, err := a.service.Generate(file, target, string(parsed))
			if err != nil {
				return err
			}
			if err := writeScaffold(target, content, false); err != nil {
				return err
			}
			a.diagnostics.Success("Created %s", target)
			fmt.Fprintln(a.stdout, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Unit.Tests, Integration.Tests or Original")
	cmd.Flags().BoolVar(&create, "create", false, "generate the counterpart when it cannot be found")
	return cmd
}

// searchFallback looks for the target file name anywhere under the target project folder
func (a *App) searchFallback(file, target, suffix string) (string, bool) {
	base, err := a.resolveBase(file)
	if err != nil {
		return "", false
	}
	folder, ok := paths.ProjectFolder(file, base, suffix)
	if !ok {
		return "", false
	}

	found, ok, err := paths.SearchFile(folder, filepath.Base(target))
	if err != nil {
		a.diagnostics.Verbose("Search under %s failed: %v", folder, err)
		return "", false
	}
	return found, ok
}

func (a *App) newInspectCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the structure extracted from a source file as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := absFile(args[0])
			if err != nil {
				return err
			}
			targetPath := file
			if target != "" {
				if targetPath, err = filepath.Abs(target); err != nil {
					return err
				}
			}

			ctx, err := a.service.Inspect(file, targetPath)
			if err != nil {
				return err
			}

			encoder := yaml.NewEncoder(a.stdout)
			encoder.SetIndent(2)
			if err := encoder.Encode(ctx); err != nil {
				return fmt.Errorf("failed to encode context: %w", err)
			}
			return encoder.Close()
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "path whose project determines the namespace (default: the file itself)")
	return cmd
}

func (a *App) newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := templates.NewRegistry(a.config.Templates.Dir, a.diagnostics)
			for _, name := range registry.Names() {
				tmpl, err := registry.Load(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%-26s %s\n", name, tmpl.Metadata.Description)
			}
			return nil
		},
	}
}
