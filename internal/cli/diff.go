package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	qterrors "github.com/toyz/quicktest/internal/errors"
)

func (a *App) newDiffCmd() *cobra.Command {
	var (
		kind   string
		target string
	)

	cmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Show how an existing counterpart differs from a fresh scaffold",
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

			existing, err := os.ReadFile(targetPath)
			if err != nil {
				return qterrors.WrapFileSystemError("read", targetPath, err).
					WithSuggestion("run generate --write to create it first")
			}

			fresh, err := a.service.Generate(file, targetPath, string(parsed))
			if err != nil {
				return err
			}

			out, changed := lineDiff(string(existing), fresh)
			if !changed {
				a.diagnostics.Info("%s matches a fresh %s scaffold", targetPath, parsed)
				return nil
			}
			fmt.Fprintf(a.stdout, "--- %s\n+++ %s (generated)\n%s", targetPath, targetPath, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Unit.Tests, Integration.Tests or Original")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target path (default: mapped from the file)")
	return cmd
}

// lineDiff renders a line level diff of before and after, prefixing removed
// lines with "-", added lines with "+" and unchanged lines with a space.
func lineDiff(before, after string) (string, bool) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	changed := false
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, changed = "-", true
		case diffmatchpatch.DiffInsert:
			prefix, changed = "+", true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String(), changed
}
