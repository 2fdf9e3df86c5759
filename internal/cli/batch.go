package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/models"
	"golang.org/x/sync/errgroup"
)

// BatchResult summarizes one batch run
type BatchResult struct {
	Created []string
	Failed  int
}

func (a *App) newBatchCmd() *cobra.Command {
	var (
		kind  string
		write bool
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Scaffold every source file under a directory that has no counterpart yet",
		Long: `batch walks a directory and scaffolds every eligible source file whose
counterpart does not exist. Without --write the targets are only listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			parsed, err := parseKind(kind)
			if err != nil {
				return err
			}
			base, err := a.resolveBase(dir)
			if err != nil {
				return err
			}

			jobs, err := NewSourceScanner(a.config).Scan(dir, base, parsed)
			if err != nil {
				return qterrors.WrapFileSystemError("scan", dir, err)
			}
			if len(jobs) == 0 {
				a.diagnostics.Info("Every source under %s already has a %s counterpart", dir, parsed)
				return nil
			}

			if !write {
				for _, job := range jobs {
					fmt.Fprintln(a.stdout, job.Target)
				}
				return nil
			}

			result, err := a.runBatch(cmd, jobs, parsed)
			for _, path := range result.Created {
				fmt.Fprintln(a.stdout, path)
			}
			a.diagnostics.Summary("Batch complete", []string{"Created", "Failed"}, map[string]interface{}{
				"Created": len(result.Created),
				"Failed":  result.Failed,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Unit.Tests, Integration.Tests or Original")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the scaffolds instead of listing their targets")
	return cmd
}

// runBatch scaffolds jobs in parallel, bounded by the configured concurrency.
// One failing file does not stop the others; failures are collected.
func (a *App) runBatch(cmd *cobra.Command, jobs []ScaffoldJob, kind models.ScaffoldKind) (BatchResult, error) {
	var (
		mu     sync.Mutex
		result BatchResult
		errs   *qterrors.MultipleErrors
	)

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.config.Batch.Concurrency)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			err := a.scaffoldJob(job, kind)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				qterrors.AddToMultiple(&errs, qterrors.WrapGenerateError(string(kind), job.Source, err))
				return nil
			}
			result.Created = append(result.Created, job.Target)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("batch cancelled: %w", err)
	}

	sort.Strings(result.Created)
	return result, errs.ErrorOrNil()
}

func (a *App) scaffoldJob(job ScaffoldJob, kind models.ScaffoldKind) error {
	scaffold, err := a.service.Scaffold(job.Source, job.Target, kind)
	if err != nil {
		return err
	}
	if err := writeScaffold(job.Target, scaffold.Content, false); err != nil {
		return err
	}
	a.diagnostics.Verbose("Created %s", job.Target)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
