package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/paths"
	"github.com/toyz/quicktest/internal/utils"
)

const defaultWatchDebounce = 300 * time.Millisecond

// ScaffoldWatcher writes missing scaffolds for source files created under a directory
type ScaffoldWatcher struct {
	watcher     *fsnotify.Watcher
	rootDir     string
	baseDir     string
	kind        models.ScaffoldKind
	scanner     *SourceScanner
	create      func(job ScaffoldJob) error
	diagnostics *utils.DiagnosticSystem

	// Debounce lets editors finish writing a new file before it is read.
	Debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewScaffoldWatcher creates a watcher; create is called once per new source
func NewScaffoldWatcher(rootDir, baseDir string, kind models.ScaffoldKind, scanner *SourceScanner, create func(ScaffoldJob) error, diagnostics *utils.DiagnosticSystem) (*ScaffoldWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &ScaffoldWatcher{
		watcher:     watcher,
		rootDir:     rootDir,
		baseDir:     baseDir,
		kind:        kind,
		scanner:     scanner,
		create:      create,
		diagnostics: diagnostics,
		Debounce:    defaultWatchDebounce,
		pending:     make(map[string]*time.Timer),
	}, nil
}

// Watch blocks until ctx is cancelled or the watcher fails
func (w *ScaffoldWatcher) Watch(ctx context.Context) error {
	if err := w.addWatchersRecursively(w.rootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.diagnostics.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					if err := w.addWatchersRecursively(event.Name); err != nil {
						w.diagnostics.Warn("Cannot watch %s: %v", event.Name, err)
					}
					continue
				}
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				w.schedule(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.diagnostics.Error("Watcher error: %v", err)
		}
	}
}

// schedule debounces path and scaffolds it once writes settle
func (w *ScaffoldWatcher) schedule(path string) {
	target, ok := w.scanner.Candidate(path, w.baseDir, w.kind)
	if !ok || fileExists(target) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.pending[path]; exists {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(w.Debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if fileExists(target) {
			return
		}
		if err := w.create(ScaffoldJob{Source: path, Target: target}); err != nil {
			w.diagnostics.Error("Failed to scaffold %s: %v", path, err)
		}
	})
}

// Close stops pending timers and the underlying watcher
func (w *ScaffoldWatcher) Close() error {
	w.mu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *ScaffoldWatcher) addWatchersRecursively(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && paths.IsSkippedDir(d.Name()) {
			return filepath.SkipDir
		}

		w.diagnostics.Debug("Adding watcher for: %s", path)
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}
		return nil
	})
}

func (a *App) newWatchCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Scaffold new source files as they are created",
		Args:  cobra.ExactArgs(1),
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

			watcher, err := NewScaffoldWatcher(dir, base, parsed, NewSourceScanner(a.config), func(job ScaffoldJob) error {
				if err := a.scaffoldJob(job, parsed); err != nil {
					return err
				}
				a.diagnostics.Success("Created %s", job.Target)
				return nil
			}, a.diagnostics)
			if err != nil {
				return err
			}
			defer watcher.Close()

			ctx, stop := notifyContext(cmd.Context())
			defer stop()

			a.diagnostics.Info("Watching %s for new %s sources", dir, parsed)
			return watcher.Watch(ctx)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Unit.Tests, Integration.Tests or Original")
	return cmd
}
