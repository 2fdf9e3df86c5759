package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/quicktest/internal/config"
	"github.com/toyz/quicktest/internal/models"
	"github.com/toyz/quicktest/internal/utils"
)

func TestScaffoldWatcher_ScaffoldsNewSources(t *testing.T) {
	s := newSolution(t)
	writeFile(t, s.unitTarget, "// already scaffolded")

	jobs := make(chan ScaffoldJob, 4)
	watcher, err := NewScaffoldWatcher(
		filepath.Join(s.root, "Shop"),
		s.root,
		models.ScaffoldUnit,
		NewSourceScanner(config.Default()),
		func(job ScaffoldJob) error {
			jobs <- job
			return nil
		},
		utils.NewSilentDiagnostics(),
	)
	require.NoError(t, err)
	watcher.Debounce = 20 * time.Millisecond
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Watch(ctx) }()
	time.Sleep(100 * time.Millisecond)

	// Existing counterpart: ignored.
	writeFile(t, s.service, orderServiceSource+"\n")

	billing := filepath.Join(s.root, "Shop", "Billing")
	require.NoError(t, os.Mkdir(billing, 0755))
	time.Sleep(100 * time.Millisecond)

	created := filepath.Join(billing, "Invoice.cs")
	writeFile(t, created, orderSource)

	select {
	case job := <-jobs:
		assert.Equal(t, created, job.Source)
		assert.Equal(t, filepath.Join(s.root, "Shop.Unit.Tests", "Billing", "InvoiceTests.cs"), job.Target)
	case <-time.After(5 * time.Second):
		t.Fatal("no scaffold job for the new source")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
