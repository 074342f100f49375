package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sveltepatch/pkg/runner"
)

func TestWatch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := newRunner(t)
	w, err := r.NewWatcher(ctx, runner.Options{
		WorkingDir: root,
		Pipeline:   runner.PipelineOptions{Write: true},
	})
	require.NoError(t, err)

	outcomes := make(chan runner.FileOutcome, 64)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(o runner.FileOutcome) {
			select {
			case outcomes <- o:
			default:
			}
		})
	}()

	path := filepath.Join(root, "App.svelte")
	require.NoError(t, os.WriteFile(path, []byte(component), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	deadline := time.After(10 * time.Second)
	written := false
	for !written {
		select {
		case o := <-outcomes:
			require.NoError(t, o.Error)
			assert.Equal(t, path, o.Path)
			written = o.Result.Written
		case <-deadline:
			t.Fatal("timed out waiting for the watcher to patch the file")
		}
	}

	assert.Equal(t, patched, readFile(t, path))

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := newRunner(t).NewWatcher(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"missing"},
	})
	require.Error(t, err)
}
