package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sveltepatch/pkg/config"
	"github.com/yaklabco/sveltepatch/pkg/fsutil"
	"github.com/yaklabco/sveltepatch/pkg/runner"
)

func TestRun_CheckOnly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.svelte":        component,
		"lib/Button.svelte": plain,
	})

	result, err := newRunner(t).Run(context.Background(), runner.Options{WorkingDir: root})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Equal(t, 0, result.Stats.FilesWritten)
	assert.Equal(t, 1, result.Stats.ImportsRewritten)
	assert.True(t, result.HasChanges())
	assert.True(t, result.Pending())

	app := result.Files[0]
	require.NoError(t, app.Error)
	assert.Equal(t, filepath.Join(root, "App.svelte"), app.Path)
	assert.Equal(t, patched, string(app.Result.ModifiedContent))
	require.NotNil(t, app.Result.Diff)
	assert.Contains(t, app.Result.Diff.String(), `+import Close from "@paulpopa/icons/Close.js"`)
	assert.Equal(t, "changes pending", app.Result.Summary())

	assert.Equal(t, component, readFile(t, filepath.Join(root, "App.svelte")))
	assert.Equal(t, "ok", result.Files[1].Result.Summary())
}

func TestRun_Write(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"App.svelte": component})
	path := filepath.Join(root, "App.svelte")

	opts := runner.Options{WorkingDir: root, Pipeline: runner.PipelineOptions{Write: true, Backup: true}}
	result, err := newRunner(t).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesWritten)
	assert.False(t, result.Pending())
	assert.True(t, result.Files[0].Result.BackupCreated)
	assert.Equal(t, patched, readFile(t, path))
	assert.Equal(t, component, readFile(t, fsutil.BackupPath(path)))

	// A second run finds nothing left to rewrite.
	result, err = newRunner(t).Run(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, result.HasChanges())
	assert.Equal(t, patched, readFile(t, path))
}

func TestRestore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"App.svelte": component, "lib/Plain.svelte": plain})
	path := filepath.Join(root, "App.svelte")

	opts := runner.Options{WorkingDir: root, Pipeline: runner.PipelineOptions{Write: true, Backup: true}}
	_, err := newRunner(t).Run(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, patched, readFile(t, path))

	restored, err := runner.Restore(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, restored)
	assert.Equal(t, component, readFile(t, path))
	assert.NoFileExists(t, fsutil.BackupPath(path))

	restored, err = runner.Restore(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, restored)
}

func TestRun_DryRunWinsOverWrite(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"App.svelte": component})

	opts := runner.Options{WorkingDir: root, Pipeline: runner.PipelineOptions{Write: true, DryRun: true}}
	result, err := newRunner(t).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Equal(t, 0, result.Stats.FilesWritten)
	assert.Equal(t, component, readFile(t, filepath.Join(root, "App.svelte")))
}

func TestRun_ErrorsDoNotStopOtherFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"A.svelte": broken,
		"B.svelte": component,
	})

	opts := runner.Options{WorkingDir: root, Jobs: 1, Pipeline: runner.PipelineOptions{Write: true}}
	result, err := newRunner(t).Run(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.True(t, result.HasErrors())
	require.ErrorIs(t, result.Files[0].Error, runner.ErrPatchFailure)
	assert.True(t, runner.IsPipelineError(result.Files[0].Error))
	assert.True(t, result.Files[1].Result.Written)
	assert.Equal(t, broken, readFile(t, filepath.Join(root, "A.svelte")))
}

func TestRun_DeterministicOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	files := map[string]string{}
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, name := range names {
		files[name+".svelte"] = component
	}
	writeTree(t, root, files)

	result, err := newRunner(t).Run(context.Background(), runner.Options{WorkingDir: root, Jobs: 4})
	require.NoError(t, err)

	require.Len(t, result.Files, len(names))
	for i, name := range names {
		assert.Equal(t, filepath.Join(root, name+".svelte"), result.Files[i].Path)
		assert.Equal(t, patched, string(result.Files[i].Result.ModifiedContent))
	}
	assert.Equal(t, len(names), result.Stats.ImportsRewritten)
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	result, err := newRunner(t).Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasChanges())
}

func TestPipeline_MissingFile(t *testing.T) {
	t.Parallel()

	proc, err := runner.ProcessorFromConfig(nil)
	require.NoError(t, err)

	_, err = runner.NewPipeline(proc).ProcessFile(context.Background(),
		filepath.Join(t.TempDir(), "missing.svelte"), runner.PipelineOptions{})
	require.ErrorIs(t, err, runner.ErrFileNotFound)
}

func TestPipeline_ProcessContentVendored(t *testing.T) {
	t.Parallel()

	proc, err := runner.ProcessorFromConfig(nil)
	require.NoError(t, err)

	res, err := runner.NewPipeline(proc).ProcessContent(context.Background(),
		"node_modules/pkg/App.svelte", []byte(component))
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.False(t, res.Modified)
	assert.Equal(t, "skipped: vendored file", res.Summary())
}

func TestProcessorFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Packages = []string{"@acme/icons"}
	cfg.Extension = ".mjs"
	proc, err := runner.ProcessorFromConfig(cfg)
	require.NoError(t, err)

	res, err := runner.NewPipeline(proc).ProcessContent(context.Background(), "App.svelte",
		[]byte("<script>import {A} from \"@acme/icons\";</script>"))
	require.NoError(t, err)
	assert.Equal(t, "<script>import A from \"@acme/icons/A.mjs\";</script>", string(res.ModifiedContent))

	cfg.Strategy = "fastest"
	_, err = runner.ProcessorFromConfig(cfg)
	require.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"dist/**"}
	cfg.Jobs = 3
	cfg.Write = true
	cfg.Backups.Enabled = true
	cfg.NoBackups = true

	opts := runner.OptionsFromConfig(cfg, []string{"src"})
	assert.Equal(t, []string{"src"}, opts.Paths)
	assert.Equal(t, []string{".svelte"}, opts.Extensions)
	assert.Equal(t, []string{"dist/**"}, opts.ExcludeGlobs)
	assert.Equal(t, 3, opts.Jobs)
	assert.Equal(t, runner.PipelineOptions{Write: true}, opts.Pipeline)
}
