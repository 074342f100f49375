package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sveltepatch/pkg/fsutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "App.svelte")
	writeFile(t, path, "<script></script>")

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "<script></script>", string(content))
	assert.Equal(t, path, info.Path)
	assert.EqualValues(t, len(content), info.Size)
	assert.NotEqual(t, [32]byte{}, info.Hash)
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(dir, "missing.svelte"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadFile(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fsutil.ReadFile(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "App.svelte")
	writeFile(t, path, "one")

	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	// Same size and mtime, different bytes: only the hash catches it.
	writeFile(t, path, "two")
	require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	require.NoError(t, os.Remove(path))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	_, err = fsutil.CheckModified(ctx, nil)
	require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}

func TestResetDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out", "fa")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, filepath.Join(dir, "Stale.js"), "x")

	require.NoError(t, fsutil.ResetDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.ErrorIs(t, fsutil.ResetDir(""), fsutil.ErrUnsafePath)
	require.ErrorIs(t, fsutil.ResetDir("/"), fsutil.ErrUnsafePath)
	require.ErrorIs(t, fsutil.ResetDir("."), fsutil.ErrUnsafePath)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "App.svelte")

	require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("first"), 0))
	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())

	require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("second"), 0o600))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	err = fsutil.WriteAtomic(ctx, filepath.Join(dir, "missing", "x.js"), []byte("x"), 0)
	require.Error(t, err)
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.js")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.True(t, written)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.False(t, written)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.WithinDuration(t, past, stat.ModTime(), time.Second)

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("b"), 0)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestBackups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "App.svelte")
	writeFile(t, path, "original")

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fsutil.BackupExists(path))
	assert.Equal(t, path+".sveltepatch.bak", fsutil.BackupPath(path))

	writeFile(t, path, "patched")
	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created, "an existing backup is never overwritten")

	restored, err := fsutil.RestoreBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.False(t, fsutil.BackupExists(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	restored, err = fsutil.RestoreBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, restored)

	created, err = fsutil.CreateBackup(ctx, filepath.Join(t.TempDir(), "missing.svelte"))
	require.NoError(t, err)
	assert.False(t, created)
}
