package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
}

func TestListMatchesPlainFilesOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "db-20251027.sql.gz", "db-20251001.sql.gz", "readme.txt", "notes.sql.gz")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old-20250101.sql.gz"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	touch(t, filepath.Join(dir, "nested"), "db-20240101.sql.gz")

	names, err := New().List(context.Background(), dir, "*.sql.gz")
	require.NoError(t, err)
	assert.Equal(t, []string{"db-20251001.sql.gz", "db-20251027.sql.gz", "notes.sql.gz"}, names)
}

func TestListSkipsSymlinkToDirectory(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	if err := os.Symlink(target, filepath.Join(dir, "link-20250101.sql.gz")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	touch(t, dir, "db-20250101.sql.gz")

	names, err := New().List(context.Background(), dir, "*.sql.gz")
	require.NoError(t, err)
	assert.Equal(t, []string{"db-20250101.sql.gz"}, names)
}

func TestListNoMatchIsEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.txt")

	names, err := New().List(context.Background(), dir, "*.sql.gz")
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := New().List(context.Background(), filepath.Join(t.TempDir(), "absent"), "*")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListNotADirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "file")

	_, err := New().List(context.Background(), filepath.Join(dir, "file"), "*")
	assert.ErrorIs(t, err, ErrNotDir)
}

func TestListBadPattern(t *testing.T) {
	_, err := New().List(context.Background(), t.TempDir(), "[")
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "db-20240101.sql.gz")
	path := filepath.Join(dir, "db-20240101.sql.gz")

	removed, err := New().Remove(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.NoFileExists(t, path)

	removed, err = New().Remove(context.Background(), path)
	require.NoError(t, err, "already gone is not an error")
	assert.False(t, removed)
}

func TestRetry(t *testing.T) {
	old := retryBase
	retryBase = time.Millisecond
	t.Cleanup(func() { retryBase = old })

	t.Run("transient then success", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), "op", func() error {
			calls++
			if calls < 3 {
				return syscall.EBUSY
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent fails at once", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), "op", func() error {
			calls++
			return syscall.EACCES
		})
		require.ErrorIs(t, err, syscall.EACCES)
		assert.Equal(t, 1, calls)
	})

	t.Run("budget exhausted", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), "op", func() error {
			calls++
			return syscall.EAGAIN
		})
		require.ErrorIs(t, err, syscall.EAGAIN)
		assert.Equal(t, retryAttempts, calls)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := retry(ctx, "op", func() error { return errors.New("unreachable") })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
