package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveAndSweep(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir)
	ctx := context.Background()

	oldPath, err := store.Save(ctx, "20240101/old.pdf", "application/pdf", []byte("%PDF-old"))
	require.NoError(t, err)
	newPath, err := store.Save(ctx, "20240102/new.pdf", "application/pdf", []byte("%PDF-new"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20240101", "old.pdf"), oldPath)

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	removed, err := store.Sweep(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, newPath)
	assert.NoDirExists(t, filepath.Join(dir, "20240101"))
	assert.DirExists(t, filepath.Join(dir, "20240102"))
	assert.DirExists(t, dir)
}

func TestLocal_SaveStaysInsideBaseDir(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(filepath.Join(dir, "uploads"))

	p, err := store.Save(context.Background(), "../../escape.pdf", "application/pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "uploads", "escape.pdf"), p)
}

func TestLocal_SweepMissingDir(t *testing.T) {
	store := NewLocal(filepath.Join(t.TempDir(), "nope"))

	removed, err := store.Sweep(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}
