package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	t.Run("writes content under a new name", func(t *testing.T) {
		stored, err := store.Save(strings.NewReader("hello"), "report.pdf")
		require.NoError(t, err)
		assert.NotEqual(t, "report.pdf", stored)

		content, err := os.ReadFile(store.Path(stored))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("keeps the original extension", func(t *testing.T) {
		stored, err := store.Save(strings.NewReader("x"), "photo.JPG")
		require.NoError(t, err)
		assert.Equal(t, ".JPG", filepath.Ext(stored))
	})

	t.Run("same original name never collides", func(t *testing.T) {
		first, err := store.Save(strings.NewReader("a"), "doc.txt")
		require.NoError(t, err)
		second, err := store.Save(strings.NewReader("b"), "doc.txt")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestDiskStoreRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save(strings.NewReader("bye"), "note.txt")
	require.NoError(t, err)

	require.NoError(t, store.Remove(stored))
	_, statErr := os.Stat(store.Path(stored))
	assert.True(t, os.IsNotExist(statErr))

	t.Run("removing a missing file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Remove(stored))
	})
}

func TestNewDiskStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
