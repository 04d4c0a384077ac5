package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_Basename(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirectoryStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("files/docs/report.pdf", strings.NewReader("pdf")))

	data, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))

	// Nothing but the base name lands in the directory.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.pdf", entries[0].Name())
}

func TestSave_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirectoryStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("files/a.txt", strings.NewReader("first")))
	require.NoError(t, store.Save("files/nested/a.txt", strings.NewReader("second")))

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestNewDirectoryStore_Creates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "media")
	store, err := NewDirectoryStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
