package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeZip creates a zip file at path with the given member names and
// contents.
func writeZip(t *testing.T, path string, members map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.zip"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
}

func TestOpen_NotZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
}

func TestAttachments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.zip")
	writeZip(t, path, map[string]string{
		"files/a.png":        "png-bytes",
		"files/docs/b.pdf":   "pdf-bytes",
		"rdb-dump.xml":       "<rdb-dump/>",
		"unrelated/skip.txt": "ignored",
	})

	ar, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = ar.Close() }()

	seen := map[string]string{}
	err = ar.Attachments(func(name string, r io.Reader) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		seen[name] = string(data)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"files/a.png":      "png-bytes",
		"files/docs/b.pdf": "pdf-bytes",
	}, seen)
}

func TestManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.zip")
	writeZip(t, path, map[string]string{"rdb-dump.xml": "<rdb-dump/>"})

	ar, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = ar.Close() }()

	rc, ok, err := ar.Manifest()
	require.NoError(t, err)
	require.True(t, ok)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<rdb-dump/>", string(data))
}

func TestManifest_Absent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.zip")
	writeZip(t, path, map[string]string{"files/a.png": "bytes"})

	ar, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = ar.Close() }()

	_, ok, err := ar.Manifest()
	require.NoError(t, err)
	assert.False(t, ok)
}
