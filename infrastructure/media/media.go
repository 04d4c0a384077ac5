// Package media stores attachment payloads extracted from import archives.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirectoryStore writes attachments into a flat directory. Only the base
// name of an archive entry is used, so nested archive paths cannot escape
// the directory; entries sharing a base name overwrite each other.
type DirectoryStore struct {
	dir string
}

// NewDirectoryStore creates a store rooted at dir, creating it if needed.
func NewDirectoryStore(dir string) (*DirectoryStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &DirectoryStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *DirectoryStore) Dir() string {
	return s.dir
}

// Save writes the payload under the base name of the given entry name,
// replacing any existing file.
func (s *DirectoryStore) Save(name string, r io.Reader) error {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return fmt.Errorf("save attachment: invalid name %q", name)
	}

	f, err := os.Create(filepath.Join(s.dir, base))
	if err != nil {
		return fmt.Errorf("save attachment %s: %w", base, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("save attachment %s: %w", base, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save attachment %s: %w", base, err)
	}
	return nil
}
