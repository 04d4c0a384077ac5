// Package archive reads legacy export archives: zip containers holding
// binary attachments under a fixed prefix and, optionally, a single XML
// manifest of the exporting system's relational dump.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// AttachmentPrefix is the archive path prefix attachment members live
	// under.
	AttachmentPrefix = "files/"

	// ManifestName is the well-known name of the manifest member.
	ManifestName = "rdb-dump.xml"
)

// ErrUnreadable indicates the archive cannot be opened or is corrupt.
var ErrUnreadable = errors.New("archive unreadable")

// Archive is an open legacy export archive.
type Archive struct {
	reader *zip.ReadCloser
}

// Open opens the archive at path for reading. It fails with ErrUnreadable
// when the file is missing, not a zip container, or corrupt.
func Open(path string) (*Archive, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	return &Archive{reader: reader}, nil
}

// Close releases the archive.
func (a *Archive) Close() error {
	return a.reader.Close()
}

// Attachments calls fn once for every non-directory member under the
// attachment prefix, passing the member's full archive path and an open
// reader for its bytes. Iteration stops at the first error fn returns.
func (a *Archive) Attachments(fn func(name string, r io.Reader) error) error {
	for _, member := range a.reader.File {
		if !strings.HasPrefix(member.Name, AttachmentPrefix) {
			continue
		}
		if strings.HasSuffix(member.Name, "/") || member.FileInfo().IsDir() {
			continue
		}

		if err := a.copyMember(member, fn); err != nil {
			return err
		}
	}
	return nil
}

func (a *Archive) copyMember(member *zip.File, fn func(name string, r io.Reader) error) error {
	rc, err := member.Open()
	if err != nil {
		return fmt.Errorf("%w: member %s: %v", ErrUnreadable, member.Name, err)
	}
	defer func() { _ = rc.Close() }()

	return fn(member.Name, rc)
}

// Manifest returns a reader for the manifest member. The second return is
// false when the archive carries no manifest; that is not an error, the
// caller simply has nothing to reconcile.
func (a *Archive) Manifest() (io.ReadCloser, bool, error) {
	for _, member := range a.reader.File {
		if member.Name != ManifestName {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, false, fmt.Errorf("%w: member %s: %v", ErrUnreadable, member.Name, err)
		}
		return rc, true, nil
	}
	return nil, false, nil
}
