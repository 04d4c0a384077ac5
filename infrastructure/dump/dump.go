// Package dump parses the legacy relational dump manifest: a well-formed
// XML document whose top-level children are flat attribute-only elements,
// one per record of the exporting system's tables.
package dump

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed indicates the manifest is not well-formed XML. There is no
// partial recovery: later import passes depend on the completeness of
// earlier ones, so a broken manifest aborts the whole reconciliation.
var ErrMalformed = errors.New("manifest malformed")

// Record is the flat attribute map of one manifest element.
type Record map[string]string

// Manifest is a fully parsed dump. Record slices are plain values, so every
// pass can iterate them from the start as often as it likes.
type Manifest struct {
	fragments []Record
	tags      []Record
	taggings  []Record
	relations []Record
}

// document mirrors the dump's top-level structure; the root element's own
// name does not matter, only the four known child kinds do.
type document struct {
	Fragments []element `xml:"fragment"`
	Tags      []element `xml:"tag"`
	Taggings  []element `xml:"tagging"`
	Relations []element `xml:"fragment_relation"`
}

type element struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// Parse reads and parses a manifest stream. It fails with ErrMalformed on
// any XML error.
func Parse(r io.Reader) (*Manifest, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &Manifest{
		fragments: toRecords(doc.Fragments),
		tags:      toRecords(doc.Tags),
		taggings:  toRecords(doc.Taggings),
		relations: toRecords(doc.Relations),
	}, nil
}

func toRecords(elements []element) []Record {
	records := make([]Record, len(elements))
	for i, el := range elements {
		rec := make(Record, len(el.Attrs))
		for _, attr := range el.Attrs {
			rec[attr.Name.Local] = attr.Value
		}
		records[i] = rec
	}
	return records
}

// Fragments returns the fragment records.
func (m *Manifest) Fragments() []Record { return m.fragments }

// Tags returns the tag records.
func (m *Manifest) Tags() []Record { return m.tags }

// Taggings returns the tagging records.
func (m *Manifest) Taggings() []Record { return m.taggings }

// Relations returns the fragment relation records.
func (m *Manifest) Relations() []Record { return m.relations }
