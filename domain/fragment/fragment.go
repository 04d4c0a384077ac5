// Package fragment contains the fragment aggregate: the unit of content in
// the knowledge base, plus the directed relation graph between fragments.
package fragment

import "time"

// Fragment is a single unit of content. Fragments imported from a legacy
// dump keep the dump's identifier as their primary identity so that relation
// references stay stable across repeated imports; fragments created through
// the API get a store-assigned identity instead.
type Fragment struct {
	id        int64
	title     string
	content   string
	createdAt *time.Time
	updatedAt *time.Time
	creatorID *int64
	originID  *int64
	fileName  string
}

// New creates a Fragment with no identity yet (assigned on save).
func New(title, content string) Fragment {
	return Fragment{
		title:   title,
		content: content,
	}
}

// NewImported creates a Fragment carrying a legacy identity. The origin id
// records provenance and always equals the legacy id.
func NewImported(legacyID int64, title, content string, createdAt, updatedAt *time.Time, creatorID *int64) Fragment {
	origin := legacyID
	return Fragment{
		id:        legacyID,
		title:     title,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
		creatorID: creatorID,
		originID:  &origin,
	}
}

// Reconstruct rebuilds a Fragment from persisted state.
func Reconstruct(id int64, title, content string, createdAt, updatedAt *time.Time, creatorID, originID *int64, fileName string) Fragment {
	return Fragment{
		id:        id,
		title:     title,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
		creatorID: creatorID,
		originID:  originID,
		fileName:  fileName,
	}
}

// ID returns the fragment identity.
func (f Fragment) ID() int64 { return f.id }

// Title returns the title (may be empty).
func (f Fragment) Title() string { return f.title }

// Content returns the content body (may be empty).
func (f Fragment) Content() string { return f.content }

// CreatedAt returns the creation time, or nil when unknown.
func (f Fragment) CreatedAt() *time.Time { return f.createdAt }

// UpdatedAt returns the last update time, or nil when unknown.
func (f Fragment) UpdatedAt() *time.Time { return f.updatedAt }

// CreatorID returns the creating user's identity, or nil for anonymous.
func (f Fragment) CreatorID() *int64 { return f.creatorID }

// OriginID returns the legacy identifier this fragment was imported from,
// or nil for fragments created directly.
func (f Fragment) OriginID() *int64 { return f.originID }

// FileName returns the attached file name, or empty when no attachment.
func (f Fragment) FileName() string { return f.fileName }

// IsImported returns true if the fragment came from a legacy dump.
func (f Fragment) IsImported() bool { return f.originID != nil }
