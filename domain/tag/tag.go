// Package tag contains tags and their polymorphic assignments to targets.
package tag

// Tag is a named label. Imported tags keep the legacy dump's identifier as
// their identity, mirroring fragments, so taggings reference them stably
// across repeated imports.
type Tag struct {
	id                int64
	name              string
	descriptionFragID *int64
}

// New creates a Tag.
func New(id int64, name string, descriptionFragmentID *int64) Tag {
	return Tag{
		id:                id,
		name:              name,
		descriptionFragID: descriptionFragmentID,
	}
}

// ID returns the tag identity.
func (t Tag) ID() int64 { return t.id }

// Name returns the unique tag name.
func (t Tag) Name() string { return t.name }

// DescriptionFragmentID returns the fragment that documents this tag,
// or nil when the tag has no description.
func (t Tag) DescriptionFragmentID() *int64 { return t.descriptionFragID }
