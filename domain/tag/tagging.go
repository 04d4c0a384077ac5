package tag

import "fmt"

// TargetKind discriminates what a tagging's target identity points at.
// The target id is meaningless on its own; every consumer must branch on
// the kind before dereferencing it.
type TargetKind int

// TargetKind values, fixed by the legacy dump format.
const (
	TargetTag      TargetKind = 1
	TargetFragment TargetKind = 2
)

// Valid returns true for a known discriminator value.
func (k TargetKind) Valid() bool {
	return k == TargetTag || k == TargetFragment
}

// String returns a readable name for the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetTag:
		return "tag"
	case TargetFragment:
		return "fragment"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Target is a polymorphic reference: an identity paired with the kind that
// tells which table the identity points into.
type Target struct {
	id   int64
	kind TargetKind
}

// NewTarget creates a Target.
func NewTarget(id int64, kind TargetKind) Target {
	return Target{id: id, kind: kind}
}

// ID returns the target identity. Interpret it only via Kind.
func (t Target) ID() int64 { return t.id }

// Kind returns the target kind discriminator.
func (t Target) Kind() TargetKind { return t.kind }

// TagID returns the referenced tag id and true when the target is a tag.
func (t Target) TagID() (int64, bool) {
	if t.kind == TargetTag {
		return t.id, true
	}
	return 0, false
}

// FragmentID returns the referenced fragment id and true when the target
// is a fragment.
func (t Target) FragmentID() (int64, bool) {
	if t.kind == TargetFragment {
		return t.id, true
	}
	return 0, false
}

// Tagging assigns a tag to a target. The natural key is the full
// (tag, target id, target kind) triple; assignments are never duplicated.
type Tagging struct {
	tagID  int64
	target Target
}

// NewTagging creates a Tagging.
func NewTagging(tagID int64, target Target) Tagging {
	return Tagging{tagID: tagID, target: target}
}

// TagID returns the assigned tag's identity.
func (g Tagging) TagID() int64 { return g.tagID }

// Target returns the polymorphic target reference.
func (g Tagging) Target() Target { return g.target }
