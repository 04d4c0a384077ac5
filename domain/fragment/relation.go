package fragment

// Relation is a directed edge between two fragments, keyed by the
// (parent, child) pair. A bidirectional relation is stored as a single edge
// with the flag set; readers treat it as traversable in both directions
// rather than materialising a reverse edge.
type Relation struct {
	parentID      int64
	childID       int64
	priority      int
	bidirectional bool
}

// NewRelation creates a Relation between two fragments.
func NewRelation(parentID, childID int64, priority int, bidirectional bool) Relation {
	return Relation{
		parentID:      parentID,
		childID:       childID,
		priority:      priority,
		bidirectional: bidirectional,
	}
}

// ParentID returns the parent fragment identity.
func (r Relation) ParentID() int64 { return r.parentID }

// ChildID returns the child fragment identity.
func (r Relation) ChildID() int64 { return r.childID }

// Priority returns the ordering priority among siblings.
func (r Relation) Priority() int { return r.priority }

// Bidirectional returns true when the edge is traversable both ways.
func (r Relation) Bidirectional() bool { return r.bidirectional }

// Involves returns true when the given fragment is either endpoint.
func (r Relation) Involves(fragmentID int64) bool {
	return r.parentID == fragmentID || r.childID == fragmentID
}
