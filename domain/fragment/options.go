package fragment

import "github.com/fragbase/fragbase/domain/storage"

// WithCreatorID filters by the "creator_id" column.
func WithCreatorID(id int64) storage.Option {
	return storage.WithCondition("creator_id", id)
}

// WithOriginID filters by the "origin_id" column.
func WithOriginID(id int64) storage.Option {
	return storage.WithCondition("origin_id", id)
}

// WithParentID filters relations by the "parent_id" column.
func WithParentID(id int64) storage.Option {
	return storage.WithCondition("parent_id", id)
}

// WithChildID filters relations by the "child_id" column.
func WithChildID(id int64) storage.Option {
	return storage.WithCondition("child_id", id)
}

// WithEndpoint filters relations where the fragment is either endpoint.
// A bidirectional relation is a single stored edge, so readers that want
// "everything connected to this fragment" query both directions at once.
func WithEndpoint(fragmentID int64) storage.Option {
	return storage.WithWhere("parent_id = ? OR child_id = ?", fragmentID, fragmentID)
}
