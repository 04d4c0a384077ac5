package tag

import (
	"context"

	"github.com/fragbase/fragbase/domain/storage"
)

// Store persists tags.
type Store interface {
	Find(ctx context.Context, options ...storage.Option) ([]Tag, error)
	FindOne(ctx context.Context, options ...storage.Option) (Tag, error)
	Count(ctx context.Context, options ...storage.Option) (int64, error)
	Upsert(ctx context.Context, t Tag) error
}

// TaggingStore persists tag assignments.
type TaggingStore interface {
	Find(ctx context.Context, options ...storage.Option) ([]Tagging, error)
	Count(ctx context.Context, options ...storage.Option) (int64, error)
	Upsert(ctx context.Context, g Tagging) error
}

// WithName filters by the "name" column.
func WithName(name string) storage.Option {
	return storage.WithCondition("name", name)
}

// WithTagID filters taggings by the "tag_id" column.
func WithTagID(id int64) storage.Option {
	return storage.WithCondition("tag_id", id)
}

// WithTarget filters taggings by the full polymorphic target.
func WithTarget(t Target) storage.Option {
	return storage.WithWhere("target_id = ? AND target_type = ?", t.ID(), int(t.Kind()))
}
