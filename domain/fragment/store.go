package fragment

import (
	"context"

	"github.com/fragbase/fragbase/domain/storage"
)

// Store persists fragments.
type Store interface {
	Find(ctx context.Context, options ...storage.Option) ([]Fragment, error)
	FindOne(ctx context.Context, options ...storage.Option) (Fragment, error)
	Count(ctx context.Context, options ...storage.Option) (int64, error)
	Create(ctx context.Context, f Fragment) (Fragment, error)
	Upsert(ctx context.Context, f Fragment) error
}

// RelationStore persists fragment relations.
type RelationStore interface {
	Find(ctx context.Context, options ...storage.Option) ([]Relation, error)
	Count(ctx context.Context, options ...storage.Option) (int64, error)
	Upsert(ctx context.Context, r Relation) error
}
