package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/domain/storage"
)

// FragmentCreateParams configures creating a fragment through the API.
type FragmentCreateParams struct {
	Title   string
	Content string
}

// Fragments provides fragment query and creation operations.
type Fragments struct {
	store     fragment.Store
	relations fragment.RelationStore
	logger    *slog.Logger
}

// NewFragments creates a Fragments service.
func NewFragments(store fragment.Store, relations fragment.RelationStore, logger *slog.Logger) *Fragments {
	return &Fragments{
		store:     store,
		relations: relations,
		logger:    logger,
	}
}

// List returns a page of fragments in identity order plus the total count.
func (s *Fragments) List(ctx context.Context, limit, offset int) ([]fragment.Fragment, int64, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count fragments: %w", err)
	}

	options := []storage.Option{storage.WithOrderAsc("id")}
	options = append(options, storage.WithPagination(limit, offset)...)

	fragments, err := s.store.Find(ctx, options...)
	if err != nil {
		return nil, 0, fmt.Errorf("list fragments: %w", err)
	}
	return fragments, total, nil
}

// Get returns the fragment with the given identity.
func (s *Fragments) Get(ctx context.Context, id int64) (fragment.Fragment, error) {
	f, err := s.store.FindOne(ctx, storage.WithID(id))
	if err != nil {
		return fragment.Fragment{}, fmt.Errorf("get fragment %d: %w", id, err)
	}
	return f, nil
}

// Create stores a new fragment. The title is required; the identity is
// store-assigned.
func (s *Fragments) Create(ctx context.Context, params FragmentCreateParams) (fragment.Fragment, error) {
	if strings.TrimSpace(params.Title) == "" {
		return fragment.Fragment{}, ErrTitleRequired
	}

	created, err := s.store.Create(ctx, fragment.New(params.Title, params.Content))
	if err != nil {
		return fragment.Fragment{}, fmt.Errorf("create fragment: %w", err)
	}

	s.logger.Info("fragment created",
		slog.Int64("fragment_id", created.ID()),
		slog.String("title", created.Title()),
	)
	return created, nil
}

// Relations returns every relation touching the given fragment, in either
// direction. Rows stored as two-way count once from each endpoint.
func (s *Fragments) Relations(ctx context.Context, id int64) ([]fragment.Relation, error) {
	if _, err := s.store.FindOne(ctx, storage.WithID(id)); err != nil {
		return nil, fmt.Errorf("get fragment %d: %w", id, err)
	}

	relations, err := s.relations.Find(ctx, fragment.WithEndpoint(id))
	if err != nil {
		return nil, fmt.Errorf("list relations for fragment %d: %w", id, err)
	}
	return relations, nil
}
