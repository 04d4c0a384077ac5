package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fragbase/fragbase/domain/storage"
	"github.com/fragbase/fragbase/domain/tag"
)

// Tags provides tag query operations.
type Tags struct {
	store    tag.Store
	taggings tag.TaggingStore
	logger   *slog.Logger
}

// NewTags creates a Tags service.
func NewTags(store tag.Store, taggings tag.TaggingStore, logger *slog.Logger) *Tags {
	return &Tags{
		store:    store,
		taggings: taggings,
		logger:   logger,
	}
}

// List returns a page of tags in identity order plus the total count.
func (s *Tags) List(ctx context.Context, limit, offset int) ([]tag.Tag, int64, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count tags: %w", err)
	}

	options := []storage.Option{storage.WithOrderAsc("id")}
	options = append(options, storage.WithPagination(limit, offset)...)

	tags, err := s.store.Find(ctx, options...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tags: %w", err)
	}
	return tags, total, nil
}

// Taggings returns every assignment of the given tag.
func (s *Tags) Taggings(ctx context.Context, tagID int64) ([]tag.Tagging, error) {
	if _, err := s.store.FindOne(ctx, storage.WithID(tagID)); err != nil {
		return nil, fmt.Errorf("get tag %d: %w", tagID, err)
	}

	taggings, err := s.taggings.Find(ctx, tag.WithTagID(tagID))
	if err != nil {
		return nil, fmt.Errorf("list taggings for tag %d: %w", tagID, err)
	}
	return taggings, nil
}
