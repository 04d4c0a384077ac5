package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragbase/fragbase/domain/tag"
	"github.com/fragbase/fragbase/internal/database"
	"gorm.io/gorm"
)

// TaggingStore implements tag.TaggingStore using GORM.
type TaggingStore struct {
	database.Repository[tag.Tagging, TaggingModel]
}

// NewTaggingStore creates a new TaggingStore.
func NewTaggingStore(db database.Database) TaggingStore {
	return TaggingStore{
		Repository: database.NewRepository[tag.Tagging, TaggingModel](db, TaggingMapper{}, "tagging"),
	}
}

// Upsert inserts the tagging unless a row with the same (tag, target id,
// target kind) triple already exists.
func (s TaggingStore) Upsert(ctx context.Context, g tag.Tagging) error {
	return s.UpsertIn(s.DB(ctx), g)
}

// UpsertIn runs Upsert inside the given session. Every tagging column is
// part of the natural key, so "overwrite non-key fields" degenerates to a
// no-op when the row exists.
func (s TaggingStore) UpsertIn(tx *gorm.DB, g tag.Tagging) error {
	model := s.Mapper().ToModel(g)

	var existing TaggingModel
	err := tx.Where("tag_id = ? AND target_id = ? AND target_type = ?",
		model.TagID, model.TargetID, model.TargetType).First(&existing).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if result := tx.Create(&model); result.Error != nil {
			return fmt.Errorf("insert tagging (%d,%d,%d): %w",
				model.TagID, model.TargetID, model.TargetType, result.Error)
		}
		return nil
	default:
		return fmt.Errorf("find tagging (%d,%d,%d): %w",
			model.TagID, model.TargetID, model.TargetType, err)
	}
}
