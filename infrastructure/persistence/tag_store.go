package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragbase/fragbase/domain/tag"
	"github.com/fragbase/fragbase/internal/database"
	"gorm.io/gorm"
)

// TagStore implements tag.Store using GORM.
type TagStore struct {
	database.Repository[tag.Tag, TagModel]
}

// NewTagStore creates a new TagStore.
func NewTagStore(db database.Database) TagStore {
	return TagStore{
		Repository: database.NewRepository[tag.Tag, TagModel](db, TagMapper{}, "tag"),
	}
}

// Upsert inserts the tag or overwrites the existing row with the same
// identity.
func (s TagStore) Upsert(ctx context.Context, t tag.Tag) error {
	return s.UpsertIn(s.DB(ctx), t)
}

// UpsertIn runs Upsert inside the given session.
func (s TagStore) UpsertIn(tx *gorm.DB, t tag.Tag) error {
	model := s.Mapper().ToModel(t)

	var existing TagModel
	err := tx.Where("id = ?", model.ID).First(&existing).Error
	switch {
	case err == nil:
		result := tx.Model(&TagModel{}).
			Where("id = ?", model.ID).
			Select("name", "description_fragment_id").
			Updates(&model)
		if result.Error != nil {
			return fmt.Errorf("update tag %d: %w", model.ID, result.Error)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if result := tx.Create(&model); result.Error != nil {
			return fmt.Errorf("insert tag %d: %w", model.ID, result.Error)
		}
		return nil
	default:
		return fmt.Errorf("find tag %d: %w", model.ID, err)
	}
}
