package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/internal/database"
	"gorm.io/gorm"
)

// RelationStore implements fragment.RelationStore using GORM.
type RelationStore struct {
	database.Repository[fragment.Relation, RelationModel]
}

// NewRelationStore creates a new RelationStore.
func NewRelationStore(db database.Database) RelationStore {
	return RelationStore{
		Repository: database.NewRepository[fragment.Relation, RelationModel](db, RelationMapper{}, "relation"),
	}
}

// Upsert inserts the relation or overwrites the existing row with the same
// (parent, child) pair.
func (s RelationStore) Upsert(ctx context.Context, r fragment.Relation) error {
	return s.UpsertIn(s.DB(ctx), r)
}

// UpsertIn runs Upsert inside the given session.
func (s RelationStore) UpsertIn(tx *gorm.DB, r fragment.Relation) error {
	model := s.Mapper().ToModel(r)

	var existing RelationModel
	err := tx.Where("parent_id = ? AND child_id = ?", model.ParentID, model.ChildID).
		First(&existing).Error
	switch {
	case err == nil:
		result := tx.Model(&RelationModel{}).
			Where("parent_id = ? AND child_id = ?", model.ParentID, model.ChildID).
			Select("priority", "bidirectional").
			Updates(&model)
		if result.Error != nil {
			return fmt.Errorf("update relation (%d,%d): %w", model.ParentID, model.ChildID, result.Error)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if result := tx.Create(&model); result.Error != nil {
			return fmt.Errorf("insert relation (%d,%d): %w", model.ParentID, model.ChildID, result.Error)
		}
		return nil
	default:
		return fmt.Errorf("find relation (%d,%d): %w", model.ParentID, model.ChildID, err)
	}
}
