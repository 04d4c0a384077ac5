package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/internal/database"
	"gorm.io/gorm"
)

// fragmentUpsertColumns are the non-key columns overwritten on re-import.
// The file_* attachment columns are deliberately absent: the import never
// writes them, so a re-import cannot clobber attachments added since.
var fragmentUpsertColumns = []string{
	"title", "content", "created_at", "updated_at", "creator_id", "origin_id",
}

// FragmentStore implements fragment.Store using GORM.
type FragmentStore struct {
	database.Repository[fragment.Fragment, FragmentModel]
}

// NewFragmentStore creates a new FragmentStore.
func NewFragmentStore(db database.Database) FragmentStore {
	return FragmentStore{
		Repository: database.NewRepository[fragment.Fragment, FragmentModel](db, FragmentMapper{}, "fragment"),
	}
}

// Create inserts a fragment and returns it with its store-assigned identity.
func (s FragmentStore) Create(ctx context.Context, f fragment.Fragment) (fragment.Fragment, error) {
	model := s.Mapper().ToModel(f)
	if result := s.DB(ctx).Create(&model); result.Error != nil {
		return fragment.Fragment{}, fmt.Errorf("create fragment: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Upsert inserts the fragment or overwrites the existing row with the same
// identity.
func (s FragmentStore) Upsert(ctx context.Context, f fragment.Fragment) error {
	return s.UpsertIn(s.DB(ctx), f)
}

// UpsertIn runs Upsert inside the given session. The upsert is an explicit
// query-then-update-or-insert so its contract does not depend on any ORM
// merge behavior.
func (s FragmentStore) UpsertIn(tx *gorm.DB, f fragment.Fragment) error {
	model := s.Mapper().ToModel(f)

	var existing FragmentModel
	err := tx.Where("id = ?", model.ID).First(&existing).Error
	switch {
	case err == nil:
		result := tx.Model(&FragmentModel{}).
			Where("id = ?", model.ID).
			Select(fragmentUpsertColumns).
			Updates(&model)
		if result.Error != nil {
			return fmt.Errorf("update fragment %d: %w", model.ID, result.Error)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if result := tx.Create(&model); result.Error != nil {
			return fmt.Errorf("insert fragment %d: %w", model.ID, result.Error)
		}
		return nil
	default:
		return fmt.Errorf("find fragment %d: %w", model.ID, err)
	}
}
