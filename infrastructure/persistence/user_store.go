package persistence

import (
	"context"
	"fmt"

	"github.com/fragbase/fragbase/domain/user"
	"github.com/fragbase/fragbase/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore implements user.Store using GORM.
type UserStore struct {
	database.Repository[user.User, UserModel]
}

// NewUserStore creates a new UserStore.
func NewUserStore(db database.Database) UserStore {
	return UserStore{
		Repository: database.NewRepository[user.User, UserModel](db, UserMapper{}, "user"),
	}
}

// Create inserts a user and returns it with its store-assigned identity.
func (s UserStore) Create(ctx context.Context, u user.User) (user.User, error) {
	model := s.Mapper().ToModel(u)
	if result := s.DB(ctx).Create(&model); result.Error != nil {
		return user.User{}, fmt.Errorf("create user: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// CreateMissingIn inserts the given users inside tx, silently skipping any
// whose username already exists, and returns how many rows it actually
// inserted. Combined with a re-query this is the guard against two
// concurrent first sights of the same handle racing into duplicate rows:
// the unique constraint arbitrates, nobody fails.
func (s UserStore) CreateMissingIn(tx *gorm.DB, users []user.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}

	models := make([]UserModel, len(users))
	for i, u := range users {
		models[i] = s.Mapper().ToModel(u)
	}

	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&models)
	if result.Error != nil {
		return 0, fmt.Errorf("create users: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}

// FindAllIn retrieves users by username inside tx, returned as a
// username-to-user map.
func (s UserStore) FindAllIn(tx *gorm.DB, usernames []string) (map[string]user.User, error) {
	if len(usernames) == 0 {
		return map[string]user.User{}, nil
	}

	var models []UserModel
	if result := tx.Where("username IN ?", usernames).Find(&models); result.Error != nil {
		return nil, fmt.Errorf("find users: %w", result.Error)
	}

	byName := make(map[string]user.User, len(models))
	for _, m := range models {
		byName[m.Username] = s.Mapper().ToDomain(m)
	}
	return byName, nil
}
