package persistence

import "github.com/fragbase/fragbase/internal/database"

// AutoMigrate runs GORM auto migration for all models. The client runs it
// on construction so a fresh store is usable without a separate migration
// step.
func AutoMigrate(db database.Database) error {
	return db.GORM().AutoMigrate(
		&UserModel{},
		&FragmentModel{},
		&TagModel{},
		&TaggingModel{},
		&RelationModel{},
	)
}
