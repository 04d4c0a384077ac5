package persistence

import "time"

// UserModel is the GORM model for authoring identities.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash *string
	Role         string
}

// TableName returns the table name.
func (UserModel) TableName() string { return "users" }

// FragmentModel is the GORM model for fragments. Imported rows reuse the
// legacy identifier as primary key; API-created rows get auto-increment
// identifiers. GORM's automatic created_at/updated_at tracking is disabled
// because imported rows carry legacy timestamps that must survive as-is.
type FragmentModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Title     *string
	Content   *string
	CreatedAt *time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
	CreatorID *int64     `gorm:"index"`
	Creator   *UserModel `gorm:"foreignKey:CreatorID"`

	// File attachment columns, written by the creation surface only;
	// the legacy import never touches them.
	FileName *string
	FilePath *string
	FileType *string
	FileSize *int64

	// OriginID records which legacy identifier the row was imported from.
	OriginID *int64 `gorm:"index"`
}

// TableName returns the table name.
func (FragmentModel) TableName() string { return "fragments" }

// TagModel is the GORM model for tags. Identity is the legacy tag id.
type TagModel struct {
	ID                    int64   `gorm:"primaryKey;autoIncrement"`
	Name                  string  `gorm:"uniqueIndex;not null"`
	DescriptionFragmentID *int64
	DescriptionFragment   *FragmentModel `gorm:"foreignKey:DescriptionFragmentID"`
}

// TableName returns the table name.
func (TagModel) TableName() string { return "tags" }

// TaggingModel is the GORM model for tag assignments. The primary key is the
// full (tag_id, target_id, target_type) triple; target_id is polymorphic and
// carries no foreign key of its own, only the tag reference is enforced.
type TaggingModel struct {
	TagID      int64     `gorm:"primaryKey;autoIncrement:false"`
	TargetID   int64     `gorm:"primaryKey;autoIncrement:false"`
	TargetType int       `gorm:"primaryKey;autoIncrement:false"`
	Tag        *TagModel `gorm:"foreignKey:TagID"`
}

// TableName returns the table name.
func (TaggingModel) TableName() string { return "taggings" }

// RelationModel is the GORM model for fragment relations, keyed by the
// (parent_id, child_id) pair. A bidirectional relation is one row with the
// flag set, never two rows.
type RelationModel struct {
	ParentID      int64          `gorm:"primaryKey;autoIncrement:false"`
	ChildID       int64          `gorm:"primaryKey;autoIncrement:false"`
	Priority      int            `gorm:"default:0"`
	Bidirectional bool           `gorm:"default:false"`
	Parent        *FragmentModel `gorm:"foreignKey:ParentID"`
	Child         *FragmentModel `gorm:"foreignKey:ChildID"`
}

// TableName returns the table name.
func (RelationModel) TableName() string { return "fragment_relations" }
