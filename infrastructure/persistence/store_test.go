package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/domain/storage"
	"github.com/fragbase/fragbase/domain/tag"
	"github.com/fragbase/fragbase/domain/user"
	"github.com/fragbase/fragbase/internal/database"
)

// newTestDB creates a migrated in-memory SQLite database.
// Cannot use testdb package here due to import cycle (testdb imports persistence).
func newTestDB(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func timePtr(t time.Time) *time.Time { return &t }

func TestFragmentStore_UpsertInsertsThenUpdates(t *testing.T) {
	db := newTestDB(t)
	store := NewFragmentStore(db)
	ctx := context.Background()

	created := timePtr(time.Date(2009, 3, 14, 9, 30, 0, 0, time.UTC))
	f := fragment.NewImported(7, "Original", "body", created, nil, nil)
	require.NoError(t, store.Upsert(ctx, f))

	got, err := store.FindOne(ctx, storage.WithID(7))
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title())
	require.NotNil(t, got.CreatedAt())
	assert.True(t, created.Equal(*got.CreatedAt()))
	require.NotNil(t, got.OriginID())
	assert.Equal(t, int64(7), *got.OriginID())

	// Same identity again overwrites in place instead of inserting.
	require.NoError(t, store.Upsert(ctx, fragment.NewImported(7, "Revised", "body2", created, nil, nil)))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err = store.FindOne(ctx, storage.WithID(7))
	require.NoError(t, err)
	assert.Equal(t, "Revised", got.Title())
	assert.Equal(t, "body2", got.Content())
}

func TestFragmentStore_UpsertPreservesAttachmentColumns(t *testing.T) {
	db := newTestDB(t)
	store := NewFragmentStore(db)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, fragment.NewImported(3, "Has file", "", nil, nil, nil)))

	// Attach a file after the first import, the way the creation surface would.
	name := "photo.png"
	result := db.Session(ctx).Model(&FragmentModel{}).
		Where("id = ?", int64(3)).
		Update("file_name", &name)
	require.NoError(t, result.Error)

	require.NoError(t, store.Upsert(ctx, fragment.NewImported(3, "Has file v2", "", nil, nil, nil)))

	got, err := store.FindOne(ctx, storage.WithID(3))
	require.NoError(t, err)
	assert.Equal(t, "Has file v2", got.Title())
	assert.Equal(t, "photo.png", got.FileName())
}

func TestFragmentStore_CreateAssignsIdentity(t *testing.T) {
	db := newTestDB(t)
	store := NewFragmentStore(db)
	ctx := context.Background()

	created, err := store.Create(ctx, fragment.New("Fresh", "content"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID())
	assert.Nil(t, created.OriginID())
	assert.False(t, created.IsImported())
}

func TestTagStore_Upsert(t *testing.T) {
	db := newTestDB(t)
	store := NewTagStore(db)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, tag.New(5, "work", nil)))
	require.NoError(t, store.Upsert(ctx, tag.New(5, "renamed", nil)))

	got, err := store.FindOne(ctx, storage.WithID(5))
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name())

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTaggingStore_UpsertIdempotent(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagStore(db)
	store := NewTaggingStore(db)
	ctx := context.Background()

	require.NoError(t, tags.Upsert(ctx, tag.New(5, "work", nil)))

	g := tag.NewTagging(5, tag.NewTarget(1, tag.TargetFragment))
	require.NoError(t, store.Upsert(ctx, g))
	require.NoError(t, store.Upsert(ctx, g))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTaggingStore_RejectsDanglingTag(t *testing.T) {
	db := newTestDB(t)
	store := NewTaggingStore(db)
	ctx := context.Background()

	err := store.Upsert(ctx, tag.NewTagging(999, tag.NewTarget(1, tag.TargetFragment)))
	require.Error(t, err)
}

func TestRelationStore_Upsert(t *testing.T) {
	db := newTestDB(t)
	fragments := NewFragmentStore(db)
	store := NewRelationStore(db)
	ctx := context.Background()

	require.NoError(t, fragments.Upsert(ctx, fragment.NewImported(1, "a", "", nil, nil, nil)))
	require.NoError(t, fragments.Upsert(ctx, fragment.NewImported(2, "b", "", nil, nil, nil)))

	require.NoError(t, store.Upsert(ctx, fragment.NewRelation(1, 2, 0, false)))
	require.NoError(t, store.Upsert(ctx, fragment.NewRelation(1, 2, 9, true)))

	relations, err := store.Find(ctx, fragment.WithParentID(1))
	require.NoError(t, err)
	require.Len(t, relations, 1)
	assert.Equal(t, 9, relations[0].Priority())
	assert.True(t, relations[0].Bidirectional())
}

func TestRelationStore_WithEndpoint(t *testing.T) {
	db := newTestDB(t)
	fragments := NewFragmentStore(db)
	store := NewRelationStore(db)
	ctx := context.Background()

	for id := int64(1); id <= 3; id++ {
		require.NoError(t, fragments.Upsert(ctx, fragment.NewImported(id, "f", "", nil, nil, nil)))
	}
	require.NoError(t, store.Upsert(ctx, fragment.NewRelation(1, 2, 0, true)))
	require.NoError(t, store.Upsert(ctx, fragment.NewRelation(3, 1, 0, false)))

	// Fragment 1 sits on both sides; both rows surface.
	relations, err := store.Find(ctx, fragment.WithEndpoint(1))
	require.NoError(t, err)
	assert.Len(t, relations, 2)

	relations, err = store.Find(ctx, fragment.WithEndpoint(2))
	require.NoError(t, err)
	assert.Len(t, relations, 1)
}

func TestRelationStore_RejectsDanglingEndpoint(t *testing.T) {
	db := newTestDB(t)
	store := NewRelationStore(db)
	ctx := context.Background()

	err := store.Upsert(ctx, fragment.NewRelation(1, 999, 0, false))
	require.Error(t, err)
}

func TestUserStore_CreateMissingIn(t *testing.T) {
	db := newTestDB(t)
	store := NewUserStore(db)
	ctx := context.Background()

	existing, err := store.Create(ctx, user.New("alice", user.DefaultRole))
	require.NoError(t, err)

	tx := db.Session(ctx)
	missing := []user.User{
		user.New("alice", user.DefaultRole),
		user.New("bob", user.DefaultRole),
	}
	created, err := store.CreateMissingIn(tx, missing)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	byName, err := store.FindAllIn(tx, []string{"alice", "bob"})
	require.NoError(t, err)
	require.Len(t, byName, 2)

	// alice keeps her original row.
	assert.Equal(t, existing.ID(), byName["alice"].ID())
	assert.NotZero(t, byName["bob"].ID())

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
