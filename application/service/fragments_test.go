package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragbase/fragbase/application/service"
	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/infrastructure/persistence"
	"github.com/fragbase/fragbase/internal/testdb"
)

func newFragmentsService(t *testing.T) (*service.Fragments, persistence.FragmentStore, persistence.RelationStore) {
	t.Helper()
	db := testdb.New(t)
	fragments := persistence.NewFragmentStore(db)
	relations := persistence.NewRelationStore(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewFragments(fragments, relations, logger), fragments, relations
}

func TestFragments_CreateAndGet(t *testing.T) {
	svc, _, _ := newFragmentsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.FragmentCreateParams{Title: "Note", Content: "Body"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID())

	got, err := svc.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Note", got.Title())
	assert.Equal(t, "Body", got.Content())
	assert.False(t, got.IsImported())
}

func TestFragments_CreateRequiresTitle(t *testing.T) {
	svc, _, _ := newFragmentsService(t)

	_, err := svc.Create(context.Background(), service.FragmentCreateParams{Content: "no title"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrTitleRequired))
}

func TestFragments_List(t *testing.T) {
	svc, _, _ := newFragmentsService(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, service.FragmentCreateParams{Title: title})
		require.NoError(t, err)
	}

	page, total, err := svc.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "a", page[0].Title())

	page, _, err = svc.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].Title())
}

func TestFragments_Relations(t *testing.T) {
	svc, fragments, relations := newFragmentsService(t)
	ctx := context.Background()

	require.NoError(t, fragments.Upsert(ctx, fragment.NewImported(1, "a", "", nil, nil, nil)))
	require.NoError(t, fragments.Upsert(ctx, fragment.NewImported(2, "b", "", nil, nil, nil)))
	require.NoError(t, relations.Upsert(ctx, fragment.NewRelation(1, 2, 0, true)))

	// Both endpoints of a two-way relation see the single stored row.
	got, err := svc.Relations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ParentID())

	_, err = svc.Relations(ctx, 42)
	require.Error(t, err)
}
