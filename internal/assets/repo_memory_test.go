package assets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoOwnershipAndClone(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	asset := Asset{
		ID:      "asset-1",
		OwnerID: "owner-a",
		Kind:    KindResume,
		Title:   "Resume",
		Content: map[string]any{"summary": "original"},
	}
	require.NoError(t, repo.Create(ctx, asset))

	_, err := repo.GetByID(ctx, "owner-b", "asset-1")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := repo.GetByID(ctx, "owner-a", "asset-1")
	require.NoError(t, err)
	got.Content["summary"] = "mutated"

	again, err := repo.GetByID(ctx, "owner-a", "asset-1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Content["summary"])
}

func TestMemoryRepoUpdateHealthScore(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, Asset{ID: "asset-1", OwnerID: "owner-a"}))

	require.NoError(t, repo.UpdateHealthScore(ctx, "asset-1", 55))
	require.NoError(t, repo.UpdateHealthScore(ctx, "asset-1", 61))

	got, err := repo.GetByID(ctx, "owner-a", "asset-1")
	require.NoError(t, err)
	require.NotNil(t, got.HealthScore)
	assert.Equal(t, 61, *got.HealthScore)

	err = repo.UpdateHealthScore(ctx, "missing", 10)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, Asset{
			ID:        id,
			OwnerID:   "owner-a",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, Asset{ID: "other", OwnerID: "owner-b", CreatedAt: base}))

	items, err := repo.ListByOwner(ctx, "owner-a", 2, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)

	items, err = repo.ListByOwner(ctx, "owner-a", 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)

	items, err = repo.ListByOwner(ctx, "owner-a", 2, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
