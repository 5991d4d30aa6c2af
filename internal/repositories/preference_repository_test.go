package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/models/db_models"
)

func TestInMemoryUpsertAndGet(t *testing.T) {
	repo := NewInMemoryPreferenceRepository()
	ctx := context.Background()

	record := db_models.PreferenceRecord{
		Interests:         []string{"food", "culture"},
		AccommodationType: db_models.AccommodationBudget,
	}

	require.NoError(t, repo.Upsert(ctx, "user-1", record))

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestInMemoryGetMissing(t *testing.T) {
	repo := NewInMemoryPreferenceRepository()

	got, err := repo.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInMemoryUpsertOverwrites(t *testing.T) {
	repo := NewInMemoryPreferenceRepository()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "user-1", db_models.PreferenceRecord{
		Interests: []string{"food"},
	}))
	require.NoError(t, repo.Upsert(ctx, "user-1", db_models.PreferenceRecord{
		Interests: []string{"nature"},
	}))

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	// Full replacement, not a merge.
	assert.Equal(t, []string{"nature"}, got.Interests)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInMemoryAllPreservesInsertionOrder(t *testing.T) {
	repo := NewInMemoryPreferenceRepository()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Upsert(ctx, id, db_models.PreferenceRecord{}))
	}
	// Rewriting an existing user keeps its original position.
	require.NoError(t, repo.Upsert(ctx, "c", db_models.PreferenceRecord{
		Interests: []string{"art"},
	}))

	stored, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "c", stored[0].UserID)
	assert.Equal(t, "a", stored[1].UserID)
	assert.Equal(t, "b", stored[2].UserID)
	assert.Equal(t, []string{"art"}, stored[0].Record.Interests)
}

func TestInMemoryConcurrentUpserts(t *testing.T) {
	repo := NewInMemoryPreferenceRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i)
			_ = repo.Upsert(ctx, userID, db_models.PreferenceRecord{})
			_, _ = repo.Get(ctx, userID)
		}(i)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, count)
}
