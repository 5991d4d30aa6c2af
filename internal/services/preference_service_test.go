package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"itinera/internal/models/db_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

func newTestPreferenceService(rng utils.RandSource) (PreferenceServiceInterface, repositories.PreferenceRepositoryInterface) {
	prefRepo := repositories.NewInMemoryPreferenceRepository()
	svc := NewPreferenceService(prefRepo, repositories.NewActivityRepository(), rng, zap.NewNop())
	return svc, prefRepo
}

func TestEmbeddingShape(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	record := db_models.PreferenceRecord{
		Interests:                []string{"sightseeing", "food"},
		AccommodationType:        db_models.AccommodationMidRange,
		TransportationPreference: db_models.TransportationPublic,
	}

	embedding := svc.EmbeddingOf(record)
	require.Len(t, embedding, db_models.EmbeddingDimensions())
	require.Len(t, embedding, 25)

	// sightseeing and food are the first two interest dimensions; mid-range
	// is the second accommodation slot and public the first transportation
	// slot after the 18 interest dimensions.
	assert.Equal(t, 1.0, embedding[0])
	assert.Equal(t, 1.0, embedding[1])
	assert.Equal(t, 1.0, embedding[19])
	assert.Equal(t, 1.0, embedding[21])

	var sum float64
	for _, v := range embedding {
		sum += v
	}
	assert.Equal(t, 4.0, sum)
}

func TestEmbeddingDefaultsAbsentFields(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	// A record that only lists interests still embeds with the mid-range
	// and public dimensions hot, because absent fields take the defaults.
	embedding := svc.EmbeddingOf(db_models.PreferenceRecord{
		Interests: []string{"food"},
	})

	assert.Equal(t, 1.0, embedding[1])
	assert.Equal(t, 1.0, embedding[19])
	assert.Equal(t, 1.0, embedding[21])

	var sum float64
	for _, v := range embedding {
		sum += v
	}
	assert.Equal(t, 3.0, sum)
}

func TestEmbeddingIgnoresUnknownTags(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	embedding := svc.EmbeddingOf(db_models.PreferenceRecord{
		Interests:                []string{"spelunking", "time travel"},
		AccommodationType:        "castle",
		TransportationPreference: "teleport",
	})

	for i, v := range embedding {
		assert.Zerof(t, v, "dimension %d", i)
	}
}

func TestEmbeddingIsDeterministic(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	record := db_models.PreferenceRecord{
		Interests:         []string{"nature", "art"},
		AccommodationType: db_models.AccommodationLuxury,
	}

	assert.Equal(t, svc.EmbeddingOf(record), svc.EmbeddingOf(record))
}

func TestUpdateAndGetRoundTrip(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})
	ctx := context.Background()

	record := db_models.PreferenceRecord{
		Interests:      []string{"culture"},
		PacePreference: db_models.PaceIntense,
	}

	saved, err := svc.Update(ctx, "user-1", record)
	require.NoError(t, err)
	assert.Equal(t, record, saved)

	got, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestUpdateRequiresUserID(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	_, err := svc.Update(context.Background(), "", db_models.PreferenceRecord{})
	assert.ErrorIs(t, err, utils.ErrMissingUserID)
}

func TestGetMissingUserReturnsNil(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	got, err := svc.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSimilarUsersRanking(t *testing.T) {
	svc, prefRepo := newTestPreferenceService(&stubRand{})
	ctx := context.Background()

	target := db_models.PreferenceRecord{
		Interests:                []string{"sightseeing", "food"},
		AccommodationType:        db_models.AccommodationMidRange,
		TransportationPreference: db_models.TransportationPublic,
	}
	twin := target
	distant := db_models.PreferenceRecord{
		Interests:                []string{"nightlife"},
		AccommodationType:        db_models.AccommodationLuxury,
		TransportationPreference: db_models.TransportationRental,
	}

	require.NoError(t, prefRepo.Upsert(ctx, "me", target))
	require.NoError(t, prefRepo.Upsert(ctx, "distant", distant))
	require.NoError(t, prefRepo.Upsert(ctx, "twin", twin))

	users, err := svc.SimilarUsers(ctx, "me", svc.EmbeddingOf(target), 5)
	require.NoError(t, err)

	require.Equal(t, []string{"twin", "distant"}, users)
	assert.NotContains(t, users, "me")
}

func TestSimilarUsersRespectsLimit(t *testing.T) {
	svc, prefRepo := newTestPreferenceService(&stubRand{})
	ctx := context.Background()

	record := db_models.PreferenceRecord{Interests: []string{"nature"}}
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, prefRepo.Upsert(ctx, id, record))
	}

	users, err := svc.SimilarUsers(ctx, "a", svc.EmbeddingOf(record), 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSimilarUsersZeroVector(t *testing.T) {
	svc, prefRepo := newTestPreferenceService(&stubRand{})
	ctx := context.Background()

	require.NoError(t, prefRepo.Upsert(ctx, "other", db_models.PreferenceRecord{
		Interests: []string{"food"},
	}))

	// Unrecognized values set no bit, so this embedding is all zero. It has
	// no direction to compare against; everyone scores 0 and insertion
	// order decides.
	users, err := svc.SimilarUsers(ctx, "me", svc.EmbeddingOf(db_models.PreferenceRecord{
		Interests:                []string{"spelunking"},
		AccommodationType:        "castle",
		TransportationPreference: "teleport",
	}), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, users)
}

func TestRecommendedActivitiesBudgetCap(t *testing.T) {
	svc, _ := newTestPreferenceService(utils.NewRand(3))

	recs := svc.RecommendedActivities(db_models.PreferenceRecord{
		Interests:         []string{db_models.CategoryFood, db_models.CategoryRelaxation},
		AccommodationType: db_models.AccommodationBudget,
	}, 10)

	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.LessOrEqual(t, rec.Cost, 50)
	}
}

func TestRecommendedActivitiesLuxuryUncapped(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	recs := svc.RecommendedActivities(db_models.PreferenceRecord{
		Interests:         []string{db_models.CategoryRelaxation},
		AccommodationType: db_models.AccommodationLuxury,
	}, 10)

	// The relaxation catalog includes a 120-cost spa day that only the
	// luxury tier surfaces; the identity permutation picks it first.
	require.Len(t, recs, 2)
	assert.Equal(t, 120, recs[0].Cost)
}

func TestRecommendedActivitiesPerCategoryAndLimit(t *testing.T) {
	svc, _ := newTestPreferenceService(utils.NewRand(11))

	recs := svc.RecommendedActivities(db_models.PreferenceRecord{}, 10)
	require.Len(t, recs, 10)

	perCategory := make(map[string]int)
	for _, rec := range recs {
		perCategory[rec.Category]++
		assert.LessOrEqual(t, perCategory[rec.Category], 2)
	}
}

func TestRecommendedActivitiesUnknownInterestFallsBack(t *testing.T) {
	svc, _ := newTestPreferenceService(utils.NewRand(5))

	recs := svc.RecommendedActivities(db_models.PreferenceRecord{
		Interests: []string{"time travel"},
	}, 4)

	assert.Len(t, recs, 4)
}

func TestProcessPreferences(t *testing.T) {
	svc, prefRepo := newTestPreferenceService(utils.NewRand(9))
	ctx := context.Background()

	require.NoError(t, prefRepo.Upsert(ctx, "neighbor", db_models.PreferenceRecord{
		Interests: []string{"culture"},
	}))

	record := &db_models.PreferenceRecord{
		Interests:         []string{"culture", "food"},
		AccommodationType: db_models.AccommodationMidRange,
	}

	resp, err := svc.ProcessPreferences(ctx, "user-1", record)
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, *record, resp.ProcessedPreferences)
	assert.Equal(t, 1, resp.SimilarUserCount)
	assert.NotEmpty(t, resp.RecommendedActivities)

	stored, err := prefRepo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *record, *stored)
}

func TestProcessPreferencesNilRecord(t *testing.T) {
	svc, prefRepo := newTestPreferenceService(utils.NewRand(9))
	ctx := context.Background()

	resp, err := svc.ProcessPreferences(ctx, "user-1", nil)
	require.NoError(t, err)

	assert.Equal(t, db_models.PreferenceRecord{}, resp.ProcessedPreferences)
	assert.Zero(t, resp.SimilarUserCount)

	stored, err := prefRepo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestProcessPreferencesRequiresUserID(t *testing.T) {
	svc, _ := newTestPreferenceService(&stubRand{})

	_, err := svc.ProcessPreferences(context.Background(), "", nil)
	assert.ErrorIs(t, err, utils.ErrMissingUserID)
}

func TestPreferenceStatus(t *testing.T) {
	svc, prefRepo := newTestPreferenceService(&stubRand{})
	ctx := context.Background()

	require.NoError(t, prefRepo.Upsert(ctx, "a", db_models.PreferenceRecord{}))
	require.NoError(t, prefRepo.Upsert(ctx, "b", db_models.PreferenceRecord{}))

	status := svc.Status(ctx)
	assert.Equal(t, 2, status.Users)
	assert.Equal(t, db_models.InterestCategories(), status.Interests)

	catalog := svc.ActivityCatalogStatus()
	assert.Equal(t, 24, catalog.Activities)
	assert.Equal(t, db_models.ActivityCategories(), catalog.Categories)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float64{1, 0, 1}, []float64{1, 0, 1}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.Zero(t, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
	assert.Zero(t, cosineSimilarity([]float64{1}, []float64{1, 2}))
}
