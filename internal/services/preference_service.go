package services

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"itinera/internal/models/db_models"
	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

const (
	defaultSimilarUserLimit     = 5
	defaultRecommendationLimit  = 10
	recommendationsPerCategory  = 2
	budgetTierRecommendationCap = 50
	midRangeRecommendationCap   = 100
	luxuryTierRecommendationCap = 200
)

type PreferenceServiceInterface interface {
	// Update overwrites the user's record, last write wins.
	Update(ctx context.Context, userID string, record db_models.PreferenceRecord) (db_models.PreferenceRecord, error)
	Get(ctx context.Context, userID string) (*db_models.PreferenceRecord, error)
	// EmbeddingOf is pure: the same record always yields the same vector.
	EmbeddingOf(record db_models.PreferenceRecord) []float64
	SimilarUsers(ctx context.Context, userID string, embedding []float64, limit int) ([]string, error)
	RecommendedActivities(record db_models.PreferenceRecord, limit int) []response_models.RecommendedActivity
	ProcessPreferences(ctx context.Context, userID string, record *db_models.PreferenceRecord) (*response_models.ProcessedPreferencesResponse, error)
	Status(ctx context.Context) response_models.ComponentStatus
	ActivityCatalogStatus() response_models.ComponentStatus
}

func NewPreferenceService(
	prefRepo repositories.PreferenceRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
	rng utils.RandSource,
	logger *zap.Logger,
) PreferenceServiceInterface {
	return &PreferenceService{
		prefRepo:     prefRepo,
		activityRepo: activityRepo,
		rng:          rng,
		logger:       logger,
		started:      time.Now(),
	}
}

type PreferenceService struct {
	prefRepo     repositories.PreferenceRepositoryInterface
	activityRepo repositories.ActivityRepositoryInterface
	rng          utils.RandSource
	logger       *zap.Logger
	started      time.Time
}

func (p *PreferenceService) Update(ctx context.Context, userID string, record db_models.PreferenceRecord) (db_models.PreferenceRecord, error) {
	if userID == "" {
		return db_models.PreferenceRecord{}, utils.ErrMissingUserID
	}

	if err := p.prefRepo.Upsert(ctx, userID, record); err != nil {
		p.logger.Error("preference upsert failed", zap.String("user_id", userID), zap.Error(err))
		return db_models.PreferenceRecord{}, utils.ErrDatabaseError
	}
	return record, nil
}

func (p *PreferenceService) Get(ctx context.Context, userID string) (*db_models.PreferenceRecord, error) {
	record, err := p.prefRepo.Get(ctx, userID)
	if err != nil {
		p.logger.Error("preference lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return record, nil
}

func (p *PreferenceService) EmbeddingOf(record db_models.PreferenceRecord) []float64 {
	return db_models.EmbeddingOf(record)
}

// SimilarUsers ranks every other stored user by cosine similarity against
// the given embedding, highest first, with ties kept in insertion order.
func (p *PreferenceService) SimilarUsers(ctx context.Context, userID string, embedding []float64, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultSimilarUserLimit
	}

	// A backend with native vector search can rank for us, but cosine
	// distance is undefined for a zero vector, so that case stays in-process.
	if searcher, ok := p.prefRepo.(repositories.SimilaritySearcher); ok && norm(embedding) > 0 {
		users, err := searcher.SimilarUsers(ctx, userID, embedding, limit)
		if err == nil {
			return users, nil
		}
		p.logger.Warn("vector search failed, falling back to in-process ranking",
			zap.String("user_id", userID), zap.Error(err))
	}

	stored, err := p.prefRepo.All(ctx)
	if err != nil {
		p.logger.Error("preference scan failed", zap.String("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	type scored struct {
		userID     string
		similarity float64
	}

	var candidates []scored
	for _, entry := range stored {
		if entry.UserID == userID {
			continue
		}
		other := db_models.EmbeddingOf(entry.Record)
		candidates = append(candidates, scored{
			userID:     entry.UserID,
			similarity: cosineSimilarity(embedding, other),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.userID)
	}
	return out, nil
}

// RecommendedActivities picks up to two catalog activities per interest
// category, capped by the caller's budget tier. Interests without catalog
// data fall back to the full category set.
func (p *PreferenceService) RecommendedActivities(record db_models.PreferenceRecord, limit int) []response_models.RecommendedActivity {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	interests := record.Interests
	if len(interests) == 0 {
		interests = p.activityRepo.Categories()
	}

	var valid []string
	for _, interest := range interests {
		if len(p.activityRepo.ActivitiesFor(interest)) > 0 {
			valid = append(valid, interest)
		}
	}
	if len(valid) == 0 {
		valid = p.activityRepo.Categories()
	}

	tier := record.WithDefaults().AccommodationType
	budgetCap := midRangeRecommendationCap
	switch tier {
	case db_models.AccommodationBudget:
		budgetCap = budgetTierRecommendationCap
	case db_models.AccommodationLuxury:
		budgetCap = luxuryTierRecommendationCap
	}

	recommendations := make([]response_models.RecommendedActivity, 0, limit)
	for _, interest := range valid {
		templates := p.activityRepo.ActivitiesFor(interest)
		if tier != db_models.AccommodationLuxury {
			var affordable []db_models.ActivityTemplate
			for _, t := range templates {
				if t.BaseCost <= budgetCap {
					affordable = append(affordable, t)
				}
			}
			templates = affordable
		}

		if len(templates) == 0 {
			continue
		}

		numToAdd := recommendationsPerCategory
		if len(templates) < numToAdd {
			numToAdd = len(templates)
		}
		if remaining := limit - len(recommendations); numToAdd > remaining {
			numToAdd = remaining
		}

		for _, idx := range p.rng.Perm(len(templates))[:numToAdd] {
			t := templates[idx]
			recommendations = append(recommendations, response_models.RecommendedActivity{
				Name:        t.Name,
				Description: t.Description,
				Duration:    t.DurationHours,
				Cost:        t.BaseCost,
				Category:    interest,
			})
		}

		if len(recommendations) >= limit {
			break
		}
	}

	return recommendations
}

func (p *PreferenceService) ProcessPreferences(ctx context.Context, userID string, record *db_models.PreferenceRecord) (*response_models.ProcessedPreferencesResponse, error) {
	if userID == "" {
		return nil, utils.ErrMissingUserID
	}

	stored := db_models.PreferenceRecord{}
	if record != nil {
		stored = *record
	}

	if _, err := p.Update(ctx, userID, stored); err != nil {
		return nil, err
	}

	embedding := p.EmbeddingOf(stored)

	similar, err := p.SimilarUsers(ctx, userID, embedding, defaultSimilarUserLimit)
	if err != nil {
		return nil, err
	}

	return &response_models.ProcessedPreferencesResponse{
		UserID:                userID,
		ProcessedPreferences:  stored,
		RecommendedActivities: p.RecommendedActivities(stored, defaultRecommendationLimit),
		SimilarUserCount:      len(similar),
	}, nil
}

func (p *PreferenceService) Status(ctx context.Context) response_models.ComponentStatus {
	count, err := p.prefRepo.Count(ctx)
	if err != nil {
		p.logger.Warn("preference count failed", zap.Error(err))
	}

	return response_models.ComponentStatus{
		Initialized:   p.started.Format(time.RFC3339),
		UptimeSeconds: utils.UptimeSeconds(p.started),
		Users:         count,
		Interests:     db_models.InterestCategories(),
	}
}

func (p *PreferenceService) ActivityCatalogStatus() response_models.ComponentStatus {
	return response_models.ComponentStatus{
		Initialized:   p.started.Format(time.RFC3339),
		UptimeSeconds: utils.UptimeSeconds(p.started),
		Activities:    p.activityRepo.TotalCount(),
		Categories:    p.activityRepo.Categories(),
	}
}

// cosineSimilarity treats the undefined zero-vector case as 0 similarity
// instead of dividing by zero.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}

	normA, normB := norm(a), norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
