package repositories

import (
	"context"
	"sync"

	"itinera/internal/models/db_models"
)

// StoredPreference pairs a user id with their current record. Slices of
// these preserve the order records were first inserted in.
type StoredPreference struct {
	UserID string
	Record db_models.PreferenceRecord
}

type PreferenceRepositoryInterface interface {
	// Upsert overwrites any existing record for the user (no merge).
	Upsert(ctx context.Context, userID string, record db_models.PreferenceRecord) error
	// Get returns nil when the user has no stored record.
	Get(ctx context.Context, userID string) (*db_models.PreferenceRecord, error)
	// All returns every stored record in insertion order.
	All(ctx context.Context) ([]StoredPreference, error)
	Count(ctx context.Context) (int, error)
}

// SimilaritySearcher is an optional fast path a backend may offer for the
// similar-users ranking. Callers fall back to in-process cosine scoring when
// the backend does not implement it.
type SimilaritySearcher interface {
	SimilarUsers(ctx context.Context, userID string, embedding []float64, limit int) ([]string, error)
}

// NewInMemoryPreferenceRepository is the default, process-lifetime store.
// A single RWMutex guards the map so a reader never observes a partially
// written record; the key slice keeps insertion order for tie-breaks.
func NewInMemoryPreferenceRepository() PreferenceRepositoryInterface {
	return &InMemoryPreferenceRepository{
		records: make(map[string]db_models.PreferenceRecord),
	}
}

type InMemoryPreferenceRepository struct {
	mu      sync.RWMutex
	records map[string]db_models.PreferenceRecord
	order   []string
}

func (r *InMemoryPreferenceRepository) Upsert(_ context.Context, userID string, record db_models.PreferenceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[userID]; !exists {
		r.order = append(r.order, userID)
	}
	r.records[userID] = record
	return nil
}

func (r *InMemoryPreferenceRepository) Get(_ context.Context, userID string) (*db_models.PreferenceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[userID]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *InMemoryPreferenceRepository) All(_ context.Context) ([]StoredPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]StoredPreference, 0, len(r.order))
	for _, userID := range r.order {
		out = append(out, StoredPreference{UserID: userID, Record: r.records[userID]})
	}
	return out, nil
}

func (r *InMemoryPreferenceRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}
