package repositories

import (
	"context"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"itinera/internal/models/db_models"
)

// NewPostgresPreferenceRepository is the durable backend, selected when
// POSTGRES_URL is set. It keeps the same last-write-wins and insertion-order
// semantics as the in-memory store.
func NewPostgresPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &PostgresPreferenceRepository{db: db}
}

type PostgresPreferenceRepository struct {
	db *gorm.DB
}

func (r *PostgresPreferenceRepository) Upsert(ctx context.Context, userID string, record db_models.PreferenceRecord) error {
	row := db_models.PreferenceRow{
		UserID:                   userID,
		Interests:                pq.StringArray(record.Interests),
		AccommodationType:        record.AccommodationType,
		TransportationPreference: record.TransportationPreference,
		PacePreference:           record.PacePreference,
		Embedding:                pgvector.NewVector(toFloat32(db_models.EmbeddingOf(record))),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"interests", "accommodation_type", "transportation_preference",
			"pace_preference", "embedding", "updated_at",
		}),
	}).Create(&row).Error
}

func (r *PostgresPreferenceRepository) Get(ctx context.Context, userID string) (*db_models.PreferenceRecord, error) {
	var row db_models.PreferenceRow
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	record := row.Record()
	return &record, nil
}

func (r *PostgresPreferenceRepository) All(ctx context.Context) ([]StoredPreference, error) {
	var rows []db_models.PreferenceRow
	if err := r.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]StoredPreference, 0, len(rows))
	for i := range rows {
		out = append(out, StoredPreference{UserID: rows[i].UserID, Record: rows[i].Record()})
	}
	return out, nil
}

func (r *PostgresPreferenceRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.PreferenceRow{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// SimilarUsers ranks other users by cosine distance against the stored
// embedding mirror, with the insertion sequence breaking ties. Callers must
// not use this path with a zero vector; pgvector's cosine distance is
// undefined there.
func (r *PostgresPreferenceRepository) SimilarUsers(ctx context.Context, userID string, embedding []float64, limit int) ([]string, error) {
	vec := pgvector.NewVector(toFloat32(embedding))

	var userIDs []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT user_id
		FROM user_preferences
		WHERE user_id <> ?
		ORDER BY embedding <=> ?, seq
		LIMIT ?
	`, userID, vec, limit).Scan(&userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

func toFloat32(values []float64) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}
