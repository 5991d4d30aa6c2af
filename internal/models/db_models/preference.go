package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PreferenceRecord is a user's declared travel interests and trip-style
// choices. It is both the wire format and the stored shape; updates are
// last-write-wins per user.
type PreferenceRecord struct {
	Interests                []string `json:"interests"`
	AccommodationType        string   `json:"accommodationType"`
	TransportationPreference string   `json:"transportationPreference"`
	PacePreference           string   `json:"pacePreference"`
}

// WithDefaults fills the tier/pace fields the generator depends on. A nil
// record yields the full default set.
func (p *PreferenceRecord) WithDefaults() PreferenceRecord {
	out := PreferenceRecord{
		AccommodationType:        AccommodationMidRange,
		TransportationPreference: TransportationPublic,
		PacePreference:           PaceModerate,
	}
	if p == nil {
		return out
	}

	out.Interests = p.Interests
	if p.AccommodationType != "" {
		out.AccommodationType = p.AccommodationType
	}
	if p.TransportationPreference != "" {
		out.TransportationPreference = p.TransportationPreference
	}
	if p.PacePreference != "" {
		out.PacePreference = p.PacePreference
	}
	return out
}

// PreferenceRow is the Postgres shape of a preference record. Seq keeps the
// insertion order the similarity ranking uses for tie-breaks. The embedding
// column mirrors the vector derived from the record on every write so
// operators can run ad-hoc pgvector queries; in-process reads always
// recompute it from the record fields.
type PreferenceRow struct {
	UserID                   string          `gorm:"primaryKey;column:user_id"`
	Interests                pq.StringArray  `gorm:"type:text[]"`
	AccommodationType        string          `gorm:"column:accommodation_type"`
	TransportationPreference string          `gorm:"column:transportation_preference"`
	PacePreference           string          `gorm:"column:pace_preference"`
	Embedding                pgvector.Vector `gorm:"type:vector(25)"`
	Seq                      int64           `gorm:"autoIncrement;uniqueIndex"`
	UpdatedAt                time.Time       `gorm:"autoUpdateTime"`
}

func (PreferenceRow) TableName() string { return "user_preferences" }

func (r *PreferenceRow) Record() PreferenceRecord {
	return PreferenceRecord{
		Interests:                []string(r.Interests),
		AccommodationType:        r.AccommodationType,
		TransportationPreference: r.TransportationPreference,
		PacePreference:           r.PacePreference,
	}
}
