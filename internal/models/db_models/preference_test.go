package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaultsNilRecord(t *testing.T) {
	var record *PreferenceRecord

	got := record.WithDefaults()
	assert.Equal(t, AccommodationMidRange, got.AccommodationType)
	assert.Equal(t, TransportationPublic, got.TransportationPreference)
	assert.Equal(t, PaceModerate, got.PacePreference)
	assert.Empty(t, got.Interests)
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	record := &PreferenceRecord{
		Interests:         []string{"food"},
		AccommodationType: AccommodationLuxury,
		PacePreference:    PaceIntense,
	}

	got := record.WithDefaults()
	assert.Equal(t, AccommodationLuxury, got.AccommodationType)
	assert.Equal(t, PaceIntense, got.PacePreference)
	assert.Equal(t, TransportationPublic, got.TransportationPreference)
	assert.Equal(t, []string{"food"}, got.Interests)
}

func TestEmbeddingDimensions(t *testing.T) {
	assert.Equal(t, 25, EmbeddingDimensions())
	assert.Len(t, EmbeddingOf(PreferenceRecord{}), 25)
}

func TestEmbeddingEmptyRecordIsTwoHot(t *testing.T) {
	embedding := EmbeddingOf(PreferenceRecord{})

	var sum float64
	for _, v := range embedding {
		sum += v
	}
	// The accommodation and transportation defaults set exactly two bits.
	assert.Equal(t, 2.0, sum)
	assert.Equal(t, 1.0, embedding[19])
	assert.Equal(t, 1.0, embedding[21])
}

func TestPreferenceRowRoundTrip(t *testing.T) {
	row := PreferenceRow{
		UserID:                   "user-1",
		Interests:                []string{"nature", "art"},
		AccommodationType:        AccommodationBudget,
		TransportationPreference: TransportationRental,
		PacePreference:           PaceRelaxed,
	}

	record := row.Record()
	assert.Equal(t, []string{"nature", "art"}, record.Interests)
	assert.Equal(t, AccommodationBudget, record.AccommodationType)
	assert.Equal(t, TransportationRental, record.TransportationPreference)
	assert.Equal(t, PaceRelaxed, record.PacePreference)
}
