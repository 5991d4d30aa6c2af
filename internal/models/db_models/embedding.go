package db_models

// EmbeddingOf derives the fixed-length one-hot vector for a preference
// record: one dimension per interest category, accommodation type and
// transportation preference, in that order. Absent accommodation and
// transportation fields embed as their defaults, so an empty record is a
// 2-hot vector; unrecognized tag values are silently ignored. The vector is
// recomputed on demand and never treated as a source of truth.
func EmbeddingOf(record PreferenceRecord) []float64 {
	interests := InterestCategories()
	accommodations := AccommodationTypes()
	transportations := TransportationPreferences()

	embedding := make([]float64, len(interests)+len(accommodations)+len(transportations))

	for _, interest := range record.Interests {
		for i, category := range interests {
			if interest == category {
				embedding[i] = 1.0
				break
			}
		}
	}

	defaulted := record.WithDefaults()

	for i, accommodation := range accommodations {
		if defaulted.AccommodationType == accommodation {
			embedding[len(interests)+i] = 1.0
			break
		}
	}

	for i, transportation := range transportations {
		if defaulted.TransportationPreference == transportation {
			embedding[len(interests)+len(accommodations)+i] = 1.0
			break
		}
	}

	return embedding
}

// EmbeddingDimensions is the constant vector length implied by the fixed
// category enumerations.
func EmbeddingDimensions() int {
	return len(InterestCategories()) + len(AccommodationTypes()) + len(TransportationPreferences())
}
