package request_models

import "itinera/internal/models/db_models"

type RecommendationRequest struct {
	UserID      string                      `json:"userId"`
	Destination string                      `json:"destination"`
	StartDate   string                      `json:"startDate"`
	EndDate     string                      `json:"endDate"`
	Preferences *db_models.PreferenceRecord `json:"preferences"`
}

// MissingFields reports which required fields are absent, in a fixed order,
// so the 400 message can name them.
func (r *RecommendationRequest) MissingFields() []string {
	var missing []string
	if r.UserID == "" {
		missing = append(missing, "userId")
	}
	if r.Destination == "" {
		missing = append(missing, "destination")
	}
	if r.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if r.EndDate == "" {
		missing = append(missing, "endDate")
	}
	return missing
}

// GenerateItineraryRequest is the duration-based variant used by the
// /api/generate-itinerary alias.
type GenerateItineraryRequest struct {
	UserID      string                      `json:"userId"`
	Destination string                      `json:"destination" binding:"required"`
	Duration    int                         `json:"duration" binding:"required,min=1"`
	Preferences *db_models.PreferenceRecord `json:"preferences"`
}
