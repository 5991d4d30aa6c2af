package response_models

import "itinera/internal/models/db_models"

type RecommendedActivity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Cost        int    `json:"cost"`
	Category    string `json:"category"`
}

type ProcessedPreferencesResponse struct {
	UserID                string                     `json:"userId"`
	ProcessedPreferences  db_models.PreferenceRecord `json:"processedPreferences"`
	RecommendedActivities []RecommendedActivity      `json:"recommendedActivities"`
	SimilarUserCount      int                        `json:"similarUserCount"`
}
