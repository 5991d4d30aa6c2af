package request_models

import "itinera/internal/models/db_models"

type UpdatePreferencesRequest struct {
	UserID      string                      `json:"userId"`
	Preferences *db_models.PreferenceRecord `json:"preferences"`
}
