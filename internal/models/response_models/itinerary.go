package response_models

import "itinera/internal/models/db_models"

// ActivityInstance is one scheduled entry on an itinerary day. Times are
// rendered as zero-padded "HH:MM" clock strings.
type ActivityInstance struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Cost        int    `json:"cost"`
}

type ItineraryDay struct {
	Day        int                `json:"day"`
	Activities []ActivityInstance `json:"activities"`
}

type RecommendationResponse struct {
	Destination     string                      `json:"destination"`
	StartDate       string                      `json:"startDate"`
	EndDate         string                      `json:"endDate"`
	Duration        int                         `json:"duration"`
	Itinerary       []ItineraryDay              `json:"itinerary"`
	DestinationInfo db_models.DestinationRecord `json:"destinationInfo"`
}
