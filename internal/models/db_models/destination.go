package db_models

// PopularActivity is one curated entry on a destination's activity list.
type PopularActivity struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// DestinationRecord is the static metadata the catalog serves for a
// destination. Records are immutable after startup.
type DestinationRecord struct {
	Name              string            `json:"name"`
	Country           string            `json:"country"`
	Description       string            `json:"description"`
	PopularActivities []PopularActivity `json:"popular_activities"`
}

// ActivityTemplate is a catalog activity grouped under a category.
type ActivityTemplate struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DurationHours int    `json:"duration"`
	BaseCost      int    `json:"cost"`
}
