package response_models

type ComponentStatus struct {
	Initialized   string   `json:"initialized"`
	UptimeSeconds float64  `json:"uptime_seconds"`
	Destinations  int      `json:"destinations_available,omitempty"`
	Users         int      `json:"users_with_preferences,omitempty"`
	Activities    int      `json:"total_activities,omitempty"`
	Categories    []string `json:"activity_categories,omitempty"`
	Interests     []string `json:"interest_categories,omitempty"`
	Intents       []string `json:"intents_available,omitempty"`
}

type ModelStatusResponse struct {
	NLPProcessor         ComponentStatus `json:"nlpProcessor"`
	RecommendationEngine ComponentStatus `json:"recommendationEngine"`
	PreferenceModel      ComponentStatus `json:"preferenceModel"`
	ActivityModel        ComponentStatus `json:"activityModel"`
	Timestamp            string          `json:"timestamp"`
}
