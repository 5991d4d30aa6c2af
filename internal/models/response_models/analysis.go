package response_models

type SentimentResult struct {
	Score         float64 `json:"score"`
	Label         string  `json:"label"`
	PositiveWords int     `json:"positive_words"`
	NegativeWords int     `json:"negative_words"`
}

type IntentResult struct {
	Primary    string             `json:"primary"`
	Confidence float64            `json:"confidence"`
	AllIntents map[string]float64 `json:"all_intents"`
}

type EntityResult struct {
	Locations []string `json:"locations"`
	Dates     []string `json:"dates"`
}

// AnalysisResult carries only the sections the caller asked for.
type AnalysisResult struct {
	Sentiment *SentimentResult `json:"sentiment,omitempty"`
	Entities  *EntityResult    `json:"entities,omitempty"`
	Intent    *IntentResult    `json:"intent,omitempty"`
}
