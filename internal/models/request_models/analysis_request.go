package request_models

type AnalyzeTextRequest struct {
	Text         string `json:"text"`
	AnalysisType string `json:"analysisType"`
}
