package dto

type IngestManualChunkRequest struct {
	Section    string `json:"section" validate:"required"`
	Subsection string `json:"subsection"`
	Content    string `json:"content" validate:"required"`
}

type IngestCommonIssueRequest struct {
	Symptom         string   `json:"symptom" validate:"required"`
	SymptomDetail   string   `json:"symptom_detail"`
	ProbableCauses  []string `json:"probable_causes" validate:"required,min=1"`
	CostEstimateMin int64    `json:"cost_estimate_min"`
	CostEstimateMax int64    `json:"cost_estimate_max"`
}

type IngestAcceptedResponse struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}
