package dto

import "freedbot-be/internal/model"

type StagePresetResponse struct {
	Stage            int             `json:"stage"`
	StageName        string          `json:"stage_name"`
	EstimatedHPTotal int             `json:"estimated_hp_total"`
	EstimatedCostIDR model.CostRange `json:"estimated_cost_idr"`
	Parts            []string        `json:"parts"`
}

type ListStagesResponse struct {
	Stages []StagePresetResponse `json:"stages"`
}

type CatalogPartResponse struct {
	PartName        string          `json:"part_name"`
	Brand           string          `json:"brand"`
	Category        string          `json:"category"`
	MinStage        int             `json:"min_stage"`
	PriceRangeIDR   model.CostRange `json:"price_range_idr"`
	PerformanceGain string          `json:"performance_gain"`
	LegalStatus     string          `json:"legal_status"`
}

type ListPartsRequest struct {
	Category string `query:"category"`
	Stage    int    `query:"stage"`
}

type ListPartsResponse struct {
	Parts []CatalogPartResponse `json:"parts"`
	Count int                   `json:"count"`
}
