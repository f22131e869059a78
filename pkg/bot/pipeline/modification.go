package pipeline

import (
	"context"
	"fmt"
	"log"

	"freedbot-be/internal/constant"
	"freedbot-be/pkg/bot/concept"
	"freedbot-be/pkg/bot/contextbuilder"
	"freedbot-be/pkg/bot/costing"
	"freedbot-be/pkg/bot/response"
	"freedbot-be/pkg/bot/retrieval"
	"freedbot-be/pkg/llm"
)

// stageNames is the fallback header naming when no preset row exists for the
// requested stage.
var stageNames = map[int]string{
	1: "Street Sleeper",
	2: "Weekend Warrior",
	3: "Track Monster",
}

// Modification handles upgrade planning requests.
type Modification struct {
	searcher    retrieval.Searcher
	provider    llm.LLMProvider
	rates       costing.Rates
	temperature float64
	logger      *log.Logger
}

func NewModification(searcher retrieval.Searcher, provider llm.LLMProvider, rates costing.Rates, temperature float64, logger *log.Logger) *Modification {
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &Modification{searcher: searcher, provider: provider, rates: rates, temperature: temperature, logger: logger}
}

// Run parses stage, focus area and budget from the message, pulls the stage
// preset and matching catalog parts, generates the plan and appends the
// aggregated cost estimate.
func (p *Modification) Run(ctx context.Context, message string) (string, error) {
	req := concept.ParseModificationRequest(message)

	var preset *retrieval.Preset
	if req.Stage > 0 {
		found, err := p.searcher.StagePreset(ctx, req.Stage)
		if err != nil {
			p.logger.Printf("[MODIFICATION] stage preset lookup failed: %v", err)
		} else {
			preset = found
		}
	}

	parts, err := p.searcher.ListCatalogParts(ctx, req.FocusArea, req.Stage)
	if err != nil {
		p.logger.Printf("[MODIFICATION] catalog retrieval failed: %v", err)
		parts = nil
	}

	prompt := contextbuilder.BuildModificationPrompt(message, req, preset, parts)
	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.ModificationSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: prompt},
	}

	plan, err := p.provider.Chat(ctx, history, llm.WithTemperature(p.temperature))
	if err != nil {
		return "", fmt.Errorf("modification plan generation failed: %w", err)
	}

	summary := costing.Aggregate(parts, p.rates)
	cost := &response.ModificationCost{
		PartsMin:   summary.PartsMin,
		PartsMax:   summary.PartsMax,
		InstallMin: summary.InstallMin,
		InstallMax: summary.InstallMax,
		TotalMin:   summary.TotalMin,
		TotalMax:   summary.TotalMax,
	}

	stageName := ""
	if req.Stage > 0 {
		stageName = stageNames[req.Stage]
		if preset != nil && preset.Name != "" {
			stageName = preset.Name
		}
	}

	return response.Modification(plan, req.Stage, stageName, cost), nil
}
