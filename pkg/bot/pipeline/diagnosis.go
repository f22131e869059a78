// Package pipeline wires the per-category processing chains: concept
// extraction, retrieval, prompt assembly, generation and final formatting.
// Retrieval failures degrade to empty context; generation failures abort the
// run and surface to the caller for triage.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"freedbot-be/internal/constant"
	"freedbot-be/pkg/bot/concept"
	"freedbot-be/pkg/bot/contextbuilder"
	"freedbot-be/pkg/bot/response"
	"freedbot-be/pkg/bot/retrieval"
	"freedbot-be/pkg/llm"
)

// defaultTemperature is used when the configured value is absent or invalid.
const defaultTemperature = 0.3

// Diagnosis handles free-text complaints about the vehicle.
type Diagnosis struct {
	searcher    retrieval.Searcher
	provider    llm.LLMProvider
	temperature float64
	logger      *log.Logger
}

func NewDiagnosis(searcher retrieval.Searcher, provider llm.LLMProvider, temperature float64, logger *log.Logger) *Diagnosis {
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &Diagnosis{searcher: searcher, provider: provider, temperature: temperature, logger: logger}
}

// Run extracts symptoms, retrieves manual and issue context concurrently,
// generates the diagnosis and wraps it in the chat reply format.
func (p *Diagnosis) Run(ctx context.Context, message string) (string, error) {
	symptoms := concept.ExtractSymptoms(message)

	var (
		docs   []retrieval.Document
		issues []retrieval.Issue
	)

	// Both lookups hit the embedding provider and the database. Failures are
	// logged and treated as an empty result so the model still answers from
	// its own knowledge.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := p.searcher.SearchManuals(gctx, message)
		if err != nil {
			p.logger.Printf("[DIAGNOSIS] manual retrieval failed: %v", err)
			return nil
		}
		docs = found
		return nil
	})
	g.Go(func() error {
		found, err := p.searcher.SearchIssues(gctx, message)
		if err != nil {
			p.logger.Printf("[DIAGNOSIS] issue retrieval failed: %v", err)
			return nil
		}
		issues = found
		return nil
	})
	_ = g.Wait()

	contextBlock := contextbuilder.AssembleDiagnosis(docs, issues)
	prompt := contextbuilder.BuildDiagnosisPrompt(message, symptoms, contextBlock)

	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.DiagnosticSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: prompt},
	}

	diagnosis, err := p.provider.Chat(ctx, history, llm.WithTemperature(p.temperature))
	if err != nil {
		return "", fmt.Errorf("diagnosis generation failed: %w", err)
	}

	return response.Diagnosis(diagnosis), nil
}
