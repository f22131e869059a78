package retrieval

import (
	"context"
	"fmt"
	"log"

	"freedbot-be/internal/repository/contract"
	"freedbot-be/pkg/embedding"
)

// Searcher is the retrieval surface the pipelines depend on. Errors are
// returned to the caller; the pipeline decides whether to degrade or abort.
type Searcher interface {
	SearchManuals(ctx context.Context, query string) ([]Document, error)
	SearchIssues(ctx context.Context, query string) ([]Issue, error)
	ListCatalogParts(ctx context.Context, focusArea string, maxStage int) ([]Part, error)
	StagePreset(ctx context.Context, stage int) (*Preset, error)
}

// Config encapsulates search parameters per collection.
type Config struct {
	ManualThreshold float64
	ManualLimit     int
	IssueThreshold  float64
	IssueLimit      int
	CatalogLimit    int
}

// DefaultConfig returns the retrieval thresholds used in production.
func DefaultConfig() Config {
	return Config{
		ManualThreshold: 0.5,
		ManualLimit:     5,
		IssueThreshold:  0.5,
		IssueLimit:      3,
		CatalogLimit:    20,
	}
}

// Client runs similarity and filter lookups against the record collections.
type Client struct {
	embeddingProvider embedding.EmbeddingProvider
	manualRepo        contract.ManualRepository
	issueRepo         contract.IssueRepository
	presetRepo        contract.StagePresetRepository
	catalogRepo       contract.CatalogRepository
	config            Config
	logger            *log.Logger
}

func NewClient(
	embeddingProvider embedding.EmbeddingProvider,
	manualRepo contract.ManualRepository,
	issueRepo contract.IssueRepository,
	presetRepo contract.StagePresetRepository,
	catalogRepo contract.CatalogRepository,
	config Config,
	logger *log.Logger,
) *Client {
	return &Client{
		embeddingProvider: embeddingProvider,
		manualRepo:        manualRepo,
		issueRepo:         issueRepo,
		presetRepo:        presetRepo,
		catalogRepo:       catalogRepo,
		config:            config,
		logger:            logger,
	}
}

var _ Searcher = &Client{}

// SearchManuals embeds the query and returns manual excerpts scoring at or
// above the manual threshold, best first.
func (c *Client) SearchManuals(ctx context.Context, query string) ([]Document, error) {
	vector, err := c.embeddingProvider.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scored, err := c.manualRepo.SearchSimilarWithScore(ctx, vector, c.config.ManualLimit, c.config.ManualThreshold)
	if err != nil {
		return nil, fmt.Errorf("manual search failed: %w", err)
	}

	docs := make([]Document, 0, len(scored))
	for _, s := range scored {
		if s.Chunk == nil {
			continue
		}
		docs = append(docs, Document{
			Section:    s.Chunk.Section,
			Subsection: s.Chunk.Subsection,
			Content:    s.Chunk.Content,
			Score:      s.Similarity,
		})
	}

	c.logger.Printf("[RETRIEVAL] Manuals: %d hits for %q", len(docs), truncate(query, 60))
	return docs, nil
}

// SearchIssues embeds the query and returns common issues scoring at or above
// the issue threshold, best first.
func (c *Client) SearchIssues(ctx context.Context, query string) ([]Issue, error) {
	vector, err := c.embeddingProvider.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scored, err := c.issueRepo.SearchSimilarWithScore(ctx, vector, c.config.IssueLimit, c.config.IssueThreshold)
	if err != nil {
		return nil, fmt.Errorf("issue search failed: %w", err)
	}

	issues := make([]Issue, 0, len(scored))
	for _, s := range scored {
		if s.Issue == nil {
			continue
		}
		cost := s.Issue.CostEstimateIDR.Data()
		issues = append(issues, Issue{
			Symptom: s.Issue.Symptom,
			Causes:  []string(s.Issue.ProbableCauses),
			Cost:    CostRange{Min: cost.Min, Max: cost.Max},
			Score:   s.Similarity,
		})
	}

	c.logger.Printf("[RETRIEVAL] Issues: %d hits for %q", len(issues), truncate(query, 60))
	return issues, nil
}

// ListCatalogParts is a plain structured filter, no similarity scoring:
// category substring match plus an optional stage ceiling.
func (c *Client) ListCatalogParts(ctx context.Context, focusArea string, maxStage int) ([]Part, error) {
	rows, err := c.catalogRepo.FindFiltered(ctx, focusArea, maxStage, c.config.CatalogLimit)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}

	parts := make([]Part, 0, len(rows))
	for _, row := range rows {
		price := row.PriceRangeIDR.Data()
		parts = append(parts, Part{
			Name:            row.PartName,
			Brand:           row.Brand,
			Category:        row.Category,
			MinStage:        row.MinStage,
			Price:           CostRange{Min: price.Min, Max: price.Max},
			PerformanceGain: row.PerformanceGain,
			LegalStatus:     row.LegalStatus,
		})
	}
	return parts, nil
}

// StagePreset returns the preset for a stage number, or nil when none exists.
func (c *Client) StagePreset(ctx context.Context, stage int) (*Preset, error) {
	row, err := c.presetRepo.FindByStage(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("stage preset lookup failed: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	cost := row.EstimatedCostIDR.Data()
	return &Preset{
		Stage:     row.Stage,
		Name:      row.StageName,
		HPTotal:   row.EstimatedHPTotal,
		Cost:      CostRange{Min: cost.Min, Max: cost.Max},
		PartNames: []string(row.Parts),
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
