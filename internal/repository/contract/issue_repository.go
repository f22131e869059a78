package contract

import (
	"context"

	"freedbot-be/internal/model"

	"github.com/google/uuid"
)

// ScoredCommonIssue pairs a common issue with its cosine similarity to the query.
type ScoredCommonIssue struct {
	Issue      *model.CommonIssue
	Similarity float64
}

type IssueRepository interface {
	Create(ctx context.Context, issue *model.CommonIssue) error
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredCommonIssue, error)
	Count(ctx context.Context) (int64, error)
}
