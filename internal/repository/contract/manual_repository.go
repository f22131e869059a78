package contract

import (
	"context"

	"freedbot-be/internal/model"

	"github.com/google/uuid"
)

// ScoredManualChunk pairs a manual chunk with its cosine similarity to the query.
type ScoredManualChunk struct {
	Chunk      *model.ManualChunk
	Similarity float64
}

type ManualRepository interface {
	Create(ctx context.Context, chunk *model.ManualChunk) error
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredManualChunk, error)
	Count(ctx context.Context) (int64, error)
}
