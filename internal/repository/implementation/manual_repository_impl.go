package implementation

import (
	"context"

	"freedbot-be/internal/model"
	"freedbot-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ManualRepositoryImpl struct {
	db *gorm.DB
}

func NewManualRepository(db *gorm.DB) contract.ManualRepository {
	return &ManualRepositoryImpl{db: db}
}

func (r *ManualRepositoryImpl) Create(ctx context.Context, chunk *model.ManualChunk) error {
	return r.db.WithContext(ctx).Create(chunk).Error
}

func (r *ManualRepositoryImpl) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	return r.db.WithContext(ctx).
		Model(&model.ManualChunk{}).
		Where("id = ?", id).
		Update("embedding", pgvector.NewVector(embedding)).Error
}

// SearchSimilarWithScore returns manual chunks with similarity scores, filtered by threshold.
func (r *ManualRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredManualChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding <=> query_vector) recovers the similarity.
	type result struct {
		model.ManualChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("service_manuals").
		Select("service_manuals.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("deleted_at IS NULL").
		Where("embedding IS NOT NULL").
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredManualChunk, len(results))
	for i := range results {
		chunk := results[i].ManualChunk
		scored[i] = &contract.ScoredManualChunk{
			Chunk:      &chunk,
			Similarity: results[i].Similarity,
		}
	}
	return scored, nil
}

func (r *ManualRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ManualChunk{}).Count(&count).Error
	return count, err
}
