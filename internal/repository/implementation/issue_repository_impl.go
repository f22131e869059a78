package implementation

import (
	"context"

	"freedbot-be/internal/model"
	"freedbot-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type IssueRepositoryImpl struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) contract.IssueRepository {
	return &IssueRepositoryImpl{db: db}
}

func (r *IssueRepositoryImpl) Create(ctx context.Context, issue *model.CommonIssue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *IssueRepositoryImpl) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	return r.db.WithContext(ctx).
		Model(&model.CommonIssue{}).
		Where("id = ?", id).
		Update("embedding", pgvector.NewVector(embedding)).Error
}

func (r *IssueRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredCommonIssue, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.CommonIssue
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("common_issues").
		Select("common_issues.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("deleted_at IS NULL").
		Where("embedding IS NOT NULL").
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredCommonIssue, len(results))
	for i := range results {
		issue := results[i].CommonIssue
		scored[i] = &contract.ScoredCommonIssue{
			Issue:      &issue,
			Similarity: results[i].Similarity,
		}
	}
	return scored, nil
}

func (r *IssueRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommonIssue{}).Count(&count).Error
	return count, err
}
