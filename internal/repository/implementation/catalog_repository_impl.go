package implementation

import (
	"context"
	"errors"

	"freedbot-be/internal/model"
	"freedbot-be/internal/repository/contract"

	"gorm.io/gorm"
)

type StagePresetRepositoryImpl struct {
	db *gorm.DB
}

func NewStagePresetRepository(db *gorm.DB) contract.StagePresetRepository {
	return &StagePresetRepositoryImpl{db: db}
}

func (r *StagePresetRepositoryImpl) FindByStage(ctx context.Context, stage int) (*model.StagePreset, error) {
	var preset model.StagePreset
	err := r.db.WithContext(ctx).Where("stage = ?", stage).First(&preset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preset, nil
}

func (r *StagePresetRepositoryImpl) FindAllOrdered(ctx context.Context) ([]*model.StagePreset, error) {
	var presets []*model.StagePreset
	if err := r.db.WithContext(ctx).Order("stage ASC").Find(&presets).Error; err != nil {
		return nil, err
	}
	return presets, nil
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) FindFiltered(ctx context.Context, category string, maxStage int, limit int) ([]*model.CatalogPart, error) {
	if limit <= 0 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&model.CatalogPart{})
	if category != "" {
		query = query.Where("category ILIKE ?", "%"+category+"%")
	}
	if maxStage > 0 {
		query = query.Where("min_stage <= ?", maxStage)
	}

	var parts []*model.CatalogPart
	if err := query.Order("category ASC").Limit(limit).Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

type ChatLogRepositoryImpl struct {
	db *gorm.DB
}

func NewChatLogRepository(db *gorm.DB) contract.ChatLogRepository {
	return &ChatLogRepositoryImpl{db: db}
}

func (r *ChatLogRepositoryImpl) Create(ctx context.Context, entry *model.ChatLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
