package contract

import (
	"context"

	"freedbot-be/internal/model"
)

type StagePresetRepository interface {
	// FindByStage returns the preset for a stage number, or nil when absent.
	FindByStage(ctx context.Context, stage int) (*model.StagePreset, error)
	FindAllOrdered(ctx context.Context) ([]*model.StagePreset, error)
}

type CatalogRepository interface {
	// FindFiltered lists catalog parts. An empty category skips the category
	// filter; maxStage <= 0 skips the stage ceiling. Plain structured filter,
	// no similarity scoring.
	FindFiltered(ctx context.Context, category string, maxStage int, limit int) ([]*model.CatalogPart, error)
}

type ChatLogRepository interface {
	Create(ctx context.Context, entry *model.ChatLog) error
}
