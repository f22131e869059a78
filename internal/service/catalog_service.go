// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"freedbot-be/internal/dto"
	"freedbot-be/internal/model"
	"freedbot-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const (
	stagesCacheKey  = "catalog:stages"
	catalogCacheTTL = 5 * time.Minute
)

// ICatalogService serves the read-only catalog browsing endpoints.
type ICatalogService interface {
	ListStages(ctx context.Context) (*dto.ListStagesResponse, error)
	ListParts(ctx context.Context, request *dto.ListPartsRequest) (*dto.ListPartsResponse, error)
}

type catalogService struct {
	presetRepo  contract.StagePresetRepository
	catalogRepo contract.CatalogRepository
	cache       *cache.Cache
}

func NewCatalogService(
	presetRepo contract.StagePresetRepository,
	catalogRepo contract.CatalogRepository,
) ICatalogService {
	return &catalogService{
		presetRepo:  presetRepo,
		catalogRepo: catalogRepo,
		cache:       cache.New(catalogCacheTTL, 10*time.Minute),
	}
}

func (s *catalogService) ListStages(ctx context.Context) (*dto.ListStagesResponse, error) {
	if cached, found := s.cache.Get(stagesCacheKey); found {
		return cached.(*dto.ListStagesResponse), nil
	}

	presets, err := s.presetRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.ListStagesResponse{Stages: make([]dto.StagePresetResponse, 0, len(presets))}
	for _, preset := range presets {
		res.Stages = append(res.Stages, dto.StagePresetResponse{
			Stage:            preset.Stage,
			StageName:        preset.StageName,
			EstimatedHPTotal: preset.EstimatedHPTotal,
			EstimatedCostIDR: preset.EstimatedCostIDR.Data(),
			Parts:            preset.Parts,
		})
	}

	s.cache.Set(stagesCacheKey, res, cache.DefaultExpiration)
	return res, nil
}

func (s *catalogService) ListParts(ctx context.Context, request *dto.ListPartsRequest) (*dto.ListPartsResponse, error) {
	cacheKey := fmt.Sprintf("catalog:parts:%s:%d", request.Category, request.Stage)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.ListPartsResponse), nil
	}

	parts, err := s.catalogRepo.FindFiltered(ctx, request.Category, request.Stage, 100)
	if err != nil {
		return nil, err
	}

	res := &dto.ListPartsResponse{Parts: make([]dto.CatalogPartResponse, 0, len(parts))}
	for _, part := range parts {
		res.Parts = append(res.Parts, mapCatalogPart(part))
	}
	res.Count = len(res.Parts)

	s.cache.Set(cacheKey, res, cache.DefaultExpiration)
	return res, nil
}

func mapCatalogPart(part *model.CatalogPart) dto.CatalogPartResponse {
	return dto.CatalogPartResponse{
		PartName:        part.PartName,
		Brand:           part.Brand,
		Category:        part.Category,
		MinStage:        part.MinStage,
		PriceRangeIDR:   part.PriceRangeIDR.Data(),
		PerformanceGain: part.PerformanceGain,
		LegalStatus:     part.LegalStatus,
	}
}
