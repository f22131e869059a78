// FILE: internal/service/manual_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"freedbot-be/internal/dto"
	"freedbot-be/internal/model"
	"freedbot-be/internal/pkg/logger"
	"freedbot-be/internal/repository/contract"

	"gorm.io/datatypes"
)

// IManualService ingests knowledge base rows. The row is persisted first and
// the embedding is generated asynchronously by the consumer, so ingestion
// never waits on the embedding provider.
type IManualService interface {
	IngestManualChunk(ctx context.Context, request *dto.IngestManualChunkRequest) (*dto.IngestAcceptedResponse, error)
	IngestCommonIssue(ctx context.Context, request *dto.IngestCommonIssueRequest) (*dto.IngestAcceptedResponse, error)
}

type manualService struct {
	manualRepo contract.ManualRepository
	issueRepo  contract.IssueRepository
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewManualService(
	manualRepo contract.ManualRepository,
	issueRepo contract.IssueRepository,
	publisher IPublisherService,
	logger logger.ILogger,
) IManualService {
	return &manualService{
		manualRepo: manualRepo,
		issueRepo:  issueRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *manualService) IngestManualChunk(ctx context.Context, request *dto.IngestManualChunkRequest) (*dto.IngestAcceptedResponse, error) {
	chunk := &model.ManualChunk{
		Section:    request.Section,
		Subsection: request.Subsection,
		Content:    request.Content,
	}
	if err := s.manualRepo.Create(ctx, chunk); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s %s %s", chunk.Section, chunk.Subsection, chunk.Content)
	s.queueEmbedding(ctx, dto.EmbedDocumentMessage{
		Kind: dto.EmbedKindManual,
		Id:   chunk.Id,
		Text: text,
	})

	return &dto.IngestAcceptedResponse{Id: chunk.Id.String(), Status: "accepted"}, nil
}

func (s *manualService) IngestCommonIssue(ctx context.Context, request *dto.IngestCommonIssueRequest) (*dto.IngestAcceptedResponse, error) {
	issue := &model.CommonIssue{
		Symptom:        request.Symptom,
		SymptomDetail:  request.SymptomDetail,
		ProbableCauses: datatypes.NewJSONSlice(request.ProbableCauses),
		CostEstimateIDR: datatypes.NewJSONType(model.CostRange{
			Min: request.CostEstimateMin,
			Max: request.CostEstimateMax,
		}),
	}
	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s %s", issue.Symptom, issue.SymptomDetail)
	s.queueEmbedding(ctx, dto.EmbedDocumentMessage{
		Kind: dto.EmbedKindIssue,
		Id:   issue.Id,
		Text: text,
	})

	return &dto.IngestAcceptedResponse{Id: issue.Id.String(), Status: "accepted"}, nil
}

func (s *manualService) queueEmbedding(ctx context.Context, payload dto.EmbedDocumentMessage) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("ManualService", "Failed to marshal embed message", map[string]interface{}{
			"document_id": payload.Id.String(),
			"error":       err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payloadJson); err != nil {
		s.logger.Warn("ManualService", "Failed to queue embedding", map[string]interface{}{
			"document_id": payload.Id.String(),
			"error":       err.Error(),
		})
	}
}
