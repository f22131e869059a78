// FILE: internal/service/chat_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"freedbot-be/internal/dto"
	"freedbot-be/internal/pkg/logger"
	"freedbot-be/pkg/bot/pipeline"
	"freedbot-be/pkg/bot/response"
	"freedbot-be/pkg/bot/router"
	"freedbot-be/pkg/llm"
)

// IChatService is the message processing entry point behind the REST surface.
type IChatService interface {
	Process(ctx context.Context, request *dto.ProcessMessageRequest) (*dto.ProcessMessageResponse, error)
	ProcessImage(ctx context.Context, request *dto.ProcessImageRequest) (*dto.ProcessMessageResponse, error)
}

type chatService struct {
	diagnosis    *pipeline.Diagnosis
	modification *pipeline.Modification
	vision       *pipeline.Vision
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewChatService(
	diagnosis *pipeline.Diagnosis,
	modification *pipeline.Modification,
	vision *pipeline.Vision,
	publisher IPublisherService,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		diagnosis:    diagnosis,
		modification: modification,
		vision:       vision,
		publisher:    publisher,
		logger:       logger,
	}
}

// Process classifies the message and dispatches it to the matching pipeline.
// Every path returns a user-facing reply; pipeline failures are converted to
// canned fallback messages rather than surfaced as HTTP errors.
func (s *chatService) Process(ctx context.Context, request *dto.ProcessMessageRequest) (*dto.ProcessMessageResponse, error) {
	started := time.Now()

	if strings.TrimSpace(request.Message) == "" {
		return &dto.ProcessMessageResponse{
			Response: response.EmptyPrompt,
			Intent:   string(router.CategoryEmpty),
		}, nil
	}

	category := router.Classify(request.Message)

	var (
		reply string
		err   error
	)
	switch category {
	case router.CategoryGreeting:
		reply = response.Greeting()
	case router.CategoryHelp:
		reply = response.Help()
	case router.CategoryBengkel:
		reply = response.Workshop(request.Message)
	case router.CategoryModification, router.CategoryStage:
		reply, err = s.modification.Run(ctx, request.Message)
	default:
		reply, err = s.diagnosis.Run(ctx, request.Message)
	}

	if err != nil {
		s.logger.Error("ChatService", "Pipeline execution failed", map[string]interface{}{
			"category": string(category),
			"user_id":  request.UserId,
			"error":    err.Error(),
		})
		if errors.Is(err, llm.ErrRateLimited) {
			reply = response.SystemBusy()
		} else {
			reply = response.SystemError(err)
		}
		category = router.CategoryError
	}

	s.publishProcessed(ctx, request.UserId, string(category), request.Message, reply, started)

	return &dto.ProcessMessageResponse{
		Response: reply,
		Intent:   string(category),
	}, nil
}

// ProcessImage runs the vision pipeline. Error triage follows the upstream
// failure type: rate limits get the busy message, rejected inputs the image
// guidance, anything else the generic image failure text.
func (s *chatService) ProcessImage(ctx context.Context, request *dto.ProcessImageRequest) (*dto.ProcessMessageResponse, error) {
	started := time.Now()
	category := "vision"

	reply, err := s.vision.Run(ctx, request.Message, request.ImageBase64)
	if err != nil {
		s.logger.Error("ChatService", "Vision pipeline failed", map[string]interface{}{
			"user_id": request.UserId,
			"error":   err.Error(),
		})
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			reply = response.SystemBusy()
		case errors.Is(err, llm.ErrInvalidInput):
			reply = response.InvalidImage()
		default:
			reply = response.ImageFailure()
		}
		category = string(router.CategoryError)
	}

	s.publishProcessed(ctx, request.UserId, category, request.Message, reply, started)

	return &dto.ProcessMessageResponse{
		Response: reply,
		Intent:   category,
	}, nil
}

// publishProcessed emits the usage event. Best effort: a publish failure is
// logged and never blocks the reply.
func (s *chatService) publishProcessed(ctx context.Context, userId, category, message, reply string, started time.Time) {
	if s.publisher == nil {
		return
	}

	payload := dto.ChatProcessedMessage{
		CallerId:      userId,
		Category:      category,
		Message:       message,
		ResponseChars: len(reply),
		DurationMs:    time.Since(started).Milliseconds(),
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("ChatService", "Failed to marshal usage event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payloadJson); err != nil {
		s.logger.Warn("ChatService", "Failed to publish usage event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
