package pipeline

import (
	"context"
	"fmt"
	"log"

	"freedbot-be/internal/constant"
	"freedbot-be/pkg/bot/response"
	"freedbot-be/pkg/llm"
)

const visionMaxTokens = 1500

// Vision handles image-based diagnosis. No retrieval stage: the image itself
// is the context.
type Vision struct {
	provider    llm.LLMProvider
	temperature float64
	logger      *log.Logger
}

func NewVision(provider llm.LLMProvider, temperature float64, logger *log.Logger) *Vision {
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &Vision{provider: provider, temperature: temperature, logger: logger}
}

// Run sends the image plus the user's free-text context to the vision model
// and wraps the result. Provider errors carry the llm sentinel types so the
// caller can pick the right fallback message.
func (p *Vision) Run(ctx context.Context, message, imageBase64 string) (string, error) {
	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.VisionSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: constant.VisionUserPromptPrefix + message},
	}

	diagnosis, err := p.provider.ChatWithImage(ctx, history, imageBase64,
		llm.WithTemperature(p.temperature),
		llm.WithMaxTokens(visionMaxTokens),
	)
	if err != nil {
		p.logger.Printf("[VISION] image diagnosis failed: %v", err)
		return "", fmt.Errorf("vision diagnosis failed: %w", err)
	}

	return response.VisionDiagnosis(diagnosis), nil
}
