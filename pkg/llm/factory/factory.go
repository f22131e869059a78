package factory

import (
	"fmt"

	"freedbot-be/pkg/llm"
	"freedbot-be/pkg/llm/groq"
	"freedbot-be/pkg/llm/ollama"
)

// NewLLMProvider builds an LLMProvider from config values.
func NewLLMProvider(provider, model, visionModel, ollamaBaseURL, groqApiKey string) (llm.LLMProvider, error) {
	switch provider {
	case "groq":
		if groqApiKey == "" {
			return nil, fmt.Errorf("groq provider selected but GROQ_API_KEY is empty")
		}
		return groq.NewGroqProvider(groqApiKey, model, visionModel), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", provider)
	}
}
