package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"freedbot-be/pkg/llm"
)

// GroqProvider calls the Groq OpenAI-compatible chat completions API.
type GroqProvider struct {
	ApiKey      string
	ModelName   string
	VisionModel string
	Client      *http.Client
}

// Ensure GroqProvider implements LLMProvider
var _ llm.LLMProvider = &GroqProvider{}

const groqChatEndpoint = "https://api.groq.com/openai/v1/chat/completions"

func NewGroqProvider(apiKey, modelName, visionModel string) *GroqProvider {
	return &GroqProvider{
		ApiKey:      apiKey,
		ModelName:   modelName,
		VisionModel: visionModel,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type groqChatRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// groqMessage content is either a plain string or a list of content parts
// (text + image_url) for vision calls.
type groqMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type groqContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *groqImageURL `json:"image_url,omitempty"`
}

type groqImageURL struct {
	URL string `json:"url"`
}

type groqChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// --- Interface Implementation ---

func (g *GroqProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	messages := make([]groqMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = groqMessage{Role: role, Content: msg.Content}
	}
	return g.complete(ctx, messages, g.ModelName, opts...)
}

func (g *GroqProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func (g *GroqProvider) ChatWithImage(ctx context.Context, history []llm.Message, imageBase64 string, opts ...llm.Option) (string, error) {
	if g.VisionModel == "" {
		return "", fmt.Errorf("no vision model configured: %w", llm.ErrInvalidInput)
	}

	messages := make([]groqMessage, 0, len(history)+1)
	var userText string
	for _, msg := range history {
		if msg.Role == "user" {
			// The last user turn carries the image; hold its text back.
			userText = msg.Content
			continue
		}
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, groqMessage{Role: role, Content: msg.Content})
	}

	dataURL := "data:image/jpeg;base64," + imageBase64
	messages = append(messages, groqMessage{
		Role: "user",
		Content: []groqContentPart{
			{Type: "image_url", ImageURL: &groqImageURL{URL: dataURL}},
			{Type: "text", Text: userText},
		},
	})

	return g.complete(ctx, messages, g.VisionModel, opts...)
}

func (g *GroqProvider) complete(ctx context.Context, messages []groqMessage, model string, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := groqChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: options.Temperature,
	}
	if options.MaxTokens > 0 {
		reqPayload.MaxTokens = options.MaxTokens
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", groqChatEndpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.ApiKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if sentinel := llm.Classify(resp.StatusCode, string(bodyBytes)); sentinel != nil {
			return "", fmt.Errorf("groq error: status %d: %w", resp.StatusCode, sentinel)
		}
		return "", fmt.Errorf("groq error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var groqResp groqChatResponse
	if err := json.Unmarshal(bodyBytes, &groqResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("groq response contained no choices")
	}

	return groqResp.Choices[0].Message.Content, nil
}
