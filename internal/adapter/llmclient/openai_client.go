package llmclient

import (
	"context"
	"errors"
	"fmt"

	"examforge/internal/config"
	"examforge/internal/domain"
	"examforge/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// openAIClient implements domain.ModelClient against any OpenAI-compatible
// chat-completions endpoint (a custom BaseURL covers local gateways).
type openAIClient struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAIClient creates the OpenAI-compatible model client.
func NewOpenAIClient(cfg config.LLMConfig) (domain.ModelClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai client requires an API key")
	}
	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}
	return &openAIClient{
		api:         openai.NewClientWithConfig(apiConfig),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("Model request timed out", zap.Error(err))
			return "", domain.NewUpstreamCallError(fmt.Errorf("model request timed out: %w", err))
		}
		l.Error("Chat completion call failed", zap.Error(err))
		return "", domain.NewUpstreamCallError(fmt.Errorf("chat completion call failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewMalformedResponseError(fmt.Errorf("model returned no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}
