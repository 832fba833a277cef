// Package llmclient provides the ModelClient adapters. One client is
// constructed at startup from config and injected into the components that
// need it; selection between the SDK, REST and OpenAI-compatible paths never
// happens at call time.
package llmclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"examforge/internal/config"
	"examforge/internal/domain"
	"examforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// googleAIClient implements domain.ModelClient via the langchaingo Google AI
// binding (the SDK path).
type googleAIClient struct {
	llm         *googleai.GoogleAI
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

// NewGoogleAIClient creates the SDK-backed model client.
func NewGoogleAIClient(ctx context.Context, cfg config.LLMConfig) (domain.ModelClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("googleai client requires an API key")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create googleai client: %w", err)
	}
	return &googleAIClient{
		llm:         llm,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
	}, nil
}

func (c *googleAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.llm.Call(ctx, prompt,
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("Model request timed out", zap.Error(err))
			return "", domain.NewUpstreamCallError(fmt.Errorf("model request timed out: %w", err))
		}
		l.Error("Failed to get response from model", zap.Error(err))
		return "", domain.NewUpstreamCallError(fmt.Errorf("model call failed: %w", err))
	}

	return response, nil
}
