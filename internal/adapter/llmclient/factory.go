package llmclient

import (
	"context"
	"fmt"

	"examforge/internal/config"
	"examforge/internal/domain"
)

// New builds the model client for the configured provider and wraps it with
// the bounded-retry decorator.
func New(ctx context.Context, cfg config.LLMConfig) (domain.ModelClient, error) {
	var (
		client domain.ModelClient
		err    error
	)
	switch cfg.Provider {
	case config.ProviderGoogleAI:
		client, err = NewGoogleAIClient(ctx, cfg)
	case config.ProviderRest:
		client, err = NewRestClient(cfg)
	case config.ProviderOpenAI:
		client, err = NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return WithRetry(client, cfg.MaxAttempts), nil
}
