package llmclient

import (
	"context"
	"time"

	"examforge/internal/domain"
	"examforge/internal/logger"

	"go.uber.org/zap"
)

const baseBackoff = 500 * time.Millisecond

// retryClient decorates a ModelClient with a bounded retry. Only upstream
// call failures are retried; a malformed or schema-invalid reply is unlikely
// to be fixed by resending the identical prompt.
type retryClient struct {
	inner       domain.ModelClient
	maxAttempts int
}

// WithRetry wraps client so transient provider failures are retried up to
// maxAttempts total attempts with linear backoff. maxAttempts < 2 disables
// retries.
func WithRetry(client domain.ModelClient, maxAttempts int) domain.ModelClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &retryClient{inner: client, maxAttempts: maxAttempts}
}

func (c *retryClient) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		response, err := c.inner.Generate(ctx, prompt)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if !domain.IsRetryable(err) || attempt == c.maxAttempts {
			return "", err
		}

		backoff := time.Duration(attempt) * baseBackoff
		logger.Get().Warn("Model call failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return "", domain.NewUpstreamCallError(ctx.Err())
		case <-time.After(backoff):
		}
	}
	return "", lastErr
}
