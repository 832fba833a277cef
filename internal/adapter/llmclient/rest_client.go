package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"examforge/internal/config"
	"examforge/internal/domain"
	"examforge/internal/logger"

	"go.uber.org/zap"
)

const defaultGenerativeLanguageBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// restClient implements domain.ModelClient by calling the generativelanguage
// generateContent endpoint directly over HTTP, for environments where the SDK
// path is not wanted.
type restClient struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
}

// NewRestClient creates the raw-HTTP model client.
func NewRestClient(cfg config.LLMConfig) (domain.ModelClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("rest client requires an API key")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGenerativeLanguageBaseURL
	}
	return &restClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     10 * time.Second,
			},
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

type generateContentRequest struct {
	Contents         []restContent        `json:"contents"`
	GenerationConfig restGenerationConfig `json:"generationConfig"`
}

type restContent struct {
	Role  string     `json:"role"`
	Parts []restPart `json:"parts"`
}

type restPart struct {
	Text string `json:"text"`
}

type restGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []restPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *restClient) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	payload := generateContentRequest{
		Contents: []restContent{
			{Role: "user", Parts: []restPart{{Text: prompt}}},
		},
		GenerationConfig: restGenerationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.NewInternalError("failed to encode model request", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewInternalError("failed to build model request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		l.Error("Model REST call failed", zap.Error(err))
		return "", domain.NewUpstreamCallError(fmt.Errorf("model REST call failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		l.Error("Model REST call returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("detail", detail))
		return "", domain.NewUpstreamCallError(fmt.Errorf("model REST call failed: status %d", resp.StatusCode))
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domain.NewMalformedResponseError(fmt.Errorf("failed to decode generateContent envelope: %w", err))
	}

	var texts []string
	for _, candidate := range parsed.Candidates {
		var parts []string
		for _, part := range candidate.Content.Parts {
			parts = append(parts, part.Text)
		}
		texts = append(texts, strings.Join(parts, "\n"))
	}
	return strings.Join(texts, "\n\n"), nil
}
