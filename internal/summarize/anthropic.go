package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the boundary to the external summarization service: one prompt
// in, one raw text reply out. No retries; the service's own error signals
// propagate as terminal errors for the run.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service-level error kinds, translated from the provider's signaling.
var (
	ErrAuthentication = errors.New("summarization service rejected the API key")
	ErrRateLimited    = errors.New("summarization service rate limit exceeded")
)

const anthropicEndpoint = "https://api.anthropic.com/v1/messages"

// AnthropicClient calls the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
}

func NewAnthropicClient(apiKey, model string, maxTokens int) *AnthropicClient {
	return &AnthropicClient{
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		baseURL:    anthropicEndpoint,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
	Error   *anthropicError    `json:"error,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Complete sends the prompt and returns the reply text.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("anthropic: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("anthropic: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic: read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", fmt.Errorf("%w (HTTP %d)", ErrAuthentication, resp.StatusCode)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("%w (HTTP %d)", ErrRateLimited, resp.StatusCode)
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("anthropic: parse response: %w", err)
	}

	if apiResp.Error != nil {
		switch apiResp.Error.Type {
		case "authentication_error":
			return "", fmt.Errorf("%w: %s", ErrAuthentication, apiResp.Error.Message)
		case "rate_limit_error":
			return "", fmt.Errorf("%w: %s", ErrRateLimited, apiResp.Error.Message)
		default:
			return "", fmt.Errorf("anthropic: API error: %s - %s", apiResp.Error.Type, apiResp.Error.Message)
		}
	}

	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty response")
	}

	return apiResp.Content[0].Text, nil
}

// Compile-time interface conformance check.
var _ Client = (*AnthropicClient)(nil)
