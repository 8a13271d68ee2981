// Package llm talks to an OpenAI-compatible chat-completions endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/prompt"
)

const (
	maxTokens   = 800
	temperature = 0.3
)

// Config holds what one client needs to reach the generation service.
type Config struct {
	// APIURL is the full chat-completions endpoint URL.
	APIURL string
	APIKey string
	Model  string
}

// Client sends summary requests. One request-response per call, no retries,
// no streaming.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient builds a client for the configured endpoint.
func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = baseURL(cfg.APIURL)
	return &Client{
		api:   openai.NewClientWithConfig(oc),
		model: cfg.Model,
	}
}

// baseURL derives the SDK base URL from a full chat-completions endpoint,
// so the request still POSTs to the URL the user configured.
func baseURL(apiURL string) string {
	u := strings.TrimRight(apiURL, "/")
	return strings.TrimSuffix(u, "/chat/completions")
}

// Summarize sends the fixed system instruction plus the built prompt and
// returns the first choice's message text, trimmed. Transport failures and
// non-2xx statuses wrap apperr.ErrTransport (with the status code in the
// message); a response without usable content wraps apperr.ErrBadResponse.
func (c *Client) Summarize(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: status %d: %s", apperr.ErrTransport, apiErr.HTTPStatusCode, apiErr.Message)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", fmt.Errorf("%w: status %d", apperr.ErrTransport, reqErr.HTTPStatusCode)
		}
		return "", fmt.Errorf("%w: %v", apperr.ErrTransport, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", apperr.ErrBadResponse)
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("%w: empty message content", apperr.ErrBadResponse)
	}
	return out, nil
}
