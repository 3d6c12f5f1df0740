// Package assistant proxies chat messages to an OpenAI-compatible
// completion API. Every failure mode degrades to a fixed fallback reply;
// callers never see an error.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gatherhub/server/internal/models"
)

// FallbackReply is returned whenever the upstream service is unreachable,
// misconfigured or returns something unusable.
const FallbackReply = "Sorry, the assistant is unavailable right now."

const (
	defaultModel   = "gpt-4o-mini"
	requestTimeout = 10 * time.Second
	maxTokens      = 150
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	logger     *slog.Logger
	httpClient *http.Client
}

func New(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   defaultModel,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Reply answers a visitor message given the next upcoming events as
// context. It never returns an error; any failure yields FallbackReply.
func (c *Client) Reply(ctx context.Context, message string, events []models.Event) string {
	if c.apiKey == "" {
		return FallbackReply
	}

	var summary strings.Builder
	for _, e := range events {
		fmt.Fprintf(&summary, "%s on %s at %s\n", e.Name, e.Date, e.Venue)
	}
	prompt := fmt.Sprintf("You are Smart Event Assistant. Upcoming events:\n%s\nUser says: %s", summary.String(), message)

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a friendly event assistant."},
			{Role: "user", Content: prompt},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return FallbackReply
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return FallbackReply
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("assistant request failed", "error", err)
		return FallbackReply
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.logger.Warn("assistant returned non-OK status", "status", res.StatusCode)
		return FallbackReply
	}

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		c.logger.Warn("assistant response malformed", "error", err)
		return FallbackReply
	}
	if len(parsed.Choices) == 0 {
		return FallbackReply
	}
	reply := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if reply == "" {
		return FallbackReply
	}
	return reply
}
