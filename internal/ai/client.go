// Package ai calls the chat-completion endpoint that drafts landing-page
// copy. The response content is an opaque string expected to parse as the
// generated-page JSON; parse failures are tolerated upstream.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seoforge/seoforge/internal/config"
)

const (
	generateTimeout = 30 * time.Second
	probeTimeout    = 10 * time.Second

	systemPrompt = "You are a helpful SEO content generator. Always return valid JSON."
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GenerationParams struct {
	MainKeywords        string
	SecondaryKeywords   string
	Questions           string
	ContentTypes        []string
	Language            string
	ConversationContext []Message
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type Response struct {
	Content string `json:"content"`
	Usage   *Usage `json:"usage,omitempty"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

type Client struct {
	httpClient *http.Client
	cfg        config.AIConfig
}

func NewClient(cfg config.AIConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = generateTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// Configured reports whether an API key is present. A missing key degrades
// the health report; it does not stop the server.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// GenerateContent sends the composed prompt and returns the raw completion
// content. One attempt, bounded by the client timeout; failures surface
// immediately.
func (c *Client) GenerateContent(ctx context.Context, params GenerationParams) (*Response, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("ai: AI_API_KEY not configured")
	}

	prompt := BuildPrompt(params, c.cfg.SiteName, c.cfg.SiteBaseURL)

	req := chatRequest{
		Model: c.cfg.Model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	}

	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("ai: no content in response")
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Usage:   resp.Usage,
	}, nil
}

// CheckConnection sends a minimal completion request to verify the endpoint
// and key work.
func (c *Client) CheckConnection(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := c.send(ctx, chatRequest{
		Model:     c.cfg.Model,
		Messages:  []Message{{Role: "user", Content: "Hello, test message"}},
		MaxTokens: 10,
	})
	return err == nil
}

func (c *Client) send(ctx context.Context, payload chatRequest) (*chatResponse, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ai: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("ai: status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	return &parsed, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
