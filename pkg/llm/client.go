package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Supported provider names. Mistral exposes an OpenAI-compatible chat
// completion API, so both providers share the same SDK.
const (
	ProviderOpenAI  = "openai"
	ProviderMistral = "mistral"

	mistralBaseURL = "https://api.mistral.ai/v1"
)

// ProviderConfig is the decrypted, ready-to-use configuration of one
// provider entry.
type ProviderConfig struct {
	Provider    string
	Model       string
	APIKey      string
	MaxTokens   int
	Temperature float32

	// BaseURL overrides the provider endpoint. Empty selects the
	// provider's default.
	BaseURL string
}

// Result is one completed generation.
type Result struct {
	Text        string
	TotalTokens int
	Elapsed     time.Duration
}

// Client generates chat completions for a single provider configuration.
type Client struct {
	api *openai.Client
	cfg ProviderConfig
}

// NewClient builds a client for the given provider configuration.
func NewClient(cfg ProviderConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Provider)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model name is required", cfg.Provider)
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	switch cfg.Provider {
	case ProviderOpenAI:
		// SDK default endpoint
	case ProviderMistral:
		apiCfg.BaseURL = mistralBaseURL
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{api: openai.NewClientWithConfig(apiCfg), cfg: cfg}, nil
}

// Provider returns the configured provider name.
func (c *Client) Provider() string { return c.cfg.Provider }

// Model returns the configured model name.
func (c *Client) Model() string { return c.cfg.Model }

// Generate runs one non-streaming chat completion with the given system
// and user prompts and returns the completion text, token usage, and
// elapsed wall time.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (*Result, error) {
	req := openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}
	if c.cfg.MaxTokens > 0 {
		req.MaxTokens = c.cfg.MaxTokens
	}
	if c.cfg.Temperature > 0 {
		req.Temperature = c.cfg.Temperature
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, wrapProviderError(err, c.cfg.Provider, c.cfg.Model)
	}

	if len(resp.Choices) == 0 {
		return nil, &ProviderError{
			Provider: c.cfg.Provider,
			Model:    c.cfg.Model,
			Message:  "completion returned no choices",
		}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, &ProviderError{
			Provider: c.cfg.Provider,
			Model:    c.cfg.Model,
			Message:  "completion returned empty text",
		}
	}

	slog.Debug("LLM generation complete",
		"provider", c.cfg.Provider,
		"model", c.cfg.Model,
		"total_tokens", resp.Usage.TotalTokens,
		"elapsed_ms", elapsed.Milliseconds())

	return &Result{
		Text:        text,
		TotalTokens: resp.Usage.TotalTokens,
		Elapsed:     elapsed,
	}, nil
}
