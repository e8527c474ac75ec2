package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Authorization string
	Body          openai.ChatCompletionRequest
}

// newFakeCompletionServer answers /chat/completions with a fixed
// completion and records the last request.
func newFakeCompletionServer(t *testing.T, content string, totalTokens int) (*httptest.Server, *capturedRequest) {
	captured := &capturedRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Authorization = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.Body))

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Model:  captured.Body.Model,
			Choices: []openai.ChatCompletionChoice{
				{
					Index:        0,
					Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
					FinishReason: openai.FinishReasonStop,
				},
			},
			Usage: openai.Usage{PromptTokens: totalTokens / 2, CompletionTokens: totalTokens / 2, TotalTokens: totalTokens},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(ts.Close)
	return ts, captured
}

func TestGenerate(t *testing.T) {
	ts, captured := newFakeCompletionServer(t, "  Ein toller Text!  ", 42)

	client, err := NewClient(ProviderConfig{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o-mini",
		APIKey:      "sk-test",
		MaxTokens:   300,
		Temperature: 0.7,
		BaseURL:     ts.URL,
	})
	require.NoError(t, err)

	result, err := client.Generate(context.Background(), "Du bist hilfreich.", "Kommentiere den Artikel.")
	require.NoError(t, err)

	assert.Equal(t, "Ein toller Text!", result.Text)
	assert.Equal(t, 42, result.TotalTokens)
	assert.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))

	assert.Equal(t, "Bearer sk-test", captured.Authorization)
	assert.Equal(t, "gpt-4o-mini", captured.Body.Model)
	assert.Equal(t, 300, captured.Body.MaxTokens)
	assert.InDelta(t, 0.7, captured.Body.Temperature, 0.001)
	require.Len(t, captured.Body.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Body.Messages[0].Role)
	assert.Equal(t, "Du bist hilfreich.", captured.Body.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, captured.Body.Messages[1].Role)
	assert.Equal(t, "Kommentiere den Artikel.", captured.Body.Messages[1].Content)
}

func TestGenerateMistralUsesCompatibleAPI(t *testing.T) {
	ts, captured := newFakeCompletionServer(t, "Très bien.", 10)

	client, err := NewClient(ProviderConfig{
		Provider: ProviderMistral,
		Model:    "mistral-small-latest",
		APIKey:   "mk-test",
		BaseURL:  ts.URL,
	})
	require.NoError(t, err)

	result, err := client.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "Très bien.", result.Text)
	assert.Equal(t, "mistral-small-latest", captured.Body.Model)
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProviderConfig
		wantErr string
	}{
		{
			name:    "missing API key",
			cfg:     ProviderConfig{Provider: ProviderOpenAI, Model: "gpt-4o-mini"},
			wantErr: "API key",
		},
		{
			name:    "missing model",
			cfg:     ProviderConfig{Provider: ProviderOpenAI, APIKey: "sk-test"},
			wantErr: "model name",
		},
		{
			name:    "unsupported provider",
			cfg:     ProviderConfig{Provider: "anthropic", Model: "x", APIKey: "k"},
			wantErr: "unsupported LLM provider",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGenerateRateLimitIsRetryable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limit exceeded","type":"requests","code":"rate_limit_exceeded"}}`)
	}))
	t.Cleanup(ts.Close)

	client, err := NewClient(ProviderConfig{Provider: ProviderOpenAI, Model: "gpt-4o-mini", APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "s", "u")
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 429, pe.Status)
	assert.True(t, pe.Retryable())
	assert.Equal(t, ProviderOpenAI, pe.Provider)
}

func TestGenerateAuthFailureIsPermanent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	t.Cleanup(ts.Close)

	client, err := NewClient(ProviderConfig{Provider: ProviderOpenAI, Model: "gpt-4o-mini", APIKey: "bad", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "s", "u")
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 401, pe.Status)
	assert.False(t, pe.Retryable())
}

func TestGenerateEmptyCompletion(t *testing.T) {
	ts, _ := newFakeCompletionServer(t, "   ", 5)

	client, err := NewClient(ProviderConfig{Provider: ProviderOpenAI, Model: "gpt-4o-mini", APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "s", "u")
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Message, "empty")
	assert.False(t, pe.Retryable())
}

func TestProviderErrorRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  ProviderError
		want bool
	}{
		{"rate limit", ProviderError{Status: 429}, true},
		{"server error", ProviderError{Status: 503}, true},
		{"transport failure", ProviderError{Err: errors.New("connection refused")}, true},
		{"bad request", ProviderError{Status: 400}, false},
		{"unauthorized", ProviderError{Status: 401}, false},
		{"empty completion", ProviderError{Message: "completion returned empty text"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Retryable())
		})
	}
}
