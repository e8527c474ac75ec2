package llm

import (
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ProviderError carries the provider, model, and HTTP status of a failed
// generation so callers can decide whether a retry is worthwhile.
type ProviderError struct {
	Provider string
	Model    string
	Status   int
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s/%s: %s (status %d)", e.Provider, e.Model, e.Message, e.Status)
	}
	return fmt.Sprintf("%s/%s: %s", e.Provider, e.Model, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is transient: rate limits,
// server errors, and timeouts. Authentication and validation failures
// are permanent.
func (e *ProviderError) Retryable() bool {
	switch {
	case e.Status == 429:
		return true
	case e.Status >= 500:
		return true
	case e.Status == 0 && e.Err != nil:
		// Transport-level failure without an HTTP status
		return true
	}
	return false
}

// wrapProviderError normalizes SDK errors into a ProviderError. Already
// wrapped errors pass through unchanged.
func wrapProviderError(err error, provider, model string) error {
	if err == nil {
		return nil
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}

	wrapped := &ProviderError{Provider: provider, Model: model, Message: err.Error(), Err: err}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		wrapped.Status = apiErr.HTTPStatusCode
		wrapped.Message = apiErr.Message
		if code, ok := apiErr.Code.(string); ok {
			wrapped.Code = code
		}
		return wrapped
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		wrapped.Status = reqErr.HTTPStatusCode
		return wrapped
	}

	return wrapped
}
