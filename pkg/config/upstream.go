package config

import (
	"fmt"
	"net/url"
	"time"
)

// UpstreamConfig controls the HTTP client talking to the upstream platform.
type UpstreamConfig struct {
	// BaseURL is the root of the upstream platform.
	BaseURL string

	// RequestTimeout applies to each individual upstream HTTP call.
	RequestTimeout time.Duration

	// RequestsPerSecond feeds the global rate limiter; successive upstream
	// requests are separated by at least 1/RequestsPerSecond seconds.
	RequestsPerSecond float64

	// MaxRedirects caps the sanitised redirect loop.
	MaxRedirects int

	// SessionIdleTimeout closes authenticated sessions unused this long.
	SessionIdleTimeout time.Duration

	// MaxSessions bounds concurrently open authenticated sessions.
	MaxSessions int
}

// DefaultUpstreamConfig returns the built-in upstream defaults.
func DefaultUpstreamConfig() *UpstreamConfig {
	return &UpstreamConfig{
		BaseURL:            "https://new.mymoment.ch",
		RequestTimeout:     30 * time.Second,
		RequestsPerSecond:  2.0,
		MaxRedirects:       5,
		SessionIdleTimeout: 30 * time.Minute,
		MaxSessions:        20,
	}
}

// LoadUpstreamConfigFromEnv reads upstream settings from the environment.
func LoadUpstreamConfigFromEnv() *UpstreamConfig {
	cfg := DefaultUpstreamConfig()
	cfg.BaseURL = getEnv("UPSTREAM_BASE_URL", cfg.BaseURL)
	cfg.RequestTimeout = getEnvDuration("UPSTREAM_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.RequestsPerSecond = getEnvFloat("UPSTREAM_REQUESTS_PER_SECOND", cfg.RequestsPerSecond)
	cfg.MaxRedirects = getEnvInt("UPSTREAM_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.SessionIdleTimeout = getEnvDuration("UPSTREAM_SESSION_IDLE_TIMEOUT", cfg.SessionIdleTimeout)
	cfg.MaxSessions = getEnvInt("UPSTREAM_MAX_SESSIONS", cfg.MaxSessions)
	return cfg
}

// Validate checks the upstream configuration.
func (c *UpstreamConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base URL %q", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second must not be negative, got %g", c.RequestsPerSecond)
	}
	if c.MaxRedirects < 1 {
		return fmt.Errorf("max redirects must be at least 1, got %d", c.MaxRedirects)
	}
	if c.MaxSessions < 1 {
		return fmt.Errorf("max sessions must be at least 1, got %d", c.MaxSessions)
	}
	return nil
}
