package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Upstream.RequestsPerSecond)
	assert.Equal(t, 30*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, 5, cfg.Upstream.MaxRedirects)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.TickInterval)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.RetryBackoffBase)
	assert.Equal(t, 600*time.Second, cfg.Scheduler.RetryBackoffCap)
	assert.Equal(t, DefaultDisclosurePrefix, cfg.Pipeline.DisclosurePrefix)
	assert.Equal(t, 20, cfg.Pipeline.DefaultArticleLimit)
	assert.Equal(t, 90, cfg.Retention.ProcessRetentionDays)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.DeletedItemTTL)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://staging.example.test")
	t.Setenv("UPSTREAM_REQUESTS_PER_SECOND", "0.5")
	t.Setenv("SCHEDULER_TICK_INTERVAL", "10s")
	t.Setenv("AI_DISCLOSURE_PREFIX", "[KI-Test]")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.test", cfg.Upstream.BaseURL)
	assert.Equal(t, 0.5, cfg.Upstream.RequestsPerSecond)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.TickInterval)
	assert.Equal(t, "[KI-Test]", cfg.Pipeline.DisclosurePrefix)
}

func TestLoadFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("UPSTREAM_REQUESTS_PER_SECOND", "not-a-number")
	t.Setenv("SCHEDULER_TICK_INTERVAL", "sixty seconds")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Upstream.RequestsPerSecond)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.TickInterval)
}

func TestUpstreamConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UpstreamConfig)
		wantErr string
	}{
		{"valid defaults", func(c *UpstreamConfig) {}, ""},
		{"bad base url", func(c *UpstreamConfig) { c.BaseURL = "://nope" }, "invalid base URL"},
		{"relative base url", func(c *UpstreamConfig) { c.BaseURL = "/just/a/path" }, "invalid base URL"},
		{"zero timeout", func(c *UpstreamConfig) { c.RequestTimeout = 0 }, "timeout"},
		{"negative rate", func(c *UpstreamConfig) { c.RequestsPerSecond = -1 }, "requests per second"},
		{"zero redirects", func(c *UpstreamConfig) { c.MaxRedirects = 0 }, "redirects"},
		{"zero sessions", func(c *UpstreamConfig) { c.MaxSessions = 0 }, "sessions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultUpstreamConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSchedulerConfigValidate(t *testing.T) {
	cfg := DefaultSchedulerConfig()
	require.NoError(t, cfg.Validate())

	cfg.TickInterval = 0
	assert.ErrorContains(t, cfg.Validate(), "tick interval")

	cfg = DefaultSchedulerConfig()
	cfg.RetryBackoffCap = cfg.RetryBackoffBase - time.Second
	assert.ErrorContains(t, cfg.Validate(), "backoff")

	cfg = DefaultSchedulerConfig()
	cfg.StageQueueWorkers = 0
	assert.ErrorContains(t, cfg.Validate(), "queue workers")
}

func TestRetentionConfigValidate(t *testing.T) {
	cfg := DefaultRetentionConfig()
	require.NoError(t, cfg.Validate())

	cfg.ProcessRetentionDays = 0
	assert.ErrorContains(t, cfg.Validate(), "retention days")

	cfg = DefaultRetentionConfig()
	cfg.DeletedItemTTL = 0
	assert.ErrorContains(t, cfg.Validate(), "TTL")
}

func TestPipelineConfigValidate(t *testing.T) {
	cfg := DefaultPipelineConfig()
	require.NoError(t, cfg.Validate())

	cfg.DisclosurePrefix = ""
	assert.ErrorContains(t, cfg.Validate(), "disclosure prefix")

	cfg = DefaultPipelineConfig()
	cfg.DefaultArticleLimit = 0
	assert.ErrorContains(t, cfg.Validate(), "article limit")
}
