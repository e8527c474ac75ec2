package config

import "fmt"

// MaxProcessDurationMinutes is the hard upper bound on a monitoring
// process's wall-clock budget.
const MaxProcessDurationMinutes = 1440

// DefaultDisclosurePrefix identifies a comment as AI-generated. Every
// stored comment must start with the configured prefix.
const DefaultDisclosurePrefix = "[Dieser Kommentar stammt von einem KI-ChatBot.]"

// PipelineConfig controls stage worker behaviour.
type PipelineConfig struct {
	// DisclosurePrefix is prepended to every generated comment unless the
	// LLM output already starts with it.
	DisclosurePrefix string

	// DefaultArticleLimit caps articles taken from one discovery pass when
	// the process does not set its own limit.
	DefaultArticleLimit int
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		DisclosurePrefix:    DefaultDisclosurePrefix,
		DefaultArticleLimit: 20,
	}
}

// LoadPipelineConfigFromEnv reads pipeline settings from the environment.
func LoadPipelineConfigFromEnv() *PipelineConfig {
	cfg := DefaultPipelineConfig()
	cfg.DisclosurePrefix = getEnv("AI_DISCLOSURE_PREFIX", cfg.DisclosurePrefix)
	cfg.DefaultArticleLimit = getEnvInt("DEFAULT_ARTICLE_LIMIT", cfg.DefaultArticleLimit)
	return cfg
}

// Validate checks the pipeline configuration.
func (c *PipelineConfig) Validate() error {
	if c.DisclosurePrefix == "" {
		return fmt.Errorf("disclosure prefix must not be empty")
	}
	if c.DefaultArticleLimit < 1 {
		return fmt.Errorf("default article limit must be at least 1, got %d", c.DefaultArticleLimit)
	}
	return nil
}
