// Package config provides typed configuration for the monitoring pipeline,
// loaded from environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration assembled at startup.
type Config struct {
	Upstream  *UpstreamConfig
	Scheduler *SchedulerConfig
	Pipeline  *PipelineConfig
	Retention *RetentionConfig
}

// LoadFromEnv builds the full configuration from the environment and
// validates it.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Upstream:  LoadUpstreamConfigFromEnv(),
		Scheduler: LoadSchedulerConfigFromEnv(),
		Pipeline:  LoadPipelineConfigFromEnv(),
		Retention: LoadRetentionConfigFromEnv(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all sections.
func (c *Config) Validate() error {
	if err := c.Upstream.Validate(); err != nil {
		return fmt.Errorf("upstream config: %w", err)
	}
	if err := c.Scheduler.Validate(); err != nil {
		return fmt.Errorf("scheduler config: %w", err)
	}
	if err := c.Pipeline.Validate(); err != nil {
		return fmt.Errorf("pipeline config: %w", err)
	}
	if err := c.Retention.Validate(); err != nil {
		return fmt.Errorf("retention config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
