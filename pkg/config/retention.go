package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls the background data retention service.
type RetentionConfig struct {
	// ProcessRetentionDays is how long stopped and failed processes are
	// kept before hard deletion. Work items cascade with their process.
	ProcessRetentionDays int

	// DeletedItemTTL is how long soft-deleted work items keep suppressing
	// rediscovery before they are purged.
	DeletedItemTTL time.Duration

	// CleanupInterval is the period of the retention loop.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ProcessRetentionDays: 90,
		DeletedItemTTL:       30 * 24 * time.Hour,
		CleanupInterval:      time.Hour,
	}
}

// LoadRetentionConfigFromEnv reads retention settings from the environment.
func LoadRetentionConfigFromEnv() *RetentionConfig {
	cfg := DefaultRetentionConfig()
	cfg.ProcessRetentionDays = getEnvInt("RETENTION_PROCESS_DAYS", cfg.ProcessRetentionDays)
	cfg.DeletedItemTTL = getEnvDuration("RETENTION_DELETED_ITEM_TTL", cfg.DeletedItemTTL)
	cfg.CleanupInterval = getEnvDuration("RETENTION_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

// Validate checks the retention configuration.
func (c *RetentionConfig) Validate() error {
	if c.ProcessRetentionDays < 1 {
		return fmt.Errorf("process retention days must be at least 1, got %d", c.ProcessRetentionDays)
	}
	if c.DeletedItemTTL <= 0 {
		return fmt.Errorf("deleted item TTL must be positive, got %s", c.DeletedItemTTL)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", c.CleanupInterval)
	}
	return nil
}
