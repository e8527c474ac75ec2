package config

import (
	"fmt"
	"time"
)

// SchedulerConfig controls the periodic orchestrator and the stage task
// registry.
type SchedulerConfig struct {
	// TickInterval is the period of the scheduler loop that spawns stage
	// workers for running processes and enforces deadlines.
	TickInterval time.Duration

	// StageQueueWorkers is the number of concurrent task runners per stage
	// queue. One runner per queue preserves strict per-stage ordering.
	StageQueueWorkers int

	// MaxStageRetries is how often a failed stage task is retried with
	// backoff before the owning process is marked failed.
	MaxStageRetries int

	// RetryBackoffBase is the first retry delay; doubled per attempt.
	RetryBackoffBase time.Duration

	// RetryBackoffCap bounds the retry delay.
	RetryBackoffCap time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight stage
	// tasks during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TickInterval:            60 * time.Second,
		StageQueueWorkers:       1,
		MaxStageRetries:         3,
		RetryBackoffBase:        60 * time.Second,
		RetryBackoffCap:         600 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

// LoadSchedulerConfigFromEnv reads scheduler settings from the environment.
func LoadSchedulerConfigFromEnv() *SchedulerConfig {
	cfg := DefaultSchedulerConfig()
	cfg.TickInterval = getEnvDuration("SCHEDULER_TICK_INTERVAL", cfg.TickInterval)
	cfg.StageQueueWorkers = getEnvInt("SCHEDULER_STAGE_QUEUE_WORKERS", cfg.StageQueueWorkers)
	cfg.MaxStageRetries = getEnvInt("SCHEDULER_MAX_STAGE_RETRIES", cfg.MaxStageRetries)
	cfg.RetryBackoffBase = getEnvDuration("SCHEDULER_RETRY_BACKOFF_BASE", cfg.RetryBackoffBase)
	cfg.RetryBackoffCap = getEnvDuration("SCHEDULER_RETRY_BACKOFF_CAP", cfg.RetryBackoffCap)
	cfg.GracefulShutdownTimeout = getEnvDuration("SCHEDULER_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	return cfg
}

// Validate checks the scheduler configuration.
func (c *SchedulerConfig) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.StageQueueWorkers < 1 {
		return fmt.Errorf("stage queue workers must be at least 1, got %d", c.StageQueueWorkers)
	}
	if c.MaxStageRetries < 0 {
		return fmt.Errorf("max stage retries must not be negative, got %d", c.MaxStageRetries)
	}
	if c.RetryBackoffBase <= 0 || c.RetryBackoffCap < c.RetryBackoffBase {
		return fmt.Errorf("retry backoff must satisfy 0 < base <= cap, got base=%s cap=%s",
			c.RetryBackoffBase, c.RetryBackoffCap)
	}
	return nil
}
