// yourMoment server runs the monitoring scheduler and the HTTP control
// surface for discovering articles, generating AI comments, and posting
// them back to the upstream platform.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourmoment/yourmoment/pkg/api"
	"github.com/yourmoment/yourmoment/pkg/cleanup"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/database"
	"github.com/yourmoment/yourmoment/pkg/pipeline"
	"github.com/yourmoment/yourmoment/pkg/ratelimit"
	"github.com/yourmoment/yourmoment/pkg/scheduler"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
	"github.com/yourmoment/yourmoment/pkg/vault"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting yourMoment", "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Credential vault
	keyFile := getEnv("YOURMOMENT_KEY_FILE", "./data/encryption.key")
	credentialVault, err := vault.NewFromEnv("YOURMOMENT_ENCRYPTION_KEY", keyFile)
	if err != nil {
		slog.Error("Failed to initialize credential vault", "error", err)
		os.Exit(1)
	}

	// 4. Domain services
	loginService := services.NewLoginService(dbClient.Client, credentialVault)
	llmConfigService := services.NewLLMConfigService(dbClient.Client, credentialVault)
	processService := services.NewProcessService(dbClient.Client)
	workItemService := services.NewWorkItemService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Upstream session registry behind the global rate limiter
	limiter := ratelimit.New(cfg.Upstream.RequestsPerSecond)
	sessions := upstream.NewRegistry(cfg.Upstream, limiter, loginService)
	defer sessions.CloseAll()

	// 6. Pipeline and scheduler
	pipe := pipeline.New(processService, workItemService, llmConfigService, sessions, cfg.Pipeline)
	sched := scheduler.New(cfg.Scheduler, processService, workItemService, sessions, pipe)
	sched.Start(ctx)
	slog.Info("Scheduler started", "tick_interval", cfg.Scheduler.TickInterval)

	// 6a. Data retention
	cleanupService := cleanup.NewService(cfg.Retention, processService, workItemService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 7. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, processService, workItemService, sched)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("yourMoment started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: scheduler first so no stage task is cut off
	// mid-pass, then the HTTP server.
	sched.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
