// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/services"
)

// Service periodically enforces retention policies:
//   - Hard-deletes stopped and failed processes past the retention window
//     (their work items cascade)
//   - Purges soft-deleted work items past their suppression TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config    *config.RetentionConfig
	processes *services.ProcessService
	items     *services.WorkItemService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	processes *services.ProcessService,
	items *services.WorkItemService,
) *Service {
	return &Service{
		config:    cfg,
		processes: processes,
		items:     items,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"process_retention_days", s.config.ProcessRetentionDays,
		"deleted_item_ttl", s.config.DeletedItemTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldProcesses(ctx)
	s.purgeDeletedItems(ctx)
}

func (s *Service) deleteOldProcesses(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.ProcessRetentionDays)
	count, err := s.processes.DeleteTerminatedBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: process deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old processes", "count", count)
	}
}

func (s *Service) purgeDeletedItems(_ context.Context) {
	cutoff := time.Now().Add(-s.config.DeletedItemTTL)
	count, err := s.items.PurgeDeletedBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: work item purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged soft-deleted work items", "count", count)
	}
}
