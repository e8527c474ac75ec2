// Package scheduler drives the monitoring pipeline. A periodic tick spawns
// one stage task per (process, stage) slot, enforces process deadlines, and
// completes generate-only runs. Stage tasks run on per-stage queues so a
// slow posting pass never starves discovery.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/workitem"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/pipeline"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
)

// StageRunner is the slice of the pipeline the scheduler drives.
type StageRunner interface {
	Run(ctx context.Context, proc *ent.Process, stage string) (*pipeline.StageResult, error)
	RunManualPosting(ctx context.Context, proc *ent.Process) *pipeline.StageResult
}

// Scheduler owns the stage task queues and the orchestration tick.
type Scheduler struct {
	cfg       *config.SchedulerConfig
	processes *services.ProcessService
	items     *services.WorkItemService
	sessions  *upstream.Registry
	runner    StageRunner

	reg    *taskRegistry
	queues map[string]chan *Task

	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// stageOrder is the fixed pass order within one tick.
var stageOrder = []string{
	services.StageDiscovery,
	services.StagePreparation,
	services.StageGeneration,
	services.StagePosting,
}

// New creates a scheduler over the given services, session registry, and
// stage runner.
func New(
	cfg *config.SchedulerConfig,
	processes *services.ProcessService,
	items *services.WorkItemService,
	sessions *upstream.Registry,
	runner StageRunner,
) *Scheduler {
	queues := make(map[string]chan *Task, len(stageOrder))
	for _, stage := range stageOrder {
		queues[stage] = make(chan *Task, 64)
	}
	return &Scheduler{
		cfg:       cfg,
		processes: processes,
		items:     items,
		sessions:  sessions,
		runner:    runner,
		reg:       newTaskRegistry(),
		queues:    queues,
	}
}

// Start launches the stage queue workers and the orchestration loop.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	for _, stage := range stageOrder {
		for i := 0; i < s.cfg.StageQueueWorkers; i++ {
			s.wg.Add(1)
			go s.worker(ctx, stage)
		}
	}

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.cfg.TickInterval)
		defer ticker.Stop()
		slog.Info("Scheduler started",
			"tick_interval", s.cfg.TickInterval,
			"stage_queue_workers", s.cfg.StageQueueWorkers)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// Stop shuts the scheduler down, waiting up to the graceful shutdown
// timeout for in-flight stage tasks.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done

		finished := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(finished)
		}()
		select {
		case <-finished:
			slog.Info("Scheduler stopped")
		case <-time.After(s.cfg.GracefulShutdownTimeout):
			slog.Warn("Scheduler shutdown timed out waiting for stage tasks",
				"timeout", s.cfg.GracefulShutdownTimeout)
		}
	})
}

// StartProcess transitions the process to running and enqueues an
// immediate discovery pass so the first articles arrive before the next
// tick.
func (s *Scheduler) StartProcess(ctx context.Context, userID, processID string) (*ent.Process, error) {
	proc, err := s.processes.Start(ctx, userID, processID)
	if err != nil {
		return nil, err
	}
	if err := s.enqueue(ctx, proc.ID, services.StageDiscovery, false, 0); err != nil {
		slog.Warn("Failed to enqueue initial discovery", "process_id", proc.ID, "error", err)
	}
	return proc, nil
}

// StopProcess revokes the process's in-flight tasks and stops it with the
// manual reason.
func (s *Scheduler) StopProcess(ctx context.Context, userID, processID string) error {
	if _, err := s.processes.GetProcess(ctx, userID, processID); err != nil {
		return err
	}
	s.reg.revoke(processID)
	return s.processes.Stop(ctx, processID, services.StopReasonManual)
}

// TriggerPosting enqueues a manual posting pass. Manual passes bypass the
// generate-only guard, so comments held back by a generate-only process
// can be posted on demand.
func (s *Scheduler) TriggerPosting(ctx context.Context, userID, processID string) error {
	proc, err := s.processes.GetProcess(ctx, userID, processID)
	if err != nil {
		return err
	}
	return s.enqueue(ctx, proc.ID, services.StagePosting, true, 0)
}

// tick runs one orchestration pass: deadlines first, then generate-only
// completion, then stage scheduling for whatever is still running. Idle
// upstream sessions are closed as housekeeping.
func (s *Scheduler) tick(ctx context.Context) {
	s.enforceDeadlines(ctx)

	procs, err := s.processes.ListRunning(ctx)
	if err != nil {
		slog.Error("Failed to list running processes", "error", err)
		return
	}
	for _, proc := range procs {
		if s.completeGenerateOnly(ctx, proc) {
			continue
		}
		s.scheduleStages(ctx, proc)
	}

	if closed := s.sessions.CloseIdle(); closed > 0 {
		slog.Debug("Closed idle upstream sessions", "count", closed)
	}
}

// enforceDeadlines stops every running process whose duration budget has
// elapsed and revokes its in-flight tasks.
func (s *Scheduler) enforceDeadlines(ctx context.Context) {
	expired, err := s.processes.FindExpired(ctx, time.Now())
	if err != nil {
		slog.Error("Failed to find expired processes", "error", err)
		return
	}
	for _, proc := range expired {
		s.reg.revoke(proc.ID)
		if err := s.processes.Stop(ctx, proc.ID, services.StopReasonTimeout); err != nil {
			slog.Error("Failed to stop expired process", "process_id", proc.ID, "error", err)
			continue
		}
		slog.Info("Process deadline reached", "process_id", proc.ID, "expires_at", proc.ExpiresAt)
	}
}

// completeGenerateOnly stops a generate-only process once every item has
// reached a terminal state and no stage task is still in flight. Returns
// true when the process was stopped.
func (s *Scheduler) completeGenerateOnly(ctx context.Context, proc *ent.Process) bool {
	if !proc.GenerateOnly {
		return false
	}
	for _, stage := range stageOrder {
		if _, busy := s.reg.active(proc.ID, stage); busy {
			return false
		}
	}

	counts, err := s.items.CountByStatus(ctx, proc.ID)
	if err != nil {
		slog.Error("Failed to count work items", "process_id", proc.ID, "error", err)
		return false
	}
	pending := counts[string(workitem.StatusDiscovered)] + counts[string(workitem.StatusPrepared)]
	settled := counts[string(workitem.StatusGenerated)] +
		counts[string(workitem.StatusPosted)] +
		counts[string(workitem.StatusFailed)] +
		counts[string(workitem.StatusDeleted)]
	if pending > 0 || settled == 0 {
		return false
	}

	if err := s.processes.Stop(ctx, proc.ID, services.StopReasonGenerateOnlyComplete); err != nil {
		slog.Error("Failed to complete generate-only process", "process_id", proc.ID, "error", err)
		return false
	}
	slog.Info("Generate-only process complete", "process_id", proc.ID, "generated", settled)
	return true
}

// scheduleStages enqueues one pass per free stage slot. Posting is never
// scheduled for generate-only processes; manual triggers handle those.
func (s *Scheduler) scheduleStages(ctx context.Context, proc *ent.Process) {
	for _, stage := range stageOrder {
		if stage == services.StagePosting && proc.GenerateOnly {
			continue
		}
		if _, busy := s.reg.active(proc.ID, stage); busy {
			continue
		}
		if err := s.enqueue(ctx, proc.ID, stage, false, 0); err != nil {
			slog.Warn("Failed to enqueue stage task",
				"process_id", proc.ID, "stage", stage, "error", err)
		}
	}
}

// enqueue registers a task, records its handle on the process, and pushes
// it onto the stage queue. A busy (process, stage) slot is not an error;
// the next tick tries again.
func (s *Scheduler) enqueue(ctx context.Context, processID, stage string, manual bool, attempt int) error {
	t := &Task{
		ID:         uuid.New().String(),
		ProcessID:  processID,
		Stage:      stage,
		Manual:     manual,
		Attempt:    attempt,
		EnqueuedAt: time.Now(),
	}
	if !s.reg.add(t) {
		return nil
	}
	if err := s.processes.SetStageTask(ctx, processID, stage, t.ID); err != nil {
		s.reg.remove(t.ID)
		return err
	}

	select {
	case s.queues[stage] <- t:
		return nil
	default:
		s.reg.remove(t.ID)
		if err := s.processes.ClearStageTask(ctx, processID, stage); err != nil {
			slog.Warn("Failed to clear stage task handle", "process_id", processID, "stage", stage, "error", err)
		}
		return fmt.Errorf("%s queue is full", stage)
	}
}

// worker consumes one stage queue until the scheduler shuts down.
func (s *Scheduler) worker(ctx context.Context, stage string) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-s.queues[stage]:
			// Revoked while queued.
			if !s.reg.contains(t.ID) {
				continue
			}
			s.runTask(ctx, t)
		}
	}
}

// runTask executes one stage pass and applies the retry policy on full
// failure. Manual passes never retry.
func (s *Scheduler) runTask(ctx context.Context, t *Task) {
	defer s.finish(t)

	proc, err := s.processes.GetProcessByID(ctx, t.ProcessID)
	if err != nil {
		slog.Error("Failed to load process for stage task",
			"process_id", t.ProcessID, "stage", t.Stage, "error", err)
		return
	}
	// The process may have stopped between enqueue and execution.
	if !t.Manual && proc.Status != process.StatusRunning {
		return
	}

	var result *pipeline.StageResult
	if t.Manual && t.Stage == services.StagePosting {
		result = s.runner.RunManualPosting(ctx, proc)
	} else {
		result, err = s.runner.Run(ctx, proc, t.Stage)
		if err != nil {
			slog.Error("Stage task failed to run",
				"process_id", t.ProcessID, "stage", t.Stage, "error", err)
			return
		}
	}

	slog.Debug("Stage pass finished",
		"process_id", t.ProcessID,
		"stage", t.Stage,
		"status", result.Status,
		"advanced", result.Advanced,
		"failed", result.Failed,
		"elapsed_ms", result.ElapsedMS,
		"attempt", t.Attempt)

	if !t.Manual && result.Status == pipeline.StatusFailed && len(result.Errors) > 0 {
		s.retryOrFail(ctx, t, result)
	}
}

// finish releases the task's slot and clears its handle on the process.
// Uses a fresh context so cleanup survives scheduler shutdown.
func (s *Scheduler) finish(t *Task) {
	s.reg.remove(t.ID)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.processes.ClearStageTask(ctx, t.ProcessID, t.Stage)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		slog.Warn("Failed to clear stage task handle",
			"process_id", t.ProcessID, "stage", t.Stage, "error", err)
	}
}

// retryOrFail re-enqueues a fully failed stage pass with backoff, or marks
// the process failed once the retry budget is spent.
func (s *Scheduler) retryOrFail(ctx context.Context, t *Task, result *pipeline.StageResult) {
	attempt := t.Attempt + 1
	if attempt > s.cfg.MaxStageRetries {
		msg := fmt.Sprintf("%s stage failed after %d retries: %s",
			t.Stage, s.cfg.MaxStageRetries, strings.Join(result.Errors, "; "))
		if err := s.processes.MarkFailed(ctx, t.ProcessID, msg); err != nil {
			slog.Error("Failed to mark process failed", "process_id", t.ProcessID, "error", err)
		}
		slog.Warn("Stage retry budget spent, process failed",
			"process_id", t.ProcessID, "stage", t.Stage, "retries", s.cfg.MaxStageRetries)
		return
	}

	delay := s.backoff(attempt)
	slog.Info("Retrying stage task",
		"process_id", t.ProcessID, "stage", t.Stage, "attempt", attempt, "delay", delay)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		if err := s.enqueue(ctx, t.ProcessID, t.Stage, false, attempt); err != nil {
			slog.Warn("Failed to re-enqueue stage task",
				"process_id", t.ProcessID, "stage", t.Stage, "error", err)
		}
	}()
}

// backoff doubles the base delay per attempt, caps it, and adds jitter so
// retries across processes spread out.
func (s *Scheduler) backoff(attempt int) time.Duration {
	d := s.cfg.RetryBackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= s.cfg.RetryBackoffCap {
			d = s.cfg.RetryBackoffCap
			break
		}
	}
	if quarter := d / 4; quarter > 0 {
		d += time.Duration(rand.Int64N(int64(quarter)))
	}
	if d > s.cfg.RetryBackoffCap {
		return s.cfg.RetryBackoffCap
	}
	return d
}
