package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/masking"
)

// Pipeline stage names, also used as the task-handle keys on a process.
const (
	StageDiscovery   = "discovery"
	StagePreparation = "preparation"
	StageGeneration  = "generation"
	StagePosting     = "posting"
)

// Stop reasons recorded on a process when it leaves the running state.
const (
	StopReasonManual               = "manual"
	StopReasonTimeout              = "timeout"
	StopReasonStageError           = "stage_error"
	StopReasonGenerateOnlyComplete = "generate_only_complete"
)

// CreateProcessInput contains the data for a new monitoring process.
type CreateProcessInput struct {
	UserID             string
	Name               string
	Description        string
	MaxDurationMinutes int
	GenerateOnly       bool

	FilterTab        string
	FilterCategoryID *int
	FilterTaskID     *int
	FilterSearch     string
	FilterSort       string
	ArticleLimit     int

	LLMConfigID       string
	LoginIDs          []string
	PromptTemplateIDs []string
}

// ProcessService manages the monitoring process lifecycle.
type ProcessService struct {
	client *ent.Client
}

// NewProcessService creates a new ProcessService.
func NewProcessService(client *ent.Client) *ProcessService {
	if client == nil {
		panic("NewProcessService: client must not be nil")
	}
	return &ProcessService{client: client}
}

// CreateProcess creates a process in the stopped state. A process needs
// at least one login and one prompt template before it can run.
func (s *ProcessService) CreateProcess(ctx context.Context, input CreateProcessInput) (*ent.Process, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if input.MaxDurationMinutes < 1 || input.MaxDurationMinutes > config.MaxProcessDurationMinutes {
		return nil, NewValidationError("max_duration_minutes",
			fmt.Sprintf("must be between 1 and %d", config.MaxProcessDurationMinutes))
	}
	if input.LLMConfigID == "" {
		return nil, NewValidationError("llm_config_id", "required")
	}
	if len(input.LoginIDs) == 0 {
		return nil, NewValidationError("login_ids", "at least one login is required")
	}
	if len(input.PromptTemplateIDs) == 0 {
		return nil, NewValidationError("prompt_template_ids", "at least one prompt template is required")
	}
	if input.ArticleLimit < 0 {
		return nil, NewValidationError("article_limit", "must not be negative")
	}

	builder := s.client.Process.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetName(input.Name).
		SetMaxDurationMinutes(input.MaxDurationMinutes).
		SetGenerateOnly(input.GenerateOnly).
		SetLlmConfigID(input.LLMConfigID).
		AddLoginIDs(input.LoginIDs...).
		AddPromptTemplateIDs(input.PromptTemplateIDs...)

	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.FilterTab != "" {
		builder.SetFilterTab(input.FilterTab)
	}
	if input.FilterCategoryID != nil {
		builder.SetFilterCategoryID(*input.FilterCategoryID)
	}
	if input.FilterTaskID != nil {
		builder.SetFilterTaskID(*input.FilterTaskID)
	}
	if input.FilterSearch != "" {
		builder.SetFilterSearch(input.FilterSearch)
	}
	if input.FilterSort != "" {
		builder.SetFilterSort(input.FilterSort)
	}
	if input.ArticleLimit > 0 {
		builder.SetArticleLimit(input.ArticleLimit)
	}

	proc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewValidationError("references", "login, template, or LLM config does not exist")
		}
		return nil, fmt.Errorf("failed to create process: %w", err)
	}
	return proc, nil
}

// GetProcess retrieves a process scoped to its owner, with logins and
// prompt templates loaded.
func (s *ProcessService) GetProcess(ctx context.Context, userID, processID string) (*ent.Process, error) {
	proc, err := s.client.Process.Query().
		Where(process.IDEQ(processID), process.UserIDEQ(userID)).
		WithLogins().
		WithPromptTemplates().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get process: %w", err)
	}
	return proc, nil
}

// GetProcessByID retrieves a process without owner scoping, with logins
// and prompt templates loaded. For scheduler-internal reads only; user
// facing paths go through GetProcess.
func (s *ProcessService) GetProcessByID(ctx context.Context, processID string) (*ent.Process, error) {
	proc, err := s.client.Process.Query().
		Where(process.IDEQ(processID)).
		WithLogins().
		WithPromptTemplates().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get process: %w", err)
	}
	return proc, nil
}

// ListProcesses returns the user's processes, newest first.
func (s *ProcessService) ListProcesses(ctx context.Context, userID string) ([]*ent.Process, error) {
	processes, err := s.client.Process.Query().
		Where(process.UserIDEQ(userID)).
		Order(ent.Desc(process.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return processes, nil
}

// Start transitions a process to running, stamps started_at, and derives
// the expiry deadline from the duration budget. Starting a running
// process is an error.
func (s *ProcessService) Start(ctx context.Context, userID, processID string) (*ent.Process, error) {
	proc, err := s.GetProcess(ctx, userID, processID)
	if err != nil {
		return nil, err
	}
	if proc.Status == process.StatusRunning {
		return nil, NewValidationError("status", "process is already running")
	}
	if len(proc.Edges.Logins) == 0 {
		return nil, NewValidationError("login_ids", "at least one login is required")
	}
	if len(proc.Edges.PromptTemplates) == 0 {
		return nil, NewValidationError("prompt_template_ids", "at least one prompt template is required")
	}

	now := time.Now()
	expires := now.Add(time.Duration(proc.MaxDurationMinutes) * time.Minute)

	proc, err = proc.Update().
		SetStatus(process.StatusRunning).
		SetStartedAt(now).
		SetExpiresAt(expires).
		ClearStoppedAt().
		ClearStopReason().
		ClearErrorMessage().
		ClearDiscoveryTaskID().
		ClearPreparationTaskID().
		ClearGenerationTaskID().
		ClearPostingTaskID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start process: %w", err)
	}
	return proc, nil
}

// Stop transitions a process to stopped with the given reason and clears
// the stage task handles. Stopping an already stopped process is a no-op.
func (s *ProcessService) Stop(ctx context.Context, processID, reason string) error {
	proc, err := s.client.Process.Get(ctx, processID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get process: %w", err)
	}
	if proc.Status != process.StatusRunning {
		return nil
	}

	err = proc.Update().
		SetStatus(process.StatusStopped).
		SetStoppedAt(time.Now()).
		SetStopReason(reason).
		ClearDiscoveryTaskID().
		ClearPreparationTaskID().
		ClearGenerationTaskID().
		ClearPostingTaskID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop process: %w", err)
	}
	return nil
}

// MarkFailed transitions a process to failed, records the error, and
// clears the stage task handles.
func (s *ProcessService) MarkFailed(ctx context.Context, processID, errorMessage string) error {
	err := s.client.Process.UpdateOneID(processID).
		SetStatus(process.StatusFailed).
		SetStoppedAt(time.Now()).
		SetStopReason(StopReasonStageError).
		SetErrorMessage(masking.Mask(errorMessage)).
		ClearDiscoveryTaskID().
		ClearPreparationTaskID().
		ClearGenerationTaskID().
		ClearPostingTaskID().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark process failed: %w", err)
	}
	return nil
}

// ListRunning returns every running process, with logins and templates
// loaded for the stage workers.
func (s *ProcessService) ListRunning(ctx context.Context) ([]*ent.Process, error) {
	processes, err := s.client.Process.Query().
		Where(process.StatusEQ(process.StatusRunning)).
		WithLogins().
		WithPromptTemplates().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running processes: %w", err)
	}
	return processes, nil
}

// FindExpired returns the running processes whose duration budget has
// elapsed at the given time.
func (s *ProcessService) FindExpired(ctx context.Context, now time.Time) ([]*ent.Process, error) {
	processes, err := s.client.Process.Query().
		Where(
			process.StatusEQ(process.StatusRunning),
			process.ExpiresAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired processes: %w", err)
	}
	return processes, nil
}

// DeleteTerminatedBefore hard-deletes stopped and failed processes whose
// run ended before the cutoff. Work items cascade with their process.
func (s *ProcessService) DeleteTerminatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Process.Delete().
		Where(
			process.StatusIn(process.StatusStopped, process.StatusFailed),
			process.StoppedAtLTE(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old processes: %w", err)
	}
	return n, nil
}

// SetStageTask records a stage worker's task handle on the process.
func (s *ProcessService) SetStageTask(ctx context.Context, processID, stage, taskID string) error {
	update := s.client.Process.UpdateOneID(processID)
	switch stage {
	case StageDiscovery:
		update.SetDiscoveryTaskID(taskID)
	case StagePreparation:
		update.SetPreparationTaskID(taskID)
	case StageGeneration:
		update.SetGenerationTaskID(taskID)
	case StagePosting:
		update.SetPostingTaskID(taskID)
	default:
		return NewValidationError("stage", fmt.Sprintf("unknown stage '%s'", stage))
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set %s task: %w", stage, err)
	}
	return nil
}

// ClearStageTask removes a stage worker's task handle from the process.
func (s *ProcessService) ClearStageTask(ctx context.Context, processID, stage string) error {
	update := s.client.Process.UpdateOneID(processID)
	switch stage {
	case StageDiscovery:
		update.ClearDiscoveryTaskID()
	case StagePreparation:
		update.ClearPreparationTaskID()
	case StageGeneration:
		update.ClearGenerationTaskID()
	case StagePosting:
		update.ClearPostingTaskID()
	default:
		return NewValidationError("stage", fmt.Sprintf("unknown stage '%s'", stage))
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to clear %s task: %w", stage, err)
	}
	return nil
}

// stageTask returns the process's task handle for a stage, or nil.
func stageTask(proc *ent.Process, stage string) *string {
	switch stage {
	case StageDiscovery:
		return proc.DiscoveryTaskID
	case StagePreparation:
		return proc.PreparationTaskID
	case StageGeneration:
		return proc.GenerationTaskID
	case StagePosting:
		return proc.PostingTaskID
	}
	return nil
}
