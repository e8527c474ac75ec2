package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourmoment/yourmoment/ent/process"
)

func TestCreateProcessValidation(t *testing.T) {
	client := newTestClient(t)
	v := newTestVault(t)
	login, cfg, template := newTestFixtures(t, client, v)
	svc := NewProcessService(client)

	valid := CreateProcessInput{
		UserID:             testUserID,
		Name:               "Monitor",
		MaxDurationMinutes: 60,
		LLMConfigID:        cfg.ID,
		LoginIDs:           []string{login.ID},
		PromptTemplateIDs:  []string{template.ID},
	}

	tests := []struct {
		name   string
		mutate func(*CreateProcessInput)
		field  string
	}{
		{"missing name", func(in *CreateProcessInput) { in.Name = "" }, "name"},
		{"zero duration", func(in *CreateProcessInput) { in.MaxDurationMinutes = 0 }, "max_duration_minutes"},
		{"duration over budget", func(in *CreateProcessInput) { in.MaxDurationMinutes = 1441 }, "max_duration_minutes"},
		{"missing llm config", func(in *CreateProcessInput) { in.LLMConfigID = "" }, "llm_config_id"},
		{"no logins", func(in *CreateProcessInput) { in.LoginIDs = nil }, "login_ids"},
		{"no templates", func(in *CreateProcessInput) { in.PromptTemplateIDs = nil }, "prompt_template_ids"},
		{"negative article limit", func(in *CreateProcessInput) { in.ArticleLimit = -1 }, "article_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := svc.CreateProcess(context.Background(), input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.ErrorContains(t, err, tt.field)
		})
	}

	proc, err := svc.CreateProcess(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, process.StatusStopped, proc.Status)
	// No limit of its own; discovery falls back to the configured default
	assert.Equal(t, 0, proc.ArticleLimit)
}

func TestProcessStartStop(t *testing.T) {
	client := newTestClient(t)
	proc, _ := newTestProcess(t, client, newTestVault(t))
	svc := NewProcessService(client)
	ctx := context.Background()

	started, err := svc.Start(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	assert.Equal(t, process.StatusRunning, started.Status)
	require.NotNil(t, started.StartedAt)
	require.NotNil(t, started.ExpiresAt)
	assert.WithinDuration(t, started.StartedAt.Add(60*time.Minute), *started.ExpiresAt, time.Second)

	// Starting a running process is rejected
	_, err = svc.Start(ctx, testUserID, proc.ID)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	require.NoError(t, svc.Stop(ctx, proc.ID, StopReasonManual))

	stopped, err := svc.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	assert.Equal(t, process.StatusStopped, stopped.Status)
	require.NotNil(t, stopped.StopReason)
	assert.Equal(t, StopReasonManual, *stopped.StopReason)
	assert.NotNil(t, stopped.StoppedAt)

	// Stopping again is a no-op
	require.NoError(t, svc.Stop(ctx, proc.ID, StopReasonTimeout))
	stopped, err = svc.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	assert.Equal(t, StopReasonManual, *stopped.StopReason)
}

func TestProcessStartClearsPreviousRun(t *testing.T) {
	client := newTestClient(t)
	proc, _ := newTestProcess(t, client, newTestVault(t))
	svc := NewProcessService(client)
	ctx := context.Background()

	_, err := svc.Start(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	require.NoError(t, svc.SetStageTask(ctx, proc.ID, StageDiscovery, "task-1"))
	require.NoError(t, svc.Stop(ctx, proc.ID, StopReasonManual))

	restarted, err := svc.Start(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	assert.Nil(t, restarted.StopReason)
	assert.Nil(t, restarted.StoppedAt)
	assert.Nil(t, restarted.DiscoveryTaskID)
}

func TestProcessStopClearsTaskHandles(t *testing.T) {
	client := newTestClient(t)
	proc, _ := newTestProcess(t, client, newTestVault(t))
	svc := NewProcessService(client)
	ctx := context.Background()

	_, err := svc.Start(ctx, testUserID, proc.ID)
	require.NoError(t, err)

	for _, stage := range []string{StageDiscovery, StagePreparation, StageGeneration, StagePosting} {
		require.NoError(t, svc.SetStageTask(ctx, proc.ID, stage, "task-"+stage))
	}

	loaded, err := svc.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	for _, stage := range []string{StageDiscovery, StagePreparation, StageGeneration, StagePosting} {
		handle := stageTask(loaded, stage)
		require.NotNil(t, handle)
		assert.Equal(t, "task-"+stage, *handle)
	}

	require.NoError(t, svc.Stop(ctx, proc.ID, StopReasonTimeout))

	loaded, err = svc.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	for _, stage := range []string{StageDiscovery, StagePreparation, StageGeneration, StagePosting} {
		assert.Nil(t, stageTask(loaded, stage))
	}
}

func TestProcessMarkFailed(t *testing.T) {
	client := newTestClient(t)
	proc, _ := newTestProcess(t, client, newTestVault(t))
	svc := NewProcessService(client)
	ctx := context.Background()

	_, err := svc.Start(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	require.NoError(t, svc.MarkFailed(ctx, proc.ID, "discovery kept failing"))

	failed, err := svc.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	assert.Equal(t, process.StatusFailed, failed.Status)
	require.NotNil(t, failed.StopReason)
	assert.Equal(t, StopReasonStageError, *failed.StopReason)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "discovery kept failing", *failed.ErrorMessage)
}

func TestFindExpired(t *testing.T) {
	client := newTestClient(t)
	proc, _ := newTestProcess(t, client, newTestVault(t))
	svc := NewProcessService(client)
	ctx := context.Background()

	_, err := svc.Start(ctx, testUserID, proc.ID)
	require.NoError(t, err)

	// Not expired at its own deadline minus a minute
	expired, err := svc.FindExpired(ctx, time.Now().Add(59*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, expired)

	expired, err = svc.FindExpired(ctx, time.Now().Add(61*time.Minute))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, proc.ID, expired[0].ID)

	require.NoError(t, svc.Stop(ctx, proc.ID, StopReasonTimeout))
	expired, err = svc.FindExpired(ctx, time.Now().Add(61*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, expired)
}

func TestGetProcessScopedToOwner(t *testing.T) {
	client := newTestClient(t)
	proc, _ := newTestProcess(t, client, newTestVault(t))
	svc := NewProcessService(client)

	_, err := svc.GetProcess(context.Background(), "someone-else", proc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
