package cleanup

import (
	"context"
	stdsql "database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/workitem"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/vault"
	"github.com/yourmoment/yourmoment/test/util"
)

const testUserID = "user-1"

type fixtures struct {
	client    *ent.Client
	db        *stdsql.DB
	processes *services.ProcessService
	items     *services.WorkItemService
	proc      *ent.Process
	login     *ent.UpstreamLogin
}

func setupFixtures(t *testing.T) *fixtures {
	t.Helper()
	ctx := context.Background()

	client, db := util.SetupTestDatabase(t)
	v, err := vault.New(vault.GenerateKey())
	require.NoError(t, err)

	login, err := services.NewLoginService(client, v).CreateLogin(ctx, services.CreateLoginInput{
		UserID:   testUserID,
		Name:     "Klasse 4a",
		Username: "schueler",
		Password: "geheim",
	})
	require.NoError(t, err)

	llmConfig, err := services.NewLLMConfigService(client, v).CreateConfig(ctx, services.CreateLLMConfigInput{
		UserID:    testUserID,
		Provider:  "openai",
		ModelName: "gpt-4o-mini",
		APIKey:    "sk-test",
	})
	require.NoError(t, err)

	template, err := services.NewTemplateService(client).CreateTemplate(ctx, services.CreateTemplateInput{
		UserID:             testUserID,
		Name:               "Freundlicher Kommentar",
		SystemPrompt:       "Du bist ein freundlicher Leser.",
		UserPromptTemplate: "Kommentiere: {article_title}",
	})
	require.NoError(t, err)

	processes := services.NewProcessService(client)
	proc, err := processes.CreateProcess(ctx, services.CreateProcessInput{
		UserID:             testUserID,
		Name:               "Klassenmonitor",
		MaxDurationMinutes: 60,
		LLMConfigID:        llmConfig.ID,
		LoginIDs:           []string{login.ID},
		PromptTemplateIDs:  []string{template.ID},
	})
	require.NoError(t, err)

	return &fixtures{
		client:    client,
		db:        db,
		processes: processes,
		items:     services.NewWorkItemService(client),
		proc:      proc,
		login:     login,
	}
}

func TestServiceDeletesOldTerminatedProcesses(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	// Old stopped process with a work item that must cascade.
	_, err := f.items.CreateDiscovered(ctx, services.CreateWorkItemInput{
		ProcessID: f.proc.ID,
		LoginID:   f.login.ID,
		UserID:    testUserID,
		ArticleID: "101",
	})
	require.NoError(t, err)
	err = f.client.Process.UpdateOneID(f.proc.ID).
		SetStatus(process.StatusStopped).
		SetStoppedAt(time.Now().AddDate(0, 0, -120)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		ProcessRetentionDays: 90,
		DeletedItemTTL:       30 * 24 * time.Hour,
		CleanupInterval:      time.Hour,
	}
	svc := NewService(cfg, f.processes, f.items)
	svc.runAll(ctx)

	exists, err := f.client.Process.Query().Where(process.IDEQ(f.proc.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "old stopped process should be deleted")

	itemCount, err := f.client.WorkItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, itemCount, "work items cascade with their process")
}

func TestServiceKeepsRecentAndRunningProcesses(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	// Recently stopped: inside the retention window.
	err := f.client.Process.UpdateOneID(f.proc.ID).
		SetStatus(process.StatusStopped).
		SetStoppedAt(time.Now().AddDate(0, 0, -10)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		ProcessRetentionDays: 90,
		DeletedItemTTL:       30 * 24 * time.Hour,
		CleanupInterval:      time.Hour,
	}
	NewService(cfg, f.processes, f.items).runAll(ctx)

	exists, err := f.client.Process.Query().Where(process.IDEQ(f.proc.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestServicePurgesOldSoftDeletedItems(t *testing.T) {
	f := setupFixtures(t)
	ctx := context.Background()

	oldItem, err := f.items.CreateDiscovered(ctx, services.CreateWorkItemInput{
		ProcessID: f.proc.ID,
		LoginID:   f.login.ID,
		UserID:    testUserID,
		ArticleID: "101",
	})
	require.NoError(t, err)
	recentItem, err := f.items.CreateDiscovered(ctx, services.CreateWorkItemInput{
		ProcessID: f.proc.ID,
		LoginID:   f.login.ID,
		UserID:    testUserID,
		ArticleID: "102",
	})
	require.NoError(t, err)

	require.NoError(t, f.items.SoftDelete(ctx, testUserID, oldItem.ID))
	require.NoError(t, f.items.SoftDelete(ctx, testUserID, recentItem.ID))
	// created_at is immutable through ent; backdate it directly.
	_, err = f.db.ExecContext(ctx,
		"UPDATE work_items SET created_at = $1 WHERE item_id = $2",
		time.Now().Add(-31*24*time.Hour), oldItem.ID)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		ProcessRetentionDays: 90,
		DeletedItemTTL:       30 * 24 * time.Hour,
		CleanupInterval:      time.Hour,
	}
	NewService(cfg, f.processes, f.items).runAll(ctx)

	remaining, err := f.client.WorkItem.Query().Where(workitem.StatusEQ(workitem.StatusDeleted)).All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, recentItem.ID, remaining[0].ID)
}

func TestServiceStartStop(t *testing.T) {
	f := setupFixtures(t)

	cfg := &config.RetentionConfig{
		ProcessRetentionDays: 90,
		DeletedItemTTL:       30 * 24 * time.Hour,
		CleanupInterval:      50 * time.Millisecond,
	}
	svc := NewService(cfg, f.processes, f.items)
	svc.Start(context.Background())
	time.Sleep(120 * time.Millisecond)
	svc.Stop()

	// Stop again is a no-op.
	svc.Stop()
}
