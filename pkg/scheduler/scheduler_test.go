package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/pipeline"
	"github.com/yourmoment/yourmoment/pkg/ratelimit"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
	"github.com/yourmoment/yourmoment/pkg/vault"
	"github.com/yourmoment/yourmoment/test/util"
)

const testUserID = "user-1"

type stageRun struct {
	processID string
	stage     string
	manual    bool
}

// fakeRunner records stage passes and returns canned results.
type fakeRunner struct {
	mu           sync.Mutex
	runs         []stageRun
	results      map[string]pipeline.StageResult
	block        chan struct{}
	blockEntered chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context, proc *ent.Process, stage string) (*pipeline.StageResult, error) {
	if f.block != nil {
		if f.blockEntered != nil {
			f.blockEntered <- struct{}{}
		}
		select {
		case <-f.block:
		case <-ctx.Done():
			return &pipeline.StageResult{Stage: stage, Status: pipeline.StatusFailed}, nil
		}
	}
	f.record(proc.ID, stage, false)

	f.mu.Lock()
	canned, ok := f.results[stage]
	f.mu.Unlock()
	if ok {
		result := canned
		return &result, nil
	}
	return &pipeline.StageResult{Stage: stage, Status: pipeline.StatusSuccess}, nil
}

func (f *fakeRunner) RunManualPosting(ctx context.Context, proc *ent.Process) *pipeline.StageResult {
	f.record(proc.ID, services.StagePosting, true)
	return &pipeline.StageResult{Stage: services.StagePosting, Status: pipeline.StatusSuccess}
}

func (f *fakeRunner) record(processID, stage string, manual bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, stageRun{processID: processID, stage: stage, manual: manual})
}

func (f *fakeRunner) count(processID, stage string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.runs {
		if r.processID == processID && r.stage == stage {
			n++
		}
	}
	return n
}

func (f *fakeRunner) sawManual(processID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.runs {
		if r.processID == processID && r.manual {
			return true
		}
	}
	return false
}

type testEnv struct {
	client    *ent.Client
	processes *services.ProcessService
	items     *services.WorkItemService
	template  *ent.PromptTemplate
	llmConfig *ent.LLMProviderConfig
	login     *ent.UpstreamLogin
	proc      *ent.Process
	runner    *fakeRunner
	sched     *Scheduler
}

// setupScheduler builds a scheduler over a real database with a fake
// stage runner. The tick interval is an hour so tests drive ticks by
// hand; the control surface still runs through the live queue workers.
func setupScheduler(t *testing.T, generateOnly bool, mutate func(cfg *config.SchedulerConfig)) *testEnv {
	t.Helper()
	ctx := context.Background()

	client, _ := util.SetupTestDatabase(t)
	v, err := vault.New(vault.GenerateKey())
	require.NoError(t, err)

	logins := services.NewLoginService(client, v)
	login, err := logins.CreateLogin(ctx, services.CreateLoginInput{
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

	processSvc := services.NewProcessService(client)
	proc, err := processSvc.CreateProcess(ctx, services.CreateProcessInput{
		UserID:             testUserID,
		Name:               "Klassenmonitor",
		MaxDurationMinutes: 60,
		GenerateOnly:       generateOnly,
		FilterTab:          "alle",
		LLMConfigID:        llmConfig.ID,
		LoginIDs:           []string{login.ID},
		PromptTemplateIDs:  []string{template.ID},
	})
	require.NoError(t, err)

	cfg := config.DefaultSchedulerConfig()
	cfg.TickInterval = time.Hour
	cfg.RetryBackoffBase = 5 * time.Millisecond
	cfg.RetryBackoffCap = 20 * time.Millisecond
	cfg.GracefulShutdownTimeout = 2 * time.Second
	if mutate != nil {
		mutate(cfg)
	}

	sessions := upstream.NewRegistry(config.DefaultUpstreamConfig(), ratelimit.New(0), logins)
	runner := &fakeRunner{results: make(map[string]pipeline.StageResult)}
	sched := New(cfg, processSvc, services.NewWorkItemService(client), sessions, runner)
	sched.Start(ctx)
	t.Cleanup(sched.Stop)

	return &testEnv{
		client:    client,
		processes: processSvc,
		items:     services.NewWorkItemService(client),
		template:  template,
		llmConfig: llmConfig,
		login:     login,
		proc:      proc,
		runner:    runner,
		sched:     sched,
	}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 5*time.Second, 10*time.Millisecond, msg)
}

func (env *testEnv) processStatus(t *testing.T) process.Status {
	t.Helper()
	proc, err := env.processes.GetProcessByID(context.Background(), env.proc.ID)
	require.NoError(t, err)
	return proc.Status
}

func TestStartProcessEnqueuesDiscovery(t *testing.T) {
	env := setupScheduler(t, false, nil)
	ctx := context.Background()

	proc, err := env.sched.StartProcess(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)
	assert.Equal(t, process.StatusRunning, proc.Status)

	waitFor(t, func() bool {
		return env.runner.count(env.proc.ID, services.StageDiscovery) == 1
	}, "discovery should run without waiting for a tick")

	// The handle is cleared once the pass finishes.
	waitFor(t, func() bool {
		proc, err := env.processes.GetProcessByID(ctx, env.proc.ID)
		return err == nil && proc.DiscoveryTaskID == nil
	}, "discovery task handle should be cleared")
}

func TestTickSchedulesAllStages(t *testing.T) {
	env := setupScheduler(t, false, nil)
	ctx := context.Background()

	_, err := env.processes.Start(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	env.sched.tick(ctx)

	for _, stage := range stageOrder {
		waitFor(t, func() bool {
			return env.runner.count(env.proc.ID, stage) >= 1
		}, stage+" should be scheduled by the tick")
	}
}

func TestTickSkipsPostingForGenerateOnly(t *testing.T) {
	env := setupScheduler(t, true, nil)
	ctx := context.Background()

	// One discovered item keeps the completion check from stopping the
	// process during the tick.
	_, err := env.processes.Start(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)
	_, err = env.items.CreateDiscovered(ctx, services.CreateWorkItemInput{
		ProcessID: env.proc.ID,
		LoginID:   env.login.ID,
		UserID:    testUserID,
		ArticleID: "101",
	})
	require.NoError(t, err)

	env.sched.tick(ctx)

	waitFor(t, func() bool {
		return env.runner.count(env.proc.ID, services.StageGeneration) >= 1
	}, "generation should be scheduled")
	assert.Zero(t, env.runner.count(env.proc.ID, services.StagePosting))
}

func TestTickEnforcesDeadline(t *testing.T) {
	env := setupScheduler(t, false, nil)
	ctx := context.Background()

	_, err := env.processes.Start(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)
	err = env.client.Process.UpdateOneID(env.proc.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	env.sched.tick(ctx)

	proc, err := env.processes.GetProcessByID(ctx, env.proc.ID)
	require.NoError(t, err)
	assert.Equal(t, process.StatusStopped, proc.Status)
	require.NotNil(t, proc.StopReason)
	assert.Equal(t, services.StopReasonTimeout, *proc.StopReason)
	assert.Zero(t, env.runner.count(env.proc.ID, services.StageDiscovery),
		"expired process must not get stage passes")
}

func TestGenerateOnlyCompletesWhenAllItemsSettled(t *testing.T) {
	env := setupScheduler(t, true, nil)
	ctx := context.Background()

	_, err := env.processes.Start(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	item, err := env.items.CreateDiscovered(ctx, services.CreateWorkItemInput{
		ProcessID: env.proc.ID,
		LoginID:   env.login.ID,
		UserID:    testUserID,
		ArticleID: "101",
	})
	require.NoError(t, err)

	// A pending item keeps the process running.
	env.sched.tick(ctx)
	assert.Equal(t, process.StatusRunning, env.processStatus(t))

	err = env.items.UpdateToPrepared(ctx, item.ID, services.ArticleSnapshot{
		Title:   "Windig",
		Author:  "RockstarCondor",
		URL:     "/article/101/",
		Content: "Inhalt",
		HTML:    "<div>Inhalt</div>",
	})
	require.NoError(t, err)
	err = env.items.UpdateToGenerated(ctx, item.ID, services.GeneratedComment{
		Text:         "[Dieser Kommentar stammt von einem KI-ChatBot.] Toll!",
		ProviderName: "openai",
		ModelName:    "gpt-4o-mini",
		TemplateID:   env.template.ID,
		LLMConfigID:  env.llmConfig.ID,
	})
	require.NoError(t, err)

	// Wait out the stage passes the first tick spawned, then tick again.
	waitFor(t, func() bool { return env.sched.reg.size() == 0 }, "stage tasks should drain")
	env.sched.tick(ctx)

	proc, err := env.processes.GetProcessByID(ctx, env.proc.ID)
	require.NoError(t, err)
	assert.Equal(t, process.StatusStopped, proc.Status)
	require.NotNil(t, proc.StopReason)
	assert.Equal(t, services.StopReasonGenerateOnlyComplete, *proc.StopReason)
}

func TestGenerateOnlyWithNoItemsKeepsRunning(t *testing.T) {
	env := setupScheduler(t, true, nil)
	ctx := context.Background()

	_, err := env.processes.Start(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	env.sched.tick(ctx)
	waitFor(t, func() bool { return env.sched.reg.size() == 0 }, "stage tasks should drain")

	assert.Equal(t, process.StatusRunning, env.processStatus(t),
		"a process that discovered nothing yet must not auto-complete")
}

func TestStageRetryBudgetMarksProcessFailed(t *testing.T) {
	env := setupScheduler(t, false, func(cfg *config.SchedulerConfig) {
		cfg.MaxStageRetries = 2
	})
	env.runner.results[services.StageDiscovery] = pipeline.StageResult{
		Stage:  services.StageDiscovery,
		Status: pipeline.StatusFailed,
		Errors: []string{"upstream unavailable"},
	}
	ctx := context.Background()

	_, err := env.sched.StartProcess(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	waitFor(t, func() bool {
		return env.processStatus(t) == process.StatusFailed
	}, "process should fail once the retry budget is spent")

	// Initial attempt plus two retries.
	assert.Equal(t, 3, env.runner.count(env.proc.ID, services.StageDiscovery))

	proc, err := env.processes.GetProcessByID(ctx, env.proc.ID)
	require.NoError(t, err)
	require.NotNil(t, proc.StopReason)
	assert.Equal(t, services.StopReasonStageError, *proc.StopReason)
	require.NotNil(t, proc.ErrorMessage)
	assert.Contains(t, *proc.ErrorMessage, "discovery stage failed after 2 retries")
	assert.Contains(t, *proc.ErrorMessage, "upstream unavailable")
}

func TestPartialResultDoesNotRetry(t *testing.T) {
	env := setupScheduler(t, false, nil)
	env.runner.results[services.StageDiscovery] = pipeline.StageResult{
		Stage:    services.StageDiscovery,
		Advanced: 2,
		Failed:   1,
		Status:   pipeline.StatusPartial,
		Errors:   []string{"item x: fetch failed"},
	}
	ctx := context.Background()

	_, err := env.sched.StartProcess(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	waitFor(t, func() bool {
		return env.runner.count(env.proc.ID, services.StageDiscovery) == 1
	}, "discovery should run once")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, env.runner.count(env.proc.ID, services.StageDiscovery),
		"partial passes are not retried, the next tick picks up the rest")
	assert.Equal(t, process.StatusRunning, env.processStatus(t))
}

func TestStopProcessRecordsManualReason(t *testing.T) {
	env := setupScheduler(t, false, nil)
	ctx := context.Background()

	_, err := env.sched.StartProcess(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	err = env.sched.StopProcess(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	proc, err := env.processes.GetProcessByID(ctx, env.proc.ID)
	require.NoError(t, err)
	assert.Equal(t, process.StatusStopped, proc.Status)
	require.NotNil(t, proc.StopReason)
	assert.Equal(t, services.StopReasonManual, *proc.StopReason)

	// A later tick leaves the stopped process alone.
	before := env.runner.count(env.proc.ID, services.StagePreparation)
	env.sched.tick(ctx)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, env.runner.count(env.proc.ID, services.StagePreparation))
}

func TestStopProcessScopedToOwner(t *testing.T) {
	env := setupScheduler(t, false, nil)
	ctx := context.Background()

	_, err := env.sched.StartProcess(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	err = env.sched.StopProcess(ctx, "someone-else", env.proc.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, process.StatusRunning, env.processStatus(t))
}

func TestTriggerPostingRunsManualPass(t *testing.T) {
	env := setupScheduler(t, true, nil)
	ctx := context.Background()

	// Manual posting works on a stopped generate-only process.
	err := env.sched.TriggerPosting(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	waitFor(t, func() bool {
		return env.runner.sawManual(env.proc.ID)
	}, "manual posting pass should run")
}

func TestRevokedTaskIsSkippedWhenDequeued(t *testing.T) {
	env := setupScheduler(t, false, nil)
	env.runner.block = make(chan struct{})
	env.runner.blockEntered = make(chan struct{}, 1)
	ctx := context.Background()

	_, err := env.sched.StartProcess(ctx, testUserID, env.proc.ID)
	require.NoError(t, err)

	// The discovery worker is parked on the blocked pass. Revoke frees
	// the slot, so a second task can be enqueued behind it; revoking
	// again drops the queued copy before the worker reaches it.
	<-env.runner.blockEntered
	env.sched.reg.revoke(env.proc.ID)

	require.NoError(t, env.sched.enqueue(ctx, env.proc.ID, services.StageDiscovery, false, 0))
	env.sched.reg.revoke(env.proc.ID)
	close(env.runner.block)

	waitFor(t, func() bool {
		return env.runner.count(env.proc.ID, services.StageDiscovery) == 1
	}, "blocked pass should finish")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, env.runner.count(env.proc.ID, services.StageDiscovery),
		"revoked queued task must not run")
}

func TestTaskRegistrySlotPerStage(t *testing.T) {
	reg := newTaskRegistry()

	assert.True(t, reg.add(&Task{ID: "a", ProcessID: "p1", Stage: services.StageDiscovery}))
	assert.False(t, reg.add(&Task{ID: "b", ProcessID: "p1", Stage: services.StageDiscovery}),
		"second task for the same slot must be rejected")
	assert.True(t, reg.add(&Task{ID: "c", ProcessID: "p1", Stage: services.StagePreparation}))
	assert.True(t, reg.add(&Task{ID: "d", ProcessID: "p2", Stage: services.StageDiscovery}))

	id, busy := reg.active("p1", services.StageDiscovery)
	assert.True(t, busy)
	assert.Equal(t, "a", id)

	reg.remove("a")
	assert.False(t, reg.contains("a"))
	_, busy = reg.active("p1", services.StageDiscovery)
	assert.False(t, busy)
	assert.True(t, reg.add(&Task{ID: "e", ProcessID: "p1", Stage: services.StageDiscovery}))

	revoked := reg.revoke("p1")
	assert.ElementsMatch(t, []string{"c", "e"}, revoked)
	assert.Equal(t, 1, reg.size())
	assert.True(t, reg.contains("d"))
}

func TestBackoffDoublesAndCaps(t *testing.T) {
	s := &Scheduler{cfg: &config.SchedulerConfig{
		RetryBackoffBase: 60 * time.Second,
		RetryBackoffCap:  600 * time.Second,
	}}

	first := s.backoff(1)
	assert.GreaterOrEqual(t, first, 60*time.Second)
	assert.Less(t, first, 75*time.Second)

	second := s.backoff(2)
	assert.GreaterOrEqual(t, second, 120*time.Second)
	assert.Less(t, second, 150*time.Second)

	assert.Equal(t, 600*time.Second, s.backoff(10))
}
