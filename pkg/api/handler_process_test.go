package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/pkg/database"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/vault"
	"github.com/yourmoment/yourmoment/test/util"
)

const testUserID = "teacher@example.com"

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeController records control calls and returns canned results.
type fakeController struct {
	calls     []string
	userID    string
	processID string
	startProc *ent.Process
	err       error
}

func (f *fakeController) StartProcess(ctx context.Context, userID, processID string) (*ent.Process, error) {
	f.calls = append(f.calls, "start")
	f.userID, f.processID = userID, processID
	return f.startProc, f.err
}

func (f *fakeController) StopProcess(ctx context.Context, userID, processID string) error {
	f.calls = append(f.calls, "stop")
	f.userID, f.processID = userID, processID
	return f.err
}

func (f *fakeController) TriggerPosting(ctx context.Context, userID, processID string) error {
	f.calls = append(f.calls, "post")
	f.userID, f.processID = userID, processID
	return f.err
}

type testEnv struct {
	router     *gin.Engine
	controller *fakeController
	items      *services.WorkItemService
	proc       *ent.Process
	login      *ent.UpstreamLogin
}

func setupServer(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	client, sqlDB := util.SetupTestDatabase(t)
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
		FilterTab:          "alle",
		LLMConfigID:        llmConfig.ID,
		LoginIDs:           []string{login.ID},
		PromptTemplateIDs:  []string{template.ID},
	})
	require.NoError(t, err)

	items := services.NewWorkItemService(client)
	controller := &fakeController{startProc: proc}
	server := NewServer(database.NewClientFromEnt(client, sqlDB), processes, items, controller)

	return &testEnv{
		router:     server.Router(),
		controller: controller,
		items:      items,
		proc:       proc,
		login:      login,
	}
}

func (env *testEnv) request(t *testing.T, method, path, user string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if user != "" {
		req.Header.Set("X-Forwarded-User", user)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestProcessStatusHandler(t *testing.T) {
	env := setupServer(t)
	ctx := context.Background()

	for _, articleID := range []string{"101", "102"} {
		_, err := env.items.CreateDiscovered(ctx, services.CreateWorkItemInput{
			ProcessID: env.proc.ID,
			LoginID:   env.login.ID,
			UserID:    testUserID,
			ArticleID: articleID,
		})
		require.NoError(t, err)
	}

	rec := env.request(t, http.MethodGet, "/api/processes/"+env.proc.ID+"/status", testUserID)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProcessStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, env.proc.ID, resp.ID)
	assert.Equal(t, "Klassenmonitor", resp.Name)
	assert.Equal(t, "stopped", resp.Status)
	assert.False(t, resp.GenerateOnly)
	assert.Nil(t, resp.StartedAt)
	assert.Equal(t, map[string]int{"discovered": 2}, resp.Items)
}

func TestProcessStatusScopedToOwner(t *testing.T) {
	env := setupServer(t)

	rec := env.request(t, http.MethodGet, "/api/processes/"+env.proc.ID+"/status", "someone-else")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "resource not found")
}

func TestStartProcessHandler(t *testing.T) {
	env := setupServer(t)

	rec := env.request(t, http.MethodPost, "/api/processes/"+env.proc.ID+"/start", testUserID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"start"}, env.controller.calls)
	assert.Equal(t, testUserID, env.controller.userID)
	assert.Equal(t, env.proc.ID, env.controller.processID)
	assert.Contains(t, rec.Body.String(), env.proc.ID)
}

func TestStartProcessValidationError(t *testing.T) {
	env := setupServer(t)
	env.controller.err = services.NewValidationError("status", "process is already running")

	rec := env.request(t, http.MethodPost, "/api/processes/"+env.proc.ID+"/start", testUserID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already running")
}

func TestStopProcessHandler(t *testing.T) {
	env := setupServer(t)

	rec := env.request(t, http.MethodPost, "/api/processes/"+env.proc.ID+"/stop", testUserID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"stop"}, env.controller.calls)
	assert.Contains(t, rec.Body.String(), `"stopped"`)
}

func TestStopProcessNotFound(t *testing.T) {
	env := setupServer(t)
	env.controller.err = services.ErrNotFound

	rec := env.request(t, http.MethodPost, "/api/processes/missing/stop", testUserID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostCommentsHandler(t *testing.T) {
	env := setupServer(t)

	rec := env.request(t, http.MethodPost, "/api/processes/"+env.proc.ID+"/post-comments", testUserID)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"post"}, env.controller.calls)
	assert.Contains(t, rec.Body.String(), "posting_enqueued")
}

func TestHealthHandler(t *testing.T) {
	env := setupServer(t)

	rec := env.request(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
	assert.NotEmpty(t, resp.Version)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestExtractUser(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "forwarded user wins",
			headers: map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "a@b.c"},
			want:    "alice",
		},
		{
			name:    "falls back to forwarded email",
			headers: map[string]string{"X-Forwarded-Email": "a@b.c", "X-Remote-User": "bob"},
			want:    "a@b.c",
		},
		{
			name:    "falls back to remote user",
			headers: map[string]string{"X-Remote-User": "bob"},
			want:    "bob",
		},
		{
			name: "defaults to api-client",
			want: "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req
			assert.Equal(t, tt.want, extractUser(c))
		})
	}
}
