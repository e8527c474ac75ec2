package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workitem"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/llm"
	"github.com/yourmoment/yourmoment/pkg/ratelimit"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
	"github.com/yourmoment/yourmoment/pkg/vault"
	"github.com/yourmoment/yourmoment/test/util"
)

const testUserID = "user-1"

// fakePlatform imitates the upstream: CSRF login, a two-article index,
// detail pages, and comment endpoints.
type fakePlatform struct {
	server *httptest.Server

	mu           sync.Mutex
	comments     map[string][]url.Values
	articleFails map[string]bool
}

const fakeLoginForm = `<html><body><form method="post" action="/accounts/login/">
<input type="hidden" name="csrfmiddlewaretoken" value="csrf-login"></form></body></html>`

const fakeIndex = `<html><body><div id="pills-alle"><div class="article-list row">
<div class="col-xl-4 mb-4"><div class="card"><div class="card-header publiziert"></div>
<a href="/article/101/"><div class="article-title">Windig</div></a>
<div class="article-author">RockstarCondor</div><div class="article-date">01.07.2025</div></div></div>
<div class="col-xl-4 mb-4"><div class="card"><div class="card-header publiziert"></div>
<a href="/article/102/"><div class="article-title">Mein Velo</div></a>
<div class="article-author">PixelPanda</div><div class="article-date">02.07.2025</div></div></div>
</div></div></body></html>`

func fakeDetail(id, title, author string) string {
	return fmt.Sprintf(`<html><body><h1>%s von %s</h1>
<a href="/articles/?kategorie=9">Unterhalten</a>
<div class="article"><div class="highlight-target"><p>Inhalt von %s.</p></div></div>
<form action="/article/%s/comment/" method="post">
<input type="hidden" name="csrfmiddlewaretoken" value="csrf-comment"></form>
</body></html>`, title, author, title, id)
}

func newFakePlatform(t *testing.T) *fakePlatform {
	p := &fakePlatform{
		comments:     make(map[string][]url.Values),
		articleFails: make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, fakeLoginForm)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><form action="/accounts/logout/"></form></body></html>`)
	})
	mux.HandleFunc("/articles/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fakeIndex)
	})
	for _, a := range []struct{ id, title, author string }{
		{"101", "Windig", "RockstarCondor"},
		{"102", "Mein Velo", "PixelPanda"},
	} {
		a := a
		mux.HandleFunc("/article/"+a.id+"/", func(w http.ResponseWriter, r *http.Request) {
			p.mu.Lock()
			failing := p.articleFails[a.id]
			p.mu.Unlock()
			if failing {
				http.Error(w, "kaputt", http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, fakeDetail(a.id, a.title, a.author))
		})
		mux.HandleFunc("/article/"+a.id+"/comment/", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			p.mu.Lock()
			p.comments[a.id] = append(p.comments[a.id], r.PostForm)
			p.mu.Unlock()
			w.WriteHeader(http.StatusFound)
		})
	}

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakePlatform) commentsFor(articleID string) []url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.comments[articleID]
}

func (p *fakePlatform) failArticle(articleID string) {
	p.mu.Lock()
	p.articleFails[articleID] = true
	p.mu.Unlock()
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls []string
	text  string
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, systemPrompt, userPrompt string) (*llm.Result, error) {
	g.mu.Lock()
	g.calls = append(g.calls, userPrompt)
	g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	return &llm.Result{Text: g.text, TotalTokens: 42, Elapsed: 120 * time.Millisecond}, nil
}

func (g *fakeGenerator) Provider() string { return "openai" }
func (g *fakeGenerator) Model() string    { return "gpt-4o-mini" }

type testEnv struct {
	client     *ent.Client
	pipeline   *Pipeline
	processes  *services.ProcessService
	logins     *services.LoginService
	items      *services.WorkItemService
	platform   *fakePlatform
	generator  *fakeGenerator
	proc       *ent.Process
	loginID    string
	configID   string
	templateID string
}

func setupPipeline(t *testing.T, generateOnly bool) *testEnv {
	client, _ := util.SetupTestDatabase(t)
	platform := newFakePlatform(t)
	ctx := context.Background()

	v, err := vault.New(vault.GenerateKey())
	require.NoError(t, err)

	logins := services.NewLoginService(client, v)
	configs := services.NewLLMConfigService(client, v)
	templates := services.NewTemplateService(client)
	processes := services.NewProcessService(client)
	items := services.NewWorkItemService(client)

	login, err := logins.CreateLogin(ctx, services.CreateLoginInput{
		UserID: testUserID, Name: "Klasse 4a", Username: "schueler", Password: "geheim",
	})
	require.NoError(t, err)

	cfg, err := configs.CreateConfig(ctx, services.CreateLLMConfigInput{
		UserID: testUserID, Provider: "openai", ModelName: "gpt-4o-mini", APIKey: "sk-test",
	})
	require.NoError(t, err)

	template, err := templates.CreateTemplate(ctx, services.CreateTemplateInput{
		UserID:             testUserID,
		Name:               "Standard",
		SystemPrompt:       "Du bist ein freundlicher Leser.",
		UserPromptTemplate: "Kommentiere {article_title} von {article_author}: {article_content}",
	})
	require.NoError(t, err)

	proc, err := processes.CreateProcess(ctx, services.CreateProcessInput{
		UserID:             testUserID,
		Name:               "Monitor",
		MaxDurationMinutes: 60,
		GenerateOnly:       generateOnly,
		FilterTab:          "alle",
		LLMConfigID:        cfg.ID,
		LoginIDs:           []string{login.ID},
		PromptTemplateIDs:  []string{template.ID},
	})
	require.NoError(t, err)

	upstreamCfg := config.DefaultUpstreamConfig()
	upstreamCfg.BaseURL = platform.server.URL
	registry := upstream.NewRegistry(upstreamCfg, ratelimit.New(0), logins)
	t.Cleanup(registry.CloseAll)

	pipelineCfg := config.DefaultPipelineConfig()
	p := New(processes, items, configs, registry, pipelineCfg)

	gen := &fakeGenerator{text: "Das ist super geschrieben!"}
	p.generatorFor = func(context.Context, string) (generator, error) { return gen, nil }

	loaded, err := processes.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)

	return &testEnv{
		client:     client,
		pipeline:   p,
		processes:  processes,
		logins:     logins,
		items:      items,
		platform:   platform,
		generator:  gen,
		proc:       loaded,
		loginID:    login.ID,
		configID:   cfg.ID,
		templateID: template.ID,
	}
}

func TestRunDiscovery(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	result := env.pipeline.RunDiscovery(ctx, env.proc)
	assert.Equal(t, 2, result.Advanced)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Empty(t, result.Errors)

	// A second pass finds only duplicates and stays silent about them
	result = env.pipeline.RunDiscovery(ctx, env.proc)
	assert.Equal(t, 0, result.Advanced)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Empty(t, result.Errors)

	discovered, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusDiscovered)
	require.NoError(t, err)
	assert.Len(t, discovered, 2)
}

func TestRunDiscoveryAppliesConfiguredDefaultLimit(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	// The process carries no limit of its own, so the configured default
	// caps the pass
	require.Equal(t, 0, env.proc.ArticleLimit)
	env.pipeline.cfg.DefaultArticleLimit = 1

	result := env.pipeline.RunDiscovery(ctx, env.proc)
	assert.Equal(t, 1, result.Advanced)

	discovered, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusDiscovered)
	require.NoError(t, err)
	require.Len(t, discovered, 1)
	assert.Equal(t, "101", discovered[0].ArticleID)
}

func TestRunDiscoveryProcessLimitOverridesDefault(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	env.pipeline.cfg.DefaultArticleLimit = 1
	proc, err := env.client.Process.UpdateOneID(env.proc.ID).
		SetArticleLimit(2).
		Save(ctx)
	require.NoError(t, err)
	proc, err = env.processes.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)

	result := env.pipeline.RunDiscovery(ctx, proc)
	assert.Equal(t, 2, result.Advanced)
}

// twoLoginProcess creates a second login and a process monitoring through
// both of them.
func twoLoginProcess(t *testing.T, env *testEnv) (*ent.Process, string) {
	ctx := context.Background()

	second, err := env.logins.CreateLogin(ctx, services.CreateLoginInput{
		UserID: testUserID, Name: "Klasse 4b", Username: "schueler2", Password: "geheim2",
	})
	require.NoError(t, err)

	proc, err := env.processes.CreateProcess(ctx, services.CreateProcessInput{
		UserID:             testUserID,
		Name:               "Beide Klassen",
		MaxDurationMinutes: 60,
		FilterTab:          "alle",
		LLMConfigID:        env.configID,
		LoginIDs:           []string{env.loginID, second.ID},
		PromptTemplateIDs:  []string{env.templateID},
	})
	require.NoError(t, err)
	proc, err = env.processes.GetProcess(ctx, testUserID, proc.ID)
	require.NoError(t, err)
	return proc, second.ID
}

func TestRunDiscoveryFansOutPerLogin(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	proc, secondLoginID := twoLoginProcess(t, env)

	result := env.pipeline.RunDiscovery(ctx, proc)
	assert.Equal(t, 4, result.Advanced)
	assert.Equal(t, StatusSuccess, result.Status)

	// Each article is tracked once per login
	discovered, err := env.items.ListByStatus(ctx, proc.ID, workitem.StatusDiscovered)
	require.NoError(t, err)
	require.Len(t, discovered, 4)
	perLogin := make(map[string]int)
	for _, item := range discovered {
		perLogin[item.LoginID]++
	}
	assert.Equal(t, map[string]int{env.loginID: 2, secondLoginID: 2}, perLogin)
}

func TestMultiLoginItemsAdvanceAndFailIndependently(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	proc, secondLoginID := twoLoginProcess(t, env)
	env.pipeline.RunDiscovery(ctx, proc)

	// Article 102 breaks; both logins' copies of it fail, both copies of
	// 101 still advance
	env.platform.failArticle("102")
	result := env.pipeline.RunPreparation(ctx, proc)
	assert.Equal(t, 2, result.Advanced)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, StatusPartial, result.Status)

	env.pipeline.RunGeneration(ctx, proc)
	env.pipeline.RunPosting(ctx, proc)

	// One comment on 101 per login, nothing on the broken article
	comments := env.platform.commentsFor("101")
	assert.Len(t, comments, 2)
	assert.Empty(t, env.platform.commentsFor("102"))

	posted, err := env.items.ListByStatus(ctx, proc.ID, workitem.StatusPosted)
	require.NoError(t, err)
	require.Len(t, posted, 2)
	postedLogins := make(map[string]int)
	for _, item := range posted {
		postedLogins[item.LoginID]++
	}
	assert.Equal(t, map[string]int{env.loginID: 1, secondLoginID: 1}, postedLogins)

	failed, err := env.items.ListByStatus(ctx, proc.ID, workitem.StatusFailed)
	require.NoError(t, err)
	assert.Len(t, failed, 2)
}

func TestRunPreparation(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	env.pipeline.RunDiscovery(ctx, env.proc)
	result := env.pipeline.RunPreparation(ctx, env.proc)
	assert.Equal(t, 2, result.Advanced)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, StatusSuccess, result.Status)

	prepared, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusPrepared)
	require.NoError(t, err)
	require.Len(t, prepared, 2)

	first := prepared[0]
	require.NotNil(t, first.ArticleTitle)
	assert.Equal(t, "Windig", *first.ArticleTitle)
	require.NotNil(t, first.ArticleAuthor)
	assert.Equal(t, "RockstarCondor", *first.ArticleAuthor)
	require.NotNil(t, first.ArticleContent)
	assert.Equal(t, "Inhalt von Windig.", *first.ArticleContent)
	require.NotNil(t, first.ArticleCategoryID)
	assert.Equal(t, 9, *first.ArticleCategoryID)
	assert.NotNil(t, first.ScrapedAt)
}

func TestRunPreparationMarksFailedItems(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	env.pipeline.RunDiscovery(ctx, env.proc)
	env.platform.failArticle("102")

	result := env.pipeline.RunPreparation(ctx, env.proc)
	assert.Equal(t, 1, result.Advanced)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, StatusPartial, result.Status)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "102")

	failed, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "102", failed[0].ArticleID)
	assert.Equal(t, 1, failed[0].RetryCount)
}

func TestRunGeneration(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	env.pipeline.RunDiscovery(ctx, env.proc)
	env.pipeline.RunPreparation(ctx, env.proc)

	result := env.pipeline.RunGeneration(ctx, env.proc)
	assert.Equal(t, 2, result.Advanced)
	assert.Equal(t, StatusSuccess, result.Status)

	generated, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusGenerated)
	require.NoError(t, err)
	require.Len(t, generated, 2)

	for _, item := range generated {
		require.NotNil(t, item.CommentText)
		assert.Equal(t, config.DefaultDisclosurePrefix+" Das ist super geschrieben!", *item.CommentText)
		require.NotNil(t, item.LlmProviderName)
		assert.Equal(t, "openai", *item.LlmProviderName)
		require.NotNil(t, item.GenerationTokens)
		assert.Equal(t, 42, *item.GenerationTokens)
		require.NotNil(t, item.GenerationTimeMs)
		assert.Equal(t, 120, *item.GenerationTimeMs)
	}

	// The rendered prompt carries the snapshot, not placeholders
	require.Len(t, env.generator.calls, 2)
	assert.Equal(t, "Kommentiere Windig von RockstarCondor: Inhalt von Windig.", env.generator.calls[0])
}

func TestRunGenerationDoesNotDoubleExistingPrefix(t *testing.T) {
	env := setupPipeline(t, false)
	env.generator.text = config.DefaultDisclosurePrefix + " Schon markiert."
	ctx := context.Background()

	env.pipeline.RunDiscovery(ctx, env.proc)
	env.pipeline.RunPreparation(ctx, env.proc)
	env.pipeline.RunGeneration(ctx, env.proc)

	generated, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusGenerated)
	require.NoError(t, err)
	require.NotEmpty(t, generated)
	assert.Equal(t, config.DefaultDisclosurePrefix+" Schon markiert.", *generated[0].CommentText)
}

func TestRunPosting(t *testing.T) {
	env := setupPipeline(t, false)
	ctx := context.Background()

	env.pipeline.RunDiscovery(ctx, env.proc)
	env.pipeline.RunPreparation(ctx, env.proc)
	env.pipeline.RunGeneration(ctx, env.proc)

	result := env.pipeline.RunPosting(ctx, env.proc)
	assert.Equal(t, 2, result.Advanced)
	assert.Equal(t, StatusSuccess, result.Status)

	// Comments arrived upstream with the disclosure prefix
	comments := env.platform.commentsFor("101")
	require.Len(t, comments, 1)
	assert.Equal(t, config.DefaultDisclosurePrefix+" Das ist super geschrieben!", comments[0].Get("text"))
	assert.Equal(t, "20", comments[0].Get("status"))

	posted, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusPosted)
	require.NoError(t, err)
	require.Len(t, posted, 2)

	idPattern := regexp.MustCompile(`^10[12]-\d+-[0-9a-f]{8}$`)
	for _, item := range posted {
		require.NotNil(t, item.UpstreamCommentID)
		assert.Regexp(t, idPattern, *item.UpstreamCommentID)
		assert.NotNil(t, item.PostedAt)
	}
}

func TestGenerateOnlySkipsPosting(t *testing.T) {
	env := setupPipeline(t, true)
	ctx := context.Background()

	env.pipeline.RunDiscovery(ctx, env.proc)
	env.pipeline.RunPreparation(ctx, env.proc)
	env.pipeline.RunGeneration(ctx, env.proc)

	result := env.pipeline.RunPosting(ctx, env.proc)
	assert.Equal(t, 0, result.Advanced)
	assert.Equal(t, StatusSuccess, result.Status)

	// Nothing left the generated state and nothing reached the upstream
	generated, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusGenerated)
	require.NoError(t, err)
	assert.Len(t, generated, 2)
	assert.Empty(t, env.platform.commentsFor("101"))
	assert.Empty(t, env.platform.commentsFor("102"))
}

func TestRunGenerationFailureMarksItems(t *testing.T) {
	env := setupPipeline(t, false)
	env.generator.err = fmt.Errorf("rate limit exceeded")
	ctx := context.Background()

	env.pipeline.RunDiscovery(ctx, env.proc)
	env.pipeline.RunPreparation(ctx, env.proc)

	result := env.pipeline.RunGeneration(ctx, env.proc)
	assert.Equal(t, 0, result.Advanced)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, StatusFailed, result.Status)

	failed, err := env.items.ListByStatus(ctx, env.proc.ID, workitem.StatusFailed)
	require.NoError(t, err)
	assert.Len(t, failed, 2)
}

func TestSyntheticCommentID(t *testing.T) {
	item := &ent.WorkItem{ID: "abcdef1234567890", ArticleID: "101"}
	at := time.Unix(1751328000, 0)
	assert.Equal(t, "101-1751328000-abcdef12", syntheticCommentID(item, at))

	short := &ent.WorkItem{ID: "ab", ArticleID: "7"}
	assert.Equal(t, "7-1751328000-ab", syntheticCommentID(short, at))
}

func TestRunUnknownStage(t *testing.T) {
	env := setupPipeline(t, false)
	_, err := env.pipeline.Run(context.Background(), env.proc, "shipping")
	assert.Error(t, err)
}
