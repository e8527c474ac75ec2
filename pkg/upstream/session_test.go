package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/ratelimit"
)

const (
	loginCSRF   = "csrf-login-token"
	commentCSRF = "csrf-comment-token"
)

const loginFormHTML = `<html><body>
<form method="post" action="/accounts/login/">
  <input type="hidden" name="csrfmiddlewaretoken" value="` + loginCSRF + `">
</form></body></html>`

const homeAuthedHTML = `<html><body>
<form action="/accounts/logout/"><button>Abmelden</button></form>
</body></html>`

const homeAnonHTML = `<html><body><p>Willkommen</p></body></html>`

const articlesIndexHTML = `<html><body>
<div id="pills-alle">
  <div class="article-list row">
    <div class="col-xl-4 mb-4">
      <div class="card">
        <div class="card-header publiziert"></div>
        <a href="/article/101/"><div class="article-title">Windig</div></a>
        <div class="article-author">RockstarCondor</div>
        <div class="article-date">01.07.2025</div>
        <div class="article-classroom">Klasse 4a</div>
      </div>
    </div>
    <div class="col-xl-4 mb-4">
      <div class="card">
        <div class="card-header entwurf"></div>
        <a href="/article/102/"><div class="article-title">Mein Velo</div></a>
        <div class="article-author">PixelPanda</div>
        <div class="article-date">02.07.2025</div>
        <div class="article-classroom">Klasse 4a</div>
      </div>
    </div>
  </div>
</div>
<div id="pills-home">
  <div class="article-list row">
    <div class="col-xl-4 mb-4">
      <div class="card">
        <div class="card-header lehrpersonenkontrolle"></div>
        <a href="/article/103/"><div class="article-title">Znüni</div></a>
        <div class="article-author">Ich</div>
        <div class="article-date">03.07.2025</div>
        <div class="article-classroom">Klasse 4a</div>
      </div>
    </div>
  </div>
</div>
</body></html>`

const articleDetailHTML = `<html><body>
<h1>Windig von RockstarCondor</h1>
<a href="/articles/?kategorie=9">Unterhalten</a>
<a href="/articles/?aufgabe=10">Schreibaufgabe: Fiktionaler Dialog</a>
<div class="article">
  <div class="highlight-target">
    <p>Erster Absatz.</p>
    <p>Zweiter Absatz.</p>
  </div>
  <textarea id="text-to-speech">Erster Absatz. Zweiter Absatz.</textarea>
</div>
<form action="/article/101/comment/" method="post">
  <input type="hidden" name="csrfmiddlewaretoken" value="` + commentCSRF + `">
</form>
</body></html>`

// fakePlatform is a minimal upstream imitation: CSRF login flow, article
// index, article detail, and comment endpoint.
type fakePlatform struct {
	server *httptest.Server

	username string
	password string

	mu            sync.Mutex
	loggedIn      bool
	comments      []url.Values
	loginAttempts int
}

func newFakePlatform(t *testing.T) *fakePlatform {
	p := &fakePlatform{username: "schueler", password: "geheim"}

	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, loginFormHTML)
			return
		}
		require.NoError(t, r.ParseForm())
		p.mu.Lock()
		p.loginAttempts++
		if r.PostFormValue("csrfmiddlewaretoken") == loginCSRF &&
			r.PostFormValue("username") == p.username &&
			r.PostFormValue("password") == p.password {
			p.loggedIn = true
		}
		p.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		loggedIn := p.loggedIn
		p.mu.Unlock()
		if loggedIn {
			fmt.Fprint(w, homeAuthedHTML)
		} else {
			fmt.Fprint(w, homeAnonHTML)
		}
	})
	mux.HandleFunc("/articles/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articlesIndexHTML)
	})
	mux.HandleFunc("/article/101/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articleDetailHTML)
	})
	mux.HandleFunc("/article/101/comment/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		p.mu.Lock()
		p.comments = append(p.comments, r.PostForm)
		p.mu.Unlock()
		w.WriteHeader(http.StatusFound)
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func newTestSession(t *testing.T, baseURL string) *Session {
	cfg := config.DefaultUpstreamConfig()
	cfg.BaseURL = baseURL
	s, err := NewSession("login-1", cfg, ratelimit.New(0))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestLoginSuccess(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)

	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "schueler", s.Username())
	assert.False(t, s.LastActivity().IsZero())
}

func TestLoginWrongPassword(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)

	err := s.Login(context.Background(), "schueler", "falsch")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.False(t, s.IsAuthenticated())
}

func TestLoginFormWithoutCSRF(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><form></form></body></html>")
	}))
	t.Cleanup(ts.Close)

	s := newTestSession(t, ts.URL)
	err := s.Login(context.Background(), "a", "b")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorContains(t, err, "csrfmiddlewaretoken")
}

func TestLoginFollowsBackslashRedirect(t *testing.T) {
	// The platform emits Location headers with literal backslashes.
	var ts *httptest.Server
	loggedIn := false
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Location", ts.URL+`\accounts\login-form\`)
			w.WriteHeader(http.StatusFound)
			return
		}
		loggedIn = true
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/accounts/login-form/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, loginFormHTML)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if loggedIn {
			fmt.Fprint(w, homeAuthedHTML)
		} else {
			fmt.Fprint(w, homeAnonHTML)
		}
	})
	ts = httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	s := newTestSession(t, ts.URL)
	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))
	assert.True(t, s.IsAuthenticated())
}

func TestDoStopsAfterMaxRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/accounts/login/")
		w.WriteHeader(http.StatusFound)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	s := newTestSession(t, ts.URL)
	err := s.Login(context.Background(), "a", "b")
	require.Error(t, err)
	assert.ErrorContains(t, err, "redirects")
}

func TestDiscoverArticles(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)
	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))

	articles, err := s.DiscoverArticles(context.Background(), DiscoverFilter{Tab: "alle", Limit: 20})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "101", articles[0].ID)
	assert.Equal(t, "Windig", articles[0].Title)
	assert.Equal(t, "RockstarCondor", articles[0].Author)
	assert.Equal(t, "01.07.2025", articles[0].Date)
	assert.Equal(t, "Publiziert", articles[0].Status)
	assert.Equal(t, "Klasse 4a", articles[0].Visibility)
	assert.Equal(t, p.server.URL+"/article/101/", articles[0].URL)

	assert.Equal(t, "102", articles[1].ID)
	assert.Equal(t, "Entwurf", articles[1].Status)
}

func TestDiscoverArticlesTabSelection(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)
	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))

	articles, err := s.DiscoverArticles(context.Background(), DiscoverFilter{Tab: "home"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "103", articles[0].ID)
	assert.Equal(t, "Lehrpersonenkontrolle", articles[0].Status)
}

func TestDiscoverArticlesLimitAndSearch(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)
	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))

	articles, err := s.DiscoverArticles(context.Background(), DiscoverFilter{Tab: "alle", Limit: 1})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "101", articles[0].ID)

	articles, err = s.DiscoverArticles(context.Background(), DiscoverFilter{Tab: "alle", Search: "velo"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "102", articles[0].ID)
}

func TestDiscoverArticlesRequiresAuth(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)

	_, err := s.DiscoverArticles(context.Background(), DiscoverFilter{Tab: "alle"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFetchArticle(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)
	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))

	detail, err := s.FetchArticle(context.Background(), "101")
	require.NoError(t, err)

	assert.Equal(t, "101", detail.ID)
	assert.Equal(t, "Windig", detail.Title)
	assert.Equal(t, "RockstarCondor", detail.Author)
	assert.Equal(t, "Erster Absatz.\nZweiter Absatz.", detail.Content)
	assert.Equal(t, commentCSRF, detail.CommentCSRF)
	require.NotNil(t, detail.CategoryID)
	assert.Equal(t, 9, *detail.CategoryID)
	require.NotNil(t, detail.TaskID)
	assert.Equal(t, 10, *detail.TaskID)
	assert.Contains(t, detail.RawHTML, "highlight-target")
	assert.NotContains(t, detail.RawHTML, "textarea")
	assert.Equal(t, p.server.URL+"/article/101/", detail.URL)
}

func TestPostComment(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)
	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))

	err := s.PostComment(context.Background(), CommentRequest{
		ArticleID: "101",
		Text:      "[Dieser Kommentar stammt von einem KI-ChatBot.] Mega cool!",
		Highlight: "Erster Absatz.",
	})
	require.NoError(t, err)

	require.Len(t, p.comments, 1)
	form := p.comments[0]
	assert.Equal(t, commentCSRF, form.Get("csrfmiddlewaretoken"))
	assert.Equal(t, "[Dieser Kommentar stammt von einem KI-ChatBot.] Mega cool!", form.Get("text"))
	assert.Equal(t, "20", form.Get("status"))
	assert.Equal(t, "Erster Absatz.", form.Get("highlight"))
	assert.Empty(t, form.Get("hide"))
}

func TestPostCommentHidden(t *testing.T) {
	p := newFakePlatform(t)
	s := newTestSession(t, p.server.URL)
	require.NoError(t, s.Login(context.Background(), "schueler", "geheim"))

	err := s.PostComment(context.Background(), CommentRequest{
		ArticleID: "101",
		Text:      "[Dieser Kommentar stammt von einem KI-ChatBot.] Versteckt.",
		Hidden:    true,
	})
	require.NoError(t, err)

	require.Len(t, p.comments, 1)
	assert.Equal(t, "on", p.comments[0].Get("hide"))
}

func TestPostCommentUpstreamRejects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, loginFormHTML)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, homeAuthedHTML)
	})
	mux.HandleFunc("/article/101/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articleDetailHTML)
	})
	mux.HandleFunc("/article/101/comment/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	s := newTestSession(t, ts.URL)
	require.NoError(t, s.Login(context.Background(), "a", "b"))

	err := s.PostComment(context.Background(), CommentRequest{ArticleID: "101", Text: "x"})
	assert.ErrorIs(t, err, ErrScraping)
	assert.ErrorContains(t, err, "500")
}

func TestSanitizeLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`https://host:443\accounts/login/`, "https://host:443/accounts/login/"},
		{`https://host:443\a\b\c`, "https://host:443/a/b/c"},
		{"/relative/path/", "/relative/path/"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeLocation(tt.in))
	}
}

func TestDiscoverFilterQueryParams(t *testing.T) {
	var gotQuery url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, loginFormHTML)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, homeAuthedHTML)
	})
	mux.HandleFunc("/articles/", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, articlesIndexHTML)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	s := newTestSession(t, ts.URL)
	require.NoError(t, s.Login(context.Background(), "a", "b"))

	category, task := 9, 10
	_, err := s.DiscoverArticles(context.Background(), DiscoverFilter{
		Tab:        "alle",
		CategoryID: &category,
		TaskID:     &task,
		Sort:       "neueste",
	})
	require.NoError(t, err)

	assert.Equal(t, "alle", gotQuery.Get("tab"))
	assert.Equal(t, "9", gotQuery.Get("kategorie"))
	assert.Equal(t, "10", gotQuery.Get("aufgabe"))
	assert.Equal(t, "neueste", gotQuery.Get("sort"))
}

func TestCategoryAndTaskMappings(t *testing.T) {
	name, ok := CategoryName(9)
	require.True(t, ok)
	assert.Equal(t, "Unterhalten", name)

	name, ok = TaskName(10)
	require.True(t, ok)
	assert.Equal(t, "Schreibaufgabe: Fiktionaler Dialog", name)

	_, ok = CategoryName(999)
	assert.False(t, ok)
	_, ok = TaskName(999)
	assert.False(t, ok)
}

func TestLoginSendsRefererAndFormBody(t *testing.T) {
	var postReferer, contentType string
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, loginFormHTML)
			return
		}
		postReferer = r.Header.Get("Referer")
		contentType = r.Header.Get("Content-Type")
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, homeAuthedHTML)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	s := newTestSession(t, ts.URL)
	require.NoError(t, s.Login(context.Background(), "a", "b"))

	assert.True(t, strings.HasSuffix(postReferer, "/accounts/login/"))
	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
}
