package upstream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/ratelimit"
	"github.com/yourmoment/yourmoment/pkg/version"
)

const (
	loginPath    = "/accounts/login/"
	logoutAction = "/accounts/logout/"
	articlesPath = "/articles/"

	// Upstream comment form constant: 20 = published
	commentStatusPublished = "20"
)

// Session is one authenticated HTTP session against the upstream platform,
// bound to a single login. It owns a cookie jar; every POST extracts a
// fresh CSRF token from its form page. Automatic redirect following is
// disabled; see do.
type Session struct {
	loginID string
	baseURL *url.URL
	client  *http.Client
	limiter *ratelimit.Limiter

	maxRedirects int

	mu            sync.Mutex
	username      string
	authenticated bool
	lastActivity  time.Time
}

// NewSession creates an unauthenticated session for the given login.
func NewSession(loginID string, cfg *config.UpstreamConfig, limiter *ratelimit.Limiter) (*Session, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Session{
		loginID: loginID,
		baseURL: base,
		client: &http.Client{
			Jar:     jar,
			Timeout: cfg.RequestTimeout,
			// The platform's Location headers may contain backslashes;
			// redirects are followed manually in do.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		limiter:      limiter,
		maxRedirects: cfg.MaxRedirects,
	}, nil
}

// LoginID returns the login this session belongs to.
func (s *Session) LoginID() string { return s.loginID }

// Username returns the upstream username, for logging only.
func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// IsAuthenticated reports whether the last login attempt succeeded and the
// session has not been invalidated since.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// LastActivity returns the time of the last successful upstream request.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Invalidate marks the session unauthenticated. The next use through the
// registry re-authenticates.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// Close releases the session's HTTP resources.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
}

// Login authenticates against the upstream platform: fetch the login form,
// extract the CSRF token, submit the credentials, then probe the home page
// for the logout form. The credentials are not retained.
func (s *Session) Login(ctx context.Context, username, password string) error {
	loginURL := s.baseURL.JoinPath(loginPath)

	doc, _, err := s.getDocument(ctx, loginURL, "")
	if err != nil {
		return fmt.Errorf("%w: loading login form: %v", ErrAuthentication, err)
	}
	csrf := extractCSRFToken(doc.Selection)
	if csrf == "" {
		return fmt.Errorf("%w: login form has no csrfmiddlewaretoken", ErrAuthentication)
	}

	form := url.Values{
		"csrfmiddlewaretoken": {csrf},
		"username":            {username},
		"password":            {password},
		"next":                {""},
	}
	resp, err := s.do(ctx, http.MethodPost, loginURL, form, loginURL.String())
	if err != nil {
		return fmt.Errorf("%w: submitting credentials: %v", ErrAuthentication, err)
	}
	drainAndClose(resp)

	// Authenticated iff the home page shows a logout form
	homeDoc, _, err := s.getDocument(ctx, s.baseURL.JoinPath("/"), "")
	if err != nil {
		return fmt.Errorf("%w: probing auth state: %v", ErrAuthentication, err)
	}
	if !hasLogoutForm(homeDoc) {
		return fmt.Errorf("%w: no logout form after login for login %s", ErrAuthentication, s.loginID)
	}

	s.mu.Lock()
	s.username = username
	s.authenticated = true
	s.lastActivity = time.Now()
	s.mu.Unlock()

	slog.Info("Upstream session authenticated", "login_id", s.loginID)
	return nil
}

// DiscoverArticles loads the articles index and returns the cards of the
// filtered tab, at most filter.Limit entries in index order. Category and
// task filters go upstream as query parameters; the search filter is
// applied client-side against titles.
func (s *Session) DiscoverArticles(ctx context.Context, filter DiscoverFilter) ([]Article, error) {
	if !s.IsAuthenticated() {
		return nil, fmt.Errorf("%w: login %s", ErrNotAuthenticated, s.loginID)
	}

	indexURL := s.baseURL.JoinPath(articlesPath)
	q := indexURL.Query()
	if filter.Tab != "" {
		q.Set("tab", filter.Tab)
	}
	if filter.CategoryID != nil {
		q.Set("kategorie", fmt.Sprintf("%d", *filter.CategoryID))
	}
	if filter.TaskID != nil {
		q.Set("aufgabe", fmt.Sprintf("%d", *filter.TaskID))
	}
	if filter.Sort != "" {
		q.Set("sort", filter.Sort)
	}
	indexURL.RawQuery = q.Encode()

	doc, _, err := s.getDocument(ctx, indexURL, "")
	if err != nil {
		return nil, fmt.Errorf("%w: loading articles index: %v", ErrScraping, err)
	}

	tab := filter.Tab
	if tab == "" {
		tab = "alle"
	}
	articles := parseArticleIndex(doc, tab, s.baseURL)

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		filtered := articles[:0]
		for _, a := range articles {
			if strings.Contains(strings.ToLower(a.Title), needle) {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	if filter.Limit > 0 && len(articles) > filter.Limit {
		articles = articles[:filter.Limit]
	}

	s.touch()
	slog.Debug("Discovered articles", "login_id", s.loginID, "tab", tab, "count", len(articles))
	return articles, nil
}

// FetchArticle loads one article detail page: title, author, cleaned text,
// raw HTML, and the comment-form CSRF token needed for posting.
func (s *Session) FetchArticle(ctx context.Context, articleID string) (*ArticleDetail, error) {
	if !s.IsAuthenticated() {
		return nil, fmt.Errorf("%w: login %s", ErrNotAuthenticated, s.loginID)
	}

	articleURL := s.baseURL.JoinPath("/article/", articleID, "/")
	doc, finalURL, err := s.getDocument(ctx, articleURL, "")
	if err != nil {
		return nil, fmt.Errorf("%w: loading article %s: %v", ErrScraping, articleID, err)
	}

	detail, err := parseArticleDetail(doc, articleID)
	if err != nil {
		return nil, err
	}
	detail.URL = finalURL

	s.touch()
	return detail, nil
}

// PostComment fetches the article's comment-form CSRF token and posts the
// comment. The upstream accepts with 200 or 302; the redirect is not
// followed.
func (s *Session) PostComment(ctx context.Context, req CommentRequest) error {
	if !s.IsAuthenticated() {
		return fmt.Errorf("%w: login %s", ErrNotAuthenticated, s.loginID)
	}

	detail, err := s.FetchArticle(ctx, req.ArticleID)
	if err != nil {
		return err
	}
	if detail.CommentCSRF == "" {
		return fmt.Errorf("%w: article %s has no comment form", ErrScraping, req.ArticleID)
	}

	form := url.Values{
		"csrfmiddlewaretoken": {detail.CommentCSRF},
		"text":                {req.Text},
		"status":              {commentStatusPublished},
		"highlight":           {req.Highlight},
	}
	if req.Hidden {
		form.Set("hide", "on")
	}

	commentURL := s.baseURL.JoinPath("/article/", req.ArticleID, "/comment/")
	resp, err := s.roundTrip(ctx, http.MethodPost, commentURL, form, detail.URL)
	if err != nil {
		return fmt.Errorf("%w: posting comment to article %s: %v", ErrScraping, req.ArticleID, err)
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusFound {
		return fmt.Errorf("%w: comment post to article %s returned %d", ErrScraping, req.ArticleID, resp.StatusCode)
	}

	s.touch()
	slog.Info("Posted comment", "login_id", s.loginID, "article_id", req.ArticleID)
	return nil
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// getDocument GETs a URL (following sanitised redirects) and parses the body.
// It returns the document and the final URL after redirects.
func (s *Session) getDocument(ctx context.Context, u *url.URL, referer string) (*goquery.Document, string, error) {
	resp, err := s.do(ctx, http.MethodGet, u, nil, referer)
	if err != nil {
		return nil, "", err
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("GET %s returned %d", u.Path, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", u.Path, err)
	}
	return doc, resp.Request.URL.String(), nil
}

// do issues a request and follows redirects manually: Location values have
// their backslashes rewritten to forward slashes, 301/302/303 fall back to
// GET, 307/308 preserve the method and form body, and the hop count is
// capped. The current URL is the base for relative redirects.
func (s *Session) do(ctx context.Context, method string, u *url.URL, form url.Values, referer string) (*http.Response, error) {
	current := *u
	for hop := 0; hop <= s.maxRedirects; hop++ {
		resp, err := s.roundTrip(ctx, method, &current, form, referer)
		if err != nil {
			return nil, err
		}

		if !isRedirect(resp.StatusCode) {
			return resp, nil
		}

		location := resp.Header.Get("Location")
		drainAndClose(resp)
		if location == "" {
			return nil, fmt.Errorf("redirect from %s without Location header", current.Path)
		}

		next, err := current.Parse(SanitizeLocation(location))
		if err != nil {
			return nil, fmt.Errorf("invalid redirect location %q: %w", location, err)
		}

		switch resp.StatusCode {
		case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther:
			method = http.MethodGet
			form = nil
		}
		referer = current.String()
		current = *next
	}
	return nil, fmt.Errorf("stopped after %d redirects for %s", s.maxRedirects, u.Path)
}

// roundTrip issues exactly one rate-limited request without following
// redirects.
func (s *Session) roundTrip(ctx context.Context, method string, u *url.URL, form url.Values, referer string) (*http.Response, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.Full())
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	// The transport does not follow redirects, but normalize the request
	// URL for callers reading resp.Request.URL.
	if resp.Request == nil {
		resp.Request = req
	}
	return resp, nil
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

func drainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
}

// SanitizeLocation rewrites the backslashes the upstream platform emits in
// Location headers ("https://host:443\path") to forward slashes.
func SanitizeLocation(location string) string {
	return strings.ReplaceAll(location, `\`, "/")
}
