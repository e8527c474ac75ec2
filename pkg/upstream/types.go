// Package upstream implements the HTTP client for the upstream writing
// platform: authenticated sessions with CSRF handling, article discovery
// and fetching, and comment posting. The platform emits Location headers
// with literal backslashes, so redirects are followed manually after
// sanitation.
package upstream

import "errors"

var (
	// ErrAuthentication is returned when a login attempt does not yield an
	// authenticated session.
	ErrAuthentication = errors.New("upstream authentication failed")

	// ErrNotAuthenticated is returned when an article operation is invoked
	// on a session that is not (or no longer) authenticated.
	ErrNotAuthenticated = errors.New("session not authenticated")

	// ErrScraping is returned for non-2xx responses and HTML parse failures.
	ErrScraping = errors.New("upstream scraping failed")
)

// Article is the metadata visible on one index-page card. The index page
// carries no reliable category information; CategoryID stays unset until
// the detail page is fetched.
type Article struct {
	ID         string
	Title      string
	Author     string
	Date       string
	Status     string
	Visibility string
	URL        string
}

// ArticleDetail is the full article as parsed from the detail page.
type ArticleDetail struct {
	ID          string
	Title       string
	Author      string
	Content     string
	RawHTML     string
	CategoryID  *int
	TaskID      *int
	CommentCSRF string
	URL         string
}

// DiscoverFilter narrows article discovery. Tab selects the index tab
// ('home', 'alle', or a numeric classroom id); category and task are
// applied server-side via query parameters; Search is a client-side title
// substring filter.
type DiscoverFilter struct {
	Tab        string
	CategoryID *int
	TaskID     *int
	Search     string
	Sort       string
	Limit      int
}

// CommentRequest carries one comment post.
type CommentRequest struct {
	ArticleID string
	Text      string
	Highlight string
	Hidden    bool
}
