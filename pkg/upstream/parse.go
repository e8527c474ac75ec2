package upstream

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	articleIDPattern    = regexp.MustCompile(`/article/(?:edit/)?(\d+)/?`)
	commentFormPattern  = regexp.MustCompile(`/article/\d+/comment/`)
	categoryLinkPattern = regexp.MustCompile(`[?&]kategorie=(\d+)`)
	taskLinkPattern     = regexp.MustCompile(`[?&]aufgabe=(\d+)`)
)

// Index-card status classes used by the platform.
var knownStatuses = map[string]string{
	"entwurf":               "Entwurf",
	"lehrpersonenkontrolle": "Lehrpersonenkontrolle",
	"publiziert":            "Publiziert",
}

func extractCSRFToken(sel *goquery.Selection) string {
	return sel.Find(`input[name="csrfmiddlewaretoken"]`).First().AttrOr("value", "")
}

func hasLogoutForm(doc *goquery.Document) bool {
	return doc.Find(`form[action="` + logoutAction + `"]`).Length() > 0
}

// parseArticleIndex extracts the article cards of one tab from the index
// page. Cards without an /article/{id}/ link are skipped. Order follows
// the page.
func parseArticleIndex(doc *goquery.Document, tab string, base *url.URL) []Article {
	root := doc.Find("div#pills-" + tab).First()
	if root.Length() == 0 {
		// Tab not present; fall back to the whole page
		root = doc.Selection
	}

	cards := root.Find(`div[class*="article-list"]`).First().Children()
	if cards.Length() == 0 {
		cards = root.Find(".col-xl-4.mb-4")
	}

	var articles []Article
	cards.Each(func(_ int, card *goquery.Selection) {
		href := card.Find("a").First().AttrOr("href", "")
		m := articleIDPattern.FindStringSubmatch(href)
		if m == nil {
			return
		}

		article := Article{
			ID:         m[1],
			Title:      strings.TrimSpace(card.Find("div.article-title").First().Text()),
			Author:     strings.TrimSpace(card.Find("div.article-author").First().Text()),
			Date:       strings.TrimSpace(card.Find("div.article-date").First().Text()),
			Visibility: strings.TrimSpace(card.Find("div.article-classroom").First().Text()),
		}

		card.Find("div.card-header").First().Each(func(_ int, header *goquery.Selection) {
			for _, class := range strings.Fields(header.AttrOr("class", "")) {
				if status, ok := knownStatuses[class]; ok {
					article.Status = status
					return
				}
			}
		})

		if ref, err := base.Parse(href); err == nil {
			article.URL = ref.String()
		}

		articles = append(articles, article)
	})
	return articles
}

// parseArticleDetail extracts title, author, cleaned text, raw HTML, and
// the comment-form CSRF token from an article detail page. The title
// heading reads "Titel von Autor"; the split is on the last " von ".
func parseArticleDetail(doc *goquery.Document, articleID string) (*ArticleDetail, error) {
	articleDiv := doc.Find("div.article").First()
	if articleDiv.Length() == 0 {
		return nil, fmt.Errorf("%w: article %s has no article body", ErrScraping, articleID)
	}

	detail := &ArticleDetail{ID: articleID}

	if heading := strings.TrimSpace(doc.Find("h1").First().Text()); heading != "" {
		if idx := strings.LastIndex(heading, " von "); idx >= 0 {
			detail.Title = strings.TrimSpace(heading[:idx])
			detail.Author = strings.TrimSpace(heading[idx+len(" von "):])
		} else {
			detail.Title = heading
		}
	}

	var paragraphs []string
	doc.Find(".article .highlight-target p").Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
	})
	if len(paragraphs) > 0 {
		detail.Content = strings.Join(paragraphs, "\n")
	} else {
		detail.Content = strings.TrimSpace(doc.Find("textarea#text-to-speech").First().Text())
	}

	// Raw HTML with textarea children (text-to-speech source) removed
	articleDiv.Find("textarea").Remove()
	rawHTML, err := goquery.OuterHtml(articleDiv)
	if err != nil {
		return nil, fmt.Errorf("%w: rendering article %s HTML: %v", ErrScraping, articleID, err)
	}
	detail.RawHTML = strings.TrimSpace(rawHTML)

	// Category and task come from the detail page's filter links, never
	// from the index page.
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := a.AttrOr("href", "")
		if detail.CategoryID == nil {
			if m := categoryLinkPattern.FindStringSubmatch(href); m != nil {
				id, _ := strconv.Atoi(m[1])
				detail.CategoryID = &id
			}
		}
		if detail.TaskID == nil {
			if m := taskLinkPattern.FindStringSubmatch(href); m != nil {
				id, _ := strconv.Atoi(m[1])
				detail.TaskID = &id
			}
		}
		return detail.CategoryID == nil || detail.TaskID == nil
	})

	doc.Find("form").EachWithBreak(func(_ int, form *goquery.Selection) bool {
		if commentFormPattern.MatchString(form.AttrOr("action", "")) {
			detail.CommentCSRF = extractCSRFToken(form)
			return false
		}
		return true
	})

	return detail, nil
}
