// Package prompt renders comment-generation prompts from article
// snapshots and enforces the AI disclosure prefix on generated text.
package prompt

import (
	"strings"
)

// Snapshot is the article data available to prompt templates.
type Snapshot struct {
	Title       string
	Content     string
	Author      string
	Category    string
	PublishedAt string
	URL         string
	RawHTML     string
}

// The closed set of template placeholders. Unknown placeholders are left
// untouched so template typos stay visible in the rendered output.
var placeholderKeys = []string{
	"article_title",
	"article_content",
	"article_author",
	"article_category",
	"article_published_at",
	"article_url",
	"article_raw_html",
}

func (s Snapshot) value(key string) string {
	switch key {
	case "article_title":
		return s.Title
	case "article_content":
		return s.Content
	case "article_author":
		return s.Author
	case "article_category":
		return s.Category
	case "article_published_at":
		return s.PublishedAt
	case "article_url":
		return s.URL
	case "article_raw_html":
		return s.RawHTML
	}
	return ""
}

// Render substitutes every {placeholder} occurrence in the template with
// the snapshot's value. Missing values substitute as empty strings.
func Render(template string, snapshot Snapshot) string {
	pairs := make([]string, 0, len(placeholderKeys)*2)
	for _, key := range placeholderKeys {
		pairs = append(pairs, "{"+key+"}", snapshot.value(key))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// ApplyDisclosurePrefix prepends the disclosure prefix to the comment
// text unless it is already present. The result always starts with the
// prefix followed by a single space and non-empty text.
func ApplyDisclosurePrefix(prefix, text string) string {
	text = strings.TrimSpace(text)
	if prefix == "" {
		return text
	}
	if strings.HasPrefix(text, prefix) {
		rest := strings.TrimSpace(strings.TrimPrefix(text, prefix))
		if rest == "" {
			return prefix
		}
		return prefix + " " + rest
	}
	if text == "" {
		return prefix
	}
	return prefix + " " + text
}

// HasDisclosurePrefix reports whether the comment text starts with the
// disclosure prefix.
func HasDisclosurePrefix(prefix, text string) bool {
	return prefix != "" && strings.HasPrefix(text, prefix)
}
