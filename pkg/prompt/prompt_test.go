package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const disclosure = "[Dieser Kommentar stammt von einem KI-ChatBot.]"

func TestRender(t *testing.T) {
	snapshot := Snapshot{
		Title:       "Windig",
		Content:     "Es war einmal sehr windig.",
		Author:      "RockstarCondor",
		Category:    "Unterhalten",
		PublishedAt: "01.07.2025",
		URL:         "https://example.org/article/101/",
		RawHTML:     "<div class=\"article\"><p>Es war einmal sehr windig.</p></div>",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "all placeholders",
			template: "Titel: {article_title} von {article_author} ({article_category}, {article_published_at})\n{article_content}\n{article_url}",
			want:     "Titel: Windig von RockstarCondor (Unterhalten, 01.07.2025)\nEs war einmal sehr windig.\nhttps://example.org/article/101/",
		},
		{
			name:     "raw html placeholder",
			template: "HTML: {article_raw_html}",
			want:     "HTML: <div class=\"article\"><p>Es war einmal sehr windig.</p></div>",
		},
		{
			name:     "repeated placeholder",
			template: "{article_title} und nochmals {article_title}",
			want:     "Windig und nochmals Windig",
		},
		{
			name:     "unknown placeholder stays visible",
			template: "{article_title} {article_titel}",
			want:     "Windig {article_titel}",
		},
		{
			name:     "no placeholders",
			template: "Schreib einen netten Kommentar.",
			want:     "Schreib einen netten Kommentar.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.template, snapshot))
		})
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	got := Render("Titel: {article_title}, Inhalt: {article_content}", Snapshot{})
	assert.Equal(t, "Titel: , Inhalt: ", got)
}

func TestApplyDisclosurePrefix(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain text gets prefix",
			text: "Mega spannend geschrieben!",
			want: disclosure + " Mega spannend geschrieben!",
		},
		{
			name: "already prefixed is not doubled",
			text: disclosure + " Mega spannend geschrieben!",
			want: disclosure + " Mega spannend geschrieben!",
		},
		{
			name: "prefix without separator gets normalized",
			text: disclosure + "Mega spannend geschrieben!",
			want: disclosure + " Mega spannend geschrieben!",
		},
		{
			name: "surrounding whitespace trimmed",
			text: "  Mega spannend!  ",
			want: disclosure + " Mega spannend!",
		},
		{
			name: "empty text yields bare prefix",
			text: "",
			want: disclosure,
		},
		{
			name: "prefix only",
			text: disclosure,
			want: disclosure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDisclosurePrefix(disclosure, tt.text)
			assert.Equal(t, tt.want, got)
			assert.True(t, HasDisclosurePrefix(disclosure, got))
		})
	}
}

func TestApplyDisclosurePrefixEmptyPrefix(t *testing.T) {
	assert.Equal(t, "Hallo", ApplyDisclosurePrefix("", " Hallo "))
	assert.False(t, HasDisclosurePrefix("", "Hallo"))
}
