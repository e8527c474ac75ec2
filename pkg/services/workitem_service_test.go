package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

func discoverItem(t *testing.T, svc *WorkItemService, processID, loginID, articleID string) *ent.WorkItem {
	item, err := svc.CreateDiscovered(context.Background(), CreateWorkItemInput{
		ProcessID: processID,
		LoginID:   loginID,
		UserID:    testUserID,
		ArticleID: articleID,
	})
	require.NoError(t, err)
	return item
}

func TestCreateDiscoveredDeduplicates(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)

	item := discoverItem(t, svc, proc.ID, login.ID, "101")
	assert.Equal(t, workitem.StatusDiscovered, item.Status)

	// Same triple again is a duplicate
	_, err := svc.CreateDiscovered(context.Background(), CreateWorkItemInput{
		ProcessID: proc.ID,
		LoginID:   login.ID,
		UserID:    testUserID,
		ArticleID: "101",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// A different article for the same login is fine
	discoverItem(t, svc, proc.ID, login.ID, "102")
}

func TestListByStatusOrdersByCreation(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)
	ctx := context.Background()

	first := discoverItem(t, svc, proc.ID, login.ID, "101")
	second := discoverItem(t, svc, proc.ID, login.ID, "102")
	third := discoverItem(t, svc, proc.ID, login.ID, "103")

	require.NoError(t, svc.UpdateToPrepared(ctx, second.ID, ArticleSnapshot{Title: "t", Author: "a", URL: "u", Content: "c", HTML: "<div/>"}))

	discovered, err := svc.ListByStatus(ctx, proc.ID, workitem.StatusDiscovered)
	require.NoError(t, err)
	require.Len(t, discovered, 2)
	assert.Equal(t, first.ID, discovered[0].ID)
	assert.Equal(t, third.ID, discovered[1].ID)

	prepared, err := svc.ListByStatus(ctx, proc.ID, workitem.StatusPrepared)
	require.NoError(t, err)
	require.Len(t, prepared, 1)
	assert.Equal(t, second.ID, prepared[0].ID)
}

func TestWorkItemLifecycle(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)
	ctx := context.Background()

	item := discoverItem(t, svc, proc.ID, login.ID, "101")

	published := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	category := 9
	require.NoError(t, svc.UpdateToPrepared(ctx, item.ID, ArticleSnapshot{
		Title:       "Windig",
		Author:      "RockstarCondor",
		CategoryID:  &category,
		URL:         "https://example.org/article/101/",
		Content:     "Es war windig.",
		HTML:        "<div class=\"article\"><p>Es war windig.</p></div>",
		PublishedAt: &published,
	}))

	require.NoError(t, svc.UpdateToGenerated(ctx, item.ID, GeneratedComment{
		Text:             "[Dieser Kommentar stammt von einem KI-ChatBot.] Toll!",
		ProviderName:     "openai",
		ModelName:        "gpt-4o-mini",
		Tokens:           42,
		GenerationTimeMS: 350,
	}))

	require.NoError(t, svc.UpdateToPosted(ctx, item.ID, "101-1751328000-abcd1234"))

	loaded, err := client.WorkItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusPosted, loaded.Status)
	require.NotNil(t, loaded.ArticleTitle)
	assert.Equal(t, "Windig", *loaded.ArticleTitle)
	require.NotNil(t, loaded.ArticleCategoryID)
	assert.Equal(t, 9, *loaded.ArticleCategoryID)
	require.NotNil(t, loaded.CommentText)
	assert.Equal(t, "[Dieser Kommentar stammt von einem KI-ChatBot.] Toll!", *loaded.CommentText)
	require.NotNil(t, loaded.GenerationTokens)
	assert.Equal(t, 42, *loaded.GenerationTokens)
	require.NotNil(t, loaded.UpstreamCommentID)
	assert.Equal(t, "101-1751328000-abcd1234", *loaded.UpstreamCommentID)
	assert.NotNil(t, loaded.PostedAt)
	assert.NotNil(t, loaded.ScrapedAt)
}

func TestUpdateToGeneratedRequiresText(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)

	item := discoverItem(t, svc, proc.ID, login.ID, "101")
	err := svc.UpdateToGenerated(context.Background(), item.ID, GeneratedComment{Text: ""})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestMarkFailedIncrementsRetries(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)
	ctx := context.Background()

	item := discoverItem(t, svc, proc.ID, login.ID, "101")

	require.NoError(t, svc.MarkFailed(ctx, item.ID, "detail page returned 500"))
	require.NoError(t, svc.MarkFailed(ctx, item.ID, "detail page returned 500 again"))

	loaded, err := client.WorkItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusFailed, loaded.Status)
	assert.Equal(t, 2, loaded.RetryCount)
	require.NotNil(t, loaded.ErrorMessage)
	assert.Equal(t, "detail page returned 500 again", *loaded.ErrorMessage)
	assert.NotNil(t, loaded.FailedAt)
}

func TestMarkFailedMasksCredentials(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)
	ctx := context.Background()

	item := discoverItem(t, svc, proc.ID, login.ID, "101")

	require.NoError(t, svc.MarkFailed(ctx, item.ID,
		"login POST failed: username=schueler&password=geheim123"))

	loaded, err := client.WorkItem.Get(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ErrorMessage)
	assert.NotContains(t, *loaded.ErrorMessage, "geheim123")
	assert.Contains(t, *loaded.ErrorMessage, "__MASKED_PASSWORD__")
}

func TestCountByStatus(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)
	ctx := context.Background()

	discoverItem(t, svc, proc.ID, login.ID, "101")
	item2 := discoverItem(t, svc, proc.ID, login.ID, "102")
	item3 := discoverItem(t, svc, proc.ID, login.ID, "103")

	require.NoError(t, svc.UpdateToPrepared(ctx, item2.ID, ArticleSnapshot{Title: "t", Author: "a", URL: "u", Content: "c", HTML: "<div/>"}))
	require.NoError(t, svc.MarkFailed(ctx, item3.ID, "boom"))

	counts, err := svc.CountByStatus(ctx, proc.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"discovered": 1,
		"prepared":   1,
		"failed":     1,
	}, counts)
}

func TestSoftDeleteScopedToOwner(t *testing.T) {
	client := newTestClient(t)
	proc, login := newTestProcess(t, client, newTestVault(t))
	svc := NewWorkItemService(client)
	ctx := context.Background()

	item := discoverItem(t, svc, proc.ID, login.ID, "101")

	assert.ErrorIs(t, svc.SoftDelete(ctx, "someone-else", item.ID), ErrNotFound)
	require.NoError(t, svc.SoftDelete(ctx, testUserID, item.ID))

	loaded, err := client.WorkItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusDeleted, loaded.Status)

	// The triple stays occupied, so rediscovery is still suppressed
	_, err = svc.CreateDiscovered(ctx, CreateWorkItemInput{
		ProcessID: proc.ID,
		LoginID:   login.ID,
		UserID:    testUserID,
		ArticleID: "101",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}
