package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workitem"
	"github.com/yourmoment/yourmoment/pkg/masking"
)

// CreateWorkItemInput identifies one discovered (process, article, login)
// combination.
type CreateWorkItemInput struct {
	ProcessID string
	LoginID   string
	UserID    string
	ArticleID string
}

// ArticleSnapshot is the detail-page data written during preparation.
type ArticleSnapshot struct {
	Title       string
	Author      string
	CategoryID  *int
	TaskID      *int
	URL         string
	Content     string
	HTML        string
	PublishedAt *time.Time
	EditedAt    *time.Time
}

// GeneratedComment is the generation result written before posting.
type GeneratedComment struct {
	Text             string
	ProviderName     string
	ModelName        string
	Tokens           int
	GenerationTimeMS int
	TemplateID       string
	LLMConfigID      string
}

// WorkItemService manages the per-article pipeline state. Every item
// moves discovered -> prepared -> generated -> posted, or terminates in
// failed or deleted.
type WorkItemService struct {
	client *ent.Client
}

// NewWorkItemService creates a new WorkItemService.
func NewWorkItemService(client *ent.Client) *WorkItemService {
	if client == nil {
		panic("NewWorkItemService: client must not be nil")
	}
	return &WorkItemService{client: client}
}

// CreateDiscovered inserts a new item in the discovered state. A second
// discovery of the same (process, article, login) combination returns
// ErrAlreadyExists; callers treat that as a silent skip.
func (s *WorkItemService) CreateDiscovered(ctx context.Context, input CreateWorkItemInput) (*ent.WorkItem, error) {
	if input.ProcessID == "" {
		return nil, NewValidationError("process_id", "required")
	}
	if input.LoginID == "" {
		return nil, NewValidationError("login_id", "required")
	}
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if input.ArticleID == "" {
		return nil, NewValidationError("article_id", "required")
	}

	item, err := s.client.WorkItem.Create().
		SetID(uuid.New().String()).
		SetProcessID(input.ProcessID).
		SetLoginID(input.LoginID).
		SetUserID(input.UserID).
		SetArticleID(input.ArticleID).
		SetStatus(workitem.StatusDiscovered).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create work item: %w", err)
	}
	return item, nil
}

// ListByStatus returns the process's items in one status, oldest first,
// which keeps stage processing in discovery order.
func (s *WorkItemService) ListByStatus(ctx context.Context, processID string, status workitem.Status) ([]*ent.WorkItem, error) {
	items, err := s.client.WorkItem.Query().
		Where(
			workitem.ProcessIDEQ(processID),
			workitem.StatusEQ(status),
		).
		Order(ent.Asc(workitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	return items, nil
}

// UpdateToPrepared writes the article snapshot and advances the item to
// prepared.
func (s *WorkItemService) UpdateToPrepared(ctx context.Context, itemID string, snapshot ArticleSnapshot) error {
	update := s.client.WorkItem.UpdateOneID(itemID).
		SetStatus(workitem.StatusPrepared).
		SetArticleTitle(snapshot.Title).
		SetArticleAuthor(snapshot.Author).
		SetArticleURL(snapshot.URL).
		SetArticleContent(snapshot.Content).
		SetArticleHTML(snapshot.HTML).
		SetScrapedAt(time.Now())

	if snapshot.CategoryID != nil {
		update.SetArticleCategoryID(*snapshot.CategoryID)
	}
	if snapshot.TaskID != nil {
		update.SetArticleTaskID(*snapshot.TaskID)
	}
	if snapshot.PublishedAt != nil {
		update.SetArticlePublishedAt(*snapshot.PublishedAt)
	}
	if snapshot.EditedAt != nil {
		update.SetArticleEditedAt(*snapshot.EditedAt)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update work item to prepared: %w", err)
	}
	return nil
}

// UpdateToGenerated writes the generated comment and advances the item
// to generated. The text must already carry the disclosure prefix.
func (s *WorkItemService) UpdateToGenerated(ctx context.Context, itemID string, comment GeneratedComment) error {
	if comment.Text == "" {
		return NewValidationError("comment_text", "required")
	}

	update := s.client.WorkItem.UpdateOneID(itemID).
		SetStatus(workitem.StatusGenerated).
		SetCommentText(comment.Text).
		SetLlmProviderName(comment.ProviderName).
		SetLlmModelName(comment.ModelName).
		SetGenerationTokens(comment.Tokens).
		SetGenerationTimeMs(comment.GenerationTimeMS)

	if comment.TemplateID != "" {
		update.SetPromptTemplateID(comment.TemplateID)
	}
	if comment.LLMConfigID != "" {
		update.SetLlmConfigID(comment.LLMConfigID)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update work item to generated: %w", err)
	}
	return nil
}

// UpdateToPosted records the posting result and advances the item to its
// terminal posted state.
func (s *WorkItemService) UpdateToPosted(ctx context.Context, itemID, upstreamCommentID string) error {
	if upstreamCommentID == "" {
		return NewValidationError("upstream_comment_id", "required")
	}

	err := s.client.WorkItem.UpdateOneID(itemID).
		SetStatus(workitem.StatusPosted).
		SetUpstreamCommentID(upstreamCommentID).
		SetPostedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update work item to posted: %w", err)
	}
	return nil
}

// MarkFailed records a stage failure on the item and bumps its retry
// count.
func (s *WorkItemService) MarkFailed(ctx context.Context, itemID, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "unknown error"
	}
	err := s.client.WorkItem.UpdateOneID(itemID).
		SetStatus(workitem.StatusFailed).
		SetErrorMessage(masking.Mask(errorMessage)).
		SetFailedAt(time.Now()).
		AddRetryCount(1).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark work item failed: %w", err)
	}
	return nil
}

// CountByStatus returns the process's item counts grouped by status.
func (s *WorkItemService) CountByStatus(ctx context.Context, processID string) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.WorkItem.Query().
		Where(workitem.ProcessIDEQ(processID)).
		GroupBy(workitem.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count work items: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// SoftDelete moves a user's item to the deleted state. Deleted items
// keep their row so rediscovery of the triple stays suppressed.
func (s *WorkItemService) SoftDelete(ctx context.Context, userID, itemID string) error {
	n, err := s.client.WorkItem.Update().
		Where(
			workitem.IDEQ(itemID),
			workitem.UserIDEQ(userID),
		).
		SetStatus(workitem.StatusDeleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete work item: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeDeletedBefore hard-deletes soft-deleted items created before the
// cutoff. After the purge the same article can be rediscovered.
func (s *WorkItemService) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.WorkItem.Delete().
		Where(
			workitem.StatusEQ(workitem.StatusDeleted),
			workitem.CreatedAtLTE(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted work items: %w", err)
	}
	return n, nil
}
