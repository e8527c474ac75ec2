package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workitem"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
)

// RunPosting posts every generated comment back through the login that
// discovered its article. Generate-only processes never reach this stage;
// the guard here is a backstop. The upstream gives no comment id back,
// so one is synthesised for the record.
func (p *Pipeline) RunPosting(ctx context.Context, proc *ent.Process) *StageResult {
	return p.runPosting(ctx, proc, false)
}

// RunManualPosting posts generated comments on explicit request, bypassing
// the generate-only guard. This backs the post-comments trigger.
func (p *Pipeline) RunManualPosting(ctx context.Context, proc *ent.Process) *StageResult {
	return p.runPosting(ctx, proc, true)
}

func (p *Pipeline) runPosting(ctx context.Context, proc *ent.Process, manual bool) *StageResult {
	start := time.Now()
	result := &StageResult{Stage: services.StagePosting}

	if proc.GenerateOnly && !manual {
		result.ElapsedMS = time.Since(start).Milliseconds()
		return result.finalize()
	}

	items, err := p.items.ListByStatus(ctx, proc.ID, workitem.StatusGenerated)
	if err != nil {
		result.addError(err)
		result.ElapsedMS = time.Since(start).Milliseconds()
		return result.finalize()
	}

	for _, item := range items {
		if err := p.postItem(ctx, item); err != nil {
			result.Failed++
			result.addError(fmt.Errorf("item %s (article %s): %w", item.ID, item.ArticleID, err))
			if markErr := p.items.MarkFailed(ctx, item.ID, err.Error()); markErr != nil {
				slog.Error("Failed to mark work item failed", "item_id", item.ID, "error", markErr)
			}
			continue
		}
		result.Advanced++
	}

	result.ElapsedMS = time.Since(start).Milliseconds()
	result.finalize()
	slog.Info("Posting pass complete",
		"process_id", proc.ID,
		"posted", result.Advanced,
		"failed", result.Failed,
		"status", result.Status)
	return result
}

func (p *Pipeline) postItem(ctx context.Context, item *ent.WorkItem) error {
	if item.CommentText == nil || *item.CommentText == "" {
		return fmt.Errorf("generated item has no comment text")
	}

	session, err := p.registry.Session(ctx, item.LoginID)
	if err != nil {
		return err
	}

	err = session.PostComment(ctx, upstream.CommentRequest{
		ArticleID: item.ArticleID,
		Text:      *item.CommentText,
	})
	if err != nil {
		if errors.Is(err, upstream.ErrNotAuthenticated) {
			p.registry.Invalidate(item.LoginID)
		}
		return err
	}

	return p.items.UpdateToPosted(ctx, item.ID, syntheticCommentID(item, time.Now()))
}

// syntheticCommentID builds the stored comment reference. The upstream
// response carries no identifier, so the reference combines the article,
// the posting time, and the item.
func syntheticCommentID(item *ent.WorkItem, at time.Time) string {
	itemRef := item.ID
	if len(itemRef) > 8 {
		itemRef = itemRef[:8]
	}
	return fmt.Sprintf("%s-%d-%s", item.ArticleID, at.Unix(), itemRef)
}
