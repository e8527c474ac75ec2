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

// RunPreparation fetches the detail page of every discovered item and
// writes the article snapshot. An item whose fetch fails is marked
// failed; the pass continues with the next item.
func (p *Pipeline) RunPreparation(ctx context.Context, proc *ent.Process) *StageResult {
	start := time.Now()
	result := &StageResult{Stage: services.StagePreparation}

	items, err := p.items.ListByStatus(ctx, proc.ID, workitem.StatusDiscovered)
	if err != nil {
		result.addError(err)
		result.ElapsedMS = time.Since(start).Milliseconds()
		return result.finalize()
	}

	for _, item := range items {
		if err := p.prepareItem(ctx, item); err != nil {
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
	slog.Info("Preparation pass complete",
		"process_id", proc.ID,
		"prepared", result.Advanced,
		"failed", result.Failed,
		"status", result.Status)
	return result
}

func (p *Pipeline) prepareItem(ctx context.Context, item *ent.WorkItem) error {
	session, err := p.registry.Session(ctx, item.LoginID)
	if err != nil {
		return err
	}

	detail, err := session.FetchArticle(ctx, item.ArticleID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotAuthenticated) {
			p.registry.Invalidate(item.LoginID)
		}
		return err
	}

	return p.items.UpdateToPrepared(ctx, item.ID, services.ArticleSnapshot{
		Title:      detail.Title,
		Author:     detail.Author,
		CategoryID: detail.CategoryID,
		TaskID:     detail.TaskID,
		URL:        detail.URL,
		Content:    detail.Content,
		HTML:       detail.RawHTML,
	})
}
