package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
)

// RunDiscovery lists the upstream article index through every login of
// the process and inserts one work item per (article, login) pair that
// is not already tracked. Duplicates are skipped silently; a login that
// cannot authenticate or list is recorded as an error and the remaining
// logins still run.
func (p *Pipeline) RunDiscovery(ctx context.Context, proc *ent.Process) *StageResult {
	start := time.Now()
	result := &StageResult{Stage: services.StageDiscovery}

	filter := p.discoverFilter(proc)

	for _, login := range proc.Edges.Logins {
		session, err := p.registry.Session(ctx, login.ID)
		if err != nil {
			result.addError(fmt.Errorf("login %s: %w", login.ID, err))
			continue
		}

		articles, err := session.DiscoverArticles(ctx, filter)
		if err != nil {
			if errors.Is(err, upstream.ErrNotAuthenticated) {
				p.registry.Invalidate(login.ID)
			}
			result.addError(fmt.Errorf("login %s: %w", login.ID, err))
			continue
		}

		for _, article := range articles {
			_, err := p.items.CreateDiscovered(ctx, services.CreateWorkItemInput{
				ProcessID: proc.ID,
				LoginID:   login.ID,
				UserID:    proc.UserID,
				ArticleID: article.ID,
			})
			if err != nil {
				if errors.Is(err, services.ErrAlreadyExists) {
					continue
				}
				result.addError(fmt.Errorf("article %s: %w", article.ID, err))
				continue
			}
			result.Advanced++
		}
	}

	result.ElapsedMS = time.Since(start).Milliseconds()
	result.finalize()
	slog.Info("Discovery pass complete",
		"process_id", proc.ID,
		"new_items", result.Advanced,
		"errors", len(result.Errors),
		"status", result.Status)
	return result
}

// discoverFilter maps the process's stored filter onto an upstream query.
// A process without its own article limit gets the configured default.
func (p *Pipeline) discoverFilter(proc *ent.Process) upstream.DiscoverFilter {
	limit := proc.ArticleLimit
	if limit <= 0 {
		limit = p.cfg.DefaultArticleLimit
	}
	filter := upstream.DiscoverFilter{
		CategoryID: proc.FilterCategoryID,
		TaskID:     proc.FilterTaskID,
		Limit:      limit,
	}
	if proc.FilterTab != nil {
		filter.Tab = *proc.FilterTab
	}
	if proc.FilterSearch != nil {
		filter.Search = *proc.FilterSearch
	}
	if proc.FilterSort != nil {
		filter.Sort = *proc.FilterSort
	}
	return filter
}
