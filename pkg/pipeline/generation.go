package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workitem"
	"github.com/yourmoment/yourmoment/pkg/prompt"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/upstream"
)

// RunGeneration renders a prompt from each prepared item's snapshot,
// generates a comment, and stores it with the disclosure prefix applied.
// Templates rotate round-robin across the items of a pass. The LLM
// client is built once per pass.
func (p *Pipeline) RunGeneration(ctx context.Context, proc *ent.Process) *StageResult {
	start := time.Now()
	result := &StageResult{Stage: services.StageGeneration}

	items, err := p.items.ListByStatus(ctx, proc.ID, workitem.StatusPrepared)
	if err != nil {
		result.addError(err)
		result.ElapsedMS = time.Since(start).Milliseconds()
		return result.finalize()
	}
	if len(items) == 0 {
		result.ElapsedMS = time.Since(start).Milliseconds()
		return result.finalize()
	}

	templates := activeTemplates(proc)
	if len(templates) == 0 {
		result.addError(fmt.Errorf("process %s has no active prompt template", proc.ID))
		result.ElapsedMS = time.Since(start).Milliseconds()
		return result.finalize()
	}

	gen, err := p.generatorFor(ctx, proc.LlmConfigID)
	if err != nil {
		result.addError(fmt.Errorf("building LLM client: %w", err))
		result.ElapsedMS = time.Since(start).Milliseconds()
		return result.finalize()
	}

	for i, item := range items {
		template := templates[i%len(templates)]
		if err := p.generateItem(ctx, proc, item, template, gen); err != nil {
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
	slog.Info("Generation pass complete",
		"process_id", proc.ID,
		"generated", result.Advanced,
		"failed", result.Failed,
		"status", result.Status)
	return result
}

func (p *Pipeline) generateItem(ctx context.Context, proc *ent.Process, item *ent.WorkItem, template *ent.PromptTemplate, gen generator) error {
	snapshot := snapshotOf(item)
	userPrompt := prompt.Render(template.UserPromptTemplate, snapshot)
	systemPrompt := prompt.Render(template.SystemPrompt, snapshot)

	generated, err := gen.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return err
	}

	text := prompt.ApplyDisclosurePrefix(p.cfg.DisclosurePrefix, generated.Text)

	return p.items.UpdateToGenerated(ctx, item.ID, services.GeneratedComment{
		Text:             text,
		ProviderName:     gen.Provider(),
		ModelName:        gen.Model(),
		Tokens:           generated.TotalTokens,
		GenerationTimeMS: int(generated.Elapsed.Milliseconds()),
		TemplateID:       template.ID,
		LLMConfigID:      proc.LlmConfigID,
	})
}

// snapshotOf maps the stored article snapshot to template placeholders.
func snapshotOf(item *ent.WorkItem) prompt.Snapshot {
	snapshot := prompt.Snapshot{}
	if item.ArticleTitle != nil {
		snapshot.Title = *item.ArticleTitle
	}
	if item.ArticleContent != nil {
		snapshot.Content = *item.ArticleContent
	}
	if item.ArticleAuthor != nil {
		snapshot.Author = *item.ArticleAuthor
	}
	if item.ArticleCategoryID != nil {
		if name, ok := upstream.CategoryName(*item.ArticleCategoryID); ok {
			snapshot.Category = name
		}
	}
	if item.ArticlePublishedAt != nil {
		snapshot.PublishedAt = item.ArticlePublishedAt.Format("02.01.2006")
	}
	if item.ArticleURL != nil {
		snapshot.URL = *item.ArticleURL
	}
	if item.ArticleHTML != nil {
		snapshot.RawHTML = *item.ArticleHTML
	}
	return snapshot
}

func activeTemplates(proc *ent.Process) []*ent.PromptTemplate {
	templates := make([]*ent.PromptTemplate, 0, len(proc.Edges.PromptTemplates))
	for _, t := range proc.Edges.PromptTemplates {
		if t.IsActive {
			templates = append(templates, t)
		}
	}
	return templates
}
