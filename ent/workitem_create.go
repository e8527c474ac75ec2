// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// WorkItemCreate is the builder for creating a WorkItem entity.
type WorkItemCreate struct {
	config
	mutation *WorkItemMutation
	hooks    []Hook
}

// SetProcessID sets the "process_id" field.
func (_c *WorkItemCreate) SetProcessID(v string) *WorkItemCreate {
	_c.mutation.SetProcessID(v)
	return _c
}

// SetLoginID sets the "login_id" field.
func (_c *WorkItemCreate) SetLoginID(v string) *WorkItemCreate {
	_c.mutation.SetLoginID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WorkItemCreate) SetUserID(v string) *WorkItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetArticleID sets the "article_id" field.
func (_c *WorkItemCreate) SetArticleID(v string) *WorkItemCreate {
	_c.mutation.SetArticleID(v)
	return _c
}

// SetPromptTemplateID sets the "prompt_template_id" field.
func (_c *WorkItemCreate) SetPromptTemplateID(v string) *WorkItemCreate {
	_c.mutation.SetPromptTemplateID(v)
	return _c
}

// SetNillablePromptTemplateID sets the "prompt_template_id" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillablePromptTemplateID(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetPromptTemplateID(*v)
	}
	return _c
}

// SetLlmConfigID sets the "llm_config_id" field.
func (_c *WorkItemCreate) SetLlmConfigID(v string) *WorkItemCreate {
	_c.mutation.SetLlmConfigID(v)
	return _c
}

// SetNillableLlmConfigID sets the "llm_config_id" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableLlmConfigID(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetLlmConfigID(*v)
	}
	return _c
}

// SetArticleTitle sets the "article_title" field.
func (_c *WorkItemCreate) SetArticleTitle(v string) *WorkItemCreate {
	_c.mutation.SetArticleTitle(v)
	return _c
}

// SetNillableArticleTitle sets the "article_title" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleTitle(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetArticleTitle(*v)
	}
	return _c
}

// SetArticleAuthor sets the "article_author" field.
func (_c *WorkItemCreate) SetArticleAuthor(v string) *WorkItemCreate {
	_c.mutation.SetArticleAuthor(v)
	return _c
}

// SetNillableArticleAuthor sets the "article_author" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleAuthor(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetArticleAuthor(*v)
	}
	return _c
}

// SetArticleCategoryID sets the "article_category_id" field.
func (_c *WorkItemCreate) SetArticleCategoryID(v int) *WorkItemCreate {
	_c.mutation.SetArticleCategoryID(v)
	return _c
}

// SetNillableArticleCategoryID sets the "article_category_id" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleCategoryID(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetArticleCategoryID(*v)
	}
	return _c
}

// SetArticleTaskID sets the "article_task_id" field.
func (_c *WorkItemCreate) SetArticleTaskID(v int) *WorkItemCreate {
	_c.mutation.SetArticleTaskID(v)
	return _c
}

// SetNillableArticleTaskID sets the "article_task_id" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleTaskID(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetArticleTaskID(*v)
	}
	return _c
}

// SetArticleURL sets the "article_url" field.
func (_c *WorkItemCreate) SetArticleURL(v string) *WorkItemCreate {
	_c.mutation.SetArticleURL(v)
	return _c
}

// SetNillableArticleURL sets the "article_url" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleURL(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetArticleURL(*v)
	}
	return _c
}

// SetArticleContent sets the "article_content" field.
func (_c *WorkItemCreate) SetArticleContent(v string) *WorkItemCreate {
	_c.mutation.SetArticleContent(v)
	return _c
}

// SetNillableArticleContent sets the "article_content" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleContent(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetArticleContent(*v)
	}
	return _c
}

// SetArticleHTML sets the "article_html" field.
func (_c *WorkItemCreate) SetArticleHTML(v string) *WorkItemCreate {
	_c.mutation.SetArticleHTML(v)
	return _c
}

// SetNillableArticleHTML sets the "article_html" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleHTML(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetArticleHTML(*v)
	}
	return _c
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (_c *WorkItemCreate) SetArticlePublishedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetArticlePublishedAt(v)
	return _c
}

// SetNillableArticlePublishedAt sets the "article_published_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticlePublishedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetArticlePublishedAt(*v)
	}
	return _c
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (_c *WorkItemCreate) SetArticleEditedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetArticleEditedAt(v)
	return _c
}

// SetNillableArticleEditedAt sets the "article_edited_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableArticleEditedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetArticleEditedAt(*v)
	}
	return _c
}

// SetScrapedAt sets the "scraped_at" field.
func (_c *WorkItemCreate) SetScrapedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetScrapedAt(v)
	return _c
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableScrapedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetScrapedAt(*v)
	}
	return _c
}

// SetCommentText sets the "comment_text" field.
func (_c *WorkItemCreate) SetCommentText(v string) *WorkItemCreate {
	_c.mutation.SetCommentText(v)
	return _c
}

// SetNillableCommentText sets the "comment_text" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableCommentText(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetCommentText(*v)
	}
	return _c
}

// SetLlmModelName sets the "llm_model_name" field.
func (_c *WorkItemCreate) SetLlmModelName(v string) *WorkItemCreate {
	_c.mutation.SetLlmModelName(v)
	return _c
}

// SetNillableLlmModelName sets the "llm_model_name" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableLlmModelName(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetLlmModelName(*v)
	}
	return _c
}

// SetLlmProviderName sets the "llm_provider_name" field.
func (_c *WorkItemCreate) SetLlmProviderName(v string) *WorkItemCreate {
	_c.mutation.SetLlmProviderName(v)
	return _c
}

// SetNillableLlmProviderName sets the "llm_provider_name" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableLlmProviderName(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetLlmProviderName(*v)
	}
	return _c
}

// SetGenerationTokens sets the "generation_tokens" field.
func (_c *WorkItemCreate) SetGenerationTokens(v int) *WorkItemCreate {
	_c.mutation.SetGenerationTokens(v)
	return _c
}

// SetNillableGenerationTokens sets the "generation_tokens" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableGenerationTokens(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetGenerationTokens(*v)
	}
	return _c
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_c *WorkItemCreate) SetGenerationTimeMs(v int) *WorkItemCreate {
	_c.mutation.SetGenerationTimeMs(v)
	return _c
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableGenerationTimeMs(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetGenerationTimeMs(*v)
	}
	return _c
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (_c *WorkItemCreate) SetUpstreamCommentID(v string) *WorkItemCreate {
	_c.mutation.SetUpstreamCommentID(v)
	return _c
}

// SetNillableUpstreamCommentID sets the "upstream_comment_id" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableUpstreamCommentID(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetUpstreamCommentID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkItemCreate) SetStatus(v workitem.Status) *WorkItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableStatus(v *workitem.Status) *WorkItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkItemCreate) SetCreatedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableCreatedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPostedAt sets the "posted_at" field.
func (_c *WorkItemCreate) SetPostedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetPostedAt(v)
	return _c
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillablePostedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetPostedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *WorkItemCreate) SetFailedAt(v time.Time) *WorkItemCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableFailedAt(v *time.Time) *WorkItemCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkItemCreate) SetErrorMessage(v string) *WorkItemCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableErrorMessage(v *string) *WorkItemCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *WorkItemCreate) SetRetryCount(v int) *WorkItemCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *WorkItemCreate) SetNillableRetryCount(v *int) *WorkItemCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkItemCreate) SetID(v string) *WorkItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProcess sets the "process" edge to the Process entity.
func (_c *WorkItemCreate) SetProcess(v *Process) *WorkItemCreate {
	return _c.SetProcessID(v.ID)
}

// SetLogin sets the "login" edge to the UpstreamLogin entity.
func (_c *WorkItemCreate) SetLogin(v *UpstreamLogin) *WorkItemCreate {
	return _c.SetLoginID(v.ID)
}

// Mutation returns the WorkItemMutation object of the builder.
func (_c *WorkItemCreate) Mutation() *WorkItemMutation {
	return _c.mutation
}

// Save creates the WorkItem in the database.
func (_c *WorkItemCreate) Save(ctx context.Context) (*WorkItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkItemCreate) SaveX(ctx context.Context) *WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := workitem.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkItemCreate) check() error {
	if _, ok := _c.mutation.ProcessID(); !ok {
		return &ValidationError{Name: "process_id", err: errors.New(`ent: missing required field "WorkItem.process_id"`)}
	}
	if _, ok := _c.mutation.LoginID(); !ok {
		return &ValidationError{Name: "login_id", err: errors.New(`ent: missing required field "WorkItem.login_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WorkItem.user_id"`)}
	}
	if _, ok := _c.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "WorkItem.article_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkItem.created_at"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "WorkItem.retry_count"`)}
	}
	if len(_c.mutation.ProcessIDs()) == 0 {
		return &ValidationError{Name: "process", err: errors.New(`ent: missing required edge "WorkItem.process"`)}
	}
	if len(_c.mutation.LoginIDs()) == 0 {
		return &ValidationError{Name: "login", err: errors.New(`ent: missing required edge "WorkItem.login"`)}
	}
	return nil
}

func (_c *WorkItemCreate) sqlSave(ctx context.Context) (*WorkItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkItemCreate) createSpec() (*WorkItem, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workitem.Table, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ArticleID(); ok {
		_spec.SetField(workitem.FieldArticleID, field.TypeString, value)
		_node.ArticleID = value
	}
	if value, ok := _c.mutation.PromptTemplateID(); ok {
		_spec.SetField(workitem.FieldPromptTemplateID, field.TypeString, value)
		_node.PromptTemplateID = &value
	}
	if value, ok := _c.mutation.LlmConfigID(); ok {
		_spec.SetField(workitem.FieldLlmConfigID, field.TypeString, value)
		_node.LlmConfigID = &value
	}
	if value, ok := _c.mutation.ArticleTitle(); ok {
		_spec.SetField(workitem.FieldArticleTitle, field.TypeString, value)
		_node.ArticleTitle = &value
	}
	if value, ok := _c.mutation.ArticleAuthor(); ok {
		_spec.SetField(workitem.FieldArticleAuthor, field.TypeString, value)
		_node.ArticleAuthor = &value
	}
	if value, ok := _c.mutation.ArticleCategoryID(); ok {
		_spec.SetField(workitem.FieldArticleCategoryID, field.TypeInt, value)
		_node.ArticleCategoryID = &value
	}
	if value, ok := _c.mutation.ArticleTaskID(); ok {
		_spec.SetField(workitem.FieldArticleTaskID, field.TypeInt, value)
		_node.ArticleTaskID = &value
	}
	if value, ok := _c.mutation.ArticleURL(); ok {
		_spec.SetField(workitem.FieldArticleURL, field.TypeString, value)
		_node.ArticleURL = &value
	}
	if value, ok := _c.mutation.ArticleContent(); ok {
		_spec.SetField(workitem.FieldArticleContent, field.TypeString, value)
		_node.ArticleContent = &value
	}
	if value, ok := _c.mutation.ArticleHTML(); ok {
		_spec.SetField(workitem.FieldArticleHTML, field.TypeString, value)
		_node.ArticleHTML = &value
	}
	if value, ok := _c.mutation.ArticlePublishedAt(); ok {
		_spec.SetField(workitem.FieldArticlePublishedAt, field.TypeTime, value)
		_node.ArticlePublishedAt = &value
	}
	if value, ok := _c.mutation.ArticleEditedAt(); ok {
		_spec.SetField(workitem.FieldArticleEditedAt, field.TypeTime, value)
		_node.ArticleEditedAt = &value
	}
	if value, ok := _c.mutation.ScrapedAt(); ok {
		_spec.SetField(workitem.FieldScrapedAt, field.TypeTime, value)
		_node.ScrapedAt = &value
	}
	if value, ok := _c.mutation.CommentText(); ok {
		_spec.SetField(workitem.FieldCommentText, field.TypeString, value)
		_node.CommentText = &value
	}
	if value, ok := _c.mutation.LlmModelName(); ok {
		_spec.SetField(workitem.FieldLlmModelName, field.TypeString, value)
		_node.LlmModelName = &value
	}
	if value, ok := _c.mutation.LlmProviderName(); ok {
		_spec.SetField(workitem.FieldLlmProviderName, field.TypeString, value)
		_node.LlmProviderName = &value
	}
	if value, ok := _c.mutation.GenerationTokens(); ok {
		_spec.SetField(workitem.FieldGenerationTokens, field.TypeInt, value)
		_node.GenerationTokens = &value
	}
	if value, ok := _c.mutation.GenerationTimeMs(); ok {
		_spec.SetField(workitem.FieldGenerationTimeMs, field.TypeInt, value)
		_node.GenerationTimeMs = &value
	}
	if value, ok := _c.mutation.UpstreamCommentID(); ok {
		_spec.SetField(workitem.FieldUpstreamCommentID, field.TypeString, value)
		_node.UpstreamCommentID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PostedAt(); ok {
		_spec.SetField(workitem.FieldPostedAt, field.TypeTime, value)
		_node.PostedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(workitem.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workitem.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(workitem.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if nodes := _c.mutation.ProcessIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workitem.ProcessTable,
			Columns: []string{workitem.ProcessColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(process.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProcessID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LoginIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workitem.LoginTable,
			Columns: []string{workitem.LoginColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamlogin.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LoginID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkItemCreateBulk is the builder for creating many WorkItem entities in bulk.
type WorkItemCreateBulk struct {
	config
	err      error
	builders []*WorkItemCreate
}

// Save creates the WorkItem entities in the database.
func (_c *WorkItemCreateBulk) Save(ctx context.Context) ([]*WorkItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkItemCreateBulk) SaveX(ctx context.Context) []*WorkItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
