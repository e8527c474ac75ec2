// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// WorkItemUpdate is the builder for updating WorkItem entities.
type WorkItemUpdate struct {
	config
	hooks    []Hook
	mutation *WorkItemMutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdate) Where(ps ...predicate.WorkItem) *WorkItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptTemplateID sets the "prompt_template_id" field.
func (_u *WorkItemUpdate) SetPromptTemplateID(v string) *WorkItemUpdate {
	_u.mutation.SetPromptTemplateID(v)
	return _u
}

// SetNillablePromptTemplateID sets the "prompt_template_id" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillablePromptTemplateID(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetPromptTemplateID(*v)
	}
	return _u
}

// ClearPromptTemplateID clears the value of the "prompt_template_id" field.
func (_u *WorkItemUpdate) ClearPromptTemplateID() *WorkItemUpdate {
	_u.mutation.ClearPromptTemplateID()
	return _u
}

// SetLlmConfigID sets the "llm_config_id" field.
func (_u *WorkItemUpdate) SetLlmConfigID(v string) *WorkItemUpdate {
	_u.mutation.SetLlmConfigID(v)
	return _u
}

// SetNillableLlmConfigID sets the "llm_config_id" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableLlmConfigID(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetLlmConfigID(*v)
	}
	return _u
}

// ClearLlmConfigID clears the value of the "llm_config_id" field.
func (_u *WorkItemUpdate) ClearLlmConfigID() *WorkItemUpdate {
	_u.mutation.ClearLlmConfigID()
	return _u
}

// SetArticleTitle sets the "article_title" field.
func (_u *WorkItemUpdate) SetArticleTitle(v string) *WorkItemUpdate {
	_u.mutation.SetArticleTitle(v)
	return _u
}

// SetNillableArticleTitle sets the "article_title" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleTitle(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleTitle(*v)
	}
	return _u
}

// ClearArticleTitle clears the value of the "article_title" field.
func (_u *WorkItemUpdate) ClearArticleTitle() *WorkItemUpdate {
	_u.mutation.ClearArticleTitle()
	return _u
}

// SetArticleAuthor sets the "article_author" field.
func (_u *WorkItemUpdate) SetArticleAuthor(v string) *WorkItemUpdate {
	_u.mutation.SetArticleAuthor(v)
	return _u
}

// SetNillableArticleAuthor sets the "article_author" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleAuthor(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleAuthor(*v)
	}
	return _u
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (_u *WorkItemUpdate) ClearArticleAuthor() *WorkItemUpdate {
	_u.mutation.ClearArticleAuthor()
	return _u
}

// SetArticleCategoryID sets the "article_category_id" field.
func (_u *WorkItemUpdate) SetArticleCategoryID(v int) *WorkItemUpdate {
	_u.mutation.ResetArticleCategoryID()
	_u.mutation.SetArticleCategoryID(v)
	return _u
}

// SetNillableArticleCategoryID sets the "article_category_id" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleCategoryID(v *int) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleCategoryID(*v)
	}
	return _u
}

// AddArticleCategoryID adds value to the "article_category_id" field.
func (_u *WorkItemUpdate) AddArticleCategoryID(v int) *WorkItemUpdate {
	_u.mutation.AddArticleCategoryID(v)
	return _u
}

// ClearArticleCategoryID clears the value of the "article_category_id" field.
func (_u *WorkItemUpdate) ClearArticleCategoryID() *WorkItemUpdate {
	_u.mutation.ClearArticleCategoryID()
	return _u
}

// SetArticleTaskID sets the "article_task_id" field.
func (_u *WorkItemUpdate) SetArticleTaskID(v int) *WorkItemUpdate {
	_u.mutation.ResetArticleTaskID()
	_u.mutation.SetArticleTaskID(v)
	return _u
}

// SetNillableArticleTaskID sets the "article_task_id" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleTaskID(v *int) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleTaskID(*v)
	}
	return _u
}

// AddArticleTaskID adds value to the "article_task_id" field.
func (_u *WorkItemUpdate) AddArticleTaskID(v int) *WorkItemUpdate {
	_u.mutation.AddArticleTaskID(v)
	return _u
}

// ClearArticleTaskID clears the value of the "article_task_id" field.
func (_u *WorkItemUpdate) ClearArticleTaskID() *WorkItemUpdate {
	_u.mutation.ClearArticleTaskID()
	return _u
}

// SetArticleURL sets the "article_url" field.
func (_u *WorkItemUpdate) SetArticleURL(v string) *WorkItemUpdate {
	_u.mutation.SetArticleURL(v)
	return _u
}

// SetNillableArticleURL sets the "article_url" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleURL(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleURL(*v)
	}
	return _u
}

// ClearArticleURL clears the value of the "article_url" field.
func (_u *WorkItemUpdate) ClearArticleURL() *WorkItemUpdate {
	_u.mutation.ClearArticleURL()
	return _u
}

// SetArticleContent sets the "article_content" field.
func (_u *WorkItemUpdate) SetArticleContent(v string) *WorkItemUpdate {
	_u.mutation.SetArticleContent(v)
	return _u
}

// SetNillableArticleContent sets the "article_content" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleContent(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleContent(*v)
	}
	return _u
}

// ClearArticleContent clears the value of the "article_content" field.
func (_u *WorkItemUpdate) ClearArticleContent() *WorkItemUpdate {
	_u.mutation.ClearArticleContent()
	return _u
}

// SetArticleHTML sets the "article_html" field.
func (_u *WorkItemUpdate) SetArticleHTML(v string) *WorkItemUpdate {
	_u.mutation.SetArticleHTML(v)
	return _u
}

// SetNillableArticleHTML sets the "article_html" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleHTML(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleHTML(*v)
	}
	return _u
}

// ClearArticleHTML clears the value of the "article_html" field.
func (_u *WorkItemUpdate) ClearArticleHTML() *WorkItemUpdate {
	_u.mutation.ClearArticleHTML()
	return _u
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (_u *WorkItemUpdate) SetArticlePublishedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetArticlePublishedAt(v)
	return _u
}

// SetNillableArticlePublishedAt sets the "article_published_at" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticlePublishedAt(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetArticlePublishedAt(*v)
	}
	return _u
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (_u *WorkItemUpdate) ClearArticlePublishedAt() *WorkItemUpdate {
	_u.mutation.ClearArticlePublishedAt()
	return _u
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (_u *WorkItemUpdate) SetArticleEditedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetArticleEditedAt(v)
	return _u
}

// SetNillableArticleEditedAt sets the "article_edited_at" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableArticleEditedAt(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetArticleEditedAt(*v)
	}
	return _u
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (_u *WorkItemUpdate) ClearArticleEditedAt() *WorkItemUpdate {
	_u.mutation.ClearArticleEditedAt()
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *WorkItemUpdate) SetScrapedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableScrapedAt(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// ClearScrapedAt clears the value of the "scraped_at" field.
func (_u *WorkItemUpdate) ClearScrapedAt() *WorkItemUpdate {
	_u.mutation.ClearScrapedAt()
	return _u
}

// SetCommentText sets the "comment_text" field.
func (_u *WorkItemUpdate) SetCommentText(v string) *WorkItemUpdate {
	_u.mutation.SetCommentText(v)
	return _u
}

// SetNillableCommentText sets the "comment_text" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableCommentText(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetCommentText(*v)
	}
	return _u
}

// ClearCommentText clears the value of the "comment_text" field.
func (_u *WorkItemUpdate) ClearCommentText() *WorkItemUpdate {
	_u.mutation.ClearCommentText()
	return _u
}

// SetLlmModelName sets the "llm_model_name" field.
func (_u *WorkItemUpdate) SetLlmModelName(v string) *WorkItemUpdate {
	_u.mutation.SetLlmModelName(v)
	return _u
}

// SetNillableLlmModelName sets the "llm_model_name" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableLlmModelName(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetLlmModelName(*v)
	}
	return _u
}

// ClearLlmModelName clears the value of the "llm_model_name" field.
func (_u *WorkItemUpdate) ClearLlmModelName() *WorkItemUpdate {
	_u.mutation.ClearLlmModelName()
	return _u
}

// SetLlmProviderName sets the "llm_provider_name" field.
func (_u *WorkItemUpdate) SetLlmProviderName(v string) *WorkItemUpdate {
	_u.mutation.SetLlmProviderName(v)
	return _u
}

// SetNillableLlmProviderName sets the "llm_provider_name" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableLlmProviderName(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetLlmProviderName(*v)
	}
	return _u
}

// ClearLlmProviderName clears the value of the "llm_provider_name" field.
func (_u *WorkItemUpdate) ClearLlmProviderName() *WorkItemUpdate {
	_u.mutation.ClearLlmProviderName()
	return _u
}

// SetGenerationTokens sets the "generation_tokens" field.
func (_u *WorkItemUpdate) SetGenerationTokens(v int) *WorkItemUpdate {
	_u.mutation.ResetGenerationTokens()
	_u.mutation.SetGenerationTokens(v)
	return _u
}

// SetNillableGenerationTokens sets the "generation_tokens" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableGenerationTokens(v *int) *WorkItemUpdate {
	if v != nil {
		_u.SetGenerationTokens(*v)
	}
	return _u
}

// AddGenerationTokens adds value to the "generation_tokens" field.
func (_u *WorkItemUpdate) AddGenerationTokens(v int) *WorkItemUpdate {
	_u.mutation.AddGenerationTokens(v)
	return _u
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (_u *WorkItemUpdate) ClearGenerationTokens() *WorkItemUpdate {
	_u.mutation.ClearGenerationTokens()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *WorkItemUpdate) SetGenerationTimeMs(v int) *WorkItemUpdate {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableGenerationTimeMs(v *int) *WorkItemUpdate {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *WorkItemUpdate) AddGenerationTimeMs(v int) *WorkItemUpdate {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *WorkItemUpdate) ClearGenerationTimeMs() *WorkItemUpdate {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (_u *WorkItemUpdate) SetUpstreamCommentID(v string) *WorkItemUpdate {
	_u.mutation.SetUpstreamCommentID(v)
	return _u
}

// SetNillableUpstreamCommentID sets the "upstream_comment_id" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableUpstreamCommentID(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetUpstreamCommentID(*v)
	}
	return _u
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (_u *WorkItemUpdate) ClearUpstreamCommentID() *WorkItemUpdate {
	_u.mutation.ClearUpstreamCommentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdate) SetStatus(v workitem.Status) *WorkItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableStatus(v *workitem.Status) *WorkItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *WorkItemUpdate) SetPostedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillablePostedAt(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *WorkItemUpdate) ClearPostedAt() *WorkItemUpdate {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *WorkItemUpdate) SetFailedAt(v time.Time) *WorkItemUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableFailedAt(v *time.Time) *WorkItemUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *WorkItemUpdate) ClearFailedAt() *WorkItemUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkItemUpdate) SetErrorMessage(v string) *WorkItemUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableErrorMessage(v *string) *WorkItemUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkItemUpdate) ClearErrorMessage() *WorkItemUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkItemUpdate) SetRetryCount(v int) *WorkItemUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkItemUpdate) SetNillableRetryCount(v *int) *WorkItemUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkItemUpdate) AddRetryCount(v int) *WorkItemUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdate) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkItem.process"`)
	}
	if _u.mutation.LoginCleared() && len(_u.mutation.LoginIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkItem.login"`)
	}
	return nil
}

func (_u *WorkItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptTemplateID(); ok {
		_spec.SetField(workitem.FieldPromptTemplateID, field.TypeString, value)
	}
	if _u.mutation.PromptTemplateIDCleared() {
		_spec.ClearField(workitem.FieldPromptTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmConfigID(); ok {
		_spec.SetField(workitem.FieldLlmConfigID, field.TypeString, value)
	}
	if _u.mutation.LlmConfigIDCleared() {
		_spec.ClearField(workitem.FieldLlmConfigID, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleTitle(); ok {
		_spec.SetField(workitem.FieldArticleTitle, field.TypeString, value)
	}
	if _u.mutation.ArticleTitleCleared() {
		_spec.ClearField(workitem.FieldArticleTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleAuthor(); ok {
		_spec.SetField(workitem.FieldArticleAuthor, field.TypeString, value)
	}
	if _u.mutation.ArticleAuthorCleared() {
		_spec.ClearField(workitem.FieldArticleAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleCategoryID(); ok {
		_spec.SetField(workitem.FieldArticleCategoryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleCategoryID(); ok {
		_spec.AddField(workitem.FieldArticleCategoryID, field.TypeInt, value)
	}
	if _u.mutation.ArticleCategoryIDCleared() {
		_spec.ClearField(workitem.FieldArticleCategoryID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleTaskID(); ok {
		_spec.SetField(workitem.FieldArticleTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleTaskID(); ok {
		_spec.AddField(workitem.FieldArticleTaskID, field.TypeInt, value)
	}
	if _u.mutation.ArticleTaskIDCleared() {
		_spec.ClearField(workitem.FieldArticleTaskID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleURL(); ok {
		_spec.SetField(workitem.FieldArticleURL, field.TypeString, value)
	}
	if _u.mutation.ArticleURLCleared() {
		_spec.ClearField(workitem.FieldArticleURL, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleContent(); ok {
		_spec.SetField(workitem.FieldArticleContent, field.TypeString, value)
	}
	if _u.mutation.ArticleContentCleared() {
		_spec.ClearField(workitem.FieldArticleContent, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleHTML(); ok {
		_spec.SetField(workitem.FieldArticleHTML, field.TypeString, value)
	}
	if _u.mutation.ArticleHTMLCleared() {
		_spec.ClearField(workitem.FieldArticleHTML, field.TypeString)
	}
	if value, ok := _u.mutation.ArticlePublishedAt(); ok {
		_spec.SetField(workitem.FieldArticlePublishedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticlePublishedAtCleared() {
		_spec.ClearField(workitem.FieldArticlePublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArticleEditedAt(); ok {
		_spec.SetField(workitem.FieldArticleEditedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleEditedAtCleared() {
		_spec.ClearField(workitem.FieldArticleEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(workitem.FieldScrapedAt, field.TypeTime, value)
	}
	if _u.mutation.ScrapedAtCleared() {
		_spec.ClearField(workitem.FieldScrapedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CommentText(); ok {
		_spec.SetField(workitem.FieldCommentText, field.TypeString, value)
	}
	if _u.mutation.CommentTextCleared() {
		_spec.ClearField(workitem.FieldCommentText, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModelName(); ok {
		_spec.SetField(workitem.FieldLlmModelName, field.TypeString, value)
	}
	if _u.mutation.LlmModelNameCleared() {
		_spec.ClearField(workitem.FieldLlmModelName, field.TypeString)
	}
	if value, ok := _u.mutation.LlmProviderName(); ok {
		_spec.SetField(workitem.FieldLlmProviderName, field.TypeString, value)
	}
	if _u.mutation.LlmProviderNameCleared() {
		_spec.ClearField(workitem.FieldLlmProviderName, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTokens(); ok {
		_spec.SetField(workitem.FieldGenerationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTokens(); ok {
		_spec.AddField(workitem.FieldGenerationTokens, field.TypeInt, value)
	}
	if _u.mutation.GenerationTokensCleared() {
		_spec.ClearField(workitem.FieldGenerationTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(workitem.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(workitem.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(workitem.FieldGenerationTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.UpstreamCommentID(); ok {
		_spec.SetField(workitem.FieldUpstreamCommentID, field.TypeString, value)
	}
	if _u.mutation.UpstreamCommentIDCleared() {
		_spec.ClearField(workitem.FieldUpstreamCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(workitem.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(workitem.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(workitem.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(workitem.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workitem.FieldRetryCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkItemUpdateOne is the builder for updating a single WorkItem entity.
type WorkItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkItemMutation
}

// SetPromptTemplateID sets the "prompt_template_id" field.
func (_u *WorkItemUpdateOne) SetPromptTemplateID(v string) *WorkItemUpdateOne {
	_u.mutation.SetPromptTemplateID(v)
	return _u
}

// SetNillablePromptTemplateID sets the "prompt_template_id" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillablePromptTemplateID(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetPromptTemplateID(*v)
	}
	return _u
}

// ClearPromptTemplateID clears the value of the "prompt_template_id" field.
func (_u *WorkItemUpdateOne) ClearPromptTemplateID() *WorkItemUpdateOne {
	_u.mutation.ClearPromptTemplateID()
	return _u
}

// SetLlmConfigID sets the "llm_config_id" field.
func (_u *WorkItemUpdateOne) SetLlmConfigID(v string) *WorkItemUpdateOne {
	_u.mutation.SetLlmConfigID(v)
	return _u
}

// SetNillableLlmConfigID sets the "llm_config_id" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableLlmConfigID(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetLlmConfigID(*v)
	}
	return _u
}

// ClearLlmConfigID clears the value of the "llm_config_id" field.
func (_u *WorkItemUpdateOne) ClearLlmConfigID() *WorkItemUpdateOne {
	_u.mutation.ClearLlmConfigID()
	return _u
}

// SetArticleTitle sets the "article_title" field.
func (_u *WorkItemUpdateOne) SetArticleTitle(v string) *WorkItemUpdateOne {
	_u.mutation.SetArticleTitle(v)
	return _u
}

// SetNillableArticleTitle sets the "article_title" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleTitle(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleTitle(*v)
	}
	return _u
}

// ClearArticleTitle clears the value of the "article_title" field.
func (_u *WorkItemUpdateOne) ClearArticleTitle() *WorkItemUpdateOne {
	_u.mutation.ClearArticleTitle()
	return _u
}

// SetArticleAuthor sets the "article_author" field.
func (_u *WorkItemUpdateOne) SetArticleAuthor(v string) *WorkItemUpdateOne {
	_u.mutation.SetArticleAuthor(v)
	return _u
}

// SetNillableArticleAuthor sets the "article_author" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleAuthor(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleAuthor(*v)
	}
	return _u
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (_u *WorkItemUpdateOne) ClearArticleAuthor() *WorkItemUpdateOne {
	_u.mutation.ClearArticleAuthor()
	return _u
}

// SetArticleCategoryID sets the "article_category_id" field.
func (_u *WorkItemUpdateOne) SetArticleCategoryID(v int) *WorkItemUpdateOne {
	_u.mutation.ResetArticleCategoryID()
	_u.mutation.SetArticleCategoryID(v)
	return _u
}

// SetNillableArticleCategoryID sets the "article_category_id" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleCategoryID(v *int) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleCategoryID(*v)
	}
	return _u
}

// AddArticleCategoryID adds value to the "article_category_id" field.
func (_u *WorkItemUpdateOne) AddArticleCategoryID(v int) *WorkItemUpdateOne {
	_u.mutation.AddArticleCategoryID(v)
	return _u
}

// ClearArticleCategoryID clears the value of the "article_category_id" field.
func (_u *WorkItemUpdateOne) ClearArticleCategoryID() *WorkItemUpdateOne {
	_u.mutation.ClearArticleCategoryID()
	return _u
}

// SetArticleTaskID sets the "article_task_id" field.
func (_u *WorkItemUpdateOne) SetArticleTaskID(v int) *WorkItemUpdateOne {
	_u.mutation.ResetArticleTaskID()
	_u.mutation.SetArticleTaskID(v)
	return _u
}

// SetNillableArticleTaskID sets the "article_task_id" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleTaskID(v *int) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleTaskID(*v)
	}
	return _u
}

// AddArticleTaskID adds value to the "article_task_id" field.
func (_u *WorkItemUpdateOne) AddArticleTaskID(v int) *WorkItemUpdateOne {
	_u.mutation.AddArticleTaskID(v)
	return _u
}

// ClearArticleTaskID clears the value of the "article_task_id" field.
func (_u *WorkItemUpdateOne) ClearArticleTaskID() *WorkItemUpdateOne {
	_u.mutation.ClearArticleTaskID()
	return _u
}

// SetArticleURL sets the "article_url" field.
func (_u *WorkItemUpdateOne) SetArticleURL(v string) *WorkItemUpdateOne {
	_u.mutation.SetArticleURL(v)
	return _u
}

// SetNillableArticleURL sets the "article_url" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleURL(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleURL(*v)
	}
	return _u
}

// ClearArticleURL clears the value of the "article_url" field.
func (_u *WorkItemUpdateOne) ClearArticleURL() *WorkItemUpdateOne {
	_u.mutation.ClearArticleURL()
	return _u
}

// SetArticleContent sets the "article_content" field.
func (_u *WorkItemUpdateOne) SetArticleContent(v string) *WorkItemUpdateOne {
	_u.mutation.SetArticleContent(v)
	return _u
}

// SetNillableArticleContent sets the "article_content" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleContent(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleContent(*v)
	}
	return _u
}

// ClearArticleContent clears the value of the "article_content" field.
func (_u *WorkItemUpdateOne) ClearArticleContent() *WorkItemUpdateOne {
	_u.mutation.ClearArticleContent()
	return _u
}

// SetArticleHTML sets the "article_html" field.
func (_u *WorkItemUpdateOne) SetArticleHTML(v string) *WorkItemUpdateOne {
	_u.mutation.SetArticleHTML(v)
	return _u
}

// SetNillableArticleHTML sets the "article_html" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleHTML(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleHTML(*v)
	}
	return _u
}

// ClearArticleHTML clears the value of the "article_html" field.
func (_u *WorkItemUpdateOne) ClearArticleHTML() *WorkItemUpdateOne {
	_u.mutation.ClearArticleHTML()
	return _u
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (_u *WorkItemUpdateOne) SetArticlePublishedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetArticlePublishedAt(v)
	return _u
}

// SetNillableArticlePublishedAt sets the "article_published_at" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticlePublishedAt(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticlePublishedAt(*v)
	}
	return _u
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (_u *WorkItemUpdateOne) ClearArticlePublishedAt() *WorkItemUpdateOne {
	_u.mutation.ClearArticlePublishedAt()
	return _u
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (_u *WorkItemUpdateOne) SetArticleEditedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetArticleEditedAt(v)
	return _u
}

// SetNillableArticleEditedAt sets the "article_edited_at" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableArticleEditedAt(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetArticleEditedAt(*v)
	}
	return _u
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (_u *WorkItemUpdateOne) ClearArticleEditedAt() *WorkItemUpdateOne {
	_u.mutation.ClearArticleEditedAt()
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *WorkItemUpdateOne) SetScrapedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableScrapedAt(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// ClearScrapedAt clears the value of the "scraped_at" field.
func (_u *WorkItemUpdateOne) ClearScrapedAt() *WorkItemUpdateOne {
	_u.mutation.ClearScrapedAt()
	return _u
}

// SetCommentText sets the "comment_text" field.
func (_u *WorkItemUpdateOne) SetCommentText(v string) *WorkItemUpdateOne {
	_u.mutation.SetCommentText(v)
	return _u
}

// SetNillableCommentText sets the "comment_text" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableCommentText(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetCommentText(*v)
	}
	return _u
}

// ClearCommentText clears the value of the "comment_text" field.
func (_u *WorkItemUpdateOne) ClearCommentText() *WorkItemUpdateOne {
	_u.mutation.ClearCommentText()
	return _u
}

// SetLlmModelName sets the "llm_model_name" field.
func (_u *WorkItemUpdateOne) SetLlmModelName(v string) *WorkItemUpdateOne {
	_u.mutation.SetLlmModelName(v)
	return _u
}

// SetNillableLlmModelName sets the "llm_model_name" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableLlmModelName(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetLlmModelName(*v)
	}
	return _u
}

// ClearLlmModelName clears the value of the "llm_model_name" field.
func (_u *WorkItemUpdateOne) ClearLlmModelName() *WorkItemUpdateOne {
	_u.mutation.ClearLlmModelName()
	return _u
}

// SetLlmProviderName sets the "llm_provider_name" field.
func (_u *WorkItemUpdateOne) SetLlmProviderName(v string) *WorkItemUpdateOne {
	_u.mutation.SetLlmProviderName(v)
	return _u
}

// SetNillableLlmProviderName sets the "llm_provider_name" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableLlmProviderName(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetLlmProviderName(*v)
	}
	return _u
}

// ClearLlmProviderName clears the value of the "llm_provider_name" field.
func (_u *WorkItemUpdateOne) ClearLlmProviderName() *WorkItemUpdateOne {
	_u.mutation.ClearLlmProviderName()
	return _u
}

// SetGenerationTokens sets the "generation_tokens" field.
func (_u *WorkItemUpdateOne) SetGenerationTokens(v int) *WorkItemUpdateOne {
	_u.mutation.ResetGenerationTokens()
	_u.mutation.SetGenerationTokens(v)
	return _u
}

// SetNillableGenerationTokens sets the "generation_tokens" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableGenerationTokens(v *int) *WorkItemUpdateOne {
	if v != nil {
		_u.SetGenerationTokens(*v)
	}
	return _u
}

// AddGenerationTokens adds value to the "generation_tokens" field.
func (_u *WorkItemUpdateOne) AddGenerationTokens(v int) *WorkItemUpdateOne {
	_u.mutation.AddGenerationTokens(v)
	return _u
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (_u *WorkItemUpdateOne) ClearGenerationTokens() *WorkItemUpdateOne {
	_u.mutation.ClearGenerationTokens()
	return _u
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (_u *WorkItemUpdateOne) SetGenerationTimeMs(v int) *WorkItemUpdateOne {
	_u.mutation.ResetGenerationTimeMs()
	_u.mutation.SetGenerationTimeMs(v)
	return _u
}

// SetNillableGenerationTimeMs sets the "generation_time_ms" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableGenerationTimeMs(v *int) *WorkItemUpdateOne {
	if v != nil {
		_u.SetGenerationTimeMs(*v)
	}
	return _u
}

// AddGenerationTimeMs adds value to the "generation_time_ms" field.
func (_u *WorkItemUpdateOne) AddGenerationTimeMs(v int) *WorkItemUpdateOne {
	_u.mutation.AddGenerationTimeMs(v)
	return _u
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (_u *WorkItemUpdateOne) ClearGenerationTimeMs() *WorkItemUpdateOne {
	_u.mutation.ClearGenerationTimeMs()
	return _u
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (_u *WorkItemUpdateOne) SetUpstreamCommentID(v string) *WorkItemUpdateOne {
	_u.mutation.SetUpstreamCommentID(v)
	return _u
}

// SetNillableUpstreamCommentID sets the "upstream_comment_id" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableUpstreamCommentID(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetUpstreamCommentID(*v)
	}
	return _u
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (_u *WorkItemUpdateOne) ClearUpstreamCommentID() *WorkItemUpdateOne {
	_u.mutation.ClearUpstreamCommentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkItemUpdateOne) SetStatus(v workitem.Status) *WorkItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableStatus(v *workitem.Status) *WorkItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPostedAt sets the "posted_at" field.
func (_u *WorkItemUpdateOne) SetPostedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetPostedAt(v)
	return _u
}

// SetNillablePostedAt sets the "posted_at" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillablePostedAt(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetPostedAt(*v)
	}
	return _u
}

// ClearPostedAt clears the value of the "posted_at" field.
func (_u *WorkItemUpdateOne) ClearPostedAt() *WorkItemUpdateOne {
	_u.mutation.ClearPostedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *WorkItemUpdateOne) SetFailedAt(v time.Time) *WorkItemUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableFailedAt(v *time.Time) *WorkItemUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *WorkItemUpdateOne) ClearFailedAt() *WorkItemUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkItemUpdateOne) SetErrorMessage(v string) *WorkItemUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableErrorMessage(v *string) *WorkItemUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkItemUpdateOne) ClearErrorMessage() *WorkItemUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkItemUpdateOne) SetRetryCount(v int) *WorkItemUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkItemUpdateOne) SetNillableRetryCount(v *int) *WorkItemUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkItemUpdateOne) AddRetryCount(v int) *WorkItemUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the WorkItemMutation object of the builder.
func (_u *WorkItemUpdateOne) Mutation() *WorkItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkItemUpdate builder.
func (_u *WorkItemUpdateOne) Where(ps ...predicate.WorkItem) *WorkItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkItemUpdateOne) Select(field string, fields ...string) *WorkItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkItem entity.
func (_u *WorkItemUpdateOne) Save(ctx context.Context) (*WorkItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkItemUpdateOne) SaveX(ctx context.Context) *WorkItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkItem.status": %w`, err)}
		}
	}
	if _u.mutation.ProcessCleared() && len(_u.mutation.ProcessIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkItem.process"`)
	}
	if _u.mutation.LoginCleared() && len(_u.mutation.LoginIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkItem.login"`)
	}
	return nil
}

func (_u *WorkItemUpdateOne) sqlSave(ctx context.Context) (_node *WorkItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workitem.Table, workitem.Columns, sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workitem.FieldID)
		for _, f := range fields {
			if !workitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptTemplateID(); ok {
		_spec.SetField(workitem.FieldPromptTemplateID, field.TypeString, value)
	}
	if _u.mutation.PromptTemplateIDCleared() {
		_spec.ClearField(workitem.FieldPromptTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmConfigID(); ok {
		_spec.SetField(workitem.FieldLlmConfigID, field.TypeString, value)
	}
	if _u.mutation.LlmConfigIDCleared() {
		_spec.ClearField(workitem.FieldLlmConfigID, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleTitle(); ok {
		_spec.SetField(workitem.FieldArticleTitle, field.TypeString, value)
	}
	if _u.mutation.ArticleTitleCleared() {
		_spec.ClearField(workitem.FieldArticleTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleAuthor(); ok {
		_spec.SetField(workitem.FieldArticleAuthor, field.TypeString, value)
	}
	if _u.mutation.ArticleAuthorCleared() {
		_spec.ClearField(workitem.FieldArticleAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleCategoryID(); ok {
		_spec.SetField(workitem.FieldArticleCategoryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleCategoryID(); ok {
		_spec.AddField(workitem.FieldArticleCategoryID, field.TypeInt, value)
	}
	if _u.mutation.ArticleCategoryIDCleared() {
		_spec.ClearField(workitem.FieldArticleCategoryID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleTaskID(); ok {
		_spec.SetField(workitem.FieldArticleTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleTaskID(); ok {
		_spec.AddField(workitem.FieldArticleTaskID, field.TypeInt, value)
	}
	if _u.mutation.ArticleTaskIDCleared() {
		_spec.ClearField(workitem.FieldArticleTaskID, field.TypeInt)
	}
	if value, ok := _u.mutation.ArticleURL(); ok {
		_spec.SetField(workitem.FieldArticleURL, field.TypeString, value)
	}
	if _u.mutation.ArticleURLCleared() {
		_spec.ClearField(workitem.FieldArticleURL, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleContent(); ok {
		_spec.SetField(workitem.FieldArticleContent, field.TypeString, value)
	}
	if _u.mutation.ArticleContentCleared() {
		_spec.ClearField(workitem.FieldArticleContent, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleHTML(); ok {
		_spec.SetField(workitem.FieldArticleHTML, field.TypeString, value)
	}
	if _u.mutation.ArticleHTMLCleared() {
		_spec.ClearField(workitem.FieldArticleHTML, field.TypeString)
	}
	if value, ok := _u.mutation.ArticlePublishedAt(); ok {
		_spec.SetField(workitem.FieldArticlePublishedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticlePublishedAtCleared() {
		_spec.ClearField(workitem.FieldArticlePublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArticleEditedAt(); ok {
		_spec.SetField(workitem.FieldArticleEditedAt, field.TypeTime, value)
	}
	if _u.mutation.ArticleEditedAtCleared() {
		_spec.ClearField(workitem.FieldArticleEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(workitem.FieldScrapedAt, field.TypeTime, value)
	}
	if _u.mutation.ScrapedAtCleared() {
		_spec.ClearField(workitem.FieldScrapedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CommentText(); ok {
		_spec.SetField(workitem.FieldCommentText, field.TypeString, value)
	}
	if _u.mutation.CommentTextCleared() {
		_spec.ClearField(workitem.FieldCommentText, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModelName(); ok {
		_spec.SetField(workitem.FieldLlmModelName, field.TypeString, value)
	}
	if _u.mutation.LlmModelNameCleared() {
		_spec.ClearField(workitem.FieldLlmModelName, field.TypeString)
	}
	if value, ok := _u.mutation.LlmProviderName(); ok {
		_spec.SetField(workitem.FieldLlmProviderName, field.TypeString, value)
	}
	if _u.mutation.LlmProviderNameCleared() {
		_spec.ClearField(workitem.FieldLlmProviderName, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTokens(); ok {
		_spec.SetField(workitem.FieldGenerationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTokens(); ok {
		_spec.AddField(workitem.FieldGenerationTokens, field.TypeInt, value)
	}
	if _u.mutation.GenerationTokensCleared() {
		_spec.ClearField(workitem.FieldGenerationTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.GenerationTimeMs(); ok {
		_spec.SetField(workitem.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerationTimeMs(); ok {
		_spec.AddField(workitem.FieldGenerationTimeMs, field.TypeInt, value)
	}
	if _u.mutation.GenerationTimeMsCleared() {
		_spec.ClearField(workitem.FieldGenerationTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.UpstreamCommentID(); ok {
		_spec.SetField(workitem.FieldUpstreamCommentID, field.TypeString, value)
	}
	if _u.mutation.UpstreamCommentIDCleared() {
		_spec.ClearField(workitem.FieldUpstreamCommentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PostedAt(); ok {
		_spec.SetField(workitem.FieldPostedAt, field.TypeTime, value)
	}
	if _u.mutation.PostedAtCleared() {
		_spec.ClearField(workitem.FieldPostedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(workitem.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(workitem.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workitem.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workitem.FieldRetryCount, field.TypeInt, value)
	}
	_node = &WorkItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
