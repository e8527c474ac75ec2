// Code generated by ent, DO NOT EDIT.

package workitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldID, id))
}

// ProcessID applies equality check predicate on the "process_id" field. It's identical to ProcessIDEQ.
func ProcessID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldProcessID, v))
}

// LoginID applies equality check predicate on the "login_id" field. It's identical to LoginIDEQ.
func LoginID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLoginID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUserID, v))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleID, v))
}

// PromptTemplateID applies equality check predicate on the "prompt_template_id" field. It's identical to PromptTemplateIDEQ.
func PromptTemplateID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPromptTemplateID, v))
}

// LlmConfigID applies equality check predicate on the "llm_config_id" field. It's identical to LlmConfigIDEQ.
func LlmConfigID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLlmConfigID, v))
}

// ArticleTitle applies equality check predicate on the "article_title" field. It's identical to ArticleTitleEQ.
func ArticleTitle(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleTitle, v))
}

// ArticleAuthor applies equality check predicate on the "article_author" field. It's identical to ArticleAuthorEQ.
func ArticleAuthor(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleAuthor, v))
}

// ArticleCategoryID applies equality check predicate on the "article_category_id" field. It's identical to ArticleCategoryIDEQ.
func ArticleCategoryID(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleCategoryID, v))
}

// ArticleTaskID applies equality check predicate on the "article_task_id" field. It's identical to ArticleTaskIDEQ.
func ArticleTaskID(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleTaskID, v))
}

// ArticleURL applies equality check predicate on the "article_url" field. It's identical to ArticleURLEQ.
func ArticleURL(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleURL, v))
}

// ArticleContent applies equality check predicate on the "article_content" field. It's identical to ArticleContentEQ.
func ArticleContent(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleContent, v))
}

// ArticleHTML applies equality check predicate on the "article_html" field. It's identical to ArticleHTMLEQ.
func ArticleHTML(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleHTML, v))
}

// ArticlePublishedAt applies equality check predicate on the "article_published_at" field. It's identical to ArticlePublishedAtEQ.
func ArticlePublishedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticlePublishedAt, v))
}

// ArticleEditedAt applies equality check predicate on the "article_edited_at" field. It's identical to ArticleEditedAtEQ.
func ArticleEditedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleEditedAt, v))
}

// ScrapedAt applies equality check predicate on the "scraped_at" field. It's identical to ScrapedAtEQ.
func ScrapedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldScrapedAt, v))
}

// CommentText applies equality check predicate on the "comment_text" field. It's identical to CommentTextEQ.
func CommentText(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCommentText, v))
}

// LlmModelName applies equality check predicate on the "llm_model_name" field. It's identical to LlmModelNameEQ.
func LlmModelName(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLlmModelName, v))
}

// LlmProviderName applies equality check predicate on the "llm_provider_name" field. It's identical to LlmProviderNameEQ.
func LlmProviderName(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLlmProviderName, v))
}

// GenerationTokens applies equality check predicate on the "generation_tokens" field. It's identical to GenerationTokensEQ.
func GenerationTokens(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldGenerationTokens, v))
}

// GenerationTimeMs applies equality check predicate on the "generation_time_ms" field. It's identical to GenerationTimeMsEQ.
func GenerationTimeMs(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// UpstreamCommentID applies equality check predicate on the "upstream_comment_id" field. It's identical to UpstreamCommentIDEQ.
func UpstreamCommentID(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUpstreamCommentID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCreatedAt, v))
}

// PostedAt applies equality check predicate on the "posted_at" field. It's identical to PostedAtEQ.
func PostedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPostedAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldFailedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldRetryCount, v))
}

// ProcessIDEQ applies the EQ predicate on the "process_id" field.
func ProcessIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldProcessID, v))
}

// ProcessIDNEQ applies the NEQ predicate on the "process_id" field.
func ProcessIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldProcessID, v))
}

// ProcessIDIn applies the In predicate on the "process_id" field.
func ProcessIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldProcessID, vs...))
}

// ProcessIDNotIn applies the NotIn predicate on the "process_id" field.
func ProcessIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldProcessID, vs...))
}

// ProcessIDGT applies the GT predicate on the "process_id" field.
func ProcessIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldProcessID, v))
}

// ProcessIDGTE applies the GTE predicate on the "process_id" field.
func ProcessIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldProcessID, v))
}

// ProcessIDLT applies the LT predicate on the "process_id" field.
func ProcessIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldProcessID, v))
}

// ProcessIDLTE applies the LTE predicate on the "process_id" field.
func ProcessIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldProcessID, v))
}

// ProcessIDContains applies the Contains predicate on the "process_id" field.
func ProcessIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldProcessID, v))
}

// ProcessIDHasPrefix applies the HasPrefix predicate on the "process_id" field.
func ProcessIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldProcessID, v))
}

// ProcessIDHasSuffix applies the HasSuffix predicate on the "process_id" field.
func ProcessIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldProcessID, v))
}

// ProcessIDEqualFold applies the EqualFold predicate on the "process_id" field.
func ProcessIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldProcessID, v))
}

// ProcessIDContainsFold applies the ContainsFold predicate on the "process_id" field.
func ProcessIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldProcessID, v))
}

// LoginIDEQ applies the EQ predicate on the "login_id" field.
func LoginIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLoginID, v))
}

// LoginIDNEQ applies the NEQ predicate on the "login_id" field.
func LoginIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldLoginID, v))
}

// LoginIDIn applies the In predicate on the "login_id" field.
func LoginIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldLoginID, vs...))
}

// LoginIDNotIn applies the NotIn predicate on the "login_id" field.
func LoginIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldLoginID, vs...))
}

// LoginIDGT applies the GT predicate on the "login_id" field.
func LoginIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldLoginID, v))
}

// LoginIDGTE applies the GTE predicate on the "login_id" field.
func LoginIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldLoginID, v))
}

// LoginIDLT applies the LT predicate on the "login_id" field.
func LoginIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldLoginID, v))
}

// LoginIDLTE applies the LTE predicate on the "login_id" field.
func LoginIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldLoginID, v))
}

// LoginIDContains applies the Contains predicate on the "login_id" field.
func LoginIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldLoginID, v))
}

// LoginIDHasPrefix applies the HasPrefix predicate on the "login_id" field.
func LoginIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldLoginID, v))
}

// LoginIDHasSuffix applies the HasSuffix predicate on the "login_id" field.
func LoginIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldLoginID, v))
}

// LoginIDEqualFold applies the EqualFold predicate on the "login_id" field.
func LoginIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldLoginID, v))
}

// LoginIDContainsFold applies the ContainsFold predicate on the "login_id" field.
func LoginIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldLoginID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldUserID, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleID, v))
}

// ArticleIDContains applies the Contains predicate on the "article_id" field.
func ArticleIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldArticleID, v))
}

// ArticleIDHasPrefix applies the HasPrefix predicate on the "article_id" field.
func ArticleIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldArticleID, v))
}

// ArticleIDHasSuffix applies the HasSuffix predicate on the "article_id" field.
func ArticleIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldArticleID, v))
}

// ArticleIDEqualFold applies the EqualFold predicate on the "article_id" field.
func ArticleIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldArticleID, v))
}

// ArticleIDContainsFold applies the ContainsFold predicate on the "article_id" field.
func ArticleIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldArticleID, v))
}

// PromptTemplateIDEQ applies the EQ predicate on the "prompt_template_id" field.
func PromptTemplateIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPromptTemplateID, v))
}

// PromptTemplateIDNEQ applies the NEQ predicate on the "prompt_template_id" field.
func PromptTemplateIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldPromptTemplateID, v))
}

// PromptTemplateIDIn applies the In predicate on the "prompt_template_id" field.
func PromptTemplateIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldPromptTemplateID, vs...))
}

// PromptTemplateIDNotIn applies the NotIn predicate on the "prompt_template_id" field.
func PromptTemplateIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldPromptTemplateID, vs...))
}

// PromptTemplateIDGT applies the GT predicate on the "prompt_template_id" field.
func PromptTemplateIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldPromptTemplateID, v))
}

// PromptTemplateIDGTE applies the GTE predicate on the "prompt_template_id" field.
func PromptTemplateIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldPromptTemplateID, v))
}

// PromptTemplateIDLT applies the LT predicate on the "prompt_template_id" field.
func PromptTemplateIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldPromptTemplateID, v))
}

// PromptTemplateIDLTE applies the LTE predicate on the "prompt_template_id" field.
func PromptTemplateIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldPromptTemplateID, v))
}

// PromptTemplateIDContains applies the Contains predicate on the "prompt_template_id" field.
func PromptTemplateIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldPromptTemplateID, v))
}

// PromptTemplateIDHasPrefix applies the HasPrefix predicate on the "prompt_template_id" field.
func PromptTemplateIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldPromptTemplateID, v))
}

// PromptTemplateIDHasSuffix applies the HasSuffix predicate on the "prompt_template_id" field.
func PromptTemplateIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldPromptTemplateID, v))
}

// PromptTemplateIDIsNil applies the IsNil predicate on the "prompt_template_id" field.
func PromptTemplateIDIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldPromptTemplateID))
}

// PromptTemplateIDNotNil applies the NotNil predicate on the "prompt_template_id" field.
func PromptTemplateIDNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldPromptTemplateID))
}

// PromptTemplateIDEqualFold applies the EqualFold predicate on the "prompt_template_id" field.
func PromptTemplateIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldPromptTemplateID, v))
}

// PromptTemplateIDContainsFold applies the ContainsFold predicate on the "prompt_template_id" field.
func PromptTemplateIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldPromptTemplateID, v))
}

// LlmConfigIDEQ applies the EQ predicate on the "llm_config_id" field.
func LlmConfigIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLlmConfigID, v))
}

// LlmConfigIDNEQ applies the NEQ predicate on the "llm_config_id" field.
func LlmConfigIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldLlmConfigID, v))
}

// LlmConfigIDIn applies the In predicate on the "llm_config_id" field.
func LlmConfigIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldLlmConfigID, vs...))
}

// LlmConfigIDNotIn applies the NotIn predicate on the "llm_config_id" field.
func LlmConfigIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldLlmConfigID, vs...))
}

// LlmConfigIDGT applies the GT predicate on the "llm_config_id" field.
func LlmConfigIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldLlmConfigID, v))
}

// LlmConfigIDGTE applies the GTE predicate on the "llm_config_id" field.
func LlmConfigIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldLlmConfigID, v))
}

// LlmConfigIDLT applies the LT predicate on the "llm_config_id" field.
func LlmConfigIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldLlmConfigID, v))
}

// LlmConfigIDLTE applies the LTE predicate on the "llm_config_id" field.
func LlmConfigIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldLlmConfigID, v))
}

// LlmConfigIDContains applies the Contains predicate on the "llm_config_id" field.
func LlmConfigIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldLlmConfigID, v))
}

// LlmConfigIDHasPrefix applies the HasPrefix predicate on the "llm_config_id" field.
func LlmConfigIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldLlmConfigID, v))
}

// LlmConfigIDHasSuffix applies the HasSuffix predicate on the "llm_config_id" field.
func LlmConfigIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldLlmConfigID, v))
}

// LlmConfigIDIsNil applies the IsNil predicate on the "llm_config_id" field.
func LlmConfigIDIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldLlmConfigID))
}

// LlmConfigIDNotNil applies the NotNil predicate on the "llm_config_id" field.
func LlmConfigIDNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldLlmConfigID))
}

// LlmConfigIDEqualFold applies the EqualFold predicate on the "llm_config_id" field.
func LlmConfigIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldLlmConfigID, v))
}

// LlmConfigIDContainsFold applies the ContainsFold predicate on the "llm_config_id" field.
func LlmConfigIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldLlmConfigID, v))
}

// ArticleTitleEQ applies the EQ predicate on the "article_title" field.
func ArticleTitleEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleTitle, v))
}

// ArticleTitleNEQ applies the NEQ predicate on the "article_title" field.
func ArticleTitleNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleTitle, v))
}

// ArticleTitleIn applies the In predicate on the "article_title" field.
func ArticleTitleIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleTitle, vs...))
}

// ArticleTitleNotIn applies the NotIn predicate on the "article_title" field.
func ArticleTitleNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleTitle, vs...))
}

// ArticleTitleGT applies the GT predicate on the "article_title" field.
func ArticleTitleGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleTitle, v))
}

// ArticleTitleGTE applies the GTE predicate on the "article_title" field.
func ArticleTitleGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleTitle, v))
}

// ArticleTitleLT applies the LT predicate on the "article_title" field.
func ArticleTitleLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleTitle, v))
}

// ArticleTitleLTE applies the LTE predicate on the "article_title" field.
func ArticleTitleLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleTitle, v))
}

// ArticleTitleContains applies the Contains predicate on the "article_title" field.
func ArticleTitleContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldArticleTitle, v))
}

// ArticleTitleHasPrefix applies the HasPrefix predicate on the "article_title" field.
func ArticleTitleHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldArticleTitle, v))
}

// ArticleTitleHasSuffix applies the HasSuffix predicate on the "article_title" field.
func ArticleTitleHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldArticleTitle, v))
}

// ArticleTitleIsNil applies the IsNil predicate on the "article_title" field.
func ArticleTitleIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleTitle))
}

// ArticleTitleNotNil applies the NotNil predicate on the "article_title" field.
func ArticleTitleNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleTitle))
}

// ArticleTitleEqualFold applies the EqualFold predicate on the "article_title" field.
func ArticleTitleEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldArticleTitle, v))
}

// ArticleTitleContainsFold applies the ContainsFold predicate on the "article_title" field.
func ArticleTitleContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldArticleTitle, v))
}

// ArticleAuthorEQ applies the EQ predicate on the "article_author" field.
func ArticleAuthorEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleAuthor, v))
}

// ArticleAuthorNEQ applies the NEQ predicate on the "article_author" field.
func ArticleAuthorNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleAuthor, v))
}

// ArticleAuthorIn applies the In predicate on the "article_author" field.
func ArticleAuthorIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleAuthor, vs...))
}

// ArticleAuthorNotIn applies the NotIn predicate on the "article_author" field.
func ArticleAuthorNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleAuthor, vs...))
}

// ArticleAuthorGT applies the GT predicate on the "article_author" field.
func ArticleAuthorGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleAuthor, v))
}

// ArticleAuthorGTE applies the GTE predicate on the "article_author" field.
func ArticleAuthorGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleAuthor, v))
}

// ArticleAuthorLT applies the LT predicate on the "article_author" field.
func ArticleAuthorLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleAuthor, v))
}

// ArticleAuthorLTE applies the LTE predicate on the "article_author" field.
func ArticleAuthorLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleAuthor, v))
}

// ArticleAuthorContains applies the Contains predicate on the "article_author" field.
func ArticleAuthorContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldArticleAuthor, v))
}

// ArticleAuthorHasPrefix applies the HasPrefix predicate on the "article_author" field.
func ArticleAuthorHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldArticleAuthor, v))
}

// ArticleAuthorHasSuffix applies the HasSuffix predicate on the "article_author" field.
func ArticleAuthorHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldArticleAuthor, v))
}

// ArticleAuthorIsNil applies the IsNil predicate on the "article_author" field.
func ArticleAuthorIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleAuthor))
}

// ArticleAuthorNotNil applies the NotNil predicate on the "article_author" field.
func ArticleAuthorNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleAuthor))
}

// ArticleAuthorEqualFold applies the EqualFold predicate on the "article_author" field.
func ArticleAuthorEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldArticleAuthor, v))
}

// ArticleAuthorContainsFold applies the ContainsFold predicate on the "article_author" field.
func ArticleAuthorContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldArticleAuthor, v))
}

// ArticleCategoryIDEQ applies the EQ predicate on the "article_category_id" field.
func ArticleCategoryIDEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleCategoryID, v))
}

// ArticleCategoryIDNEQ applies the NEQ predicate on the "article_category_id" field.
func ArticleCategoryIDNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleCategoryID, v))
}

// ArticleCategoryIDIn applies the In predicate on the "article_category_id" field.
func ArticleCategoryIDIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleCategoryID, vs...))
}

// ArticleCategoryIDNotIn applies the NotIn predicate on the "article_category_id" field.
func ArticleCategoryIDNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleCategoryID, vs...))
}

// ArticleCategoryIDGT applies the GT predicate on the "article_category_id" field.
func ArticleCategoryIDGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleCategoryID, v))
}

// ArticleCategoryIDGTE applies the GTE predicate on the "article_category_id" field.
func ArticleCategoryIDGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleCategoryID, v))
}

// ArticleCategoryIDLT applies the LT predicate on the "article_category_id" field.
func ArticleCategoryIDLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleCategoryID, v))
}

// ArticleCategoryIDLTE applies the LTE predicate on the "article_category_id" field.
func ArticleCategoryIDLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleCategoryID, v))
}

// ArticleCategoryIDIsNil applies the IsNil predicate on the "article_category_id" field.
func ArticleCategoryIDIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleCategoryID))
}

// ArticleCategoryIDNotNil applies the NotNil predicate on the "article_category_id" field.
func ArticleCategoryIDNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleCategoryID))
}

// ArticleTaskIDEQ applies the EQ predicate on the "article_task_id" field.
func ArticleTaskIDEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleTaskID, v))
}

// ArticleTaskIDNEQ applies the NEQ predicate on the "article_task_id" field.
func ArticleTaskIDNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleTaskID, v))
}

// ArticleTaskIDIn applies the In predicate on the "article_task_id" field.
func ArticleTaskIDIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleTaskID, vs...))
}

// ArticleTaskIDNotIn applies the NotIn predicate on the "article_task_id" field.
func ArticleTaskIDNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleTaskID, vs...))
}

// ArticleTaskIDGT applies the GT predicate on the "article_task_id" field.
func ArticleTaskIDGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleTaskID, v))
}

// ArticleTaskIDGTE applies the GTE predicate on the "article_task_id" field.
func ArticleTaskIDGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleTaskID, v))
}

// ArticleTaskIDLT applies the LT predicate on the "article_task_id" field.
func ArticleTaskIDLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleTaskID, v))
}

// ArticleTaskIDLTE applies the LTE predicate on the "article_task_id" field.
func ArticleTaskIDLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleTaskID, v))
}

// ArticleTaskIDIsNil applies the IsNil predicate on the "article_task_id" field.
func ArticleTaskIDIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleTaskID))
}

// ArticleTaskIDNotNil applies the NotNil predicate on the "article_task_id" field.
func ArticleTaskIDNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleTaskID))
}

// ArticleURLEQ applies the EQ predicate on the "article_url" field.
func ArticleURLEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleURL, v))
}

// ArticleURLNEQ applies the NEQ predicate on the "article_url" field.
func ArticleURLNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleURL, v))
}

// ArticleURLIn applies the In predicate on the "article_url" field.
func ArticleURLIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleURL, vs...))
}

// ArticleURLNotIn applies the NotIn predicate on the "article_url" field.
func ArticleURLNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleURL, vs...))
}

// ArticleURLGT applies the GT predicate on the "article_url" field.
func ArticleURLGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleURL, v))
}

// ArticleURLGTE applies the GTE predicate on the "article_url" field.
func ArticleURLGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleURL, v))
}

// ArticleURLLT applies the LT predicate on the "article_url" field.
func ArticleURLLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleURL, v))
}

// ArticleURLLTE applies the LTE predicate on the "article_url" field.
func ArticleURLLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleURL, v))
}

// ArticleURLContains applies the Contains predicate on the "article_url" field.
func ArticleURLContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldArticleURL, v))
}

// ArticleURLHasPrefix applies the HasPrefix predicate on the "article_url" field.
func ArticleURLHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldArticleURL, v))
}

// ArticleURLHasSuffix applies the HasSuffix predicate on the "article_url" field.
func ArticleURLHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldArticleURL, v))
}

// ArticleURLIsNil applies the IsNil predicate on the "article_url" field.
func ArticleURLIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleURL))
}

// ArticleURLNotNil applies the NotNil predicate on the "article_url" field.
func ArticleURLNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleURL))
}

// ArticleURLEqualFold applies the EqualFold predicate on the "article_url" field.
func ArticleURLEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldArticleURL, v))
}

// ArticleURLContainsFold applies the ContainsFold predicate on the "article_url" field.
func ArticleURLContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldArticleURL, v))
}

// ArticleContentEQ applies the EQ predicate on the "article_content" field.
func ArticleContentEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleContent, v))
}

// ArticleContentNEQ applies the NEQ predicate on the "article_content" field.
func ArticleContentNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleContent, v))
}

// ArticleContentIn applies the In predicate on the "article_content" field.
func ArticleContentIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleContent, vs...))
}

// ArticleContentNotIn applies the NotIn predicate on the "article_content" field.
func ArticleContentNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleContent, vs...))
}

// ArticleContentGT applies the GT predicate on the "article_content" field.
func ArticleContentGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleContent, v))
}

// ArticleContentGTE applies the GTE predicate on the "article_content" field.
func ArticleContentGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleContent, v))
}

// ArticleContentLT applies the LT predicate on the "article_content" field.
func ArticleContentLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleContent, v))
}

// ArticleContentLTE applies the LTE predicate on the "article_content" field.
func ArticleContentLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleContent, v))
}

// ArticleContentContains applies the Contains predicate on the "article_content" field.
func ArticleContentContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldArticleContent, v))
}

// ArticleContentHasPrefix applies the HasPrefix predicate on the "article_content" field.
func ArticleContentHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldArticleContent, v))
}

// ArticleContentHasSuffix applies the HasSuffix predicate on the "article_content" field.
func ArticleContentHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldArticleContent, v))
}

// ArticleContentIsNil applies the IsNil predicate on the "article_content" field.
func ArticleContentIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleContent))
}

// ArticleContentNotNil applies the NotNil predicate on the "article_content" field.
func ArticleContentNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleContent))
}

// ArticleContentEqualFold applies the EqualFold predicate on the "article_content" field.
func ArticleContentEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldArticleContent, v))
}

// ArticleContentContainsFold applies the ContainsFold predicate on the "article_content" field.
func ArticleContentContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldArticleContent, v))
}

// ArticleHTMLEQ applies the EQ predicate on the "article_html" field.
func ArticleHTMLEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleHTML, v))
}

// ArticleHTMLNEQ applies the NEQ predicate on the "article_html" field.
func ArticleHTMLNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleHTML, v))
}

// ArticleHTMLIn applies the In predicate on the "article_html" field.
func ArticleHTMLIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleHTML, vs...))
}

// ArticleHTMLNotIn applies the NotIn predicate on the "article_html" field.
func ArticleHTMLNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleHTML, vs...))
}

// ArticleHTMLGT applies the GT predicate on the "article_html" field.
func ArticleHTMLGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleHTML, v))
}

// ArticleHTMLGTE applies the GTE predicate on the "article_html" field.
func ArticleHTMLGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleHTML, v))
}

// ArticleHTMLLT applies the LT predicate on the "article_html" field.
func ArticleHTMLLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleHTML, v))
}

// ArticleHTMLLTE applies the LTE predicate on the "article_html" field.
func ArticleHTMLLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleHTML, v))
}

// ArticleHTMLContains applies the Contains predicate on the "article_html" field.
func ArticleHTMLContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldArticleHTML, v))
}

// ArticleHTMLHasPrefix applies the HasPrefix predicate on the "article_html" field.
func ArticleHTMLHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldArticleHTML, v))
}

// ArticleHTMLHasSuffix applies the HasSuffix predicate on the "article_html" field.
func ArticleHTMLHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldArticleHTML, v))
}

// ArticleHTMLIsNil applies the IsNil predicate on the "article_html" field.
func ArticleHTMLIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleHTML))
}

// ArticleHTMLNotNil applies the NotNil predicate on the "article_html" field.
func ArticleHTMLNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleHTML))
}

// ArticleHTMLEqualFold applies the EqualFold predicate on the "article_html" field.
func ArticleHTMLEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldArticleHTML, v))
}

// ArticleHTMLContainsFold applies the ContainsFold predicate on the "article_html" field.
func ArticleHTMLContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldArticleHTML, v))
}

// ArticlePublishedAtEQ applies the EQ predicate on the "article_published_at" field.
func ArticlePublishedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtNEQ applies the NEQ predicate on the "article_published_at" field.
func ArticlePublishedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtIn applies the In predicate on the "article_published_at" field.
func ArticlePublishedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticlePublishedAt, vs...))
}

// ArticlePublishedAtNotIn applies the NotIn predicate on the "article_published_at" field.
func ArticlePublishedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticlePublishedAt, vs...))
}

// ArticlePublishedAtGT applies the GT predicate on the "article_published_at" field.
func ArticlePublishedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtGTE applies the GTE predicate on the "article_published_at" field.
func ArticlePublishedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtLT applies the LT predicate on the "article_published_at" field.
func ArticlePublishedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtLTE applies the LTE predicate on the "article_published_at" field.
func ArticlePublishedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticlePublishedAt, v))
}

// ArticlePublishedAtIsNil applies the IsNil predicate on the "article_published_at" field.
func ArticlePublishedAtIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticlePublishedAt))
}

// ArticlePublishedAtNotNil applies the NotNil predicate on the "article_published_at" field.
func ArticlePublishedAtNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticlePublishedAt))
}

// ArticleEditedAtEQ applies the EQ predicate on the "article_edited_at" field.
func ArticleEditedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldArticleEditedAt, v))
}

// ArticleEditedAtNEQ applies the NEQ predicate on the "article_edited_at" field.
func ArticleEditedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldArticleEditedAt, v))
}

// ArticleEditedAtIn applies the In predicate on the "article_edited_at" field.
func ArticleEditedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldArticleEditedAt, vs...))
}

// ArticleEditedAtNotIn applies the NotIn predicate on the "article_edited_at" field.
func ArticleEditedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldArticleEditedAt, vs...))
}

// ArticleEditedAtGT applies the GT predicate on the "article_edited_at" field.
func ArticleEditedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldArticleEditedAt, v))
}

// ArticleEditedAtGTE applies the GTE predicate on the "article_edited_at" field.
func ArticleEditedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldArticleEditedAt, v))
}

// ArticleEditedAtLT applies the LT predicate on the "article_edited_at" field.
func ArticleEditedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldArticleEditedAt, v))
}

// ArticleEditedAtLTE applies the LTE predicate on the "article_edited_at" field.
func ArticleEditedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldArticleEditedAt, v))
}

// ArticleEditedAtIsNil applies the IsNil predicate on the "article_edited_at" field.
func ArticleEditedAtIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldArticleEditedAt))
}

// ArticleEditedAtNotNil applies the NotNil predicate on the "article_edited_at" field.
func ArticleEditedAtNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldArticleEditedAt))
}

// ScrapedAtEQ applies the EQ predicate on the "scraped_at" field.
func ScrapedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldScrapedAt, v))
}

// ScrapedAtNEQ applies the NEQ predicate on the "scraped_at" field.
func ScrapedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldScrapedAt, v))
}

// ScrapedAtIn applies the In predicate on the "scraped_at" field.
func ScrapedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldScrapedAt, vs...))
}

// ScrapedAtNotIn applies the NotIn predicate on the "scraped_at" field.
func ScrapedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldScrapedAt, vs...))
}

// ScrapedAtGT applies the GT predicate on the "scraped_at" field.
func ScrapedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldScrapedAt, v))
}

// ScrapedAtGTE applies the GTE predicate on the "scraped_at" field.
func ScrapedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldScrapedAt, v))
}

// ScrapedAtLT applies the LT predicate on the "scraped_at" field.
func ScrapedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldScrapedAt, v))
}

// ScrapedAtLTE applies the LTE predicate on the "scraped_at" field.
func ScrapedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldScrapedAt, v))
}

// ScrapedAtIsNil applies the IsNil predicate on the "scraped_at" field.
func ScrapedAtIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldScrapedAt))
}

// ScrapedAtNotNil applies the NotNil predicate on the "scraped_at" field.
func ScrapedAtNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldScrapedAt))
}

// CommentTextEQ applies the EQ predicate on the "comment_text" field.
func CommentTextEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCommentText, v))
}

// CommentTextNEQ applies the NEQ predicate on the "comment_text" field.
func CommentTextNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldCommentText, v))
}

// CommentTextIn applies the In predicate on the "comment_text" field.
func CommentTextIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldCommentText, vs...))
}

// CommentTextNotIn applies the NotIn predicate on the "comment_text" field.
func CommentTextNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldCommentText, vs...))
}

// CommentTextGT applies the GT predicate on the "comment_text" field.
func CommentTextGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldCommentText, v))
}

// CommentTextGTE applies the GTE predicate on the "comment_text" field.
func CommentTextGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldCommentText, v))
}

// CommentTextLT applies the LT predicate on the "comment_text" field.
func CommentTextLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldCommentText, v))
}

// CommentTextLTE applies the LTE predicate on the "comment_text" field.
func CommentTextLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldCommentText, v))
}

// CommentTextContains applies the Contains predicate on the "comment_text" field.
func CommentTextContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldCommentText, v))
}

// CommentTextHasPrefix applies the HasPrefix predicate on the "comment_text" field.
func CommentTextHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldCommentText, v))
}

// CommentTextHasSuffix applies the HasSuffix predicate on the "comment_text" field.
func CommentTextHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldCommentText, v))
}

// CommentTextIsNil applies the IsNil predicate on the "comment_text" field.
func CommentTextIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldCommentText))
}

// CommentTextNotNil applies the NotNil predicate on the "comment_text" field.
func CommentTextNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldCommentText))
}

// CommentTextEqualFold applies the EqualFold predicate on the "comment_text" field.
func CommentTextEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldCommentText, v))
}

// CommentTextContainsFold applies the ContainsFold predicate on the "comment_text" field.
func CommentTextContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldCommentText, v))
}

// LlmModelNameEQ applies the EQ predicate on the "llm_model_name" field.
func LlmModelNameEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLlmModelName, v))
}

// LlmModelNameNEQ applies the NEQ predicate on the "llm_model_name" field.
func LlmModelNameNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldLlmModelName, v))
}

// LlmModelNameIn applies the In predicate on the "llm_model_name" field.
func LlmModelNameIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldLlmModelName, vs...))
}

// LlmModelNameNotIn applies the NotIn predicate on the "llm_model_name" field.
func LlmModelNameNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldLlmModelName, vs...))
}

// LlmModelNameGT applies the GT predicate on the "llm_model_name" field.
func LlmModelNameGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldLlmModelName, v))
}

// LlmModelNameGTE applies the GTE predicate on the "llm_model_name" field.
func LlmModelNameGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldLlmModelName, v))
}

// LlmModelNameLT applies the LT predicate on the "llm_model_name" field.
func LlmModelNameLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldLlmModelName, v))
}

// LlmModelNameLTE applies the LTE predicate on the "llm_model_name" field.
func LlmModelNameLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldLlmModelName, v))
}

// LlmModelNameContains applies the Contains predicate on the "llm_model_name" field.
func LlmModelNameContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldLlmModelName, v))
}

// LlmModelNameHasPrefix applies the HasPrefix predicate on the "llm_model_name" field.
func LlmModelNameHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldLlmModelName, v))
}

// LlmModelNameHasSuffix applies the HasSuffix predicate on the "llm_model_name" field.
func LlmModelNameHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldLlmModelName, v))
}

// LlmModelNameIsNil applies the IsNil predicate on the "llm_model_name" field.
func LlmModelNameIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldLlmModelName))
}

// LlmModelNameNotNil applies the NotNil predicate on the "llm_model_name" field.
func LlmModelNameNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldLlmModelName))
}

// LlmModelNameEqualFold applies the EqualFold predicate on the "llm_model_name" field.
func LlmModelNameEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldLlmModelName, v))
}

// LlmModelNameContainsFold applies the ContainsFold predicate on the "llm_model_name" field.
func LlmModelNameContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldLlmModelName, v))
}

// LlmProviderNameEQ applies the EQ predicate on the "llm_provider_name" field.
func LlmProviderNameEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldLlmProviderName, v))
}

// LlmProviderNameNEQ applies the NEQ predicate on the "llm_provider_name" field.
func LlmProviderNameNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldLlmProviderName, v))
}

// LlmProviderNameIn applies the In predicate on the "llm_provider_name" field.
func LlmProviderNameIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldLlmProviderName, vs...))
}

// LlmProviderNameNotIn applies the NotIn predicate on the "llm_provider_name" field.
func LlmProviderNameNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldLlmProviderName, vs...))
}

// LlmProviderNameGT applies the GT predicate on the "llm_provider_name" field.
func LlmProviderNameGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldLlmProviderName, v))
}

// LlmProviderNameGTE applies the GTE predicate on the "llm_provider_name" field.
func LlmProviderNameGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldLlmProviderName, v))
}

// LlmProviderNameLT applies the LT predicate on the "llm_provider_name" field.
func LlmProviderNameLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldLlmProviderName, v))
}

// LlmProviderNameLTE applies the LTE predicate on the "llm_provider_name" field.
func LlmProviderNameLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldLlmProviderName, v))
}

// LlmProviderNameContains applies the Contains predicate on the "llm_provider_name" field.
func LlmProviderNameContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldLlmProviderName, v))
}

// LlmProviderNameHasPrefix applies the HasPrefix predicate on the "llm_provider_name" field.
func LlmProviderNameHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldLlmProviderName, v))
}

// LlmProviderNameHasSuffix applies the HasSuffix predicate on the "llm_provider_name" field.
func LlmProviderNameHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldLlmProviderName, v))
}

// LlmProviderNameIsNil applies the IsNil predicate on the "llm_provider_name" field.
func LlmProviderNameIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldLlmProviderName))
}

// LlmProviderNameNotNil applies the NotNil predicate on the "llm_provider_name" field.
func LlmProviderNameNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldLlmProviderName))
}

// LlmProviderNameEqualFold applies the EqualFold predicate on the "llm_provider_name" field.
func LlmProviderNameEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldLlmProviderName, v))
}

// LlmProviderNameContainsFold applies the ContainsFold predicate on the "llm_provider_name" field.
func LlmProviderNameContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldLlmProviderName, v))
}

// GenerationTokensEQ applies the EQ predicate on the "generation_tokens" field.
func GenerationTokensEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldGenerationTokens, v))
}

// GenerationTokensNEQ applies the NEQ predicate on the "generation_tokens" field.
func GenerationTokensNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldGenerationTokens, v))
}

// GenerationTokensIn applies the In predicate on the "generation_tokens" field.
func GenerationTokensIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldGenerationTokens, vs...))
}

// GenerationTokensNotIn applies the NotIn predicate on the "generation_tokens" field.
func GenerationTokensNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldGenerationTokens, vs...))
}

// GenerationTokensGT applies the GT predicate on the "generation_tokens" field.
func GenerationTokensGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldGenerationTokens, v))
}

// GenerationTokensGTE applies the GTE predicate on the "generation_tokens" field.
func GenerationTokensGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldGenerationTokens, v))
}

// GenerationTokensLT applies the LT predicate on the "generation_tokens" field.
func GenerationTokensLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldGenerationTokens, v))
}

// GenerationTokensLTE applies the LTE predicate on the "generation_tokens" field.
func GenerationTokensLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldGenerationTokens, v))
}

// GenerationTokensIsNil applies the IsNil predicate on the "generation_tokens" field.
func GenerationTokensIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldGenerationTokens))
}

// GenerationTokensNotNil applies the NotNil predicate on the "generation_tokens" field.
func GenerationTokensNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldGenerationTokens))
}

// GenerationTimeMsEQ applies the EQ predicate on the "generation_time_ms" field.
func GenerationTimeMsEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsNEQ applies the NEQ predicate on the "generation_time_ms" field.
func GenerationTimeMsNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIn applies the In predicate on the "generation_time_ms" field.
func GenerationTimeMsIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsNotIn applies the NotIn predicate on the "generation_time_ms" field.
func GenerationTimeMsNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsGT applies the GT predicate on the "generation_time_ms" field.
func GenerationTimeMsGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsGTE applies the GTE predicate on the "generation_time_ms" field.
func GenerationTimeMsGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLT applies the LT predicate on the "generation_time_ms" field.
func GenerationTimeMsLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLTE applies the LTE predicate on the "generation_time_ms" field.
func GenerationTimeMsLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIsNil applies the IsNil predicate on the "generation_time_ms" field.
func GenerationTimeMsIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldGenerationTimeMs))
}

// GenerationTimeMsNotNil applies the NotNil predicate on the "generation_time_ms" field.
func GenerationTimeMsNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldGenerationTimeMs))
}

// UpstreamCommentIDEQ applies the EQ predicate on the "upstream_comment_id" field.
func UpstreamCommentIDEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDNEQ applies the NEQ predicate on the "upstream_comment_id" field.
func UpstreamCommentIDNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDIn applies the In predicate on the "upstream_comment_id" field.
func UpstreamCommentIDIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldUpstreamCommentID, vs...))
}

// UpstreamCommentIDNotIn applies the NotIn predicate on the "upstream_comment_id" field.
func UpstreamCommentIDNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldUpstreamCommentID, vs...))
}

// UpstreamCommentIDGT applies the GT predicate on the "upstream_comment_id" field.
func UpstreamCommentIDGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDGTE applies the GTE predicate on the "upstream_comment_id" field.
func UpstreamCommentIDGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDLT applies the LT predicate on the "upstream_comment_id" field.
func UpstreamCommentIDLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDLTE applies the LTE predicate on the "upstream_comment_id" field.
func UpstreamCommentIDLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDContains applies the Contains predicate on the "upstream_comment_id" field.
func UpstreamCommentIDContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDHasPrefix applies the HasPrefix predicate on the "upstream_comment_id" field.
func UpstreamCommentIDHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDHasSuffix applies the HasSuffix predicate on the "upstream_comment_id" field.
func UpstreamCommentIDHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDIsNil applies the IsNil predicate on the "upstream_comment_id" field.
func UpstreamCommentIDIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldUpstreamCommentID))
}

// UpstreamCommentIDNotNil applies the NotNil predicate on the "upstream_comment_id" field.
func UpstreamCommentIDNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldUpstreamCommentID))
}

// UpstreamCommentIDEqualFold applies the EqualFold predicate on the "upstream_comment_id" field.
func UpstreamCommentIDEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldUpstreamCommentID, v))
}

// UpstreamCommentIDContainsFold applies the ContainsFold predicate on the "upstream_comment_id" field.
func UpstreamCommentIDContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldUpstreamCommentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldCreatedAt, v))
}

// PostedAtEQ applies the EQ predicate on the "posted_at" field.
func PostedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldPostedAt, v))
}

// PostedAtNEQ applies the NEQ predicate on the "posted_at" field.
func PostedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldPostedAt, v))
}

// PostedAtIn applies the In predicate on the "posted_at" field.
func PostedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldPostedAt, vs...))
}

// PostedAtNotIn applies the NotIn predicate on the "posted_at" field.
func PostedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldPostedAt, vs...))
}

// PostedAtGT applies the GT predicate on the "posted_at" field.
func PostedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldPostedAt, v))
}

// PostedAtGTE applies the GTE predicate on the "posted_at" field.
func PostedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldPostedAt, v))
}

// PostedAtLT applies the LT predicate on the "posted_at" field.
func PostedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldPostedAt, v))
}

// PostedAtLTE applies the LTE predicate on the "posted_at" field.
func PostedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldPostedAt, v))
}

// PostedAtIsNil applies the IsNil predicate on the "posted_at" field.
func PostedAtIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldPostedAt))
}

// PostedAtNotNil applies the NotNil predicate on the "posted_at" field.
func PostedAtNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldPostedAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldFailedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.WorkItem {
	return predicate.WorkItem(sql.FieldLTE(FieldRetryCount, v))
}

// HasProcess applies the HasEdge predicate on the "process" edge.
func HasProcess() predicate.WorkItem {
	return predicate.WorkItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProcessTable, ProcessColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessWith applies the HasEdge predicate on the "process" edge with a given conditions (other predicates).
func HasProcessWith(preds ...predicate.Process) predicate.WorkItem {
	return predicate.WorkItem(func(s *sql.Selector) {
		step := newProcessStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogin applies the HasEdge predicate on the "login" edge.
func HasLogin() predicate.WorkItem {
	return predicate.WorkItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LoginTable, LoginColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoginWith applies the HasEdge predicate on the "login" edge with a given conditions (other predicates).
func HasLoginWith(preds ...predicate.UpstreamLogin) predicate.WorkItem {
	return predicate.WorkItem(func(s *sql.Selector) {
		step := newLoginStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkItem) predicate.WorkItem {
	return predicate.WorkItem(sql.NotPredicates(p))
}
