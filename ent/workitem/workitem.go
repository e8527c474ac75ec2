// Code generated by ent, DO NOT EDIT.

package workitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workitem type in the database.
	Label = "work_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldProcessID holds the string denoting the process_id field in the database.
	FieldProcessID = "process_id"
	// FieldLoginID holds the string denoting the login_id field in the database.
	FieldLoginID = "login_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldArticleID holds the string denoting the article_id field in the database.
	FieldArticleID = "article_id"
	// FieldPromptTemplateID holds the string denoting the prompt_template_id field in the database.
	FieldPromptTemplateID = "prompt_template_id"
	// FieldLlmConfigID holds the string denoting the llm_config_id field in the database.
	FieldLlmConfigID = "llm_config_id"
	// FieldArticleTitle holds the string denoting the article_title field in the database.
	FieldArticleTitle = "article_title"
	// FieldArticleAuthor holds the string denoting the article_author field in the database.
	FieldArticleAuthor = "article_author"
	// FieldArticleCategoryID holds the string denoting the article_category_id field in the database.
	FieldArticleCategoryID = "article_category_id"
	// FieldArticleTaskID holds the string denoting the article_task_id field in the database.
	FieldArticleTaskID = "article_task_id"
	// FieldArticleURL holds the string denoting the article_url field in the database.
	FieldArticleURL = "article_url"
	// FieldArticleContent holds the string denoting the article_content field in the database.
	FieldArticleContent = "article_content"
	// FieldArticleHTML holds the string denoting the article_html field in the database.
	FieldArticleHTML = "article_html"
	// FieldArticlePublishedAt holds the string denoting the article_published_at field in the database.
	FieldArticlePublishedAt = "article_published_at"
	// FieldArticleEditedAt holds the string denoting the article_edited_at field in the database.
	FieldArticleEditedAt = "article_edited_at"
	// FieldScrapedAt holds the string denoting the scraped_at field in the database.
	FieldScrapedAt = "scraped_at"
	// FieldCommentText holds the string denoting the comment_text field in the database.
	FieldCommentText = "comment_text"
	// FieldLlmModelName holds the string denoting the llm_model_name field in the database.
	FieldLlmModelName = "llm_model_name"
	// FieldLlmProviderName holds the string denoting the llm_provider_name field in the database.
	FieldLlmProviderName = "llm_provider_name"
	// FieldGenerationTokens holds the string denoting the generation_tokens field in the database.
	FieldGenerationTokens = "generation_tokens"
	// FieldGenerationTimeMs holds the string denoting the generation_time_ms field in the database.
	FieldGenerationTimeMs = "generation_time_ms"
	// FieldUpstreamCommentID holds the string denoting the upstream_comment_id field in the database.
	FieldUpstreamCommentID = "upstream_comment_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPostedAt holds the string denoting the posted_at field in the database.
	FieldPostedAt = "posted_at"
	// FieldFailedAt holds the string denoting the failed_at field in the database.
	FieldFailedAt = "failed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// EdgeProcess holds the string denoting the process edge name in mutations.
	EdgeProcess = "process"
	// EdgeLogin holds the string denoting the login edge name in mutations.
	EdgeLogin = "login"
	// ProcessFieldID holds the string denoting the ID field of the Process.
	ProcessFieldID = "process_id"
	// UpstreamLoginFieldID holds the string denoting the ID field of the UpstreamLogin.
	UpstreamLoginFieldID = "login_id"
	// Table holds the table name of the workitem in the database.
	Table = "work_items"
	// ProcessTable is the table that holds the process relation/edge.
	ProcessTable = "work_items"
	// ProcessInverseTable is the table name for the Process entity.
	// It exists in this package in order to avoid circular dependency with the "process" package.
	ProcessInverseTable = "processes"
	// ProcessColumn is the table column denoting the process relation/edge.
	ProcessColumn = "process_id"
	// LoginTable is the table that holds the login relation/edge.
	LoginTable = "work_items"
	// LoginInverseTable is the table name for the UpstreamLogin entity.
	// It exists in this package in order to avoid circular dependency with the "upstreamlogin" package.
	LoginInverseTable = "upstream_logins"
	// LoginColumn is the table column denoting the login relation/edge.
	LoginColumn = "login_id"
)

// Columns holds all SQL columns for workitem fields.
var Columns = []string{
	FieldID,
	FieldProcessID,
	FieldLoginID,
	FieldUserID,
	FieldArticleID,
	FieldPromptTemplateID,
	FieldLlmConfigID,
	FieldArticleTitle,
	FieldArticleAuthor,
	FieldArticleCategoryID,
	FieldArticleTaskID,
	FieldArticleURL,
	FieldArticleContent,
	FieldArticleHTML,
	FieldArticlePublishedAt,
	FieldArticleEditedAt,
	FieldScrapedAt,
	FieldCommentText,
	FieldLlmModelName,
	FieldLlmProviderName,
	FieldGenerationTokens,
	FieldGenerationTimeMs,
	FieldUpstreamCommentID,
	FieldStatus,
	FieldCreatedAt,
	FieldPostedAt,
	FieldFailedAt,
	FieldErrorMessage,
	FieldRetryCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDiscovered is the default value of the Status enum.
const DefaultStatus = StatusDiscovered

// Status values.
const (
	StatusDiscovered Status = "discovered"
	StatusPrepared   Status = "prepared"
	StatusGenerated  Status = "generated"
	StatusPosted     Status = "posted"
	StatusFailed     Status = "failed"
	StatusDeleted    Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDiscovered, StatusPrepared, StatusGenerated, StatusPosted, StatusFailed, StatusDeleted:
		return nil
	default:
		return fmt.Errorf("workitem: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProcessID orders the results by the process_id field.
func ByProcessID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessID, opts...).ToFunc()
}

// ByLoginID orders the results by the login_id field.
func ByLoginID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoginID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByArticleID orders the results by the article_id field.
func ByArticleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleID, opts...).ToFunc()
}

// ByPromptTemplateID orders the results by the prompt_template_id field.
func ByPromptTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTemplateID, opts...).ToFunc()
}

// ByLlmConfigID orders the results by the llm_config_id field.
func ByLlmConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmConfigID, opts...).ToFunc()
}

// ByArticleTitle orders the results by the article_title field.
func ByArticleTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleTitle, opts...).ToFunc()
}

// ByArticleAuthor orders the results by the article_author field.
func ByArticleAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleAuthor, opts...).ToFunc()
}

// ByArticleCategoryID orders the results by the article_category_id field.
func ByArticleCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleCategoryID, opts...).ToFunc()
}

// ByArticleTaskID orders the results by the article_task_id field.
func ByArticleTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleTaskID, opts...).ToFunc()
}

// ByArticleURL orders the results by the article_url field.
func ByArticleURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleURL, opts...).ToFunc()
}

// ByArticleContent orders the results by the article_content field.
func ByArticleContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleContent, opts...).ToFunc()
}

// ByArticleHTML orders the results by the article_html field.
func ByArticleHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleHTML, opts...).ToFunc()
}

// ByArticlePublishedAt orders the results by the article_published_at field.
func ByArticlePublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticlePublishedAt, opts...).ToFunc()
}

// ByArticleEditedAt orders the results by the article_edited_at field.
func ByArticleEditedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleEditedAt, opts...).ToFunc()
}

// ByScrapedAt orders the results by the scraped_at field.
func ByScrapedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScrapedAt, opts...).ToFunc()
}

// ByCommentText orders the results by the comment_text field.
func ByCommentText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentText, opts...).ToFunc()
}

// ByLlmModelName orders the results by the llm_model_name field.
func ByLlmModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModelName, opts...).ToFunc()
}

// ByLlmProviderName orders the results by the llm_provider_name field.
func ByLlmProviderName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmProviderName, opts...).ToFunc()
}

// ByGenerationTokens orders the results by the generation_tokens field.
func ByGenerationTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTokens, opts...).ToFunc()
}

// ByGenerationTimeMs orders the results by the generation_time_ms field.
func ByGenerationTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTimeMs, opts...).ToFunc()
}

// ByUpstreamCommentID orders the results by the upstream_comment_id field.
func ByUpstreamCommentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpstreamCommentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPostedAt orders the results by the posted_at field.
func ByPostedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostedAt, opts...).ToFunc()
}

// ByFailedAt orders the results by the failed_at field.
func ByFailedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByProcessField orders the results by process field.
func ByProcessField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessStep(), sql.OrderByField(field, opts...))
	}
}

// ByLoginField orders the results by login field.
func ByLoginField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLoginStep(), sql.OrderByField(field, opts...))
	}
}
func newProcessStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessInverseTable, ProcessFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProcessTable, ProcessColumn),
	)
}
func newLoginStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoginInverseTable, UpstreamLoginFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LoginTable, LoginColumn),
	)
}
