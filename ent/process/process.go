// Code generated by ent, DO NOT EDIT.

package process

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the process type in the database.
	Label = "process"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "process_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMaxDurationMinutes holds the string denoting the max_duration_minutes field in the database.
	FieldMaxDurationMinutes = "max_duration_minutes"
	// FieldGenerateOnly holds the string denoting the generate_only field in the database.
	FieldGenerateOnly = "generate_only"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldStoppedAt holds the string denoting the stopped_at field in the database.
	FieldStoppedAt = "stopped_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldStopReason holds the string denoting the stop_reason field in the database.
	FieldStopReason = "stop_reason"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFilterTab holds the string denoting the filter_tab field in the database.
	FieldFilterTab = "filter_tab"
	// FieldFilterCategoryID holds the string denoting the filter_category_id field in the database.
	FieldFilterCategoryID = "filter_category_id"
	// FieldFilterTaskID holds the string denoting the filter_task_id field in the database.
	FieldFilterTaskID = "filter_task_id"
	// FieldFilterSearch holds the string denoting the filter_search field in the database.
	FieldFilterSearch = "filter_search"
	// FieldFilterSort holds the string denoting the filter_sort field in the database.
	FieldFilterSort = "filter_sort"
	// FieldArticleLimit holds the string denoting the article_limit field in the database.
	FieldArticleLimit = "article_limit"
	// FieldDiscoveryTaskID holds the string denoting the discovery_task_id field in the database.
	FieldDiscoveryTaskID = "discovery_task_id"
	// FieldPreparationTaskID holds the string denoting the preparation_task_id field in the database.
	FieldPreparationTaskID = "preparation_task_id"
	// FieldGenerationTaskID holds the string denoting the generation_task_id field in the database.
	FieldGenerationTaskID = "generation_task_id"
	// FieldPostingTaskID holds the string denoting the posting_task_id field in the database.
	FieldPostingTaskID = "posting_task_id"
	// FieldLlmConfigID holds the string denoting the llm_config_id field in the database.
	FieldLlmConfigID = "llm_config_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkItems holds the string denoting the work_items edge name in mutations.
	EdgeWorkItems = "work_items"
	// EdgeLlmConfig holds the string denoting the llm_config edge name in mutations.
	EdgeLlmConfig = "llm_config"
	// EdgeLogins holds the string denoting the logins edge name in mutations.
	EdgeLogins = "logins"
	// EdgePromptTemplates holds the string denoting the prompt_templates edge name in mutations.
	EdgePromptTemplates = "prompt_templates"
	// WorkItemFieldID holds the string denoting the ID field of the WorkItem.
	WorkItemFieldID = "item_id"
	// LLMProviderConfigFieldID holds the string denoting the ID field of the LLMProviderConfig.
	LLMProviderConfigFieldID = "llm_config_id"
	// UpstreamLoginFieldID holds the string denoting the ID field of the UpstreamLogin.
	UpstreamLoginFieldID = "login_id"
	// PromptTemplateFieldID holds the string denoting the ID field of the PromptTemplate.
	PromptTemplateFieldID = "prompt_template_id"
	// Table holds the table name of the process in the database.
	Table = "processes"
	// WorkItemsTable is the table that holds the work_items relation/edge.
	WorkItemsTable = "work_items"
	// WorkItemsInverseTable is the table name for the WorkItem entity.
	// It exists in this package in order to avoid circular dependency with the "workitem" package.
	WorkItemsInverseTable = "work_items"
	// WorkItemsColumn is the table column denoting the work_items relation/edge.
	WorkItemsColumn = "process_id"
	// LlmConfigTable is the table that holds the llm_config relation/edge.
	LlmConfigTable = "processes"
	// LlmConfigInverseTable is the table name for the LLMProviderConfig entity.
	// It exists in this package in order to avoid circular dependency with the "llmproviderconfig" package.
	LlmConfigInverseTable = "llm_provider_configs"
	// LlmConfigColumn is the table column denoting the llm_config relation/edge.
	LlmConfigColumn = "llm_config_id"
	// LoginsTable is the table that holds the logins relation/edge. The primary key declared below.
	LoginsTable = "process_logins"
	// LoginsInverseTable is the table name for the UpstreamLogin entity.
	// It exists in this package in order to avoid circular dependency with the "upstreamlogin" package.
	LoginsInverseTable = "upstream_logins"
	// PromptTemplatesTable is the table that holds the prompt_templates relation/edge. The primary key declared below.
	PromptTemplatesTable = "process_prompts"
	// PromptTemplatesInverseTable is the table name for the PromptTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "prompttemplate" package.
	PromptTemplatesInverseTable = "prompt_templates"
)

// Columns holds all SQL columns for process fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldDescription,
	FieldStatus,
	FieldMaxDurationMinutes,
	FieldGenerateOnly,
	FieldStartedAt,
	FieldStoppedAt,
	FieldExpiresAt,
	FieldStopReason,
	FieldErrorMessage,
	FieldFilterTab,
	FieldFilterCategoryID,
	FieldFilterTaskID,
	FieldFilterSearch,
	FieldFilterSort,
	FieldArticleLimit,
	FieldDiscoveryTaskID,
	FieldPreparationTaskID,
	FieldGenerationTaskID,
	FieldPostingTaskID,
	FieldLlmConfigID,
	FieldCreatedAt,
}

var (
	// LoginsPrimaryKey and LoginsColumn2 are the table columns denoting the
	// primary key for the logins relation (M2M).
	LoginsPrimaryKey = []string{"process_id", "login_id"}
	// PromptTemplatesPrimaryKey and PromptTemplatesColumn2 are the table columns denoting the
	// primary key for the prompt_templates relation (M2M).
	PromptTemplatesPrimaryKey = []string{"process_id", "prompt_template_id"}
)

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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultGenerateOnly holds the default value on creation for the "generate_only" field.
	DefaultGenerateOnly bool
	// DefaultArticleLimit holds the default value on creation for the "article_limit" field.
	DefaultArticleLimit int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusStopped is the default value of the Status enum.
const DefaultStatus = StatusStopped

// Status values.
const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStopped, StatusRunning, StatusFailed:
		return nil
	default:
		return fmt.Errorf("process: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Process queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMaxDurationMinutes orders the results by the max_duration_minutes field.
func ByMaxDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDurationMinutes, opts...).ToFunc()
}

// ByGenerateOnly orders the results by the generate_only field.
func ByGenerateOnly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerateOnly, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByStoppedAt orders the results by the stopped_at field.
func ByStoppedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoppedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByStopReason orders the results by the stop_reason field.
func ByStopReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopReason, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFilterTab orders the results by the filter_tab field.
func ByFilterTab(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilterTab, opts...).ToFunc()
}

// ByFilterCategoryID orders the results by the filter_category_id field.
func ByFilterCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilterCategoryID, opts...).ToFunc()
}

// ByFilterTaskID orders the results by the filter_task_id field.
func ByFilterTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilterTaskID, opts...).ToFunc()
}

// ByFilterSearch orders the results by the filter_search field.
func ByFilterSearch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilterSearch, opts...).ToFunc()
}

// ByFilterSort orders the results by the filter_sort field.
func ByFilterSort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilterSort, opts...).ToFunc()
}

// ByArticleLimit orders the results by the article_limit field.
func ByArticleLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleLimit, opts...).ToFunc()
}

// ByDiscoveryTaskID orders the results by the discovery_task_id field.
func ByDiscoveryTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveryTaskID, opts...).ToFunc()
}

// ByPreparationTaskID orders the results by the preparation_task_id field.
func ByPreparationTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreparationTaskID, opts...).ToFunc()
}

// ByGenerationTaskID orders the results by the generation_task_id field.
func ByGenerationTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerationTaskID, opts...).ToFunc()
}

// ByPostingTaskID orders the results by the posting_task_id field.
func ByPostingTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostingTaskID, opts...).ToFunc()
}

// ByLlmConfigID orders the results by the llm_config_id field.
func ByLlmConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmConfigID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkItemsCount orders the results by work_items count.
func ByWorkItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkItemsStep(), opts...)
	}
}

// ByWorkItems orders the results by work_items terms.
func ByWorkItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLlmConfigField orders the results by llm_config field.
func ByLlmConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLlmConfigStep(), sql.OrderByField(field, opts...))
	}
}

// ByLoginsCount orders the results by logins count.
func ByLoginsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLoginsStep(), opts...)
	}
}

// ByLogins orders the results by logins terms.
func ByLogins(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLoginsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromptTemplatesCount orders the results by prompt_templates count.
func ByPromptTemplatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromptTemplatesStep(), opts...)
	}
}

// ByPromptTemplates orders the results by prompt_templates terms.
func ByPromptTemplates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromptTemplatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkItemsInverseTable, WorkItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkItemsTable, WorkItemsColumn),
	)
}
func newLlmConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmConfigInverseTable, LLMProviderConfigFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, LlmConfigTable, LlmConfigColumn),
	)
}
func newLoginsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoginsInverseTable, UpstreamLoginFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, LoginsTable, LoginsPrimaryKey...),
	)
}
func newPromptTemplatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromptTemplatesInverseTable, PromptTemplateFieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, PromptTemplatesTable, PromptTemplatesPrimaryKey...),
	)
}
