// Code generated by ent, DO NOT EDIT.

package prompttemplate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the prompttemplate type in the database.
	Label = "prompt_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "prompt_template_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldUserPromptTemplate holds the string denoting the user_prompt_template field in the database.
	FieldUserPromptTemplate = "user_prompt_template"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProcesses holds the string denoting the processes edge name in mutations.
	EdgeProcesses = "processes"
	// ProcessFieldID holds the string denoting the ID field of the Process.
	ProcessFieldID = "process_id"
	// Table holds the table name of the prompttemplate in the database.
	Table = "prompt_templates"
	// ProcessesTable is the table that holds the processes relation/edge. The primary key declared below.
	ProcessesTable = "process_prompts"
	// ProcessesInverseTable is the table name for the Process entity.
	// It exists in this package in order to avoid circular dependency with the "process" package.
	ProcessesInverseTable = "processes"
)

// Columns holds all SQL columns for prompttemplate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCategory,
	FieldName,
	FieldDescription,
	FieldSystemPrompt,
	FieldUserPromptTemplate,
	FieldIsActive,
	FieldCreatedAt,
}

var (
	// ProcessesPrimaryKey and ProcessesColumn2 are the table columns denoting the
	// primary key for the processes relation (M2M).
	ProcessesPrimaryKey = []string{"process_id", "prompt_template_id"}
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryUSER is the default value of the Category enum.
const DefaultCategory = CategoryUSER

// Category values.
const (
	CategorySYSTEM Category = "SYSTEM"
	CategoryUSER   Category = "USER"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategorySYSTEM, CategoryUSER:
		return nil
	default:
		return fmt.Errorf("prompttemplate: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the PromptTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByUserPromptTemplate orders the results by the user_prompt_template field.
func ByUserPromptTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserPromptTemplate, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProcessesCount orders the results by processes count.
func ByProcessesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProcessesStep(), opts...)
	}
}

// ByProcesses orders the results by processes terms.
func ByProcesses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProcessesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessesInverseTable, ProcessFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, ProcessesTable, ProcessesPrimaryKey...),
	)
}
