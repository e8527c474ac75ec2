// Code generated by ent, DO NOT EDIT.

package upstreamlogin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the upstreamlogin type in the database.
	Label = "upstream_login"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "login_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldUsernameEncrypted holds the string denoting the username_encrypted field in the database.
	FieldUsernameEncrypted = "username_encrypted"
	// FieldPasswordEncrypted holds the string denoting the password_encrypted field in the database.
	FieldPasswordEncrypted = "password_encrypted"
	// FieldIsAdmin holds the string denoting the is_admin field in the database.
	FieldIsAdmin = "is_admin"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkItems holds the string denoting the work_items edge name in mutations.
	EdgeWorkItems = "work_items"
	// EdgeProcesses holds the string denoting the processes edge name in mutations.
	EdgeProcesses = "processes"
	// WorkItemFieldID holds the string denoting the ID field of the WorkItem.
	WorkItemFieldID = "item_id"
	// ProcessFieldID holds the string denoting the ID field of the Process.
	ProcessFieldID = "process_id"
	// Table holds the table name of the upstreamlogin in the database.
	Table = "upstream_logins"
	// WorkItemsTable is the table that holds the work_items relation/edge.
	WorkItemsTable = "work_items"
	// WorkItemsInverseTable is the table name for the WorkItem entity.
	// It exists in this package in order to avoid circular dependency with the "workitem" package.
	WorkItemsInverseTable = "work_items"
	// WorkItemsColumn is the table column denoting the work_items relation/edge.
	WorkItemsColumn = "login_id"
	// ProcessesTable is the table that holds the processes relation/edge. The primary key declared below.
	ProcessesTable = "process_logins"
	// ProcessesInverseTable is the table name for the Process entity.
	// It exists in this package in order to avoid circular dependency with the "process" package.
	ProcessesInverseTable = "processes"
)

// Columns holds all SQL columns for upstreamlogin fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldUsernameEncrypted,
	FieldPasswordEncrypted,
	FieldIsAdmin,
	FieldIsActive,
	FieldLastUsedAt,
	FieldCreatedAt,
}

var (
	// ProcessesPrimaryKey and ProcessesColumn2 are the table columns denoting the
	// primary key for the processes relation (M2M).
	ProcessesPrimaryKey = []string{"process_id", "login_id"}
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
	// DefaultIsAdmin holds the default value on creation for the "is_admin" field.
	DefaultIsAdmin bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the UpstreamLogin queries.
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

// ByUsernameEncrypted orders the results by the username_encrypted field.
func ByUsernameEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsernameEncrypted, opts...).ToFunc()
}

// ByPasswordEncrypted orders the results by the password_encrypted field.
func ByPasswordEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordEncrypted, opts...).ToFunc()
}

// ByIsAdmin orders the results by the is_admin field.
func ByIsAdmin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAdmin, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
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
func newWorkItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkItemsInverseTable, WorkItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkItemsTable, WorkItemsColumn),
	)
}
func newProcessesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessesInverseTable, ProcessFieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, ProcessesTable, ProcessesPrimaryKey...),
	)
}
