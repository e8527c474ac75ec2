// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/process"
)

// Process is the model entity for the Process schema.
type Process struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner; every read through the pipeline is scoped to it
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status process.Status `json:"status,omitempty"`
	// Wall-clock budget, 1..1440
	MaxDurationMinutes int `json:"max_duration_minutes,omitempty"`
	// Skip the Posting stage; items terminate in 'generated'
	GenerateOnly bool `json:"generate_only,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// StoppedAt holds the value of the "stopped_at" field.
	StoppedAt *time.Time `json:"stopped_at,omitempty"`
	// started_at + max_duration_minutes, set on start
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// 'manual', 'timeout', 'stage_error', 'generate_only_complete'
	StopReason *string `json:"stop_reason,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// 'home', 'alle', or a numeric classroom id
	FilterTab *string `json:"filter_tab,omitempty"`
	// FilterCategoryID holds the value of the "filter_category_id" field.
	FilterCategoryID *int `json:"filter_category_id,omitempty"`
	// FilterTaskID holds the value of the "filter_task_id" field.
	FilterTaskID *int `json:"filter_task_id,omitempty"`
	// Client-side title substring filter
	FilterSearch *string `json:"filter_search,omitempty"`
	// FilterSort holds the value of the "filter_sort" field.
	FilterSort *string `json:"filter_sort,omitempty"`
	// 0 falls back to the configured default limit
	ArticleLimit int `json:"article_limit,omitempty"`
	// DiscoveryTaskID holds the value of the "discovery_task_id" field.
	DiscoveryTaskID *string `json:"discovery_task_id,omitempty"`
	// PreparationTaskID holds the value of the "preparation_task_id" field.
	PreparationTaskID *string `json:"preparation_task_id,omitempty"`
	// GenerationTaskID holds the value of the "generation_task_id" field.
	GenerationTaskID *string `json:"generation_task_id,omitempty"`
	// PostingTaskID holds the value of the "posting_task_id" field.
	PostingTaskID *string `json:"posting_task_id,omitempty"`
	// LlmConfigID holds the value of the "llm_config_id" field.
	LlmConfigID string `json:"llm_config_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessQuery when eager-loading is set.
	Edges        ProcessEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessEdges holds the relations/edges for other nodes in the graph.
type ProcessEdges struct {
	// WorkItems holds the value of the work_items edge.
	WorkItems []*WorkItem `json:"work_items,omitempty"`
	// LlmConfig holds the value of the llm_config edge.
	LlmConfig *LLMProviderConfig `json:"llm_config,omitempty"`
	// Logins holds the value of the logins edge.
	Logins []*UpstreamLogin `json:"logins,omitempty"`
	// PromptTemplates holds the value of the prompt_templates edge.
	PromptTemplates []*PromptTemplate `json:"prompt_templates,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// WorkItemsOrErr returns the WorkItems value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessEdges) WorkItemsOrErr() ([]*WorkItem, error) {
	if e.loadedTypes[0] {
		return e.WorkItems, nil
	}
	return nil, &NotLoadedError{edge: "work_items"}
}

// LlmConfigOrErr returns the LlmConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessEdges) LlmConfigOrErr() (*LLMProviderConfig, error) {
	if e.LlmConfig != nil {
		return e.LlmConfig, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: llmproviderconfig.Label}
	}
	return nil, &NotLoadedError{edge: "llm_config"}
}

// LoginsOrErr returns the Logins value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessEdges) LoginsOrErr() ([]*UpstreamLogin, error) {
	if e.loadedTypes[2] {
		return e.Logins, nil
	}
	return nil, &NotLoadedError{edge: "logins"}
}

// PromptTemplatesOrErr returns the PromptTemplates value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessEdges) PromptTemplatesOrErr() ([]*PromptTemplate, error) {
	if e.loadedTypes[3] {
		return e.PromptTemplates, nil
	}
	return nil, &NotLoadedError{edge: "prompt_templates"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Process) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case process.FieldGenerateOnly:
			values[i] = new(sql.NullBool)
		case process.FieldMaxDurationMinutes, process.FieldFilterCategoryID, process.FieldFilterTaskID, process.FieldArticleLimit:
			values[i] = new(sql.NullInt64)
		case process.FieldID, process.FieldUserID, process.FieldName, process.FieldDescription, process.FieldStatus, process.FieldStopReason, process.FieldErrorMessage, process.FieldFilterTab, process.FieldFilterSearch, process.FieldFilterSort, process.FieldDiscoveryTaskID, process.FieldPreparationTaskID, process.FieldGenerationTaskID, process.FieldPostingTaskID, process.FieldLlmConfigID:
			values[i] = new(sql.NullString)
		case process.FieldStartedAt, process.FieldStoppedAt, process.FieldExpiresAt, process.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Process fields.
func (_m *Process) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case process.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case process.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case process.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case process.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case process.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = process.Status(value.String)
			}
		case process.FieldMaxDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_duration_minutes", values[i])
			} else if value.Valid {
				_m.MaxDurationMinutes = int(value.Int64)
			}
		case process.FieldGenerateOnly:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field generate_only", values[i])
			} else if value.Valid {
				_m.GenerateOnly = value.Bool
			}
		case process.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case process.FieldStoppedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stopped_at", values[i])
			} else if value.Valid {
				_m.StoppedAt = new(time.Time)
				*_m.StoppedAt = value.Time
			}
		case process.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case process.FieldStopReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stop_reason", values[i])
			} else if value.Valid {
				_m.StopReason = new(string)
				*_m.StopReason = value.String
			}
		case process.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case process.FieldFilterTab:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filter_tab", values[i])
			} else if value.Valid {
				_m.FilterTab = new(string)
				*_m.FilterTab = value.String
			}
		case process.FieldFilterCategoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field filter_category_id", values[i])
			} else if value.Valid {
				_m.FilterCategoryID = new(int)
				*_m.FilterCategoryID = int(value.Int64)
			}
		case process.FieldFilterTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field filter_task_id", values[i])
			} else if value.Valid {
				_m.FilterTaskID = new(int)
				*_m.FilterTaskID = int(value.Int64)
			}
		case process.FieldFilterSearch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filter_search", values[i])
			} else if value.Valid {
				_m.FilterSearch = new(string)
				*_m.FilterSearch = value.String
			}
		case process.FieldFilterSort:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filter_sort", values[i])
			} else if value.Valid {
				_m.FilterSort = new(string)
				*_m.FilterSort = value.String
			}
		case process.FieldArticleLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_limit", values[i])
			} else if value.Valid {
				_m.ArticleLimit = int(value.Int64)
			}
		case process.FieldDiscoveryTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discovery_task_id", values[i])
			} else if value.Valid {
				_m.DiscoveryTaskID = new(string)
				*_m.DiscoveryTaskID = value.String
			}
		case process.FieldPreparationTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preparation_task_id", values[i])
			} else if value.Valid {
				_m.PreparationTaskID = new(string)
				*_m.PreparationTaskID = value.String
			}
		case process.FieldGenerationTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generation_task_id", values[i])
			} else if value.Valid {
				_m.GenerationTaskID = new(string)
				*_m.GenerationTaskID = value.String
			}
		case process.FieldPostingTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field posting_task_id", values[i])
			} else if value.Valid {
				_m.PostingTaskID = new(string)
				*_m.PostingTaskID = value.String
			}
		case process.FieldLlmConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_config_id", values[i])
			} else if value.Valid {
				_m.LlmConfigID = value.String
			}
		case process.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Process.
// This includes values selected through modifiers, order, etc.
func (_m *Process) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkItems queries the "work_items" edge of the Process entity.
func (_m *Process) QueryWorkItems() *WorkItemQuery {
	return NewProcessClient(_m.config).QueryWorkItems(_m)
}

// QueryLlmConfig queries the "llm_config" edge of the Process entity.
func (_m *Process) QueryLlmConfig() *LLMProviderConfigQuery {
	return NewProcessClient(_m.config).QueryLlmConfig(_m)
}

// QueryLogins queries the "logins" edge of the Process entity.
func (_m *Process) QueryLogins() *UpstreamLoginQuery {
	return NewProcessClient(_m.config).QueryLogins(_m)
}

// QueryPromptTemplates queries the "prompt_templates" edge of the Process entity.
func (_m *Process) QueryPromptTemplates() *PromptTemplateQuery {
	return NewProcessClient(_m.config).QueryPromptTemplates(_m)
}

// Update returns a builder for updating this Process.
// Note that you need to call Process.Unwrap() before calling this method if this Process
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Process) Update() *ProcessUpdateOne {
	return NewProcessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Process entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Process) Unwrap() *Process {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Process is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Process) String() string {
	var builder strings.Builder
	builder.WriteString("Process(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("max_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("generate_only=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenerateOnly))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StoppedAt; v != nil {
		builder.WriteString("stopped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StopReason; v != nil {
		builder.WriteString("stop_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilterTab; v != nil {
		builder.WriteString("filter_tab=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilterCategoryID; v != nil {
		builder.WriteString("filter_category_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FilterTaskID; v != nil {
		builder.WriteString("filter_task_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FilterSearch; v != nil {
		builder.WriteString("filter_search=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FilterSort; v != nil {
		builder.WriteString("filter_sort=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("article_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticleLimit))
	builder.WriteString(", ")
	if v := _m.DiscoveryTaskID; v != nil {
		builder.WriteString("discovery_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PreparationTaskID; v != nil {
		builder.WriteString("preparation_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GenerationTaskID; v != nil {
		builder.WriteString("generation_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PostingTaskID; v != nil {
		builder.WriteString("posting_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("llm_config_id=")
	builder.WriteString(_m.LlmConfigID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Processes is a parsable slice of Process.
type Processes []*Process
