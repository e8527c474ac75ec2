// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// WorkItem is the model entity for the WorkItem schema.
type WorkItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProcessID holds the value of the "process_id" field.
	ProcessID string `json:"process_id,omitempty"`
	// LoginID holds the value of the "login_id" field.
	LoginID string `json:"login_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Upstream article identifier from /article/{id}/ hrefs
	ArticleID string `json:"article_id,omitempty"`
	// PromptTemplateID holds the value of the "prompt_template_id" field.
	PromptTemplateID *string `json:"prompt_template_id,omitempty"`
	// LlmConfigID holds the value of the "llm_config_id" field.
	LlmConfigID *string `json:"llm_config_id,omitempty"`
	// ArticleTitle holds the value of the "article_title" field.
	ArticleTitle *string `json:"article_title,omitempty"`
	// ArticleAuthor holds the value of the "article_author" field.
	ArticleAuthor *string `json:"article_author,omitempty"`
	// Never inferred from the index page; filled from the detail page
	ArticleCategoryID *int `json:"article_category_id,omitempty"`
	// ArticleTaskID holds the value of the "article_task_id" field.
	ArticleTaskID *int `json:"article_task_id,omitempty"`
	// ArticleURL holds the value of the "article_url" field.
	ArticleURL *string `json:"article_url,omitempty"`
	// ArticleContent holds the value of the "article_content" field.
	ArticleContent *string `json:"article_content,omitempty"`
	// Raw article div with textarea children stripped
	ArticleHTML *string `json:"article_html,omitempty"`
	// ArticlePublishedAt holds the value of the "article_published_at" field.
	ArticlePublishedAt *time.Time `json:"article_published_at,omitempty"`
	// ArticleEditedAt holds the value of the "article_edited_at" field.
	ArticleEditedAt *time.Time `json:"article_edited_at,omitempty"`
	// ScrapedAt holds the value of the "scraped_at" field.
	ScrapedAt *time.Time `json:"scraped_at,omitempty"`
	// Always starts with the configured AI disclosure prefix
	CommentText *string `json:"comment_text,omitempty"`
	// LlmModelName holds the value of the "llm_model_name" field.
	LlmModelName *string `json:"llm_model_name,omitempty"`
	// LlmProviderName holds the value of the "llm_provider_name" field.
	LlmProviderName *string `json:"llm_provider_name,omitempty"`
	// GenerationTokens holds the value of the "generation_tokens" field.
	GenerationTokens *int `json:"generation_tokens,omitempty"`
	// GenerationTimeMs holds the value of the "generation_time_ms" field.
	GenerationTimeMs *int `json:"generation_time_ms,omitempty"`
	// Synthesised: {article_id}-{unix_seconds}-{item id prefix}
	UpstreamCommentID *string `json:"upstream_comment_id,omitempty"`
	// Status holds the value of the "status" field.
	Status workitem.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// PostedAt holds the value of the "posted_at" field.
	PostedAt *time.Time `json:"posted_at,omitempty"`
	// FailedAt holds the value of the "failed_at" field.
	FailedAt *time.Time `json:"failed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkItemQuery when eager-loading is set.
	Edges        WorkItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkItemEdges holds the relations/edges for other nodes in the graph.
type WorkItemEdges struct {
	// Process holds the value of the process edge.
	Process *Process `json:"process,omitempty"`
	// Login holds the value of the login edge.
	Login *UpstreamLogin `json:"login,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProcessOrErr returns the Process value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkItemEdges) ProcessOrErr() (*Process, error) {
	if e.Process != nil {
		return e.Process, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: process.Label}
	}
	return nil, &NotLoadedError{edge: "process"}
}

// LoginOrErr returns the Login value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkItemEdges) LoginOrErr() (*UpstreamLogin, error) {
	if e.Login != nil {
		return e.Login, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: upstreamlogin.Label}
	}
	return nil, &NotLoadedError{edge: "login"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workitem.FieldArticleCategoryID, workitem.FieldArticleTaskID, workitem.FieldGenerationTokens, workitem.FieldGenerationTimeMs, workitem.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case workitem.FieldID, workitem.FieldProcessID, workitem.FieldLoginID, workitem.FieldUserID, workitem.FieldArticleID, workitem.FieldPromptTemplateID, workitem.FieldLlmConfigID, workitem.FieldArticleTitle, workitem.FieldArticleAuthor, workitem.FieldArticleURL, workitem.FieldArticleContent, workitem.FieldArticleHTML, workitem.FieldCommentText, workitem.FieldLlmModelName, workitem.FieldLlmProviderName, workitem.FieldUpstreamCommentID, workitem.FieldStatus, workitem.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case workitem.FieldArticlePublishedAt, workitem.FieldArticleEditedAt, workitem.FieldScrapedAt, workitem.FieldCreatedAt, workitem.FieldPostedAt, workitem.FieldFailedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkItem fields.
func (_m *WorkItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workitem.FieldProcessID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field process_id", values[i])
			} else if value.Valid {
				_m.ProcessID = value.String
			}
		case workitem.FieldLoginID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field login_id", values[i])
			} else if value.Valid {
				_m.LoginID = value.String
			}
		case workitem.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case workitem.FieldArticleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				_m.ArticleID = value.String
			}
		case workitem.FieldPromptTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_template_id", values[i])
			} else if value.Valid {
				_m.PromptTemplateID = new(string)
				*_m.PromptTemplateID = value.String
			}
		case workitem.FieldLlmConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_config_id", values[i])
			} else if value.Valid {
				_m.LlmConfigID = new(string)
				*_m.LlmConfigID = value.String
			}
		case workitem.FieldArticleTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_title", values[i])
			} else if value.Valid {
				_m.ArticleTitle = new(string)
				*_m.ArticleTitle = value.String
			}
		case workitem.FieldArticleAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_author", values[i])
			} else if value.Valid {
				_m.ArticleAuthor = new(string)
				*_m.ArticleAuthor = value.String
			}
		case workitem.FieldArticleCategoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_category_id", values[i])
			} else if value.Valid {
				_m.ArticleCategoryID = new(int)
				*_m.ArticleCategoryID = int(value.Int64)
			}
		case workitem.FieldArticleTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_task_id", values[i])
			} else if value.Valid {
				_m.ArticleTaskID = new(int)
				*_m.ArticleTaskID = int(value.Int64)
			}
		case workitem.FieldArticleURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_url", values[i])
			} else if value.Valid {
				_m.ArticleURL = new(string)
				*_m.ArticleURL = value.String
			}
		case workitem.FieldArticleContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_content", values[i])
			} else if value.Valid {
				_m.ArticleContent = new(string)
				*_m.ArticleContent = value.String
			}
		case workitem.FieldArticleHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field article_html", values[i])
			} else if value.Valid {
				_m.ArticleHTML = new(string)
				*_m.ArticleHTML = value.String
			}
		case workitem.FieldArticlePublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field article_published_at", values[i])
			} else if value.Valid {
				_m.ArticlePublishedAt = new(time.Time)
				*_m.ArticlePublishedAt = value.Time
			}
		case workitem.FieldArticleEditedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field article_edited_at", values[i])
			} else if value.Valid {
				_m.ArticleEditedAt = new(time.Time)
				*_m.ArticleEditedAt = value.Time
			}
		case workitem.FieldScrapedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scraped_at", values[i])
			} else if value.Valid {
				_m.ScrapedAt = new(time.Time)
				*_m.ScrapedAt = value.Time
			}
		case workitem.FieldCommentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment_text", values[i])
			} else if value.Valid {
				_m.CommentText = new(string)
				*_m.CommentText = value.String
			}
		case workitem.FieldLlmModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model_name", values[i])
			} else if value.Valid {
				_m.LlmModelName = new(string)
				*_m.LlmModelName = value.String
			}
		case workitem.FieldLlmProviderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider_name", values[i])
			} else if value.Valid {
				_m.LlmProviderName = new(string)
				*_m.LlmProviderName = value.String
			}
		case workitem.FieldGenerationTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_tokens", values[i])
			} else if value.Valid {
				_m.GenerationTokens = new(int)
				*_m.GenerationTokens = int(value.Int64)
			}
		case workitem.FieldGenerationTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation_time_ms", values[i])
			} else if value.Valid {
				_m.GenerationTimeMs = new(int)
				*_m.GenerationTimeMs = int(value.Int64)
			}
		case workitem.FieldUpstreamCommentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upstream_comment_id", values[i])
			} else if value.Valid {
				_m.UpstreamCommentID = new(string)
				*_m.UpstreamCommentID = value.String
			}
		case workitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workitem.Status(value.String)
			}
		case workitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workitem.FieldPostedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field posted_at", values[i])
			} else if value.Valid {
				_m.PostedAt = new(time.Time)
				*_m.PostedAt = value.Time
			}
		case workitem.FieldFailedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field failed_at", values[i])
			} else if value.Valid {
				_m.FailedAt = new(time.Time)
				*_m.FailedAt = value.Time
			}
		case workitem.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workitem.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkItem.
// This includes values selected through modifiers, order, etc.
func (_m *WorkItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcess queries the "process" edge of the WorkItem entity.
func (_m *WorkItem) QueryProcess() *ProcessQuery {
	return NewWorkItemClient(_m.config).QueryProcess(_m)
}

// QueryLogin queries the "login" edge of the WorkItem entity.
func (_m *WorkItem) QueryLogin() *UpstreamLoginQuery {
	return NewWorkItemClient(_m.config).QueryLogin(_m)
}

// Update returns a builder for updating this WorkItem.
// Note that you need to call WorkItem.Unwrap() before calling this method if this WorkItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkItem) Update() *WorkItemUpdateOne {
	return NewWorkItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkItem) Unwrap() *WorkItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkItem) String() string {
	var builder strings.Builder
	builder.WriteString("WorkItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("process_id=")
	builder.WriteString(_m.ProcessID)
	builder.WriteString(", ")
	builder.WriteString("login_id=")
	builder.WriteString(_m.LoginID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(_m.ArticleID)
	builder.WriteString(", ")
	if v := _m.PromptTemplateID; v != nil {
		builder.WriteString("prompt_template_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmConfigID; v != nil {
		builder.WriteString("llm_config_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticleTitle; v != nil {
		builder.WriteString("article_title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticleAuthor; v != nil {
		builder.WriteString("article_author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticleCategoryID; v != nil {
		builder.WriteString("article_category_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ArticleTaskID; v != nil {
		builder.WriteString("article_task_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ArticleURL; v != nil {
		builder.WriteString("article_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticleContent; v != nil {
		builder.WriteString("article_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticleHTML; v != nil {
		builder.WriteString("article_html=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArticlePublishedAt; v != nil {
		builder.WriteString("article_published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ArticleEditedAt; v != nil {
		builder.WriteString("article_edited_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ScrapedAt; v != nil {
		builder.WriteString("scraped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CommentText; v != nil {
		builder.WriteString("comment_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmModelName; v != nil {
		builder.WriteString("llm_model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmProviderName; v != nil {
		builder.WriteString("llm_provider_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GenerationTokens; v != nil {
		builder.WriteString("generation_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GenerationTimeMs; v != nil {
		builder.WriteString("generation_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.UpstreamCommentID; v != nil {
		builder.WriteString("upstream_comment_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PostedAt; v != nil {
		builder.WriteString("posted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FailedAt; v != nil {
		builder.WriteString("failed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteByte(')')
	return builder.String()
}

// WorkItems is a parsable slice of WorkItem.
type WorkItems []*WorkItem
