// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
)

// UpstreamLogin is the model entity for the UpstreamLogin schema.
type UpstreamLogin struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Display name; never the upstream username
	Name string `json:"name,omitempty"`
	// UsernameEncrypted holds the value of the "username_encrypted" field.
	UsernameEncrypted string `json:"-"`
	// PasswordEncrypted holds the value of the "password_encrypted" field.
	PasswordEncrypted string `json:"-"`
	// Permits the out-of-pipeline backup feature; ignored here
	IsAdmin bool `json:"is_admin,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Bumped on successful authentication
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UpstreamLoginQuery when eager-loading is set.
	Edges        UpstreamLoginEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UpstreamLoginEdges holds the relations/edges for other nodes in the graph.
type UpstreamLoginEdges struct {
	// WorkItems holds the value of the work_items edge.
	WorkItems []*WorkItem `json:"work_items,omitempty"`
	// Processes holds the value of the processes edge.
	Processes []*Process `json:"processes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkItemsOrErr returns the WorkItems value or an error if the edge
// was not loaded in eager-loading.
func (e UpstreamLoginEdges) WorkItemsOrErr() ([]*WorkItem, error) {
	if e.loadedTypes[0] {
		return e.WorkItems, nil
	}
	return nil, &NotLoadedError{edge: "work_items"}
}

// ProcessesOrErr returns the Processes value or an error if the edge
// was not loaded in eager-loading.
func (e UpstreamLoginEdges) ProcessesOrErr() ([]*Process, error) {
	if e.loadedTypes[1] {
		return e.Processes, nil
	}
	return nil, &NotLoadedError{edge: "processes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UpstreamLogin) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case upstreamlogin.FieldIsAdmin, upstreamlogin.FieldIsActive:
			values[i] = new(sql.NullBool)
		case upstreamlogin.FieldID, upstreamlogin.FieldUserID, upstreamlogin.FieldName, upstreamlogin.FieldUsernameEncrypted, upstreamlogin.FieldPasswordEncrypted:
			values[i] = new(sql.NullString)
		case upstreamlogin.FieldLastUsedAt, upstreamlogin.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UpstreamLogin fields.
func (_m *UpstreamLogin) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case upstreamlogin.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case upstreamlogin.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case upstreamlogin.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case upstreamlogin.FieldUsernameEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username_encrypted", values[i])
			} else if value.Valid {
				_m.UsernameEncrypted = value.String
			}
		case upstreamlogin.FieldPasswordEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_encrypted", values[i])
			} else if value.Valid {
				_m.PasswordEncrypted = value.String
			}
		case upstreamlogin.FieldIsAdmin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_admin", values[i])
			} else if value.Valid {
				_m.IsAdmin = value.Bool
			}
		case upstreamlogin.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case upstreamlogin.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = new(time.Time)
				*_m.LastUsedAt = value.Time
			}
		case upstreamlogin.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UpstreamLogin.
// This includes values selected through modifiers, order, etc.
func (_m *UpstreamLogin) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkItems queries the "work_items" edge of the UpstreamLogin entity.
func (_m *UpstreamLogin) QueryWorkItems() *WorkItemQuery {
	return NewUpstreamLoginClient(_m.config).QueryWorkItems(_m)
}

// QueryProcesses queries the "processes" edge of the UpstreamLogin entity.
func (_m *UpstreamLogin) QueryProcesses() *ProcessQuery {
	return NewUpstreamLoginClient(_m.config).QueryProcesses(_m)
}

// Update returns a builder for updating this UpstreamLogin.
// Note that you need to call UpstreamLogin.Unwrap() before calling this method if this UpstreamLogin
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UpstreamLogin) Update() *UpstreamLoginUpdateOne {
	return NewUpstreamLoginClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UpstreamLogin entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UpstreamLogin) Unwrap() *UpstreamLogin {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UpstreamLogin is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UpstreamLogin) String() string {
	var builder strings.Builder
	builder.WriteString("UpstreamLogin(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("username_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("password_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("is_admin=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAdmin))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UpstreamLogins is a parsable slice of UpstreamLogin.
type UpstreamLogins []*UpstreamLogin
