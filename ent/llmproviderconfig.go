// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
)

// LLMProviderConfig is the model entity for the LLMProviderConfig schema.
type LLMProviderConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider llmproviderconfig.Provider `json:"provider,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// APIKeyEncrypted holds the value of the "api_key_encrypted" field.
	APIKeyEncrypted string `json:"-"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature float64 `json:"temperature,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMProviderConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmproviderconfig.FieldIsActive:
			values[i] = new(sql.NullBool)
		case llmproviderconfig.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case llmproviderconfig.FieldMaxTokens:
			values[i] = new(sql.NullInt64)
		case llmproviderconfig.FieldID, llmproviderconfig.FieldUserID, llmproviderconfig.FieldProvider, llmproviderconfig.FieldModelName, llmproviderconfig.FieldAPIKeyEncrypted:
			values[i] = new(sql.NullString)
		case llmproviderconfig.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMProviderConfig fields.
func (_m *LLMProviderConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmproviderconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llmproviderconfig.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case llmproviderconfig.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = llmproviderconfig.Provider(value.String)
			}
		case llmproviderconfig.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case llmproviderconfig.FieldAPIKeyEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_encrypted", values[i])
			} else if value.Valid {
				_m.APIKeyEncrypted = value.String
			}
		case llmproviderconfig.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case llmproviderconfig.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = value.Float64
			}
		case llmproviderconfig.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case llmproviderconfig.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LLMProviderConfig.
// This includes values selected through modifiers, order, etc.
func (_m *LLMProviderConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMProviderConfig.
// Note that you need to call LLMProviderConfig.Unwrap() before calling this method if this LLMProviderConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMProviderConfig) Update() *LLMProviderConfigUpdateOne {
	return NewLLMProviderConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMProviderConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMProviderConfig) Unwrap() *LLMProviderConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMProviderConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMProviderConfig) String() string {
	var builder strings.Builder
	builder.WriteString("LLMProviderConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("api_key_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temperature))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMProviderConfigs is a parsable slice of LLMProviderConfig.
type LLMProviderConfigs []*LLMProviderConfig
