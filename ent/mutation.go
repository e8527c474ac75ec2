// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMProviderConfig = "LLMProviderConfig"
	TypeProcess           = "Process"
	TypePromptTemplate    = "PromptTemplate"
	TypeUpstreamLogin     = "UpstreamLogin"
	TypeWorkItem          = "WorkItem"
)

// LLMProviderConfigMutation represents an operation that mutates the LLMProviderConfig nodes in the graph.
type LLMProviderConfigMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	provider          *llmproviderconfig.Provider
	model_name        *string
	api_key_encrypted *string
	max_tokens        *int
	addmax_tokens     *int
	temperature       *float64
	addtemperature    *float64
	is_active         *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*LLMProviderConfig, error)
	predicates        []predicate.LLMProviderConfig
}

var _ ent.Mutation = (*LLMProviderConfigMutation)(nil)

// llmproviderconfigOption allows management of the mutation configuration using functional options.
type llmproviderconfigOption func(*LLMProviderConfigMutation)

// newLLMProviderConfigMutation creates new mutation for the LLMProviderConfig entity.
func newLLMProviderConfigMutation(c config, op Op, opts ...llmproviderconfigOption) *LLMProviderConfigMutation {
	m := &LLMProviderConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMProviderConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMProviderConfigID sets the ID field of the mutation.
func withLLMProviderConfigID(id string) llmproviderconfigOption {
	return func(m *LLMProviderConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMProviderConfig
		)
		m.oldValue = func(ctx context.Context) (*LLMProviderConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMProviderConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMProviderConfig sets the old LLMProviderConfig of the mutation.
func withLLMProviderConfig(node *LLMProviderConfig) llmproviderconfigOption {
	return func(m *LLMProviderConfigMutation) {
		m.oldValue = func(context.Context) (*LLMProviderConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMProviderConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMProviderConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMProviderConfig entities.
func (m *LLMProviderConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMProviderConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMProviderConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMProviderConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LLMProviderConfigMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LLMProviderConfigMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LLMProviderConfigMutation) ResetUserID() {
	m.user_id = nil
}

// SetProvider sets the "provider" field.
func (m *LLMProviderConfigMutation) SetProvider(l llmproviderconfig.Provider) {
	m.provider = &l
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMProviderConfigMutation) Provider() (r llmproviderconfig.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldProvider(ctx context.Context) (v llmproviderconfig.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMProviderConfigMutation) ResetProvider() {
	m.provider = nil
}

// SetModelName sets the "model_name" field.
func (m *LLMProviderConfigMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *LLMProviderConfigMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *LLMProviderConfigMutation) ResetModelName() {
	m.model_name = nil
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (m *LLMProviderConfigMutation) SetAPIKeyEncrypted(s string) {
	m.api_key_encrypted = &s
}

// APIKeyEncrypted returns the value of the "api_key_encrypted" field in the mutation.
func (m *LLMProviderConfigMutation) APIKeyEncrypted() (r string, exists bool) {
	v := m.api_key_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyEncrypted returns the old "api_key_encrypted" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldAPIKeyEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyEncrypted: %w", err)
	}
	return oldValue.APIKeyEncrypted, nil
}

// ResetAPIKeyEncrypted resets all changes to the "api_key_encrypted" field.
func (m *LLMProviderConfigMutation) ResetAPIKeyEncrypted() {
	m.api_key_encrypted = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *LLMProviderConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *LLMProviderConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *LLMProviderConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *LLMProviderConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *LLMProviderConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetTemperature sets the "temperature" field.
func (m *LLMProviderConfigMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *LLMProviderConfigMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *LLMProviderConfigMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *LLMProviderConfigMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *LLMProviderConfigMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetIsActive sets the "is_active" field.
func (m *LLMProviderConfigMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *LLMProviderConfigMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *LLMProviderConfigMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMProviderConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMProviderConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMProviderConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMProviderConfigMutation builder.
func (m *LLMProviderConfigMutation) Where(ps ...predicate.LLMProviderConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMProviderConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMProviderConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMProviderConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMProviderConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMProviderConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMProviderConfig).
func (m *LLMProviderConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMProviderConfigMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, llmproviderconfig.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, llmproviderconfig.FieldProvider)
	}
	if m.model_name != nil {
		fields = append(fields, llmproviderconfig.FieldModelName)
	}
	if m.api_key_encrypted != nil {
		fields = append(fields, llmproviderconfig.FieldAPIKeyEncrypted)
	}
	if m.max_tokens != nil {
		fields = append(fields, llmproviderconfig.FieldMaxTokens)
	}
	if m.temperature != nil {
		fields = append(fields, llmproviderconfig.FieldTemperature)
	}
	if m.is_active != nil {
		fields = append(fields, llmproviderconfig.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, llmproviderconfig.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMProviderConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmproviderconfig.FieldUserID:
		return m.UserID()
	case llmproviderconfig.FieldProvider:
		return m.Provider()
	case llmproviderconfig.FieldModelName:
		return m.ModelName()
	case llmproviderconfig.FieldAPIKeyEncrypted:
		return m.APIKeyEncrypted()
	case llmproviderconfig.FieldMaxTokens:
		return m.MaxTokens()
	case llmproviderconfig.FieldTemperature:
		return m.Temperature()
	case llmproviderconfig.FieldIsActive:
		return m.IsActive()
	case llmproviderconfig.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMProviderConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmproviderconfig.FieldUserID:
		return m.OldUserID(ctx)
	case llmproviderconfig.FieldProvider:
		return m.OldProvider(ctx)
	case llmproviderconfig.FieldModelName:
		return m.OldModelName(ctx)
	case llmproviderconfig.FieldAPIKeyEncrypted:
		return m.OldAPIKeyEncrypted(ctx)
	case llmproviderconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case llmproviderconfig.FieldTemperature:
		return m.OldTemperature(ctx)
	case llmproviderconfig.FieldIsActive:
		return m.OldIsActive(ctx)
	case llmproviderconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMProviderConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMProviderConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmproviderconfig.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case llmproviderconfig.FieldProvider:
		v, ok := value.(llmproviderconfig.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmproviderconfig.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case llmproviderconfig.FieldAPIKeyEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyEncrypted(v)
		return nil
	case llmproviderconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case llmproviderconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case llmproviderconfig.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case llmproviderconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMProviderConfigMutation) AddedFields() []string {
	var fields []string
	if m.addmax_tokens != nil {
		fields = append(fields, llmproviderconfig.FieldMaxTokens)
	}
	if m.addtemperature != nil {
		fields = append(fields, llmproviderconfig.FieldTemperature)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMProviderConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmproviderconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	case llmproviderconfig.FieldTemperature:
		return m.AddedTemperature()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMProviderConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmproviderconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case llmproviderconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMProviderConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMProviderConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMProviderConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMProviderConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMProviderConfigMutation) ResetField(name string) error {
	switch name {
	case llmproviderconfig.FieldUserID:
		m.ResetUserID()
		return nil
	case llmproviderconfig.FieldProvider:
		m.ResetProvider()
		return nil
	case llmproviderconfig.FieldModelName:
		m.ResetModelName()
		return nil
	case llmproviderconfig.FieldAPIKeyEncrypted:
		m.ResetAPIKeyEncrypted()
		return nil
	case llmproviderconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case llmproviderconfig.FieldTemperature:
		m.ResetTemperature()
		return nil
	case llmproviderconfig.FieldIsActive:
		m.ResetIsActive()
		return nil
	case llmproviderconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMProviderConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMProviderConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMProviderConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMProviderConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMProviderConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMProviderConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMProviderConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMProviderConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMProviderConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMProviderConfig edge %s", name)
}

// ProcessMutation represents an operation that mutates the Process nodes in the graph.
type ProcessMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	user_id                 *string
	name                    *string
	description             *string
	status                  *process.Status
	max_duration_minutes    *int
	addmax_duration_minutes *int
	generate_only           *bool
	started_at              *time.Time
	stopped_at              *time.Time
	expires_at              *time.Time
	stop_reason             *string
	error_message           *string
	filter_tab              *string
	filter_category_id      *int
	addfilter_category_id   *int
	filter_task_id          *int
	addfilter_task_id       *int
	filter_search           *string
	filter_sort             *string
	article_limit           *int
	addarticle_limit        *int
	discovery_task_id       *string
	preparation_task_id     *string
	generation_task_id      *string
	posting_task_id         *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	work_items              map[string]struct{}
	removedwork_items       map[string]struct{}
	clearedwork_items       bool
	llm_config              *string
	clearedllm_config       bool
	logins                  map[string]struct{}
	removedlogins           map[string]struct{}
	clearedlogins           bool
	prompt_templates        map[string]struct{}
	removedprompt_templates map[string]struct{}
	clearedprompt_templates bool
	done                    bool
	oldValue                func(context.Context) (*Process, error)
	predicates              []predicate.Process
}

var _ ent.Mutation = (*ProcessMutation)(nil)

// processOption allows management of the mutation configuration using functional options.
type processOption func(*ProcessMutation)

// newProcessMutation creates new mutation for the Process entity.
func newProcessMutation(c config, op Op, opts ...processOption) *ProcessMutation {
	m := &ProcessMutation{
		config:        c,
		op:            op,
		typ:           TypeProcess,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessID sets the ID field of the mutation.
func withProcessID(id string) processOption {
	return func(m *ProcessMutation) {
		var (
			err   error
			once  sync.Once
			value *Process
		)
		m.oldValue = func(ctx context.Context) (*Process, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Process.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcess sets the old Process of the mutation.
func withProcess(node *Process) processOption {
	return func(m *ProcessMutation) {
		m.oldValue = func(context.Context) (*Process, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Process entities.
func (m *ProcessMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Process.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProcessMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProcessMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProcessMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *ProcessMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProcessMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProcessMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProcessMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProcessMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProcessMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[process.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProcessMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[process.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProcessMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, process.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *ProcessMutation) SetStatus(pr process.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessMutation) Status() (r process.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldStatus(ctx context.Context) (v process.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessMutation) ResetStatus() {
	m.status = nil
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (m *ProcessMutation) SetMaxDurationMinutes(i int) {
	m.max_duration_minutes = &i
	m.addmax_duration_minutes = nil
}

// MaxDurationMinutes returns the value of the "max_duration_minutes" field in the mutation.
func (m *ProcessMutation) MaxDurationMinutes() (r int, exists bool) {
	v := m.max_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDurationMinutes returns the old "max_duration_minutes" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldMaxDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDurationMinutes: %w", err)
	}
	return oldValue.MaxDurationMinutes, nil
}

// AddMaxDurationMinutes adds i to the "max_duration_minutes" field.
func (m *ProcessMutation) AddMaxDurationMinutes(i int) {
	if m.addmax_duration_minutes != nil {
		*m.addmax_duration_minutes += i
	} else {
		m.addmax_duration_minutes = &i
	}
}

// AddedMaxDurationMinutes returns the value that was added to the "max_duration_minutes" field in this mutation.
func (m *ProcessMutation) AddedMaxDurationMinutes() (r int, exists bool) {
	v := m.addmax_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDurationMinutes resets all changes to the "max_duration_minutes" field.
func (m *ProcessMutation) ResetMaxDurationMinutes() {
	m.max_duration_minutes = nil
	m.addmax_duration_minutes = nil
}

// SetGenerateOnly sets the "generate_only" field.
func (m *ProcessMutation) SetGenerateOnly(b bool) {
	m.generate_only = &b
}

// GenerateOnly returns the value of the "generate_only" field in the mutation.
func (m *ProcessMutation) GenerateOnly() (r bool, exists bool) {
	v := m.generate_only
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerateOnly returns the old "generate_only" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldGenerateOnly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerateOnly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerateOnly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerateOnly: %w", err)
	}
	return oldValue.GenerateOnly, nil
}

// ResetGenerateOnly resets all changes to the "generate_only" field.
func (m *ProcessMutation) ResetGenerateOnly() {
	m.generate_only = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProcessMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[process.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProcessMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[process.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, process.FieldStartedAt)
}

// SetStoppedAt sets the "stopped_at" field.
func (m *ProcessMutation) SetStoppedAt(t time.Time) {
	m.stopped_at = &t
}

// StoppedAt returns the value of the "stopped_at" field in the mutation.
func (m *ProcessMutation) StoppedAt() (r time.Time, exists bool) {
	v := m.stopped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStoppedAt returns the old "stopped_at" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldStoppedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoppedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoppedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoppedAt: %w", err)
	}
	return oldValue.StoppedAt, nil
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (m *ProcessMutation) ClearStoppedAt() {
	m.stopped_at = nil
	m.clearedFields[process.FieldStoppedAt] = struct{}{}
}

// StoppedAtCleared returns if the "stopped_at" field was cleared in this mutation.
func (m *ProcessMutation) StoppedAtCleared() bool {
	_, ok := m.clearedFields[process.FieldStoppedAt]
	return ok
}

// ResetStoppedAt resets all changes to the "stopped_at" field.
func (m *ProcessMutation) ResetStoppedAt() {
	m.stopped_at = nil
	delete(m.clearedFields, process.FieldStoppedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ProcessMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ProcessMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ProcessMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[process.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ProcessMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[process.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ProcessMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, process.FieldExpiresAt)
}

// SetStopReason sets the "stop_reason" field.
func (m *ProcessMutation) SetStopReason(s string) {
	m.stop_reason = &s
}

// StopReason returns the value of the "stop_reason" field in the mutation.
func (m *ProcessMutation) StopReason() (r string, exists bool) {
	v := m.stop_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStopReason returns the old "stop_reason" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldStopReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopReason: %w", err)
	}
	return oldValue.StopReason, nil
}

// ClearStopReason clears the value of the "stop_reason" field.
func (m *ProcessMutation) ClearStopReason() {
	m.stop_reason = nil
	m.clearedFields[process.FieldStopReason] = struct{}{}
}

// StopReasonCleared returns if the "stop_reason" field was cleared in this mutation.
func (m *ProcessMutation) StopReasonCleared() bool {
	_, ok := m.clearedFields[process.FieldStopReason]
	return ok
}

// ResetStopReason resets all changes to the "stop_reason" field.
func (m *ProcessMutation) ResetStopReason() {
	m.stop_reason = nil
	delete(m.clearedFields, process.FieldStopReason)
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[process.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[process.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, process.FieldErrorMessage)
}

// SetFilterTab sets the "filter_tab" field.
func (m *ProcessMutation) SetFilterTab(s string) {
	m.filter_tab = &s
}

// FilterTab returns the value of the "filter_tab" field in the mutation.
func (m *ProcessMutation) FilterTab() (r string, exists bool) {
	v := m.filter_tab
	if v == nil {
		return
	}
	return *v, true
}

// OldFilterTab returns the old "filter_tab" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldFilterTab(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilterTab is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilterTab requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilterTab: %w", err)
	}
	return oldValue.FilterTab, nil
}

// ClearFilterTab clears the value of the "filter_tab" field.
func (m *ProcessMutation) ClearFilterTab() {
	m.filter_tab = nil
	m.clearedFields[process.FieldFilterTab] = struct{}{}
}

// FilterTabCleared returns if the "filter_tab" field was cleared in this mutation.
func (m *ProcessMutation) FilterTabCleared() bool {
	_, ok := m.clearedFields[process.FieldFilterTab]
	return ok
}

// ResetFilterTab resets all changes to the "filter_tab" field.
func (m *ProcessMutation) ResetFilterTab() {
	m.filter_tab = nil
	delete(m.clearedFields, process.FieldFilterTab)
}

// SetFilterCategoryID sets the "filter_category_id" field.
func (m *ProcessMutation) SetFilterCategoryID(i int) {
	m.filter_category_id = &i
	m.addfilter_category_id = nil
}

// FilterCategoryID returns the value of the "filter_category_id" field in the mutation.
func (m *ProcessMutation) FilterCategoryID() (r int, exists bool) {
	v := m.filter_category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFilterCategoryID returns the old "filter_category_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldFilterCategoryID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilterCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilterCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilterCategoryID: %w", err)
	}
	return oldValue.FilterCategoryID, nil
}

// AddFilterCategoryID adds i to the "filter_category_id" field.
func (m *ProcessMutation) AddFilterCategoryID(i int) {
	if m.addfilter_category_id != nil {
		*m.addfilter_category_id += i
	} else {
		m.addfilter_category_id = &i
	}
}

// AddedFilterCategoryID returns the value that was added to the "filter_category_id" field in this mutation.
func (m *ProcessMutation) AddedFilterCategoryID() (r int, exists bool) {
	v := m.addfilter_category_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearFilterCategoryID clears the value of the "filter_category_id" field.
func (m *ProcessMutation) ClearFilterCategoryID() {
	m.filter_category_id = nil
	m.addfilter_category_id = nil
	m.clearedFields[process.FieldFilterCategoryID] = struct{}{}
}

// FilterCategoryIDCleared returns if the "filter_category_id" field was cleared in this mutation.
func (m *ProcessMutation) FilterCategoryIDCleared() bool {
	_, ok := m.clearedFields[process.FieldFilterCategoryID]
	return ok
}

// ResetFilterCategoryID resets all changes to the "filter_category_id" field.
func (m *ProcessMutation) ResetFilterCategoryID() {
	m.filter_category_id = nil
	m.addfilter_category_id = nil
	delete(m.clearedFields, process.FieldFilterCategoryID)
}

// SetFilterTaskID sets the "filter_task_id" field.
func (m *ProcessMutation) SetFilterTaskID(i int) {
	m.filter_task_id = &i
	m.addfilter_task_id = nil
}

// FilterTaskID returns the value of the "filter_task_id" field in the mutation.
func (m *ProcessMutation) FilterTaskID() (r int, exists bool) {
	v := m.filter_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFilterTaskID returns the old "filter_task_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldFilterTaskID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilterTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilterTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilterTaskID: %w", err)
	}
	return oldValue.FilterTaskID, nil
}

// AddFilterTaskID adds i to the "filter_task_id" field.
func (m *ProcessMutation) AddFilterTaskID(i int) {
	if m.addfilter_task_id != nil {
		*m.addfilter_task_id += i
	} else {
		m.addfilter_task_id = &i
	}
}

// AddedFilterTaskID returns the value that was added to the "filter_task_id" field in this mutation.
func (m *ProcessMutation) AddedFilterTaskID() (r int, exists bool) {
	v := m.addfilter_task_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearFilterTaskID clears the value of the "filter_task_id" field.
func (m *ProcessMutation) ClearFilterTaskID() {
	m.filter_task_id = nil
	m.addfilter_task_id = nil
	m.clearedFields[process.FieldFilterTaskID] = struct{}{}
}

// FilterTaskIDCleared returns if the "filter_task_id" field was cleared in this mutation.
func (m *ProcessMutation) FilterTaskIDCleared() bool {
	_, ok := m.clearedFields[process.FieldFilterTaskID]
	return ok
}

// ResetFilterTaskID resets all changes to the "filter_task_id" field.
func (m *ProcessMutation) ResetFilterTaskID() {
	m.filter_task_id = nil
	m.addfilter_task_id = nil
	delete(m.clearedFields, process.FieldFilterTaskID)
}

// SetFilterSearch sets the "filter_search" field.
func (m *ProcessMutation) SetFilterSearch(s string) {
	m.filter_search = &s
}

// FilterSearch returns the value of the "filter_search" field in the mutation.
func (m *ProcessMutation) FilterSearch() (r string, exists bool) {
	v := m.filter_search
	if v == nil {
		return
	}
	return *v, true
}

// OldFilterSearch returns the old "filter_search" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldFilterSearch(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilterSearch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilterSearch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilterSearch: %w", err)
	}
	return oldValue.FilterSearch, nil
}

// ClearFilterSearch clears the value of the "filter_search" field.
func (m *ProcessMutation) ClearFilterSearch() {
	m.filter_search = nil
	m.clearedFields[process.FieldFilterSearch] = struct{}{}
}

// FilterSearchCleared returns if the "filter_search" field was cleared in this mutation.
func (m *ProcessMutation) FilterSearchCleared() bool {
	_, ok := m.clearedFields[process.FieldFilterSearch]
	return ok
}

// ResetFilterSearch resets all changes to the "filter_search" field.
func (m *ProcessMutation) ResetFilterSearch() {
	m.filter_search = nil
	delete(m.clearedFields, process.FieldFilterSearch)
}

// SetFilterSort sets the "filter_sort" field.
func (m *ProcessMutation) SetFilterSort(s string) {
	m.filter_sort = &s
}

// FilterSort returns the value of the "filter_sort" field in the mutation.
func (m *ProcessMutation) FilterSort() (r string, exists bool) {
	v := m.filter_sort
	if v == nil {
		return
	}
	return *v, true
}

// OldFilterSort returns the old "filter_sort" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldFilterSort(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilterSort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilterSort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilterSort: %w", err)
	}
	return oldValue.FilterSort, nil
}

// ClearFilterSort clears the value of the "filter_sort" field.
func (m *ProcessMutation) ClearFilterSort() {
	m.filter_sort = nil
	m.clearedFields[process.FieldFilterSort] = struct{}{}
}

// FilterSortCleared returns if the "filter_sort" field was cleared in this mutation.
func (m *ProcessMutation) FilterSortCleared() bool {
	_, ok := m.clearedFields[process.FieldFilterSort]
	return ok
}

// ResetFilterSort resets all changes to the "filter_sort" field.
func (m *ProcessMutation) ResetFilterSort() {
	m.filter_sort = nil
	delete(m.clearedFields, process.FieldFilterSort)
}

// SetArticleLimit sets the "article_limit" field.
func (m *ProcessMutation) SetArticleLimit(i int) {
	m.article_limit = &i
	m.addarticle_limit = nil
}

// ArticleLimit returns the value of the "article_limit" field in the mutation.
func (m *ProcessMutation) ArticleLimit() (r int, exists bool) {
	v := m.article_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleLimit returns the old "article_limit" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldArticleLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleLimit: %w", err)
	}
	return oldValue.ArticleLimit, nil
}

// AddArticleLimit adds i to the "article_limit" field.
func (m *ProcessMutation) AddArticleLimit(i int) {
	if m.addarticle_limit != nil {
		*m.addarticle_limit += i
	} else {
		m.addarticle_limit = &i
	}
}

// AddedArticleLimit returns the value that was added to the "article_limit" field in this mutation.
func (m *ProcessMutation) AddedArticleLimit() (r int, exists bool) {
	v := m.addarticle_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleLimit resets all changes to the "article_limit" field.
func (m *ProcessMutation) ResetArticleLimit() {
	m.article_limit = nil
	m.addarticle_limit = nil
}

// SetDiscoveryTaskID sets the "discovery_task_id" field.
func (m *ProcessMutation) SetDiscoveryTaskID(s string) {
	m.discovery_task_id = &s
}

// DiscoveryTaskID returns the value of the "discovery_task_id" field in the mutation.
func (m *ProcessMutation) DiscoveryTaskID() (r string, exists bool) {
	v := m.discovery_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveryTaskID returns the old "discovery_task_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldDiscoveryTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveryTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveryTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveryTaskID: %w", err)
	}
	return oldValue.DiscoveryTaskID, nil
}

// ClearDiscoveryTaskID clears the value of the "discovery_task_id" field.
func (m *ProcessMutation) ClearDiscoveryTaskID() {
	m.discovery_task_id = nil
	m.clearedFields[process.FieldDiscoveryTaskID] = struct{}{}
}

// DiscoveryTaskIDCleared returns if the "discovery_task_id" field was cleared in this mutation.
func (m *ProcessMutation) DiscoveryTaskIDCleared() bool {
	_, ok := m.clearedFields[process.FieldDiscoveryTaskID]
	return ok
}

// ResetDiscoveryTaskID resets all changes to the "discovery_task_id" field.
func (m *ProcessMutation) ResetDiscoveryTaskID() {
	m.discovery_task_id = nil
	delete(m.clearedFields, process.FieldDiscoveryTaskID)
}

// SetPreparationTaskID sets the "preparation_task_id" field.
func (m *ProcessMutation) SetPreparationTaskID(s string) {
	m.preparation_task_id = &s
}

// PreparationTaskID returns the value of the "preparation_task_id" field in the mutation.
func (m *ProcessMutation) PreparationTaskID() (r string, exists bool) {
	v := m.preparation_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPreparationTaskID returns the old "preparation_task_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldPreparationTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreparationTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreparationTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreparationTaskID: %w", err)
	}
	return oldValue.PreparationTaskID, nil
}

// ClearPreparationTaskID clears the value of the "preparation_task_id" field.
func (m *ProcessMutation) ClearPreparationTaskID() {
	m.preparation_task_id = nil
	m.clearedFields[process.FieldPreparationTaskID] = struct{}{}
}

// PreparationTaskIDCleared returns if the "preparation_task_id" field was cleared in this mutation.
func (m *ProcessMutation) PreparationTaskIDCleared() bool {
	_, ok := m.clearedFields[process.FieldPreparationTaskID]
	return ok
}

// ResetPreparationTaskID resets all changes to the "preparation_task_id" field.
func (m *ProcessMutation) ResetPreparationTaskID() {
	m.preparation_task_id = nil
	delete(m.clearedFields, process.FieldPreparationTaskID)
}

// SetGenerationTaskID sets the "generation_task_id" field.
func (m *ProcessMutation) SetGenerationTaskID(s string) {
	m.generation_task_id = &s
}

// GenerationTaskID returns the value of the "generation_task_id" field in the mutation.
func (m *ProcessMutation) GenerationTaskID() (r string, exists bool) {
	v := m.generation_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTaskID returns the old "generation_task_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldGenerationTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTaskID: %w", err)
	}
	return oldValue.GenerationTaskID, nil
}

// ClearGenerationTaskID clears the value of the "generation_task_id" field.
func (m *ProcessMutation) ClearGenerationTaskID() {
	m.generation_task_id = nil
	m.clearedFields[process.FieldGenerationTaskID] = struct{}{}
}

// GenerationTaskIDCleared returns if the "generation_task_id" field was cleared in this mutation.
func (m *ProcessMutation) GenerationTaskIDCleared() bool {
	_, ok := m.clearedFields[process.FieldGenerationTaskID]
	return ok
}

// ResetGenerationTaskID resets all changes to the "generation_task_id" field.
func (m *ProcessMutation) ResetGenerationTaskID() {
	m.generation_task_id = nil
	delete(m.clearedFields, process.FieldGenerationTaskID)
}

// SetPostingTaskID sets the "posting_task_id" field.
func (m *ProcessMutation) SetPostingTaskID(s string) {
	m.posting_task_id = &s
}

// PostingTaskID returns the value of the "posting_task_id" field in the mutation.
func (m *ProcessMutation) PostingTaskID() (r string, exists bool) {
	v := m.posting_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPostingTaskID returns the old "posting_task_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldPostingTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostingTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostingTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostingTaskID: %w", err)
	}
	return oldValue.PostingTaskID, nil
}

// ClearPostingTaskID clears the value of the "posting_task_id" field.
func (m *ProcessMutation) ClearPostingTaskID() {
	m.posting_task_id = nil
	m.clearedFields[process.FieldPostingTaskID] = struct{}{}
}

// PostingTaskIDCleared returns if the "posting_task_id" field was cleared in this mutation.
func (m *ProcessMutation) PostingTaskIDCleared() bool {
	_, ok := m.clearedFields[process.FieldPostingTaskID]
	return ok
}

// ResetPostingTaskID resets all changes to the "posting_task_id" field.
func (m *ProcessMutation) ResetPostingTaskID() {
	m.posting_task_id = nil
	delete(m.clearedFields, process.FieldPostingTaskID)
}

// SetLlmConfigID sets the "llm_config_id" field.
func (m *ProcessMutation) SetLlmConfigID(s string) {
	m.llm_config = &s
}

// LlmConfigID returns the value of the "llm_config_id" field in the mutation.
func (m *ProcessMutation) LlmConfigID() (r string, exists bool) {
	v := m.llm_config
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmConfigID returns the old "llm_config_id" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldLlmConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmConfigID: %w", err)
	}
	return oldValue.LlmConfigID, nil
}

// ResetLlmConfigID resets all changes to the "llm_config_id" field.
func (m *ProcessMutation) ResetLlmConfigID() {
	m.llm_config = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Process entity.
// If the Process object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by ids.
func (m *ProcessMutation) AddWorkItemIDs(ids ...string) {
	if m.work_items == nil {
		m.work_items = make(map[string]struct{})
	}
	for i := range ids {
		m.work_items[ids[i]] = struct{}{}
	}
}

// ClearWorkItems clears the "work_items" edge to the WorkItem entity.
func (m *ProcessMutation) ClearWorkItems() {
	m.clearedwork_items = true
}

// WorkItemsCleared reports if the "work_items" edge to the WorkItem entity was cleared.
func (m *ProcessMutation) WorkItemsCleared() bool {
	return m.clearedwork_items
}

// RemoveWorkItemIDs removes the "work_items" edge to the WorkItem entity by IDs.
func (m *ProcessMutation) RemoveWorkItemIDs(ids ...string) {
	if m.removedwork_items == nil {
		m.removedwork_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.work_items, ids[i])
		m.removedwork_items[ids[i]] = struct{}{}
	}
}

// RemovedWorkItems returns the removed IDs of the "work_items" edge to the WorkItem entity.
func (m *ProcessMutation) RemovedWorkItemsIDs() (ids []string) {
	for id := range m.removedwork_items {
		ids = append(ids, id)
	}
	return
}

// WorkItemsIDs returns the "work_items" edge IDs in the mutation.
func (m *ProcessMutation) WorkItemsIDs() (ids []string) {
	for id := range m.work_items {
		ids = append(ids, id)
	}
	return
}

// ResetWorkItems resets all changes to the "work_items" edge.
func (m *ProcessMutation) ResetWorkItems() {
	m.work_items = nil
	m.clearedwork_items = false
	m.removedwork_items = nil
}

// ClearLlmConfig clears the "llm_config" edge to the LLMProviderConfig entity.
func (m *ProcessMutation) ClearLlmConfig() {
	m.clearedllm_config = true
	m.clearedFields[process.FieldLlmConfigID] = struct{}{}
}

// LlmConfigCleared reports if the "llm_config" edge to the LLMProviderConfig entity was cleared.
func (m *ProcessMutation) LlmConfigCleared() bool {
	return m.clearedllm_config
}

// LlmConfigIDs returns the "llm_config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LlmConfigID instead. It exists only for internal usage by the builders.
func (m *ProcessMutation) LlmConfigIDs() (ids []string) {
	if id := m.llm_config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLlmConfig resets all changes to the "llm_config" edge.
func (m *ProcessMutation) ResetLlmConfig() {
	m.llm_config = nil
	m.clearedllm_config = false
}

// AddLoginIDs adds the "logins" edge to the UpstreamLogin entity by ids.
func (m *ProcessMutation) AddLoginIDs(ids ...string) {
	if m.logins == nil {
		m.logins = make(map[string]struct{})
	}
	for i := range ids {
		m.logins[ids[i]] = struct{}{}
	}
}

// ClearLogins clears the "logins" edge to the UpstreamLogin entity.
func (m *ProcessMutation) ClearLogins() {
	m.clearedlogins = true
}

// LoginsCleared reports if the "logins" edge to the UpstreamLogin entity was cleared.
func (m *ProcessMutation) LoginsCleared() bool {
	return m.clearedlogins
}

// RemoveLoginIDs removes the "logins" edge to the UpstreamLogin entity by IDs.
func (m *ProcessMutation) RemoveLoginIDs(ids ...string) {
	if m.removedlogins == nil {
		m.removedlogins = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.logins, ids[i])
		m.removedlogins[ids[i]] = struct{}{}
	}
}

// RemovedLogins returns the removed IDs of the "logins" edge to the UpstreamLogin entity.
func (m *ProcessMutation) RemovedLoginsIDs() (ids []string) {
	for id := range m.removedlogins {
		ids = append(ids, id)
	}
	return
}

// LoginsIDs returns the "logins" edge IDs in the mutation.
func (m *ProcessMutation) LoginsIDs() (ids []string) {
	for id := range m.logins {
		ids = append(ids, id)
	}
	return
}

// ResetLogins resets all changes to the "logins" edge.
func (m *ProcessMutation) ResetLogins() {
	m.logins = nil
	m.clearedlogins = false
	m.removedlogins = nil
}

// AddPromptTemplateIDs adds the "prompt_templates" edge to the PromptTemplate entity by ids.
func (m *ProcessMutation) AddPromptTemplateIDs(ids ...string) {
	if m.prompt_templates == nil {
		m.prompt_templates = make(map[string]struct{})
	}
	for i := range ids {
		m.prompt_templates[ids[i]] = struct{}{}
	}
}

// ClearPromptTemplates clears the "prompt_templates" edge to the PromptTemplate entity.
func (m *ProcessMutation) ClearPromptTemplates() {
	m.clearedprompt_templates = true
}

// PromptTemplatesCleared reports if the "prompt_templates" edge to the PromptTemplate entity was cleared.
func (m *ProcessMutation) PromptTemplatesCleared() bool {
	return m.clearedprompt_templates
}

// RemovePromptTemplateIDs removes the "prompt_templates" edge to the PromptTemplate entity by IDs.
func (m *ProcessMutation) RemovePromptTemplateIDs(ids ...string) {
	if m.removedprompt_templates == nil {
		m.removedprompt_templates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.prompt_templates, ids[i])
		m.removedprompt_templates[ids[i]] = struct{}{}
	}
}

// RemovedPromptTemplates returns the removed IDs of the "prompt_templates" edge to the PromptTemplate entity.
func (m *ProcessMutation) RemovedPromptTemplatesIDs() (ids []string) {
	for id := range m.removedprompt_templates {
		ids = append(ids, id)
	}
	return
}

// PromptTemplatesIDs returns the "prompt_templates" edge IDs in the mutation.
func (m *ProcessMutation) PromptTemplatesIDs() (ids []string) {
	for id := range m.prompt_templates {
		ids = append(ids, id)
	}
	return
}

// ResetPromptTemplates resets all changes to the "prompt_templates" edge.
func (m *ProcessMutation) ResetPromptTemplates() {
	m.prompt_templates = nil
	m.clearedprompt_templates = false
	m.removedprompt_templates = nil
}

// Where appends a list predicates to the ProcessMutation builder.
func (m *ProcessMutation) Where(ps ...predicate.Process) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Process, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Process).
func (m *ProcessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.user_id != nil {
		fields = append(fields, process.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, process.FieldName)
	}
	if m.description != nil {
		fields = append(fields, process.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, process.FieldStatus)
	}
	if m.max_duration_minutes != nil {
		fields = append(fields, process.FieldMaxDurationMinutes)
	}
	if m.generate_only != nil {
		fields = append(fields, process.FieldGenerateOnly)
	}
	if m.started_at != nil {
		fields = append(fields, process.FieldStartedAt)
	}
	if m.stopped_at != nil {
		fields = append(fields, process.FieldStoppedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, process.FieldExpiresAt)
	}
	if m.stop_reason != nil {
		fields = append(fields, process.FieldStopReason)
	}
	if m.error_message != nil {
		fields = append(fields, process.FieldErrorMessage)
	}
	if m.filter_tab != nil {
		fields = append(fields, process.FieldFilterTab)
	}
	if m.filter_category_id != nil {
		fields = append(fields, process.FieldFilterCategoryID)
	}
	if m.filter_task_id != nil {
		fields = append(fields, process.FieldFilterTaskID)
	}
	if m.filter_search != nil {
		fields = append(fields, process.FieldFilterSearch)
	}
	if m.filter_sort != nil {
		fields = append(fields, process.FieldFilterSort)
	}
	if m.article_limit != nil {
		fields = append(fields, process.FieldArticleLimit)
	}
	if m.discovery_task_id != nil {
		fields = append(fields, process.FieldDiscoveryTaskID)
	}
	if m.preparation_task_id != nil {
		fields = append(fields, process.FieldPreparationTaskID)
	}
	if m.generation_task_id != nil {
		fields = append(fields, process.FieldGenerationTaskID)
	}
	if m.posting_task_id != nil {
		fields = append(fields, process.FieldPostingTaskID)
	}
	if m.llm_config != nil {
		fields = append(fields, process.FieldLlmConfigID)
	}
	if m.created_at != nil {
		fields = append(fields, process.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case process.FieldUserID:
		return m.UserID()
	case process.FieldName:
		return m.Name()
	case process.FieldDescription:
		return m.Description()
	case process.FieldStatus:
		return m.Status()
	case process.FieldMaxDurationMinutes:
		return m.MaxDurationMinutes()
	case process.FieldGenerateOnly:
		return m.GenerateOnly()
	case process.FieldStartedAt:
		return m.StartedAt()
	case process.FieldStoppedAt:
		return m.StoppedAt()
	case process.FieldExpiresAt:
		return m.ExpiresAt()
	case process.FieldStopReason:
		return m.StopReason()
	case process.FieldErrorMessage:
		return m.ErrorMessage()
	case process.FieldFilterTab:
		return m.FilterTab()
	case process.FieldFilterCategoryID:
		return m.FilterCategoryID()
	case process.FieldFilterTaskID:
		return m.FilterTaskID()
	case process.FieldFilterSearch:
		return m.FilterSearch()
	case process.FieldFilterSort:
		return m.FilterSort()
	case process.FieldArticleLimit:
		return m.ArticleLimit()
	case process.FieldDiscoveryTaskID:
		return m.DiscoveryTaskID()
	case process.FieldPreparationTaskID:
		return m.PreparationTaskID()
	case process.FieldGenerationTaskID:
		return m.GenerationTaskID()
	case process.FieldPostingTaskID:
		return m.PostingTaskID()
	case process.FieldLlmConfigID:
		return m.LlmConfigID()
	case process.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case process.FieldUserID:
		return m.OldUserID(ctx)
	case process.FieldName:
		return m.OldName(ctx)
	case process.FieldDescription:
		return m.OldDescription(ctx)
	case process.FieldStatus:
		return m.OldStatus(ctx)
	case process.FieldMaxDurationMinutes:
		return m.OldMaxDurationMinutes(ctx)
	case process.FieldGenerateOnly:
		return m.OldGenerateOnly(ctx)
	case process.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case process.FieldStoppedAt:
		return m.OldStoppedAt(ctx)
	case process.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case process.FieldStopReason:
		return m.OldStopReason(ctx)
	case process.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case process.FieldFilterTab:
		return m.OldFilterTab(ctx)
	case process.FieldFilterCategoryID:
		return m.OldFilterCategoryID(ctx)
	case process.FieldFilterTaskID:
		return m.OldFilterTaskID(ctx)
	case process.FieldFilterSearch:
		return m.OldFilterSearch(ctx)
	case process.FieldFilterSort:
		return m.OldFilterSort(ctx)
	case process.FieldArticleLimit:
		return m.OldArticleLimit(ctx)
	case process.FieldDiscoveryTaskID:
		return m.OldDiscoveryTaskID(ctx)
	case process.FieldPreparationTaskID:
		return m.OldPreparationTaskID(ctx)
	case process.FieldGenerationTaskID:
		return m.OldGenerationTaskID(ctx)
	case process.FieldPostingTaskID:
		return m.OldPostingTaskID(ctx)
	case process.FieldLlmConfigID:
		return m.OldLlmConfigID(ctx)
	case process.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Process field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case process.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case process.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case process.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case process.FieldStatus:
		v, ok := value.(process.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case process.FieldMaxDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDurationMinutes(v)
		return nil
	case process.FieldGenerateOnly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerateOnly(v)
		return nil
	case process.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case process.FieldStoppedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoppedAt(v)
		return nil
	case process.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case process.FieldStopReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopReason(v)
		return nil
	case process.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case process.FieldFilterTab:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilterTab(v)
		return nil
	case process.FieldFilterCategoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilterCategoryID(v)
		return nil
	case process.FieldFilterTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilterTaskID(v)
		return nil
	case process.FieldFilterSearch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilterSearch(v)
		return nil
	case process.FieldFilterSort:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilterSort(v)
		return nil
	case process.FieldArticleLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleLimit(v)
		return nil
	case process.FieldDiscoveryTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveryTaskID(v)
		return nil
	case process.FieldPreparationTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreparationTaskID(v)
		return nil
	case process.FieldGenerationTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTaskID(v)
		return nil
	case process.FieldPostingTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostingTaskID(v)
		return nil
	case process.FieldLlmConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmConfigID(v)
		return nil
	case process.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Process field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessMutation) AddedFields() []string {
	var fields []string
	if m.addmax_duration_minutes != nil {
		fields = append(fields, process.FieldMaxDurationMinutes)
	}
	if m.addfilter_category_id != nil {
		fields = append(fields, process.FieldFilterCategoryID)
	}
	if m.addfilter_task_id != nil {
		fields = append(fields, process.FieldFilterTaskID)
	}
	if m.addarticle_limit != nil {
		fields = append(fields, process.FieldArticleLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case process.FieldMaxDurationMinutes:
		return m.AddedMaxDurationMinutes()
	case process.FieldFilterCategoryID:
		return m.AddedFilterCategoryID()
	case process.FieldFilterTaskID:
		return m.AddedFilterTaskID()
	case process.FieldArticleLimit:
		return m.AddedArticleLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessMutation) AddField(name string, value ent.Value) error {
	switch name {
	case process.FieldMaxDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDurationMinutes(v)
		return nil
	case process.FieldFilterCategoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFilterCategoryID(v)
		return nil
	case process.FieldFilterTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFilterTaskID(v)
		return nil
	case process.FieldArticleLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleLimit(v)
		return nil
	}
	return fmt.Errorf("unknown Process numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(process.FieldDescription) {
		fields = append(fields, process.FieldDescription)
	}
	if m.FieldCleared(process.FieldStartedAt) {
		fields = append(fields, process.FieldStartedAt)
	}
	if m.FieldCleared(process.FieldStoppedAt) {
		fields = append(fields, process.FieldStoppedAt)
	}
	if m.FieldCleared(process.FieldExpiresAt) {
		fields = append(fields, process.FieldExpiresAt)
	}
	if m.FieldCleared(process.FieldStopReason) {
		fields = append(fields, process.FieldStopReason)
	}
	if m.FieldCleared(process.FieldErrorMessage) {
		fields = append(fields, process.FieldErrorMessage)
	}
	if m.FieldCleared(process.FieldFilterTab) {
		fields = append(fields, process.FieldFilterTab)
	}
	if m.FieldCleared(process.FieldFilterCategoryID) {
		fields = append(fields, process.FieldFilterCategoryID)
	}
	if m.FieldCleared(process.FieldFilterTaskID) {
		fields = append(fields, process.FieldFilterTaskID)
	}
	if m.FieldCleared(process.FieldFilterSearch) {
		fields = append(fields, process.FieldFilterSearch)
	}
	if m.FieldCleared(process.FieldFilterSort) {
		fields = append(fields, process.FieldFilterSort)
	}
	if m.FieldCleared(process.FieldDiscoveryTaskID) {
		fields = append(fields, process.FieldDiscoveryTaskID)
	}
	if m.FieldCleared(process.FieldPreparationTaskID) {
		fields = append(fields, process.FieldPreparationTaskID)
	}
	if m.FieldCleared(process.FieldGenerationTaskID) {
		fields = append(fields, process.FieldGenerationTaskID)
	}
	if m.FieldCleared(process.FieldPostingTaskID) {
		fields = append(fields, process.FieldPostingTaskID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessMutation) ClearField(name string) error {
	switch name {
	case process.FieldDescription:
		m.ClearDescription()
		return nil
	case process.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case process.FieldStoppedAt:
		m.ClearStoppedAt()
		return nil
	case process.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case process.FieldStopReason:
		m.ClearStopReason()
		return nil
	case process.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case process.FieldFilterTab:
		m.ClearFilterTab()
		return nil
	case process.FieldFilterCategoryID:
		m.ClearFilterCategoryID()
		return nil
	case process.FieldFilterTaskID:
		m.ClearFilterTaskID()
		return nil
	case process.FieldFilterSearch:
		m.ClearFilterSearch()
		return nil
	case process.FieldFilterSort:
		m.ClearFilterSort()
		return nil
	case process.FieldDiscoveryTaskID:
		m.ClearDiscoveryTaskID()
		return nil
	case process.FieldPreparationTaskID:
		m.ClearPreparationTaskID()
		return nil
	case process.FieldGenerationTaskID:
		m.ClearGenerationTaskID()
		return nil
	case process.FieldPostingTaskID:
		m.ClearPostingTaskID()
		return nil
	}
	return fmt.Errorf("unknown Process nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessMutation) ResetField(name string) error {
	switch name {
	case process.FieldUserID:
		m.ResetUserID()
		return nil
	case process.FieldName:
		m.ResetName()
		return nil
	case process.FieldDescription:
		m.ResetDescription()
		return nil
	case process.FieldStatus:
		m.ResetStatus()
		return nil
	case process.FieldMaxDurationMinutes:
		m.ResetMaxDurationMinutes()
		return nil
	case process.FieldGenerateOnly:
		m.ResetGenerateOnly()
		return nil
	case process.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case process.FieldStoppedAt:
		m.ResetStoppedAt()
		return nil
	case process.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case process.FieldStopReason:
		m.ResetStopReason()
		return nil
	case process.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case process.FieldFilterTab:
		m.ResetFilterTab()
		return nil
	case process.FieldFilterCategoryID:
		m.ResetFilterCategoryID()
		return nil
	case process.FieldFilterTaskID:
		m.ResetFilterTaskID()
		return nil
	case process.FieldFilterSearch:
		m.ResetFilterSearch()
		return nil
	case process.FieldFilterSort:
		m.ResetFilterSort()
		return nil
	case process.FieldArticleLimit:
		m.ResetArticleLimit()
		return nil
	case process.FieldDiscoveryTaskID:
		m.ResetDiscoveryTaskID()
		return nil
	case process.FieldPreparationTaskID:
		m.ResetPreparationTaskID()
		return nil
	case process.FieldGenerationTaskID:
		m.ResetGenerationTaskID()
		return nil
	case process.FieldPostingTaskID:
		m.ResetPostingTaskID()
		return nil
	case process.FieldLlmConfigID:
		m.ResetLlmConfigID()
		return nil
	case process.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Process field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.work_items != nil {
		edges = append(edges, process.EdgeWorkItems)
	}
	if m.llm_config != nil {
		edges = append(edges, process.EdgeLlmConfig)
	}
	if m.logins != nil {
		edges = append(edges, process.EdgeLogins)
	}
	if m.prompt_templates != nil {
		edges = append(edges, process.EdgePromptTemplates)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case process.EdgeWorkItems:
		ids := make([]ent.Value, 0, len(m.work_items))
		for id := range m.work_items {
			ids = append(ids, id)
		}
		return ids
	case process.EdgeLlmConfig:
		if id := m.llm_config; id != nil {
			return []ent.Value{*id}
		}
	case process.EdgeLogins:
		ids := make([]ent.Value, 0, len(m.logins))
		for id := range m.logins {
			ids = append(ids, id)
		}
		return ids
	case process.EdgePromptTemplates:
		ids := make([]ent.Value, 0, len(m.prompt_templates))
		for id := range m.prompt_templates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedwork_items != nil {
		edges = append(edges, process.EdgeWorkItems)
	}
	if m.removedlogins != nil {
		edges = append(edges, process.EdgeLogins)
	}
	if m.removedprompt_templates != nil {
		edges = append(edges, process.EdgePromptTemplates)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case process.EdgeWorkItems:
		ids := make([]ent.Value, 0, len(m.removedwork_items))
		for id := range m.removedwork_items {
			ids = append(ids, id)
		}
		return ids
	case process.EdgeLogins:
		ids := make([]ent.Value, 0, len(m.removedlogins))
		for id := range m.removedlogins {
			ids = append(ids, id)
		}
		return ids
	case process.EdgePromptTemplates:
		ids := make([]ent.Value, 0, len(m.removedprompt_templates))
		for id := range m.removedprompt_templates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedwork_items {
		edges = append(edges, process.EdgeWorkItems)
	}
	if m.clearedllm_config {
		edges = append(edges, process.EdgeLlmConfig)
	}
	if m.clearedlogins {
		edges = append(edges, process.EdgeLogins)
	}
	if m.clearedprompt_templates {
		edges = append(edges, process.EdgePromptTemplates)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessMutation) EdgeCleared(name string) bool {
	switch name {
	case process.EdgeWorkItems:
		return m.clearedwork_items
	case process.EdgeLlmConfig:
		return m.clearedllm_config
	case process.EdgeLogins:
		return m.clearedlogins
	case process.EdgePromptTemplates:
		return m.clearedprompt_templates
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessMutation) ClearEdge(name string) error {
	switch name {
	case process.EdgeLlmConfig:
		m.ClearLlmConfig()
		return nil
	}
	return fmt.Errorf("unknown Process unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessMutation) ResetEdge(name string) error {
	switch name {
	case process.EdgeWorkItems:
		m.ResetWorkItems()
		return nil
	case process.EdgeLlmConfig:
		m.ResetLlmConfig()
		return nil
	case process.EdgeLogins:
		m.ResetLogins()
		return nil
	case process.EdgePromptTemplates:
		m.ResetPromptTemplates()
		return nil
	}
	return fmt.Errorf("unknown Process edge %s", name)
}

// PromptTemplateMutation represents an operation that mutates the PromptTemplate nodes in the graph.
type PromptTemplateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	user_id              *string
	category             *prompttemplate.Category
	name                 *string
	description          *string
	system_prompt        *string
	user_prompt_template *string
	is_active            *bool
	created_at           *time.Time
	clearedFields        map[string]struct{}
	processes            map[string]struct{}
	removedprocesses     map[string]struct{}
	clearedprocesses     bool
	done                 bool
	oldValue             func(context.Context) (*PromptTemplate, error)
	predicates           []predicate.PromptTemplate
}

var _ ent.Mutation = (*PromptTemplateMutation)(nil)

// prompttemplateOption allows management of the mutation configuration using functional options.
type prompttemplateOption func(*PromptTemplateMutation)

// newPromptTemplateMutation creates new mutation for the PromptTemplate entity.
func newPromptTemplateMutation(c config, op Op, opts ...prompttemplateOption) *PromptTemplateMutation {
	m := &PromptTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypePromptTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptTemplateID sets the ID field of the mutation.
func withPromptTemplateID(id string) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptTemplate
		)
		m.oldValue = func(ctx context.Context) (*PromptTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptTemplate sets the old PromptTemplate of the mutation.
func withPromptTemplate(node *PromptTemplate) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		m.oldValue = func(context.Context) (*PromptTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptTemplate entities.
func (m *PromptTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PromptTemplateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PromptTemplateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *PromptTemplateMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[prompttemplate.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *PromptTemplateMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[prompttemplate.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PromptTemplateMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, prompttemplate.FieldUserID)
}

// SetCategory sets the "category" field.
func (m *PromptTemplateMutation) SetCategory(pr prompttemplate.Category) {
	m.category = &pr
}

// Category returns the value of the "category" field in the mutation.
func (m *PromptTemplateMutation) Category() (r prompttemplate.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCategory(ctx context.Context) (v prompttemplate.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *PromptTemplateMutation) ResetCategory() {
	m.category = nil
}

// SetName sets the "name" field.
func (m *PromptTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptTemplateMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *PromptTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PromptTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PromptTemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[prompttemplate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PromptTemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[prompttemplate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PromptTemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, prompttemplate.FieldDescription)
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *PromptTemplateMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *PromptTemplateMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *PromptTemplateMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (m *PromptTemplateMutation) SetUserPromptTemplate(s string) {
	m.user_prompt_template = &s
}

// UserPromptTemplate returns the value of the "user_prompt_template" field in the mutation.
func (m *PromptTemplateMutation) UserPromptTemplate() (r string, exists bool) {
	v := m.user_prompt_template
	if v == nil {
		return
	}
	return *v, true
}

// OldUserPromptTemplate returns the old "user_prompt_template" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldUserPromptTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserPromptTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserPromptTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserPromptTemplate: %w", err)
	}
	return oldValue.UserPromptTemplate, nil
}

// ResetUserPromptTemplate resets all changes to the "user_prompt_template" field.
func (m *PromptTemplateMutation) ResetUserPromptTemplate() {
	m.user_prompt_template = nil
}

// SetIsActive sets the "is_active" field.
func (m *PromptTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddProcessIDs adds the "processes" edge to the Process entity by ids.
func (m *PromptTemplateMutation) AddProcessIDs(ids ...string) {
	if m.processes == nil {
		m.processes = make(map[string]struct{})
	}
	for i := range ids {
		m.processes[ids[i]] = struct{}{}
	}
}

// ClearProcesses clears the "processes" edge to the Process entity.
func (m *PromptTemplateMutation) ClearProcesses() {
	m.clearedprocesses = true
}

// ProcessesCleared reports if the "processes" edge to the Process entity was cleared.
func (m *PromptTemplateMutation) ProcessesCleared() bool {
	return m.clearedprocesses
}

// RemoveProcessIDs removes the "processes" edge to the Process entity by IDs.
func (m *PromptTemplateMutation) RemoveProcessIDs(ids ...string) {
	if m.removedprocesses == nil {
		m.removedprocesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.processes, ids[i])
		m.removedprocesses[ids[i]] = struct{}{}
	}
}

// RemovedProcesses returns the removed IDs of the "processes" edge to the Process entity.
func (m *PromptTemplateMutation) RemovedProcessesIDs() (ids []string) {
	for id := range m.removedprocesses {
		ids = append(ids, id)
	}
	return
}

// ProcessesIDs returns the "processes" edge IDs in the mutation.
func (m *PromptTemplateMutation) ProcessesIDs() (ids []string) {
	for id := range m.processes {
		ids = append(ids, id)
	}
	return
}

// ResetProcesses resets all changes to the "processes" edge.
func (m *PromptTemplateMutation) ResetProcesses() {
	m.processes = nil
	m.clearedprocesses = false
	m.removedprocesses = nil
}

// Where appends a list predicates to the PromptTemplateMutation builder.
func (m *PromptTemplateMutation) Where(ps ...predicate.PromptTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptTemplate).
func (m *PromptTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptTemplateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, prompttemplate.FieldUserID)
	}
	if m.category != nil {
		fields = append(fields, prompttemplate.FieldCategory)
	}
	if m.name != nil {
		fields = append(fields, prompttemplate.FieldName)
	}
	if m.description != nil {
		fields = append(fields, prompttemplate.FieldDescription)
	}
	if m.system_prompt != nil {
		fields = append(fields, prompttemplate.FieldSystemPrompt)
	}
	if m.user_prompt_template != nil {
		fields = append(fields, prompttemplate.FieldUserPromptTemplate)
	}
	if m.is_active != nil {
		fields = append(fields, prompttemplate.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, prompttemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompttemplate.FieldUserID:
		return m.UserID()
	case prompttemplate.FieldCategory:
		return m.Category()
	case prompttemplate.FieldName:
		return m.Name()
	case prompttemplate.FieldDescription:
		return m.Description()
	case prompttemplate.FieldSystemPrompt:
		return m.SystemPrompt()
	case prompttemplate.FieldUserPromptTemplate:
		return m.UserPromptTemplate()
	case prompttemplate.FieldIsActive:
		return m.IsActive()
	case prompttemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompttemplate.FieldUserID:
		return m.OldUserID(ctx)
	case prompttemplate.FieldCategory:
		return m.OldCategory(ctx)
	case prompttemplate.FieldName:
		return m.OldName(ctx)
	case prompttemplate.FieldDescription:
		return m.OldDescription(ctx)
	case prompttemplate.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case prompttemplate.FieldUserPromptTemplate:
		return m.OldUserPromptTemplate(ctx)
	case prompttemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case prompttemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompttemplate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case prompttemplate.FieldCategory:
		v, ok := value.(prompttemplate.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case prompttemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompttemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case prompttemplate.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case prompttemplate.FieldUserPromptTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserPromptTemplate(v)
		return nil
	case prompttemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case prompttemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompttemplate.FieldUserID) {
		fields = append(fields, prompttemplate.FieldUserID)
	}
	if m.FieldCleared(prompttemplate.FieldDescription) {
		fields = append(fields, prompttemplate.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ClearField(name string) error {
	switch name {
	case prompttemplate.FieldUserID:
		m.ClearUserID()
		return nil
	case prompttemplate.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ResetField(name string) error {
	switch name {
	case prompttemplate.FieldUserID:
		m.ResetUserID()
		return nil
	case prompttemplate.FieldCategory:
		m.ResetCategory()
		return nil
	case prompttemplate.FieldName:
		m.ResetName()
		return nil
	case prompttemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case prompttemplate.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case prompttemplate.FieldUserPromptTemplate:
		m.ResetUserPromptTemplate()
		return nil
	case prompttemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case prompttemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.processes != nil {
		edges = append(edges, prompttemplate.EdgeProcesses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prompttemplate.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.processes))
		for id := range m.processes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedprocesses != nil {
		edges = append(edges, prompttemplate.EdgeProcesses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prompttemplate.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.removedprocesses))
		for id := range m.removedprocesses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocesses {
		edges = append(edges, prompttemplate.EdgeProcesses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case prompttemplate.EdgeProcesses:
		return m.clearedprocesses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptTemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptTemplateMutation) ResetEdge(name string) error {
	switch name {
	case prompttemplate.EdgeProcesses:
		m.ResetProcesses()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate edge %s", name)
}

// UpstreamLoginMutation represents an operation that mutates the UpstreamLogin nodes in the graph.
type UpstreamLoginMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	name               *string
	username_encrypted *string
	password_encrypted *string
	is_admin           *bool
	is_active          *bool
	last_used_at       *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	work_items         map[string]struct{}
	removedwork_items  map[string]struct{}
	clearedwork_items  bool
	processes          map[string]struct{}
	removedprocesses   map[string]struct{}
	clearedprocesses   bool
	done               bool
	oldValue           func(context.Context) (*UpstreamLogin, error)
	predicates         []predicate.UpstreamLogin
}

var _ ent.Mutation = (*UpstreamLoginMutation)(nil)

// upstreamloginOption allows management of the mutation configuration using functional options.
type upstreamloginOption func(*UpstreamLoginMutation)

// newUpstreamLoginMutation creates new mutation for the UpstreamLogin entity.
func newUpstreamLoginMutation(c config, op Op, opts ...upstreamloginOption) *UpstreamLoginMutation {
	m := &UpstreamLoginMutation{
		config:        c,
		op:            op,
		typ:           TypeUpstreamLogin,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUpstreamLoginID sets the ID field of the mutation.
func withUpstreamLoginID(id string) upstreamloginOption {
	return func(m *UpstreamLoginMutation) {
		var (
			err   error
			once  sync.Once
			value *UpstreamLogin
		)
		m.oldValue = func(ctx context.Context) (*UpstreamLogin, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UpstreamLogin.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpstreamLogin sets the old UpstreamLogin of the mutation.
func withUpstreamLogin(node *UpstreamLogin) upstreamloginOption {
	return func(m *UpstreamLoginMutation) {
		m.oldValue = func(context.Context) (*UpstreamLogin, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UpstreamLoginMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UpstreamLoginMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UpstreamLogin entities.
func (m *UpstreamLoginMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UpstreamLoginMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UpstreamLoginMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UpstreamLogin.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UpstreamLoginMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UpstreamLoginMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UpstreamLoginMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *UpstreamLoginMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UpstreamLoginMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UpstreamLoginMutation) ResetName() {
	m.name = nil
}

// SetUsernameEncrypted sets the "username_encrypted" field.
func (m *UpstreamLoginMutation) SetUsernameEncrypted(s string) {
	m.username_encrypted = &s
}

// UsernameEncrypted returns the value of the "username_encrypted" field in the mutation.
func (m *UpstreamLoginMutation) UsernameEncrypted() (r string, exists bool) {
	v := m.username_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldUsernameEncrypted returns the old "username_encrypted" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldUsernameEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsernameEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsernameEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsernameEncrypted: %w", err)
	}
	return oldValue.UsernameEncrypted, nil
}

// ResetUsernameEncrypted resets all changes to the "username_encrypted" field.
func (m *UpstreamLoginMutation) ResetUsernameEncrypted() {
	m.username_encrypted = nil
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (m *UpstreamLoginMutation) SetPasswordEncrypted(s string) {
	m.password_encrypted = &s
}

// PasswordEncrypted returns the value of the "password_encrypted" field in the mutation.
func (m *UpstreamLoginMutation) PasswordEncrypted() (r string, exists bool) {
	v := m.password_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordEncrypted returns the old "password_encrypted" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldPasswordEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordEncrypted: %w", err)
	}
	return oldValue.PasswordEncrypted, nil
}

// ResetPasswordEncrypted resets all changes to the "password_encrypted" field.
func (m *UpstreamLoginMutation) ResetPasswordEncrypted() {
	m.password_encrypted = nil
}

// SetIsAdmin sets the "is_admin" field.
func (m *UpstreamLoginMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *UpstreamLoginMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *UpstreamLoginMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetIsActive sets the "is_active" field.
func (m *UpstreamLoginMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UpstreamLoginMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UpstreamLoginMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UpstreamLoginMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UpstreamLoginMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UpstreamLoginMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[upstreamlogin.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UpstreamLoginMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[upstreamlogin.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UpstreamLoginMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, upstreamlogin.FieldLastUsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UpstreamLoginMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UpstreamLoginMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UpstreamLogin entity.
// If the UpstreamLogin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamLoginMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UpstreamLoginMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by ids.
func (m *UpstreamLoginMutation) AddWorkItemIDs(ids ...string) {
	if m.work_items == nil {
		m.work_items = make(map[string]struct{})
	}
	for i := range ids {
		m.work_items[ids[i]] = struct{}{}
	}
}

// ClearWorkItems clears the "work_items" edge to the WorkItem entity.
func (m *UpstreamLoginMutation) ClearWorkItems() {
	m.clearedwork_items = true
}

// WorkItemsCleared reports if the "work_items" edge to the WorkItem entity was cleared.
func (m *UpstreamLoginMutation) WorkItemsCleared() bool {
	return m.clearedwork_items
}

// RemoveWorkItemIDs removes the "work_items" edge to the WorkItem entity by IDs.
func (m *UpstreamLoginMutation) RemoveWorkItemIDs(ids ...string) {
	if m.removedwork_items == nil {
		m.removedwork_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.work_items, ids[i])
		m.removedwork_items[ids[i]] = struct{}{}
	}
}

// RemovedWorkItems returns the removed IDs of the "work_items" edge to the WorkItem entity.
func (m *UpstreamLoginMutation) RemovedWorkItemsIDs() (ids []string) {
	for id := range m.removedwork_items {
		ids = append(ids, id)
	}
	return
}

// WorkItemsIDs returns the "work_items" edge IDs in the mutation.
func (m *UpstreamLoginMutation) WorkItemsIDs() (ids []string) {
	for id := range m.work_items {
		ids = append(ids, id)
	}
	return
}

// ResetWorkItems resets all changes to the "work_items" edge.
func (m *UpstreamLoginMutation) ResetWorkItems() {
	m.work_items = nil
	m.clearedwork_items = false
	m.removedwork_items = nil
}

// AddProcessIDs adds the "processes" edge to the Process entity by ids.
func (m *UpstreamLoginMutation) AddProcessIDs(ids ...string) {
	if m.processes == nil {
		m.processes = make(map[string]struct{})
	}
	for i := range ids {
		m.processes[ids[i]] = struct{}{}
	}
}

// ClearProcesses clears the "processes" edge to the Process entity.
func (m *UpstreamLoginMutation) ClearProcesses() {
	m.clearedprocesses = true
}

// ProcessesCleared reports if the "processes" edge to the Process entity was cleared.
func (m *UpstreamLoginMutation) ProcessesCleared() bool {
	return m.clearedprocesses
}

// RemoveProcessIDs removes the "processes" edge to the Process entity by IDs.
func (m *UpstreamLoginMutation) RemoveProcessIDs(ids ...string) {
	if m.removedprocesses == nil {
		m.removedprocesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.processes, ids[i])
		m.removedprocesses[ids[i]] = struct{}{}
	}
}

// RemovedProcesses returns the removed IDs of the "processes" edge to the Process entity.
func (m *UpstreamLoginMutation) RemovedProcessesIDs() (ids []string) {
	for id := range m.removedprocesses {
		ids = append(ids, id)
	}
	return
}

// ProcessesIDs returns the "processes" edge IDs in the mutation.
func (m *UpstreamLoginMutation) ProcessesIDs() (ids []string) {
	for id := range m.processes {
		ids = append(ids, id)
	}
	return
}

// ResetProcesses resets all changes to the "processes" edge.
func (m *UpstreamLoginMutation) ResetProcesses() {
	m.processes = nil
	m.clearedprocesses = false
	m.removedprocesses = nil
}

// Where appends a list predicates to the UpstreamLoginMutation builder.
func (m *UpstreamLoginMutation) Where(ps ...predicate.UpstreamLogin) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UpstreamLoginMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UpstreamLoginMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UpstreamLogin, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UpstreamLoginMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UpstreamLoginMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UpstreamLogin).
func (m *UpstreamLoginMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UpstreamLoginMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, upstreamlogin.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, upstreamlogin.FieldName)
	}
	if m.username_encrypted != nil {
		fields = append(fields, upstreamlogin.FieldUsernameEncrypted)
	}
	if m.password_encrypted != nil {
		fields = append(fields, upstreamlogin.FieldPasswordEncrypted)
	}
	if m.is_admin != nil {
		fields = append(fields, upstreamlogin.FieldIsAdmin)
	}
	if m.is_active != nil {
		fields = append(fields, upstreamlogin.FieldIsActive)
	}
	if m.last_used_at != nil {
		fields = append(fields, upstreamlogin.FieldLastUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, upstreamlogin.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UpstreamLoginMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upstreamlogin.FieldUserID:
		return m.UserID()
	case upstreamlogin.FieldName:
		return m.Name()
	case upstreamlogin.FieldUsernameEncrypted:
		return m.UsernameEncrypted()
	case upstreamlogin.FieldPasswordEncrypted:
		return m.PasswordEncrypted()
	case upstreamlogin.FieldIsAdmin:
		return m.IsAdmin()
	case upstreamlogin.FieldIsActive:
		return m.IsActive()
	case upstreamlogin.FieldLastUsedAt:
		return m.LastUsedAt()
	case upstreamlogin.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UpstreamLoginMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upstreamlogin.FieldUserID:
		return m.OldUserID(ctx)
	case upstreamlogin.FieldName:
		return m.OldName(ctx)
	case upstreamlogin.FieldUsernameEncrypted:
		return m.OldUsernameEncrypted(ctx)
	case upstreamlogin.FieldPasswordEncrypted:
		return m.OldPasswordEncrypted(ctx)
	case upstreamlogin.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case upstreamlogin.FieldIsActive:
		return m.OldIsActive(ctx)
	case upstreamlogin.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case upstreamlogin.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UpstreamLogin field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpstreamLoginMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upstreamlogin.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case upstreamlogin.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case upstreamlogin.FieldUsernameEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsernameEncrypted(v)
		return nil
	case upstreamlogin.FieldPasswordEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordEncrypted(v)
		return nil
	case upstreamlogin.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case upstreamlogin.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case upstreamlogin.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case upstreamlogin.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UpstreamLogin field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UpstreamLoginMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UpstreamLoginMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpstreamLoginMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UpstreamLogin numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UpstreamLoginMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(upstreamlogin.FieldLastUsedAt) {
		fields = append(fields, upstreamlogin.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UpstreamLoginMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UpstreamLoginMutation) ClearField(name string) error {
	switch name {
	case upstreamlogin.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown UpstreamLogin nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UpstreamLoginMutation) ResetField(name string) error {
	switch name {
	case upstreamlogin.FieldUserID:
		m.ResetUserID()
		return nil
	case upstreamlogin.FieldName:
		m.ResetName()
		return nil
	case upstreamlogin.FieldUsernameEncrypted:
		m.ResetUsernameEncrypted()
		return nil
	case upstreamlogin.FieldPasswordEncrypted:
		m.ResetPasswordEncrypted()
		return nil
	case upstreamlogin.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case upstreamlogin.FieldIsActive:
		m.ResetIsActive()
		return nil
	case upstreamlogin.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case upstreamlogin.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UpstreamLogin field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UpstreamLoginMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.work_items != nil {
		edges = append(edges, upstreamlogin.EdgeWorkItems)
	}
	if m.processes != nil {
		edges = append(edges, upstreamlogin.EdgeProcesses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UpstreamLoginMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upstreamlogin.EdgeWorkItems:
		ids := make([]ent.Value, 0, len(m.work_items))
		for id := range m.work_items {
			ids = append(ids, id)
		}
		return ids
	case upstreamlogin.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.processes))
		for id := range m.processes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UpstreamLoginMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedwork_items != nil {
		edges = append(edges, upstreamlogin.EdgeWorkItems)
	}
	if m.removedprocesses != nil {
		edges = append(edges, upstreamlogin.EdgeProcesses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UpstreamLoginMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case upstreamlogin.EdgeWorkItems:
		ids := make([]ent.Value, 0, len(m.removedwork_items))
		for id := range m.removedwork_items {
			ids = append(ids, id)
		}
		return ids
	case upstreamlogin.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.removedprocesses))
		for id := range m.removedprocesses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UpstreamLoginMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedwork_items {
		edges = append(edges, upstreamlogin.EdgeWorkItems)
	}
	if m.clearedprocesses {
		edges = append(edges, upstreamlogin.EdgeProcesses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UpstreamLoginMutation) EdgeCleared(name string) bool {
	switch name {
	case upstreamlogin.EdgeWorkItems:
		return m.clearedwork_items
	case upstreamlogin.EdgeProcesses:
		return m.clearedprocesses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UpstreamLoginMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UpstreamLogin unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UpstreamLoginMutation) ResetEdge(name string) error {
	switch name {
	case upstreamlogin.EdgeWorkItems:
		m.ResetWorkItems()
		return nil
	case upstreamlogin.EdgeProcesses:
		m.ResetProcesses()
		return nil
	}
	return fmt.Errorf("unknown UpstreamLogin edge %s", name)
}

// WorkItemMutation represents an operation that mutates the WorkItem nodes in the graph.
type WorkItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	article_id             *string
	prompt_template_id     *string
	llm_config_id          *string
	article_title          *string
	article_author         *string
	article_category_id    *int
	addarticle_category_id *int
	article_task_id        *int
	addarticle_task_id     *int
	article_url            *string
	article_content        *string
	article_html           *string
	article_published_at   *time.Time
	article_edited_at      *time.Time
	scraped_at             *time.Time
	comment_text           *string
	llm_model_name         *string
	llm_provider_name      *string
	generation_tokens      *int
	addgeneration_tokens   *int
	generation_time_ms     *int
	addgeneration_time_ms  *int
	upstream_comment_id    *string
	status                 *workitem.Status
	created_at             *time.Time
	posted_at              *time.Time
	failed_at              *time.Time
	error_message          *string
	retry_count            *int
	addretry_count         *int
	clearedFields          map[string]struct{}
	process                *string
	clearedprocess         bool
	login                  *string
	clearedlogin           bool
	done                   bool
	oldValue               func(context.Context) (*WorkItem, error)
	predicates             []predicate.WorkItem
}

var _ ent.Mutation = (*WorkItemMutation)(nil)

// workitemOption allows management of the mutation configuration using functional options.
type workitemOption func(*WorkItemMutation)

// newWorkItemMutation creates new mutation for the WorkItem entity.
func newWorkItemMutation(c config, op Op, opts ...workitemOption) *WorkItemMutation {
	m := &WorkItemMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkItemID sets the ID field of the mutation.
func withWorkItemID(id string) workitemOption {
	return func(m *WorkItemMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkItem
		)
		m.oldValue = func(ctx context.Context) (*WorkItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkItem sets the old WorkItem of the mutation.
func withWorkItem(node *WorkItem) workitemOption {
	return func(m *WorkItemMutation) {
		m.oldValue = func(context.Context) (*WorkItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkItem entities.
func (m *WorkItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessID sets the "process_id" field.
func (m *WorkItemMutation) SetProcessID(s string) {
	m.process = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *WorkItemMutation) ProcessID() (r string, exists bool) {
	v := m.process
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *WorkItemMutation) ResetProcessID() {
	m.process = nil
}

// SetLoginID sets the "login_id" field.
func (m *WorkItemMutation) SetLoginID(s string) {
	m.login = &s
}

// LoginID returns the value of the "login_id" field in the mutation.
func (m *WorkItemMutation) LoginID() (r string, exists bool) {
	v := m.login
	if v == nil {
		return
	}
	return *v, true
}

// OldLoginID returns the old "login_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldLoginID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoginID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoginID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoginID: %w", err)
	}
	return oldValue.LoginID, nil
}

// ResetLoginID resets all changes to the "login_id" field.
func (m *WorkItemMutation) ResetLoginID() {
	m.login = nil
}

// SetUserID sets the "user_id" field.
func (m *WorkItemMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkItemMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkItemMutation) ResetUserID() {
	m.user_id = nil
}

// SetArticleID sets the "article_id" field.
func (m *WorkItemMutation) SetArticleID(s string) {
	m.article_id = &s
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *WorkItemMutation) ArticleID() (r string, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *WorkItemMutation) ResetArticleID() {
	m.article_id = nil
}

// SetPromptTemplateID sets the "prompt_template_id" field.
func (m *WorkItemMutation) SetPromptTemplateID(s string) {
	m.prompt_template_id = &s
}

// PromptTemplateID returns the value of the "prompt_template_id" field in the mutation.
func (m *WorkItemMutation) PromptTemplateID() (r string, exists bool) {
	v := m.prompt_template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplateID returns the old "prompt_template_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldPromptTemplateID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplateID: %w", err)
	}
	return oldValue.PromptTemplateID, nil
}

// ClearPromptTemplateID clears the value of the "prompt_template_id" field.
func (m *WorkItemMutation) ClearPromptTemplateID() {
	m.prompt_template_id = nil
	m.clearedFields[workitem.FieldPromptTemplateID] = struct{}{}
}

// PromptTemplateIDCleared returns if the "prompt_template_id" field was cleared in this mutation.
func (m *WorkItemMutation) PromptTemplateIDCleared() bool {
	_, ok := m.clearedFields[workitem.FieldPromptTemplateID]
	return ok
}

// ResetPromptTemplateID resets all changes to the "prompt_template_id" field.
func (m *WorkItemMutation) ResetPromptTemplateID() {
	m.prompt_template_id = nil
	delete(m.clearedFields, workitem.FieldPromptTemplateID)
}

// SetLlmConfigID sets the "llm_config_id" field.
func (m *WorkItemMutation) SetLlmConfigID(s string) {
	m.llm_config_id = &s
}

// LlmConfigID returns the value of the "llm_config_id" field in the mutation.
func (m *WorkItemMutation) LlmConfigID() (r string, exists bool) {
	v := m.llm_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmConfigID returns the old "llm_config_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldLlmConfigID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmConfigID: %w", err)
	}
	return oldValue.LlmConfigID, nil
}

// ClearLlmConfigID clears the value of the "llm_config_id" field.
func (m *WorkItemMutation) ClearLlmConfigID() {
	m.llm_config_id = nil
	m.clearedFields[workitem.FieldLlmConfigID] = struct{}{}
}

// LlmConfigIDCleared returns if the "llm_config_id" field was cleared in this mutation.
func (m *WorkItemMutation) LlmConfigIDCleared() bool {
	_, ok := m.clearedFields[workitem.FieldLlmConfigID]
	return ok
}

// ResetLlmConfigID resets all changes to the "llm_config_id" field.
func (m *WorkItemMutation) ResetLlmConfigID() {
	m.llm_config_id = nil
	delete(m.clearedFields, workitem.FieldLlmConfigID)
}

// SetArticleTitle sets the "article_title" field.
func (m *WorkItemMutation) SetArticleTitle(s string) {
	m.article_title = &s
}

// ArticleTitle returns the value of the "article_title" field in the mutation.
func (m *WorkItemMutation) ArticleTitle() (r string, exists bool) {
	v := m.article_title
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleTitle returns the old "article_title" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleTitle: %w", err)
	}
	return oldValue.ArticleTitle, nil
}

// ClearArticleTitle clears the value of the "article_title" field.
func (m *WorkItemMutation) ClearArticleTitle() {
	m.article_title = nil
	m.clearedFields[workitem.FieldArticleTitle] = struct{}{}
}

// ArticleTitleCleared returns if the "article_title" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleTitleCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleTitle]
	return ok
}

// ResetArticleTitle resets all changes to the "article_title" field.
func (m *WorkItemMutation) ResetArticleTitle() {
	m.article_title = nil
	delete(m.clearedFields, workitem.FieldArticleTitle)
}

// SetArticleAuthor sets the "article_author" field.
func (m *WorkItemMutation) SetArticleAuthor(s string) {
	m.article_author = &s
}

// ArticleAuthor returns the value of the "article_author" field in the mutation.
func (m *WorkItemMutation) ArticleAuthor() (r string, exists bool) {
	v := m.article_author
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleAuthor returns the old "article_author" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleAuthor: %w", err)
	}
	return oldValue.ArticleAuthor, nil
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (m *WorkItemMutation) ClearArticleAuthor() {
	m.article_author = nil
	m.clearedFields[workitem.FieldArticleAuthor] = struct{}{}
}

// ArticleAuthorCleared returns if the "article_author" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleAuthorCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleAuthor]
	return ok
}

// ResetArticleAuthor resets all changes to the "article_author" field.
func (m *WorkItemMutation) ResetArticleAuthor() {
	m.article_author = nil
	delete(m.clearedFields, workitem.FieldArticleAuthor)
}

// SetArticleCategoryID sets the "article_category_id" field.
func (m *WorkItemMutation) SetArticleCategoryID(i int) {
	m.article_category_id = &i
	m.addarticle_category_id = nil
}

// ArticleCategoryID returns the value of the "article_category_id" field in the mutation.
func (m *WorkItemMutation) ArticleCategoryID() (r int, exists bool) {
	v := m.article_category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleCategoryID returns the old "article_category_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleCategoryID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleCategoryID: %w", err)
	}
	return oldValue.ArticleCategoryID, nil
}

// AddArticleCategoryID adds i to the "article_category_id" field.
func (m *WorkItemMutation) AddArticleCategoryID(i int) {
	if m.addarticle_category_id != nil {
		*m.addarticle_category_id += i
	} else {
		m.addarticle_category_id = &i
	}
}

// AddedArticleCategoryID returns the value that was added to the "article_category_id" field in this mutation.
func (m *WorkItemMutation) AddedArticleCategoryID() (r int, exists bool) {
	v := m.addarticle_category_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearArticleCategoryID clears the value of the "article_category_id" field.
func (m *WorkItemMutation) ClearArticleCategoryID() {
	m.article_category_id = nil
	m.addarticle_category_id = nil
	m.clearedFields[workitem.FieldArticleCategoryID] = struct{}{}
}

// ArticleCategoryIDCleared returns if the "article_category_id" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleCategoryIDCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleCategoryID]
	return ok
}

// ResetArticleCategoryID resets all changes to the "article_category_id" field.
func (m *WorkItemMutation) ResetArticleCategoryID() {
	m.article_category_id = nil
	m.addarticle_category_id = nil
	delete(m.clearedFields, workitem.FieldArticleCategoryID)
}

// SetArticleTaskID sets the "article_task_id" field.
func (m *WorkItemMutation) SetArticleTaskID(i int) {
	m.article_task_id = &i
	m.addarticle_task_id = nil
}

// ArticleTaskID returns the value of the "article_task_id" field in the mutation.
func (m *WorkItemMutation) ArticleTaskID() (r int, exists bool) {
	v := m.article_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleTaskID returns the old "article_task_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleTaskID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleTaskID: %w", err)
	}
	return oldValue.ArticleTaskID, nil
}

// AddArticleTaskID adds i to the "article_task_id" field.
func (m *WorkItemMutation) AddArticleTaskID(i int) {
	if m.addarticle_task_id != nil {
		*m.addarticle_task_id += i
	} else {
		m.addarticle_task_id = &i
	}
}

// AddedArticleTaskID returns the value that was added to the "article_task_id" field in this mutation.
func (m *WorkItemMutation) AddedArticleTaskID() (r int, exists bool) {
	v := m.addarticle_task_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearArticleTaskID clears the value of the "article_task_id" field.
func (m *WorkItemMutation) ClearArticleTaskID() {
	m.article_task_id = nil
	m.addarticle_task_id = nil
	m.clearedFields[workitem.FieldArticleTaskID] = struct{}{}
}

// ArticleTaskIDCleared returns if the "article_task_id" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleTaskIDCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleTaskID]
	return ok
}

// ResetArticleTaskID resets all changes to the "article_task_id" field.
func (m *WorkItemMutation) ResetArticleTaskID() {
	m.article_task_id = nil
	m.addarticle_task_id = nil
	delete(m.clearedFields, workitem.FieldArticleTaskID)
}

// SetArticleURL sets the "article_url" field.
func (m *WorkItemMutation) SetArticleURL(s string) {
	m.article_url = &s
}

// ArticleURL returns the value of the "article_url" field in the mutation.
func (m *WorkItemMutation) ArticleURL() (r string, exists bool) {
	v := m.article_url
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleURL returns the old "article_url" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleURL: %w", err)
	}
	return oldValue.ArticleURL, nil
}

// ClearArticleURL clears the value of the "article_url" field.
func (m *WorkItemMutation) ClearArticleURL() {
	m.article_url = nil
	m.clearedFields[workitem.FieldArticleURL] = struct{}{}
}

// ArticleURLCleared returns if the "article_url" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleURLCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleURL]
	return ok
}

// ResetArticleURL resets all changes to the "article_url" field.
func (m *WorkItemMutation) ResetArticleURL() {
	m.article_url = nil
	delete(m.clearedFields, workitem.FieldArticleURL)
}

// SetArticleContent sets the "article_content" field.
func (m *WorkItemMutation) SetArticleContent(s string) {
	m.article_content = &s
}

// ArticleContent returns the value of the "article_content" field in the mutation.
func (m *WorkItemMutation) ArticleContent() (r string, exists bool) {
	v := m.article_content
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleContent returns the old "article_content" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleContent: %w", err)
	}
	return oldValue.ArticleContent, nil
}

// ClearArticleContent clears the value of the "article_content" field.
func (m *WorkItemMutation) ClearArticleContent() {
	m.article_content = nil
	m.clearedFields[workitem.FieldArticleContent] = struct{}{}
}

// ArticleContentCleared returns if the "article_content" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleContentCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleContent]
	return ok
}

// ResetArticleContent resets all changes to the "article_content" field.
func (m *WorkItemMutation) ResetArticleContent() {
	m.article_content = nil
	delete(m.clearedFields, workitem.FieldArticleContent)
}

// SetArticleHTML sets the "article_html" field.
func (m *WorkItemMutation) SetArticleHTML(s string) {
	m.article_html = &s
}

// ArticleHTML returns the value of the "article_html" field in the mutation.
func (m *WorkItemMutation) ArticleHTML() (r string, exists bool) {
	v := m.article_html
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleHTML returns the old "article_html" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleHTML(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleHTML: %w", err)
	}
	return oldValue.ArticleHTML, nil
}

// ClearArticleHTML clears the value of the "article_html" field.
func (m *WorkItemMutation) ClearArticleHTML() {
	m.article_html = nil
	m.clearedFields[workitem.FieldArticleHTML] = struct{}{}
}

// ArticleHTMLCleared returns if the "article_html" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleHTMLCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleHTML]
	return ok
}

// ResetArticleHTML resets all changes to the "article_html" field.
func (m *WorkItemMutation) ResetArticleHTML() {
	m.article_html = nil
	delete(m.clearedFields, workitem.FieldArticleHTML)
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (m *WorkItemMutation) SetArticlePublishedAt(t time.Time) {
	m.article_published_at = &t
}

// ArticlePublishedAt returns the value of the "article_published_at" field in the mutation.
func (m *WorkItemMutation) ArticlePublishedAt() (r time.Time, exists bool) {
	v := m.article_published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArticlePublishedAt returns the old "article_published_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticlePublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticlePublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticlePublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticlePublishedAt: %w", err)
	}
	return oldValue.ArticlePublishedAt, nil
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (m *WorkItemMutation) ClearArticlePublishedAt() {
	m.article_published_at = nil
	m.clearedFields[workitem.FieldArticlePublishedAt] = struct{}{}
}

// ArticlePublishedAtCleared returns if the "article_published_at" field was cleared in this mutation.
func (m *WorkItemMutation) ArticlePublishedAtCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticlePublishedAt]
	return ok
}

// ResetArticlePublishedAt resets all changes to the "article_published_at" field.
func (m *WorkItemMutation) ResetArticlePublishedAt() {
	m.article_published_at = nil
	delete(m.clearedFields, workitem.FieldArticlePublishedAt)
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (m *WorkItemMutation) SetArticleEditedAt(t time.Time) {
	m.article_edited_at = &t
}

// ArticleEditedAt returns the value of the "article_edited_at" field in the mutation.
func (m *WorkItemMutation) ArticleEditedAt() (r time.Time, exists bool) {
	v := m.article_edited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleEditedAt returns the old "article_edited_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArticleEditedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleEditedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleEditedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleEditedAt: %w", err)
	}
	return oldValue.ArticleEditedAt, nil
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (m *WorkItemMutation) ClearArticleEditedAt() {
	m.article_edited_at = nil
	m.clearedFields[workitem.FieldArticleEditedAt] = struct{}{}
}

// ArticleEditedAtCleared returns if the "article_edited_at" field was cleared in this mutation.
func (m *WorkItemMutation) ArticleEditedAtCleared() bool {
	_, ok := m.clearedFields[workitem.FieldArticleEditedAt]
	return ok
}

// ResetArticleEditedAt resets all changes to the "article_edited_at" field.
func (m *WorkItemMutation) ResetArticleEditedAt() {
	m.article_edited_at = nil
	delete(m.clearedFields, workitem.FieldArticleEditedAt)
}

// SetScrapedAt sets the "scraped_at" field.
func (m *WorkItemMutation) SetScrapedAt(t time.Time) {
	m.scraped_at = &t
}

// ScrapedAt returns the value of the "scraped_at" field in the mutation.
func (m *WorkItemMutation) ScrapedAt() (r time.Time, exists bool) {
	v := m.scraped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScrapedAt returns the old "scraped_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldScrapedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrapedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrapedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrapedAt: %w", err)
	}
	return oldValue.ScrapedAt, nil
}

// ClearScrapedAt clears the value of the "scraped_at" field.
func (m *WorkItemMutation) ClearScrapedAt() {
	m.scraped_at = nil
	m.clearedFields[workitem.FieldScrapedAt] = struct{}{}
}

// ScrapedAtCleared returns if the "scraped_at" field was cleared in this mutation.
func (m *WorkItemMutation) ScrapedAtCleared() bool {
	_, ok := m.clearedFields[workitem.FieldScrapedAt]
	return ok
}

// ResetScrapedAt resets all changes to the "scraped_at" field.
func (m *WorkItemMutation) ResetScrapedAt() {
	m.scraped_at = nil
	delete(m.clearedFields, workitem.FieldScrapedAt)
}

// SetCommentText sets the "comment_text" field.
func (m *WorkItemMutation) SetCommentText(s string) {
	m.comment_text = &s
}

// CommentText returns the value of the "comment_text" field in the mutation.
func (m *WorkItemMutation) CommentText() (r string, exists bool) {
	v := m.comment_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentText returns the old "comment_text" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldCommentText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentText: %w", err)
	}
	return oldValue.CommentText, nil
}

// ClearCommentText clears the value of the "comment_text" field.
func (m *WorkItemMutation) ClearCommentText() {
	m.comment_text = nil
	m.clearedFields[workitem.FieldCommentText] = struct{}{}
}

// CommentTextCleared returns if the "comment_text" field was cleared in this mutation.
func (m *WorkItemMutation) CommentTextCleared() bool {
	_, ok := m.clearedFields[workitem.FieldCommentText]
	return ok
}

// ResetCommentText resets all changes to the "comment_text" field.
func (m *WorkItemMutation) ResetCommentText() {
	m.comment_text = nil
	delete(m.clearedFields, workitem.FieldCommentText)
}

// SetLlmModelName sets the "llm_model_name" field.
func (m *WorkItemMutation) SetLlmModelName(s string) {
	m.llm_model_name = &s
}

// LlmModelName returns the value of the "llm_model_name" field in the mutation.
func (m *WorkItemMutation) LlmModelName() (r string, exists bool) {
	v := m.llm_model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModelName returns the old "llm_model_name" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldLlmModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModelName: %w", err)
	}
	return oldValue.LlmModelName, nil
}

// ClearLlmModelName clears the value of the "llm_model_name" field.
func (m *WorkItemMutation) ClearLlmModelName() {
	m.llm_model_name = nil
	m.clearedFields[workitem.FieldLlmModelName] = struct{}{}
}

// LlmModelNameCleared returns if the "llm_model_name" field was cleared in this mutation.
func (m *WorkItemMutation) LlmModelNameCleared() bool {
	_, ok := m.clearedFields[workitem.FieldLlmModelName]
	return ok
}

// ResetLlmModelName resets all changes to the "llm_model_name" field.
func (m *WorkItemMutation) ResetLlmModelName() {
	m.llm_model_name = nil
	delete(m.clearedFields, workitem.FieldLlmModelName)
}

// SetLlmProviderName sets the "llm_provider_name" field.
func (m *WorkItemMutation) SetLlmProviderName(s string) {
	m.llm_provider_name = &s
}

// LlmProviderName returns the value of the "llm_provider_name" field in the mutation.
func (m *WorkItemMutation) LlmProviderName() (r string, exists bool) {
	v := m.llm_provider_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProviderName returns the old "llm_provider_name" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldLlmProviderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProviderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProviderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProviderName: %w", err)
	}
	return oldValue.LlmProviderName, nil
}

// ClearLlmProviderName clears the value of the "llm_provider_name" field.
func (m *WorkItemMutation) ClearLlmProviderName() {
	m.llm_provider_name = nil
	m.clearedFields[workitem.FieldLlmProviderName] = struct{}{}
}

// LlmProviderNameCleared returns if the "llm_provider_name" field was cleared in this mutation.
func (m *WorkItemMutation) LlmProviderNameCleared() bool {
	_, ok := m.clearedFields[workitem.FieldLlmProviderName]
	return ok
}

// ResetLlmProviderName resets all changes to the "llm_provider_name" field.
func (m *WorkItemMutation) ResetLlmProviderName() {
	m.llm_provider_name = nil
	delete(m.clearedFields, workitem.FieldLlmProviderName)
}

// SetGenerationTokens sets the "generation_tokens" field.
func (m *WorkItemMutation) SetGenerationTokens(i int) {
	m.generation_tokens = &i
	m.addgeneration_tokens = nil
}

// GenerationTokens returns the value of the "generation_tokens" field in the mutation.
func (m *WorkItemMutation) GenerationTokens() (r int, exists bool) {
	v := m.generation_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTokens returns the old "generation_tokens" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldGenerationTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTokens: %w", err)
	}
	return oldValue.GenerationTokens, nil
}

// AddGenerationTokens adds i to the "generation_tokens" field.
func (m *WorkItemMutation) AddGenerationTokens(i int) {
	if m.addgeneration_tokens != nil {
		*m.addgeneration_tokens += i
	} else {
		m.addgeneration_tokens = &i
	}
}

// AddedGenerationTokens returns the value that was added to the "generation_tokens" field in this mutation.
func (m *WorkItemMutation) AddedGenerationTokens() (r int, exists bool) {
	v := m.addgeneration_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (m *WorkItemMutation) ClearGenerationTokens() {
	m.generation_tokens = nil
	m.addgeneration_tokens = nil
	m.clearedFields[workitem.FieldGenerationTokens] = struct{}{}
}

// GenerationTokensCleared returns if the "generation_tokens" field was cleared in this mutation.
func (m *WorkItemMutation) GenerationTokensCleared() bool {
	_, ok := m.clearedFields[workitem.FieldGenerationTokens]
	return ok
}

// ResetGenerationTokens resets all changes to the "generation_tokens" field.
func (m *WorkItemMutation) ResetGenerationTokens() {
	m.generation_tokens = nil
	m.addgeneration_tokens = nil
	delete(m.clearedFields, workitem.FieldGenerationTokens)
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (m *WorkItemMutation) SetGenerationTimeMs(i int) {
	m.generation_time_ms = &i
	m.addgeneration_time_ms = nil
}

// GenerationTimeMs returns the value of the "generation_time_ms" field in the mutation.
func (m *WorkItemMutation) GenerationTimeMs() (r int, exists bool) {
	v := m.generation_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTimeMs returns the old "generation_time_ms" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldGenerationTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTimeMs: %w", err)
	}
	return oldValue.GenerationTimeMs, nil
}

// AddGenerationTimeMs adds i to the "generation_time_ms" field.
func (m *WorkItemMutation) AddGenerationTimeMs(i int) {
	if m.addgeneration_time_ms != nil {
		*m.addgeneration_time_ms += i
	} else {
		m.addgeneration_time_ms = &i
	}
}

// AddedGenerationTimeMs returns the value that was added to the "generation_time_ms" field in this mutation.
func (m *WorkItemMutation) AddedGenerationTimeMs() (r int, exists bool) {
	v := m.addgeneration_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (m *WorkItemMutation) ClearGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	m.clearedFields[workitem.FieldGenerationTimeMs] = struct{}{}
}

// GenerationTimeMsCleared returns if the "generation_time_ms" field was cleared in this mutation.
func (m *WorkItemMutation) GenerationTimeMsCleared() bool {
	_, ok := m.clearedFields[workitem.FieldGenerationTimeMs]
	return ok
}

// ResetGenerationTimeMs resets all changes to the "generation_time_ms" field.
func (m *WorkItemMutation) ResetGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	delete(m.clearedFields, workitem.FieldGenerationTimeMs)
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (m *WorkItemMutation) SetUpstreamCommentID(s string) {
	m.upstream_comment_id = &s
}

// UpstreamCommentID returns the value of the "upstream_comment_id" field in the mutation.
func (m *WorkItemMutation) UpstreamCommentID() (r string, exists bool) {
	v := m.upstream_comment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamCommentID returns the old "upstream_comment_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldUpstreamCommentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamCommentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamCommentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamCommentID: %w", err)
	}
	return oldValue.UpstreamCommentID, nil
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (m *WorkItemMutation) ClearUpstreamCommentID() {
	m.upstream_comment_id = nil
	m.clearedFields[workitem.FieldUpstreamCommentID] = struct{}{}
}

// UpstreamCommentIDCleared returns if the "upstream_comment_id" field was cleared in this mutation.
func (m *WorkItemMutation) UpstreamCommentIDCleared() bool {
	_, ok := m.clearedFields[workitem.FieldUpstreamCommentID]
	return ok
}

// ResetUpstreamCommentID resets all changes to the "upstream_comment_id" field.
func (m *WorkItemMutation) ResetUpstreamCommentID() {
	m.upstream_comment_id = nil
	delete(m.clearedFields, workitem.FieldUpstreamCommentID)
}

// SetStatus sets the "status" field.
func (m *WorkItemMutation) SetStatus(w workitem.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkItemMutation) Status() (r workitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldStatus(ctx context.Context) (v workitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkItemMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPostedAt sets the "posted_at" field.
func (m *WorkItemMutation) SetPostedAt(t time.Time) {
	m.posted_at = &t
}

// PostedAt returns the value of the "posted_at" field in the mutation.
func (m *WorkItemMutation) PostedAt() (r time.Time, exists bool) {
	v := m.posted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedAt returns the old "posted_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldPostedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedAt: %w", err)
	}
	return oldValue.PostedAt, nil
}

// ClearPostedAt clears the value of the "posted_at" field.
func (m *WorkItemMutation) ClearPostedAt() {
	m.posted_at = nil
	m.clearedFields[workitem.FieldPostedAt] = struct{}{}
}

// PostedAtCleared returns if the "posted_at" field was cleared in this mutation.
func (m *WorkItemMutation) PostedAtCleared() bool {
	_, ok := m.clearedFields[workitem.FieldPostedAt]
	return ok
}

// ResetPostedAt resets all changes to the "posted_at" field.
func (m *WorkItemMutation) ResetPostedAt() {
	m.posted_at = nil
	delete(m.clearedFields, workitem.FieldPostedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *WorkItemMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *WorkItemMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *WorkItemMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[workitem.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *WorkItemMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[workitem.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *WorkItemMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, workitem.FieldFailedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkItemMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkItemMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkItemMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workitem.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkItemMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workitem.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkItemMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workitem.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *WorkItemMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *WorkItemMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *WorkItemMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *WorkItemMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *WorkItemMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// ClearProcess clears the "process" edge to the Process entity.
func (m *WorkItemMutation) ClearProcess() {
	m.clearedprocess = true
	m.clearedFields[workitem.FieldProcessID] = struct{}{}
}

// ProcessCleared reports if the "process" edge to the Process entity was cleared.
func (m *WorkItemMutation) ProcessCleared() bool {
	return m.clearedprocess
}

// ProcessIDs returns the "process" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessID instead. It exists only for internal usage by the builders.
func (m *WorkItemMutation) ProcessIDs() (ids []string) {
	if id := m.process; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcess resets all changes to the "process" edge.
func (m *WorkItemMutation) ResetProcess() {
	m.process = nil
	m.clearedprocess = false
}

// ClearLogin clears the "login" edge to the UpstreamLogin entity.
func (m *WorkItemMutation) ClearLogin() {
	m.clearedlogin = true
	m.clearedFields[workitem.FieldLoginID] = struct{}{}
}

// LoginCleared reports if the "login" edge to the UpstreamLogin entity was cleared.
func (m *WorkItemMutation) LoginCleared() bool {
	return m.clearedlogin
}

// LoginIDs returns the "login" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LoginID instead. It exists only for internal usage by the builders.
func (m *WorkItemMutation) LoginIDs() (ids []string) {
	if id := m.login; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLogin resets all changes to the "login" edge.
func (m *WorkItemMutation) ResetLogin() {
	m.login = nil
	m.clearedlogin = false
}

// Where appends a list predicates to the WorkItemMutation builder.
func (m *WorkItemMutation) Where(ps ...predicate.WorkItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkItem).
func (m *WorkItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkItemMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.process != nil {
		fields = append(fields, workitem.FieldProcessID)
	}
	if m.login != nil {
		fields = append(fields, workitem.FieldLoginID)
	}
	if m.user_id != nil {
		fields = append(fields, workitem.FieldUserID)
	}
	if m.article_id != nil {
		fields = append(fields, workitem.FieldArticleID)
	}
	if m.prompt_template_id != nil {
		fields = append(fields, workitem.FieldPromptTemplateID)
	}
	if m.llm_config_id != nil {
		fields = append(fields, workitem.FieldLlmConfigID)
	}
	if m.article_title != nil {
		fields = append(fields, workitem.FieldArticleTitle)
	}
	if m.article_author != nil {
		fields = append(fields, workitem.FieldArticleAuthor)
	}
	if m.article_category_id != nil {
		fields = append(fields, workitem.FieldArticleCategoryID)
	}
	if m.article_task_id != nil {
		fields = append(fields, workitem.FieldArticleTaskID)
	}
	if m.article_url != nil {
		fields = append(fields, workitem.FieldArticleURL)
	}
	if m.article_content != nil {
		fields = append(fields, workitem.FieldArticleContent)
	}
	if m.article_html != nil {
		fields = append(fields, workitem.FieldArticleHTML)
	}
	if m.article_published_at != nil {
		fields = append(fields, workitem.FieldArticlePublishedAt)
	}
	if m.article_edited_at != nil {
		fields = append(fields, workitem.FieldArticleEditedAt)
	}
	if m.scraped_at != nil {
		fields = append(fields, workitem.FieldScrapedAt)
	}
	if m.comment_text != nil {
		fields = append(fields, workitem.FieldCommentText)
	}
	if m.llm_model_name != nil {
		fields = append(fields, workitem.FieldLlmModelName)
	}
	if m.llm_provider_name != nil {
		fields = append(fields, workitem.FieldLlmProviderName)
	}
	if m.generation_tokens != nil {
		fields = append(fields, workitem.FieldGenerationTokens)
	}
	if m.generation_time_ms != nil {
		fields = append(fields, workitem.FieldGenerationTimeMs)
	}
	if m.upstream_comment_id != nil {
		fields = append(fields, workitem.FieldUpstreamCommentID)
	}
	if m.status != nil {
		fields = append(fields, workitem.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, workitem.FieldCreatedAt)
	}
	if m.posted_at != nil {
		fields = append(fields, workitem.FieldPostedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, workitem.FieldFailedAt)
	}
	if m.error_message != nil {
		fields = append(fields, workitem.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, workitem.FieldRetryCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workitem.FieldProcessID:
		return m.ProcessID()
	case workitem.FieldLoginID:
		return m.LoginID()
	case workitem.FieldUserID:
		return m.UserID()
	case workitem.FieldArticleID:
		return m.ArticleID()
	case workitem.FieldPromptTemplateID:
		return m.PromptTemplateID()
	case workitem.FieldLlmConfigID:
		return m.LlmConfigID()
	case workitem.FieldArticleTitle:
		return m.ArticleTitle()
	case workitem.FieldArticleAuthor:
		return m.ArticleAuthor()
	case workitem.FieldArticleCategoryID:
		return m.ArticleCategoryID()
	case workitem.FieldArticleTaskID:
		return m.ArticleTaskID()
	case workitem.FieldArticleURL:
		return m.ArticleURL()
	case workitem.FieldArticleContent:
		return m.ArticleContent()
	case workitem.FieldArticleHTML:
		return m.ArticleHTML()
	case workitem.FieldArticlePublishedAt:
		return m.ArticlePublishedAt()
	case workitem.FieldArticleEditedAt:
		return m.ArticleEditedAt()
	case workitem.FieldScrapedAt:
		return m.ScrapedAt()
	case workitem.FieldCommentText:
		return m.CommentText()
	case workitem.FieldLlmModelName:
		return m.LlmModelName()
	case workitem.FieldLlmProviderName:
		return m.LlmProviderName()
	case workitem.FieldGenerationTokens:
		return m.GenerationTokens()
	case workitem.FieldGenerationTimeMs:
		return m.GenerationTimeMs()
	case workitem.FieldUpstreamCommentID:
		return m.UpstreamCommentID()
	case workitem.FieldStatus:
		return m.Status()
	case workitem.FieldCreatedAt:
		return m.CreatedAt()
	case workitem.FieldPostedAt:
		return m.PostedAt()
	case workitem.FieldFailedAt:
		return m.FailedAt()
	case workitem.FieldErrorMessage:
		return m.ErrorMessage()
	case workitem.FieldRetryCount:
		return m.RetryCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workitem.FieldProcessID:
		return m.OldProcessID(ctx)
	case workitem.FieldLoginID:
		return m.OldLoginID(ctx)
	case workitem.FieldUserID:
		return m.OldUserID(ctx)
	case workitem.FieldArticleID:
		return m.OldArticleID(ctx)
	case workitem.FieldPromptTemplateID:
		return m.OldPromptTemplateID(ctx)
	case workitem.FieldLlmConfigID:
		return m.OldLlmConfigID(ctx)
	case workitem.FieldArticleTitle:
		return m.OldArticleTitle(ctx)
	case workitem.FieldArticleAuthor:
		return m.OldArticleAuthor(ctx)
	case workitem.FieldArticleCategoryID:
		return m.OldArticleCategoryID(ctx)
	case workitem.FieldArticleTaskID:
		return m.OldArticleTaskID(ctx)
	case workitem.FieldArticleURL:
		return m.OldArticleURL(ctx)
	case workitem.FieldArticleContent:
		return m.OldArticleContent(ctx)
	case workitem.FieldArticleHTML:
		return m.OldArticleHTML(ctx)
	case workitem.FieldArticlePublishedAt:
		return m.OldArticlePublishedAt(ctx)
	case workitem.FieldArticleEditedAt:
		return m.OldArticleEditedAt(ctx)
	case workitem.FieldScrapedAt:
		return m.OldScrapedAt(ctx)
	case workitem.FieldCommentText:
		return m.OldCommentText(ctx)
	case workitem.FieldLlmModelName:
		return m.OldLlmModelName(ctx)
	case workitem.FieldLlmProviderName:
		return m.OldLlmProviderName(ctx)
	case workitem.FieldGenerationTokens:
		return m.OldGenerationTokens(ctx)
	case workitem.FieldGenerationTimeMs:
		return m.OldGenerationTimeMs(ctx)
	case workitem.FieldUpstreamCommentID:
		return m.OldUpstreamCommentID(ctx)
	case workitem.FieldStatus:
		return m.OldStatus(ctx)
	case workitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workitem.FieldPostedAt:
		return m.OldPostedAt(ctx)
	case workitem.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case workitem.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workitem.FieldRetryCount:
		return m.OldRetryCount(ctx)
	}
	return nil, fmt.Errorf("unknown WorkItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workitem.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case workitem.FieldLoginID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoginID(v)
		return nil
	case workitem.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workitem.FieldArticleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case workitem.FieldPromptTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplateID(v)
		return nil
	case workitem.FieldLlmConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmConfigID(v)
		return nil
	case workitem.FieldArticleTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleTitle(v)
		return nil
	case workitem.FieldArticleAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleAuthor(v)
		return nil
	case workitem.FieldArticleCategoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleCategoryID(v)
		return nil
	case workitem.FieldArticleTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleTaskID(v)
		return nil
	case workitem.FieldArticleURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleURL(v)
		return nil
	case workitem.FieldArticleContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleContent(v)
		return nil
	case workitem.FieldArticleHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleHTML(v)
		return nil
	case workitem.FieldArticlePublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticlePublishedAt(v)
		return nil
	case workitem.FieldArticleEditedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleEditedAt(v)
		return nil
	case workitem.FieldScrapedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrapedAt(v)
		return nil
	case workitem.FieldCommentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentText(v)
		return nil
	case workitem.FieldLlmModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModelName(v)
		return nil
	case workitem.FieldLlmProviderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProviderName(v)
		return nil
	case workitem.FieldGenerationTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTokens(v)
		return nil
	case workitem.FieldGenerationTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTimeMs(v)
		return nil
	case workitem.FieldUpstreamCommentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamCommentID(v)
		return nil
	case workitem.FieldStatus:
		v, ok := value.(workitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workitem.FieldPostedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedAt(v)
		return nil
	case workitem.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case workitem.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workitem.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown WorkItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkItemMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_category_id != nil {
		fields = append(fields, workitem.FieldArticleCategoryID)
	}
	if m.addarticle_task_id != nil {
		fields = append(fields, workitem.FieldArticleTaskID)
	}
	if m.addgeneration_tokens != nil {
		fields = append(fields, workitem.FieldGenerationTokens)
	}
	if m.addgeneration_time_ms != nil {
		fields = append(fields, workitem.FieldGenerationTimeMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, workitem.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workitem.FieldArticleCategoryID:
		return m.AddedArticleCategoryID()
	case workitem.FieldArticleTaskID:
		return m.AddedArticleTaskID()
	case workitem.FieldGenerationTokens:
		return m.AddedGenerationTokens()
	case workitem.FieldGenerationTimeMs:
		return m.AddedGenerationTimeMs()
	case workitem.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workitem.FieldArticleCategoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleCategoryID(v)
		return nil
	case workitem.FieldArticleTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleTaskID(v)
		return nil
	case workitem.FieldGenerationTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTokens(v)
		return nil
	case workitem.FieldGenerationTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTimeMs(v)
		return nil
	case workitem.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown WorkItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workitem.FieldPromptTemplateID) {
		fields = append(fields, workitem.FieldPromptTemplateID)
	}
	if m.FieldCleared(workitem.FieldLlmConfigID) {
		fields = append(fields, workitem.FieldLlmConfigID)
	}
	if m.FieldCleared(workitem.FieldArticleTitle) {
		fields = append(fields, workitem.FieldArticleTitle)
	}
	if m.FieldCleared(workitem.FieldArticleAuthor) {
		fields = append(fields, workitem.FieldArticleAuthor)
	}
	if m.FieldCleared(workitem.FieldArticleCategoryID) {
		fields = append(fields, workitem.FieldArticleCategoryID)
	}
	if m.FieldCleared(workitem.FieldArticleTaskID) {
		fields = append(fields, workitem.FieldArticleTaskID)
	}
	if m.FieldCleared(workitem.FieldArticleURL) {
		fields = append(fields, workitem.FieldArticleURL)
	}
	if m.FieldCleared(workitem.FieldArticleContent) {
		fields = append(fields, workitem.FieldArticleContent)
	}
	if m.FieldCleared(workitem.FieldArticleHTML) {
		fields = append(fields, workitem.FieldArticleHTML)
	}
	if m.FieldCleared(workitem.FieldArticlePublishedAt) {
		fields = append(fields, workitem.FieldArticlePublishedAt)
	}
	if m.FieldCleared(workitem.FieldArticleEditedAt) {
		fields = append(fields, workitem.FieldArticleEditedAt)
	}
	if m.FieldCleared(workitem.FieldScrapedAt) {
		fields = append(fields, workitem.FieldScrapedAt)
	}
	if m.FieldCleared(workitem.FieldCommentText) {
		fields = append(fields, workitem.FieldCommentText)
	}
	if m.FieldCleared(workitem.FieldLlmModelName) {
		fields = append(fields, workitem.FieldLlmModelName)
	}
	if m.FieldCleared(workitem.FieldLlmProviderName) {
		fields = append(fields, workitem.FieldLlmProviderName)
	}
	if m.FieldCleared(workitem.FieldGenerationTokens) {
		fields = append(fields, workitem.FieldGenerationTokens)
	}
	if m.FieldCleared(workitem.FieldGenerationTimeMs) {
		fields = append(fields, workitem.FieldGenerationTimeMs)
	}
	if m.FieldCleared(workitem.FieldUpstreamCommentID) {
		fields = append(fields, workitem.FieldUpstreamCommentID)
	}
	if m.FieldCleared(workitem.FieldPostedAt) {
		fields = append(fields, workitem.FieldPostedAt)
	}
	if m.FieldCleared(workitem.FieldFailedAt) {
		fields = append(fields, workitem.FieldFailedAt)
	}
	if m.FieldCleared(workitem.FieldErrorMessage) {
		fields = append(fields, workitem.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkItemMutation) ClearField(name string) error {
	switch name {
	case workitem.FieldPromptTemplateID:
		m.ClearPromptTemplateID()
		return nil
	case workitem.FieldLlmConfigID:
		m.ClearLlmConfigID()
		return nil
	case workitem.FieldArticleTitle:
		m.ClearArticleTitle()
		return nil
	case workitem.FieldArticleAuthor:
		m.ClearArticleAuthor()
		return nil
	case workitem.FieldArticleCategoryID:
		m.ClearArticleCategoryID()
		return nil
	case workitem.FieldArticleTaskID:
		m.ClearArticleTaskID()
		return nil
	case workitem.FieldArticleURL:
		m.ClearArticleURL()
		return nil
	case workitem.FieldArticleContent:
		m.ClearArticleContent()
		return nil
	case workitem.FieldArticleHTML:
		m.ClearArticleHTML()
		return nil
	case workitem.FieldArticlePublishedAt:
		m.ClearArticlePublishedAt()
		return nil
	case workitem.FieldArticleEditedAt:
		m.ClearArticleEditedAt()
		return nil
	case workitem.FieldScrapedAt:
		m.ClearScrapedAt()
		return nil
	case workitem.FieldCommentText:
		m.ClearCommentText()
		return nil
	case workitem.FieldLlmModelName:
		m.ClearLlmModelName()
		return nil
	case workitem.FieldLlmProviderName:
		m.ClearLlmProviderName()
		return nil
	case workitem.FieldGenerationTokens:
		m.ClearGenerationTokens()
		return nil
	case workitem.FieldGenerationTimeMs:
		m.ClearGenerationTimeMs()
		return nil
	case workitem.FieldUpstreamCommentID:
		m.ClearUpstreamCommentID()
		return nil
	case workitem.FieldPostedAt:
		m.ClearPostedAt()
		return nil
	case workitem.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	case workitem.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkItemMutation) ResetField(name string) error {
	switch name {
	case workitem.FieldProcessID:
		m.ResetProcessID()
		return nil
	case workitem.FieldLoginID:
		m.ResetLoginID()
		return nil
	case workitem.FieldUserID:
		m.ResetUserID()
		return nil
	case workitem.FieldArticleID:
		m.ResetArticleID()
		return nil
	case workitem.FieldPromptTemplateID:
		m.ResetPromptTemplateID()
		return nil
	case workitem.FieldLlmConfigID:
		m.ResetLlmConfigID()
		return nil
	case workitem.FieldArticleTitle:
		m.ResetArticleTitle()
		return nil
	case workitem.FieldArticleAuthor:
		m.ResetArticleAuthor()
		return nil
	case workitem.FieldArticleCategoryID:
		m.ResetArticleCategoryID()
		return nil
	case workitem.FieldArticleTaskID:
		m.ResetArticleTaskID()
		return nil
	case workitem.FieldArticleURL:
		m.ResetArticleURL()
		return nil
	case workitem.FieldArticleContent:
		m.ResetArticleContent()
		return nil
	case workitem.FieldArticleHTML:
		m.ResetArticleHTML()
		return nil
	case workitem.FieldArticlePublishedAt:
		m.ResetArticlePublishedAt()
		return nil
	case workitem.FieldArticleEditedAt:
		m.ResetArticleEditedAt()
		return nil
	case workitem.FieldScrapedAt:
		m.ResetScrapedAt()
		return nil
	case workitem.FieldCommentText:
		m.ResetCommentText()
		return nil
	case workitem.FieldLlmModelName:
		m.ResetLlmModelName()
		return nil
	case workitem.FieldLlmProviderName:
		m.ResetLlmProviderName()
		return nil
	case workitem.FieldGenerationTokens:
		m.ResetGenerationTokens()
		return nil
	case workitem.FieldGenerationTimeMs:
		m.ResetGenerationTimeMs()
		return nil
	case workitem.FieldUpstreamCommentID:
		m.ResetUpstreamCommentID()
		return nil
	case workitem.FieldStatus:
		m.ResetStatus()
		return nil
	case workitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workitem.FieldPostedAt:
		m.ResetPostedAt()
		return nil
	case workitem.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case workitem.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workitem.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	}
	return fmt.Errorf("unknown WorkItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.process != nil {
		edges = append(edges, workitem.EdgeProcess)
	}
	if m.login != nil {
		edges = append(edges, workitem.EdgeLogin)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workitem.EdgeProcess:
		if id := m.process; id != nil {
			return []ent.Value{*id}
		}
	case workitem.EdgeLogin:
		if id := m.login; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprocess {
		edges = append(edges, workitem.EdgeProcess)
	}
	if m.clearedlogin {
		edges = append(edges, workitem.EdgeLogin)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkItemMutation) EdgeCleared(name string) bool {
	switch name {
	case workitem.EdgeProcess:
		return m.clearedprocess
	case workitem.EdgeLogin:
		return m.clearedlogin
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkItemMutation) ClearEdge(name string) error {
	switch name {
	case workitem.EdgeProcess:
		m.ClearProcess()
		return nil
	case workitem.EdgeLogin:
		m.ClearLogin()
		return nil
	}
	return fmt.Errorf("unknown WorkItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkItemMutation) ResetEdge(name string) error {
	switch name {
	case workitem.EdgeProcess:
		m.ResetProcess()
		return nil
	case workitem.EdgeLogin:
		m.ResetLogin()
		return nil
	}
	return fmt.Errorf("unknown WorkItem edge %s", name)
}
