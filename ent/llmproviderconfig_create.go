// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
)

// LLMProviderConfigCreate is the builder for creating a LLMProviderConfig entity.
type LLMProviderConfigCreate struct {
	config
	mutation *LLMProviderConfigMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LLMProviderConfigCreate) SetUserID(v string) *LLMProviderConfigCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMProviderConfigCreate) SetProvider(v llmproviderconfig.Provider) *LLMProviderConfigCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *LLMProviderConfigCreate) SetModelName(v string) *LLMProviderConfigCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (_c *LLMProviderConfigCreate) SetAPIKeyEncrypted(v string) *LLMProviderConfigCreate {
	_c.mutation.SetAPIKeyEncrypted(v)
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *LLMProviderConfigCreate) SetMaxTokens(v int) *LLMProviderConfigCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableMaxTokens(v *int) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *LLMProviderConfigCreate) SetTemperature(v float64) *LLMProviderConfigCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableTemperature(v *float64) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *LLMProviderConfigCreate) SetIsActive(v bool) *LLMProviderConfigCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableIsActive(v *bool) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMProviderConfigCreate) SetCreatedAt(v time.Time) *LLMProviderConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMProviderConfigCreate) SetNillableCreatedAt(v *time.Time) *LLMProviderConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMProviderConfigCreate) SetID(v string) *LLMProviderConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LLMProviderConfigMutation object of the builder.
func (_c *LLMProviderConfigCreate) Mutation() *LLMProviderConfigMutation {
	return _c.mutation
}

// Save creates the LLMProviderConfig in the database.
func (_c *LLMProviderConfigCreate) Save(ctx context.Context) (*LLMProviderConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMProviderConfigCreate) SaveX(ctx context.Context) *LLMProviderConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMProviderConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMProviderConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMProviderConfigCreate) defaults() {
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := llmproviderconfig.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := llmproviderconfig.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := llmproviderconfig.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmproviderconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMProviderConfigCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LLMProviderConfig.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMProviderConfig.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := llmproviderconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "LLMProviderConfig.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := llmproviderconfig.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "LLMProviderConfig.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.APIKeyEncrypted(); !ok {
		return &ValidationError{Name: "api_key_encrypted", err: errors.New(`ent: missing required field "LLMProviderConfig.api_key_encrypted"`)}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "LLMProviderConfig.max_tokens"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "LLMProviderConfig.temperature"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "LLMProviderConfig.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMProviderConfig.created_at"`)}
	}
	return nil
}

func (_c *LLMProviderConfigCreate) sqlSave(ctx context.Context) (*LLMProviderConfig, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LLMProviderConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMProviderConfigCreate) createSpec() (*LLMProviderConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMProviderConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmproviderconfig.Table, sqlgraph.NewFieldSpec(llmproviderconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(llmproviderconfig.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmproviderconfig.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(llmproviderconfig.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.APIKeyEncrypted(); ok {
		_spec.SetField(llmproviderconfig.FieldAPIKeyEncrypted, field.TypeString, value)
		_node.APIKeyEncrypted = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(llmproviderconfig.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(llmproviderconfig.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(llmproviderconfig.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmproviderconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LLMProviderConfigCreateBulk is the builder for creating many LLMProviderConfig entities in bulk.
type LLMProviderConfigCreateBulk struct {
	config
	err      error
	builders []*LLMProviderConfigCreate
}

// Save creates the LLMProviderConfig entities in the database.
func (_c *LLMProviderConfigCreateBulk) Save(ctx context.Context) ([]*LLMProviderConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMProviderConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMProviderConfigMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LLMProviderConfigCreateBulk) SaveX(ctx context.Context) []*LLMProviderConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMProviderConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMProviderConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
