// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
)

// PromptTemplateCreate is the builder for creating a PromptTemplate entity.
type PromptTemplateCreate struct {
	config
	mutation *PromptTemplateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PromptTemplateCreate) SetUserID(v string) *PromptTemplateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableUserID(v *string) *PromptTemplateCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *PromptTemplateCreate) SetCategory(v prompttemplate.Category) *PromptTemplateCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableCategory(v *prompttemplate.Category) *PromptTemplateCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PromptTemplateCreate) SetName(v string) *PromptTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PromptTemplateCreate) SetDescription(v string) *PromptTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableDescription(v *string) *PromptTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *PromptTemplateCreate) SetSystemPrompt(v string) *PromptTemplateCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (_c *PromptTemplateCreate) SetUserPromptTemplate(v string) *PromptTemplateCreate {
	_c.mutation.SetUserPromptTemplate(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PromptTemplateCreate) SetIsActive(v bool) *PromptTemplateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableIsActive(v *bool) *PromptTemplateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptTemplateCreate) SetCreatedAt(v time.Time) *PromptTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableCreatedAt(v *time.Time) *PromptTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptTemplateCreate) SetID(v string) *PromptTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddProcessIDs adds the "processes" edge to the Process entity by IDs.
func (_c *PromptTemplateCreate) AddProcessIDs(ids ...string) *PromptTemplateCreate {
	_c.mutation.AddProcessIDs(ids...)
	return _c
}

// AddProcesses adds the "processes" edges to the Process entity.
func (_c *PromptTemplateCreate) AddProcesses(v ...*Process) *PromptTemplateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProcessIDs(ids...)
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_c *PromptTemplateCreate) Mutation() *PromptTemplateMutation {
	return _c.mutation
}

// Save creates the PromptTemplate in the database.
func (_c *PromptTemplateCreate) Save(ctx context.Context) (*PromptTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptTemplateCreate) SaveX(ctx context.Context) *PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptTemplateCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := prompttemplate.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := prompttemplate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prompttemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptTemplateCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PromptTemplate.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := prompttemplate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PromptTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := prompttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "PromptTemplate.system_prompt"`)}
	}
	if _, ok := _c.mutation.UserPromptTemplate(); !ok {
		return &ValidationError{Name: "user_prompt_template", err: errors.New(`ent: missing required field "PromptTemplate.user_prompt_template"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PromptTemplate.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptTemplate.created_at"`)}
	}
	return nil
}

func (_c *PromptTemplateCreate) sqlSave(ctx context.Context) (*PromptTemplate, error) {
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
			return nil, fmt.Errorf("unexpected PromptTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptTemplateCreate) createSpec() (*PromptTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompttemplate.Table, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(prompttemplate.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(prompttemplate.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(prompttemplate.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.UserPromptTemplate(); ok {
		_spec.SetField(prompttemplate.FieldUserPromptTemplate, field.TypeString, value)
		_node.UserPromptTemplate = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(prompttemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prompttemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProcessesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   prompttemplate.ProcessesTable,
			Columns: prompttemplate.ProcessesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(process.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PromptTemplateCreateBulk is the builder for creating many PromptTemplate entities in bulk.
type PromptTemplateCreateBulk struct {
	config
	err      error
	builders []*PromptTemplateCreate
}

// Save creates the PromptTemplate entities in the database.
func (_c *PromptTemplateCreateBulk) Save(ctx context.Context) ([]*PromptTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptTemplateMutation)
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
func (_c *PromptTemplateCreateBulk) SaveX(ctx context.Context) []*PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
