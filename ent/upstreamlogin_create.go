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
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// UpstreamLoginCreate is the builder for creating a UpstreamLogin entity.
type UpstreamLoginCreate struct {
	config
	mutation *UpstreamLoginMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UpstreamLoginCreate) SetUserID(v string) *UpstreamLoginCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UpstreamLoginCreate) SetName(v string) *UpstreamLoginCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetUsernameEncrypted sets the "username_encrypted" field.
func (_c *UpstreamLoginCreate) SetUsernameEncrypted(v string) *UpstreamLoginCreate {
	_c.mutation.SetUsernameEncrypted(v)
	return _c
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (_c *UpstreamLoginCreate) SetPasswordEncrypted(v string) *UpstreamLoginCreate {
	_c.mutation.SetPasswordEncrypted(v)
	return _c
}

// SetIsAdmin sets the "is_admin" field.
func (_c *UpstreamLoginCreate) SetIsAdmin(v bool) *UpstreamLoginCreate {
	_c.mutation.SetIsAdmin(v)
	return _c
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_c *UpstreamLoginCreate) SetNillableIsAdmin(v *bool) *UpstreamLoginCreate {
	if v != nil {
		_c.SetIsAdmin(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *UpstreamLoginCreate) SetIsActive(v bool) *UpstreamLoginCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *UpstreamLoginCreate) SetNillableIsActive(v *bool) *UpstreamLoginCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *UpstreamLoginCreate) SetLastUsedAt(v time.Time) *UpstreamLoginCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *UpstreamLoginCreate) SetNillableLastUsedAt(v *time.Time) *UpstreamLoginCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UpstreamLoginCreate) SetCreatedAt(v time.Time) *UpstreamLoginCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UpstreamLoginCreate) SetNillableCreatedAt(v *time.Time) *UpstreamLoginCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UpstreamLoginCreate) SetID(v string) *UpstreamLoginCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by IDs.
func (_c *UpstreamLoginCreate) AddWorkItemIDs(ids ...string) *UpstreamLoginCreate {
	_c.mutation.AddWorkItemIDs(ids...)
	return _c
}

// AddWorkItems adds the "work_items" edges to the WorkItem entity.
func (_c *UpstreamLoginCreate) AddWorkItems(v ...*WorkItem) *UpstreamLoginCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkItemIDs(ids...)
}

// AddProcessIDs adds the "processes" edge to the Process entity by IDs.
func (_c *UpstreamLoginCreate) AddProcessIDs(ids ...string) *UpstreamLoginCreate {
	_c.mutation.AddProcessIDs(ids...)
	return _c
}

// AddProcesses adds the "processes" edges to the Process entity.
func (_c *UpstreamLoginCreate) AddProcesses(v ...*Process) *UpstreamLoginCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProcessIDs(ids...)
}

// Mutation returns the UpstreamLoginMutation object of the builder.
func (_c *UpstreamLoginCreate) Mutation() *UpstreamLoginMutation {
	return _c.mutation
}

// Save creates the UpstreamLogin in the database.
func (_c *UpstreamLoginCreate) Save(ctx context.Context) (*UpstreamLogin, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UpstreamLoginCreate) SaveX(ctx context.Context) *UpstreamLogin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpstreamLoginCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpstreamLoginCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UpstreamLoginCreate) defaults() {
	if _, ok := _c.mutation.IsAdmin(); !ok {
		v := upstreamlogin.DefaultIsAdmin
		_c.mutation.SetIsAdmin(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := upstreamlogin.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := upstreamlogin.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UpstreamLoginCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UpstreamLogin.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "UpstreamLogin.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := upstreamlogin.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UpstreamLogin.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsernameEncrypted(); !ok {
		return &ValidationError{Name: "username_encrypted", err: errors.New(`ent: missing required field "UpstreamLogin.username_encrypted"`)}
	}
	if _, ok := _c.mutation.PasswordEncrypted(); !ok {
		return &ValidationError{Name: "password_encrypted", err: errors.New(`ent: missing required field "UpstreamLogin.password_encrypted"`)}
	}
	if _, ok := _c.mutation.IsAdmin(); !ok {
		return &ValidationError{Name: "is_admin", err: errors.New(`ent: missing required field "UpstreamLogin.is_admin"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "UpstreamLogin.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UpstreamLogin.created_at"`)}
	}
	return nil
}

func (_c *UpstreamLoginCreate) sqlSave(ctx context.Context) (*UpstreamLogin, error) {
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
			return nil, fmt.Errorf("unexpected UpstreamLogin.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UpstreamLoginCreate) createSpec() (*UpstreamLogin, *sqlgraph.CreateSpec) {
	var (
		_node = &UpstreamLogin{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upstreamlogin.Table, sqlgraph.NewFieldSpec(upstreamlogin.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(upstreamlogin.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(upstreamlogin.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.UsernameEncrypted(); ok {
		_spec.SetField(upstreamlogin.FieldUsernameEncrypted, field.TypeString, value)
		_node.UsernameEncrypted = value
	}
	if value, ok := _c.mutation.PasswordEncrypted(); ok {
		_spec.SetField(upstreamlogin.FieldPasswordEncrypted, field.TypeString, value)
		_node.PasswordEncrypted = value
	}
	if value, ok := _c.mutation.IsAdmin(); ok {
		_spec.SetField(upstreamlogin.FieldIsAdmin, field.TypeBool, value)
		_node.IsAdmin = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(upstreamlogin.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(upstreamlogin.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(upstreamlogin.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upstreamlogin.WorkItemsTable,
			Columns: []string{upstreamlogin.WorkItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProcessesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   upstreamlogin.ProcessesTable,
			Columns: upstreamlogin.ProcessesPrimaryKey,
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

// UpstreamLoginCreateBulk is the builder for creating many UpstreamLogin entities in bulk.
type UpstreamLoginCreateBulk struct {
	config
	err      error
	builders []*UpstreamLoginCreate
}

// Save creates the UpstreamLogin entities in the database.
func (_c *UpstreamLoginCreateBulk) Save(ctx context.Context) ([]*UpstreamLogin, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UpstreamLogin, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UpstreamLoginMutation)
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
func (_c *UpstreamLoginCreateBulk) SaveX(ctx context.Context) []*UpstreamLogin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UpstreamLoginCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UpstreamLoginCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
