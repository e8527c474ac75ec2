// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
)

// PromptTemplateUpdate is the builder for updating PromptTemplate entities.
type PromptTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *PromptTemplateMutation
}

// Where appends a list predicates to the PromptTemplateUpdate builder.
func (_u *PromptTemplateUpdate) Where(ps ...predicate.PromptTemplate) *PromptTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PromptTemplateUpdate) SetUserID(v string) *PromptTemplateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableUserID(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PromptTemplateUpdate) ClearUserID() *PromptTemplateUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetCategory sets the "category" field.
func (_u *PromptTemplateUpdate) SetCategory(v prompttemplate.Category) *PromptTemplateUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableCategory(v *prompttemplate.Category) *PromptTemplateUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PromptTemplateUpdate) SetName(v string) *PromptTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableName(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PromptTemplateUpdate) SetDescription(v string) *PromptTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableDescription(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PromptTemplateUpdate) ClearDescription() *PromptTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptTemplateUpdate) SetSystemPrompt(v string) *PromptTemplateUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableSystemPrompt(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (_u *PromptTemplateUpdate) SetUserPromptTemplate(v string) *PromptTemplateUpdate {
	_u.mutation.SetUserPromptTemplate(v)
	return _u
}

// SetNillableUserPromptTemplate sets the "user_prompt_template" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableUserPromptTemplate(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetUserPromptTemplate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptTemplateUpdate) SetIsActive(v bool) *PromptTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableIsActive(v *bool) *PromptTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddProcessIDs adds the "processes" edge to the Process entity by IDs.
func (_u *PromptTemplateUpdate) AddProcessIDs(ids ...string) *PromptTemplateUpdate {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the Process entity.
func (_u *PromptTemplateUpdate) AddProcesses(v ...*Process) *PromptTemplateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_u *PromptTemplateUpdate) Mutation() *PromptTemplateMutation {
	return _u.mutation
}

// ClearProcesses clears all "processes" edges to the Process entity.
func (_u *PromptTemplateUpdate) ClearProcesses() *PromptTemplateUpdate {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to Process entities by IDs.
func (_u *PromptTemplateUpdate) RemoveProcessIDs(ids ...string) *PromptTemplateUpdate {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to Process entities.
func (_u *PromptTemplateUpdate) RemoveProcesses(v ...*Process) *PromptTemplateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptTemplateUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := prompttemplate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := prompttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompttemplate.Table, prompttemplate.Columns, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(prompttemplate.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(prompttemplate.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(prompttemplate.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(prompttemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(prompttemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPromptTemplate(); ok {
		_spec.SetField(prompttemplate.FieldUserPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompttemplate.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptTemplateUpdateOne is the builder for updating a single PromptTemplate entity.
type PromptTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptTemplateMutation
}

// SetUserID sets the "user_id" field.
func (_u *PromptTemplateUpdateOne) SetUserID(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableUserID(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PromptTemplateUpdateOne) ClearUserID() *PromptTemplateUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetCategory sets the "category" field.
func (_u *PromptTemplateUpdateOne) SetCategory(v prompttemplate.Category) *PromptTemplateUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableCategory(v *prompttemplate.Category) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PromptTemplateUpdateOne) SetName(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableName(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PromptTemplateUpdateOne) SetDescription(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableDescription(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PromptTemplateUpdateOne) ClearDescription() *PromptTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptTemplateUpdateOne) SetSystemPrompt(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableSystemPrompt(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (_u *PromptTemplateUpdateOne) SetUserPromptTemplate(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetUserPromptTemplate(v)
	return _u
}

// SetNillableUserPromptTemplate sets the "user_prompt_template" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableUserPromptTemplate(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetUserPromptTemplate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptTemplateUpdateOne) SetIsActive(v bool) *PromptTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableIsActive(v *bool) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddProcessIDs adds the "processes" edge to the Process entity by IDs.
func (_u *PromptTemplateUpdateOne) AddProcessIDs(ids ...string) *PromptTemplateUpdateOne {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the Process entity.
func (_u *PromptTemplateUpdateOne) AddProcesses(v ...*Process) *PromptTemplateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_u *PromptTemplateUpdateOne) Mutation() *PromptTemplateMutation {
	return _u.mutation
}

// ClearProcesses clears all "processes" edges to the Process entity.
func (_u *PromptTemplateUpdateOne) ClearProcesses() *PromptTemplateUpdateOne {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to Process entities by IDs.
func (_u *PromptTemplateUpdateOne) RemoveProcessIDs(ids ...string) *PromptTemplateUpdateOne {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to Process entities.
func (_u *PromptTemplateUpdateOne) RemoveProcesses(v ...*Process) *PromptTemplateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Where appends a list predicates to the PromptTemplateUpdate builder.
func (_u *PromptTemplateUpdateOne) Where(ps ...predicate.PromptTemplate) *PromptTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptTemplateUpdateOne) Select(field string, fields ...string) *PromptTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptTemplate entity.
func (_u *PromptTemplateUpdateOne) Save(ctx context.Context) (*PromptTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptTemplateUpdateOne) SaveX(ctx context.Context) *PromptTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := prompttemplate.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := prompttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptTemplateUpdateOne) sqlSave(ctx context.Context) (_node *PromptTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompttemplate.Table, prompttemplate.Columns, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompttemplate.FieldID)
		for _, f := range fields {
			if !prompttemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompttemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(prompttemplate.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(prompttemplate.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(prompttemplate.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(prompttemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(prompttemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserPromptTemplate(); ok {
		_spec.SetField(prompttemplate.FieldUserPromptTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompttemplate.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PromptTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
