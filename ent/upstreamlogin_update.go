// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// UpstreamLoginUpdate is the builder for updating UpstreamLogin entities.
type UpstreamLoginUpdate struct {
	config
	hooks    []Hook
	mutation *UpstreamLoginMutation
}

// Where appends a list predicates to the UpstreamLoginUpdate builder.
func (_u *UpstreamLoginUpdate) Where(ps ...predicate.UpstreamLogin) *UpstreamLoginUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UpstreamLoginUpdate) SetName(v string) *UpstreamLoginUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UpstreamLoginUpdate) SetNillableName(v *string) *UpstreamLoginUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUsernameEncrypted sets the "username_encrypted" field.
func (_u *UpstreamLoginUpdate) SetUsernameEncrypted(v string) *UpstreamLoginUpdate {
	_u.mutation.SetUsernameEncrypted(v)
	return _u
}

// SetNillableUsernameEncrypted sets the "username_encrypted" field if the given value is not nil.
func (_u *UpstreamLoginUpdate) SetNillableUsernameEncrypted(v *string) *UpstreamLoginUpdate {
	if v != nil {
		_u.SetUsernameEncrypted(*v)
	}
	return _u
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (_u *UpstreamLoginUpdate) SetPasswordEncrypted(v string) *UpstreamLoginUpdate {
	_u.mutation.SetPasswordEncrypted(v)
	return _u
}

// SetNillablePasswordEncrypted sets the "password_encrypted" field if the given value is not nil.
func (_u *UpstreamLoginUpdate) SetNillablePasswordEncrypted(v *string) *UpstreamLoginUpdate {
	if v != nil {
		_u.SetPasswordEncrypted(*v)
	}
	return _u
}

// SetIsAdmin sets the "is_admin" field.
func (_u *UpstreamLoginUpdate) SetIsAdmin(v bool) *UpstreamLoginUpdate {
	_u.mutation.SetIsAdmin(v)
	return _u
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_u *UpstreamLoginUpdate) SetNillableIsAdmin(v *bool) *UpstreamLoginUpdate {
	if v != nil {
		_u.SetIsAdmin(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UpstreamLoginUpdate) SetIsActive(v bool) *UpstreamLoginUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UpstreamLoginUpdate) SetNillableIsActive(v *bool) *UpstreamLoginUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UpstreamLoginUpdate) SetLastUsedAt(v time.Time) *UpstreamLoginUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UpstreamLoginUpdate) SetNillableLastUsedAt(v *time.Time) *UpstreamLoginUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *UpstreamLoginUpdate) ClearLastUsedAt() *UpstreamLoginUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by IDs.
func (_u *UpstreamLoginUpdate) AddWorkItemIDs(ids ...string) *UpstreamLoginUpdate {
	_u.mutation.AddWorkItemIDs(ids...)
	return _u
}

// AddWorkItems adds the "work_items" edges to the WorkItem entity.
func (_u *UpstreamLoginUpdate) AddWorkItems(v ...*WorkItem) *UpstreamLoginUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkItemIDs(ids...)
}

// AddProcessIDs adds the "processes" edge to the Process entity by IDs.
func (_u *UpstreamLoginUpdate) AddProcessIDs(ids ...string) *UpstreamLoginUpdate {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the Process entity.
func (_u *UpstreamLoginUpdate) AddProcesses(v ...*Process) *UpstreamLoginUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the UpstreamLoginMutation object of the builder.
func (_u *UpstreamLoginUpdate) Mutation() *UpstreamLoginMutation {
	return _u.mutation
}

// ClearWorkItems clears all "work_items" edges to the WorkItem entity.
func (_u *UpstreamLoginUpdate) ClearWorkItems() *UpstreamLoginUpdate {
	_u.mutation.ClearWorkItems()
	return _u
}

// RemoveWorkItemIDs removes the "work_items" edge to WorkItem entities by IDs.
func (_u *UpstreamLoginUpdate) RemoveWorkItemIDs(ids ...string) *UpstreamLoginUpdate {
	_u.mutation.RemoveWorkItemIDs(ids...)
	return _u
}

// RemoveWorkItems removes "work_items" edges to WorkItem entities.
func (_u *UpstreamLoginUpdate) RemoveWorkItems(v ...*WorkItem) *UpstreamLoginUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkItemIDs(ids...)
}

// ClearProcesses clears all "processes" edges to the Process entity.
func (_u *UpstreamLoginUpdate) ClearProcesses() *UpstreamLoginUpdate {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to Process entities by IDs.
func (_u *UpstreamLoginUpdate) RemoveProcessIDs(ids ...string) *UpstreamLoginUpdate {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to Process entities.
func (_u *UpstreamLoginUpdate) RemoveProcesses(v ...*Process) *UpstreamLoginUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UpstreamLoginUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpstreamLoginUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UpstreamLoginUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpstreamLoginUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpstreamLoginUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := upstreamlogin.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UpstreamLogin.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UpstreamLoginUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upstreamlogin.Table, upstreamlogin.Columns, sqlgraph.NewFieldSpec(upstreamlogin.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(upstreamlogin.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsernameEncrypted(); ok {
		_spec.SetField(upstreamlogin.FieldUsernameEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordEncrypted(); ok {
		_spec.SetField(upstreamlogin.FieldPasswordEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAdmin(); ok {
		_spec.SetField(upstreamlogin.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(upstreamlogin.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(upstreamlogin.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(upstreamlogin.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkItemsIDs(); len(nodes) > 0 && !_u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upstreamlogin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UpstreamLoginUpdateOne is the builder for updating a single UpstreamLogin entity.
type UpstreamLoginUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UpstreamLoginMutation
}

// SetName sets the "name" field.
func (_u *UpstreamLoginUpdateOne) SetName(v string) *UpstreamLoginUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UpstreamLoginUpdateOne) SetNillableName(v *string) *UpstreamLoginUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetUsernameEncrypted sets the "username_encrypted" field.
func (_u *UpstreamLoginUpdateOne) SetUsernameEncrypted(v string) *UpstreamLoginUpdateOne {
	_u.mutation.SetUsernameEncrypted(v)
	return _u
}

// SetNillableUsernameEncrypted sets the "username_encrypted" field if the given value is not nil.
func (_u *UpstreamLoginUpdateOne) SetNillableUsernameEncrypted(v *string) *UpstreamLoginUpdateOne {
	if v != nil {
		_u.SetUsernameEncrypted(*v)
	}
	return _u
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (_u *UpstreamLoginUpdateOne) SetPasswordEncrypted(v string) *UpstreamLoginUpdateOne {
	_u.mutation.SetPasswordEncrypted(v)
	return _u
}

// SetNillablePasswordEncrypted sets the "password_encrypted" field if the given value is not nil.
func (_u *UpstreamLoginUpdateOne) SetNillablePasswordEncrypted(v *string) *UpstreamLoginUpdateOne {
	if v != nil {
		_u.SetPasswordEncrypted(*v)
	}
	return _u
}

// SetIsAdmin sets the "is_admin" field.
func (_u *UpstreamLoginUpdateOne) SetIsAdmin(v bool) *UpstreamLoginUpdateOne {
	_u.mutation.SetIsAdmin(v)
	return _u
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (_u *UpstreamLoginUpdateOne) SetNillableIsAdmin(v *bool) *UpstreamLoginUpdateOne {
	if v != nil {
		_u.SetIsAdmin(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UpstreamLoginUpdateOne) SetIsActive(v bool) *UpstreamLoginUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UpstreamLoginUpdateOne) SetNillableIsActive(v *bool) *UpstreamLoginUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UpstreamLoginUpdateOne) SetLastUsedAt(v time.Time) *UpstreamLoginUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UpstreamLoginUpdateOne) SetNillableLastUsedAt(v *time.Time) *UpstreamLoginUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *UpstreamLoginUpdateOne) ClearLastUsedAt() *UpstreamLoginUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by IDs.
func (_u *UpstreamLoginUpdateOne) AddWorkItemIDs(ids ...string) *UpstreamLoginUpdateOne {
	_u.mutation.AddWorkItemIDs(ids...)
	return _u
}

// AddWorkItems adds the "work_items" edges to the WorkItem entity.
func (_u *UpstreamLoginUpdateOne) AddWorkItems(v ...*WorkItem) *UpstreamLoginUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkItemIDs(ids...)
}

// AddProcessIDs adds the "processes" edge to the Process entity by IDs.
func (_u *UpstreamLoginUpdateOne) AddProcessIDs(ids ...string) *UpstreamLoginUpdateOne {
	_u.mutation.AddProcessIDs(ids...)
	return _u
}

// AddProcesses adds the "processes" edges to the Process entity.
func (_u *UpstreamLoginUpdateOne) AddProcesses(v ...*Process) *UpstreamLoginUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessIDs(ids...)
}

// Mutation returns the UpstreamLoginMutation object of the builder.
func (_u *UpstreamLoginUpdateOne) Mutation() *UpstreamLoginMutation {
	return _u.mutation
}

// ClearWorkItems clears all "work_items" edges to the WorkItem entity.
func (_u *UpstreamLoginUpdateOne) ClearWorkItems() *UpstreamLoginUpdateOne {
	_u.mutation.ClearWorkItems()
	return _u
}

// RemoveWorkItemIDs removes the "work_items" edge to WorkItem entities by IDs.
func (_u *UpstreamLoginUpdateOne) RemoveWorkItemIDs(ids ...string) *UpstreamLoginUpdateOne {
	_u.mutation.RemoveWorkItemIDs(ids...)
	return _u
}

// RemoveWorkItems removes "work_items" edges to WorkItem entities.
func (_u *UpstreamLoginUpdateOne) RemoveWorkItems(v ...*WorkItem) *UpstreamLoginUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkItemIDs(ids...)
}

// ClearProcesses clears all "processes" edges to the Process entity.
func (_u *UpstreamLoginUpdateOne) ClearProcesses() *UpstreamLoginUpdateOne {
	_u.mutation.ClearProcesses()
	return _u
}

// RemoveProcessIDs removes the "processes" edge to Process entities by IDs.
func (_u *UpstreamLoginUpdateOne) RemoveProcessIDs(ids ...string) *UpstreamLoginUpdateOne {
	_u.mutation.RemoveProcessIDs(ids...)
	return _u
}

// RemoveProcesses removes "processes" edges to Process entities.
func (_u *UpstreamLoginUpdateOne) RemoveProcesses(v ...*Process) *UpstreamLoginUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessIDs(ids...)
}

// Where appends a list predicates to the UpstreamLoginUpdate builder.
func (_u *UpstreamLoginUpdateOne) Where(ps ...predicate.UpstreamLogin) *UpstreamLoginUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UpstreamLoginUpdateOne) Select(field string, fields ...string) *UpstreamLoginUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UpstreamLogin entity.
func (_u *UpstreamLoginUpdateOne) Save(ctx context.Context) (*UpstreamLogin, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UpstreamLoginUpdateOne) SaveX(ctx context.Context) *UpstreamLogin {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UpstreamLoginUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UpstreamLoginUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UpstreamLoginUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := upstreamlogin.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UpstreamLogin.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UpstreamLoginUpdateOne) sqlSave(ctx context.Context) (_node *UpstreamLogin, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upstreamlogin.Table, upstreamlogin.Columns, sqlgraph.NewFieldSpec(upstreamlogin.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UpstreamLogin.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upstreamlogin.FieldID)
		for _, f := range fields {
			if !upstreamlogin.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upstreamlogin.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(upstreamlogin.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsernameEncrypted(); ok {
		_spec.SetField(upstreamlogin.FieldUsernameEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordEncrypted(); ok {
		_spec.SetField(upstreamlogin.FieldPasswordEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsAdmin(); ok {
		_spec.SetField(upstreamlogin.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(upstreamlogin.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(upstreamlogin.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(upstreamlogin.FieldLastUsedAt, field.TypeTime)
	}
	if _u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkItemsIDs(); len(nodes) > 0 && !_u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessesIDs(); len(nodes) > 0 && !_u.mutation.ProcessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UpstreamLogin{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upstreamlogin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
