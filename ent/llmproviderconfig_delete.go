// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// LLMProviderConfigDelete is the builder for deleting a LLMProviderConfig entity.
type LLMProviderConfigDelete struct {
	config
	hooks    []Hook
	mutation *LLMProviderConfigMutation
}

// Where appends a list predicates to the LLMProviderConfigDelete builder.
func (_d *LLMProviderConfigDelete) Where(ps ...predicate.LLMProviderConfig) *LLMProviderConfigDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LLMProviderConfigDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMProviderConfigDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LLMProviderConfigDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(llmproviderconfig.Table, sqlgraph.NewFieldSpec(llmproviderconfig.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LLMProviderConfigDeleteOne is the builder for deleting a single LLMProviderConfig entity.
type LLMProviderConfigDeleteOne struct {
	_d *LLMProviderConfigDelete
}

// Where appends a list predicates to the LLMProviderConfigDelete builder.
func (_d *LLMProviderConfigDeleteOne) Where(ps ...predicate.LLMProviderConfig) *LLMProviderConfigDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LLMProviderConfigDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{llmproviderconfig.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMProviderConfigDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
