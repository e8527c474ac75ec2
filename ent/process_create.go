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
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// ProcessCreate is the builder for creating a Process entity.
type ProcessCreate struct {
	config
	mutation *ProcessMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProcessCreate) SetUserID(v string) *ProcessCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProcessCreate) SetName(v string) *ProcessCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProcessCreate) SetDescription(v string) *ProcessCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableDescription(v *string) *ProcessCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessCreate) SetStatus(v process.Status) *ProcessCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableStatus(v *process.Status) *ProcessCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (_c *ProcessCreate) SetMaxDurationMinutes(v int) *ProcessCreate {
	_c.mutation.SetMaxDurationMinutes(v)
	return _c
}

// SetGenerateOnly sets the "generate_only" field.
func (_c *ProcessCreate) SetGenerateOnly(v bool) *ProcessCreate {
	_c.mutation.SetGenerateOnly(v)
	return _c
}

// SetNillableGenerateOnly sets the "generate_only" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableGenerateOnly(v *bool) *ProcessCreate {
	if v != nil {
		_c.SetGenerateOnly(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessCreate) SetStartedAt(v time.Time) *ProcessCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableStartedAt(v *time.Time) *ProcessCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetStoppedAt sets the "stopped_at" field.
func (_c *ProcessCreate) SetStoppedAt(v time.Time) *ProcessCreate {
	_c.mutation.SetStoppedAt(v)
	return _c
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableStoppedAt(v *time.Time) *ProcessCreate {
	if v != nil {
		_c.SetStoppedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ProcessCreate) SetExpiresAt(v time.Time) *ProcessCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableExpiresAt(v *time.Time) *ProcessCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetStopReason sets the "stop_reason" field.
func (_c *ProcessCreate) SetStopReason(v string) *ProcessCreate {
	_c.mutation.SetStopReason(v)
	return _c
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableStopReason(v *string) *ProcessCreate {
	if v != nil {
		_c.SetStopReason(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessCreate) SetErrorMessage(v string) *ProcessCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableErrorMessage(v *string) *ProcessCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFilterTab sets the "filter_tab" field.
func (_c *ProcessCreate) SetFilterTab(v string) *ProcessCreate {
	_c.mutation.SetFilterTab(v)
	return _c
}

// SetNillableFilterTab sets the "filter_tab" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableFilterTab(v *string) *ProcessCreate {
	if v != nil {
		_c.SetFilterTab(*v)
	}
	return _c
}

// SetFilterCategoryID sets the "filter_category_id" field.
func (_c *ProcessCreate) SetFilterCategoryID(v int) *ProcessCreate {
	_c.mutation.SetFilterCategoryID(v)
	return _c
}

// SetNillableFilterCategoryID sets the "filter_category_id" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableFilterCategoryID(v *int) *ProcessCreate {
	if v != nil {
		_c.SetFilterCategoryID(*v)
	}
	return _c
}

// SetFilterTaskID sets the "filter_task_id" field.
func (_c *ProcessCreate) SetFilterTaskID(v int) *ProcessCreate {
	_c.mutation.SetFilterTaskID(v)
	return _c
}

// SetNillableFilterTaskID sets the "filter_task_id" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableFilterTaskID(v *int) *ProcessCreate {
	if v != nil {
		_c.SetFilterTaskID(*v)
	}
	return _c
}

// SetFilterSearch sets the "filter_search" field.
func (_c *ProcessCreate) SetFilterSearch(v string) *ProcessCreate {
	_c.mutation.SetFilterSearch(v)
	return _c
}

// SetNillableFilterSearch sets the "filter_search" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableFilterSearch(v *string) *ProcessCreate {
	if v != nil {
		_c.SetFilterSearch(*v)
	}
	return _c
}

// SetFilterSort sets the "filter_sort" field.
func (_c *ProcessCreate) SetFilterSort(v string) *ProcessCreate {
	_c.mutation.SetFilterSort(v)
	return _c
}

// SetNillableFilterSort sets the "filter_sort" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableFilterSort(v *string) *ProcessCreate {
	if v != nil {
		_c.SetFilterSort(*v)
	}
	return _c
}

// SetArticleLimit sets the "article_limit" field.
func (_c *ProcessCreate) SetArticleLimit(v int) *ProcessCreate {
	_c.mutation.SetArticleLimit(v)
	return _c
}

// SetNillableArticleLimit sets the "article_limit" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableArticleLimit(v *int) *ProcessCreate {
	if v != nil {
		_c.SetArticleLimit(*v)
	}
	return _c
}

// SetDiscoveryTaskID sets the "discovery_task_id" field.
func (_c *ProcessCreate) SetDiscoveryTaskID(v string) *ProcessCreate {
	_c.mutation.SetDiscoveryTaskID(v)
	return _c
}

// SetNillableDiscoveryTaskID sets the "discovery_task_id" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableDiscoveryTaskID(v *string) *ProcessCreate {
	if v != nil {
		_c.SetDiscoveryTaskID(*v)
	}
	return _c
}

// SetPreparationTaskID sets the "preparation_task_id" field.
func (_c *ProcessCreate) SetPreparationTaskID(v string) *ProcessCreate {
	_c.mutation.SetPreparationTaskID(v)
	return _c
}

// SetNillablePreparationTaskID sets the "preparation_task_id" field if the given value is not nil.
func (_c *ProcessCreate) SetNillablePreparationTaskID(v *string) *ProcessCreate {
	if v != nil {
		_c.SetPreparationTaskID(*v)
	}
	return _c
}

// SetGenerationTaskID sets the "generation_task_id" field.
func (_c *ProcessCreate) SetGenerationTaskID(v string) *ProcessCreate {
	_c.mutation.SetGenerationTaskID(v)
	return _c
}

// SetNillableGenerationTaskID sets the "generation_task_id" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableGenerationTaskID(v *string) *ProcessCreate {
	if v != nil {
		_c.SetGenerationTaskID(*v)
	}
	return _c
}

// SetPostingTaskID sets the "posting_task_id" field.
func (_c *ProcessCreate) SetPostingTaskID(v string) *ProcessCreate {
	_c.mutation.SetPostingTaskID(v)
	return _c
}

// SetNillablePostingTaskID sets the "posting_task_id" field if the given value is not nil.
func (_c *ProcessCreate) SetNillablePostingTaskID(v *string) *ProcessCreate {
	if v != nil {
		_c.SetPostingTaskID(*v)
	}
	return _c
}

// SetLlmConfigID sets the "llm_config_id" field.
func (_c *ProcessCreate) SetLlmConfigID(v string) *ProcessCreate {
	_c.mutation.SetLlmConfigID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessCreate) SetCreatedAt(v time.Time) *ProcessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessCreate) SetNillableCreatedAt(v *time.Time) *ProcessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessCreate) SetID(v string) *ProcessCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by IDs.
func (_c *ProcessCreate) AddWorkItemIDs(ids ...string) *ProcessCreate {
	_c.mutation.AddWorkItemIDs(ids...)
	return _c
}

// AddWorkItems adds the "work_items" edges to the WorkItem entity.
func (_c *ProcessCreate) AddWorkItems(v ...*WorkItem) *ProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkItemIDs(ids...)
}

// SetLlmConfig sets the "llm_config" edge to the LLMProviderConfig entity.
func (_c *ProcessCreate) SetLlmConfig(v *LLMProviderConfig) *ProcessCreate {
	return _c.SetLlmConfigID(v.ID)
}

// AddLoginIDs adds the "logins" edge to the UpstreamLogin entity by IDs.
func (_c *ProcessCreate) AddLoginIDs(ids ...string) *ProcessCreate {
	_c.mutation.AddLoginIDs(ids...)
	return _c
}

// AddLogins adds the "logins" edges to the UpstreamLogin entity.
func (_c *ProcessCreate) AddLogins(v ...*UpstreamLogin) *ProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLoginIDs(ids...)
}

// AddPromptTemplateIDs adds the "prompt_templates" edge to the PromptTemplate entity by IDs.
func (_c *ProcessCreate) AddPromptTemplateIDs(ids ...string) *ProcessCreate {
	_c.mutation.AddPromptTemplateIDs(ids...)
	return _c
}

// AddPromptTemplates adds the "prompt_templates" edges to the PromptTemplate entity.
func (_c *ProcessCreate) AddPromptTemplates(v ...*PromptTemplate) *ProcessCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromptTemplateIDs(ids...)
}

// Mutation returns the ProcessMutation object of the builder.
func (_c *ProcessCreate) Mutation() *ProcessMutation {
	return _c.mutation
}

// Save creates the Process in the database.
func (_c *ProcessCreate) Save(ctx context.Context) (*Process, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessCreate) SaveX(ctx context.Context) *Process {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := process.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.GenerateOnly(); !ok {
		v := process.DefaultGenerateOnly
		_c.mutation.SetGenerateOnly(v)
	}
	if _, ok := _c.mutation.ArticleLimit(); !ok {
		v := process.DefaultArticleLimit
		_c.mutation.SetArticleLimit(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := process.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Process.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Process.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := process.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Process.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Process.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := process.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Process.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxDurationMinutes(); !ok {
		return &ValidationError{Name: "max_duration_minutes", err: errors.New(`ent: missing required field "Process.max_duration_minutes"`)}
	}
	if _, ok := _c.mutation.GenerateOnly(); !ok {
		return &ValidationError{Name: "generate_only", err: errors.New(`ent: missing required field "Process.generate_only"`)}
	}
	if _, ok := _c.mutation.ArticleLimit(); !ok {
		return &ValidationError{Name: "article_limit", err: errors.New(`ent: missing required field "Process.article_limit"`)}
	}
	if _, ok := _c.mutation.LlmConfigID(); !ok {
		return &ValidationError{Name: "llm_config_id", err: errors.New(`ent: missing required field "Process.llm_config_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Process.created_at"`)}
	}
	if len(_c.mutation.LlmConfigIDs()) == 0 {
		return &ValidationError{Name: "llm_config", err: errors.New(`ent: missing required edge "Process.llm_config"`)}
	}
	return nil
}

func (_c *ProcessCreate) sqlSave(ctx context.Context) (*Process, error) {
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
			return nil, fmt.Errorf("unexpected Process.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessCreate) createSpec() (*Process, *sqlgraph.CreateSpec) {
	var (
		_node = &Process{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(process.Table, sqlgraph.NewFieldSpec(process.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(process.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(process.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(process.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(process.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MaxDurationMinutes(); ok {
		_spec.SetField(process.FieldMaxDurationMinutes, field.TypeInt, value)
		_node.MaxDurationMinutes = value
	}
	if value, ok := _c.mutation.GenerateOnly(); ok {
		_spec.SetField(process.FieldGenerateOnly, field.TypeBool, value)
		_node.GenerateOnly = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(process.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.StoppedAt(); ok {
		_spec.SetField(process.FieldStoppedAt, field.TypeTime, value)
		_node.StoppedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(process.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.StopReason(); ok {
		_spec.SetField(process.FieldStopReason, field.TypeString, value)
		_node.StopReason = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(process.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FilterTab(); ok {
		_spec.SetField(process.FieldFilterTab, field.TypeString, value)
		_node.FilterTab = &value
	}
	if value, ok := _c.mutation.FilterCategoryID(); ok {
		_spec.SetField(process.FieldFilterCategoryID, field.TypeInt, value)
		_node.FilterCategoryID = &value
	}
	if value, ok := _c.mutation.FilterTaskID(); ok {
		_spec.SetField(process.FieldFilterTaskID, field.TypeInt, value)
		_node.FilterTaskID = &value
	}
	if value, ok := _c.mutation.FilterSearch(); ok {
		_spec.SetField(process.FieldFilterSearch, field.TypeString, value)
		_node.FilterSearch = &value
	}
	if value, ok := _c.mutation.FilterSort(); ok {
		_spec.SetField(process.FieldFilterSort, field.TypeString, value)
		_node.FilterSort = &value
	}
	if value, ok := _c.mutation.ArticleLimit(); ok {
		_spec.SetField(process.FieldArticleLimit, field.TypeInt, value)
		_node.ArticleLimit = value
	}
	if value, ok := _c.mutation.DiscoveryTaskID(); ok {
		_spec.SetField(process.FieldDiscoveryTaskID, field.TypeString, value)
		_node.DiscoveryTaskID = &value
	}
	if value, ok := _c.mutation.PreparationTaskID(); ok {
		_spec.SetField(process.FieldPreparationTaskID, field.TypeString, value)
		_node.PreparationTaskID = &value
	}
	if value, ok := _c.mutation.GenerationTaskID(); ok {
		_spec.SetField(process.FieldGenerationTaskID, field.TypeString, value)
		_node.GenerationTaskID = &value
	}
	if value, ok := _c.mutation.PostingTaskID(); ok {
		_spec.SetField(process.FieldPostingTaskID, field.TypeString, value)
		_node.PostingTaskID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(process.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   process.WorkItemsTable,
			Columns: []string{process.WorkItemsColumn},
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
	if nodes := _c.mutation.LlmConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   process.LlmConfigTable,
			Columns: []string{process.LlmConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llmproviderconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LlmConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LoginsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   process.LoginsTable,
			Columns: process.LoginsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upstreamlogin.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptTemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   process.PromptTemplatesTable,
			Columns: process.PromptTemplatesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessCreateBulk is the builder for creating many Process entities in bulk.
type ProcessCreateBulk struct {
	config
	err      error
	builders []*ProcessCreate
}

// Save creates the Process entities in the database.
func (_c *ProcessCreateBulk) Save(ctx context.Context) ([]*Process, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Process, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessMutation)
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
func (_c *ProcessCreateBulk) SaveX(ctx context.Context) []*Process {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
