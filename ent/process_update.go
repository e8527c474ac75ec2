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
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// ProcessUpdate is the builder for updating Process entities.
type ProcessUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessMutation
}

// Where appends a list predicates to the ProcessUpdate builder.
func (_u *ProcessUpdate) Where(ps ...predicate.Process) *ProcessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProcessUpdate) SetName(v string) *ProcessUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableName(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProcessUpdate) SetDescription(v string) *ProcessUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableDescription(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProcessUpdate) ClearDescription() *ProcessUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessUpdate) SetStatus(v process.Status) *ProcessUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableStatus(v *process.Status) *ProcessUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (_u *ProcessUpdate) SetMaxDurationMinutes(v int) *ProcessUpdate {
	_u.mutation.ResetMaxDurationMinutes()
	_u.mutation.SetMaxDurationMinutes(v)
	return _u
}

// SetNillableMaxDurationMinutes sets the "max_duration_minutes" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableMaxDurationMinutes(v *int) *ProcessUpdate {
	if v != nil {
		_u.SetMaxDurationMinutes(*v)
	}
	return _u
}

// AddMaxDurationMinutes adds value to the "max_duration_minutes" field.
func (_u *ProcessUpdate) AddMaxDurationMinutes(v int) *ProcessUpdate {
	_u.mutation.AddMaxDurationMinutes(v)
	return _u
}

// SetGenerateOnly sets the "generate_only" field.
func (_u *ProcessUpdate) SetGenerateOnly(v bool) *ProcessUpdate {
	_u.mutation.SetGenerateOnly(v)
	return _u
}

// SetNillableGenerateOnly sets the "generate_only" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableGenerateOnly(v *bool) *ProcessUpdate {
	if v != nil {
		_u.SetGenerateOnly(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessUpdate) SetStartedAt(v time.Time) *ProcessUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableStartedAt(v *time.Time) *ProcessUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessUpdate) ClearStartedAt() *ProcessUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetStoppedAt sets the "stopped_at" field.
func (_u *ProcessUpdate) SetStoppedAt(v time.Time) *ProcessUpdate {
	_u.mutation.SetStoppedAt(v)
	return _u
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableStoppedAt(v *time.Time) *ProcessUpdate {
	if v != nil {
		_u.SetStoppedAt(*v)
	}
	return _u
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (_u *ProcessUpdate) ClearStoppedAt() *ProcessUpdate {
	_u.mutation.ClearStoppedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ProcessUpdate) SetExpiresAt(v time.Time) *ProcessUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableExpiresAt(v *time.Time) *ProcessUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ProcessUpdate) ClearExpiresAt() *ProcessUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *ProcessUpdate) SetStopReason(v string) *ProcessUpdate {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableStopReason(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *ProcessUpdate) ClearStopReason() *ProcessUpdate {
	_u.mutation.ClearStopReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessUpdate) SetErrorMessage(v string) *ProcessUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableErrorMessage(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessUpdate) ClearErrorMessage() *ProcessUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFilterTab sets the "filter_tab" field.
func (_u *ProcessUpdate) SetFilterTab(v string) *ProcessUpdate {
	_u.mutation.SetFilterTab(v)
	return _u
}

// SetNillableFilterTab sets the "filter_tab" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableFilterTab(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetFilterTab(*v)
	}
	return _u
}

// ClearFilterTab clears the value of the "filter_tab" field.
func (_u *ProcessUpdate) ClearFilterTab() *ProcessUpdate {
	_u.mutation.ClearFilterTab()
	return _u
}

// SetFilterCategoryID sets the "filter_category_id" field.
func (_u *ProcessUpdate) SetFilterCategoryID(v int) *ProcessUpdate {
	_u.mutation.ResetFilterCategoryID()
	_u.mutation.SetFilterCategoryID(v)
	return _u
}

// SetNillableFilterCategoryID sets the "filter_category_id" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableFilterCategoryID(v *int) *ProcessUpdate {
	if v != nil {
		_u.SetFilterCategoryID(*v)
	}
	return _u
}

// AddFilterCategoryID adds value to the "filter_category_id" field.
func (_u *ProcessUpdate) AddFilterCategoryID(v int) *ProcessUpdate {
	_u.mutation.AddFilterCategoryID(v)
	return _u
}

// ClearFilterCategoryID clears the value of the "filter_category_id" field.
func (_u *ProcessUpdate) ClearFilterCategoryID() *ProcessUpdate {
	_u.mutation.ClearFilterCategoryID()
	return _u
}

// SetFilterTaskID sets the "filter_task_id" field.
func (_u *ProcessUpdate) SetFilterTaskID(v int) *ProcessUpdate {
	_u.mutation.ResetFilterTaskID()
	_u.mutation.SetFilterTaskID(v)
	return _u
}

// SetNillableFilterTaskID sets the "filter_task_id" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableFilterTaskID(v *int) *ProcessUpdate {
	if v != nil {
		_u.SetFilterTaskID(*v)
	}
	return _u
}

// AddFilterTaskID adds value to the "filter_task_id" field.
func (_u *ProcessUpdate) AddFilterTaskID(v int) *ProcessUpdate {
	_u.mutation.AddFilterTaskID(v)
	return _u
}

// ClearFilterTaskID clears the value of the "filter_task_id" field.
func (_u *ProcessUpdate) ClearFilterTaskID() *ProcessUpdate {
	_u.mutation.ClearFilterTaskID()
	return _u
}

// SetFilterSearch sets the "filter_search" field.
func (_u *ProcessUpdate) SetFilterSearch(v string) *ProcessUpdate {
	_u.mutation.SetFilterSearch(v)
	return _u
}

// SetNillableFilterSearch sets the "filter_search" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableFilterSearch(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetFilterSearch(*v)
	}
	return _u
}

// ClearFilterSearch clears the value of the "filter_search" field.
func (_u *ProcessUpdate) ClearFilterSearch() *ProcessUpdate {
	_u.mutation.ClearFilterSearch()
	return _u
}

// SetFilterSort sets the "filter_sort" field.
func (_u *ProcessUpdate) SetFilterSort(v string) *ProcessUpdate {
	_u.mutation.SetFilterSort(v)
	return _u
}

// SetNillableFilterSort sets the "filter_sort" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableFilterSort(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetFilterSort(*v)
	}
	return _u
}

// ClearFilterSort clears the value of the "filter_sort" field.
func (_u *ProcessUpdate) ClearFilterSort() *ProcessUpdate {
	_u.mutation.ClearFilterSort()
	return _u
}

// SetArticleLimit sets the "article_limit" field.
func (_u *ProcessUpdate) SetArticleLimit(v int) *ProcessUpdate {
	_u.mutation.ResetArticleLimit()
	_u.mutation.SetArticleLimit(v)
	return _u
}

// SetNillableArticleLimit sets the "article_limit" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableArticleLimit(v *int) *ProcessUpdate {
	if v != nil {
		_u.SetArticleLimit(*v)
	}
	return _u
}

// AddArticleLimit adds value to the "article_limit" field.
func (_u *ProcessUpdate) AddArticleLimit(v int) *ProcessUpdate {
	_u.mutation.AddArticleLimit(v)
	return _u
}

// SetDiscoveryTaskID sets the "discovery_task_id" field.
func (_u *ProcessUpdate) SetDiscoveryTaskID(v string) *ProcessUpdate {
	_u.mutation.SetDiscoveryTaskID(v)
	return _u
}

// SetNillableDiscoveryTaskID sets the "discovery_task_id" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableDiscoveryTaskID(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetDiscoveryTaskID(*v)
	}
	return _u
}

// ClearDiscoveryTaskID clears the value of the "discovery_task_id" field.
func (_u *ProcessUpdate) ClearDiscoveryTaskID() *ProcessUpdate {
	_u.mutation.ClearDiscoveryTaskID()
	return _u
}

// SetPreparationTaskID sets the "preparation_task_id" field.
func (_u *ProcessUpdate) SetPreparationTaskID(v string) *ProcessUpdate {
	_u.mutation.SetPreparationTaskID(v)
	return _u
}

// SetNillablePreparationTaskID sets the "preparation_task_id" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillablePreparationTaskID(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetPreparationTaskID(*v)
	}
	return _u
}

// ClearPreparationTaskID clears the value of the "preparation_task_id" field.
func (_u *ProcessUpdate) ClearPreparationTaskID() *ProcessUpdate {
	_u.mutation.ClearPreparationTaskID()
	return _u
}

// SetGenerationTaskID sets the "generation_task_id" field.
func (_u *ProcessUpdate) SetGenerationTaskID(v string) *ProcessUpdate {
	_u.mutation.SetGenerationTaskID(v)
	return _u
}

// SetNillableGenerationTaskID sets the "generation_task_id" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableGenerationTaskID(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetGenerationTaskID(*v)
	}
	return _u
}

// ClearGenerationTaskID clears the value of the "generation_task_id" field.
func (_u *ProcessUpdate) ClearGenerationTaskID() *ProcessUpdate {
	_u.mutation.ClearGenerationTaskID()
	return _u
}

// SetPostingTaskID sets the "posting_task_id" field.
func (_u *ProcessUpdate) SetPostingTaskID(v string) *ProcessUpdate {
	_u.mutation.SetPostingTaskID(v)
	return _u
}

// SetNillablePostingTaskID sets the "posting_task_id" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillablePostingTaskID(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetPostingTaskID(*v)
	}
	return _u
}

// ClearPostingTaskID clears the value of the "posting_task_id" field.
func (_u *ProcessUpdate) ClearPostingTaskID() *ProcessUpdate {
	_u.mutation.ClearPostingTaskID()
	return _u
}

// SetLlmConfigID sets the "llm_config_id" field.
func (_u *ProcessUpdate) SetLlmConfigID(v string) *ProcessUpdate {
	_u.mutation.SetLlmConfigID(v)
	return _u
}

// SetNillableLlmConfigID sets the "llm_config_id" field if the given value is not nil.
func (_u *ProcessUpdate) SetNillableLlmConfigID(v *string) *ProcessUpdate {
	if v != nil {
		_u.SetLlmConfigID(*v)
	}
	return _u
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by IDs.
func (_u *ProcessUpdate) AddWorkItemIDs(ids ...string) *ProcessUpdate {
	_u.mutation.AddWorkItemIDs(ids...)
	return _u
}

// AddWorkItems adds the "work_items" edges to the WorkItem entity.
func (_u *ProcessUpdate) AddWorkItems(v ...*WorkItem) *ProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkItemIDs(ids...)
}

// SetLlmConfig sets the "llm_config" edge to the LLMProviderConfig entity.
func (_u *ProcessUpdate) SetLlmConfig(v *LLMProviderConfig) *ProcessUpdate {
	return _u.SetLlmConfigID(v.ID)
}

// AddLoginIDs adds the "logins" edge to the UpstreamLogin entity by IDs.
func (_u *ProcessUpdate) AddLoginIDs(ids ...string) *ProcessUpdate {
	_u.mutation.AddLoginIDs(ids...)
	return _u
}

// AddLogins adds the "logins" edges to the UpstreamLogin entity.
func (_u *ProcessUpdate) AddLogins(v ...*UpstreamLogin) *ProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLoginIDs(ids...)
}

// AddPromptTemplateIDs adds the "prompt_templates" edge to the PromptTemplate entity by IDs.
func (_u *ProcessUpdate) AddPromptTemplateIDs(ids ...string) *ProcessUpdate {
	_u.mutation.AddPromptTemplateIDs(ids...)
	return _u
}

// AddPromptTemplates adds the "prompt_templates" edges to the PromptTemplate entity.
func (_u *ProcessUpdate) AddPromptTemplates(v ...*PromptTemplate) *ProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptTemplateIDs(ids...)
}

// Mutation returns the ProcessMutation object of the builder.
func (_u *ProcessUpdate) Mutation() *ProcessMutation {
	return _u.mutation
}

// ClearWorkItems clears all "work_items" edges to the WorkItem entity.
func (_u *ProcessUpdate) ClearWorkItems() *ProcessUpdate {
	_u.mutation.ClearWorkItems()
	return _u
}

// RemoveWorkItemIDs removes the "work_items" edge to WorkItem entities by IDs.
func (_u *ProcessUpdate) RemoveWorkItemIDs(ids ...string) *ProcessUpdate {
	_u.mutation.RemoveWorkItemIDs(ids...)
	return _u
}

// RemoveWorkItems removes "work_items" edges to WorkItem entities.
func (_u *ProcessUpdate) RemoveWorkItems(v ...*WorkItem) *ProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkItemIDs(ids...)
}

// ClearLlmConfig clears the "llm_config" edge to the LLMProviderConfig entity.
func (_u *ProcessUpdate) ClearLlmConfig() *ProcessUpdate {
	_u.mutation.ClearLlmConfig()
	return _u
}

// ClearLogins clears all "logins" edges to the UpstreamLogin entity.
func (_u *ProcessUpdate) ClearLogins() *ProcessUpdate {
	_u.mutation.ClearLogins()
	return _u
}

// RemoveLoginIDs removes the "logins" edge to UpstreamLogin entities by IDs.
func (_u *ProcessUpdate) RemoveLoginIDs(ids ...string) *ProcessUpdate {
	_u.mutation.RemoveLoginIDs(ids...)
	return _u
}

// RemoveLogins removes "logins" edges to UpstreamLogin entities.
func (_u *ProcessUpdate) RemoveLogins(v ...*UpstreamLogin) *ProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLoginIDs(ids...)
}

// ClearPromptTemplates clears all "prompt_templates" edges to the PromptTemplate entity.
func (_u *ProcessUpdate) ClearPromptTemplates() *ProcessUpdate {
	_u.mutation.ClearPromptTemplates()
	return _u
}

// RemovePromptTemplateIDs removes the "prompt_templates" edge to PromptTemplate entities by IDs.
func (_u *ProcessUpdate) RemovePromptTemplateIDs(ids ...string) *ProcessUpdate {
	_u.mutation.RemovePromptTemplateIDs(ids...)
	return _u
}

// RemovePromptTemplates removes "prompt_templates" edges to PromptTemplate entities.
func (_u *ProcessUpdate) RemovePromptTemplates(v ...*PromptTemplate) *ProcessUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptTemplateIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := process.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Process.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := process.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Process.status": %w`, err)}
		}
	}
	if _u.mutation.LlmConfigCleared() && len(_u.mutation.LlmConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Process.llm_config"`)
	}
	return nil
}

func (_u *ProcessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(process.Table, process.Columns, sqlgraph.NewFieldSpec(process.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(process.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(process.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(process.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(process.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxDurationMinutes(); ok {
		_spec.SetField(process.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationMinutes(); ok {
		_spec.AddField(process.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GenerateOnly(); ok {
		_spec.SetField(process.FieldGenerateOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(process.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(process.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StoppedAt(); ok {
		_spec.SetField(process.FieldStoppedAt, field.TypeTime, value)
	}
	if _u.mutation.StoppedAtCleared() {
		_spec.ClearField(process.FieldStoppedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(process.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(process.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(process.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(process.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(process.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(process.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FilterTab(); ok {
		_spec.SetField(process.FieldFilterTab, field.TypeString, value)
	}
	if _u.mutation.FilterTabCleared() {
		_spec.ClearField(process.FieldFilterTab, field.TypeString)
	}
	if value, ok := _u.mutation.FilterCategoryID(); ok {
		_spec.SetField(process.FieldFilterCategoryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilterCategoryID(); ok {
		_spec.AddField(process.FieldFilterCategoryID, field.TypeInt, value)
	}
	if _u.mutation.FilterCategoryIDCleared() {
		_spec.ClearField(process.FieldFilterCategoryID, field.TypeInt)
	}
	if value, ok := _u.mutation.FilterTaskID(); ok {
		_spec.SetField(process.FieldFilterTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilterTaskID(); ok {
		_spec.AddField(process.FieldFilterTaskID, field.TypeInt, value)
	}
	if _u.mutation.FilterTaskIDCleared() {
		_spec.ClearField(process.FieldFilterTaskID, field.TypeInt)
	}
	if value, ok := _u.mutation.FilterSearch(); ok {
		_spec.SetField(process.FieldFilterSearch, field.TypeString, value)
	}
	if _u.mutation.FilterSearchCleared() {
		_spec.ClearField(process.FieldFilterSearch, field.TypeString)
	}
	if value, ok := _u.mutation.FilterSort(); ok {
		_spec.SetField(process.FieldFilterSort, field.TypeString, value)
	}
	if _u.mutation.FilterSortCleared() {
		_spec.ClearField(process.FieldFilterSort, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleLimit(); ok {
		_spec.SetField(process.FieldArticleLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleLimit(); ok {
		_spec.AddField(process.FieldArticleLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiscoveryTaskID(); ok {
		_spec.SetField(process.FieldDiscoveryTaskID, field.TypeString, value)
	}
	if _u.mutation.DiscoveryTaskIDCleared() {
		_spec.ClearField(process.FieldDiscoveryTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.PreparationTaskID(); ok {
		_spec.SetField(process.FieldPreparationTaskID, field.TypeString, value)
	}
	if _u.mutation.PreparationTaskIDCleared() {
		_spec.ClearField(process.FieldPreparationTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTaskID(); ok {
		_spec.SetField(process.FieldGenerationTaskID, field.TypeString, value)
	}
	if _u.mutation.GenerationTaskIDCleared() {
		_spec.ClearField(process.FieldGenerationTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.PostingTaskID(); ok {
		_spec.SetField(process.FieldPostingTaskID, field.TypeString, value)
	}
	if _u.mutation.PostingTaskIDCleared() {
		_spec.ClearField(process.FieldPostingTaskID, field.TypeString)
	}
	if _u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkItemsIDs(); len(nodes) > 0 && !_u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmConfigCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LoginsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLoginsIDs(); len(nodes) > 0 && !_u.mutation.LoginsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoginsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptTemplatesIDs(); len(nodes) > 0 && !_u.mutation.PromptTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptTemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{process.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessUpdateOne is the builder for updating a single Process entity.
type ProcessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessMutation
}

// SetName sets the "name" field.
func (_u *ProcessUpdateOne) SetName(v string) *ProcessUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableName(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProcessUpdateOne) SetDescription(v string) *ProcessUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableDescription(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProcessUpdateOne) ClearDescription() *ProcessUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessUpdateOne) SetStatus(v process.Status) *ProcessUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableStatus(v *process.Status) *ProcessUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (_u *ProcessUpdateOne) SetMaxDurationMinutes(v int) *ProcessUpdateOne {
	_u.mutation.ResetMaxDurationMinutes()
	_u.mutation.SetMaxDurationMinutes(v)
	return _u
}

// SetNillableMaxDurationMinutes sets the "max_duration_minutes" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableMaxDurationMinutes(v *int) *ProcessUpdateOne {
	if v != nil {
		_u.SetMaxDurationMinutes(*v)
	}
	return _u
}

// AddMaxDurationMinutes adds value to the "max_duration_minutes" field.
func (_u *ProcessUpdateOne) AddMaxDurationMinutes(v int) *ProcessUpdateOne {
	_u.mutation.AddMaxDurationMinutes(v)
	return _u
}

// SetGenerateOnly sets the "generate_only" field.
func (_u *ProcessUpdateOne) SetGenerateOnly(v bool) *ProcessUpdateOne {
	_u.mutation.SetGenerateOnly(v)
	return _u
}

// SetNillableGenerateOnly sets the "generate_only" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableGenerateOnly(v *bool) *ProcessUpdateOne {
	if v != nil {
		_u.SetGenerateOnly(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessUpdateOne) SetStartedAt(v time.Time) *ProcessUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessUpdateOne) ClearStartedAt() *ProcessUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetStoppedAt sets the "stopped_at" field.
func (_u *ProcessUpdateOne) SetStoppedAt(v time.Time) *ProcessUpdateOne {
	_u.mutation.SetStoppedAt(v)
	return _u
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableStoppedAt(v *time.Time) *ProcessUpdateOne {
	if v != nil {
		_u.SetStoppedAt(*v)
	}
	return _u
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (_u *ProcessUpdateOne) ClearStoppedAt() *ProcessUpdateOne {
	_u.mutation.ClearStoppedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ProcessUpdateOne) SetExpiresAt(v time.Time) *ProcessUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableExpiresAt(v *time.Time) *ProcessUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ProcessUpdateOne) ClearExpiresAt() *ProcessUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *ProcessUpdateOne) SetStopReason(v string) *ProcessUpdateOne {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableStopReason(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// ClearStopReason clears the value of the "stop_reason" field.
func (_u *ProcessUpdateOne) ClearStopReason() *ProcessUpdateOne {
	_u.mutation.ClearStopReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessUpdateOne) SetErrorMessage(v string) *ProcessUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableErrorMessage(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessUpdateOne) ClearErrorMessage() *ProcessUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFilterTab sets the "filter_tab" field.
func (_u *ProcessUpdateOne) SetFilterTab(v string) *ProcessUpdateOne {
	_u.mutation.SetFilterTab(v)
	return _u
}

// SetNillableFilterTab sets the "filter_tab" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableFilterTab(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetFilterTab(*v)
	}
	return _u
}

// ClearFilterTab clears the value of the "filter_tab" field.
func (_u *ProcessUpdateOne) ClearFilterTab() *ProcessUpdateOne {
	_u.mutation.ClearFilterTab()
	return _u
}

// SetFilterCategoryID sets the "filter_category_id" field.
func (_u *ProcessUpdateOne) SetFilterCategoryID(v int) *ProcessUpdateOne {
	_u.mutation.ResetFilterCategoryID()
	_u.mutation.SetFilterCategoryID(v)
	return _u
}

// SetNillableFilterCategoryID sets the "filter_category_id" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableFilterCategoryID(v *int) *ProcessUpdateOne {
	if v != nil {
		_u.SetFilterCategoryID(*v)
	}
	return _u
}

// AddFilterCategoryID adds value to the "filter_category_id" field.
func (_u *ProcessUpdateOne) AddFilterCategoryID(v int) *ProcessUpdateOne {
	_u.mutation.AddFilterCategoryID(v)
	return _u
}

// ClearFilterCategoryID clears the value of the "filter_category_id" field.
func (_u *ProcessUpdateOne) ClearFilterCategoryID() *ProcessUpdateOne {
	_u.mutation.ClearFilterCategoryID()
	return _u
}

// SetFilterTaskID sets the "filter_task_id" field.
func (_u *ProcessUpdateOne) SetFilterTaskID(v int) *ProcessUpdateOne {
	_u.mutation.ResetFilterTaskID()
	_u.mutation.SetFilterTaskID(v)
	return _u
}

// SetNillableFilterTaskID sets the "filter_task_id" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableFilterTaskID(v *int) *ProcessUpdateOne {
	if v != nil {
		_u.SetFilterTaskID(*v)
	}
	return _u
}

// AddFilterTaskID adds value to the "filter_task_id" field.
func (_u *ProcessUpdateOne) AddFilterTaskID(v int) *ProcessUpdateOne {
	_u.mutation.AddFilterTaskID(v)
	return _u
}

// ClearFilterTaskID clears the value of the "filter_task_id" field.
func (_u *ProcessUpdateOne) ClearFilterTaskID() *ProcessUpdateOne {
	_u.mutation.ClearFilterTaskID()
	return _u
}

// SetFilterSearch sets the "filter_search" field.
func (_u *ProcessUpdateOne) SetFilterSearch(v string) *ProcessUpdateOne {
	_u.mutation.SetFilterSearch(v)
	return _u
}

// SetNillableFilterSearch sets the "filter_search" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableFilterSearch(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetFilterSearch(*v)
	}
	return _u
}

// ClearFilterSearch clears the value of the "filter_search" field.
func (_u *ProcessUpdateOne) ClearFilterSearch() *ProcessUpdateOne {
	_u.mutation.ClearFilterSearch()
	return _u
}

// SetFilterSort sets the "filter_sort" field.
func (_u *ProcessUpdateOne) SetFilterSort(v string) *ProcessUpdateOne {
	_u.mutation.SetFilterSort(v)
	return _u
}

// SetNillableFilterSort sets the "filter_sort" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableFilterSort(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetFilterSort(*v)
	}
	return _u
}

// ClearFilterSort clears the value of the "filter_sort" field.
func (_u *ProcessUpdateOne) ClearFilterSort() *ProcessUpdateOne {
	_u.mutation.ClearFilterSort()
	return _u
}

// SetArticleLimit sets the "article_limit" field.
func (_u *ProcessUpdateOne) SetArticleLimit(v int) *ProcessUpdateOne {
	_u.mutation.ResetArticleLimit()
	_u.mutation.SetArticleLimit(v)
	return _u
}

// SetNillableArticleLimit sets the "article_limit" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableArticleLimit(v *int) *ProcessUpdateOne {
	if v != nil {
		_u.SetArticleLimit(*v)
	}
	return _u
}

// AddArticleLimit adds value to the "article_limit" field.
func (_u *ProcessUpdateOne) AddArticleLimit(v int) *ProcessUpdateOne {
	_u.mutation.AddArticleLimit(v)
	return _u
}

// SetDiscoveryTaskID sets the "discovery_task_id" field.
func (_u *ProcessUpdateOne) SetDiscoveryTaskID(v string) *ProcessUpdateOne {
	_u.mutation.SetDiscoveryTaskID(v)
	return _u
}

// SetNillableDiscoveryTaskID sets the "discovery_task_id" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableDiscoveryTaskID(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetDiscoveryTaskID(*v)
	}
	return _u
}

// ClearDiscoveryTaskID clears the value of the "discovery_task_id" field.
func (_u *ProcessUpdateOne) ClearDiscoveryTaskID() *ProcessUpdateOne {
	_u.mutation.ClearDiscoveryTaskID()
	return _u
}

// SetPreparationTaskID sets the "preparation_task_id" field.
func (_u *ProcessUpdateOne) SetPreparationTaskID(v string) *ProcessUpdateOne {
	_u.mutation.SetPreparationTaskID(v)
	return _u
}

// SetNillablePreparationTaskID sets the "preparation_task_id" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillablePreparationTaskID(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetPreparationTaskID(*v)
	}
	return _u
}

// ClearPreparationTaskID clears the value of the "preparation_task_id" field.
func (_u *ProcessUpdateOne) ClearPreparationTaskID() *ProcessUpdateOne {
	_u.mutation.ClearPreparationTaskID()
	return _u
}

// SetGenerationTaskID sets the "generation_task_id" field.
func (_u *ProcessUpdateOne) SetGenerationTaskID(v string) *ProcessUpdateOne {
	_u.mutation.SetGenerationTaskID(v)
	return _u
}

// SetNillableGenerationTaskID sets the "generation_task_id" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableGenerationTaskID(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetGenerationTaskID(*v)
	}
	return _u
}

// ClearGenerationTaskID clears the value of the "generation_task_id" field.
func (_u *ProcessUpdateOne) ClearGenerationTaskID() *ProcessUpdateOne {
	_u.mutation.ClearGenerationTaskID()
	return _u
}

// SetPostingTaskID sets the "posting_task_id" field.
func (_u *ProcessUpdateOne) SetPostingTaskID(v string) *ProcessUpdateOne {
	_u.mutation.SetPostingTaskID(v)
	return _u
}

// SetNillablePostingTaskID sets the "posting_task_id" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillablePostingTaskID(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetPostingTaskID(*v)
	}
	return _u
}

// ClearPostingTaskID clears the value of the "posting_task_id" field.
func (_u *ProcessUpdateOne) ClearPostingTaskID() *ProcessUpdateOne {
	_u.mutation.ClearPostingTaskID()
	return _u
}

// SetLlmConfigID sets the "llm_config_id" field.
func (_u *ProcessUpdateOne) SetLlmConfigID(v string) *ProcessUpdateOne {
	_u.mutation.SetLlmConfigID(v)
	return _u
}

// SetNillableLlmConfigID sets the "llm_config_id" field if the given value is not nil.
func (_u *ProcessUpdateOne) SetNillableLlmConfigID(v *string) *ProcessUpdateOne {
	if v != nil {
		_u.SetLlmConfigID(*v)
	}
	return _u
}

// AddWorkItemIDs adds the "work_items" edge to the WorkItem entity by IDs.
func (_u *ProcessUpdateOne) AddWorkItemIDs(ids ...string) *ProcessUpdateOne {
	_u.mutation.AddWorkItemIDs(ids...)
	return _u
}

// AddWorkItems adds the "work_items" edges to the WorkItem entity.
func (_u *ProcessUpdateOne) AddWorkItems(v ...*WorkItem) *ProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkItemIDs(ids...)
}

// SetLlmConfig sets the "llm_config" edge to the LLMProviderConfig entity.
func (_u *ProcessUpdateOne) SetLlmConfig(v *LLMProviderConfig) *ProcessUpdateOne {
	return _u.SetLlmConfigID(v.ID)
}

// AddLoginIDs adds the "logins" edge to the UpstreamLogin entity by IDs.
func (_u *ProcessUpdateOne) AddLoginIDs(ids ...string) *ProcessUpdateOne {
	_u.mutation.AddLoginIDs(ids...)
	return _u
}

// AddLogins adds the "logins" edges to the UpstreamLogin entity.
func (_u *ProcessUpdateOne) AddLogins(v ...*UpstreamLogin) *ProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLoginIDs(ids...)
}

// AddPromptTemplateIDs adds the "prompt_templates" edge to the PromptTemplate entity by IDs.
func (_u *ProcessUpdateOne) AddPromptTemplateIDs(ids ...string) *ProcessUpdateOne {
	_u.mutation.AddPromptTemplateIDs(ids...)
	return _u
}

// AddPromptTemplates adds the "prompt_templates" edges to the PromptTemplate entity.
func (_u *ProcessUpdateOne) AddPromptTemplates(v ...*PromptTemplate) *ProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptTemplateIDs(ids...)
}

// Mutation returns the ProcessMutation object of the builder.
func (_u *ProcessUpdateOne) Mutation() *ProcessMutation {
	return _u.mutation
}

// ClearWorkItems clears all "work_items" edges to the WorkItem entity.
func (_u *ProcessUpdateOne) ClearWorkItems() *ProcessUpdateOne {
	_u.mutation.ClearWorkItems()
	return _u
}

// RemoveWorkItemIDs removes the "work_items" edge to WorkItem entities by IDs.
func (_u *ProcessUpdateOne) RemoveWorkItemIDs(ids ...string) *ProcessUpdateOne {
	_u.mutation.RemoveWorkItemIDs(ids...)
	return _u
}

// RemoveWorkItems removes "work_items" edges to WorkItem entities.
func (_u *ProcessUpdateOne) RemoveWorkItems(v ...*WorkItem) *ProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkItemIDs(ids...)
}

// ClearLlmConfig clears the "llm_config" edge to the LLMProviderConfig entity.
func (_u *ProcessUpdateOne) ClearLlmConfig() *ProcessUpdateOne {
	_u.mutation.ClearLlmConfig()
	return _u
}

// ClearLogins clears all "logins" edges to the UpstreamLogin entity.
func (_u *ProcessUpdateOne) ClearLogins() *ProcessUpdateOne {
	_u.mutation.ClearLogins()
	return _u
}

// RemoveLoginIDs removes the "logins" edge to UpstreamLogin entities by IDs.
func (_u *ProcessUpdateOne) RemoveLoginIDs(ids ...string) *ProcessUpdateOne {
	_u.mutation.RemoveLoginIDs(ids...)
	return _u
}

// RemoveLogins removes "logins" edges to UpstreamLogin entities.
func (_u *ProcessUpdateOne) RemoveLogins(v ...*UpstreamLogin) *ProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLoginIDs(ids...)
}

// ClearPromptTemplates clears all "prompt_templates" edges to the PromptTemplate entity.
func (_u *ProcessUpdateOne) ClearPromptTemplates() *ProcessUpdateOne {
	_u.mutation.ClearPromptTemplates()
	return _u
}

// RemovePromptTemplateIDs removes the "prompt_templates" edge to PromptTemplate entities by IDs.
func (_u *ProcessUpdateOne) RemovePromptTemplateIDs(ids ...string) *ProcessUpdateOne {
	_u.mutation.RemovePromptTemplateIDs(ids...)
	return _u
}

// RemovePromptTemplates removes "prompt_templates" edges to PromptTemplate entities.
func (_u *ProcessUpdateOne) RemovePromptTemplates(v ...*PromptTemplate) *ProcessUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptTemplateIDs(ids...)
}

// Where appends a list predicates to the ProcessUpdate builder.
func (_u *ProcessUpdateOne) Where(ps ...predicate.Process) *ProcessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessUpdateOne) Select(field string, fields ...string) *ProcessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Process entity.
func (_u *ProcessUpdateOne) Save(ctx context.Context) (*Process, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessUpdateOne) SaveX(ctx context.Context) *Process {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := process.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Process.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := process.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Process.status": %w`, err)}
		}
	}
	if _u.mutation.LlmConfigCleared() && len(_u.mutation.LlmConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Process.llm_config"`)
	}
	return nil
}

func (_u *ProcessUpdateOne) sqlSave(ctx context.Context) (_node *Process, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(process.Table, process.Columns, sqlgraph.NewFieldSpec(process.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Process.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, process.FieldID)
		for _, f := range fields {
			if !process.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != process.FieldID {
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
		_spec.SetField(process.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(process.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(process.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(process.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxDurationMinutes(); ok {
		_spec.SetField(process.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationMinutes(); ok {
		_spec.AddField(process.FieldMaxDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GenerateOnly(); ok {
		_spec.SetField(process.FieldGenerateOnly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(process.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(process.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StoppedAt(); ok {
		_spec.SetField(process.FieldStoppedAt, field.TypeTime, value)
	}
	if _u.mutation.StoppedAtCleared() {
		_spec.ClearField(process.FieldStoppedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(process.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(process.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(process.FieldStopReason, field.TypeString, value)
	}
	if _u.mutation.StopReasonCleared() {
		_spec.ClearField(process.FieldStopReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(process.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(process.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FilterTab(); ok {
		_spec.SetField(process.FieldFilterTab, field.TypeString, value)
	}
	if _u.mutation.FilterTabCleared() {
		_spec.ClearField(process.FieldFilterTab, field.TypeString)
	}
	if value, ok := _u.mutation.FilterCategoryID(); ok {
		_spec.SetField(process.FieldFilterCategoryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilterCategoryID(); ok {
		_spec.AddField(process.FieldFilterCategoryID, field.TypeInt, value)
	}
	if _u.mutation.FilterCategoryIDCleared() {
		_spec.ClearField(process.FieldFilterCategoryID, field.TypeInt)
	}
	if value, ok := _u.mutation.FilterTaskID(); ok {
		_spec.SetField(process.FieldFilterTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilterTaskID(); ok {
		_spec.AddField(process.FieldFilterTaskID, field.TypeInt, value)
	}
	if _u.mutation.FilterTaskIDCleared() {
		_spec.ClearField(process.FieldFilterTaskID, field.TypeInt)
	}
	if value, ok := _u.mutation.FilterSearch(); ok {
		_spec.SetField(process.FieldFilterSearch, field.TypeString, value)
	}
	if _u.mutation.FilterSearchCleared() {
		_spec.ClearField(process.FieldFilterSearch, field.TypeString)
	}
	if value, ok := _u.mutation.FilterSort(); ok {
		_spec.SetField(process.FieldFilterSort, field.TypeString, value)
	}
	if _u.mutation.FilterSortCleared() {
		_spec.ClearField(process.FieldFilterSort, field.TypeString)
	}
	if value, ok := _u.mutation.ArticleLimit(); ok {
		_spec.SetField(process.FieldArticleLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArticleLimit(); ok {
		_spec.AddField(process.FieldArticleLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiscoveryTaskID(); ok {
		_spec.SetField(process.FieldDiscoveryTaskID, field.TypeString, value)
	}
	if _u.mutation.DiscoveryTaskIDCleared() {
		_spec.ClearField(process.FieldDiscoveryTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.PreparationTaskID(); ok {
		_spec.SetField(process.FieldPreparationTaskID, field.TypeString, value)
	}
	if _u.mutation.PreparationTaskIDCleared() {
		_spec.ClearField(process.FieldPreparationTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.GenerationTaskID(); ok {
		_spec.SetField(process.FieldGenerationTaskID, field.TypeString, value)
	}
	if _u.mutation.GenerationTaskIDCleared() {
		_spec.ClearField(process.FieldGenerationTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.PostingTaskID(); ok {
		_spec.SetField(process.FieldPostingTaskID, field.TypeString, value)
	}
	if _u.mutation.PostingTaskIDCleared() {
		_spec.ClearField(process.FieldPostingTaskID, field.TypeString)
	}
	if _u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkItemsIDs(); len(nodes) > 0 && !_u.mutation.WorkItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmConfigCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmConfigIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LoginsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLoginsIDs(); len(nodes) > 0 && !_u.mutation.LoginsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LoginsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptTemplatesIDs(); len(nodes) > 0 && !_u.mutation.PromptTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptTemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Process{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{process.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
