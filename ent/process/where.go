// Code generated by ent, DO NOT EDIT.

package process

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldDescription, v))
}

// MaxDurationMinutes applies equality check predicate on the "max_duration_minutes" field. It's identical to MaxDurationMinutesEQ.
func MaxDurationMinutes(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldMaxDurationMinutes, v))
}

// GenerateOnly applies equality check predicate on the "generate_only" field. It's identical to GenerateOnlyEQ.
func GenerateOnly(v bool) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldGenerateOnly, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldStartedAt, v))
}

// StoppedAt applies equality check predicate on the "stopped_at" field. It's identical to StoppedAtEQ.
func StoppedAt(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldStoppedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldExpiresAt, v))
}

// StopReason applies equality check predicate on the "stop_reason" field. It's identical to StopReasonEQ.
func StopReason(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldStopReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldErrorMessage, v))
}

// FilterTab applies equality check predicate on the "filter_tab" field. It's identical to FilterTabEQ.
func FilterTab(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterTab, v))
}

// FilterCategoryID applies equality check predicate on the "filter_category_id" field. It's identical to FilterCategoryIDEQ.
func FilterCategoryID(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterCategoryID, v))
}

// FilterTaskID applies equality check predicate on the "filter_task_id" field. It's identical to FilterTaskIDEQ.
func FilterTaskID(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterTaskID, v))
}

// FilterSearch applies equality check predicate on the "filter_search" field. It's identical to FilterSearchEQ.
func FilterSearch(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterSearch, v))
}

// FilterSort applies equality check predicate on the "filter_sort" field. It's identical to FilterSortEQ.
func FilterSort(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterSort, v))
}

// ArticleLimit applies equality check predicate on the "article_limit" field. It's identical to ArticleLimitEQ.
func ArticleLimit(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldArticleLimit, v))
}

// DiscoveryTaskID applies equality check predicate on the "discovery_task_id" field. It's identical to DiscoveryTaskIDEQ.
func DiscoveryTaskID(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldDiscoveryTaskID, v))
}

// PreparationTaskID applies equality check predicate on the "preparation_task_id" field. It's identical to PreparationTaskIDEQ.
func PreparationTaskID(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldPreparationTaskID, v))
}

// GenerationTaskID applies equality check predicate on the "generation_task_id" field. It's identical to GenerationTaskIDEQ.
func GenerationTaskID(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldGenerationTaskID, v))
}

// PostingTaskID applies equality check predicate on the "posting_task_id" field. It's identical to PostingTaskIDEQ.
func PostingTaskID(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldPostingTaskID, v))
}

// LlmConfigID applies equality check predicate on the "llm_config_id" field. It's identical to LlmConfigIDEQ.
func LlmConfigID(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldLlmConfigID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldStatus, vs...))
}

// MaxDurationMinutesEQ applies the EQ predicate on the "max_duration_minutes" field.
func MaxDurationMinutesEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesNEQ applies the NEQ predicate on the "max_duration_minutes" field.
func MaxDurationMinutesNEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesIn applies the In predicate on the "max_duration_minutes" field.
func MaxDurationMinutesIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldMaxDurationMinutes, vs...))
}

// MaxDurationMinutesNotIn applies the NotIn predicate on the "max_duration_minutes" field.
func MaxDurationMinutesNotIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldMaxDurationMinutes, vs...))
}

// MaxDurationMinutesGT applies the GT predicate on the "max_duration_minutes" field.
func MaxDurationMinutesGT(v int) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesGTE applies the GTE predicate on the "max_duration_minutes" field.
func MaxDurationMinutesGTE(v int) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesLT applies the LT predicate on the "max_duration_minutes" field.
func MaxDurationMinutesLT(v int) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldMaxDurationMinutes, v))
}

// MaxDurationMinutesLTE applies the LTE predicate on the "max_duration_minutes" field.
func MaxDurationMinutesLTE(v int) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldMaxDurationMinutes, v))
}

// GenerateOnlyEQ applies the EQ predicate on the "generate_only" field.
func GenerateOnlyEQ(v bool) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldGenerateOnly, v))
}

// GenerateOnlyNEQ applies the NEQ predicate on the "generate_only" field.
func GenerateOnlyNEQ(v bool) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldGenerateOnly, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldStartedAt))
}

// StoppedAtEQ applies the EQ predicate on the "stopped_at" field.
func StoppedAtEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldStoppedAt, v))
}

// StoppedAtNEQ applies the NEQ predicate on the "stopped_at" field.
func StoppedAtNEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldStoppedAt, v))
}

// StoppedAtIn applies the In predicate on the "stopped_at" field.
func StoppedAtIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldStoppedAt, vs...))
}

// StoppedAtNotIn applies the NotIn predicate on the "stopped_at" field.
func StoppedAtNotIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldStoppedAt, vs...))
}

// StoppedAtGT applies the GT predicate on the "stopped_at" field.
func StoppedAtGT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldStoppedAt, v))
}

// StoppedAtGTE applies the GTE predicate on the "stopped_at" field.
func StoppedAtGTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldStoppedAt, v))
}

// StoppedAtLT applies the LT predicate on the "stopped_at" field.
func StoppedAtLT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldStoppedAt, v))
}

// StoppedAtLTE applies the LTE predicate on the "stopped_at" field.
func StoppedAtLTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldStoppedAt, v))
}

// StoppedAtIsNil applies the IsNil predicate on the "stopped_at" field.
func StoppedAtIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldStoppedAt))
}

// StoppedAtNotNil applies the NotNil predicate on the "stopped_at" field.
func StoppedAtNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldStoppedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldExpiresAt))
}

// StopReasonEQ applies the EQ predicate on the "stop_reason" field.
func StopReasonEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldStopReason, v))
}

// StopReasonNEQ applies the NEQ predicate on the "stop_reason" field.
func StopReasonNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldStopReason, v))
}

// StopReasonIn applies the In predicate on the "stop_reason" field.
func StopReasonIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldStopReason, vs...))
}

// StopReasonNotIn applies the NotIn predicate on the "stop_reason" field.
func StopReasonNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldStopReason, vs...))
}

// StopReasonGT applies the GT predicate on the "stop_reason" field.
func StopReasonGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldStopReason, v))
}

// StopReasonGTE applies the GTE predicate on the "stop_reason" field.
func StopReasonGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldStopReason, v))
}

// StopReasonLT applies the LT predicate on the "stop_reason" field.
func StopReasonLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldStopReason, v))
}

// StopReasonLTE applies the LTE predicate on the "stop_reason" field.
func StopReasonLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldStopReason, v))
}

// StopReasonContains applies the Contains predicate on the "stop_reason" field.
func StopReasonContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldStopReason, v))
}

// StopReasonHasPrefix applies the HasPrefix predicate on the "stop_reason" field.
func StopReasonHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldStopReason, v))
}

// StopReasonHasSuffix applies the HasSuffix predicate on the "stop_reason" field.
func StopReasonHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldStopReason, v))
}

// StopReasonIsNil applies the IsNil predicate on the "stop_reason" field.
func StopReasonIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldStopReason))
}

// StopReasonNotNil applies the NotNil predicate on the "stop_reason" field.
func StopReasonNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldStopReason))
}

// StopReasonEqualFold applies the EqualFold predicate on the "stop_reason" field.
func StopReasonEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldStopReason, v))
}

// StopReasonContainsFold applies the ContainsFold predicate on the "stop_reason" field.
func StopReasonContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldStopReason, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FilterTabEQ applies the EQ predicate on the "filter_tab" field.
func FilterTabEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterTab, v))
}

// FilterTabNEQ applies the NEQ predicate on the "filter_tab" field.
func FilterTabNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldFilterTab, v))
}

// FilterTabIn applies the In predicate on the "filter_tab" field.
func FilterTabIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldFilterTab, vs...))
}

// FilterTabNotIn applies the NotIn predicate on the "filter_tab" field.
func FilterTabNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldFilterTab, vs...))
}

// FilterTabGT applies the GT predicate on the "filter_tab" field.
func FilterTabGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldFilterTab, v))
}

// FilterTabGTE applies the GTE predicate on the "filter_tab" field.
func FilterTabGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldFilterTab, v))
}

// FilterTabLT applies the LT predicate on the "filter_tab" field.
func FilterTabLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldFilterTab, v))
}

// FilterTabLTE applies the LTE predicate on the "filter_tab" field.
func FilterTabLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldFilterTab, v))
}

// FilterTabContains applies the Contains predicate on the "filter_tab" field.
func FilterTabContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldFilterTab, v))
}

// FilterTabHasPrefix applies the HasPrefix predicate on the "filter_tab" field.
func FilterTabHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldFilterTab, v))
}

// FilterTabHasSuffix applies the HasSuffix predicate on the "filter_tab" field.
func FilterTabHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldFilterTab, v))
}

// FilterTabIsNil applies the IsNil predicate on the "filter_tab" field.
func FilterTabIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldFilterTab))
}

// FilterTabNotNil applies the NotNil predicate on the "filter_tab" field.
func FilterTabNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldFilterTab))
}

// FilterTabEqualFold applies the EqualFold predicate on the "filter_tab" field.
func FilterTabEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldFilterTab, v))
}

// FilterTabContainsFold applies the ContainsFold predicate on the "filter_tab" field.
func FilterTabContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldFilterTab, v))
}

// FilterCategoryIDEQ applies the EQ predicate on the "filter_category_id" field.
func FilterCategoryIDEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterCategoryID, v))
}

// FilterCategoryIDNEQ applies the NEQ predicate on the "filter_category_id" field.
func FilterCategoryIDNEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldFilterCategoryID, v))
}

// FilterCategoryIDIn applies the In predicate on the "filter_category_id" field.
func FilterCategoryIDIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldFilterCategoryID, vs...))
}

// FilterCategoryIDNotIn applies the NotIn predicate on the "filter_category_id" field.
func FilterCategoryIDNotIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldFilterCategoryID, vs...))
}

// FilterCategoryIDGT applies the GT predicate on the "filter_category_id" field.
func FilterCategoryIDGT(v int) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldFilterCategoryID, v))
}

// FilterCategoryIDGTE applies the GTE predicate on the "filter_category_id" field.
func FilterCategoryIDGTE(v int) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldFilterCategoryID, v))
}

// FilterCategoryIDLT applies the LT predicate on the "filter_category_id" field.
func FilterCategoryIDLT(v int) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldFilterCategoryID, v))
}

// FilterCategoryIDLTE applies the LTE predicate on the "filter_category_id" field.
func FilterCategoryIDLTE(v int) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldFilterCategoryID, v))
}

// FilterCategoryIDIsNil applies the IsNil predicate on the "filter_category_id" field.
func FilterCategoryIDIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldFilterCategoryID))
}

// FilterCategoryIDNotNil applies the NotNil predicate on the "filter_category_id" field.
func FilterCategoryIDNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldFilterCategoryID))
}

// FilterTaskIDEQ applies the EQ predicate on the "filter_task_id" field.
func FilterTaskIDEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterTaskID, v))
}

// FilterTaskIDNEQ applies the NEQ predicate on the "filter_task_id" field.
func FilterTaskIDNEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldFilterTaskID, v))
}

// FilterTaskIDIn applies the In predicate on the "filter_task_id" field.
func FilterTaskIDIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldFilterTaskID, vs...))
}

// FilterTaskIDNotIn applies the NotIn predicate on the "filter_task_id" field.
func FilterTaskIDNotIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldFilterTaskID, vs...))
}

// FilterTaskIDGT applies the GT predicate on the "filter_task_id" field.
func FilterTaskIDGT(v int) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldFilterTaskID, v))
}

// FilterTaskIDGTE applies the GTE predicate on the "filter_task_id" field.
func FilterTaskIDGTE(v int) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldFilterTaskID, v))
}

// FilterTaskIDLT applies the LT predicate on the "filter_task_id" field.
func FilterTaskIDLT(v int) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldFilterTaskID, v))
}

// FilterTaskIDLTE applies the LTE predicate on the "filter_task_id" field.
func FilterTaskIDLTE(v int) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldFilterTaskID, v))
}

// FilterTaskIDIsNil applies the IsNil predicate on the "filter_task_id" field.
func FilterTaskIDIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldFilterTaskID))
}

// FilterTaskIDNotNil applies the NotNil predicate on the "filter_task_id" field.
func FilterTaskIDNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldFilterTaskID))
}

// FilterSearchEQ applies the EQ predicate on the "filter_search" field.
func FilterSearchEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterSearch, v))
}

// FilterSearchNEQ applies the NEQ predicate on the "filter_search" field.
func FilterSearchNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldFilterSearch, v))
}

// FilterSearchIn applies the In predicate on the "filter_search" field.
func FilterSearchIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldFilterSearch, vs...))
}

// FilterSearchNotIn applies the NotIn predicate on the "filter_search" field.
func FilterSearchNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldFilterSearch, vs...))
}

// FilterSearchGT applies the GT predicate on the "filter_search" field.
func FilterSearchGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldFilterSearch, v))
}

// FilterSearchGTE applies the GTE predicate on the "filter_search" field.
func FilterSearchGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldFilterSearch, v))
}

// FilterSearchLT applies the LT predicate on the "filter_search" field.
func FilterSearchLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldFilterSearch, v))
}

// FilterSearchLTE applies the LTE predicate on the "filter_search" field.
func FilterSearchLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldFilterSearch, v))
}

// FilterSearchContains applies the Contains predicate on the "filter_search" field.
func FilterSearchContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldFilterSearch, v))
}

// FilterSearchHasPrefix applies the HasPrefix predicate on the "filter_search" field.
func FilterSearchHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldFilterSearch, v))
}

// FilterSearchHasSuffix applies the HasSuffix predicate on the "filter_search" field.
func FilterSearchHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldFilterSearch, v))
}

// FilterSearchIsNil applies the IsNil predicate on the "filter_search" field.
func FilterSearchIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldFilterSearch))
}

// FilterSearchNotNil applies the NotNil predicate on the "filter_search" field.
func FilterSearchNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldFilterSearch))
}

// FilterSearchEqualFold applies the EqualFold predicate on the "filter_search" field.
func FilterSearchEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldFilterSearch, v))
}

// FilterSearchContainsFold applies the ContainsFold predicate on the "filter_search" field.
func FilterSearchContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldFilterSearch, v))
}

// FilterSortEQ applies the EQ predicate on the "filter_sort" field.
func FilterSortEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldFilterSort, v))
}

// FilterSortNEQ applies the NEQ predicate on the "filter_sort" field.
func FilterSortNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldFilterSort, v))
}

// FilterSortIn applies the In predicate on the "filter_sort" field.
func FilterSortIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldFilterSort, vs...))
}

// FilterSortNotIn applies the NotIn predicate on the "filter_sort" field.
func FilterSortNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldFilterSort, vs...))
}

// FilterSortGT applies the GT predicate on the "filter_sort" field.
func FilterSortGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldFilterSort, v))
}

// FilterSortGTE applies the GTE predicate on the "filter_sort" field.
func FilterSortGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldFilterSort, v))
}

// FilterSortLT applies the LT predicate on the "filter_sort" field.
func FilterSortLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldFilterSort, v))
}

// FilterSortLTE applies the LTE predicate on the "filter_sort" field.
func FilterSortLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldFilterSort, v))
}

// FilterSortContains applies the Contains predicate on the "filter_sort" field.
func FilterSortContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldFilterSort, v))
}

// FilterSortHasPrefix applies the HasPrefix predicate on the "filter_sort" field.
func FilterSortHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldFilterSort, v))
}

// FilterSortHasSuffix applies the HasSuffix predicate on the "filter_sort" field.
func FilterSortHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldFilterSort, v))
}

// FilterSortIsNil applies the IsNil predicate on the "filter_sort" field.
func FilterSortIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldFilterSort))
}

// FilterSortNotNil applies the NotNil predicate on the "filter_sort" field.
func FilterSortNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldFilterSort))
}

// FilterSortEqualFold applies the EqualFold predicate on the "filter_sort" field.
func FilterSortEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldFilterSort, v))
}

// FilterSortContainsFold applies the ContainsFold predicate on the "filter_sort" field.
func FilterSortContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldFilterSort, v))
}

// ArticleLimitEQ applies the EQ predicate on the "article_limit" field.
func ArticleLimitEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldArticleLimit, v))
}

// ArticleLimitNEQ applies the NEQ predicate on the "article_limit" field.
func ArticleLimitNEQ(v int) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldArticleLimit, v))
}

// ArticleLimitIn applies the In predicate on the "article_limit" field.
func ArticleLimitIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldArticleLimit, vs...))
}

// ArticleLimitNotIn applies the NotIn predicate on the "article_limit" field.
func ArticleLimitNotIn(vs ...int) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldArticleLimit, vs...))
}

// ArticleLimitGT applies the GT predicate on the "article_limit" field.
func ArticleLimitGT(v int) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldArticleLimit, v))
}

// ArticleLimitGTE applies the GTE predicate on the "article_limit" field.
func ArticleLimitGTE(v int) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldArticleLimit, v))
}

// ArticleLimitLT applies the LT predicate on the "article_limit" field.
func ArticleLimitLT(v int) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldArticleLimit, v))
}

// ArticleLimitLTE applies the LTE predicate on the "article_limit" field.
func ArticleLimitLTE(v int) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldArticleLimit, v))
}

// DiscoveryTaskIDEQ applies the EQ predicate on the "discovery_task_id" field.
func DiscoveryTaskIDEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDNEQ applies the NEQ predicate on the "discovery_task_id" field.
func DiscoveryTaskIDNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDIn applies the In predicate on the "discovery_task_id" field.
func DiscoveryTaskIDIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldDiscoveryTaskID, vs...))
}

// DiscoveryTaskIDNotIn applies the NotIn predicate on the "discovery_task_id" field.
func DiscoveryTaskIDNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldDiscoveryTaskID, vs...))
}

// DiscoveryTaskIDGT applies the GT predicate on the "discovery_task_id" field.
func DiscoveryTaskIDGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDGTE applies the GTE predicate on the "discovery_task_id" field.
func DiscoveryTaskIDGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDLT applies the LT predicate on the "discovery_task_id" field.
func DiscoveryTaskIDLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDLTE applies the LTE predicate on the "discovery_task_id" field.
func DiscoveryTaskIDLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDContains applies the Contains predicate on the "discovery_task_id" field.
func DiscoveryTaskIDContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDHasPrefix applies the HasPrefix predicate on the "discovery_task_id" field.
func DiscoveryTaskIDHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDHasSuffix applies the HasSuffix predicate on the "discovery_task_id" field.
func DiscoveryTaskIDHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDIsNil applies the IsNil predicate on the "discovery_task_id" field.
func DiscoveryTaskIDIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldDiscoveryTaskID))
}

// DiscoveryTaskIDNotNil applies the NotNil predicate on the "discovery_task_id" field.
func DiscoveryTaskIDNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldDiscoveryTaskID))
}

// DiscoveryTaskIDEqualFold applies the EqualFold predicate on the "discovery_task_id" field.
func DiscoveryTaskIDEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldDiscoveryTaskID, v))
}

// DiscoveryTaskIDContainsFold applies the ContainsFold predicate on the "discovery_task_id" field.
func DiscoveryTaskIDContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldDiscoveryTaskID, v))
}

// PreparationTaskIDEQ applies the EQ predicate on the "preparation_task_id" field.
func PreparationTaskIDEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldPreparationTaskID, v))
}

// PreparationTaskIDNEQ applies the NEQ predicate on the "preparation_task_id" field.
func PreparationTaskIDNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldPreparationTaskID, v))
}

// PreparationTaskIDIn applies the In predicate on the "preparation_task_id" field.
func PreparationTaskIDIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldPreparationTaskID, vs...))
}

// PreparationTaskIDNotIn applies the NotIn predicate on the "preparation_task_id" field.
func PreparationTaskIDNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldPreparationTaskID, vs...))
}

// PreparationTaskIDGT applies the GT predicate on the "preparation_task_id" field.
func PreparationTaskIDGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldPreparationTaskID, v))
}

// PreparationTaskIDGTE applies the GTE predicate on the "preparation_task_id" field.
func PreparationTaskIDGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldPreparationTaskID, v))
}

// PreparationTaskIDLT applies the LT predicate on the "preparation_task_id" field.
func PreparationTaskIDLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldPreparationTaskID, v))
}

// PreparationTaskIDLTE applies the LTE predicate on the "preparation_task_id" field.
func PreparationTaskIDLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldPreparationTaskID, v))
}

// PreparationTaskIDContains applies the Contains predicate on the "preparation_task_id" field.
func PreparationTaskIDContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldPreparationTaskID, v))
}

// PreparationTaskIDHasPrefix applies the HasPrefix predicate on the "preparation_task_id" field.
func PreparationTaskIDHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldPreparationTaskID, v))
}

// PreparationTaskIDHasSuffix applies the HasSuffix predicate on the "preparation_task_id" field.
func PreparationTaskIDHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldPreparationTaskID, v))
}

// PreparationTaskIDIsNil applies the IsNil predicate on the "preparation_task_id" field.
func PreparationTaskIDIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldPreparationTaskID))
}

// PreparationTaskIDNotNil applies the NotNil predicate on the "preparation_task_id" field.
func PreparationTaskIDNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldPreparationTaskID))
}

// PreparationTaskIDEqualFold applies the EqualFold predicate on the "preparation_task_id" field.
func PreparationTaskIDEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldPreparationTaskID, v))
}

// PreparationTaskIDContainsFold applies the ContainsFold predicate on the "preparation_task_id" field.
func PreparationTaskIDContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldPreparationTaskID, v))
}

// GenerationTaskIDEQ applies the EQ predicate on the "generation_task_id" field.
func GenerationTaskIDEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldGenerationTaskID, v))
}

// GenerationTaskIDNEQ applies the NEQ predicate on the "generation_task_id" field.
func GenerationTaskIDNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldGenerationTaskID, v))
}

// GenerationTaskIDIn applies the In predicate on the "generation_task_id" field.
func GenerationTaskIDIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldGenerationTaskID, vs...))
}

// GenerationTaskIDNotIn applies the NotIn predicate on the "generation_task_id" field.
func GenerationTaskIDNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldGenerationTaskID, vs...))
}

// GenerationTaskIDGT applies the GT predicate on the "generation_task_id" field.
func GenerationTaskIDGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldGenerationTaskID, v))
}

// GenerationTaskIDGTE applies the GTE predicate on the "generation_task_id" field.
func GenerationTaskIDGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldGenerationTaskID, v))
}

// GenerationTaskIDLT applies the LT predicate on the "generation_task_id" field.
func GenerationTaskIDLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldGenerationTaskID, v))
}

// GenerationTaskIDLTE applies the LTE predicate on the "generation_task_id" field.
func GenerationTaskIDLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldGenerationTaskID, v))
}

// GenerationTaskIDContains applies the Contains predicate on the "generation_task_id" field.
func GenerationTaskIDContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldGenerationTaskID, v))
}

// GenerationTaskIDHasPrefix applies the HasPrefix predicate on the "generation_task_id" field.
func GenerationTaskIDHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldGenerationTaskID, v))
}

// GenerationTaskIDHasSuffix applies the HasSuffix predicate on the "generation_task_id" field.
func GenerationTaskIDHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldGenerationTaskID, v))
}

// GenerationTaskIDIsNil applies the IsNil predicate on the "generation_task_id" field.
func GenerationTaskIDIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldGenerationTaskID))
}

// GenerationTaskIDNotNil applies the NotNil predicate on the "generation_task_id" field.
func GenerationTaskIDNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldGenerationTaskID))
}

// GenerationTaskIDEqualFold applies the EqualFold predicate on the "generation_task_id" field.
func GenerationTaskIDEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldGenerationTaskID, v))
}

// GenerationTaskIDContainsFold applies the ContainsFold predicate on the "generation_task_id" field.
func GenerationTaskIDContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldGenerationTaskID, v))
}

// PostingTaskIDEQ applies the EQ predicate on the "posting_task_id" field.
func PostingTaskIDEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldPostingTaskID, v))
}

// PostingTaskIDNEQ applies the NEQ predicate on the "posting_task_id" field.
func PostingTaskIDNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldPostingTaskID, v))
}

// PostingTaskIDIn applies the In predicate on the "posting_task_id" field.
func PostingTaskIDIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldPostingTaskID, vs...))
}

// PostingTaskIDNotIn applies the NotIn predicate on the "posting_task_id" field.
func PostingTaskIDNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldPostingTaskID, vs...))
}

// PostingTaskIDGT applies the GT predicate on the "posting_task_id" field.
func PostingTaskIDGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldPostingTaskID, v))
}

// PostingTaskIDGTE applies the GTE predicate on the "posting_task_id" field.
func PostingTaskIDGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldPostingTaskID, v))
}

// PostingTaskIDLT applies the LT predicate on the "posting_task_id" field.
func PostingTaskIDLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldPostingTaskID, v))
}

// PostingTaskIDLTE applies the LTE predicate on the "posting_task_id" field.
func PostingTaskIDLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldPostingTaskID, v))
}

// PostingTaskIDContains applies the Contains predicate on the "posting_task_id" field.
func PostingTaskIDContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldPostingTaskID, v))
}

// PostingTaskIDHasPrefix applies the HasPrefix predicate on the "posting_task_id" field.
func PostingTaskIDHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldPostingTaskID, v))
}

// PostingTaskIDHasSuffix applies the HasSuffix predicate on the "posting_task_id" field.
func PostingTaskIDHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldPostingTaskID, v))
}

// PostingTaskIDIsNil applies the IsNil predicate on the "posting_task_id" field.
func PostingTaskIDIsNil() predicate.Process {
	return predicate.Process(sql.FieldIsNull(FieldPostingTaskID))
}

// PostingTaskIDNotNil applies the NotNil predicate on the "posting_task_id" field.
func PostingTaskIDNotNil() predicate.Process {
	return predicate.Process(sql.FieldNotNull(FieldPostingTaskID))
}

// PostingTaskIDEqualFold applies the EqualFold predicate on the "posting_task_id" field.
func PostingTaskIDEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldPostingTaskID, v))
}

// PostingTaskIDContainsFold applies the ContainsFold predicate on the "posting_task_id" field.
func PostingTaskIDContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldPostingTaskID, v))
}

// LlmConfigIDEQ applies the EQ predicate on the "llm_config_id" field.
func LlmConfigIDEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldLlmConfigID, v))
}

// LlmConfigIDNEQ applies the NEQ predicate on the "llm_config_id" field.
func LlmConfigIDNEQ(v string) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldLlmConfigID, v))
}

// LlmConfigIDIn applies the In predicate on the "llm_config_id" field.
func LlmConfigIDIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldLlmConfigID, vs...))
}

// LlmConfigIDNotIn applies the NotIn predicate on the "llm_config_id" field.
func LlmConfigIDNotIn(vs ...string) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldLlmConfigID, vs...))
}

// LlmConfigIDGT applies the GT predicate on the "llm_config_id" field.
func LlmConfigIDGT(v string) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldLlmConfigID, v))
}

// LlmConfigIDGTE applies the GTE predicate on the "llm_config_id" field.
func LlmConfigIDGTE(v string) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldLlmConfigID, v))
}

// LlmConfigIDLT applies the LT predicate on the "llm_config_id" field.
func LlmConfigIDLT(v string) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldLlmConfigID, v))
}

// LlmConfigIDLTE applies the LTE predicate on the "llm_config_id" field.
func LlmConfigIDLTE(v string) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldLlmConfigID, v))
}

// LlmConfigIDContains applies the Contains predicate on the "llm_config_id" field.
func LlmConfigIDContains(v string) predicate.Process {
	return predicate.Process(sql.FieldContains(FieldLlmConfigID, v))
}

// LlmConfigIDHasPrefix applies the HasPrefix predicate on the "llm_config_id" field.
func LlmConfigIDHasPrefix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasPrefix(FieldLlmConfigID, v))
}

// LlmConfigIDHasSuffix applies the HasSuffix predicate on the "llm_config_id" field.
func LlmConfigIDHasSuffix(v string) predicate.Process {
	return predicate.Process(sql.FieldHasSuffix(FieldLlmConfigID, v))
}

// LlmConfigIDEqualFold applies the EqualFold predicate on the "llm_config_id" field.
func LlmConfigIDEqualFold(v string) predicate.Process {
	return predicate.Process(sql.FieldEqualFold(FieldLlmConfigID, v))
}

// LlmConfigIDContainsFold applies the ContainsFold predicate on the "llm_config_id" field.
func LlmConfigIDContainsFold(v string) predicate.Process {
	return predicate.Process(sql.FieldContainsFold(FieldLlmConfigID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Process {
	return predicate.Process(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Process {
	return predicate.Process(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkItems applies the HasEdge predicate on the "work_items" edge.
func HasWorkItems() predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WorkItemsTable, WorkItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkItemsWith applies the HasEdge predicate on the "work_items" edge with a given conditions (other predicates).
func HasWorkItemsWith(preds ...predicate.WorkItem) predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := newWorkItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmConfig applies the HasEdge predicate on the "llm_config" edge.
func HasLlmConfig() predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, LlmConfigTable, LlmConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmConfigWith applies the HasEdge predicate on the "llm_config" edge with a given conditions (other predicates).
func HasLlmConfigWith(preds ...predicate.LLMProviderConfig) predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := newLlmConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogins applies the HasEdge predicate on the "logins" edge.
func HasLogins() predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, LoginsTable, LoginsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLoginsWith applies the HasEdge predicate on the "logins" edge with a given conditions (other predicates).
func HasLoginsWith(preds ...predicate.UpstreamLogin) predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := newLoginsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromptTemplates applies the HasEdge predicate on the "prompt_templates" edge.
func HasPromptTemplates() predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, PromptTemplatesTable, PromptTemplatesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptTemplatesWith applies the HasEdge predicate on the "prompt_templates" edge with a given conditions (other predicates).
func HasPromptTemplatesWith(preds ...predicate.PromptTemplate) predicate.Process {
	return predicate.Process(func(s *sql.Selector) {
		step := newPromptTemplatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Process) predicate.Process {
	return predicate.Process(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Process) predicate.Process {
	return predicate.Process(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Process) predicate.Process {
	return predicate.Process(sql.NotPredicates(p))
}
