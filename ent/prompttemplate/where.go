// Code generated by ent, DO NOT EDIT.

package prompttemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldDescription, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldSystemPrompt, v))
}

// UserPromptTemplate applies equality check predicate on the "user_prompt_template" field. It's identical to UserPromptTemplateEQ.
func UserPromptTemplate(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldUserPromptTemplate, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContainsFold(FieldUserID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldCategory, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// UserPromptTemplateEQ applies the EQ predicate on the "user_prompt_template" field.
func UserPromptTemplateEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldUserPromptTemplate, v))
}

// UserPromptTemplateNEQ applies the NEQ predicate on the "user_prompt_template" field.
func UserPromptTemplateNEQ(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldUserPromptTemplate, v))
}

// UserPromptTemplateIn applies the In predicate on the "user_prompt_template" field.
func UserPromptTemplateIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldUserPromptTemplate, vs...))
}

// UserPromptTemplateNotIn applies the NotIn predicate on the "user_prompt_template" field.
func UserPromptTemplateNotIn(vs ...string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldUserPromptTemplate, vs...))
}

// UserPromptTemplateGT applies the GT predicate on the "user_prompt_template" field.
func UserPromptTemplateGT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGT(FieldUserPromptTemplate, v))
}

// UserPromptTemplateGTE applies the GTE predicate on the "user_prompt_template" field.
func UserPromptTemplateGTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGTE(FieldUserPromptTemplate, v))
}

// UserPromptTemplateLT applies the LT predicate on the "user_prompt_template" field.
func UserPromptTemplateLT(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLT(FieldUserPromptTemplate, v))
}

// UserPromptTemplateLTE applies the LTE predicate on the "user_prompt_template" field.
func UserPromptTemplateLTE(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLTE(FieldUserPromptTemplate, v))
}

// UserPromptTemplateContains applies the Contains predicate on the "user_prompt_template" field.
func UserPromptTemplateContains(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContains(FieldUserPromptTemplate, v))
}

// UserPromptTemplateHasPrefix applies the HasPrefix predicate on the "user_prompt_template" field.
func UserPromptTemplateHasPrefix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasPrefix(FieldUserPromptTemplate, v))
}

// UserPromptTemplateHasSuffix applies the HasSuffix predicate on the "user_prompt_template" field.
func UserPromptTemplateHasSuffix(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldHasSuffix(FieldUserPromptTemplate, v))
}

// UserPromptTemplateEqualFold applies the EqualFold predicate on the "user_prompt_template" field.
func UserPromptTemplateEqualFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEqualFold(FieldUserPromptTemplate, v))
}

// UserPromptTemplateContainsFold applies the ContainsFold predicate on the "user_prompt_template" field.
func UserPromptTemplateContainsFold(v string) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldContainsFold(FieldUserPromptTemplate, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProcesses applies the HasEdge predicate on the "processes" edge.
func HasProcesses() predicate.PromptTemplate {
	return predicate.PromptTemplate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, ProcessesTable, ProcessesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessesWith applies the HasEdge predicate on the "processes" edge with a given conditions (other predicates).
func HasProcessesWith(preds ...predicate.Process) predicate.PromptTemplate {
	return predicate.PromptTemplate(func(s *sql.Selector) {
		step := newProcessesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptTemplate) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptTemplate) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptTemplate) predicate.PromptTemplate {
	return predicate.PromptTemplate(sql.NotPredicates(p))
}
