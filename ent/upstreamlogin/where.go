// Code generated by ent, DO NOT EDIT.

package upstreamlogin

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldName, v))
}

// UsernameEncrypted applies equality check predicate on the "username_encrypted" field. It's identical to UsernameEncryptedEQ.
func UsernameEncrypted(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldUsernameEncrypted, v))
}

// PasswordEncrypted applies equality check predicate on the "password_encrypted" field. It's identical to PasswordEncryptedEQ.
func PasswordEncrypted(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldPasswordEncrypted, v))
}

// IsAdmin applies equality check predicate on the "is_admin" field. It's identical to IsAdminEQ.
func IsAdmin(v bool) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldIsAdmin, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldIsActive, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContainsFold(FieldName, v))
}

// UsernameEncryptedEQ applies the EQ predicate on the "username_encrypted" field.
func UsernameEncryptedEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldUsernameEncrypted, v))
}

// UsernameEncryptedNEQ applies the NEQ predicate on the "username_encrypted" field.
func UsernameEncryptedNEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldUsernameEncrypted, v))
}

// UsernameEncryptedIn applies the In predicate on the "username_encrypted" field.
func UsernameEncryptedIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIn(FieldUsernameEncrypted, vs...))
}

// UsernameEncryptedNotIn applies the NotIn predicate on the "username_encrypted" field.
func UsernameEncryptedNotIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotIn(FieldUsernameEncrypted, vs...))
}

// UsernameEncryptedGT applies the GT predicate on the "username_encrypted" field.
func UsernameEncryptedGT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGT(FieldUsernameEncrypted, v))
}

// UsernameEncryptedGTE applies the GTE predicate on the "username_encrypted" field.
func UsernameEncryptedGTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGTE(FieldUsernameEncrypted, v))
}

// UsernameEncryptedLT applies the LT predicate on the "username_encrypted" field.
func UsernameEncryptedLT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLT(FieldUsernameEncrypted, v))
}

// UsernameEncryptedLTE applies the LTE predicate on the "username_encrypted" field.
func UsernameEncryptedLTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLTE(FieldUsernameEncrypted, v))
}

// UsernameEncryptedContains applies the Contains predicate on the "username_encrypted" field.
func UsernameEncryptedContains(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContains(FieldUsernameEncrypted, v))
}

// UsernameEncryptedHasPrefix applies the HasPrefix predicate on the "username_encrypted" field.
func UsernameEncryptedHasPrefix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasPrefix(FieldUsernameEncrypted, v))
}

// UsernameEncryptedHasSuffix applies the HasSuffix predicate on the "username_encrypted" field.
func UsernameEncryptedHasSuffix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasSuffix(FieldUsernameEncrypted, v))
}

// UsernameEncryptedEqualFold applies the EqualFold predicate on the "username_encrypted" field.
func UsernameEncryptedEqualFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEqualFold(FieldUsernameEncrypted, v))
}

// UsernameEncryptedContainsFold applies the ContainsFold predicate on the "username_encrypted" field.
func UsernameEncryptedContainsFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContainsFold(FieldUsernameEncrypted, v))
}

// PasswordEncryptedEQ applies the EQ predicate on the "password_encrypted" field.
func PasswordEncryptedEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldPasswordEncrypted, v))
}

// PasswordEncryptedNEQ applies the NEQ predicate on the "password_encrypted" field.
func PasswordEncryptedNEQ(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldPasswordEncrypted, v))
}

// PasswordEncryptedIn applies the In predicate on the "password_encrypted" field.
func PasswordEncryptedIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIn(FieldPasswordEncrypted, vs...))
}

// PasswordEncryptedNotIn applies the NotIn predicate on the "password_encrypted" field.
func PasswordEncryptedNotIn(vs ...string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotIn(FieldPasswordEncrypted, vs...))
}

// PasswordEncryptedGT applies the GT predicate on the "password_encrypted" field.
func PasswordEncryptedGT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGT(FieldPasswordEncrypted, v))
}

// PasswordEncryptedGTE applies the GTE predicate on the "password_encrypted" field.
func PasswordEncryptedGTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGTE(FieldPasswordEncrypted, v))
}

// PasswordEncryptedLT applies the LT predicate on the "password_encrypted" field.
func PasswordEncryptedLT(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLT(FieldPasswordEncrypted, v))
}

// PasswordEncryptedLTE applies the LTE predicate on the "password_encrypted" field.
func PasswordEncryptedLTE(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLTE(FieldPasswordEncrypted, v))
}

// PasswordEncryptedContains applies the Contains predicate on the "password_encrypted" field.
func PasswordEncryptedContains(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContains(FieldPasswordEncrypted, v))
}

// PasswordEncryptedHasPrefix applies the HasPrefix predicate on the "password_encrypted" field.
func PasswordEncryptedHasPrefix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasPrefix(FieldPasswordEncrypted, v))
}

// PasswordEncryptedHasSuffix applies the HasSuffix predicate on the "password_encrypted" field.
func PasswordEncryptedHasSuffix(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldHasSuffix(FieldPasswordEncrypted, v))
}

// PasswordEncryptedEqualFold applies the EqualFold predicate on the "password_encrypted" field.
func PasswordEncryptedEqualFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEqualFold(FieldPasswordEncrypted, v))
}

// PasswordEncryptedContainsFold applies the ContainsFold predicate on the "password_encrypted" field.
func PasswordEncryptedContainsFold(v string) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldContainsFold(FieldPasswordEncrypted, v))
}

// IsAdminEQ applies the EQ predicate on the "is_admin" field.
func IsAdminEQ(v bool) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldIsAdmin, v))
}

// IsAdminNEQ applies the NEQ predicate on the "is_admin" field.
func IsAdminNEQ(v bool) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldIsAdmin, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldIsActive, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLTE(FieldLastUsedAt, v))
}

// LastUsedAtIsNil applies the IsNil predicate on the "last_used_at" field.
func LastUsedAtIsNil() predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIsNull(FieldLastUsedAt))
}

// LastUsedAtNotNil applies the NotNil predicate on the "last_used_at" field.
func LastUsedAtNotNil() predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotNull(FieldLastUsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkItems applies the HasEdge predicate on the "work_items" edge.
func HasWorkItems() predicate.UpstreamLogin {
	return predicate.UpstreamLogin(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WorkItemsTable, WorkItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkItemsWith applies the HasEdge predicate on the "work_items" edge with a given conditions (other predicates).
func HasWorkItemsWith(preds ...predicate.WorkItem) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(func(s *sql.Selector) {
		step := newWorkItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProcesses applies the HasEdge predicate on the "processes" edge.
func HasProcesses() predicate.UpstreamLogin {
	return predicate.UpstreamLogin(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, ProcessesTable, ProcessesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessesWith applies the HasEdge predicate on the "processes" edge with a given conditions (other predicates).
func HasProcessesWith(preds ...predicate.Process) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(func(s *sql.Selector) {
		step := newProcessesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UpstreamLogin) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UpstreamLogin) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UpstreamLogin) predicate.UpstreamLogin {
	return predicate.UpstreamLogin(sql.NotPredicates(p))
}
