// Code generated by ent, DO NOT EDIT.

package llmproviderconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldUserID, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldModelName, v))
}

// APIKeyEncrypted applies equality check predicate on the "api_key_encrypted" field. It's identical to APIKeyEncryptedEQ.
func APIKeyEncrypted(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldAPIKeyEncrypted, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldTemperature, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldContainsFold(FieldUserID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldProvider, vs...))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldContainsFold(FieldModelName, v))
}

// APIKeyEncryptedEQ applies the EQ predicate on the "api_key_encrypted" field.
func APIKeyEncryptedEQ(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedNEQ applies the NEQ predicate on the "api_key_encrypted" field.
func APIKeyEncryptedNEQ(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedIn applies the In predicate on the "api_key_encrypted" field.
func APIKeyEncryptedIn(vs ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldAPIKeyEncrypted, vs...))
}

// APIKeyEncryptedNotIn applies the NotIn predicate on the "api_key_encrypted" field.
func APIKeyEncryptedNotIn(vs ...string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldAPIKeyEncrypted, vs...))
}

// APIKeyEncryptedGT applies the GT predicate on the "api_key_encrypted" field.
func APIKeyEncryptedGT(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGT(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedGTE applies the GTE predicate on the "api_key_encrypted" field.
func APIKeyEncryptedGTE(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGTE(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedLT applies the LT predicate on the "api_key_encrypted" field.
func APIKeyEncryptedLT(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLT(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedLTE applies the LTE predicate on the "api_key_encrypted" field.
func APIKeyEncryptedLTE(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLTE(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedContains applies the Contains predicate on the "api_key_encrypted" field.
func APIKeyEncryptedContains(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldContains(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedHasPrefix applies the HasPrefix predicate on the "api_key_encrypted" field.
func APIKeyEncryptedHasPrefix(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldHasPrefix(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedHasSuffix applies the HasSuffix predicate on the "api_key_encrypted" field.
func APIKeyEncryptedHasSuffix(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldHasSuffix(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedEqualFold applies the EqualFold predicate on the "api_key_encrypted" field.
func APIKeyEncryptedEqualFold(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEqualFold(FieldAPIKeyEncrypted, v))
}

// APIKeyEncryptedContainsFold applies the ContainsFold predicate on the "api_key_encrypted" field.
func APIKeyEncryptedContainsFold(v string) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldContainsFold(FieldAPIKeyEncrypted, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLTE(FieldMaxTokens, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLTE(FieldTemperature, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMProviderConfig) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMProviderConfig) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMProviderConfig) predicate.LLMProviderConfig {
	return predicate.LLMProviderConfig(sql.NotPredicates(p))
}
