// Code generated by ent, DO NOT EDIT.

package onboardingsaga

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"tenantforge.io/tenantforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldUpdatedAt, v))
}

// FailedAtState applies equality check predicate on the "failed_at_state" field. It's identical to FailedAtStateEQ.
func FailedAtState(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldFailedAtState, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldEmail, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldIdempotencyKey, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldPayload, v))
}

// ExternalUserID applies equality check predicate on the "external_user_id" field. It's identical to ExternalUserIDEQ.
func ExternalUserID(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldExternalUserID, v))
}

// ExternalOrgID applies equality check predicate on the "external_org_id" field. It's identical to ExternalOrgIDEQ.
func ExternalOrgID(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldExternalOrgID, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldError, v))
}

// ReconcileAttempts applies equality check predicate on the "reconcile_attempts" field. It's identical to ReconcileAttemptsEQ.
func ReconcileAttempts(v int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldReconcileAttempts, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldUpdatedAt, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldState, vs...))
}

// FailedAtStateEQ applies the EQ predicate on the "failed_at_state" field.
func FailedAtStateEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldFailedAtState, v))
}

// FailedAtStateNEQ applies the NEQ predicate on the "failed_at_state" field.
func FailedAtStateNEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldFailedAtState, v))
}

// FailedAtStateIn applies the In predicate on the "failed_at_state" field.
func FailedAtStateIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldFailedAtState, vs...))
}

// FailedAtStateNotIn applies the NotIn predicate on the "failed_at_state" field.
func FailedAtStateNotIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldFailedAtState, vs...))
}

// FailedAtStateGT applies the GT predicate on the "failed_at_state" field.
func FailedAtStateGT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldFailedAtState, v))
}

// FailedAtStateGTE applies the GTE predicate on the "failed_at_state" field.
func FailedAtStateGTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldFailedAtState, v))
}

// FailedAtStateLT applies the LT predicate on the "failed_at_state" field.
func FailedAtStateLT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldFailedAtState, v))
}

// FailedAtStateLTE applies the LTE predicate on the "failed_at_state" field.
func FailedAtStateLTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldFailedAtState, v))
}

// FailedAtStateContains applies the Contains predicate on the "failed_at_state" field.
func FailedAtStateContains(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContains(FieldFailedAtState, v))
}

// FailedAtStateHasPrefix applies the HasPrefix predicate on the "failed_at_state" field.
func FailedAtStateHasPrefix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasPrefix(FieldFailedAtState, v))
}

// FailedAtStateHasSuffix applies the HasSuffix predicate on the "failed_at_state" field.
func FailedAtStateHasSuffix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasSuffix(FieldFailedAtState, v))
}

// FailedAtStateIsNil applies the IsNil predicate on the "failed_at_state" field.
func FailedAtStateIsNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIsNull(FieldFailedAtState))
}

// FailedAtStateNotNil applies the NotNil predicate on the "failed_at_state" field.
func FailedAtStateNotNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotNull(FieldFailedAtState))
}

// FailedAtStateEqualFold applies the EqualFold predicate on the "failed_at_state" field.
func FailedAtStateEqualFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEqualFold(FieldFailedAtState, v))
}

// FailedAtStateContainsFold applies the ContainsFold predicate on the "failed_at_state" field.
func FailedAtStateContainsFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContainsFold(FieldFailedAtState, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContainsFold(FieldEmail, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldPayload, v))
}

// ExternalUserIDEQ applies the EQ predicate on the "external_user_id" field.
func ExternalUserIDEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldExternalUserID, v))
}

// ExternalUserIDNEQ applies the NEQ predicate on the "external_user_id" field.
func ExternalUserIDNEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldExternalUserID, v))
}

// ExternalUserIDIn applies the In predicate on the "external_user_id" field.
func ExternalUserIDIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldExternalUserID, vs...))
}

// ExternalUserIDNotIn applies the NotIn predicate on the "external_user_id" field.
func ExternalUserIDNotIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldExternalUserID, vs...))
}

// ExternalUserIDGT applies the GT predicate on the "external_user_id" field.
func ExternalUserIDGT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldExternalUserID, v))
}

// ExternalUserIDGTE applies the GTE predicate on the "external_user_id" field.
func ExternalUserIDGTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldExternalUserID, v))
}

// ExternalUserIDLT applies the LT predicate on the "external_user_id" field.
func ExternalUserIDLT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldExternalUserID, v))
}

// ExternalUserIDLTE applies the LTE predicate on the "external_user_id" field.
func ExternalUserIDLTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldExternalUserID, v))
}

// ExternalUserIDContains applies the Contains predicate on the "external_user_id" field.
func ExternalUserIDContains(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContains(FieldExternalUserID, v))
}

// ExternalUserIDHasPrefix applies the HasPrefix predicate on the "external_user_id" field.
func ExternalUserIDHasPrefix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasPrefix(FieldExternalUserID, v))
}

// ExternalUserIDHasSuffix applies the HasSuffix predicate on the "external_user_id" field.
func ExternalUserIDHasSuffix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasSuffix(FieldExternalUserID, v))
}

// ExternalUserIDIsNil applies the IsNil predicate on the "external_user_id" field.
func ExternalUserIDIsNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIsNull(FieldExternalUserID))
}

// ExternalUserIDNotNil applies the NotNil predicate on the "external_user_id" field.
func ExternalUserIDNotNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotNull(FieldExternalUserID))
}

// ExternalUserIDEqualFold applies the EqualFold predicate on the "external_user_id" field.
func ExternalUserIDEqualFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEqualFold(FieldExternalUserID, v))
}

// ExternalUserIDContainsFold applies the ContainsFold predicate on the "external_user_id" field.
func ExternalUserIDContainsFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContainsFold(FieldExternalUserID, v))
}

// ExternalOrgIDEQ applies the EQ predicate on the "external_org_id" field.
func ExternalOrgIDEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldExternalOrgID, v))
}

// ExternalOrgIDNEQ applies the NEQ predicate on the "external_org_id" field.
func ExternalOrgIDNEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldExternalOrgID, v))
}

// ExternalOrgIDIn applies the In predicate on the "external_org_id" field.
func ExternalOrgIDIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldExternalOrgID, vs...))
}

// ExternalOrgIDNotIn applies the NotIn predicate on the "external_org_id" field.
func ExternalOrgIDNotIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldExternalOrgID, vs...))
}

// ExternalOrgIDGT applies the GT predicate on the "external_org_id" field.
func ExternalOrgIDGT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldExternalOrgID, v))
}

// ExternalOrgIDGTE applies the GTE predicate on the "external_org_id" field.
func ExternalOrgIDGTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldExternalOrgID, v))
}

// ExternalOrgIDLT applies the LT predicate on the "external_org_id" field.
func ExternalOrgIDLT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldExternalOrgID, v))
}

// ExternalOrgIDLTE applies the LTE predicate on the "external_org_id" field.
func ExternalOrgIDLTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldExternalOrgID, v))
}

// ExternalOrgIDContains applies the Contains predicate on the "external_org_id" field.
func ExternalOrgIDContains(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContains(FieldExternalOrgID, v))
}

// ExternalOrgIDHasPrefix applies the HasPrefix predicate on the "external_org_id" field.
func ExternalOrgIDHasPrefix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasPrefix(FieldExternalOrgID, v))
}

// ExternalOrgIDHasSuffix applies the HasSuffix predicate on the "external_org_id" field.
func ExternalOrgIDHasSuffix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasSuffix(FieldExternalOrgID, v))
}

// ExternalOrgIDIsNil applies the IsNil predicate on the "external_org_id" field.
func ExternalOrgIDIsNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIsNull(FieldExternalOrgID))
}

// ExternalOrgIDNotNil applies the NotNil predicate on the "external_org_id" field.
func ExternalOrgIDNotNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotNull(FieldExternalOrgID))
}

// ExternalOrgIDEqualFold applies the EqualFold predicate on the "external_org_id" field.
func ExternalOrgIDEqualFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEqualFold(FieldExternalOrgID, v))
}

// ExternalOrgIDContainsFold applies the ContainsFold predicate on the "external_org_id" field.
func ExternalOrgIDContainsFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContainsFold(FieldExternalOrgID, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldContainsFold(FieldError, v))
}

// ReconcileAttemptsEQ applies the EQ predicate on the "reconcile_attempts" field.
func ReconcileAttemptsEQ(v int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldEQ(FieldReconcileAttempts, v))
}

// ReconcileAttemptsNEQ applies the NEQ predicate on the "reconcile_attempts" field.
func ReconcileAttemptsNEQ(v int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNEQ(FieldReconcileAttempts, v))
}

// ReconcileAttemptsIn applies the In predicate on the "reconcile_attempts" field.
func ReconcileAttemptsIn(vs ...int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldIn(FieldReconcileAttempts, vs...))
}

// ReconcileAttemptsNotIn applies the NotIn predicate on the "reconcile_attempts" field.
func ReconcileAttemptsNotIn(vs ...int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldNotIn(FieldReconcileAttempts, vs...))
}

// ReconcileAttemptsGT applies the GT predicate on the "reconcile_attempts" field.
func ReconcileAttemptsGT(v int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGT(FieldReconcileAttempts, v))
}

// ReconcileAttemptsGTE applies the GTE predicate on the "reconcile_attempts" field.
func ReconcileAttemptsGTE(v int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldGTE(FieldReconcileAttempts, v))
}

// ReconcileAttemptsLT applies the LT predicate on the "reconcile_attempts" field.
func ReconcileAttemptsLT(v int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLT(FieldReconcileAttempts, v))
}

// ReconcileAttemptsLTE applies the LTE predicate on the "reconcile_attempts" field.
func ReconcileAttemptsLTE(v int) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.FieldLTE(FieldReconcileAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OnboardingSaga) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OnboardingSaga) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OnboardingSaga) predicate.OnboardingSaga {
	return predicate.OnboardingSaga(sql.NotPredicates(p))
}
