// Code generated by ent, DO NOT EDIT.

package onboardingsaga

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the onboardingsaga type in the database.
	Label = "onboarding_saga"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldFailedAtState holds the string denoting the failed_at_state field in the database.
	FieldFailedAtState = "failed_at_state"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldExternalUserID holds the string denoting the external_user_id field in the database.
	FieldExternalUserID = "external_user_id"
	// FieldExternalOrgID holds the string denoting the external_org_id field in the database.
	FieldExternalOrgID = "external_org_id"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldReconcileAttempts holds the string denoting the reconcile_attempts field in the database.
	FieldReconcileAttempts = "reconcile_attempts"
	// Table holds the table name of the onboardingsaga in the database.
	Table = "onboarding_sagas"
)

// Columns holds all SQL columns for onboardingsaga fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldState,
	FieldFailedAtState,
	FieldEmail,
	FieldIdempotencyKey,
	FieldPayload,
	FieldExternalUserID,
	FieldExternalOrgID,
	FieldError,
	FieldReconcileAttempts,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultReconcileAttempts holds the default value on creation for the "reconcile_attempts" field.
	DefaultReconcileAttempts int
)

// State defines the type for the "state" enum field.
type State string

// StateSTARTED is the default value of the State enum.
const DefaultState = StateSTARTED

// State values.
const (
	StateSTARTED                State = "STARTED"
	StateIDENTITY_CREATED       State = "IDENTITY_CREATED"
	StateORG_CREATED            State = "ORG_CREATED"
	StateMEMBERSHIP_ESTABLISHED State = "MEMBERSHIP_ESTABLISHED"
	StateUSER_SYNCED            State = "USER_SYNCED"
	StateORG_RECORD_WRITTEN     State = "ORG_RECORD_WRITTEN"
	StateUSER_RECORD_UPDATED    State = "USER_RECORD_UPDATED"
	StateCOMPLETED              State = "COMPLETED"
	StateFAILED                 State = "FAILED"
	StateROLLED_BACK            State = "ROLLED_BACK"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateSTARTED, StateIDENTITY_CREATED, StateORG_CREATED, StateMEMBERSHIP_ESTABLISHED, StateUSER_SYNCED, StateORG_RECORD_WRITTEN, StateUSER_RECORD_UPDATED, StateCOMPLETED, StateFAILED, StateROLLED_BACK:
		return nil
	default:
		return fmt.Errorf("onboardingsaga: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the OnboardingSaga queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByFailedAtState orders the results by the failed_at_state field.
func ByFailedAtState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedAtState, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByExternalUserID orders the results by the external_user_id field.
func ByExternalUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalUserID, opts...).ToFunc()
}

// ByExternalOrgID orders the results by the external_org_id field.
func ByExternalOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalOrgID, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByReconcileAttempts orders the results by the reconcile_attempts field.
func ByReconcileAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReconcileAttempts, opts...).ToFunc()
}
