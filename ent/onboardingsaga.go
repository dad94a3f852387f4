// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tenantforge.io/tenantforge/ent/onboardingsaga"
)

// OnboardingSaga is the model entity for the OnboardingSaga schema.
type OnboardingSaga struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// State holds the value of the "state" field.
	State onboardingsaga.State `json:"state,omitempty"`
	// FailedAtState holds the value of the "failed_at_state" field.
	FailedAtState string `json:"failed_at_state,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload []byte `json:"payload,omitempty"`
	// ExternalUserID holds the value of the "external_user_id" field.
	ExternalUserID string `json:"external_user_id,omitempty"`
	// ExternalOrgID holds the value of the "external_org_id" field.
	ExternalOrgID string `json:"external_org_id,omitempty"`
	// Error holds the value of the "error" field.
	Error string `json:"error,omitempty"`
	// ReconcileAttempts holds the value of the "reconcile_attempts" field.
	ReconcileAttempts int `json:"reconcile_attempts,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OnboardingSaga) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case onboardingsaga.FieldPayload:
			values[i] = new([]byte)
		case onboardingsaga.FieldReconcileAttempts:
			values[i] = new(sql.NullInt64)
		case onboardingsaga.FieldID, onboardingsaga.FieldState, onboardingsaga.FieldFailedAtState, onboardingsaga.FieldEmail, onboardingsaga.FieldIdempotencyKey, onboardingsaga.FieldExternalUserID, onboardingsaga.FieldExternalOrgID, onboardingsaga.FieldError:
			values[i] = new(sql.NullString)
		case onboardingsaga.FieldCreatedAt, onboardingsaga.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OnboardingSaga fields.
func (_m *OnboardingSaga) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case onboardingsaga.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case onboardingsaga.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case onboardingsaga.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case onboardingsaga.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = onboardingsaga.State(value.String)
			}
		case onboardingsaga.FieldFailedAtState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failed_at_state", values[i])
			} else if value.Valid {
				_m.FailedAtState = value.String
			}
		case onboardingsaga.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case onboardingsaga.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = value.String
			}
		case onboardingsaga.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case onboardingsaga.FieldExternalUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_user_id", values[i])
			} else if value.Valid {
				_m.ExternalUserID = value.String
			}
		case onboardingsaga.FieldExternalOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_org_id", values[i])
			} else if value.Valid {
				_m.ExternalOrgID = value.String
			}
		case onboardingsaga.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		case onboardingsaga.FieldReconcileAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reconcile_attempts", values[i])
			} else if value.Valid {
				_m.ReconcileAttempts = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OnboardingSaga.
// This includes values selected through modifiers, order, etc.
func (_m *OnboardingSaga) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OnboardingSaga.
// Note that you need to call OnboardingSaga.Unwrap() before calling this method if this OnboardingSaga
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OnboardingSaga) Update() *OnboardingSagaUpdateOne {
	return NewOnboardingSagaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OnboardingSaga entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OnboardingSaga) Unwrap() *OnboardingSaga {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OnboardingSaga is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OnboardingSaga) String() string {
	var builder strings.Builder
	builder.WriteString("OnboardingSaga(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("failed_at_state=")
	builder.WriteString(_m.FailedAtState)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("idempotency_key=")
	builder.WriteString(_m.IdempotencyKey)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("external_user_id=")
	builder.WriteString(_m.ExternalUserID)
	builder.WriteString(", ")
	builder.WriteString("external_org_id=")
	builder.WriteString(_m.ExternalOrgID)
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteString(", ")
	builder.WriteString("reconcile_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReconcileAttempts))
	builder.WriteByte(')')
	return builder.String()
}

// OnboardingSagas is a parsable slice of OnboardingSaga.
type OnboardingSagas []*OnboardingSaga
