package idp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldError is a single field-level rejection reported by the identity
// service. On the wire the field name sits inside a meta object
// ({code, message, meta: {param_name}}); it is flattened here.
type FieldError struct {
	Code    string
	Message string
	Field   string
}

type fieldErrorWire struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Meta    *fieldErrorMeta `json:"meta,omitempty"`
}

type fieldErrorMeta struct {
	ParamName string `json:"param_name,omitempty"`
}

// MarshalJSON renders the identity-service wire shape.
func (e FieldError) MarshalJSON() ([]byte, error) {
	w := fieldErrorWire{Code: e.Code, Message: e.Message}
	if e.Field != "" {
		w.Meta = &fieldErrorMeta{ParamName: e.Field}
	}
	return json.Marshal(w)
}

// UnmarshalJSON flattens meta.param_name into Field.
func (e *FieldError) UnmarshalJSON(raw []byte) error {
	var w fieldErrorWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}
	e.Code = w.Code
	e.Message = w.Message
	e.Field = ""
	if w.Meta != nil {
		e.Field = w.Meta.ParamName
	}
	return nil
}

// ValidationError aggregates the field-level errors of a rejected request.
// The identity service returns these with a 4xx status; they are permanent
// and must not be retried.
type ValidationError struct {
	Status int
	Errors []FieldError
}

// Error renders every field error as "<code>: <message> (<field>)" joined
// by "; ". A field error without a field name renders "unknown field".
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("identity service rejected request (status %d)", e.Status)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		field := fe.Field
		if field == "" {
			field = "unknown field"
		}
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", fe.Code, fe.Message, field))
	}
	return strings.Join(parts, "; ")
}

// APIError is a non-validation error response from the identity service.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("identity service returned status %d: %s", e.Status, e.Body)
}

// IsRetryable reports whether an identity-service error is transient.
// Validation rejections are permanent; 5xx and transport errors are not.
func IsRetryable(err error) bool {
	switch e := err.(type) {
	case *ValidationError:
		return false
	case *APIError:
		return e.Status >= 500
	default:
		return true
	}
}
