package idp

import (
	"errors"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "single field error",
			err: &ValidationError{
				Status: 422,
				Errors: []FieldError{
					{Code: "form_identifier_exists", Message: "That email address is taken. Please try another.", Field: "email_address"},
				},
			},
			want: "form_identifier_exists: That email address is taken. Please try another. (email_address)",
		},
		{
			name: "multiple field errors joined",
			err: &ValidationError{
				Status: 422,
				Errors: []FieldError{
					{Code: "form_password_pwned", Message: "Password has been found in an online data breach.", Field: "password"},
					{Code: "form_param_nil", Message: "is required", Field: "first_name"},
				},
			},
			want: "form_password_pwned: Password has been found in an online data breach. (password); form_param_nil: is required (first_name)",
		},
		{
			name: "missing field name falls back",
			err: &ValidationError{
				Status: 400,
				Errors: []FieldError{
					{Code: "request_invalid", Message: "malformed body"},
				},
			},
			want: "request_invalid: malformed body (unknown field)",
		},
		{
			name: "no field errors at all",
			err:  &ValidationError{Status: 422},
			want: "identity service rejected request (status 422)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation rejection is permanent", &ValidationError{Status: 422}, false},
		{"server error is transient", &APIError{Status: 503}, true},
		{"client error is permanent", &APIError{Status: 404}, false},
		{"transport error is transient", errors.New("connection refused"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}
