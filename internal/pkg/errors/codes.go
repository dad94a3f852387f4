package errors

import "net/http"

// Error code constants.
// Errors contain code + params only, no hardcoded messages beyond the default.
// Frontend handles i18n translation. Backend logs always in English.

// Onboarding error codes.
const (
	CodeOnboardingFailed     = "ONBOARDING_FAILED"
	CodeOnboardingInFlight   = "ONBOARDING_IN_FLIGHT"
	CodeOnboardingNotFound   = "ONBOARDING_NOT_FOUND"
	CodeIdentityProvisioning = "IDENTITY_PROVISIONING_FAILED"
	CodeDirectorySync        = "DIRECTORY_SYNC_FAILED"
)

// Directory error codes.
const (
	CodeOrganizationNotFound = "ORGANIZATION_NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeOrganizationExists   = "ORGANIZATION_ALREADY_EXISTS"
)

// Identity service error codes.
const (
	CodeIdentityUnavailable = "IDENTITY_SERVICE_UNAVAILABLE"
	CodeIdentityRejected    = "IDENTITY_VALIDATION_REJECTED"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrOnboardingInFlightf creates a conflict error for a duplicate in-flight
// idempotency key.
func ErrOnboardingInFlightf(key string) *AppError {
	return (&AppError{
		Code:       CodeOnboardingInFlight,
		Message:    "an onboarding run with this idempotency key is already in flight",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"idempotency_key": key})
}

// ErrIdentityRejectedf creates a validation error carrying identity-service
// field errors.
func ErrIdentityRejectedf(message string, fieldErrors []FieldError) *AppError {
	return (&AppError{
		Code:       CodeIdentityRejected,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}).WithFieldErrors(fieldErrors)
}

// ErrIdentityUnavailablef creates a 503 error for identity-service outages.
func ErrIdentityUnavailablef() *AppError {
	return &AppError{
		Code:       CodeIdentityUnavailable,
		Message:    "identity service is unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
	}
}
