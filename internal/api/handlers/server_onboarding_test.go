package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/domain"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
	"tenantforge.io/tenantforge/internal/pkg/logger"
	"tenantforge.io/tenantforge/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

type fakeCompleter struct {
	out  *usecase.CompleteOnboardingOutput
	err  error
	last usecase.CompleteOnboardingInput
}

func (f *fakeCompleter) Execute(_ context.Context, input usecase.CompleteOnboardingInput) (*usecase.CompleteOnboardingOutput, error) {
	f.last = input
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

type fakeStatusReader struct {
	out *usecase.GetOnboardingStatusOutput
	err error
}

func (f *fakeStatusReader) Execute(_ context.Context, _ usecase.GetOnboardingStatusInput) (*usecase.GetOnboardingStatusOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func newOnboardingRouter(completer OnboardingCompleter, status OnboardingStatusReader) *gin.Engine {
	srv := NewServer(ServerDeps{
		CompleteOnboarding: completer,
		OnboardingStatus:   status,
	})
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/api/v1/onboarding/complete", srv.CompleteOnboarding)
	router.GET("/api/v1/onboarding/requests/:saga_id", srv.GetOnboardingStatus)
	return router
}

func TestCompleteOnboarding_Created(t *testing.T) {
	completer := &fakeCompleter{
		out: &usecase.CompleteOnboardingOutput{
			Result: domain.OnboardingResult{
				UserID:         "user_1",
				OrganizationID: "org_1",
				SagaID:         "saga-1",
			},
		},
	}
	router := newOnboardingRouter(completer, &fakeStatusReader{})

	body := `{
		"email":"jane@acme.example",
		"password":"correct-horse-battery",
		"first_name":"Jane",
		"last_name":"Doe",
		"role":"org_admin",
		"organization_name":"Acme, Inc.",
		"organization_type":"enterprise"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp OnboardingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user_1", resp.UserID)
	assert.Equal(t, "org_1", resp.OrganizationID)
	assert.Equal(t, "saga-1", resp.SagaID)
	assert.False(t, resp.Replayed)

	assert.Equal(t, "jane@acme.example", completer.last.Data.Email)
	assert.Equal(t, "Acme, Inc.", completer.last.Data.OrganizationName)
}

func TestCompleteOnboarding_ReplayReturnsOK(t *testing.T) {
	completer := &fakeCompleter{
		out: &usecase.CompleteOnboardingOutput{
			Result: domain.OnboardingResult{
				UserID:         "user_1",
				OrganizationID: "org_1",
				SagaID:         "saga-1",
			},
			Replayed: true,
		},
	}
	router := newOnboardingRouter(completer, &fakeStatusReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete",
		strings.NewReader(`{"email":"jane@acme.example","idempotency_key":"key-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp OnboardingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Replayed)
}

func TestCompleteOnboarding_InFlightConflict(t *testing.T) {
	completer := &fakeCompleter{err: apperrors.ErrOnboardingInFlightf("key-1")}
	router := newOnboardingRouter(completer, &fakeStatusReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete",
		strings.NewReader(`{"email":"jane@acme.example","idempotency_key":"key-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodeOnboardingInFlight, resp.Code)
}

func TestCompleteOnboarding_IdentityRejectionCarriesFieldErrors(t *testing.T) {
	completer := &fakeCompleter{
		err: apperrors.ErrIdentityRejectedf("email already taken", []apperrors.FieldError{
			{Field: "email_address", Code: "form_identifier_exists", Message: "email already taken"},
		}),
	}
	router := newOnboardingRouter(completer, &fakeStatusReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete",
		strings.NewReader(`{"email":"taken@acme.example"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Code        string                 `json:"code"`
		FieldErrors []apperrors.FieldError `json:"field_errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodeIdentityRejected, resp.Code)
	require.Len(t, resp.FieldErrors, 1)
	assert.Equal(t, "email_address", resp.FieldErrors[0].Field)
}

func TestGetOnboardingStatus(t *testing.T) {
	status := &fakeStatusReader{
		out: &usecase.GetOnboardingStatusOutput{
			SagaID:            "saga-1",
			State:             string(domain.SagaCompleted),
			Email:             "jane@acme.example",
			UserID:            "user_1",
			OrganizationID:    "org_1",
			ReconcileAttempts: 0,
		},
	}
	router := newOnboardingRouter(&fakeCompleter{}, status)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/requests/saga-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp usecase.GetOnboardingStatusOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.SagaCompleted), resp.State)
	assert.Equal(t, "user_1", resp.UserID)
}

func TestGetOnboardingStatus_NotFound(t *testing.T) {
	status := &fakeStatusReader{
		err: apperrors.NotFound(apperrors.CodeOnboardingNotFound, "onboarding run not found"),
	}
	router := newOnboardingRouter(&fakeCompleter{}, status)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/requests/missing", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
