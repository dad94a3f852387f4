package idp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tenantforge.io/tenantforge/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestHTTPClientCreateUser(t *testing.T) {
	var captured createUserRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/users", r.URL.Path)
		require.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(identityResponse{ID: "user_abc123"})
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL, APIKey: "sk_test_key"})
	id, err := client.CreateUser(context.Background(), CreateUserInput{
		Email:     "jane@acme.example",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "s3cret-enough",
	})
	require.NoError(t, err)
	assert.Equal(t, "user_abc123", id)

	// The plaintext password must never appear on the wire.
	assert.Equal(t, "bcrypt", captured.PasswordHasher)
	assert.NotEmpty(t, captured.PasswordDigest)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(captured.PasswordDigest), []byte("s3cret-enough")))
}

func TestHTTPClientValidationRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(errorResponse{Errors: []FieldError{
			{Code: "form_identifier_exists", Message: "That email address is taken. Please try another.", Field: "email_address"},
		}})
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL, APIKey: "sk_test_key"})
	_, err := client.CreateUser(context.Background(), CreateUserInput{Email: "dup@acme.example"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, http.StatusUnprocessableEntity, verr.Status)
	assert.False(t, IsRetryable(verr))
	assert.Contains(t, err.Error(), "form_identifier_exists")
}

func TestHTTPClientValidationRejectionRawWireShape(t *testing.T) {
	// The service nests the field name inside a meta object.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":[{"code":"form_param_unknown","message":"is unknown","meta":{"param_name":"username"}}]}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL, APIKey: "sk_test_key"})
	_, err := client.CreateUser(context.Background(), CreateUserInput{Email: "jane@acme.example"})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "username", verr.Errors[0].Field)
	assert.Equal(t, "form_param_unknown: is unknown (username)", verr.Error())
}

func TestHTTPClientCreateMembershipRecordsPrimaryMembership(t *testing.T) {
	var metaBody updateMetadataRequest
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&metaBody))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL, APIKey: "sk_test_key"})
	require.NoError(t, client.CreateMembership(context.Background(), CreateMembershipInput{
		OrganizationID: "org_1", UserID: "user_1", Role: "member",
	}))

	require.Equal(t, []string{
		"POST /v1/organizations/org_1/memberships",
		"PATCH /v1/users/user_1/metadata",
	}, paths)
	assert.Equal(t, "org_1", metaBody.PrivateMetadata["primary_organization_id"])
	assert.Equal(t, "member", metaBody.PrivateMetadata["primary_role"])
}

func TestHTTPClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(Config{BaseURL: srv.URL, APIKey: "sk_test_key"})
	err := client.CreateMembership(context.Background(), CreateMembershipInput{
		OrganizationID: "org_1", UserID: "user_1", Role: "administrator",
	})
	require.Error(t, err)

	var aerr *APIError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, http.StatusBadGateway, aerr.Status)
	assert.True(t, IsRetryable(aerr))
}
