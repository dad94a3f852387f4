package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// Config holds identity-service connection settings.
type Config struct {
	BaseURL          string
	APIKey           string
	OperationTimeout time.Duration
}

// HTTPClient is the REST binding of the Client interface.
type HTTPClient struct {
	baseURL          string
	apiKey           string
	httpClient       *http.Client
	operationTimeout time.Duration
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates an identity-service client.
func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.OperationTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL:          cfg.BaseURL,
		apiKey:           cfg.APIKey,
		httpClient:       &http.Client{Timeout: timeout},
		operationTimeout: timeout,
	}
}

// withTimeout bounds a single identity-service operation.
func (c *HTTPClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.operationTimeout)
}

type createUserRequest struct {
	EmailAddress    []string       `json:"email_address"`
	FirstName       string         `json:"first_name,omitempty"`
	LastName        string         `json:"last_name,omitempty"`
	Username        string         `json:"username,omitempty"`
	PasswordDigest  string         `json:"password_digest,omitempty"`
	PasswordHasher  string         `json:"password_hasher,omitempty"`
	PublicMetadata  map[string]any `json:"public_metadata,omitempty"`
	PrivateMetadata map[string]any `json:"private_metadata,omitempty"`
}

type identityResponse struct {
	ID              string         `json:"id"`
	EmailAddresses  []emailAddress `json:"email_addresses"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Username        string         `json:"username"`
	PublicMetadata  map[string]any `json:"public_metadata"`
	PrivateMetadata map[string]any `json:"private_metadata"`
}

type emailAddress struct {
	EmailAddress string `json:"email_address"`
}

// CreateUser creates an external identity. Plaintext passwords never leave
// the process; only the bcrypt digest is transmitted.
func (c *HTTPClient) CreateUser(ctx context.Context, input CreateUserInput) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req := createUserRequest{
		EmailAddress:    []string{input.Email},
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Username:        input.Username,
		PublicMetadata:  input.PublicMetadata,
		PrivateMetadata: input.PrivateMetadata,
	}
	if input.Password != "" {
		digest, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("digest password: %w", err)
		}
		req.PasswordDigest = string(digest)
		req.PasswordHasher = "bcrypt"
	}

	var resp identityResponse
	if err := c.do(ctx, http.MethodPost, "/v1/users", req, &resp); err != nil {
		return "", fmt.Errorf("create user %s: %w", input.Email, err)
	}
	return resp.ID, nil
}

type createOrganizationRequest struct {
	Name            string         `json:"name"`
	Slug            string         `json:"slug,omitempty"`
	PublicMetadata  map[string]any `json:"public_metadata,omitempty"`
	PrivateMetadata map[string]any `json:"private_metadata,omitempty"`
}

type organizationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateOrganization creates an identity group.
func (c *HTTPClient) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req := createOrganizationRequest{
		Name:            input.Name,
		Slug:            input.Slug,
		PublicMetadata:  input.PublicMetadata,
		PrivateMetadata: input.PrivateMetadata,
	}
	var resp organizationResponse
	if err := c.do(ctx, http.MethodPost, "/v1/organizations", req, &resp); err != nil {
		return "", fmt.Errorf("create organization %s: %w", input.Name, err)
	}
	return resp.ID, nil
}

type createMembershipRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// CreateMembership links a user into an organization and records the primary
// membership on the user's private metadata.
func (c *HTTPClient) CreateMembership(ctx context.Context, input CreateMembershipInput) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	path := fmt.Sprintf("/v1/organizations/%s/memberships", input.OrganizationID)
	req := createMembershipRequest{UserID: input.UserID, Role: input.Role}
	if err := c.do(ctx, http.MethodPost, path, req, nil); err != nil {
		return fmt.Errorf("create membership for user %s in organization %s: %w",
			input.UserID, input.OrganizationID, err)
	}

	metaPath := fmt.Sprintf("/v1/users/%s/metadata", input.UserID)
	metaReq := updateMetadataRequest{PrivateMetadata: map[string]any{
		"primary_organization_id": input.OrganizationID,
		"primary_role":            input.Role,
	}}
	if err := c.do(ctx, http.MethodPatch, metaPath, metaReq, nil); err != nil {
		return fmt.Errorf("record primary membership for user %s: %w", input.UserID, err)
	}
	return nil
}

type updateMetadataRequest struct {
	PublicMetadata  map[string]any `json:"public_metadata,omitempty"`
	PrivateMetadata map[string]any `json:"private_metadata,omitempty"`
}

// UpdateUserMetadata performs a shallow merge of the given metadata maps into
// the user's existing metadata on the identity-service side.
func (c *HTTPClient) UpdateUserMetadata(ctx context.Context, userID string, public, private map[string]any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	path := fmt.Sprintf("/v1/users/%s/metadata", userID)
	req := updateMetadataRequest{PublicMetadata: public, PrivateMetadata: private}
	if err := c.do(ctx, http.MethodPatch, path, req, nil); err != nil {
		return fmt.Errorf("update metadata for user %s: %w", userID, err)
	}
	return nil
}

// GetUser fetches an external identity by id.
func (c *HTTPClient) GetUser(ctx context.Context, userID string) (*Identity, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var resp identityResponse
	if err := c.do(ctx, http.MethodGet, "/v1/users/"+userID, nil, &resp); err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	id := &Identity{
		ID:              resp.ID,
		FirstName:       resp.FirstName,
		LastName:        resp.LastName,
		Username:        resp.Username,
		PublicMetadata:  resp.PublicMetadata,
		PrivateMetadata: resp.PrivateMetadata,
	}
	if len(resp.EmailAddresses) > 0 {
		id.Email = resp.EmailAddresses[0].EmailAddress
	}
	return id, nil
}

// DeleteUser removes an external identity. Used by reconciliation rollback.
func (c *HTTPClient) DeleteUser(ctx context.Context, userID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.do(ctx, http.MethodDelete, "/v1/users/"+userID, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}

// DeleteOrganization removes an identity group. Used by reconciliation rollback.
func (c *HTTPClient) DeleteOrganization(ctx context.Context, organizationID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.do(ctx, http.MethodDelete, "/v1/organizations/"+organizationID, nil, nil); err != nil {
		return fmt.Errorf("delete organization %s: %w", organizationID, err)
	}
	return nil
}

type errorResponse struct {
	Errors []FieldError `json:"errors"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call identity service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && len(errResp.Errors) > 0 && resp.StatusCode < 500 {
			return &ValidationError{Status: resp.StatusCode, Errors: errResp.Errors}
		}
		logger.Warn("Identity service error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
