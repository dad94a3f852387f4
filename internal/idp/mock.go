package idp

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MockClient implements Client for testing without an identity service.
type MockClient struct {
	users       map[string]*Identity
	orgs        map[string]CreateOrganizationInput
	memberships map[string]CreateMembershipInput // keyed by userID

	// FailOn maps an operation name to the error it should return.
	// Operation names: CreateUser, CreateOrganization, CreateMembership,
	// UpdateUserMetadata, GetUser, DeleteUser, DeleteOrganization.
	FailOn map[string]error

	mu sync.RWMutex
}

// NewMockClient creates a new MockClient.
func NewMockClient() *MockClient {
	return &MockClient{
		users:       make(map[string]*Identity),
		orgs:        make(map[string]CreateOrganizationInput),
		memberships: make(map[string]CreateMembershipInput),
		FailOn:      make(map[string]error),
	}
}

// Reset clears all mock data.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = make(map[string]*Identity)
	c.orgs = make(map[string]CreateOrganizationInput)
	c.memberships = make(map[string]CreateMembershipInput)
	c.FailOn = make(map[string]error)
}

// UserCount reports the number of users held by the mock.
func (c *MockClient) UserCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}

// OrgCount reports the number of organizations held by the mock.
func (c *MockClient) OrgCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orgs)
}

// MembershipOf returns the organization a user belongs to, if any.
func (c *MockClient) MembershipOf(userID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.memberships[userID]
	return m.OrganizationID, ok
}

// MembershipRoleOf returns the coarse role a user's membership was created
// with, if any.
func (c *MockClient) MembershipRoleOf(userID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.memberships[userID]
	return m.Role, ok
}

func (c *MockClient) failure(op string) error {
	if err, ok := c.FailOn[op]; ok {
		return err
	}
	return nil
}

func (c *MockClient) CreateUser(_ context.Context, input CreateUserInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failure("CreateUser"); err != nil {
		return "", err
	}
	for _, u := range c.users {
		if u.Email == input.Email {
			return "", &ValidationError{
				Status: 422,
				Errors: []FieldError{{
					Code:    "form_identifier_exists",
					Message: "That email address is taken. Please try another.",
					Field:   "email_address",
				}},
			}
		}
	}
	id := "user_" + uuid.NewString()
	c.users[id] = &Identity{
		ID:              id,
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Username:        input.Username,
		PublicMetadata:  input.PublicMetadata,
		PrivateMetadata: input.PrivateMetadata,
	}
	return id, nil
}

func (c *MockClient) CreateOrganization(_ context.Context, input CreateOrganizationInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failure("CreateOrganization"); err != nil {
		return "", err
	}
	id := "org_" + uuid.NewString()
	c.orgs[id] = input
	return id, nil
}

func (c *MockClient) CreateMembership(_ context.Context, input CreateMembershipInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failure("CreateMembership"); err != nil {
		return err
	}
	if _, ok := c.users[input.UserID]; !ok {
		return fmt.Errorf("user %s not found", input.UserID)
	}
	if _, ok := c.orgs[input.OrganizationID]; !ok {
		return fmt.Errorf("organization %s not found", input.OrganizationID)
	}
	c.memberships[input.UserID] = input

	// Mirror the primary-membership metadata write the real client performs.
	user := c.users[input.UserID]
	if user.PrivateMetadata == nil {
		user.PrivateMetadata = make(map[string]any)
	}
	user.PrivateMetadata["primary_organization_id"] = input.OrganizationID
	user.PrivateMetadata["primary_role"] = input.Role
	return nil
}

func (c *MockClient) UpdateUserMetadata(_ context.Context, userID string, public, private map[string]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failure("UpdateUserMetadata"); err != nil {
		return err
	}
	user, ok := c.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	if user.PublicMetadata == nil {
		user.PublicMetadata = make(map[string]any)
	}
	for k, v := range public {
		user.PublicMetadata[k] = v
	}
	if user.PrivateMetadata == nil {
		user.PrivateMetadata = make(map[string]any)
	}
	for k, v := range private {
		user.PrivateMetadata[k] = v
	}
	return nil
}

func (c *MockClient) GetUser(_ context.Context, userID string) (*Identity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.failure("GetUser"); err != nil {
		return nil, err
	}
	user, ok := c.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return user, nil
}

func (c *MockClient) DeleteUser(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failure("DeleteUser"); err != nil {
		return err
	}
	if _, ok := c.users[userID]; !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	delete(c.users, userID)
	delete(c.memberships, userID)
	return nil
}

func (c *MockClient) DeleteOrganization(_ context.Context, organizationID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failure("DeleteOrganization"); err != nil {
		return err
	}
	if _, ok := c.orgs[organizationID]; !ok {
		return fmt.Errorf("organization %s not found", organizationID)
	}
	delete(c.orgs, organizationID)
	for userID, m := range c.memberships {
		if m.OrganizationID == organizationID {
			delete(c.memberships, userID)
		}
	}
	return nil
}
