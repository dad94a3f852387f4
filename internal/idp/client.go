// Package idp abstracts the external managed-identity service.
// Anti-Corruption Layer: the rest of the codebase talks to the Client
// interface; the HTTP binding is done at composition root level.
package idp

import "context"

// CreateUserInput carries the fields for creating an external identity.
type CreateUserInput struct {
	Email           string
	FirstName       string
	LastName        string
	Username        string
	Password        string
	PublicMetadata  map[string]any
	PrivateMetadata map[string]any
}

// CreateOrganizationInput carries the fields for creating an identity group.
type CreateOrganizationInput struct {
	Name            string
	Slug            string
	PublicMetadata  map[string]any
	PrivateMetadata map[string]any
}

// CreateMembershipInput links a user into an organization with a coarse role.
type CreateMembershipInput struct {
	OrganizationID string
	UserID         string
	Role           string // "administrator" or "member"
}

// Identity is the view of an external user returned by the service.
type Identity struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	Username        string
	PublicMetadata  map[string]any
	PrivateMetadata map[string]any
}

// Client abstracts identity-service operations.
// Delete operations exist for reconciliation only; the onboarding workflow
// itself never deletes.
type Client interface {
	CreateUser(ctx context.Context, input CreateUserInput) (string, error)
	CreateOrganization(ctx context.Context, input CreateOrganizationInput) (string, error)
	CreateMembership(ctx context.Context, input CreateMembershipInput) error
	UpdateUserMetadata(ctx context.Context, userID string, public, private map[string]any) error
	GetUser(ctx context.Context, userID string) (*Identity, error)
	DeleteUser(ctx context.Context, userID string) error
	DeleteOrganization(ctx context.Context, organizationID string) error
}
