// Package directory mirrors identity-service records into the document store.
//
// The directory is the application's read model: identity ids are the row ids,
// so a record can always be joined back to its external counterpart.
package directory

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/ent/organization"
	"tenantforge.io/tenantforge/ent/user"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// Synchronizer writes identity-service mirrors into the directory store.
type Synchronizer struct {
	client *ent.Client
}

// NewSynchronizer creates a directory Synchronizer.
func NewSynchronizer(client *ent.Client) *Synchronizer {
	return &Synchronizer{client: client}
}

// SyncUser upserts the user mirror row for an external identity. The
// operation is idempotent: re-running it for the same identity updates the
// mutable fields instead of failing.
func (s *Synchronizer) SyncUser(ctx context.Context, userID string, data domain.OnboardingData) error {
	existing, err := s.client.User.Query().
		Where(user.IDEQ(userID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check user %s: %w", userID, err)
	}

	profile := domain.UserProfile{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		JobTitle:  data.JobTitle,
		Username:  data.Username,
	}

	if existing {
		logger.Debug("User mirror already present, updating", zap.String("user_id", userID))
		_, err = s.client.User.UpdateOneID(userID).
			SetEmail(data.Email).
			SetDisplayName(data.DisplayName()).
			SetUserType(data.UserType).
			SetProfile(profile).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update user %s: %w", userID, err)
		}
		return nil
	}

	_, err = s.client.User.Create().
		SetID(userID).
		SetEmail(data.Email).
		SetDisplayName(data.DisplayName()).
		SetUserType(data.UserType).
		SetProfile(profile).
		SetPreferences(domain.DefaultUserPreferences()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create user %s: %w", userID, err)
	}
	return nil
}

// CreateOrganizationRecord writes the organization mirror row with normalised
// enums, regulation defaults, subscription defaults and the owner seeded as
// the first member.
func (s *Synchronizer) CreateOrganizationRecord(ctx context.Context, orgID, ownerID string, data domain.OnboardingData) error {
	orgType := domain.NormalizeOrgType(data.OrganizationType)
	teamSize := domain.NormalizeTeamSize(data.TeamSize)

	settings := domain.OrgSettings{
		ApplicableRegulations: domain.DefaultRegulations(orgType),
		SubscriptionPlan:      "trial",
		SubscriptionStatus:    "active",
		Timezone:              data.Timezone,
		Locale:                data.Locale,
	}

	// The org-side seed keeps the applicant's fine-grained role and its
	// static capability list; the administrator/wildcard grant lives only on
	// the user-side mirror written by UpdateUserAfterOnboarding.
	owner := domain.OrgMember{
		UserID:      ownerID,
		Role:        data.Role,
		Permissions: domain.PermissionsForRole(data.Role),
		JoinedAt:    time.Now().UTC(),
		IsActive:    true,
	}

	// Free-form contact fields go into metadata; nil values are stripped so
	// the document store never persists explicit nulls.
	metadata := domain.StripNilsMap(map[string]any{
		"website":     emptyToNil(data.Website),
		"phone":       emptyToNil(data.Phone),
		"address":     emptyToNil(data.Address),
		"city":        emptyToNil(data.City),
		"zip_code":    emptyToNil(data.ZipCode),
		"description": emptyToNil(data.Description),
	})

	_, err := s.client.Organization.Create().
		SetID(orgID).
		SetName(data.OrganizationName).
		SetSlug(domain.DeriveSlug(data.OrganizationName)).
		SetOrganizationType(organization.OrganizationType(orgType)).
		SetTeamSize(organization.TeamSize(teamSize)).
		SetIndustry(data.Industry).
		SetCountry(data.Country).
		SetState(data.State).
		SetSettings(settings).
		SetMembers([]domain.OrgMember{owner}).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create organization %s: %w", orgID, err)
	}
	return nil
}

// UpdateUserAfterOnboarding finalises the user mirror: primary membership
// entry, coarse role, security settings and the onboarding-completed flag.
func (s *Synchronizer) UpdateUserAfterOnboarding(ctx context.Context, userID, orgID string, data domain.OnboardingData) error {
	now := time.Now().UTC()
	membership := domain.OrgMembershipEntry{
		OrgID:       orgID,
		Role:        string(domain.CoarseAdministrator),
		Permissions: []string{domain.WildcardPermission},
		IsPrimary:   true,
		JoinedAt:    now,
		UpdatedAt:   now,
	}

	security := domain.UserSecurity{
		MFAEnabled:     data.MFAEnabled,
		MFAMethod:      data.MFAMethod,
		SessionTimeout: data.SessionTimeout,
		PasswordPolicy: data.PasswordPolicy,
	}

	_, err := s.client.User.UpdateOneID(userID).
		SetRole(string(domain.CoarseAdministrator)).
		SetOrganizations([]domain.OrgMembershipEntry{membership}).
		SetSecurity(security).
		SetPreferences(domain.DefaultUserPreferences()).
		SetOnboardingCompleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finalise user %s: %w", userID, err)
	}
	return nil
}

// GetOrganization loads an organization mirror row.
func (s *Synchronizer) GetOrganization(ctx context.Context, orgID string) (*ent.Organization, error) {
	org, err := s.client.Organization.Get(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get organization %s: %w", orgID, err)
	}
	return org, nil
}

// DeleteUserRecord removes a user mirror row. Used by reconciliation
// rollback; missing rows are not an error.
func (s *Synchronizer) DeleteUserRecord(ctx context.Context, userID string) error {
	_, err := s.client.User.Delete().
		Where(user.IDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}

// DeleteOrganizationRecord removes an organization mirror row. Used by
// reconciliation rollback; missing rows are not an error.
func (s *Synchronizer) DeleteOrganizationRecord(ctx context.Context, orgID string) error {
	_, err := s.client.Organization.Delete().
		Where(organization.IDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete organization %s: %w", orgID, err)
	}
	return nil
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
