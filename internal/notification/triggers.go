package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// Triggers encapsulates notification trigger logic for onboarding lifecycle
// events. Three trigger points exist:
//  1. ONBOARDING_COMPLETED — welcome the new organization owner
//  2. ONBOARDING_RECONCILED — tell the owner a disrupted run was repaired
//  3. MEMBER_JOINED — tell organization administrators about a new member
//
// All triggers are best effort: failures are logged, never propagated.
type Triggers struct {
	sender Sender
	client *ent.Client
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender, client *ent.Client) *Triggers {
	return &Triggers{sender: sender, client: client}
}

// OnOnboardingCompleted fires when an onboarding run finishes successfully.
// Welcomes the new organization owner.
func (t *Triggers) OnOnboardingCompleted(ctx context.Context, userID, orgID, orgName string) {
	params := Params{
		RecipientID:  userID,
		Type:         TypeOnboardingCompleted,
		Title:        fmt.Sprintf("Welcome to %s", orgName),
		Message:      fmt.Sprintf("Your organization %s has been set up and is ready to use", orgName),
		ResourceType: "organization",
		ResourceID:   orgID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send ONBOARDING_COMPLETED notification",
			zap.String("user_id", userID),
			zap.String("organization_id", orgID),
			zap.Error(err),
		)
	}
}

// OnOnboardingReconciled fires when the reconciler repairs a disrupted run by
// rolling it forward to completion.
func (t *Triggers) OnOnboardingReconciled(ctx context.Context, userID, orgID, sagaID string) {
	params := Params{
		RecipientID:  userID,
		Type:         TypeOnboardingReconciled,
		Title:        "Your organization setup has been completed",
		Message:      "An interrupted setup step was retried and your organization is now fully provisioned",
		ResourceType: "onboarding_saga",
		ResourceID:   sagaID,
	}

	if err := t.sender.Send(ctx, params); err != nil {
		logger.Error("failed to send ONBOARDING_RECONCILED notification",
			zap.String("user_id", userID),
			zap.String("saga_id", sagaID),
			zap.Error(err),
		)
	}
}

// OnMemberJoined fires when a user joins an existing organization.
// Notifies every active administrator of that organization.
func (t *Triggers) OnMemberJoined(ctx context.Context, orgID, memberName string) {
	adminIDs, err := t.findOrgAdminIDs(ctx, orgID)
	if err != nil {
		logger.Error("failed to find administrators for notification",
			zap.String("organization_id", orgID),
			zap.Error(err),
		)
		return
	}

	if len(adminIDs) == 0 {
		logger.Warn("no administrators found for notification", zap.String("organization_id", orgID))
		return
	}

	params := Params{
		Type:         TypeMemberJoined,
		Title:        "A new member joined your organization",
		Message:      fmt.Sprintf("%s joined the organization", memberName),
		ResourceType: "organization",
		ResourceID:   orgID,
	}

	if err := t.sender.SendToMany(ctx, adminIDs, params); err != nil {
		logger.Error("failed to send MEMBER_JOINED notifications",
			zap.String("organization_id", orgID),
			zap.Int("admin_count", len(adminIDs)),
			zap.Error(err),
		)
	}
}

// findOrgAdminIDs returns the user ids of every active administrator member.
// The members array is an embedded JSON document, so filtering happens in Go.
func (t *Triggers) findOrgAdminIDs(ctx context.Context, orgID string) ([]string, error) {
	org, err := t.client.Organization.Get(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get organization %s: %w", orgID, err)
	}

	seen := make(map[string]struct{})
	var userIDs []string
	for _, m := range org.Members {
		// Member entries carry fine-grained roles; older owner entries may
		// carry the coarse role directly.
		isAdmin := m.Role == string(domain.CoarseAdministrator) ||
			domain.CoarseRoleFor(m.Role) == domain.CoarseAdministrator
		if !isAdmin || !m.IsActive {
			continue
		}
		if _, ok := seen[m.UserID]; ok {
			continue
		}
		seen[m.UserID] = struct{}{}
		userIDs = append(userIDs, m.UserID)
	}
	return userIDs, nil
}
