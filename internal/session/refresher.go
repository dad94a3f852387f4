package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// Refresher publishes a fresh claims document after membership changes.
// Callers treat it as best effort: a failed refresh leaves the previous
// document in place until its TTL and never blocks the workflow.
type Refresher struct {
	cache Cache
}

// NewRefresher creates a session Refresher.
func NewRefresher(cache Cache) *Refresher {
	return &Refresher{cache: cache}
}

// RefreshAfterOnboarding writes the onboarding submitter's claims: owner role
// with the wildcard permission in the newly created organization.
func (r *Refresher) RefreshAfterOnboarding(ctx context.Context, userID, orgID string) error {
	version, err := r.cache.NextVersion(ctx, userID)
	if err != nil {
		return fmt.Errorf("bump claims version for user %s: %w", userID, err)
	}

	claims := &Claims{
		UserID:         userID,
		OrganizationID: orgID,
		Role:           string(domain.CoarseAdministrator),
		Permissions:    []string{domain.WildcardPermission},
		Version:        version,
		RefreshedAt:    time.Now().UTC(),
	}
	if err := r.cache.Set(ctx, claims); err != nil {
		return fmt.Errorf("publish claims for user %s: %w", userID, err)
	}

	logger.Debug("Session claims refreshed",
		zap.String("user_id", userID),
		zap.String("organization_id", orgID),
		zap.Int64("version", version),
	)
	return nil
}
