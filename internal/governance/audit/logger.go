// Package audit implements the append-only compliance activity log.
//
// Audit records are best effort at every call site: a failed write is logged
// and swallowed so compliance bookkeeping never fails a business operation.
// Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/ent/auditlog"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// Logger writes activity records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogActivity records one workflow activity. Metadata is nil-stripped before
// persistence so the log never stores explicit nulls.
func (l *Logger) LogActivity(ctx context.Context, rec domain.ActivityRecord) error {
	severity := rec.Severity
	if severity == "" {
		severity = "info"
	}
	occurredAt := rec.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetOrganizationID(rec.OrganizationID).
		SetUserID(rec.UserID).
		SetActorName(rec.ActorName).
		SetActorEmail(rec.ActorEmail).
		SetAction(rec.Action).
		SetCategory(rec.Category).
		SetResourceType(rec.ResourceType).
		SetResourceID(rec.ResourceID).
		SetResourceName(rec.ResourceName).
		SetDescription(rec.Description).
		SetSeverity(auditlog.Severity(severity)).
		SetMetadata(domain.StripNilsMap(rec.Metadata)).
		SetOccurredAt(occurredAt).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", rec.Action),
			zap.String("resource_type", rec.ResourceType),
			zap.String("resource_id", rec.ResourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogOnboardingCompleted records a successful onboarding run with the
// submitted tenant shape captured in metadata.
func (l *Logger) LogOnboardingCompleted(ctx context.Context, userID, orgID string, data domain.OnboardingData) error {
	return l.LogActivity(ctx, domain.ActivityRecord{
		OrganizationID: orgID,
		UserID:         userID,
		ActorName:      data.DisplayName(),
		ActorEmail:     data.Email,
		Action:         "onboarding.completed",
		Category:       "account",
		ResourceType:   "organization",
		ResourceID:     orgID,
		Description:    "Organization onboarding completed",
		Severity:       "info",
		Metadata: map[string]any{
			"user_type":         data.UserType,
			"role":              data.Role,
			"organization_name": data.OrganizationName,
			"organization_type": data.OrganizationType,
			"mfa_enabled":       data.MFAEnabled,
			"industry":          data.Industry,
			"team_size":         data.TeamSize,
		},
	})
}

// LogOnboardingReconciled records a reconciliation outcome.
func (l *Logger) LogOnboardingReconciled(ctx context.Context, sagaID, outcome string, metadata map[string]any) error {
	return l.LogActivity(ctx, domain.ActivityRecord{
		Action:       "onboarding.reconciled",
		Category:     "account",
		ResourceType: "onboarding_saga",
		ResourceID:   sagaID,
		Description:  "Onboarding saga reconciled: " + outcome,
		Severity:     "warning",
		Metadata:     metadata,
	})
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
