package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantforge.io/tenantforge/ent/auditlog"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/governance/audit"
	"tenantforge.io/tenantforge/internal/testutil"
)

func TestLogActivityPersistsRecord(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_log_activity")
	auditLogger := audit.NewLogger(client)
	ctx := context.Background()

	err := auditLogger.LogActivity(ctx, domain.ActivityRecord{
		OrganizationID: "org_1",
		UserID:         "user_1",
		ActorName:      "Jane Doe",
		ActorEmail:     "jane@acme.example",
		Action:         "onboarding.completed",
		Category:       "account",
		ResourceType:   "organization",
		ResourceID:     "org_1",
		Description:    "Organization onboarding completed",
		Metadata: map[string]any{
			"plan":    "trial",
			"dropped": nil,
		},
	})
	require.NoError(t, err)

	rows, err := client.AuditLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "onboarding.completed", row.Action)
	assert.Equal(t, "org_1", row.OrganizationID)
	assert.Equal(t, auditlog.SeverityInfo, row.Severity)
	assert.False(t, row.OccurredAt.IsZero())

	// Nil metadata values are stripped before persistence.
	assert.Equal(t, "trial", row.Metadata["plan"])
	_, hasDropped := row.Metadata["dropped"]
	assert.False(t, hasDropped)
}

func TestLogOnboardingCompletedCapturesTenantShape(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_log_completed")
	auditLogger := audit.NewLogger(client)
	ctx := context.Background()

	err := auditLogger.LogOnboardingCompleted(ctx, "user_1", "org_1", domain.OnboardingData{
		Email:            "jane@acme.example",
		FirstName:        "Jane",
		LastName:         "Doe",
		Role:             "compliance_officer",
		UserType:         "internal",
		OrganizationName: "Acme Corp",
		OrganizationType: "enterprise",
		Industry:         "Technology",
		TeamSize:         "11-50",
		MFAEnabled:       true,
	})
	require.NoError(t, err)

	row, err := client.AuditLog.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "onboarding.completed", row.Action)
	assert.Equal(t, "Jane Doe", row.ActorName)
	assert.Equal(t, "jane@acme.example", row.ActorEmail)
	assert.Equal(t, auditlog.SeverityInfo, row.Severity)

	assert.Equal(t, "internal", row.Metadata["user_type"])
	assert.Equal(t, "compliance_officer", row.Metadata["role"])
	assert.Equal(t, "Acme Corp", row.Metadata["organization_name"])
	assert.Equal(t, "enterprise", row.Metadata["organization_type"])
	assert.Equal(t, true, row.Metadata["mfa_enabled"])
	assert.Equal(t, "Technology", row.Metadata["industry"])
	assert.Equal(t, "11-50", row.Metadata["team_size"])
}

func TestLogOnboardingReconciledUsesWarningSeverity(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_log_reconciled")
	auditLogger := audit.NewLogger(client)
	ctx := context.Background()

	require.NoError(t, auditLogger.LogOnboardingReconciled(ctx, "saga_1", "rolled_back", map[string]any{
		"reconcile_attempts": 2,
	}))

	row, err := client.AuditLog.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "onboarding.reconciled", row.Action)
	assert.Equal(t, "onboarding_saga", row.ResourceType)
	assert.Equal(t, "saga_1", row.ResourceID)
	assert.Equal(t, auditlog.SeverityWarning, row.Severity)
}
