package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantforge.io/tenantforge/internal/directory"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/testutil"
)

func testOnboardingData() domain.OnboardingData {
	return domain.OnboardingData{
		Email:            "jane@acme.example",
		FirstName:        "Jane",
		LastName:         "Doe",
		Username:         "janedoe",
		Role:             "compliance_officer",
		OrganizationName: "Acme, Inc.!!",
		OrganizationType: "enterprise",
		TeamSize:         "51-200",
		Country:          "DE",
		Website:          "https://acme.example",
		MFAEnabled:       true,
		MFAMethod:        "totp",
	}
}

func TestSyncUserIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "directory_sync_user")
	sync := directory.NewSynchronizer(client)
	ctx := context.Background()

	data := testOnboardingData()
	require.NoError(t, sync.SyncUser(ctx, "user_1", data))
	require.NoError(t, sync.SyncUser(ctx, "user_1", data))

	u, err := client.User.Get(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.example", u.Email)
	assert.Equal(t, "Jane Doe", u.DisplayName)
	assert.Equal(t, "Jane", u.Profile.FirstName)
	assert.False(t, u.OnboardingCompleted)

	count, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateOrganizationRecordDefaults(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "directory_create_org")
	sync := directory.NewSynchronizer(client)
	ctx := context.Background()

	require.NoError(t, sync.CreateOrganizationRecord(ctx, "org_1", "user_1", testOnboardingData()))

	org, err := client.Organization.Get(ctx, "org_1")
	require.NoError(t, err)
	assert.Equal(t, "Acme, Inc.!!", org.Name)
	assert.Equal(t, "acme-inc", org.Slug)
	assert.Equal(t, "enterprise", org.OrganizationType.String())
	assert.Equal(t, "51-200", org.TeamSize.String())
	assert.Equal(t, []string{"GDPR", "CCPA", "HIPAA", "SOX", "PCI-DSS"}, org.Settings.ApplicableRegulations)
	assert.Equal(t, "trial", org.Settings.SubscriptionPlan)
	assert.Equal(t, "active", org.Settings.SubscriptionStatus)

	// The org-side seed keeps the submitted fine-grained role and its static
	// capability list; administrator/wildcard only appears on the user mirror.
	require.Len(t, org.Members, 1)
	assert.Equal(t, "user_1", org.Members[0].UserID)
	assert.Equal(t, "compliance_officer", org.Members[0].Role)
	assert.Equal(t, []string{"read", "write", "manage_breaches"}, org.Members[0].Permissions)
	assert.True(t, org.Members[0].IsActive)

	// Empty contact fields are stripped, not stored as nulls.
	assert.Equal(t, "https://acme.example", org.Metadata["website"])
	_, hasPhone := org.Metadata["phone"]
	assert.False(t, hasPhone)
}

func TestCreateOrganizationRecordAllowsDuplicateSlugs(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "directory_dup_slug")
	sync := directory.NewSynchronizer(client)
	ctx := context.Background()

	// Two independent submissions with the same organization name must each
	// get their own row; the derived slug is deterministic, not a key.
	require.NoError(t, sync.CreateOrganizationRecord(ctx, "org_a", "user_1", testOnboardingData()))
	require.NoError(t, sync.CreateOrganizationRecord(ctx, "org_b", "user_2", testOnboardingData()))

	orgA, err := client.Organization.Get(ctx, "org_a")
	require.NoError(t, err)
	orgB, err := client.Organization.Get(ctx, "org_b")
	require.NoError(t, err)
	assert.Equal(t, orgA.Slug, orgB.Slug)
}

func TestCreateOrganizationRecordNormalisesUnknownEnums(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "directory_org_enums")
	sync := directory.NewSynchronizer(client)
	ctx := context.Background()

	data := testOnboardingData()
	data.OrganizationName = "Weird Org"
	data.OrganizationType = "intergalactic"
	data.TeamSize = "a few"
	require.NoError(t, sync.CreateOrganizationRecord(ctx, "org_2", "user_1", data))

	org, err := client.Organization.Get(ctx, "org_2")
	require.NoError(t, err)
	assert.Equal(t, "enterprise", org.OrganizationType.String())
	assert.Equal(t, "11-50", org.TeamSize.String())
}

func TestUpdateUserAfterOnboarding(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "directory_finalise_user")
	sync := directory.NewSynchronizer(client)
	ctx := context.Background()

	data := testOnboardingData()
	require.NoError(t, sync.SyncUser(ctx, "user_1", data))
	require.NoError(t, sync.UpdateUserAfterOnboarding(ctx, "user_1", "org_1", data))

	u, err := client.User.Get(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "administrator", u.Role)
	assert.True(t, u.OnboardingCompleted)
	assert.True(t, u.Security.MFAEnabled)
	assert.Equal(t, "totp", u.Security.MFAMethod)
	assert.Equal(t, "system", u.Preferences.Theme)
	assert.True(t, u.Preferences.EmailNotifications)

	require.Len(t, u.Organizations, 1)
	first := u.Organizations[0]
	assert.Equal(t, "org_1", first.OrgID)
	assert.True(t, first.IsPrimary)
	assert.Equal(t, "administrator", first.Role)
	assert.Equal(t, []string{"*"}, first.Permissions)
}

func TestDeleteRecordsAreRollbackSafe(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "directory_rollback")
	sync := directory.NewSynchronizer(client)
	ctx := context.Background()

	require.NoError(t, sync.SyncUser(ctx, "user_1", testOnboardingData()))
	require.NoError(t, sync.DeleteUserRecord(ctx, "user_1"))
	// Deleting again must not fail once the row is gone.
	require.NoError(t, sync.DeleteUserRecord(ctx, "user_1"))
	require.NoError(t, sync.DeleteOrganizationRecord(ctx, "org_missing"))
}
