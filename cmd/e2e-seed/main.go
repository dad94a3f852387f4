// Package main seeds deterministic fixtures for live end-to-end tests.
//
// This command is test-environment only and is intentionally idempotent.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"tenantforge.io/tenantforge/ent"
	entsaga "tenantforge.io/tenantforge/ent/onboardingsaga"
	"tenantforge.io/tenantforge/internal/config"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/infrastructure"
	"tenantforge.io/tenantforge/internal/notification"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

const (
	defaultOrgID      = "org-e2e"
	defaultOrgName    = "E2E Test Organization"
	defaultOwnerID    = "user-e2e-owner"
	defaultOwnerEmail = "e2e-owner@localhost"

	defaultAnalystID    = "user-e2e-analyst"
	defaultAnalystEmail = "e2e-analyst@localhost"

	defaultSagaID         = "saga-e2e-completed"
	defaultIdempotencyKey = "e2e-onboarding-key"
)

type fixtureConfig struct {
	OrgID   string
	OrgName string

	OwnerID    string
	OwnerEmail string

	AnalystID    string
	AnalystEmail string

	SagaID         string
	IdempotencyKey string
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func loadFixtureConfig() fixtureConfig {
	return fixtureConfig{
		OrgID:          envOrDefault("E2E_ORG_ID", defaultOrgID),
		OrgName:        envOrDefault("E2E_ORG_NAME", defaultOrgName),
		OwnerID:        envOrDefault("E2E_OWNER_ID", defaultOwnerID),
		OwnerEmail:     envOrDefault("E2E_OWNER_EMAIL", defaultOwnerEmail),
		AnalystID:      envOrDefault("E2E_ANALYST_ID", defaultAnalystID),
		AnalystEmail:   envOrDefault("E2E_ANALYST_EMAIL", defaultAnalystEmail),
		SagaID:         envOrDefault("E2E_SAGA_ID", defaultSagaID),
		IdempotencyKey: envOrDefault("E2E_IDEMPOTENCY_KEY", defaultIdempotencyKey),
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "e2e-seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	fixtures := loadFixtureConfig()
	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	if err := seedUsers(ctx, client, fixtures); err != nil {
		return err
	}
	if err := seedOrganization(ctx, client, fixtures); err != nil {
		return err
	}
	if err := seedCompletedSaga(ctx, client, fixtures); err != nil {
		return err
	}
	if err := seedWelcomeNotification(ctx, client, fixtures); err != nil {
		return err
	}

	logger.Info("e2e fixtures seeded")
	return nil
}

func seedUsers(ctx context.Context, client *ent.Client, f fixtureConfig) error {
	now := time.Now().UTC()

	users := []struct {
		id, email, display, role string
		memberships              []domain.OrgMembershipEntry
	}{
		{
			id: f.OwnerID, email: f.OwnerEmail, display: "E2E Owner",
			role: string(domain.CoarseAdministrator),
			memberships: []domain.OrgMembershipEntry{{
				OrgID:       f.OrgID,
				Role:        string(domain.RoleOrgAdmin),
				Permissions: []string{domain.WildcardPermission},
				IsPrimary:   true,
				JoinedAt:    now,
				UpdatedAt:   now,
			}},
		},
		{
			id: f.AnalystID, email: f.AnalystEmail, display: "E2E Analyst",
			role: string(domain.CoarseMember),
			memberships: []domain.OrgMembershipEntry{{
				OrgID:       f.OrgID,
				Role:        string(domain.RoleAnalyst),
				Permissions: domain.PermissionsForRole(string(domain.RoleAnalyst)),
				IsPrimary:   true,
				JoinedAt:    now,
				UpdatedAt:   now,
			}},
		},
	}

	for _, u := range users {
		_, err := client.User.Create().
			SetID(u.id).
			SetEmail(u.email).
			SetDisplayName(u.display).
			SetRole(u.role).
			SetOrganizations(u.memberships).
			SetOnboardingCompleted(true).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", u.id, err)
		}
	}
	return nil
}

func seedOrganization(ctx context.Context, client *ent.Client, f fixtureConfig) error {
	now := time.Now().UTC()

	_, err := client.Organization.Create().
		SetID(f.OrgID).
		SetName(f.OrgName).
		SetSlug(domain.DeriveSlug(f.OrgName)).
		SetOrganizationType("enterprise").
		SetSettings(domain.OrgSettings{
			ApplicableRegulations: domain.DefaultRegulations(domain.OrgTypeEnterprise),
			SubscriptionPlan:      "trial",
			SubscriptionStatus:    "active",
		}).
		SetMembers([]domain.OrgMember{
			{
				UserID:      f.OwnerID,
				Role:        string(domain.RoleOrgAdmin),
				Permissions: domain.PermissionsForRole(string(domain.RoleOrgAdmin)),
				JoinedAt:    now,
				IsActive:    true,
			},
			{
				UserID:      f.AnalystID,
				Role:        string(domain.RoleAnalyst),
				Permissions: domain.PermissionsForRole(string(domain.RoleAnalyst)),
				JoinedAt:    now,
				IsActive:    true,
			},
		}).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("seed organization %s: %w", f.OrgID, err)
	}
	return nil
}

// seedCompletedSaga writes a terminal saga row so status and idempotency
// replay paths have a deterministic fixture.
func seedCompletedSaga(ctx context.Context, client *ent.Client, f fixtureConfig) error {
	payload, err := json.Marshal(domain.OnboardingData{
		Email:            f.OwnerEmail,
		FirstName:        "E2E",
		LastName:         "Owner",
		Role:             string(domain.RoleOrgAdmin),
		OrganizationName: f.OrgName,
		OrganizationType: string(domain.OrgTypeEnterprise),
		IdempotencyKey:   f.IdempotencyKey,
	})
	if err != nil {
		return fmt.Errorf("encode saga payload: %w", err)
	}

	_, err = client.OnboardingSaga.Create().
		SetID(f.SagaID).
		SetState(entsaga.StateCOMPLETED).
		SetEmail(f.OwnerEmail).
		SetIdempotencyKey(f.IdempotencyKey).
		SetPayload(payload).
		SetExternalUserID(f.OwnerID).
		SetExternalOrgID(f.OrgID).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("seed saga %s: %w", f.SagaID, err)
	}
	return nil
}

func seedWelcomeNotification(ctx context.Context, client *ent.Client, f fixtureConfig) error {
	sender := notification.NewInboxSender(client)
	err := sender.Send(ctx, notification.Params{
		RecipientID:  f.OwnerID,
		Type:         notification.TypeOnboardingCompleted,
		Title:        fmt.Sprintf("Welcome to %s", f.OrgName),
		Message:      "Your organization has been set up and is ready to use",
		ResourceType: "organization",
		ResourceID:   f.OrgID,
	})
	if err != nil {
		return fmt.Errorf("seed welcome notification: %w", err)
	}
	return nil
}
