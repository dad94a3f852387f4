// Package main provides data seeding for TenantForge.
//
// The server auto-initializes on first startup; this command performs
// explicit, idempotent seeding outside auto-init: a platform operator user
// and a demo organization for local development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/config"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/infrastructure"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

const (
	operatorID = "user-platform-operator"
	demoOrgID  = "org-demo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
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

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	if err := seedPlatformOperator(ctx, client); err != nil {
		return fmt.Errorf("seed platform operator: %w", err)
	}
	if err := seedDemoOrganization(ctx, client); err != nil {
		return fmt.Errorf("seed demo organization: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedPlatformOperator creates the platform operator: a directory user
// holding the wildcard permission in the demo organization. Operators
// authenticate through the external identity service like everyone else;
// this row is only the directory mirror.
func seedPlatformOperator(ctx context.Context, client *ent.Client) error {
	now := time.Now().UTC()

	_, err := client.User.Create().
		SetID(operatorID).
		SetEmail("operator@tenantforge.local").
		SetDisplayName("Platform Operator").
		SetRole(string(domain.CoarseAdministrator)).
		SetOrganizations([]domain.OrgMembershipEntry{
			{
				OrgID:       demoOrgID,
				Role:        string(domain.RoleOrgAdmin),
				Permissions: []string{domain.WildcardPermission},
				IsPrimary:   true,
				JoinedAt:    now,
				UpdatedAt:   now,
			},
		}).
		SetOnboardingCompleted(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Platform operator already exists, skipping")
			return nil
		}
		return fmt.Errorf("create platform operator: %w", err)
	}

	logger.Info("Seeded platform operator", zap.String("user_id", operatorID))
	return nil
}

// seedDemoOrganization creates a demo tenant owned by the platform operator.
func seedDemoOrganization(ctx context.Context, client *ent.Client) error {
	name := "TenantForge Demo Org"

	_, err := client.Organization.Create().
		SetID(demoOrgID).
		SetName(name).
		SetSlug(domain.DeriveSlug(name)).
		SetOrganizationType("enterprise").
		SetSettings(domain.OrgSettings{
			ApplicableRegulations: domain.DefaultRegulations(domain.OrgTypeEnterprise),
			SubscriptionPlan:      "trial",
			SubscriptionStatus:    "active",
		}).
		SetMembers([]domain.OrgMember{
			{
				UserID:      operatorID,
				Role:        string(domain.RoleOrgAdmin),
				Permissions: domain.PermissionsForRole(string(domain.RoleOrgAdmin)),
				JoinedAt:    time.Now().UTC(),
				IsActive:    true,
			},
		}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Demo organization already exists, skipping")
			return nil
		}
		return fmt.Errorf("create demo organization: %w", err)
	}

	logger.Info("Seeded demo organization", zap.String("organization_id", demoOrgID))
	return nil
}
