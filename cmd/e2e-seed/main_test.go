package main

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("E2E_TEST_KEY", "")
	if got := envOrDefault("E2E_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("envOrDefault empty = %q, want fallback", got)
	}

	t.Setenv("E2E_TEST_KEY", "  configured  ")
	if got := envOrDefault("E2E_TEST_KEY", "fallback"); got != "configured" {
		t.Fatalf("envOrDefault value = %q, want configured", got)
	}
}

func TestLoadFixtureConfig_Defaults(t *testing.T) {
	t.Setenv("E2E_ORG_ID", "")
	t.Setenv("E2E_OWNER_EMAIL", "")
	t.Setenv("E2E_SAGA_ID", "")

	cfg := loadFixtureConfig()
	if cfg.OrgID != defaultOrgID {
		t.Fatalf("OrgID = %q, want %q", cfg.OrgID, defaultOrgID)
	}
	if cfg.OwnerEmail != defaultOwnerEmail {
		t.Fatalf("OwnerEmail = %q, want %q", cfg.OwnerEmail, defaultOwnerEmail)
	}
	if cfg.SagaID != defaultSagaID {
		t.Fatalf("SagaID = %q, want %q", cfg.SagaID, defaultSagaID)
	}
}

func TestLoadFixtureConfig_Overrides(t *testing.T) {
	t.Setenv("E2E_ORG_ID", "org-live")
	t.Setenv("E2E_OWNER_EMAIL", "owner@live.example")
	t.Setenv("E2E_SAGA_ID", "saga-live-1")
	t.Setenv("E2E_IDEMPOTENCY_KEY", "key-live")

	cfg := loadFixtureConfig()
	if cfg.OrgID != "org-live" {
		t.Fatalf("OrgID = %q, want org-live", cfg.OrgID)
	}
	if cfg.OwnerEmail != "owner@live.example" {
		t.Fatalf("OwnerEmail = %q, want owner@live.example", cfg.OwnerEmail)
	}
	if cfg.SagaID != "saga-live-1" {
		t.Fatalf("SagaID = %q, want saga-live-1", cfg.SagaID)
	}
	if cfg.IdempotencyKey != "key-live" {
		t.Fatalf("IdempotencyKey = %q, want key-live", cfg.IdempotencyKey)
	}
}
