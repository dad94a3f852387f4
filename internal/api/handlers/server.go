// Package handlers implements the HTTP handlers behind the OpenAPI contract.
//
// Route registration happens in internal/app/router.go; handlers do NOT
// register their own routes. Request/response conformance is enforced by the
// OpenAPI validation middleware.
package handlers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/riverqueue/river"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/governance/audit"
	"tenantforge.io/tenantforge/internal/notification"
	"tenantforge.io/tenantforge/internal/usecase"
)

// OnboardingCompleter runs the tenant provisioning chain.
type OnboardingCompleter interface {
	Execute(ctx context.Context, input usecase.CompleteOnboardingInput) (*usecase.CompleteOnboardingOutput, error)
}

// OnboardingStatusReader loads the persisted state of an onboarding run.
type OnboardingStatusReader interface {
	Execute(ctx context.Context, input usecase.GetOnboardingStatusInput) (*usecase.GetOnboardingStatusOutput, error)
}

// Server implements all API handlers.
type Server struct {
	client             *ent.Client
	pool               *pgxpool.Pool
	redis              *redis.Client
	jwtCfg             middleware.JWTConfig
	audit              *audit.Logger
	completeOnboarding OnboardingCompleter
	onboardingStatus   OnboardingStatusReader
	riverClient        *river.Client[pgx.Tx]
	notifier           *notification.Triggers // Optional: notification trigger service
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient          *ent.Client
	Pool               *pgxpool.Pool
	Redis              *redis.Client
	JWTCfg             middleware.JWTConfig
	Audit              *audit.Logger
	CompleteOnboarding OnboardingCompleter
	OnboardingStatus   OnboardingStatusReader
	RiverClient        *river.Client[pgx.Tx]
	Notifier           *notification.Triggers // Optional: notification trigger service
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:             deps.EntClient,
		pool:               deps.Pool,
		redis:              deps.Redis,
		jwtCfg:             deps.JWTCfg,
		audit:              deps.Audit,
		completeOnboarding: deps.CompleteOnboarding,
		onboardingStatus:   deps.OnboardingStatus,
		riverClient:        deps.RiverClient,
		notifier:           deps.Notifier,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
// All handlers use this instead of hardcoded "anonymous".
func actorFromCtx(c interface{ GetString(any) string }) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}
