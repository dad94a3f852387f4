package modules

import (
	"strings"

	"tenantforge.io/tenantforge/internal/api/handlers"
	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	verificationKeys := make([][]byte, 0, len(cfg.Security.JWTVerificationKeys))
	for _, key := range cfg.Security.JWTVerificationKeys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		verificationKeys = append(verificationKeys, []byte(key))
	}

	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		Redis:     infra.Redis,
		JWTCfg: middleware.JWTConfig{
			SigningKey:       []byte(cfg.Security.SessionSecret),
			VerificationKeys: verificationKeys,
			Issuer:           "tenantforge",
			// Token lifetime tracks the claims-cache TTL so a token never
			// outlives its cached claims document.
			ExpiresIn: cfg.Session.ClaimsTTL,
		},
		RiverClient: infra.RiverClient,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		contributor, ok := mod.(ServerDepsContributor)
		if !ok {
			continue
		}
		contributor.ContributeServerDeps(&deps)
	}
	return deps
}
