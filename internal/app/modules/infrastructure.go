package modules

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/config"
	"tenantforge.io/tenantforge/internal/governance/audit"
	"tenantforge.io/tenantforge/internal/idp"
	"tenantforge.io/tenantforge/internal/infrastructure"
	"tenantforge.io/tenantforge/internal/pkg/logger"
	"tenantforge.io/tenantforge/internal/pkg/worker"
)

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	RiverClient *river.Client[pgx.Tx]
	AuditLogger *audit.Logger

	// Redis backs the session-claims cache. Nil when Redis is unreachable
	// at boot; claims refresh is best effort, so the service still runs.
	Redis *redis.Client

	// Identity is the external managed-auth client.
	Identity idp.Client
}

// NewInfrastructure initializes DB/pools and shared services.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:  cfg.Worker.GeneralPoolSize,
		IdentityPoolSize: cfg.Worker.IdentityPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, session-claims refresh disabled",
			zap.String("addr", cfg.Redis.Addr),
			zap.Error(err),
		)
		rdb = nil
	}

	return &Infrastructure{
		Config:      cfg,
		DB:          db,
		Pools:       pools,
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		RiverClient: db.RiverClient,
		AuditLogger: audit.NewLogger(db.EntClient),
		Redis:       rdb,
		Identity:    newIdentityClient(cfg.Identity),
	}, nil
}

// newIdentityClient picks the identity-service binding from configuration.
func newIdentityClient(cfg config.IdentityConfig) idp.Client {
	if cfg.Mock {
		logger.Warn("identity client running in mock mode, external provisioning is in-memory only")
		return idp.NewMockClient()
	}
	return idp.NewHTTPClient(idp.Config{
		BaseURL:          cfg.BaseURL,
		APIKey:           cfg.APIKey,
		OperationTimeout: cfg.OperationTimeout,
	})
}

// InitRiver initializes River client on top of a prepared worker registry.
func (i *Infrastructure) InitRiver(workers *river.Workers) error {
	if i == nil || i.DB == nil || i.Config == nil {
		return fmt.Errorf("infrastructure is not initialized")
	}
	if err := i.DB.InitRiverClient(workers, i.Config.River); err != nil {
		return fmt.Errorf("init river: %w", err)
	}
	i.RiverClient = i.DB.RiverClient
	return nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}
