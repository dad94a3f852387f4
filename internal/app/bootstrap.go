// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/riverqueue/river"

	"tenantforge.io/tenantforge/internal/api/handlers"
	"tenantforge.io/tenantforge/internal/app/modules"
	"tenantforge.io/tenantforge/internal/config"
	"tenantforge.io/tenantforge/internal/infrastructure"
	"tenantforge.io/tenantforge/internal/jobs"
	"tenantforge.io/tenantforge/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Redis   *redis.Client
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	directoryModule := modules.NewDirectoryModule(infra)
	baseModules := []modules.Module{
		directoryModule,
		modules.NewGovernanceModule(infra),
	}

	workers := river.NewWorkers()
	for _, mod := range baseModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	registerPeriodicJobs(infra)

	// The orchestrator is wired after River init: its failure path enqueues
	// reconcile jobs.
	onboardingModule, err := modules.NewOnboardingModule(infra, directoryModule)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init onboarding module: %w", err)
	}

	allModules := append(baseModules, onboardingModule)
	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server, serverDeps.JWTCfg),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Redis:   infra.Redis,
		Modules: allModules,
	}, nil
}

// registerPeriodicJobs schedules the recurring maintenance jobs: an hourly
// sweep for stuck onboarding sagas and a daily notification retention
// cleanup. Both also run once on startup.
func registerPeriodicJobs(infra *modules.Infrastructure) {
	if infra == nil || infra.RiverClient == nil {
		return
	}
	infra.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.SagaSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	infra.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
}
