package modules

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"tenantforge.io/tenantforge/internal/api/handlers"
	"tenantforge.io/tenantforge/internal/directory"
	"tenantforge.io/tenantforge/internal/jobs"
	"tenantforge.io/tenantforge/internal/notification"
	"tenantforge.io/tenantforge/internal/saga"
	"tenantforge.io/tenantforge/internal/session"
)

// DirectoryModule wires the directory mirror, saga store, session refresher
// and inbox notifications, plus the background workers built on them.
type DirectoryModule struct {
	infra        *Infrastructure
	synchronizer *directory.Synchronizer
	sagas        *saga.Store
	refresher    *session.Refresher
	triggers     *notification.Triggers
}

// NewDirectoryModule creates the directory module with explicit constructor wiring.
func NewDirectoryModule(infra *Infrastructure) *DirectoryModule {
	var refresher *session.Refresher
	if infra.Redis != nil {
		cache := session.NewRedisCacheFromClient(infra.Redis, infra.Config.Session.ClaimsTTL)
		refresher = session.NewRefresher(cache)
	}

	inboxSender := notification.NewInboxSender(infra.EntClient)

	return &DirectoryModule{
		infra:        infra,
		synchronizer: directory.NewSynchronizer(infra.EntClient),
		sagas:        saga.NewStore(infra.EntClient),
		refresher:    refresher,
		triggers:     notification.NewTriggers(inboxSender, infra.EntClient),
	}
}

func (m *DirectoryModule) Name() string { return "directory" }

func (m *DirectoryModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Notifier = m.triggers
}

func (m *DirectoryModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewOnboardingReconcileWorker(
		m.sagas,
		m.infra.Identity,
		m.synchronizer,
		m.infra.AuditLogger,
		m.refresher,
		m.triggers,
		m.infra.Pools,
	))
	// The sweep worker resolves the River client lazily: workers are
	// registered before the client exists.
	river.AddWorker(workers, jobs.NewSagaSweepWorker(
		m.sagas,
		func() *river.Client[pgx.Tx] { return m.infra.RiverClient },
		m.infra.Pools,
		m.infra.Config.Saga.StuckThreshold,
	))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		m.infra.EntClient,
		m.infra.Config.Saga.NotificationRetention,
	))
}

func (m *DirectoryModule) Shutdown(context.Context) error { return nil }
