package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"tenantforge.io/tenantforge/internal/api/handlers"
	"tenantforge.io/tenantforge/internal/jobs"
	"tenantforge.io/tenantforge/internal/usecase"
)

// OnboardingModule wires the provisioning orchestrator. It is created after
// the River client is initialized because the failure path enqueues
// reconcile jobs.
type OnboardingModule struct {
	completeUC *usecase.CompleteOnboardingUseCase
	statusUC   *usecase.GetOnboardingStatusUseCase
}

// NewOnboardingModule creates the onboarding module on top of the directory
// module's stores.
func NewOnboardingModule(infra *Infrastructure, dir *DirectoryModule) (*OnboardingModule, error) {
	if infra == nil || infra.EntClient == nil || infra.Pool == nil || infra.RiverClient == nil {
		return nil, fmt.Errorf("onboarding module requires ent client, pgx pool, and river client")
	}
	if dir == nil {
		return nil, fmt.Errorf("onboarding module requires the directory module")
	}

	enqueuer := jobs.NewReconcileEnqueuer(infra.RiverClient)

	completeUC := usecase.NewCompleteOnboardingUseCase(
		infra.Identity,
		dir.synchronizer,
		dir.sagas,
		enqueuer,
	).
		WithActivityRecorder(infra.AuditLogger).
		WithWelcomeNotifier(dir.triggers)
	if dir.refresher != nil {
		completeUC = completeUC.WithClaimsRefresher(dir.refresher)
	}

	return &OnboardingModule{
		completeUC: completeUC,
		statusUC:   usecase.NewGetOnboardingStatusUseCase(dir.sagas),
	}, nil
}

func (m *OnboardingModule) Name() string { return "onboarding" }

func (m *OnboardingModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.CompleteOnboarding = m.completeUC
	deps.OnboardingStatus = m.statusUC
}

func (m *OnboardingModule) RegisterWorkers(_ *river.Workers) {}

func (m *OnboardingModule) Shutdown(context.Context) error { return nil }
