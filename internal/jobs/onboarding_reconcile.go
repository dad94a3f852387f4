package jobs

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tenantforge.io/tenantforge/internal/directory"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/governance/audit"
	"tenantforge.io/tenantforge/internal/idp"
	"tenantforge.io/tenantforge/internal/notification"
	"tenantforge.io/tenantforge/internal/pkg/logger"
	"tenantforge.io/tenantforge/internal/pkg/worker"
	"tenantforge.io/tenantforge/internal/saga"
	"tenantforge.io/tenantforge/internal/session"
)

// MaxReconcileAttempts bounds how often a saga is reconciled before it is
// left FAILED for manual inspection.
const MaxReconcileAttempts = 5

// OnboardingReconcileArgs carries only the saga id (claim-check pattern).
type OnboardingReconcileArgs struct {
	SagaID string `json:"saga_id"`
}

// Kind returns the job kind identifier for saga reconciliation.
func (OnboardingReconcileArgs) Kind() string { return "onboarding_reconcile" }

// InsertOpts returns default insert options for reconcile jobs.
func (OnboardingReconcileArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "reconciliation",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// OnboardingReconcileWorker repairs a disrupted onboarding run.
//
// Direction is decided by how far provisioning got before failing:
//   - before ORG_RECORD_WRITTEN: roll back. External artifacts are deleted in
//     reverse creation order so no orphaned identity or group survives.
//   - at or past ORG_RECORD_WRITTEN: roll forward. The tenant mostly exists,
//     so the remaining steps are replayed to completion.
type OnboardingReconcileWorker struct {
	river.WorkerDefaults[OnboardingReconcileArgs]
	sagas       *saga.Store
	identity    idp.Client
	directory   *directory.Synchronizer
	auditLogger *audit.Logger
	refresher   *session.Refresher
	triggers    *notification.Triggers
	pools       *worker.Pools
}

// NewOnboardingReconcileWorker creates a reconcile worker with all
// dependencies (manual DI).
func NewOnboardingReconcileWorker(
	sagas *saga.Store,
	identity idp.Client,
	dir *directory.Synchronizer,
	auditLogger *audit.Logger,
	refresher *session.Refresher,
	triggers *notification.Triggers,
	pools *worker.Pools,
) *OnboardingReconcileWorker {
	return &OnboardingReconcileWorker{
		sagas:       sagas,
		identity:    identity,
		directory:   dir,
		auditLogger: auditLogger,
		refresher:   refresher,
		triggers:    triggers,
		pools:       pools,
	}
}

// callIdentity runs one identity-service operation through the identity pool
// so concurrently running reconcile jobs share its outbound-call bound.
func (w *OnboardingReconcileWorker) callIdentity(ctx context.Context, op func(context.Context) error) error {
	if w.pools == nil {
		return op(ctx)
	}
	done := make(chan error, 1)
	if err := w.pools.Identity.Submit(ctx, func(ctx context.Context) {
		done <- op(ctx)
	}); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Work reconciles one saga.
func (w *OnboardingReconcileWorker) Work(ctx context.Context, job *river.Job[OnboardingReconcileArgs]) error {
	sagaID := job.Args.SagaID

	logger.Info("Processing onboarding reconcile job",
		zap.String("saga_id", sagaID),
		zap.Int("attempt", job.Attempt),
	)

	row, err := w.sagas.Get(ctx, sagaID)
	if err != nil {
		return fmt.Errorf("fetch saga %s: %w", sagaID, err)
	}

	state := domain.SagaState(row.State)
	if state.IsTerminal() {
		logger.Info("saga already terminal, skipping reconcile",
			zap.String("saga_id", sagaID),
			zap.String("state", string(state)),
		)
		return nil
	}

	attempts, err := w.sagas.IncrementReconcileAttempts(ctx, sagaID)
	if err != nil {
		return err
	}
	if attempts > MaxReconcileAttempts {
		logAuditReconcile(ctx, w.auditLogger, sagaID, "abandoned", map[string]any{
			"reconcile_attempts": attempts,
		})
		return river.JobCancel(fmt.Errorf("saga %s exceeded %d reconcile attempts", sagaID, MaxReconcileAttempts))
	}

	// A FAILED saga remembers the last state it reached; a saga stuck
	// mid-flight after a crash is still sitting on that state directly.
	reached := state
	if state == domain.SagaFailed {
		reached = domain.SagaState(row.FailedAtState)
	}

	if reached.ReachedAtLeast(domain.SagaOrgRecordWritten) {
		return w.rollForward(ctx, row.ID, reached, row.ExternalUserID, row.ExternalOrgID, attempts)
	}
	return w.rollBack(ctx, row.ID, row.ExternalUserID, row.ExternalOrgID, attempts)
}

// rollBack deletes external artifacts in reverse creation order, then the
// directory mirrors, and marks the saga ROLLED_BACK.
func (w *OnboardingReconcileWorker) rollBack(ctx context.Context, sagaID string, userID, orgID string, attempts int) error {
	if orgID != "" {
		err := w.callIdentity(ctx, func(ctx context.Context) error {
			return w.identity.DeleteOrganization(ctx, orgID)
		})
		if err != nil && idp.IsRetryable(err) {
			return fmt.Errorf("rollback: delete external organization %s: %w", orgID, err)
		}
		if err := w.directory.DeleteOrganizationRecord(ctx, orgID); err != nil {
			return fmt.Errorf("rollback: %w", err)
		}
	}
	if userID != "" {
		err := w.callIdentity(ctx, func(ctx context.Context) error {
			return w.identity.DeleteUser(ctx, userID)
		})
		if err != nil && idp.IsRetryable(err) {
			return fmt.Errorf("rollback: delete external user %s: %w", userID, err)
		}
		if err := w.directory.DeleteUserRecord(ctx, userID); err != nil {
			return fmt.Errorf("rollback: %w", err)
		}
	}

	if err := w.sagas.MarkRolledBack(ctx, sagaID); err != nil {
		return err
	}

	logAuditReconcile(ctx, w.auditLogger, sagaID, "rolled_back", map[string]any{
		"reconcile_attempts": attempts,
	})
	logger.Info("Onboarding saga rolled back",
		zap.String("saga_id", sagaID),
		zap.String("external_user_id", userID),
		zap.String("external_org_id", orgID),
	)
	return nil
}

// rollForward replays the remaining provisioning steps and marks the saga
// COMPLETED. Directory writes are idempotent, so replaying an already-applied
// step is harmless.
func (w *OnboardingReconcileWorker) rollForward(ctx context.Context, sagaID string, reached domain.SagaState, userID, orgID string, attempts int) error {
	row, err := w.sagas.Get(ctx, sagaID)
	if err != nil {
		return err
	}
	data, err := saga.Payload(row)
	if err != nil {
		return river.JobCancel(err)
	}

	if !reached.ReachedAtLeast(domain.SagaUserRecordUpdated) {
		if err := w.directory.UpdateUserAfterOnboarding(ctx, userID, orgID, data); err != nil {
			return fmt.Errorf("roll forward: %w", err)
		}
		if err := w.sagas.SetState(ctx, sagaID, domain.SagaUserRecordUpdated); err != nil {
			return err
		}
	}

	if err := w.sagas.MarkCompleted(ctx, sagaID); err != nil {
		return err
	}

	// Best-effort tail, same as the happy path.
	if err := w.callIdentity(ctx, func(ctx context.Context) error {
		return w.identity.UpdateUserMetadata(ctx, userID, nil, map[string]any{
			"onboarding_completed": true,
			"organization_id":      orgID,
		})
	}); err != nil {
		logger.Warn("reconcile: failed to update identity metadata",
			zap.String("saga_id", sagaID),
			zap.Error(err),
		)
	}
	if w.refresher != nil {
		if err := w.refresher.RefreshAfterOnboarding(ctx, userID, orgID); err != nil {
			logger.Warn("reconcile: failed to refresh session claims",
				zap.String("saga_id", sagaID),
				zap.Error(err),
			)
		}
	}
	if w.triggers != nil {
		w.triggers.OnOnboardingReconciled(ctx, userID, orgID, sagaID)
	}

	logAuditReconcile(ctx, w.auditLogger, sagaID, "rolled_forward", map[string]any{
		"reconcile_attempts": attempts,
		"resumed_from":       string(reached),
	})
	logger.Info("Onboarding saga rolled forward to completion",
		zap.String("saga_id", sagaID),
		zap.String("resumed_from", string(reached)),
	)
	return nil
}
