package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/pkg/worker"
)

func TestOnboardingReconcileArgsKind(t *testing.T) {
	t.Parallel()

	if got := (OnboardingReconcileArgs{}).Kind(); got != "onboarding_reconcile" {
		t.Fatalf("Kind() = %q, want %q", got, "onboarding_reconcile")
	}
}

func TestOnboardingReconcileArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (OnboardingReconcileArgs{}).InsertOpts()
	if opts.Queue != "reconciliation" {
		t.Fatalf("Queue = %q, want %q", opts.Queue, "reconciliation")
	}
	if opts.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
}

func TestReconcileDirectionBoundary(t *testing.T) {
	t.Parallel()

	// Everything before the organization record is written rolls back;
	// from that point on the run rolls forward.
	tests := []struct {
		reached     domain.SagaState
		rollForward bool
	}{
		{domain.SagaStarted, false},
		{domain.SagaIdentityCreated, false},
		{domain.SagaOrgCreated, false},
		{domain.SagaMembershipEstablished, false},
		{domain.SagaUserSynced, false},
		{domain.SagaOrgRecordWritten, true},
		{domain.SagaUserRecordUpdated, true},
	}

	for _, tt := range tests {
		if got := tt.reached.ReachedAtLeast(domain.SagaOrgRecordWritten); got != tt.rollForward {
			t.Errorf("ReachedAtLeast(ORG_RECORD_WRITTEN) from %s = %v, want %v",
				tt.reached, got, tt.rollForward)
		}
	}
}

func TestReconcileIdentityCallsRunThroughIdentityPool(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  1,
		IdentityPoolSize: 1,
	})
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	defer pools.Shutdown()

	w := NewOnboardingReconcileWorker(nil, nil, nil, nil, nil, nil, pools)

	wantErr := errors.New("identity outage")
	ran := false
	err = w.callIdentity(context.Background(), func(context.Context) error {
		ran = true
		return wantErr
	})
	if !ran {
		t.Fatal("identity operation did not run through the pool")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("callIdentity error = %v, want %v", err, wantErr)
	}
}

func TestReconcileIdentityCallsWithoutPoolsRunInline(t *testing.T) {
	t.Parallel()

	w := NewOnboardingReconcileWorker(nil, nil, nil, nil, nil, nil, nil)
	ran := false
	if err := w.callIdentity(context.Background(), func(context.Context) error {
		ran = true
		return nil
	}); err != nil {
		t.Fatalf("callIdentity: %v", err)
	}
	if !ran {
		t.Fatal("identity operation did not run inline")
	}
}

func TestSagaSweepArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (SagaSweepArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
}

func TestNewSagaSweepWorkerDefaultThreshold(t *testing.T) {
	t.Parallel()

	w := NewSagaSweepWorker(nil, nil, nil, 0)
	if w.stuckThreshold != DefaultStuckThreshold {
		t.Fatalf("stuckThreshold = %s, want %s", w.stuckThreshold, DefaultStuckThreshold)
	}
}
