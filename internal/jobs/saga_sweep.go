package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tenantforge.io/tenantforge/internal/pkg/logger"
	"tenantforge.io/tenantforge/internal/pkg/worker"
	"tenantforge.io/tenantforge/internal/saga"
)

const (
	// DefaultStuckThreshold is how long a saga may sit in a non-terminal
	// state before the sweep considers it stuck.
	DefaultStuckThreshold = 15 * time.Minute

	// sweepBatchLimit bounds one sweep run.
	sweepBatchLimit = 100
)

// SagaSweepArgs is a periodic maintenance job that finds stuck onboarding
// sagas and enqueues a reconcile run for each. It catches runs whose process
// crashed before the failure path could enqueue reconciliation itself.
type SagaSweepArgs struct{}

// Kind returns the job kind identifier for the periodic saga sweep.
func (SagaSweepArgs) Kind() string { return "onboarding_saga_sweep" }

// InsertOpts ensures at most one sweep job is enqueued per period.
func (SagaSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// SagaSweepWorker scans for stuck sagas and fans reconcile inserts out over
// the general worker pool.
//
// The River client is resolved lazily because workers are registered before
// the client exists.
type SagaSweepWorker struct {
	river.WorkerDefaults[SagaSweepArgs]
	sagas          *saga.Store
	riverClientFn  func() *river.Client[pgx.Tx]
	pools          *worker.Pools
	stuckThreshold time.Duration
}

// NewSagaSweepWorker creates a sweep worker. Non-positive threshold falls
// back to the 15-minute default.
func NewSagaSweepWorker(sagas *saga.Store, riverClientFn func() *river.Client[pgx.Tx], pools *worker.Pools, stuckThreshold time.Duration) *SagaSweepWorker {
	if stuckThreshold <= 0 {
		stuckThreshold = DefaultStuckThreshold
	}
	return &SagaSweepWorker{
		sagas:          sagas,
		riverClientFn:  riverClientFn,
		pools:          pools,
		stuckThreshold: stuckThreshold,
	}
}

// Work enqueues a reconcile job for every stuck saga.
func (w *SagaSweepWorker) Work(ctx context.Context, _ *river.Job[SagaSweepArgs]) error {
	if w == nil || w.sagas == nil || w.riverClientFn == nil {
		return fmt.Errorf("saga sweep worker is not initialized")
	}
	riverClient := w.riverClientFn()
	if riverClient == nil {
		return fmt.Errorf("saga sweep worker has no river client")
	}

	cutoff := time.Now().UTC().Add(-w.stuckThreshold)
	stuck, err := w.sagas.ListStuck(ctx, cutoff, sweepBatchLimit)
	if err != nil {
		return err
	}
	if len(stuck) == 0 {
		logger.Debug("saga sweep found nothing to reconcile")
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		enqueued int
		failed   int
	)
	for _, row := range stuck {
		sagaID := row.ID
		wg.Add(1)
		submit := func(taskCtx context.Context) {
			defer wg.Done()
			_, err := riverClient.Insert(taskCtx, OnboardingReconcileArgs{SagaID: sagaID}, nil)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				logger.Error("failed to enqueue reconcile for stuck saga",
					zap.String("saga_id", sagaID),
					zap.Error(err),
				)
				return
			}
			enqueued++
		}
		if w.pools != nil {
			if err := w.pools.General.Submit(ctx, submit); err != nil {
				wg.Done()
				mu.Lock()
				failed++
				mu.Unlock()
			}
		} else {
			submit(ctx)
		}
	}
	wg.Wait()

	logger.Info("saga sweep completed",
		zap.Int("stuck", len(stuck)),
		zap.Int("enqueued", enqueued),
		zap.Int("failed", failed),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
	)

	if failed > 0 {
		return fmt.Errorf("saga sweep failed to enqueue %d/%d reconcile jobs", failed, len(stuck))
	}
	return nil
}
