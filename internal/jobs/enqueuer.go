package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
)

// ReconcileEnqueuer schedules reconcile jobs through River. It is the
// queue-facing half of the orchestrator's failure path.
type ReconcileEnqueuer struct {
	riverClient *river.Client[pgx.Tx]
}

// NewReconcileEnqueuer creates a ReconcileEnqueuer.
func NewReconcileEnqueuer(riverClient *river.Client[pgx.Tx]) *ReconcileEnqueuer {
	return &ReconcileEnqueuer{riverClient: riverClient}
}

// EnqueueReconcile inserts a reconcile job for a saga. Unique options on the
// args deduplicate concurrent inserts for the same saga.
func (e *ReconcileEnqueuer) EnqueueReconcile(ctx context.Context, sagaID string) error {
	if _, err := e.riverClient.Insert(ctx, OnboardingReconcileArgs{SagaID: sagaID}, nil); err != nil {
		return fmt.Errorf("enqueue reconcile for saga %s: %w", sagaID, err)
	}
	return nil
}
