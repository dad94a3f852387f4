// Package saga persists the onboarding state machine.
//
// A saga row is written before the first provisioning call and advanced after
// every step, so a crash at any point leaves a record the reconciler can act
// on instead of silent orphans in the identity service.
package saga

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/ent/onboardingsaga"
	"tenantforge.io/tenantforge/internal/domain"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
)

// Store reads and writes onboarding saga rows.
type Store struct {
	client *ent.Client
}

// NewStore creates a saga Store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Begin creates the saga row in STARTED state. When the payload carries an
// idempotency key, a unique index rejects a second concurrent run with the
// same key; completed runs are resolved by the caller before Begin.
func (s *Store) Begin(ctx context.Context, data domain.OnboardingData) (*ent.OnboardingSaga, error) {
	payload, err := data.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("encode saga payload: %w", err)
	}

	create := s.client.OnboardingSaga.Create().
		SetID(generateSagaID()).
		SetEmail(data.Email).
		SetPayload(payload)
	if data.IdempotencyKey != "" {
		create = create.SetIdempotencyKey(data.IdempotencyKey)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && data.IdempotencyKey != "" {
			return nil, apperrors.ErrOnboardingInFlightf(data.IdempotencyKey)
		}
		return nil, fmt.Errorf("create saga: %w", err)
	}
	return row, nil
}

// Get loads a saga row by id.
func (s *Store) Get(ctx context.Context, sagaID string) (*ent.OnboardingSaga, error) {
	row, err := s.client.OnboardingSaga.Get(ctx, sagaID)
	if err != nil {
		return nil, fmt.Errorf("get saga %s: %w", sagaID, err)
	}
	return row, nil
}

// FindByIdempotencyKey returns the saga row for a key, or nil when no run
// with that key exists.
func (s *Store) FindByIdempotencyKey(ctx context.Context, key string) (*ent.OnboardingSaga, error) {
	row, err := s.client.OnboardingSaga.Query().
		Where(onboardingsaga.IdempotencyKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find saga by idempotency key: %w", err)
	}
	return row, nil
}

// SetState advances the saga to the given state.
func (s *Store) SetState(ctx context.Context, sagaID string, state domain.SagaState) error {
	if _, err := s.client.OnboardingSaga.UpdateOneID(sagaID).
		SetState(onboardingsaga.State(state)).
		Save(ctx); err != nil {
		return fmt.Errorf("advance saga %s to %s: %w", sagaID, state, err)
	}
	return nil
}

// RecordExternalUser stores the external identity id and advances the state.
func (s *Store) RecordExternalUser(ctx context.Context, sagaID, userID string) error {
	if _, err := s.client.OnboardingSaga.UpdateOneID(sagaID).
		SetExternalUserID(userID).
		SetState(onboardingsaga.State(domain.SagaIdentityCreated)).
		Save(ctx); err != nil {
		return fmt.Errorf("record external user on saga %s: %w", sagaID, err)
	}
	return nil
}

// RecordExternalOrg stores the external organization id and advances the state.
func (s *Store) RecordExternalOrg(ctx context.Context, sagaID, orgID string) error {
	if _, err := s.client.OnboardingSaga.UpdateOneID(sagaID).
		SetExternalOrgID(orgID).
		SetState(onboardingsaga.State(domain.SagaOrgCreated)).
		Save(ctx); err != nil {
		return fmt.Errorf("record external org on saga %s: %w", sagaID, err)
	}
	return nil
}

// MarkFailed records the failure, remembering how far provisioning got so the
// reconciler can pick a direction.
func (s *Store) MarkFailed(ctx context.Context, sagaID string, reachedState domain.SagaState, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if _, err := s.client.OnboardingSaga.UpdateOneID(sagaID).
		SetState(onboardingsaga.StateFAILED).
		SetFailedAtState(string(reachedState)).
		SetError(msg).
		Save(ctx); err != nil {
		return fmt.Errorf("mark saga %s failed: %w", sagaID, err)
	}
	return nil
}

// MarkCompleted moves the saga to its successful terminal state.
func (s *Store) MarkCompleted(ctx context.Context, sagaID string) error {
	return s.SetState(ctx, sagaID, domain.SagaCompleted)
}

// MarkRolledBack moves the saga to its rolled-back terminal state.
func (s *Store) MarkRolledBack(ctx context.Context, sagaID string) error {
	if _, err := s.client.OnboardingSaga.UpdateOneID(sagaID).
		SetState(onboardingsaga.StateROLLED_BACK).
		Save(ctx); err != nil {
		return fmt.Errorf("mark saga %s rolled back: %w", sagaID, err)
	}
	return nil
}

// IncrementReconcileAttempts bumps the reconcile counter and returns the new
// value.
func (s *Store) IncrementReconcileAttempts(ctx context.Context, sagaID string) (int, error) {
	row, err := s.client.OnboardingSaga.UpdateOneID(sagaID).
		AddReconcileAttempts(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("increment reconcile attempts on saga %s: %w", sagaID, err)
	}
	return row.ReconcileAttempts, nil
}

// ListStuck returns non-terminal sagas that have not progressed since the
// cutoff. The sweep job enqueues a reconcile run for each.
func (s *Store) ListStuck(ctx context.Context, cutoff time.Time, limit int) ([]*ent.OnboardingSaga, error) {
	rows, err := s.client.OnboardingSaga.Query().
		Where(
			onboardingsaga.StateNotIn(
				onboardingsaga.StateCOMPLETED,
				onboardingsaga.StateROLLED_BACK,
			),
			onboardingsaga.UpdatedAtLT(cutoff),
		).
		Order(ent.Asc(onboardingsaga.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stuck sagas: %w", err)
	}
	return rows, nil
}

// Payload decodes the onboarding payload snapshot of a saga row.
func Payload(row *ent.OnboardingSaga) (domain.OnboardingData, error) {
	var data domain.OnboardingData
	if err := data.FromJSON(row.Payload); err != nil {
		return domain.OnboardingData{}, fmt.Errorf("decode saga %s payload: %w", row.ID, err)
	}
	return data, nil
}

func generateSagaID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("saga-%s", uuid.New().String())
	}
	return fmt.Sprintf("saga-%s", id.String())
}
