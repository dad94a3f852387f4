package usecase

import (
	"context"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/domain"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
)

// SagaReader loads saga rows for status queries.
type SagaReader interface {
	Get(ctx context.Context, sagaID string) (*ent.OnboardingSaga, error)
}

// GetOnboardingStatusInput identifies one onboarding run.
type GetOnboardingStatusInput struct {
	SagaID string
}

// GetOnboardingStatusOutput is the status view of an onboarding run.
type GetOnboardingStatusOutput struct {
	SagaID            string `json:"saga_id"`
	State             string `json:"state"`
	FailedAtState     string `json:"failed_at_state,omitempty"`
	Email             string `json:"email"`
	UserID            string `json:"user_id,omitempty"`
	OrganizationID    string `json:"organization_id,omitempty"`
	Error             string `json:"error,omitempty"`
	ReconcileAttempts int    `json:"reconcile_attempts"`
}

// GetOnboardingStatusUseCase reads the persisted state of an onboarding run.
type GetOnboardingStatusUseCase struct {
	sagas SagaReader
}

// NewGetOnboardingStatusUseCase creates a new GetOnboardingStatusUseCase.
func NewGetOnboardingStatusUseCase(sagas SagaReader) *GetOnboardingStatusUseCase {
	return &GetOnboardingStatusUseCase{sagas: sagas}
}

// Execute loads the saga row and projects it onto the status view.
func (uc *GetOnboardingStatusUseCase) Execute(ctx context.Context, input GetOnboardingStatusInput) (*GetOnboardingStatusOutput, error) {
	row, err := uc.sagas.Get(ctx, input.SagaID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeOnboardingNotFound, "onboarding run not found")
		}
		return nil, err
	}

	out := &GetOnboardingStatusOutput{
		SagaID:            row.ID,
		State:             string(row.State),
		FailedAtState:     row.FailedAtState,
		Email:             row.Email,
		ReconcileAttempts: row.ReconcileAttempts,
	}
	// External ids are only exposed once the run completed; partially
	// provisioned ids are reconciler-internal.
	if domain.SagaState(row.State) == domain.SagaCompleted {
		out.UserID = row.ExternalUserID
		out.OrganizationID = row.ExternalOrgID
	}
	return out, nil
}
