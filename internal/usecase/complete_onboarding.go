// Package usecase provides application use cases (Clean Architecture).
//
// UseCases are reusable across HTTP, CLI, gRPC, Cron.
// Atomic transactions are managed at UseCase level.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/idp"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// DirectoryStore is the directory-synchronizer surface the orchestrator needs.
type DirectoryStore interface {
	SyncUser(ctx context.Context, userID string, data domain.OnboardingData) error
	CreateOrganizationRecord(ctx context.Context, orgID, ownerID string, data domain.OnboardingData) error
	UpdateUserAfterOnboarding(ctx context.Context, userID, orgID string, data domain.OnboardingData) error
}

// ClaimsRefresher publishes fresh session claims after membership changes.
type ClaimsRefresher interface {
	RefreshAfterOnboarding(ctx context.Context, userID, orgID string) error
}

// ActivityRecorder appends compliance activity records.
type ActivityRecorder interface {
	LogOnboardingCompleted(ctx context.Context, userID, orgID string, data domain.OnboardingData) error
}

// WelcomeNotifier fires the onboarding-completed inbox notification.
type WelcomeNotifier interface {
	OnOnboardingCompleted(ctx context.Context, userID, orgID, orgName string)
}

// SagaStore persists onboarding saga state transitions.
type SagaStore interface {
	Begin(ctx context.Context, data domain.OnboardingData) (*ent.OnboardingSaga, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*ent.OnboardingSaga, error)
	RecordExternalUser(ctx context.Context, sagaID, userID string) error
	RecordExternalOrg(ctx context.Context, sagaID, orgID string) error
	SetState(ctx context.Context, sagaID string, state domain.SagaState) error
	MarkFailed(ctx context.Context, sagaID string, reachedState domain.SagaState, cause error) error
	MarkCompleted(ctx context.Context, sagaID string) error
}

// ReconcileEnqueuer schedules a reconcile run for a failed saga.
type ReconcileEnqueuer interface {
	EnqueueReconcile(ctx context.Context, sagaID string) error
}

// CompleteOnboardingInput wraps the applicant payload.
type CompleteOnboardingInput struct {
	Data domain.OnboardingData
}

// CompleteOnboardingOutput is returned to the HTTP layer.
type CompleteOnboardingOutput struct {
	Result   domain.OnboardingResult
	Replayed bool
}

// CompleteOnboardingUseCase orchestrates the provisioning chain.
//
// The first six steps (identity, organization, membership, user mirror,
// organization record, user finalisation) are fatal: any failure marks the
// saga FAILED and hands it to the reconciler. Session refresh, audit logging
// and notifications are best effort and never fail the run.
type CompleteOnboardingUseCase struct {
	identity   idp.Client
	directory  DirectoryStore
	sagas      SagaStore
	reconciler ReconcileEnqueuer

	refresher ClaimsRefresher
	auditor   ActivityRecorder
	notifier  WelcomeNotifier
}

// NewCompleteOnboardingUseCase creates a new CompleteOnboardingUseCase.
func NewCompleteOnboardingUseCase(
	identity idp.Client,
	directory DirectoryStore,
	sagas SagaStore,
	reconciler ReconcileEnqueuer,
) *CompleteOnboardingUseCase {
	return &CompleteOnboardingUseCase{
		identity:   identity,
		directory:  directory,
		sagas:      sagas,
		reconciler: reconciler,
	}
}

// WithClaimsRefresher sets the session refresher (optional dependency).
func (uc *CompleteOnboardingUseCase) WithClaimsRefresher(r ClaimsRefresher) *CompleteOnboardingUseCase {
	uc.refresher = r
	return uc
}

// WithActivityRecorder sets the audit recorder (optional dependency).
func (uc *CompleteOnboardingUseCase) WithActivityRecorder(a ActivityRecorder) *CompleteOnboardingUseCase {
	uc.auditor = a
	return uc
}

// WithWelcomeNotifier sets the inbox notifier (optional dependency).
func (uc *CompleteOnboardingUseCase) WithWelcomeNotifier(n WelcomeNotifier) *CompleteOnboardingUseCase {
	uc.notifier = n
	return uc
}

// Execute runs the onboarding chain end to end.
func (uc *CompleteOnboardingUseCase) Execute(ctx context.Context, input CompleteOnboardingInput) (*CompleteOnboardingOutput, error) {
	data := input.Data

	// Idempotency is opt-in: without a key every submission provisions a
	// fresh tenant.
	if data.IdempotencyKey != "" {
		prior, err := uc.sagas.FindByIdempotencyKey(ctx, data.IdempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("resolve idempotency key: %w", err)
		}
		if prior != nil {
			if domain.SagaState(prior.State) == domain.SagaCompleted {
				logger.Info("Onboarding replayed from completed saga",
					zap.String("saga_id", prior.ID),
					zap.String("idempotency_key", data.IdempotencyKey),
				)
				return &CompleteOnboardingOutput{
					Result: domain.OnboardingResult{
						UserID:         prior.ExternalUserID,
						OrganizationID: prior.ExternalOrgID,
						SagaID:         prior.ID,
					},
					Replayed: true,
				}, nil
			}
			return nil, apperrors.ErrOnboardingInFlightf(data.IdempotencyKey)
		}
	}

	run, err := uc.sagas.Begin(ctx, data)
	if err != nil {
		return nil, err
	}
	sagaID := run.ID

	// Step 1: external identity. Security settings travel in the private
	// bag; only display fields are public.
	userID, err := uc.identity.CreateUser(ctx, idp.CreateUserInput{
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Username:  data.Username,
		Password:  data.Password,
		PublicMetadata: map[string]any{
			"role":      data.Role,
			"user_type": data.UserType,
			"job_title": data.JobTitle,
		},
		PrivateMetadata: map[string]any{
			"onboarding_completed": false,
			"mfa_enabled":          data.MFAEnabled,
			"mfa_method":           data.MFAMethod,
			"session_timeout":      data.SessionTimeout,
			"password_policy":      data.PasswordPolicy,
		},
	})
	if err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaStarted, "create identity", err)
	}
	if err := uc.sagas.RecordExternalUser(ctx, sagaID, userID); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaStarted, "record identity", err)
	}

	// Step 2: external organization.
	orgID, err := uc.identity.CreateOrganization(ctx, idp.CreateOrganizationInput{
		Name: data.OrganizationName,
		Slug: domain.DeriveSlug(data.OrganizationName),
		PublicMetadata: map[string]any{
			"organization_type": string(domain.NormalizeOrgType(data.OrganizationType)),
			"industry":          data.Industry,
			"team_size":         data.TeamSize,
			"country":           data.Country,
			"state":             data.State,
		},
		PrivateMetadata: map[string]any{
			"website":     data.Website,
			"phone":       data.Phone,
			"address":     data.Address,
			"city":        data.City,
			"zip_code":    data.ZipCode,
			"description": data.Description,
		},
	})
	if err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaIdentityCreated, "create organization", err)
	}
	if err := uc.sagas.RecordExternalOrg(ctx, sagaID, orgID); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaIdentityCreated, "record organization", err)
	}

	// Step 3: membership with the coarse role derived from the fine role.
	// Only the user-side directory mirror grants unconditional administrator.
	if err := uc.identity.CreateMembership(ctx, idp.CreateMembershipInput{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           string(domain.CoarseRoleFor(data.Role)),
	}); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaOrgCreated, "create membership", err)
	}
	if err := uc.sagas.SetState(ctx, sagaID, domain.SagaMembershipEstablished); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaOrgCreated, "advance saga", err)
	}

	// Step 4: user mirror in the directory store.
	if err := uc.directory.SyncUser(ctx, userID, data); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaMembershipEstablished, "sync user", err)
	}
	if err := uc.sagas.SetState(ctx, sagaID, domain.SagaUserSynced); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaMembershipEstablished, "advance saga", err)
	}

	// Step 5: organization record with normalised enums and defaults.
	if err := uc.directory.CreateOrganizationRecord(ctx, orgID, userID, data); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaUserSynced, "create organization record", err)
	}
	if err := uc.sagas.SetState(ctx, sagaID, domain.SagaOrgRecordWritten); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaUserSynced, "advance saga", err)
	}

	// Step 6: finalise the user mirror.
	if err := uc.directory.UpdateUserAfterOnboarding(ctx, userID, orgID, data); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaOrgRecordWritten, "finalise user record", err)
	}
	if err := uc.sagas.SetState(ctx, sagaID, domain.SagaUserRecordUpdated); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaOrgRecordWritten, "advance saga", err)
	}

	if err := uc.sagas.MarkCompleted(ctx, sagaID); err != nil {
		return nil, uc.fail(ctx, sagaID, domain.SagaUserRecordUpdated, "complete saga", err)
	}

	uc.finishBestEffort(ctx, userID, orgID, data)

	logger.Info("Onboarding completed",
		zap.String("saga_id", sagaID),
		zap.String("user_id", userID),
		zap.String("organization_id", orgID),
	)

	return &CompleteOnboardingOutput{
		Result: domain.OnboardingResult{
			UserID:         userID,
			OrganizationID: orgID,
			SagaID:         sagaID,
		},
	}, nil
}

// finishBestEffort runs the non-fatal tail: identity metadata, session
// claims, audit log and welcome notification. Each failure is logged and
// swallowed.
func (uc *CompleteOnboardingUseCase) finishBestEffort(ctx context.Context, userID, orgID string, data domain.OnboardingData) {
	if err := uc.identity.UpdateUserMetadata(ctx, userID, nil, map[string]any{
		"onboarding_completed": true,
		"organization_id":      orgID,
	}); err != nil {
		logger.Warn("Failed to update identity metadata after onboarding",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	if uc.refresher != nil {
		if err := uc.refresher.RefreshAfterOnboarding(ctx, userID, orgID); err != nil {
			logger.Warn("Failed to refresh session claims after onboarding",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	if uc.auditor != nil {
		_ = uc.auditor.LogOnboardingCompleted(ctx, userID, orgID, data)
	}

	if uc.notifier != nil {
		uc.notifier.OnOnboardingCompleted(ctx, userID, orgID, data.OrganizationName)
	}
}

// fail marks the saga FAILED, hands it to the reconciler and maps the cause
// onto an API error.
func (uc *CompleteOnboardingUseCase) fail(ctx context.Context, sagaID string, reachedState domain.SagaState, step string, cause error) error {
	logger.Error("Onboarding step failed",
		zap.String("saga_id", sagaID),
		zap.String("step", step),
		zap.String("reached_state", string(reachedState)),
		zap.Error(cause),
	)

	if err := uc.sagas.MarkFailed(ctx, sagaID, reachedState, cause); err != nil {
		logger.Error("Failed to mark saga failed",
			zap.String("saga_id", sagaID),
			zap.Error(err),
		)
	}

	if err := uc.reconciler.EnqueueReconcile(ctx, sagaID); err != nil {
		logger.Error("Failed to enqueue saga reconcile",
			zap.String("saga_id", sagaID),
			zap.Error(err),
		)
	}

	var verr *idp.ValidationError
	if errors.As(cause, &verr) {
		fieldErrors := make([]apperrors.FieldError, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fieldErrors = append(fieldErrors, apperrors.FieldError{
				Field:   fe.Field,
				Code:    fe.Code,
				Message: fe.Message,
			})
		}
		return apperrors.ErrIdentityRejectedf(verr.Error(), fieldErrors)
	}

	var aerr *idp.APIError
	if errors.As(cause, &aerr) && aerr.Status >= 500 {
		return apperrors.ErrIdentityUnavailablef()
	}

	return apperrors.Internal(apperrors.CodeOnboardingFailed,
		fmt.Sprintf("onboarding failed at %s", step))
}
