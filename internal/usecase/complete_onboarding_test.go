package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/ent/onboardingsaga"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/idp"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

// --- Fakes ---

type fakeDirectory struct {
	mu        sync.Mutex
	synced    []string
	orgs      []string
	finalised []string

	failSyncUser  error
	failCreateOrg error
	failFinalise  error
}

func (f *fakeDirectory) SyncUser(_ context.Context, userID string, _ domain.OnboardingData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSyncUser != nil {
		return f.failSyncUser
	}
	f.synced = append(f.synced, userID)
	return nil
}

func (f *fakeDirectory) CreateOrganizationRecord(_ context.Context, orgID, _ string, _ domain.OnboardingData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateOrg != nil {
		return f.failCreateOrg
	}
	f.orgs = append(f.orgs, orgID)
	return nil
}

func (f *fakeDirectory) UpdateUserAfterOnboarding(_ context.Context, userID, _ string, _ domain.OnboardingData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFinalise != nil {
		return f.failFinalise
	}
	f.finalised = append(f.finalised, userID)
	return nil
}

type fakeSagaStore struct {
	mu    sync.Mutex
	rows  map[string]*ent.OnboardingSaga
	seq   int
	byKey map[string]string
}

func newFakeSagaStore() *fakeSagaStore {
	return &fakeSagaStore{
		rows:  make(map[string]*ent.OnboardingSaga),
		byKey: make(map[string]string),
	}
}

func (f *fakeSagaStore) Begin(_ context.Context, data domain.OnboardingData) (*ent.OnboardingSaga, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	row := &ent.OnboardingSaga{
		ID:             fmt.Sprintf("saga-%d", f.seq),
		State:          onboardingsaga.StateSTARTED,
		Email:          data.Email,
		IdempotencyKey: data.IdempotencyKey,
	}
	f.rows[row.ID] = row
	if data.IdempotencyKey != "" {
		f.byKey[data.IdempotencyKey] = row.ID
	}
	return row, nil
}

func (f *fakeSagaStore) FindByIdempotencyKey(_ context.Context, key string) (*ent.OnboardingSaga, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byKey[key]
	if !ok {
		return nil, nil
	}
	return f.rows[id], nil
}

func (f *fakeSagaStore) RecordExternalUser(_ context.Context, sagaID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[sagaID].ExternalUserID = userID
	f.rows[sagaID].State = onboardingsaga.StateIDENTITY_CREATED
	return nil
}

func (f *fakeSagaStore) RecordExternalOrg(_ context.Context, sagaID, orgID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[sagaID].ExternalOrgID = orgID
	f.rows[sagaID].State = onboardingsaga.StateORG_CREATED
	return nil
}

func (f *fakeSagaStore) SetState(_ context.Context, sagaID string, state domain.SagaState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[sagaID].State = onboardingsaga.State(state)
	return nil
}

func (f *fakeSagaStore) MarkFailed(_ context.Context, sagaID string, reachedState domain.SagaState, cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := f.rows[sagaID]
	row.State = onboardingsaga.StateFAILED
	row.FailedAtState = string(reachedState)
	if cause != nil {
		row.Error = cause.Error()
	}
	return nil
}

func (f *fakeSagaStore) MarkCompleted(_ context.Context, sagaID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[sagaID].State = onboardingsaga.StateCOMPLETED
	return nil
}

type fakeReconciler struct {
	mu       sync.Mutex
	enqueued []string
}

func (f *fakeReconciler) EnqueueReconcile(_ context.Context, sagaID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, sagaID)
	return nil
}

type fakeRefresher struct {
	calls int
	fail  error
}

func (f *fakeRefresher) RefreshAfterOnboarding(context.Context, string, string) error {
	f.calls++
	return f.fail
}

type fakeAuditor struct {
	calls int
	fail  error
}

func (f *fakeAuditor) LogOnboardingCompleted(_ context.Context, _, _ string, _ domain.OnboardingData) error {
	f.calls++
	return f.fail
}

type fakeNotifier struct {
	calls int
}

func (f *fakeNotifier) OnOnboardingCompleted(context.Context, string, string, string) {
	f.calls++
}

// --- Test setup ---

type onboardingHarness struct {
	uc         *CompleteOnboardingUseCase
	identity   *idp.MockClient
	directory  *fakeDirectory
	sagas      *fakeSagaStore
	reconciler *fakeReconciler
	refresher  *fakeRefresher
	auditor    *fakeAuditor
	notifier   *fakeNotifier
}

func newHarness() *onboardingHarness {
	h := &onboardingHarness{
		identity:   idp.NewMockClient(),
		directory:  &fakeDirectory{},
		sagas:      newFakeSagaStore(),
		reconciler: &fakeReconciler{},
		refresher:  &fakeRefresher{},
		auditor:    &fakeAuditor{},
		notifier:   &fakeNotifier{},
	}
	h.uc = NewCompleteOnboardingUseCase(h.identity, h.directory, h.sagas, h.reconciler).
		WithClaimsRefresher(h.refresher).
		WithActivityRecorder(h.auditor).
		WithWelcomeNotifier(h.notifier)
	return h
}

func validInput() CompleteOnboardingInput {
	return CompleteOnboardingInput{Data: domain.OnboardingData{
		Email:            "jane@acme.example",
		FirstName:        "Jane",
		LastName:         "Doe",
		Password:         "s3cret-enough",
		Role:             "compliance_officer",
		OrganizationName: "Acme, Inc.!!",
		OrganizationType: "enterprise",
	}}
}

// --- Tests ---

func TestExecuteProvisionsFullChain(t *testing.T) {
	h := newHarness()

	out, err := h.uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.Replayed)
	assert.NotEmpty(t, out.Result.UserID)
	assert.NotEmpty(t, out.Result.OrganizationID)

	// External side: user, org and membership all exist. The coarse role
	// comes from the closed fine-role map, so compliance_officer joins as a
	// plain member.
	assert.Equal(t, 1, h.identity.UserCount())
	assert.Equal(t, 1, h.identity.OrgCount())
	orgID, ok := h.identity.MembershipOf(out.Result.UserID)
	require.True(t, ok)
	assert.Equal(t, out.Result.OrganizationID, orgID)
	role, ok := h.identity.MembershipRoleOf(out.Result.UserID)
	require.True(t, ok)
	assert.Equal(t, string(domain.CoarseMember), role)

	// Completion is recorded on the identity's private metadata.
	identityUser, err := h.identity.GetUser(context.Background(), out.Result.UserID)
	require.NoError(t, err)
	assert.Equal(t, true, identityUser.PrivateMetadata["onboarding_completed"])
	assert.Equal(t, out.Result.OrganizationID, identityUser.PrivateMetadata["organization_id"])
	assert.Equal(t, orgID, identityUser.PrivateMetadata["primary_organization_id"])

	// Directory side: synced, org record written, user finalised.
	assert.Equal(t, []string{out.Result.UserID}, h.directory.synced)
	assert.Equal(t, []string{out.Result.OrganizationID}, h.directory.orgs)
	assert.Equal(t, []string{out.Result.UserID}, h.directory.finalised)

	// Saga reached its terminal success state.
	row := h.sagas.rows[out.Result.SagaID]
	assert.Equal(t, onboardingsaga.StateCOMPLETED, row.State)
	assert.Empty(t, h.reconciler.enqueued)

	// Best-effort tail ran.
	assert.Equal(t, 1, h.refresher.calls)
	assert.Equal(t, 1, h.auditor.calls)
	assert.Equal(t, 1, h.notifier.calls)
}

func TestExecuteDerivesCoarseMembershipRole(t *testing.T) {
	tests := []struct {
		fineRole string
		want     domain.CoarseRole
	}{
		{"admin", domain.CoarseAdministrator},
		{"org_admin", domain.CoarseAdministrator},
		{"compliance_officer", domain.CoarseMember},
		{"viewer", domain.CoarseMember},
	}

	for _, tt := range tests {
		t.Run(tt.fineRole, func(t *testing.T) {
			h := newHarness()
			input := validInput()
			input.Data.Role = tt.fineRole

			out, err := h.uc.Execute(context.Background(), input)
			require.NoError(t, err)

			role, ok := h.identity.MembershipRoleOf(out.Result.UserID)
			require.True(t, ok)
			assert.Equal(t, string(tt.want), role)
		})
	}
}

func TestExecuteIdentityRejectionIsFatal(t *testing.T) {
	h := newHarness()
	h.identity.FailOn["CreateUser"] = &idp.ValidationError{
		Status: 422,
		Errors: []idp.FieldError{{Code: "form_identifier_exists", Message: "taken", Field: "email_address"}},
	}

	out, err := h.uc.Execute(context.Background(), validInput())
	require.Error(t, err)
	assert.Nil(t, out)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeIdentityRejected, appErr.Code)
	assert.Equal(t, 422, appErr.HTTPStatus)
	require.Len(t, appErr.FieldErrors, 1)
	assert.Equal(t, "email_address", appErr.FieldErrors[0].Field)

	// Saga is FAILED with the pre-identity state recorded and a reconcile
	// run enqueued.
	require.Len(t, h.sagas.rows, 1)
	for id, row := range h.sagas.rows {
		assert.Equal(t, onboardingsaga.StateFAILED, row.State)
		assert.Equal(t, string(domain.SagaStarted), row.FailedAtState)
		assert.Equal(t, []string{id}, h.reconciler.enqueued)
	}

	// Nothing downstream ran.
	assert.Empty(t, h.directory.synced)
	assert.Equal(t, 0, h.refresher.calls)
	assert.Equal(t, 0, h.notifier.calls)
}

func TestExecuteDirectoryFailureRecordsProgress(t *testing.T) {
	h := newHarness()
	h.directory.failCreateOrg = fmt.Errorf("document store down")

	_, err := h.uc.Execute(context.Background(), validInput())
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeOnboardingFailed, appErr.Code)

	require.Len(t, h.sagas.rows, 1)
	for _, row := range h.sagas.rows {
		assert.Equal(t, onboardingsaga.StateFAILED, row.State)
		// Provisioning got through user sync before the org record failed.
		assert.Equal(t, string(domain.SagaUserSynced), row.FailedAtState)
		assert.NotEmpty(t, row.ExternalUserID)
		assert.NotEmpty(t, row.ExternalOrgID)
	}
	assert.Len(t, h.reconciler.enqueued, 1)
}

func TestExecuteBestEffortFailuresDoNotFailRun(t *testing.T) {
	h := newHarness()
	h.refresher.fail = fmt.Errorf("redis down")
	h.auditor.fail = fmt.Errorf("audit store down")
	h.identity.FailOn["UpdateUserMetadata"] = fmt.Errorf("identity service flake")

	out, err := h.uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, onboardingsaga.StateCOMPLETED, h.sagas.rows[out.Result.SagaID].State)
	assert.Equal(t, 1, h.refresher.calls)
	assert.Equal(t, 1, h.auditor.calls)
	assert.Equal(t, 1, h.notifier.calls)
}

func TestExecuteWithoutKeyNeverDeduplicates(t *testing.T) {
	h := newHarness()

	input := validInput()
	first, err := h.uc.Execute(context.Background(), input)
	require.NoError(t, err)

	// The mock rejects duplicate emails the way the real identity service
	// does, so the second run uses a fresh address.
	input.Data.Email = "jane+2@acme.example"
	second, err := h.uc.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first.Result.SagaID, second.Result.SagaID)
	assert.NotEqual(t, first.Result.OrganizationID, second.Result.OrganizationID)
	assert.Equal(t, 2, h.identity.OrgCount())
}

func TestExecuteReplaysCompletedRunWithSameKey(t *testing.T) {
	h := newHarness()

	input := validInput()
	input.Data.IdempotencyKey = "onboard-acme-1"
	first, err := h.uc.Execute(context.Background(), input)
	require.NoError(t, err)

	second, err := h.uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Result, second.Result)

	// No second tenant was provisioned.
	assert.Equal(t, 1, h.identity.UserCount())
	assert.Equal(t, 1, h.identity.OrgCount())
}

func TestExecuteRejectsInFlightKey(t *testing.T) {
	h := newHarness()

	input := validInput()
	input.Data.IdempotencyKey = "onboard-acme-1"
	h.identity.FailOn["CreateMembership"] = fmt.Errorf("transient outage")

	_, err := h.uc.Execute(context.Background(), input)
	require.Error(t, err)

	// The failed (non-completed) run blocks a retry with the same key; the
	// reconciler owns the saga now.
	h.identity.Reset()
	_, err = h.uc.Execute(context.Background(), input)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeOnboardingInFlight, appErr.Code)
}
