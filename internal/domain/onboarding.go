// Package domain contains the core onboarding domain model: applicant input,
// role and organization taxonomies, and the onboarding saga state machine.
package domain

import (
	"encoding/json"
	"time"
)

// OnboardingData is the applicant-submitted payload that drives the whole
// provisioning workflow.
type OnboardingData struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	JobTitle  string `json:"job_title,omitempty"`
	Role      string `json:"role"`
	UserType  string `json:"user_type,omitempty"`

	OrganizationName string `json:"organization_name"`
	OrganizationType string `json:"organization_type"`
	Industry         string `json:"industry,omitempty"`
	TeamSize         string `json:"team_size,omitempty"`
	Country          string `json:"country,omitempty"`
	State            string `json:"state,omitempty"`
	Website          string `json:"website,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	ZipCode          string `json:"zip_code,omitempty"`
	Description      string `json:"description,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
	Locale           string `json:"locale,omitempty"`

	MFAEnabled     bool   `json:"mfa_enabled,omitempty"`
	MFAMethod      string `json:"mfa_method,omitempty"`
	SessionTimeout int    `json:"session_timeout,omitempty"`
	PasswordPolicy string `json:"password_policy,omitempty"`

	// IdempotencyKey is optional. When present, a completed saga with the
	// same key replays its stored result instead of provisioning again.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// DisplayName returns the applicant's human-readable name.
func (d OnboardingData) DisplayName() string {
	switch {
	case d.FirstName != "" && d.LastName != "":
		return d.FirstName + " " + d.LastName
	case d.FirstName != "":
		return d.FirstName
	default:
		return d.Username
	}
}

// ToJSON converts the payload to JSON bytes for saga persistence.
func (d OnboardingData) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

// FromJSON restores a payload persisted by ToJSON.
func (d *OnboardingData) FromJSON(raw []byte) error {
	return json.Unmarshal(raw, d)
}

// OnboardingResult is returned to the caller on success.
type OnboardingResult struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	SagaID         string `json:"saga_id"`
}

// SagaState is one state of the linear onboarding state machine.
type SagaState string

const (
	SagaStarted               SagaState = "STARTED"
	SagaIdentityCreated       SagaState = "IDENTITY_CREATED"
	SagaOrgCreated            SagaState = "ORG_CREATED"
	SagaMembershipEstablished SagaState = "MEMBERSHIP_ESTABLISHED"
	SagaUserSynced            SagaState = "USER_SYNCED"
	SagaOrgRecordWritten      SagaState = "ORG_RECORD_WRITTEN"
	SagaUserRecordUpdated     SagaState = "USER_RECORD_UPDATED"
	SagaCompleted             SagaState = "COMPLETED"
	SagaFailed                SagaState = "FAILED"
	SagaRolledBack            SagaState = "ROLLED_BACK"
)

// sagaOrder maps each non-terminal state to its position in the linear chain.
var sagaOrder = map[SagaState]int{
	SagaStarted:               0,
	SagaIdentityCreated:       1,
	SagaOrgCreated:            2,
	SagaMembershipEstablished: 3,
	SagaUserSynced:            4,
	SagaOrgRecordWritten:      5,
	SagaUserRecordUpdated:     6,
	SagaCompleted:             7,
}

// IsTerminal reports whether no further transitions are expected.
func (s SagaState) IsTerminal() bool {
	return s == SagaCompleted || s == SagaRolledBack
}

// ReachedAtLeast reports whether s has progressed to other or beyond.
// Terminal failure states compare by the state recorded before failing.
func (s SagaState) ReachedAtLeast(other SagaState) bool {
	a, ok := sagaOrder[s]
	if !ok {
		return false
	}
	b, ok := sagaOrder[other]
	if !ok {
		return false
	}
	return a >= b
}

// ActivityRecord is an append-only audit log entry describing a workflow event.
type ActivityRecord struct {
	OrganizationID string         `json:"organization_id"`
	UserID         string         `json:"user_id"`
	ActorName      string         `json:"actor_name"`
	ActorEmail     string         `json:"actor_email"`
	Action         string         `json:"action"`
	Category       string         `json:"category"`
	ResourceType   string         `json:"resource_type"`
	ResourceID     string         `json:"resource_id"`
	ResourceName   string         `json:"resource_name,omitempty"`
	Description    string         `json:"description,omitempty"`
	Severity       string         `json:"severity"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
