package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OnboardingSaga persists the finite-state record of one onboarding run.
// A row is written before the first provisioning step so a crash anywhere in
// the chain leaves a reconcilable trail instead of silent orphans.
type OnboardingSaga struct {
	ent.Schema
}

// Mixin of the OnboardingSaga.
func (OnboardingSaga) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the OnboardingSaga.
func (OnboardingSaga) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("state").
			Values(
				"STARTED",
				"IDENTITY_CREATED",
				"ORG_CREATED",
				"MEMBERSHIP_ESTABLISHED",
				"USER_SYNCED",
				"ORG_RECORD_WRITTEN",
				"USER_RECORD_UPDATED",
				"COMPLETED",
				"FAILED",
				"ROLLED_BACK",
			).
			Default("STARTED"),
		// failed_at_state records the last reached state when state=FAILED,
		// so the reconciler knows how far provisioning got.
		field.String("failed_at_state").
			Optional(),
		field.String("email").
			NotEmpty().
			Immutable(),
		field.String("idempotency_key").
			Optional().
			Immutable(),
		field.Bytes("payload").
			Immutable(), // OnboardingData snapshot (claim-check for reconcile jobs)
		field.String("external_user_id").
			Optional(),
		field.String("external_org_id").
			Optional(),
		field.String("error").
			Optional(),
		field.Int("reconcile_attempts").
			Default(0),
	}
}

// Indexes of the OnboardingSaga.
func (OnboardingSaga) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("idempotency_key").Unique(),
		index.Fields("state"),
		index.Fields("email"),
	}
}
