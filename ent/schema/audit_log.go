package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only compliance records. Hard-delete is NOT allowed.
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Optional().
			Immutable(),
		field.String("user_id").
			Optional().
			Immutable(),
		field.String("actor_name").
			Optional().
			Immutable(),
		field.String("actor_email").
			Optional().
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(), // e.g. "onboarding_completed"
		field.String("category").
			NotEmpty().
			Immutable(), // e.g. "provisioning", "security"
		field.String("resource_type").
			NotEmpty().
			Immutable(),
		field.String("resource_id").
			NotEmpty().
			Immutable(),
		field.String("resource_name").
			Optional().
			Immutable(),
		field.String("description").
			Optional().
			Immutable(),
		field.Enum("severity").
			Values("info", "warning", "critical").
			Default("info").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("resource_type", "resource_id"),
		index.Fields("created_at"),
	}
}
