package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is an in-app inbox entry written synchronously at workflow
// trigger points.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_id").
			NotEmpty().
			Immutable(),
		field.Enum("type").
			Values("ONBOARDING_COMPLETED", "ONBOARDING_RECONCILED", "MEMBER_JOINED").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("message").
			NotEmpty(),
		field.String("resource_type").
			Optional().
			Immutable(),
		field.String("resource_id").
			Optional().
			Immutable(),
		field.Bool("read").
			Default(false),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "read"),
		index.Fields("created_at"),
	}
}
