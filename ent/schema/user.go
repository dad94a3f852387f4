package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"tenantforge.io/tenantforge/internal/domain"
)

// User mirrors an identity-service user into the directory store.
// The row id equals the external Identity id.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // External Identity id
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("display_name").
			Optional(),
		field.String("role").
			Optional(), // Coarse role: administrator or member
		field.String("user_type").
			Optional(),
		field.JSON("profile", domain.UserProfile{}).
			Optional(),
		field.JSON("security", domain.UserSecurity{}).
			Optional(),
		field.JSON("preferences", domain.UserPreferences{}).
			Optional(),
		field.JSON("organizations", []domain.OrgMembershipEntry{}).
			Optional(),
		field.Bool("onboarding_completed").
			Default(false),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
