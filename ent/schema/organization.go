package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"tenantforge.io/tenantforge/internal/domain"
)

// Organization mirrors an identity-service organization into the directory
// store. Invariant: the row id equals the external IdentityGroup id.
type Organization struct {
	ent.Schema
}

// Mixin of the Organization.
func (Organization) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Organization.
func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // External IdentityGroup id
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("slug").
			NotEmpty().
			MaxLen(255),
		field.Enum("organization_type").
			Values("law_firm", "enterprise", "channel_partner", "government", "nonprofit").
			Default("enterprise"),
		field.String("industry").
			Optional(),
		field.Enum("team_size").
			NamedValues(
				"Size1To10", "1-10",
				"Size11To50", "11-50",
				"Size51To200", "51-200",
				"Size201To1000", "201-1000",
				"Size1000Plus", "1000+",
			).
			Default("11-50"),
		field.String("country").
			Optional(),
		field.String("state").
			Optional(),
		field.JSON("settings", domain.OrgSettings{}),
		field.JSON("members", []domain.OrgMember{}),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(), // Free-form address/contact fields
	}
}

// Indexes of the Organization.
func (Organization) Indexes() []ent.Index {
	// The slug is deterministic from the name and intentionally not unique:
	// independent submissions with the same organization name must each
	// provision their own tenant.
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("organization_type"),
	}
}
