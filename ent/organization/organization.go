// Code generated by ent, DO NOT EDIT.

package organization

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the organization type in the database.
	Label = "organization"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldOrganizationType holds the string denoting the organization_type field in the database.
	FieldOrganizationType = "organization_type"
	// FieldIndustry holds the string denoting the industry field in the database.
	FieldIndustry = "industry"
	// FieldTeamSize holds the string denoting the team_size field in the database.
	FieldTeamSize = "team_size"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// FieldMembers holds the string denoting the members field in the database.
	FieldMembers = "members"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the organization in the database.
	Table = "organizations"
)

// Columns holds all SQL columns for organization fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldSlug,
	FieldOrganizationType,
	FieldIndustry,
	FieldTeamSize,
	FieldCountry,
	FieldState,
	FieldSettings,
	FieldMembers,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
)

// OrganizationType defines the type for the "organization_type" enum field.
type OrganizationType string

// OrganizationTypeEnterprise is the default value of the OrganizationType enum.
const DefaultOrganizationType = OrganizationTypeEnterprise

// OrganizationType values.
const (
	OrganizationTypeLawFirm        OrganizationType = "law_firm"
	OrganizationTypeEnterprise     OrganizationType = "enterprise"
	OrganizationTypeChannelPartner OrganizationType = "channel_partner"
	OrganizationTypeGovernment     OrganizationType = "government"
	OrganizationTypeNonprofit      OrganizationType = "nonprofit"
)

func (ot OrganizationType) String() string {
	return string(ot)
}

// OrganizationTypeValidator is a validator for the "organization_type" field enum values. It is called by the builders before save.
func OrganizationTypeValidator(ot OrganizationType) error {
	switch ot {
	case OrganizationTypeLawFirm, OrganizationTypeEnterprise, OrganizationTypeChannelPartner, OrganizationTypeGovernment, OrganizationTypeNonprofit:
		return nil
	default:
		return fmt.Errorf("organization: invalid enum value for organization_type field: %q", ot)
	}
}

// TeamSize defines the type for the "team_size" enum field.
type TeamSize string

// TeamSizeSize11To50 is the default value of the TeamSize enum.
const DefaultTeamSize = TeamSizeSize11To50

// TeamSize values.
const (
	TeamSizeSize1To10     TeamSize = "1-10"
	TeamSizeSize11To50    TeamSize = "11-50"
	TeamSizeSize51To200   TeamSize = "51-200"
	TeamSizeSize201To1000 TeamSize = "201-1000"
	TeamSizeSize1000Plus  TeamSize = "1000+"
)

func (ts TeamSize) String() string {
	return string(ts)
}

// TeamSizeValidator is a validator for the "team_size" field enum values. It is called by the builders before save.
func TeamSizeValidator(ts TeamSize) error {
	switch ts {
	case TeamSizeSize1To10, TeamSizeSize11To50, TeamSizeSize51To200, TeamSizeSize201To1000, TeamSizeSize1000Plus:
		return nil
	default:
		return fmt.Errorf("organization: invalid enum value for team_size field: %q", ts)
	}
}

// OrderOption defines the ordering options for the Organization queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByOrganizationType orders the results by the organization_type field.
func ByOrganizationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationType, opts...).ToFunc()
}

// ByIndustry orders the results by the industry field.
func ByIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustry, opts...).ToFunc()
}

// ByTeamSize orders the results by the team_size field.
func ByTeamSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeamSize, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}
