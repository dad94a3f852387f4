// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_name", Type: field.TypeString, Nullable: true},
		{Name: "actor_email", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "resource_name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "critical"}, Default: "info"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_organization_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[8], AuditLogsColumns[9]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"ONBOARDING_COMPLETED", "ONBOARDING_RECONCILED", "MEMBER_JOINED"}},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// OnboardingSagasColumns holds the columns for the "onboarding_sagas" table.
	OnboardingSagasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"STARTED", "IDENTITY_CREATED", "ORG_CREATED", "MEMBERSHIP_ESTABLISHED", "USER_SYNCED", "ORG_RECORD_WRITTEN", "USER_RECORD_UPDATED", "COMPLETED", "FAILED", "ROLLED_BACK"}, Default: "STARTED"},
		{Name: "failed_at_state", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "external_user_id", Type: field.TypeString, Nullable: true},
		{Name: "external_org_id", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "reconcile_attempts", Type: field.TypeInt, Default: 0},
	}
	// OnboardingSagasTable holds the schema information for the "onboarding_sagas" table.
	OnboardingSagasTable = &schema.Table{
		Name:       "onboarding_sagas",
		Columns:    OnboardingSagasColumns,
		PrimaryKey: []*schema.Column{OnboardingSagasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "onboardingsaga_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{OnboardingSagasColumns[6]},
			},
			{
				Name:    "onboardingsaga_state",
				Unique:  false,
				Columns: []*schema.Column{OnboardingSagasColumns[3]},
			},
			{
				Name:    "onboardingsaga_email",
				Unique:  false,
				Columns: []*schema.Column{OnboardingSagasColumns[5]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Size: 255},
		{Name: "organization_type", Type: field.TypeEnum, Enums: []string{"law_firm", "enterprise", "channel_partner", "government", "nonprofit"}, Default: "enterprise"},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "team_size", Type: field.TypeEnum, Enums: []string{"1-10", "11-50", "51-200", "201-1000", "1000+"}, Default: "11-50"},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "settings", Type: field.TypeJSON},
		{Name: "members", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "organization_slug",
				Unique:  false,
				Columns: []*schema.Column{OrganizationsColumns[4]},
			},
			{
				Name:    "organization_organization_type",
				Unique:  false,
				Columns: []*schema.Column{OrganizationsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "user_type", Type: field.TypeString, Nullable: true},
		{Name: "profile", Type: field.TypeJSON, Nullable: true},
		{Name: "security", Type: field.TypeJSON, Nullable: true},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "organizations", Type: field.TypeJSON, Nullable: true},
		{Name: "onboarding_completed", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		NotificationsTable,
		OnboardingSagasTable,
		OrganizationsTable,
		UsersTable,
	}
)

func init() {
}
