package domain

import "time"

// OrgType is the normalised five-valued organization taxonomy.
type OrgType string

const (
	OrgTypeLawFirm        OrgType = "law_firm"
	OrgTypeEnterprise     OrgType = "enterprise"
	OrgTypeChannelPartner OrgType = "channel_partner"
	OrgTypeGovernment     OrgType = "government"
	OrgTypeNonprofit      OrgType = "nonprofit"
)

// NormalizeOrgType maps free-text organization type input onto the closed
// enum. Any unrecognised input defaults to enterprise.
func NormalizeOrgType(raw string) OrgType {
	switch OrgType(raw) {
	case OrgTypeLawFirm, OrgTypeEnterprise, OrgTypeChannelPartner, OrgTypeGovernment, OrgTypeNonprofit:
		return OrgType(raw)
	default:
		return OrgTypeEnterprise
	}
}

// TeamSize is the normalised headcount bucket.
type TeamSize string

const (
	TeamSizeMicro  TeamSize = "1-10"
	TeamSizeSmall  TeamSize = "11-50"
	TeamSizeMedium TeamSize = "51-200"
	TeamSizeLarge  TeamSize = "201-1000"
	TeamSizeXL     TeamSize = "1000+"
)

// NormalizeTeamSize maps free-text team size input onto the closed bucket set.
// Any unrecognised input defaults to "11-50".
func NormalizeTeamSize(raw string) TeamSize {
	switch TeamSize(raw) {
	case TeamSizeMicro, TeamSizeSmall, TeamSizeMedium, TeamSizeLarge, TeamSizeXL:
		return TeamSize(raw)
	default:
		return TeamSizeSmall
	}
}

// OrgSettings is the nested settings document on an organization record.
type OrgSettings struct {
	ApplicableRegulations []string `json:"applicable_regulations"`
	SubscriptionPlan      string   `json:"subscription_plan"`
	SubscriptionStatus    string   `json:"subscription_status"`
	Timezone              string   `json:"timezone,omitempty"`
	Locale                string   `json:"locale,omitempty"`
}

// OrgMember is one entry of an organization's embedded members array.
type OrgMember struct {
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	JoinedAt    time.Time `json:"joined_at"`
	IsActive    bool      `json:"is_active"`
}

// UserProfile holds display fields mirrored from the identity service.
type UserProfile struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
	Username  string `json:"username,omitempty"`
}

// UserSecurity holds per-user security settings.
type UserSecurity struct {
	MFAEnabled     bool   `json:"mfa_enabled"`
	MFAMethod      string `json:"mfa_method,omitempty"`
	SessionTimeout int    `json:"session_timeout,omitempty"`
	PasswordPolicy string `json:"password_policy,omitempty"`
}

// UserPreferences holds display and privacy preferences with product defaults.
type UserPreferences struct {
	Theme              string `json:"theme"`
	EmailNotifications bool   `json:"email_notifications"`
	InAppNotifications bool   `json:"in_app_notifications"`
	ProfileVisibility  string `json:"profile_visibility"`
	DataSharing        bool   `json:"data_sharing"`
}

// DefaultUserPreferences returns the preferences seeded at onboarding.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Theme:              "system",
		EmailNotifications: true,
		InAppNotifications: true,
		ProfileVisibility:  "organization",
		DataSharing:        false,
	}
}

// OrgMembershipEntry is one entry of a user's embedded organizations array.
type OrgMembershipEntry struct {
	OrgID       string    `json:"org_id"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	IsPrimary   bool      `json:"is_primary"`
	JoinedAt    time.Time `json:"joined_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
