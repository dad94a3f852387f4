package domain

// FineRole is the closed set of application-level roles an applicant may pick.
type FineRole string

const (
	RoleAdmin             FineRole = "admin"
	RoleOrgAdmin          FineRole = "org_admin"
	RoleComplianceOfficer FineRole = "compliance_officer"
	RoleAnalyst           FineRole = "analyst"
	RoleMember            FineRole = "member"
	RoleViewer            FineRole = "viewer"
)

// CoarseRole is the two-valued role recognised by the external identity service.
type CoarseRole string

const (
	CoarseAdministrator CoarseRole = "administrator"
	CoarseMember        CoarseRole = "member"
)

// coarseRoleByFine maps every known fine-grained role explicitly to its coarse
// counterpart. Unknown roles resolve to member; membership is the safe floor.
var coarseRoleByFine = map[FineRole]CoarseRole{
	RoleAdmin:             CoarseAdministrator,
	RoleOrgAdmin:          CoarseAdministrator,
	RoleComplianceOfficer: CoarseMember,
	RoleAnalyst:           CoarseMember,
	RoleMember:            CoarseMember,
	RoleViewer:            CoarseMember,
}

// CoarseRoleFor resolves the external identity-service role for a fine-grained
// application role string.
func CoarseRoleFor(role string) CoarseRole {
	if coarse, ok := coarseRoleByFine[FineRole(role)]; ok {
		return coarse
	}
	return CoarseMember
}

// WildcardPermission grants every capability. The onboarding submitter is the
// organization owner and always receives it on the user-side mirror.
const WildcardPermission = "*"

// permissionsByRole is the static capability matrix keyed by fine-grained role.
var permissionsByRole = map[FineRole][]string{
	RoleAdmin:             {"read", "write", "delete", "manage_users", "manage_settings"},
	RoleOrgAdmin:          {"read", "write", "delete", "manage_users", "manage_settings"},
	RoleComplianceOfficer: {"read", "write", "manage_breaches"},
	RoleAnalyst:           {"read", "write"},
	RoleMember:            {"read", "write"},
	RoleViewer:            {"read"},
}

// PermissionsForRole returns the capability list for a role. The function is
// total: unrecognised roles fall back to read-only.
func PermissionsForRole(role string) []string {
	perms, ok := permissionsByRole[FineRole(role)]
	if !ok {
		perms = []string{"read"}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}
