package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/domain"
)

// RequirePermission returns middleware that checks if the authenticated user
// has a specific permission in their token claims.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, exists := c.Get("permissions")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "no permissions in context",
			})
			return
		}
		permList, ok := perms.([]string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "invalid permissions type",
			})
			return
		}

		// The wildcard permission is granted to organization owners and
		// platform operators; it allows everything.
		if slices.Contains(permList, domain.WildcardPermission) {
			c.Next()
			return
		}

		if slices.Contains(permList, permission) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code": "FORBIDDEN", "message": "insufficient permissions",
		})
	}
}

// OrgMembershipChecker resolves a user's membership in an organization from
// the directory mirror.
type OrgMembershipChecker struct {
	client *ent.Client
}

// NewOrgMembershipChecker creates a new checker.
func NewOrgMembershipChecker(client *ent.Client) *OrgMembershipChecker {
	return &OrgMembershipChecker{client: client}
}

// CheckMembership returns the user's membership entry for the organization
// and whether one exists.
func (c *OrgMembershipChecker) CheckMembership(ctx context.Context, userID, orgID string) (domain.OrgMembershipEntry, bool, error) {
	usr, err := c.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.OrgMembershipEntry{}, false, nil
		}
		return domain.OrgMembershipEntry{}, false, err
	}
	for _, m := range usr.Organizations {
		if m.OrgID == orgID {
			return m, true, nil
		}
	}
	return domain.OrgMembershipEntry{}, false, nil
}

// RoleCanPerform checks whether a fine-grained role can perform the action
// inside its organization.
func RoleCanPerform(role domain.FineRole, action string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleOrgAdmin:
		return true
	case domain.RoleComplianceOfficer:
		return action == "view" || action == "edit" || action == "manage_breaches"
	case domain.RoleAnalyst, domain.RoleMember:
		return action == "view" || action == "edit"
	case domain.RoleViewer:
		return action == "view"
	default:
		return false
	}
}

// RequireOrganizationAccess returns middleware that checks organization-level
// permissions. Wildcard token permissions bypass the membership lookup; all
// other callers must hold a membership whose role allows the action.
func RequireOrganizationAccess(checker *OrgMembershipChecker, action string, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, _ := c.Get("permissions")
		if permList, ok := perms.([]string); ok && slices.Contains(permList, domain.WildcardPermission) {
			c.Next()
			return
		}

		userID := GetUserID(c.Request.Context())
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "not authenticated",
			})
			return
		}

		orgID := c.Param(paramName)
		if orgID == "" {
			c.Next()
			return
		}

		membership, found, err := checker.CheckMembership(c.Request.Context(), userID, orgID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code": "INTERNAL_ERROR", "message": "permission check failed",
			})
			return
		}

		if !found || !RoleCanPerform(domain.FineRole(membership.Role), action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "insufficient organization permissions",
			})
			return
		}

		c.Next()
	}
}
