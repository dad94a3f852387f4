package handlers

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	entuser "tenantforge.io/tenantforge/ent/user"
	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/domain"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// OrgMemberEntry is the API projection of one organization member.
type OrgMemberEntry struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"is_active"`
	JoinedAt    time.Time `json:"joined_at"`
}

// OrgMemberRequest is the add/update body.
type OrgMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ListOrgMembers handles GET /organizations/{org_id}/members.
func (s *Server) ListOrgMembers(c *gin.Context) {
	ctx := c.Request.Context()
	org, ok := s.requireOrgRole(c, "view")
	if !ok {
		return
	}

	userIDs := make([]string, 0, len(org.Members))
	for _, m := range org.Members {
		userIDs = append(userIDs, m.UserID)
	}

	userByID := make(map[string]*ent.User, len(userIDs))
	if len(userIDs) > 0 {
		users, err := s.client.User.Query().Where(entuser.IDIn(userIDs...)).All(ctx)
		if err != nil {
			logger.Error("failed to query users for members", zap.Error(err), zap.String("org_id", org.ID))
			_ = c.Error(err)
			return
		}
		for _, u := range users {
			userByID[u.ID] = u
		}
	}

	items := make([]OrgMemberEntry, 0, len(org.Members))
	for _, m := range org.Members {
		items = append(items, toOrgMemberEntry(m, userByID[m.UserID]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddOrgMember handles POST /organizations/{org_id}/members.
func (s *Server) AddOrgMember(c *gin.Context) {
	ctx := c.Request.Context()
	org, ok := s.requireOrgRole(c, "manage_members")
	if !ok {
		return
	}

	var req OrgMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "user_id and role are required"))
		return
	}
	if !isValidMemberRole(req.Role) {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "role is outside the closed role set"))
		return
	}

	usr, err := s.client.User.Get(ctx, req.UserID)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeUserNotFound, "user not found"))
			return
		}
		logger.Error("failed to get user for member add", zap.Error(err), zap.String("user_id", req.UserID))
		_ = c.Error(err)
		return
	}

	for _, m := range org.Members {
		if m.UserID == req.UserID {
			_ = c.Error(apperrors.Conflict("MEMBER_ALREADY_EXISTS", "user is already a member"))
			return
		}
	}

	now := time.Now().UTC()
	member := domain.OrgMember{
		UserID:      req.UserID,
		Role:        req.Role,
		Permissions: domain.PermissionsForRole(req.Role),
		JoinedAt:    now,
		IsActive:    true,
	}
	members := append(slices.Clone(org.Members), member)
	if _, err := s.client.Organization.UpdateOneID(org.ID).SetMembers(members).Save(ctx); err != nil {
		logger.Error("failed to add organization member",
			zap.Error(err),
			zap.String("org_id", org.ID),
			zap.String("user_id", req.UserID),
		)
		_ = c.Error(err)
		return
	}

	// Mirror the membership onto the user row.
	entry := domain.OrgMembershipEntry{
		OrgID:       org.ID,
		Role:        req.Role,
		Permissions: domain.PermissionsForRole(req.Role),
		JoinedAt:    now,
		UpdatedAt:   now,
	}
	memberships := append(slices.Clone(usr.Organizations), entry)
	if _, err := s.client.User.UpdateOneID(req.UserID).SetOrganizations(memberships).Save(ctx); err != nil {
		logger.Error("failed to mirror membership onto user",
			zap.Error(err),
			zap.String("org_id", org.ID),
			zap.String("user_id", req.UserID),
		)
		_ = c.Error(err)
		return
	}

	if s.audit != nil {
		_ = s.audit.LogActivity(ctx, domain.ActivityRecord{
			OrganizationID: org.ID,
			UserID:         actorFromCtx(c),
			Action:         "organization.member.add",
			Category:       "account",
			ResourceType:   "organization",
			ResourceID:     org.ID,
			Metadata: map[string]any{
				"user_id": req.UserID,
				"role":    req.Role,
			},
		})
	}
	if s.notifier != nil {
		s.notifier.OnMemberJoined(ctx, org.ID, usr.DisplayName)
	}

	c.JSON(http.StatusCreated, toOrgMemberEntry(member, usr))
}

// UpdateOrgMemberRole handles PATCH /organizations/{org_id}/members/{user_id}.
func (s *Server) UpdateOrgMemberRole(c *gin.Context) {
	ctx := c.Request.Context()
	org, ok := s.requireOrgRole(c, "manage_members")
	if !ok {
		return
	}
	userID := c.Param("user_id")

	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !isValidMemberRole(req.Role) {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "role is outside the closed role set"))
		return
	}

	members := slices.Clone(org.Members)
	idx := slices.IndexFunc(members, func(m domain.OrgMember) bool { return m.UserID == userID })
	if idx < 0 {
		_ = c.Error(apperrors.NotFound("MEMBER_NOT_FOUND", "member not found"))
		return
	}
	oldRole := members[idx].Role
	members[idx].Role = req.Role
	members[idx].Permissions = domain.PermissionsForRole(req.Role)

	if err := s.guardLastAdministrator(members, oldRole, req.Role); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := s.client.Organization.UpdateOneID(org.ID).SetMembers(members).Save(ctx); err != nil {
		logger.Error("failed to update member role",
			zap.Error(err),
			zap.String("org_id", org.ID),
			zap.String("user_id", userID),
		)
		_ = c.Error(err)
		return
	}

	s.syncUserMembership(ctx, userID, org.ID, req.Role)

	if s.audit != nil {
		_ = s.audit.LogActivity(ctx, domain.ActivityRecord{
			OrganizationID: org.ID,
			UserID:         actorFromCtx(c),
			Action:         "organization.member.update_role",
			Category:       "account",
			ResourceType:   "organization",
			ResourceID:     org.ID,
			Metadata: map[string]any{
				"user_id":  userID,
				"old_role": oldRole,
				"new_role": req.Role,
			},
		})
	}

	usr, _ := s.client.User.Get(ctx, userID)
	c.JSON(http.StatusOK, toOrgMemberEntry(members[idx], usr))
}

// DeleteOrgMember handles DELETE /organizations/{org_id}/members/{user_id}.
func (s *Server) DeleteOrgMember(c *gin.Context) {
	ctx := c.Request.Context()
	org, ok := s.requireOrgRole(c, "manage_members")
	if !ok {
		return
	}
	userID := c.Param("user_id")

	members := slices.Clone(org.Members)
	idx := slices.IndexFunc(members, func(m domain.OrgMember) bool { return m.UserID == userID })
	if idx < 0 {
		_ = c.Error(apperrors.NotFound("MEMBER_NOT_FOUND", "member not found"))
		return
	}
	removed := members[idx]
	members = slices.Delete(members, idx, idx+1)

	if err := s.guardLastAdministrator(members, removed.Role, ""); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := s.client.Organization.UpdateOneID(org.ID).SetMembers(members).Save(ctx); err != nil {
		logger.Error("failed to remove organization member",
			zap.Error(err),
			zap.String("org_id", org.ID),
			zap.String("user_id", userID),
		)
		_ = c.Error(err)
		return
	}

	// Drop the mirrored entry from the user row, best effort.
	if usr, err := s.client.User.Get(ctx, userID); err == nil {
		memberships := slices.DeleteFunc(slices.Clone(usr.Organizations), func(e domain.OrgMembershipEntry) bool {
			return e.OrgID == org.ID
		})
		if _, err := s.client.User.UpdateOneID(userID).SetOrganizations(memberships).Save(ctx); err != nil {
			logger.Warn("failed to drop mirrored membership",
				zap.Error(err),
				zap.String("org_id", org.ID),
				zap.String("user_id", userID),
			)
		}
	}

	if s.audit != nil {
		_ = s.audit.LogActivity(ctx, domain.ActivityRecord{
			OrganizationID: org.ID,
			UserID:         actorFromCtx(c),
			Action:         "organization.member.remove",
			Category:       "account",
			ResourceType:   "organization",
			ResourceID:     org.ID,
			Metadata: map[string]any{
				"user_id": userID,
				"role":    removed.Role,
			},
		})
	}

	c.Status(http.StatusNoContent)
}

// requireOrgRole loads the organization and verifies the caller may perform
// the action in it. Wildcard token permissions bypass the membership check.
func (s *Server) requireOrgRole(c *gin.Context, action string) (*ent.Organization, bool) {
	ctx := c.Request.Context()
	orgID := c.Param("org_id")

	org, err := s.client.Organization.Get(ctx, orgID)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeOrganizationNotFound, "organization not found"))
			c.Abort()
			return nil, false
		}
		logger.Error("failed to get organization", zap.Error(err), zap.String("org_id", orgID))
		_ = c.Error(err)
		c.Abort()
		return nil, false
	}

	if hasWildcardPermission(c) {
		return org, true
	}

	actor := middleware.GetUserID(ctx)
	if actor == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "not authenticated"))
		c.Abort()
		return nil, false
	}

	checker := middleware.NewOrgMembershipChecker(s.client)
	membership, found, err := checker.CheckMembership(ctx, actor, orgID)
	if err != nil {
		logger.Error("failed to check membership",
			zap.Error(err),
			zap.String("org_id", orgID),
			zap.String("actor", actor),
		)
		_ = c.Error(err)
		c.Abort()
		return nil, false
	}
	if !found || !middleware.RoleCanPerform(domain.FineRole(membership.Role), action) {
		_ = c.Error(apperrors.Forbidden("FORBIDDEN", "insufficient organization permissions"))
		c.Abort()
		return nil, false
	}

	return org, true
}

// guardLastAdministrator rejects changes that would leave the organization
// without an administrator-capable member.
func (s *Server) guardLastAdministrator(members []domain.OrgMember, oldRole, newRole string) error {
	if !isAdministratorRole(oldRole) || isAdministratorRole(newRole) {
		return nil
	}
	for _, m := range members {
		if isAdministratorRole(m.Role) && m.IsActive {
			return nil
		}
	}
	return apperrors.Conflict("LAST_ADMIN_CANNOT_BE_REMOVED",
		"organization must keep at least one administrator")
}

// syncUserMembership updates the mirrored role on the user row, best effort.
func (s *Server) syncUserMembership(ctx context.Context, userID, orgID, role string) {
	usr, err := s.client.User.Get(ctx, userID)
	if err != nil {
		logger.Warn("failed to load user for membership sync", zap.Error(err), zap.String("user_id", userID))
		return
	}
	memberships := slices.Clone(usr.Organizations)
	for i := range memberships {
		if memberships[i].OrgID == orgID {
			memberships[i].Role = role
			memberships[i].Permissions = domain.PermissionsForRole(role)
			memberships[i].UpdatedAt = time.Now().UTC()
		}
	}
	if _, err := s.client.User.UpdateOneID(userID).SetOrganizations(memberships).Save(ctx); err != nil {
		logger.Warn("failed to sync mirrored membership role", zap.Error(err), zap.String("user_id", userID))
	}
}

func hasWildcardPermission(c *gin.Context) bool {
	perms, exists := c.Get("permissions")
	if !exists {
		return false
	}
	permList, ok := perms.([]string)
	if !ok {
		return false
	}
	return slices.Contains(permList, domain.WildcardPermission)
}

func isValidMemberRole(role string) bool {
	switch domain.FineRole(role) {
	case domain.RoleAdmin, domain.RoleOrgAdmin, domain.RoleComplianceOfficer,
		domain.RoleAnalyst, domain.RoleMember, domain.RoleViewer:
		return true
	default:
		return false
	}
}

func isAdministratorRole(role string) bool {
	// Owner entries carry the coarse "administrator" role directly.
	if role == string(domain.CoarseAdministrator) {
		return true
	}
	return domain.CoarseRoleFor(role) == domain.CoarseAdministrator
}

func toOrgMemberEntry(m domain.OrgMember, user *ent.User) OrgMemberEntry {
	entry := OrgMemberEntry{
		UserID:      m.UserID,
		Role:        m.Role,
		Permissions: m.Permissions,
		IsActive:    m.IsActive,
		JoinedAt:    m.JoinedAt,
	}
	if user != nil {
		entry.DisplayName = user.DisplayName
		entry.Email = user.Email
	}
	return entry
}
