package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/domain"
	"tenantforge.io/tenantforge/internal/governance/audit"
	"tenantforge.io/tenantforge/internal/testutil"
)

type memberHarness struct {
	router *gin.Engine
	client *ent.Client

	userID string
	perms  []string
}

func newMemberHarness(t *testing.T) *memberHarness {
	t.Helper()
	client := testutil.OpenEntPostgres(t, "member_handler_behavior")
	srv := NewServer(ServerDeps{
		EntClient: client,
		Audit:     audit.NewLogger(client),
	})

	h := &memberHarness{client: client}
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		if h.userID != "" {
			c.Set("user_id", h.userID)
			c.Set("permissions", h.perms)
			c.Request = c.Request.WithContext(
				middleware.SetUserContext(c.Request.Context(), h.userID, h.userID, nil),
			)
		}
		c.Next()
	})
	router.GET("/organizations/:org_id/members", srv.ListOrgMembers)
	router.POST("/organizations/:org_id/members", srv.AddOrgMember)
	router.PATCH("/organizations/:org_id/members/:user_id", srv.UpdateOrgMemberRole)
	router.DELETE("/organizations/:org_id/members/:user_id", srv.DeleteOrgMember)
	h.router = router
	return h
}

func (h *memberHarness) seedOrg(t *testing.T, orgID string, members []domain.OrgMember) {
	t.Helper()
	_, err := h.client.Organization.Create().
		SetID(orgID).
		SetName("Acme, Inc.").
		SetSlug("acme-inc-" + orgID).
		SetSettings(domain.OrgSettings{
			ApplicableRegulations: []string{"GDPR"},
			SubscriptionPlan:      "trial",
			SubscriptionStatus:    "active",
		}).
		SetMembers(members).
		Save(t.Context())
	if err != nil {
		t.Fatalf("seed organization: %v", err)
	}
}

func (h *memberHarness) seedUser(t *testing.T, userID, email string, memberships []domain.OrgMembershipEntry) {
	t.Helper()
	_, err := h.client.User.Create().
		SetID(userID).
		SetEmail(email).
		SetDisplayName("User " + userID).
		SetOrganizations(memberships).
		Save(t.Context())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func (h *memberHarness) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	h.router.ServeHTTP(w, req)
	return w
}

func ownerMember(userID string) domain.OrgMember {
	return domain.OrgMember{
		UserID:      userID,
		Role:        string(domain.CoarseAdministrator),
		Permissions: []string{domain.WildcardPermission},
		JoinedAt:    time.Now().UTC(),
		IsActive:    true,
	}
}

func TestMemberHandler_AddListAndMirror(t *testing.T) {
	t.Parallel()

	h := newMemberHarness(t)
	h.seedOrg(t, "org-1", []domain.OrgMember{ownerMember("owner-1")})
	h.seedUser(t, "owner-1", "owner@acme.example", []domain.OrgMembershipEntry{
		{OrgID: "org-1", Role: "org_admin", Permissions: []string{domain.WildcardPermission}, IsPrimary: true},
	})
	h.seedUser(t, "analyst-1", "analyst@acme.example", nil)
	h.userID = "owner-1"

	w := h.do(http.MethodPost, "/organizations/org-1/members", `{"user_id":"analyst-1","role":"analyst"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add member status = %d, want %d body=%s", w.Code, http.StatusCreated, w.Body.String())
	}

	var created OrgMemberEntry
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created member: %v", err)
	}
	if created.Role != "analyst" || !created.IsActive {
		t.Fatalf("created member = %+v, want active analyst", created)
	}

	// The membership is mirrored onto the user row.
	usr, err := h.client.User.Get(t.Context(), "analyst-1")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if len(usr.Organizations) != 1 || usr.Organizations[0].OrgID != "org-1" {
		t.Fatalf("user memberships = %+v, want one org-1 entry", usr.Organizations)
	}

	w = h.do(http.MethodGet, "/organizations/org-1/members", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d body=%s", w.Code, w.Body.String())
	}
	var list struct {
		Items []OrgMemberEntry `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("members len = %d, want 2", len(list.Items))
	}
}

func TestMemberHandler_AddRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	h := newMemberHarness(t)
	h.seedOrg(t, "org-1", []domain.OrgMember{ownerMember("owner-1")})
	h.seedUser(t, "owner-1", "owner2@acme.example", []domain.OrgMembershipEntry{
		{OrgID: "org-1", Role: "org_admin"},
	})
	h.userID = "owner-1"

	w := h.do(http.MethodPost, "/organizations/org-1/members", `{"user_id":"u-x","role":"superuser"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestMemberHandler_NonAdminCannotManage(t *testing.T) {
	t.Parallel()

	h := newMemberHarness(t)
	h.seedOrg(t, "org-1", []domain.OrgMember{
		ownerMember("owner-1"),
		{UserID: "viewer-1", Role: "viewer", Permissions: []string{"read"}, IsActive: true, JoinedAt: time.Now().UTC()},
	})
	h.seedUser(t, "viewer-1", "viewer@acme.example", []domain.OrgMembershipEntry{
		{OrgID: "org-1", Role: "viewer", Permissions: []string{"read"}},
	})
	h.userID = "viewer-1"

	w := h.do(http.MethodPost, "/organizations/org-1/members", `{"user_id":"u-x","role":"member"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusForbidden, w.Body.String())
	}

	// Viewer can still read the roster.
	w = h.do(http.MethodGet, "/organizations/org-1/members", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestMemberHandler_WildcardBypassesMembership(t *testing.T) {
	t.Parallel()

	h := newMemberHarness(t)
	h.seedOrg(t, "org-1", []domain.OrgMember{ownerMember("owner-1")})
	h.userID = "platform-operator"
	h.perms = []string{domain.WildcardPermission}

	w := h.do(http.MethodGet, "/organizations/org-1/members", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestMemberHandler_LastAdministratorGuard(t *testing.T) {
	t.Parallel()

	h := newMemberHarness(t)
	h.seedOrg(t, "org-1", []domain.OrgMember{ownerMember("owner-1")})
	h.seedUser(t, "owner-1", "owner3@acme.example", []domain.OrgMembershipEntry{
		{OrgID: "org-1", Role: "org_admin"},
	})
	h.userID = "owner-1"

	w := h.do(http.MethodDelete, "/organizations/org-1/members/owner-1", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("delete status = %d, want %d body=%s", w.Code, http.StatusConflict, w.Body.String())
	}

	w = h.do(http.MethodPatch, "/organizations/org-1/members/owner-1", `{"role":"viewer"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("demote status = %d, want %d body=%s", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestMemberHandler_UpdateRoleRecomputesPermissions(t *testing.T) {
	t.Parallel()

	h := newMemberHarness(t)
	h.seedOrg(t, "org-1", []domain.OrgMember{
		ownerMember("owner-1"),
		{UserID: "member-1", Role: "member", Permissions: []string{"read", "write"}, IsActive: true, JoinedAt: time.Now().UTC()},
	})
	h.seedUser(t, "owner-1", "owner4@acme.example", []domain.OrgMembershipEntry{
		{OrgID: "org-1", Role: "org_admin"},
	})
	h.seedUser(t, "member-1", "member@acme.example", []domain.OrgMembershipEntry{
		{OrgID: "org-1", Role: "member", Permissions: []string{"read", "write"}},
	})
	h.userID = "owner-1"

	w := h.do(http.MethodPatch, "/organizations/org-1/members/member-1", `{"role":"compliance_officer"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var updated OrgMemberEntry
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated member: %v", err)
	}
	if updated.Role != "compliance_officer" {
		t.Fatalf("role = %q, want compliance_officer", updated.Role)
	}
	found := false
	for _, p := range updated.Permissions {
		if p == "manage_breaches" {
			found = true
		}
	}
	if !found {
		t.Fatalf("permissions = %v, want manage_breaches included", updated.Permissions)
	}

	usr, err := h.client.User.Get(t.Context(), "member-1")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if usr.Organizations[0].Role != "compliance_officer" {
		t.Fatalf("mirrored role = %q, want compliance_officer", usr.Organizations[0].Role)
	}
}

func TestMemberHandler_OrganizationNotFound(t *testing.T) {
	t.Parallel()

	h := newMemberHarness(t)
	h.userID = "anyone"
	h.perms = []string{domain.WildcardPermission}

	w := h.do(http.MethodGet, "/organizations/missing/members", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusNotFound, w.Body.String())
	}
}
