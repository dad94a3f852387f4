package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tenantforge.io/tenantforge/internal/domain"
)

func TestRoleCanPerform_Matrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		role   domain.FineRole
		action string
		want   bool
	}{
		{"org admin can transfer ownership", domain.RoleOrgAdmin, "transfer_ownership", true},
		{"org admin can manage members", domain.RoleOrgAdmin, "manage_members", true},
		{"admin can manage settings", domain.RoleAdmin, "manage_settings", true},
		{"compliance officer can manage breaches", domain.RoleComplianceOfficer, "manage_breaches", true},
		{"compliance officer cannot manage members", domain.RoleComplianceOfficer, "manage_members", false},
		{"analyst can edit", domain.RoleAnalyst, "edit", true},
		{"analyst cannot manage breaches", domain.RoleAnalyst, "manage_breaches", false},
		{"member can view", domain.RoleMember, "view", true},
		{"member cannot manage settings", domain.RoleMember, "manage_settings", false},
		{"viewer can view", domain.RoleViewer, "view", true},
		{"viewer cannot edit", domain.RoleViewer, "edit", false},
		{"unknown role denied", domain.FineRole("unknown"), "view", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := RoleCanPerform(tc.role, tc.action); got != tc.want {
				t.Fatalf("RoleCanPerform(%q,%q) = %v, want %v", tc.role, tc.action, got, tc.want)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	run := func(perms interface{}, required string) (int, bool) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if perms != nil {
			c.Set("permissions", perms)
		}

		called := false
		RequirePermission(required)(c)
		if !c.IsAborted() {
			called = true
		}
		return w.Code, called
	}

	t.Run("wildcard bypasses required permission", func(t *testing.T) {
		t.Parallel()
		status, called := run([]string{domain.WildcardPermission}, "manage_settings")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if !called {
			t.Fatal("middleware unexpectedly aborted for wildcard permission")
		}
	})

	t.Run("specific permission allowed", func(t *testing.T) {
		t.Parallel()
		status, called := run([]string{"read"}, "read")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if !called {
			t.Fatal("middleware unexpectedly aborted with matching permission")
		}
	})

	t.Run("missing permission forbidden", func(t *testing.T) {
		t.Parallel()
		status, called := run([]string{"read"}, "manage_users")
		if status != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", status, http.StatusForbidden)
		}
		if called {
			t.Fatal("middleware should abort when permission missing")
		}
	})

	t.Run("no permissions in context forbidden", func(t *testing.T) {
		t.Parallel()
		status, called := run(nil, "read")
		if status != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", status, http.StatusForbidden)
		}
		if called {
			t.Fatal("middleware should abort without permissions in context")
		}
	})
}
