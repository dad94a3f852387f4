package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/ent/auditlog"
	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/testutil"
)

func newAuditBehaviorRouter(t *testing.T) (*gin.Engine, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, "audit_handler_behavior")
	srv := NewServer(ServerDeps{EntClient: client})

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/audit-logs", srv.ListAuditLogs)
	return router, client
}

func mustCreateAuditLog(t *testing.T, client *ent.Client, id, orgID, action string, severity auditlog.Severity, occurredAt time.Time) {
	t.Helper()
	_, err := client.AuditLog.Create().
		SetID(id).
		SetOrganizationID(orgID).
		SetUserID("user-1").
		SetAction(action).
		SetCategory("account").
		SetResourceType("organization").
		SetResourceID(orgID).
		SetSeverity(severity).
		SetOccurredAt(occurredAt).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create audit log: %v", err)
	}
}

func TestAuditHandler_ListAuditLogs_FiltersAndOrder(t *testing.T) {
	t.Parallel()

	router, client := newAuditBehaviorRouter(t)
	now := time.Now().UTC()

	mustCreateAuditLog(t, client, "a-1", "org-1", "onboarding.completed", auditlog.SeverityInfo, now.Add(-3*time.Hour))
	mustCreateAuditLog(t, client, "a-2", "org-1", "onboarding.reconciled", auditlog.SeverityWarning, now.Add(-2*time.Hour))
	mustCreateAuditLog(t, client, "a-3", "org-2", "onboarding.completed", auditlog.SeverityInfo, now.Add(-1*time.Hour))

	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/audit-logs?organization_id=org-1", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp AuditLogList
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Total != 2 || len(resp.AuditLogs) != 2 {
			t.Fatalf("total = %d len = %d, want 2/2", resp.Total, len(resp.AuditLogs))
		}
		// Newest first.
		if resp.AuditLogs[0].ID != "a-2" || resp.AuditLogs[1].ID != "a-1" {
			t.Fatalf("order = [%s, %s], want [a-2, a-1]", resp.AuditLogs[0].ID, resp.AuditLogs[1].ID)
		}
		if resp.AuditLogs[0].Severity != "warning" {
			t.Fatalf("severity = %q, want warning", resp.AuditLogs[0].Severity)
		}
	}

	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/audit-logs?action=onboarding.completed", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp AuditLogList
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Total != 2 {
			t.Fatalf("total = %d, want 2", resp.Total)
		}
		for _, entry := range resp.AuditLogs {
			if entry.Action != "onboarding.completed" {
				t.Fatalf("unexpected action %q in filtered list", entry.Action)
			}
		}
	}
}

func TestAuditHandler_ListAuditLogs_Pagination(t *testing.T) {
	t.Parallel()

	router, client := newAuditBehaviorRouter(t)
	now := time.Now().UTC()

	for i, id := range []string{"p-1", "p-2", "p-3"} {
		mustCreateAuditLog(t, client, id, "org-1", "onboarding.completed", auditlog.SeverityInfo,
			now.Add(time.Duration(-i)*time.Hour))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/audit-logs?limit=2&offset=1", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp AuditLogList
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("total = %d, want 3", resp.Total)
	}
	if len(resp.AuditLogs) != 2 {
		t.Fatalf("len = %d, want 2", len(resp.AuditLogs))
	}
	// p-1 is newest; offset 1 skips it.
	if resp.AuditLogs[0].ID != "p-2" || resp.AuditLogs[1].ID != "p-3" {
		t.Fatalf("page = [%s, %s], want [p-2, p-3]", resp.AuditLogs[0].ID, resp.AuditLogs[1].ID)
	}
}

func TestAuditHandler_ListAuditLogs_InvalidPagination(t *testing.T) {
	t.Parallel()

	router, _ := newAuditBehaviorRouter(t)

	for _, query := range []string{"limit=0", "limit=9999", "limit=abc", "offset=-1"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/audit-logs?"+query, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: status = %d, want %d", query, w.Code, http.StatusBadRequest)
		}
	}
}
