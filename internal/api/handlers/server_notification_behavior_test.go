package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tenantforge.io/tenantforge/ent"
	entnotification "tenantforge.io/tenantforge/ent/notification"
	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/testutil"
)

func newNotificationBehaviorRouter(t *testing.T) (*gin.Engine, *ent.Client, func(userID string)) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, "notification_handler_behavior")
	srv := NewServer(ServerDeps{EntClient: client})

	var currentUser string
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		if currentUser != "" {
			c.Request = c.Request.WithContext(
				middleware.SetUserContext(c.Request.Context(), currentUser, currentUser, nil),
			)
		}
		c.Next()
	})
	router.GET("/notifications", srv.ListNotifications)
	router.GET("/notifications/unread-count", srv.GetUnreadCount)
	router.POST("/notifications/:notification_id/read", srv.MarkNotificationRead)
	router.POST("/notifications/read-all", srv.MarkAllNotificationsRead)

	return router, client, func(userID string) { currentUser = userID }
}

func mustCreateNotification(t *testing.T, client *ent.Client, id, recipientID string, read bool, createdAt time.Time) {
	t.Helper()
	_, err := client.Notification.Create().
		SetID(id).
		SetRecipientID(recipientID).
		SetType(entnotification.TypeONBOARDING_COMPLETED).
		SetTitle("title-" + id).
		SetMessage("message-" + id).
		SetRead(read).
		SetCreatedAt(createdAt).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}
}

func TestNotificationHandler_ListNotifications_RecipientScopedAndUnreadFilter(t *testing.T) {
	t.Parallel()

	router, client, setUser := newNotificationBehaviorRouter(t)
	now := time.Now().UTC()

	mustCreateNotification(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotification(t, client, "n-2", "user-1", true, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-3", "user-2", false, now.Add(-1*time.Hour))
	setUser("user-1")

	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/notifications?unread_only=true", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp NotificationList
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode unread-only response: %v", err)
		}
		if len(resp.Items) != 1 || resp.Items[0].ID != "n-1" {
			t.Fatalf("unread-only items = %+v, want single n-1", resp.Items)
		}
		if resp.Total != 1 {
			t.Fatalf("unread-only total = %d, want 1", resp.Total)
		}
	}

	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp NotificationList
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode all response: %v", err)
		}
		if len(resp.Items) != 2 || resp.Total != 2 {
			t.Fatalf("all items len = %d total = %d, want 2/2", len(resp.Items), resp.Total)
		}
		if resp.Items[0].ID != "n-2" || resp.Items[1].ID != "n-1" {
			t.Fatalf("unexpected order: got [%s, %s], want [n-2, n-1]", resp.Items[0].ID, resp.Items[1].ID)
		}
	}
}

func TestNotificationHandler_GetUnreadCount_RecipientScoped(t *testing.T) {
	t.Parallel()

	router, client, setUser := newNotificationBehaviorRouter(t)
	now := time.Now().UTC()

	mustCreateNotification(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotification(t, client, "n-2", "user-1", true, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-3", "user-2", false, now.Add(-1*time.Hour))
	setUser("user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode unread count: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("unread count = %d, want 1", resp.Count)
	}
}

func TestNotificationHandler_MarkNotificationRead_RecipientScoped(t *testing.T) {
	t.Parallel()

	router, client, setUser := newNotificationBehaviorRouter(t)
	now := time.Now().UTC()

	mustCreateNotification(t, client, "n-own", "user-1", false, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-other", "user-2", false, now.Add(-1*time.Hour))
	setUser("user-1")

	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/n-own/read", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusNoContent, w.Body.String())
		}

		obj, err := client.Notification.Get(t.Context(), "n-own")
		if err != nil {
			t.Fatalf("query notification: %v", err)
		}
		if !obj.Read {
			t.Fatal("notification read = false, want true")
		}
	}

	{
		// Another recipient's notification is invisible, not forbidden.
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/n-other/read", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusNotFound, w.Body.String())
		}
	}
}

func TestNotificationHandler_MarkAllNotificationsRead_RecipientScoped(t *testing.T) {
	t.Parallel()

	router, client, setUser := newNotificationBehaviorRouter(t)
	now := time.Now().UTC()

	mustCreateNotification(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotification(t, client, "n-2", "user-1", false, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-3", "user-2", false, now.Add(-1*time.Hour))
	setUser("user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications/read-all", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusNoContent, w.Body.String())
	}

	user1Unread, err := client.Notification.Query().
		Where(
			entnotification.RecipientIDEQ("user-1"),
			entnotification.ReadEQ(false),
		).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count user-1 unread: %v", err)
	}
	if user1Unread != 0 {
		t.Fatalf("user-1 unread = %d, want 0", user1Unread)
	}

	user2Unread, err := client.Notification.Query().
		Where(
			entnotification.RecipientIDEQ("user-2"),
			entnotification.ReadEQ(false),
		).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count user-2 unread: %v", err)
	}
	if user2Unread != 1 {
		t.Fatalf("user-2 unread = %d, want 1", user2Unread)
	}
}

func TestNotificationHandler_Unauthorized(t *testing.T) {
	t.Parallel()

	router, _, _ := newNotificationBehaviorRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"list notifications", http.MethodGet, "/notifications"},
		{"unread count", http.MethodGet, "/notifications/unread-count"},
		{"mark one read", http.MethodPost, "/notifications/n-1/read"},
		{"mark all read", http.MethodPost, "/notifications/read-all"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			router.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusUnauthorized, w.Body.String())
			}
		})
	}
}
