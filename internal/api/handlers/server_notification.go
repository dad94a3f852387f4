package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	entnotification "tenantforge.io/tenantforge/ent/notification"
	"tenantforge.io/tenantforge/internal/api/middleware"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// NotificationEntry is the API projection of one inbox notification.
type NotificationEntry struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NotificationList is the paginated list response body.
type NotificationList struct {
	Items      []NotificationEntry `json:"items"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"per_page"`
	Total      int                 `json:"total"`
	TotalPages int                 `json:"total_pages"`
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "not authenticated"))
		return
	}

	query := s.client.Notification.Query().
		Where(entnotification.RecipientIDEQ(userID))

	if c.Query("unread_only") == "true" {
		query = query.Where(entnotification.ReadEQ(false))
	}

	page, perPage := defaultPagination(c.Query("page"), c.Query("per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		_ = c.Error(err)
		return
	}

	items := make([]NotificationEntry, 0, len(rows))
	for _, n := range rows {
		items = append(items, notificationToAPI(n))
	}

	c.JSON(http.StatusOK, NotificationList{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "not authenticated"))
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			entnotification.RecipientIDEQ(userID),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/{notification_id}/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "not authenticated"))
		return
	}

	notificationID := c.Param("notification_id")

	// Verify notification exists and belongs to the caller.
	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.RecipientIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound("NOTIFICATION_NOT_FOUND", "notification not found"))
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		_ = c.Error(err)
		return
	}

	if !n.Read {
		if _, err := s.client.Notification.UpdateOneID(notificationID).
			SetRead(true).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			_ = c.Error(err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "not authenticated"))
		return
	}

	_, err := s.client.Notification.Update().
		Where(
			entnotification.RecipientIDEQ(userID),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---- Helpers ----

func defaultPagination(rawPage, rawPerPage string) (page, perPage int) {
	page, perPage = 1, 20
	if v, err := strconv.Atoi(rawPage); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(rawPerPage); err == nil && v > 0 && v <= 100 {
		perPage = v
	}
	return page, perPage
}

func notificationToAPI(n *ent.Notification) NotificationEntry {
	return NotificationEntry{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		Read:         n.Read,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		CreatedAt:    n.CreatedAt,
	}
}
