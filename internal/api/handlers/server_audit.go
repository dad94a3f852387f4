package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tenantforge.io/tenantforge/ent"
	"tenantforge.io/tenantforge/ent/auditlog"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

const (
	defaultAuditLogLimit = 50
	maxAuditLogLimit     = 200
)

// AuditLogEntry is the API projection of one compliance record.
type AuditLogEntry struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organization_id,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	ActorName      string         `json:"actor_name,omitempty"`
	ActorEmail     string         `json:"actor_email,omitempty"`
	Action         string         `json:"action"`
	Category       string         `json:"category,omitempty"`
	ResourceType   string         `json:"resource_type,omitempty"`
	ResourceID     string         `json:"resource_id,omitempty"`
	ResourceName   string         `json:"resource_name,omitempty"`
	Description    string         `json:"description,omitempty"`
	Severity       string         `json:"severity"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
	CreatedAt      time.Time      `json:"created_at"`
}

// AuditLogList is the list response body.
type AuditLogList struct {
	AuditLogs []AuditLogEntry `json:"audit_logs"`
	Total     int             `json:"total"`
}

// ListAuditLogs handles GET /audit-logs. Admin only; records are append-only
// and served newest first.
func (s *Server) ListAuditLogs(c *gin.Context) {
	ctx := c.Request.Context()

	query := s.client.AuditLog.Query()
	if orgID := c.Query("organization_id"); orgID != "" {
		query = query.Where(auditlog.OrganizationIDEQ(orgID))
	}
	if action := c.Query("action"); action != "" {
		query = query.Where(auditlog.ActionEQ(action))
	}

	limit, offset, err := auditPagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count audit logs", zap.Error(err))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Order(ent.Desc(auditlog.FieldOccurredAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		logger.Error("failed to list audit logs", zap.Error(err))
		_ = c.Error(err)
		return
	}

	items := make([]AuditLogEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, auditLogToAPI(row))
	}
	c.JSON(http.StatusOK, AuditLogList{AuditLogs: items, Total: total})
}

func auditPagination(c *gin.Context) (limit, offset int, err error) {
	limit = defaultAuditLogLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxAuditLogLimit {
			return 0, 0, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "limit must be between 1 and 200")
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "offset must be non-negative")
		}
	}
	return limit, offset, nil
}

func auditLogToAPI(row *ent.AuditLog) AuditLogEntry {
	return AuditLogEntry{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		UserID:         row.UserID,
		ActorName:      row.ActorName,
		ActorEmail:     row.ActorEmail,
		Action:         row.Action,
		Category:       row.Category,
		ResourceType:   row.ResourceType,
		ResourceID:     row.ResourceID,
		ResourceName:   row.ResourceName,
		Description:    row.Description,
		Severity:       row.Severity.String(),
		Metadata:       row.Metadata,
		OccurredAt:     row.OccurredAt,
		CreatedAt:      row.CreatedAt,
	}
}
