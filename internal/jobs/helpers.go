// Package jobs defines River Queue job types for async processing.
//
// Jobs carry only the saga id (claim-check pattern); the payload snapshot
// lives on the saga row.
package jobs

import (
	"context"

	"go.uber.org/zap"

	"tenantforge.io/tenantforge/internal/governance/audit"
	"tenantforge.io/tenantforge/internal/pkg/logger"
)

// logAuditReconcile is a helper for writing reconcile audit log entries.
// Failures are logged at warn level but never propagated. Every worker in
// this package follows the same pattern so we centralise it here.
func logAuditReconcile(ctx context.Context, auditLogger *audit.Logger, sagaID, outcome string, metadata map[string]any) {
	if auditLogger == nil {
		return
	}
	if err := auditLogger.LogOnboardingReconciled(ctx, sagaID, outcome, metadata); err != nil {
		logger.Warn("failed to write reconcile audit log",
			zap.String("saga_id", sagaID),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
	}
}
