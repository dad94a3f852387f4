package modules

import (
	"context"

	"github.com/riverqueue/river"

	"tenantforge.io/tenantforge/internal/api/handlers"
)

// GovernanceModule owns the compliance surface: the append-only audit log.
// The recorder itself lives on Infrastructure because workers need it before
// module assembly; this module contributes it to the HTTP server.
type GovernanceModule struct {
	infra *Infrastructure
}

func NewGovernanceModule(infra *Infrastructure) *GovernanceModule {
	return &GovernanceModule{infra: infra}
}

func (m *GovernanceModule) Name() string { return "governance" }

func (m *GovernanceModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil || m == nil || m.infra == nil {
		return
	}
	deps.Audit = m.infra.AuditLogger
}

func (m *GovernanceModule) RegisterWorkers(_ *river.Workers) {}

func (m *GovernanceModule) Shutdown(context.Context) error { return nil }
