package accesspolicy

import (
	"log/slog"
	"time"

	httpadapter "vestra/contexts/identity-access/access-policy/adapters/http"
	"vestra/contexts/identity-access/access-policy/adapters/memory"
	"vestra/contexts/identity-access/access-policy/application"
	"vestra/contexts/identity-access/access-policy/ports"
)

// Module is the access-policy composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Cache       ports.RoleCache
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	CacheTTL    time.Duration
	Logger      *slog.Logger
}

// NewModule wires the policy service and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:     deps.Repository,
		Cache:    deps.Cache,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		CacheTTL: deps.CacheTTL,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters and bootstrapAdminID installed as the sole administrator.
func NewInMemoryModule(bootstrapAdminID string, logger *slog.Logger) Module {
	store := memory.NewStore(bootstrapAdminID)
	module := NewModule(Dependencies{
		Repository:  store,
		Cache:       store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		CacheTTL:    5 * time.Minute,
		Logger:      logger,
	})
	module.Store = store
	return module
}
