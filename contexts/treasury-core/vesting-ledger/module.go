package vestingledger

import (
	"log/slog"

	httpadapter "vestra/contexts/treasury-core/vesting-ledger/adapters/http"
	"vestra/contexts/treasury-core/vesting-ledger/adapters/memory"
	"vestra/contexts/treasury-core/vesting-ledger/adapters/treasury"
	"vestra/contexts/treasury-core/vesting-ledger/application"
	"vestra/contexts/treasury-core/vesting-ledger/ports"
)

// Module is the vesting-ledger composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
	Bank    *treasury.Bank
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Roles       ports.RoleChecker
	Treasury    ports.TokenTransfer
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires the ledger service and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:     deps.Repository,
		Roles:    deps.Roles,
		Treasury: deps.Treasury,
		Outbox:   deps.Outbox,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
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
// adapters. The caller supplies the role view so policy state stays owned by
// the access-policy module.
func NewInMemoryModule(roles ports.RoleChecker, logger *slog.Logger) Module {
	store := memory.NewStore()
	bank := treasury.NewBank(logger)
	module := NewModule(Dependencies{
		Repository:  store,
		Roles:       roles,
		Treasury:    bank,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	module.Bank = bank
	return module
}
