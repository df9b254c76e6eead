package payrollservice

import (
	"log/slog"

	httpadapter "vestra/contexts/treasury-core/payroll-service/adapters/http"
	"vestra/contexts/treasury-core/payroll-service/adapters/memory"
	"vestra/contexts/treasury-core/payroll-service/application"
	"vestra/contexts/treasury-core/payroll-service/ports"
)

// Module is the payroll composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Table  ports.SalaryTable
	Roles  ports.RoleChecker
	Ledger ports.ScheduleCreator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Table:  deps.Table,
		Roles:  deps.Roles,
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// salary table. Role checks and schedule creation stay owned by their
// modules and are supplied by the caller.
func NewInMemoryModule(roles ports.RoleChecker, ledger ports.ScheduleCreator, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Table:  store,
		Roles:  roles,
		Ledger: ledger,
		Logger: logger,
	})
	module.Store = store
	return module
}
