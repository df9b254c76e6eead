package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	accesspolicy "vestra/contexts/identity-access/access-policy"
	accessevents "vestra/contexts/identity-access/access-policy/adapters/events"
	accesspostgres "vestra/contexts/identity-access/access-policy/adapters/postgres"
	redisadapter "vestra/contexts/identity-access/access-policy/adapters/redis"
	accessworkers "vestra/contexts/identity-access/access-policy/application/workers"
	accessports "vestra/contexts/identity-access/access-policy/ports"
	payrollservice "vestra/contexts/treasury-core/payroll-service"
	payrollpostgres "vestra/contexts/treasury-core/payroll-service/adapters/postgres"
	payrollports "vestra/contexts/treasury-core/payroll-service/ports"
	vestingledger "vestra/contexts/treasury-core/vesting-ledger"
	vestingevents "vestra/contexts/treasury-core/vesting-ledger/adapters/events"
	vestingpostgres "vestra/contexts/treasury-core/vesting-ledger/adapters/postgres"
	"vestra/contexts/treasury-core/vesting-ledger/adapters/treasury"
	vestingapplication "vestra/contexts/treasury-core/vesting-ledger/application"
	vestingworkers "vestra/contexts/treasury-core/vesting-ledger/application/workers"
	vestingports "vestra/contexts/treasury-core/vesting-ledger/ports"
	"vestra/internal/platform/config"
	"vestra/internal/platform/db"
	"vestra/internal/platform/httpserver"
	"vestra/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	accessRelay  accessworkers.OutboxRelay
	vestingRelay vestingworkers.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

// ledgerScheduleCreator adapts the vesting ledger service to the payroll
// module's ScheduleCreator port so the two modules stay import-independent.
type ledgerScheduleCreator struct {
	service vestingapplication.Service
}

func (a ledgerScheduleCreator) CreateSchedule(
	ctx context.Context,
	callerID string,
	req payrollports.ScheduleRequest,
) (uint64, error) {
	schedule, err := a.service.CreateSchedule(ctx, callerID, vestingports.CreateScheduleInput{
		Asset:        req.Asset,
		Beneficiary:  req.Beneficiary,
		Amount:       req.Amount,
		Start:        req.Start,
		DurationDays: req.DurationDays,
		CliffDays:    req.CliffDays,
	})
	if err != nil {
		return 0, err
	}
	return schedule.ScheduleID, nil
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return buildInMemoryAPI(cfg, logger)
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	accessRepo := accesspostgres.NewRepository(pg.DB, logger)
	if err := accessRepo.EnsureBootstrapAdmin(context.Background(), cfg.BootstrapAdminID); err != nil {
		return nil, err
	}

	var roleCache accessports.RoleCache
	if cfg.EnableRoleCache && cfg.RedisAddr != "" {
		roleCache = redisadapter.NewRoleCache(cfg.RedisAddr)
	}

	accessModule := accesspolicy.NewModule(accesspolicy.Dependencies{
		Repository:  accessRepo,
		Cache:       roleCache,
		Outbox:      accessRepo,
		Clock:       accesspostgres.SystemClock{},
		IDGenerator: accesspostgres.UUIDGenerator{},
		CacheTTL:    5 * time.Minute,
		Logger:      logger,
	})

	vestingRepo := vestingpostgres.NewRepository(pg.DB, logger)
	vestingModule := vestingledger.NewModule(vestingledger.Dependencies{
		Repository:  vestingRepo,
		Roles:       accessModule.Service,
		Treasury:    treasury.NewBank(logger),
		Outbox:      vestingRepo,
		Clock:       vestingpostgres.SystemClock{},
		IDGenerator: vestingpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	payrollModule := payrollservice.NewModule(payrollservice.Dependencies{
		Table:  payrollpostgres.NewRepository(pg.DB, logger),
		Roles:  accessModule.Service,
		Ledger: ledgerScheduleCreator{service: vestingModule.Service},
		Logger: logger,
	})

	server := httpserver.New(vestingModule, accessModule, payrollModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

// buildInMemoryAPI wires the development profile: no postgres, no redis,
// everything held in process memory.
func buildInMemoryAPI(cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	accessModule := accesspolicy.NewInMemoryModule(cfg.BootstrapAdminID, logger)
	vestingModule := vestingledger.NewInMemoryModule(accessModule.Service, logger)
	payrollModule := payrollservice.NewInMemoryModule(
		accessModule.Service,
		ledgerScheduleCreator{service: vestingModule.Service},
		logger,
	)

	logger.Info("api running with in-memory adapters",
		"event", "bootstrap_memory_profile",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)

	server := httpserver.New(vestingModule, accessModule, payrollModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server: server,
		logger: logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	accessRepo := accesspostgres.NewRepository(pg.DB, logger)
	vestingRepo := vestingpostgres.NewRepository(pg.DB, logger)

	return &WorkerApp{
		postgres: pg,
		accessRelay: accessworkers.OutboxRelay{
			Outbox:    accessRepo,
			Publisher: accessevents.NewPublisher(bus, "access.role-changes", logger),
			Clock:     accesspostgres.SystemClock{},
			BatchSize: cfg.OutboxRelayBatchSize,
			Logger:    logger,
		},
		vestingRelay: vestingworkers.OutboxRelay{
			Outbox:    vestingRepo,
			Publisher: vestingevents.NewPublisher(bus, "vesting.ledger-events", logger),
			Clock:     vestingpostgres.SystemClock{},
			BatchSize: cfg.OutboxRelayBatchSize,
			Logger:    logger,
		},
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.accessRelay.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.vestingRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
