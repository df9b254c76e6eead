package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	accesspolicy "vestra/contexts/identity-access/access-policy"
	payrollservice "vestra/contexts/treasury-core/payroll-service"
	vestingledger "vestra/contexts/treasury-core/vesting-ledger"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "vestra/internal/platform/httpserver/docs"
)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	vesting vestingledger.Module
	access  accesspolicy.Module
	payroll payrollservice.Module
}

func New(
	vesting vestingledger.Module,
	access accesspolicy.Module,
	payroll payrollservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		vesting: vesting,
		access:  access,
		payroll: payroll,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for tests and embedding hosts.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/vesting/v1/schedules", s.handleCreateSchedule)
	s.mux.HandleFunc("GET /api/vesting/v1/schedules/{schedule_id}", s.handleGetSchedule)
	s.mux.HandleFunc("GET /api/vesting/v1/schedules/{schedule_id}/available", s.handleAvailableDrawDown)
	s.mux.HandleFunc("POST /api/vesting/v1/schedules/{schedule_id}/drawdown", s.handleDrawDown)
	s.mux.HandleFunc("POST /api/vesting/v1/beneficiaries/{beneficiary}/drawdown-all", s.handleDrawDownAll)
	s.mux.HandleFunc("GET /api/vesting/v1/beneficiaries/{beneficiary}/schedules/active", s.handleActiveSchedules)
	s.mux.HandleFunc("POST /api/vesting/v1/pause", s.handlePause)
	s.mux.HandleFunc("POST /api/vesting/v1/unpause", s.handleUnpause)
	s.mux.HandleFunc("POST /api/vesting/v1/assets/whitelist", s.handleWhitelistAsset)
	s.mux.HandleFunc("POST /api/vesting/v1/assets/remove", s.handleRemoveAsset)
	s.mux.HandleFunc("POST /api/vesting/v1/treasury/withdraw", s.handleWithdraw)
	s.mux.HandleFunc("POST /api/vesting/v1/treasury/withdraw-native", s.handleWithdrawNative)

	s.mux.HandleFunc("POST /api/access/v1/admins/grant", s.handleGrantAdmin)
	s.mux.HandleFunc("POST /api/access/v1/admins/revoke", s.handleRevokeAdmin)
	s.mux.HandleFunc("POST /api/access/v1/creators/grant", s.handleGrantCreator)
	s.mux.HandleFunc("POST /api/access/v1/creators/revoke", s.handleRevokeCreator)
	s.mux.HandleFunc("GET /api/access/v1/identities/{identity}/roles", s.handleListRoles)

	s.mux.HandleFunc("PUT /api/payroll/v1/salaries/{level}", s.handleSetSalary)
	s.mux.HandleFunc("GET /api/payroll/v1/salaries/{level}", s.handleGetSalary)
	s.mux.HandleFunc("POST /api/payroll/v1/schedules", s.handleCreatePayrollSchedule)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func callerIdentity(r *http.Request) string {
	return r.Header.Get("X-User-Id")
}
