package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	accesspolicy "vestra/contexts/identity-access/access-policy"
	payrollservice "vestra/contexts/treasury-core/payroll-service"
	payrollports "vestra/contexts/treasury-core/payroll-service/ports"
	vestingledger "vestra/contexts/treasury-core/vesting-ledger"
	vestingapplication "vestra/contexts/treasury-core/vesting-ledger/application"
	vestingports "vestra/contexts/treasury-core/vesting-ledger/ports"
)

// testScheduleCreator bridges the payroll port onto the real ledger service,
// the same shape the runtime wiring uses.
type testScheduleCreator struct {
	service vestingapplication.Service
}

func (a testScheduleCreator) CreateSchedule(ctx context.Context, callerID string, req payrollports.ScheduleRequest) (uint64, error) {
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

func newTestServer() *Server {
	access := accesspolicy.NewInMemoryModule("root", nil)
	vesting := vestingledger.NewInMemoryModule(access.Service, nil)
	vesting.Bank.Deposit("vch", 100_000_000_000_000)
	payroll := payrollservice.NewInMemoryModule(access.Service, testScheduleCreator{service: vesting.Service}, nil)
	return New(vesting, access, payroll, nil, ":0")
}

func doJSON(t *testing.T, server *Server, method string, path string, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request failed: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func grantCreatorAndWhitelist(t *testing.T, server *Server) {
	t.Helper()

	if rr := doJSON(t, server, http.MethodPost, "/api/access/v1/creators/grant", "root", map[string]string{"identity": "creator-1"}); rr.Code != http.StatusOK {
		t.Fatalf("grant creator: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/assets/whitelist", "root", map[string]string{"asset": "vch"}); rr.Code != http.StatusOK {
		t.Fatalf("whitelist asset: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func createScheduleBody(start int64) map[string]any {
	return map[string]any{
		"asset":         "vch",
		"beneficiary":   "ben-1",
		"amount":        5_000_000_000_000,
		"start":         start,
		"duration_days": 10,
		"cliff_days":    0,
	}
}

func TestCreateScheduleRequiresUserHeader(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/schedules", "", createScheduleBody(0))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateScheduleRejectsNonCreators(t *testing.T) {
	server := newTestServer()
	grantCreatorAndWhitelist(t, server)

	// The bootstrap admin does not hold the creator role.
	rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/schedules", "root", createScheduleBody(0))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestScheduleLifecycleOverHTTP(t *testing.T) {
	server := newTestServer()
	grantCreatorAndWhitelist(t, server)

	start := time.Now().UTC().Unix() - 5*24*60*60
	rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/schedules", "creator-1", createScheduleBody(start))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/vesting/v1/schedules/0", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/api/vesting/v1/schedules/0/drawdown", "ben-1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("drawdown: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/vesting/v1/schedules/99", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodGet, "/api/vesting/v1/schedules/not-a-number", "", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPausedLedgerMapsToConflict(t *testing.T) {
	server := newTestServer()
	grantCreatorAndWhitelist(t, server)

	start := time.Now().UTC().Unix() - 5*24*60*60
	if rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/schedules", "creator-1", createScheduleBody(start)); rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/pause", "root", nil); rr.Code != http.StatusOK {
		t.Fatalf("pause: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/schedules/0/drawdown", "ben-1", nil)
	if rr.Code != http.StatusConflict {
		t.Fatalf("paused drawdown: expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPayrollRoutes(t *testing.T) {
	server := newTestServer()
	grantCreatorAndWhitelist(t, server)

	if rr := doJSON(t, server, http.MethodPut, "/api/payroll/v1/salaries/senior", "root", map[string]any{"amount": 180_000}); rr.Code != http.StatusOK {
		t.Fatalf("set salary: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doJSON(t, server, http.MethodGet, "/api/payroll/v1/salaries/senior", "", nil); rr.Code != http.StatusOK {
		t.Fatalf("get salary: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := doJSON(t, server, http.MethodGet, "/api/payroll/v1/salaries/intern", "", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown level: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	body := map[string]any{
		"level":         "senior",
		"asset":         "vch",
		"beneficiary":   "ben-2",
		"start":         time.Now().UTC().Unix(),
		"duration_days": 365,
		"cliff_days":    90,
	}
	rr := doJSON(t, server, http.MethodPost, "/api/payroll/v1/schedules", "creator-1", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("payroll create: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestWithdrawRejectsNonAdmins(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/api/vesting/v1/treasury/withdraw", "ben-1", map[string]any{"asset": "vch", "to": "ops", "amount": 100})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}
