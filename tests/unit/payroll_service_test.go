package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	accesspolicy "vestra/contexts/identity-access/access-policy"
	accesshttp "vestra/contexts/identity-access/access-policy/transport/http"
	payrollservice "vestra/contexts/treasury-core/payroll-service"
	payrollerrors "vestra/contexts/treasury-core/payroll-service/domain/errors"
	payrollports "vestra/contexts/treasury-core/payroll-service/ports"
	payrollhttp "vestra/contexts/treasury-core/payroll-service/transport/http"
	vestingledger "vestra/contexts/treasury-core/vesting-ledger"
	"vestra/contexts/treasury-core/vesting-ledger/adapters/memory"
	"vestra/contexts/treasury-core/vesting-ledger/adapters/treasury"
	vestingapplication "vestra/contexts/treasury-core/vesting-ledger/application"
	vestingerrors "vestra/contexts/treasury-core/vesting-ledger/domain/errors"
	vestingports "vestra/contexts/treasury-core/vesting-ledger/ports"
	vestinghttp "vestra/contexts/treasury-core/vesting-ledger/transport/http"
)

// scheduleCreator bridges the payroll port onto the real ledger service, the
// same shape the runtime wiring uses.
type scheduleCreator struct {
	service vestingapplication.Service
}

func (a scheduleCreator) CreateSchedule(ctx context.Context, callerID string, req payrollports.ScheduleRequest) (uint64, error) {
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

func newPayrollStack(t *testing.T) (payrollservice.Module, vestingledger.Module) {
	t.Helper()

	access := accesspolicy.NewInMemoryModule("root", nil)
	store := memory.NewStore()
	vesting := vestingledger.NewModule(vestingledger.Dependencies{
		Repository:  store,
		Roles:       access.Service,
		Treasury:    treasury.NewBank(nil),
		Outbox:      store,
		Clock:       &manualClock{now: time.Unix(0, 0).UTC()},
		IDGenerator: store,
	})
	payroll := payrollservice.NewInMemoryModule(access.Service, scheduleCreator{service: vesting.Service}, nil)

	ctx := context.Background()
	if _, err := access.Handler.GrantCreatorHandler(ctx, "root", accesshttp.RoleChangeRequest{Identity: "creator-1"}); err != nil {
		t.Fatalf("grant creator failed: %v", err)
	}
	if _, err := vesting.Handler.WhitelistAssetHandler(ctx, "root", vestinghttp.AssetRequest{Asset: "vch"}); err != nil {
		t.Fatalf("whitelist asset failed: %v", err)
	}
	return payroll, vesting
}

func TestPayrollSalaryTableRoundTrip(t *testing.T) {
	payroll, _ := newPayrollStack(t)
	ctx := context.Background()

	if _, err := payroll.Handler.SetSalaryHandler(ctx, "outsider", "senior", payrollhttp.SetSalaryRequest{Amount: 180_000}); !errors.Is(err, payrollerrors.ErrUnauthorized) {
		t.Fatalf("set salary by outsider got %v, want ErrUnauthorized", err)
	}
	if _, err := payroll.Handler.SetSalaryHandler(ctx, "root", "senior", payrollhttp.SetSalaryRequest{Amount: 180_000}); err != nil {
		t.Fatalf("set salary failed: %v", err)
	}

	salary, err := payroll.Handler.GetSalaryHandler(ctx, "senior")
	if err != nil {
		t.Fatalf("get salary failed: %v", err)
	}
	if salary.Amount != 180_000 {
		t.Fatalf("salary = %d, want 180000", salary.Amount)
	}

	if _, err := payroll.Handler.GetSalaryHandler(ctx, "intern"); !errors.Is(err, payrollerrors.ErrUnknownLevel) {
		t.Fatalf("unknown level got %v, want ErrUnknownLevel", err)
	}
}

func TestPayrollScheduleCreationOnLedger(t *testing.T) {
	payroll, vesting := newPayrollStack(t)
	ctx := context.Background()

	if _, err := payroll.Handler.SetSalaryHandler(ctx, "root", "mid", payrollhttp.SetSalaryRequest{Amount: 120_000}); err != nil {
		t.Fatalf("set salary failed: %v", err)
	}

	created, err := payroll.Handler.CreatePayrollScheduleHandler(ctx, "creator-1", payrollhttp.CreatePayrollScheduleRequest{
		Level:        "mid",
		Asset:        "vch",
		Beneficiary:  "ben-1",
		Start:        0,
		DurationDays: 365,
		CliffDays:    90,
	})
	if err != nil {
		t.Fatalf("create payroll schedule failed: %v", err)
	}

	schedule, err := vesting.Handler.GetScheduleHandler(ctx, created.ScheduleID)
	if err != nil {
		t.Fatalf("get schedule failed: %v", err)
	}
	if schedule.Data.TotalAmount != 120_000 || schedule.Data.Beneficiary != "ben-1" {
		t.Fatalf("ledger schedule = %+v, want salary amount for ben-1", schedule.Data)
	}

	// The ledger's own gates still apply to payroll-originated schedules.
	if _, err := payroll.Handler.CreatePayrollScheduleHandler(ctx, "outsider", payrollhttp.CreatePayrollScheduleRequest{
		Level:        "mid",
		Asset:        "vch",
		Beneficiary:  "ben-1",
		DurationDays: 365,
	}); !errors.Is(err, vestingerrors.ErrUnauthorized) {
		t.Fatalf("payroll create by outsider got %v, want the ledger's ErrUnauthorized", err)
	}
}
