package application

import (
	"context"
	"errors"
	"testing"

	"vestra/contexts/treasury-core/payroll-service/adapters/memory"
	domainerrors "vestra/contexts/treasury-core/payroll-service/domain/errors"
	"vestra/contexts/treasury-core/payroll-service/ports"
)

type stubRoles struct {
	admins map[string]bool
}

func (r stubRoles) IsAdmin(_ context.Context, identity string) (bool, error) {
	return r.admins[identity], nil
}

type stubLedger struct {
	nextID  uint64
	err     error
	created []ports.ScheduleRequest
}

func (l *stubLedger) CreateSchedule(_ context.Context, _ string, req ports.ScheduleRequest) (uint64, error) {
	if l.err != nil {
		return 0, l.err
	}
	l.created = append(l.created, req)
	id := l.nextID
	l.nextID++
	return id, nil
}

func newPayroll(ledger *stubLedger) Service {
	return Service{
		Table:  memory.NewStore(),
		Roles:  stubRoles{admins: map[string]bool{"admin-1": true}},
		Ledger: ledger,
	}
}

func TestSetSalaryRequiresAdmin(t *testing.T) {
	service := newPayroll(&stubLedger{})
	ctx := context.Background()

	if err := service.SetSalary(ctx, "stranger", "senior", 9_000); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("set salary by non-admin got %v, want ErrUnauthorized", err)
	}
	if err := service.SetSalary(ctx, "admin-1", " ", 9_000); !errors.Is(err, domainerrors.ErrInvalidLevel) {
		t.Fatalf("blank level got %v, want ErrInvalidLevel", err)
	}
	if err := service.SetSalary(ctx, "admin-1", "senior", 0); !errors.Is(err, domainerrors.ErrInvalidSalary) {
		t.Fatalf("zero salary got %v, want ErrInvalidSalary", err)
	}
	if err := service.SetSalary(ctx, "admin-1", "senior", 9_000); err != nil {
		t.Fatalf("set salary failed: %v", err)
	}
}

func TestSalaryForUnknownLevel(t *testing.T) {
	service := newPayroll(&stubLedger{})

	if _, err := service.SalaryForLevel(context.Background(), "principal"); !errors.Is(err, domainerrors.ErrUnknownLevel) {
		t.Fatalf("unknown level got %v, want ErrUnknownLevel", err)
	}
}

func TestCreatePayrollScheduleUsesTableAmount(t *testing.T) {
	ledger := &stubLedger{nextID: 7}
	service := newPayroll(ledger)
	ctx := context.Background()

	if err := service.SetSalary(ctx, "admin-1", "mid", 120_000); err != nil {
		t.Fatalf("set salary failed: %v", err)
	}

	scheduleID, err := service.CreatePayrollSchedule(ctx, "creator-1", "mid", ports.ScheduleRequest{
		Asset:        "vch",
		Beneficiary:  "ben-1",
		Start:        1_700_000_000,
		DurationDays: 365,
		CliffDays:    90,
	})
	if err != nil {
		t.Fatalf("create payroll schedule failed: %v", err)
	}
	if scheduleID != 7 {
		t.Fatalf("schedule id = %d, want the ledger-assigned 7", scheduleID)
	}
	if len(ledger.created) != 1 || ledger.created[0].Amount != 120_000 {
		t.Fatalf("ledger received %+v, want the table amount 120000", ledger.created)
	}
}

func TestCreatePayrollScheduleSurfacesLedgerErrors(t *testing.T) {
	ledgerErr := errors.New("caller is not a whitelisted creator")
	ledger := &stubLedger{err: ledgerErr}
	service := newPayroll(ledger)
	ctx := context.Background()

	if err := service.SetSalary(ctx, "admin-1", "mid", 120_000); err != nil {
		t.Fatalf("set salary failed: %v", err)
	}
	if _, err := service.CreatePayrollSchedule(ctx, "stranger", "mid", ports.ScheduleRequest{}); !errors.Is(err, ledgerErr) {
		t.Fatalf("ledger error not surfaced, got %v", err)
	}
}
