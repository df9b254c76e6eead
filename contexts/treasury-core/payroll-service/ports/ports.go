package ports

import "context"

// SalaryTable is the level -> amount mapping owned by this module.
type SalaryTable interface {
	Salary(ctx context.Context, level string) (uint64, bool, error)
	SetSalary(ctx context.Context, level string, amount uint64) error
}

// RoleChecker is the read-only view of the access policy.
type RoleChecker interface {
	IsAdmin(ctx context.Context, identity string) (bool, error)
}

// ScheduleRequest is the payroll-shaped schedule creation order. It mirrors
// the ledger's creation input without importing the ledger module; the
// runtime wires a thin adapter between the two.
type ScheduleRequest struct {
	Asset        string
	Beneficiary  string
	Amount       uint64
	Start        int64
	DurationDays int64
	CliffDays    int64
}

// ScheduleCreator is the slice of the vesting ledger that payroll consumes.
// The ledger performs its own creator-role and asset checks.
type ScheduleCreator interface {
	CreateSchedule(ctx context.Context, callerID string, req ScheduleRequest) (scheduleID uint64, err error)
}
