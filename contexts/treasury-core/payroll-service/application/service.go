package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "vestra/contexts/treasury-core/payroll-service/domain/errors"
	"vestra/contexts/treasury-core/payroll-service/ports"
)

// Service maps experience levels to salary amounts and turns them into
// vesting schedules. The salary table is admin-managed; schedule creation is
// delegated to the ledger, which applies its own creator-role and asset
// checks.
type Service struct {
	Table  ports.SalaryTable
	Roles  ports.RoleChecker
	Ledger ports.ScheduleCreator
	Logger *slog.Logger
}

// SetSalary installs or replaces the salary for one experience level.
func (s Service) SetSalary(ctx context.Context, actorID string, level string, amount uint64) error {
	level = strings.TrimSpace(level)
	if level == "" {
		return domainerrors.ErrInvalidLevel
	}
	if amount == 0 {
		return domainerrors.ErrInvalidSalary
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if err := s.Table.SetSalary(ctx, level, amount); err != nil {
		return err
	}

	ResolveLogger(s.Logger).InfoContext(ctx, "salary level updated",
		slog.String("event", "payroll.salary_set"),
		slog.String("module", "payroll-service"),
		slog.String("level", level),
		slog.Uint64("amount", amount),
	)
	return nil
}

// SalaryForLevel resolves the configured salary for one level.
func (s Service) SalaryForLevel(ctx context.Context, level string) (uint64, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return 0, domainerrors.ErrInvalidLevel
	}
	amount, ok, err := s.Table.Salary(ctx, level)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domainerrors.ErrUnknownLevel
	}
	return amount, nil
}

// CreatePayrollSchedule looks up the salary for level and opens a vesting
// schedule for that amount on the ledger. The caller must hold the
// whitelisted-creator role on the ledger side.
func (s Service) CreatePayrollSchedule(ctx context.Context, actorID string, level string, req ports.ScheduleRequest) (uint64, error) {
	amount, err := s.SalaryForLevel(ctx, level)
	if err != nil {
		return 0, err
	}
	req.Amount = amount

	scheduleID, err := s.Ledger.CreateSchedule(ctx, actorID, req)
	if err != nil {
		return 0, err
	}

	ResolveLogger(s.Logger).InfoContext(ctx, "payroll schedule created",
		slog.String("event", "payroll.schedule_created"),
		slog.String("module", "payroll-service"),
		slog.String("level", level),
		slog.String("beneficiary", req.Beneficiary),
		slog.Uint64("schedule_id", scheduleID),
	)
	return scheduleID, nil
}

func (s Service) requireAdmin(ctx context.Context, actorID string) error {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return domainerrors.ErrUnauthorized
	}
	isAdmin, err := s.Roles.IsAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domainerrors.ErrUnauthorized
	}
	return nil
}
