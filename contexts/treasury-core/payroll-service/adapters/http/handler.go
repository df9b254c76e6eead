package httpadapter

import (
	"context"
	"log/slog"

	"vestra/contexts/treasury-core/payroll-service/application"
	"vestra/contexts/treasury-core/payroll-service/ports"
	httptransport "vestra/contexts/treasury-core/payroll-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SetSalaryHandler(
	ctx context.Context,
	callerID string,
	level string,
	req httptransport.SetSalaryRequest,
) (httptransport.SalaryResponse, error) {
	if err := h.Service.SetSalary(ctx, callerID, level, req.Amount); err != nil {
		return httptransport.SalaryResponse{}, err
	}
	return httptransport.SalaryResponse{
		Status: "success",
		Level:  level,
		Amount: req.Amount,
	}, nil
}

func (h Handler) GetSalaryHandler(
	ctx context.Context,
	level string,
) (httptransport.SalaryResponse, error) {
	amount, err := h.Service.SalaryForLevel(ctx, level)
	if err != nil {
		return httptransport.SalaryResponse{}, err
	}
	return httptransport.SalaryResponse{
		Status: "success",
		Level:  level,
		Amount: amount,
	}, nil
}

func (h Handler) CreatePayrollScheduleHandler(
	ctx context.Context,
	callerID string,
	req httptransport.CreatePayrollScheduleRequest,
) (httptransport.CreatePayrollScheduleResponse, error) {
	scheduleID, err := h.Service.CreatePayrollSchedule(ctx, callerID, req.Level, ports.ScheduleRequest{
		Asset:        req.Asset,
		Beneficiary:  req.Beneficiary,
		Start:        req.Start,
		DurationDays: req.DurationDays,
		CliffDays:    req.CliffDays,
	})
	if err != nil {
		return httptransport.CreatePayrollScheduleResponse{}, err
	}
	return httptransport.CreatePayrollScheduleResponse{
		Status:     "success",
		ScheduleID: scheduleID,
	}, nil
}
