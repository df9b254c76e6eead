package httpadapter

import (
	"context"
	"log/slog"

	"vestra/contexts/treasury-core/vesting-ledger/application"
	"vestra/contexts/treasury-core/vesting-ledger/domain/entities"
	"vestra/contexts/treasury-core/vesting-ledger/ports"
	httptransport "vestra/contexts/treasury-core/vesting-ledger/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateScheduleHandler(
	ctx context.Context,
	callerID string,
	req httptransport.CreateScheduleRequest,
) (httptransport.CreateScheduleResponse, error) {
	schedule, err := h.Service.CreateSchedule(ctx, callerID, ports.CreateScheduleInput{
		Asset:        req.Asset,
		Beneficiary:  req.Beneficiary,
		Amount:       req.Amount,
		Start:        req.Start,
		DurationDays: req.DurationDays,
		CliffDays:    req.CliffDays,
	})
	if err != nil {
		return httptransport.CreateScheduleResponse{}, err
	}
	return httptransport.CreateScheduleResponse{
		Status: "success",
		Data:   toDTO(schedule),
	}, nil
}

func (h Handler) GetScheduleHandler(
	ctx context.Context,
	scheduleID uint64,
) (httptransport.GetScheduleResponse, error) {
	schedule, err := h.Service.GetSchedule(ctx, scheduleID)
	if err != nil {
		return httptransport.GetScheduleResponse{}, err
	}
	return httptransport.GetScheduleResponse{
		Status: "success",
		Data:   toDTO(schedule),
	}, nil
}

func (h Handler) AvailableDrawDownHandler(
	ctx context.Context,
	scheduleID uint64,
) (httptransport.AvailableDrawDownResponse, error) {
	available, err := h.Service.AvailableDrawDown(ctx, scheduleID)
	if err != nil {
		return httptransport.AvailableDrawDownResponse{}, err
	}
	return httptransport.AvailableDrawDownResponse{
		Status:     "success",
		ScheduleID: scheduleID,
		Available:  available,
	}, nil
}

func (h Handler) DrawDownHandler(
	ctx context.Context,
	scheduleID uint64,
) (httptransport.DrawDownResponse, error) {
	result, err := h.Service.DrawDown(ctx, scheduleID)
	if err != nil {
		return httptransport.DrawDownResponse{}, err
	}
	return httptransport.DrawDownResponse{
		Status: "success",
		Amount: result.Amount,
		Data:   toDTO(result.Schedule),
	}, nil
}

func (h Handler) DrawDownAllHandler(
	ctx context.Context,
	beneficiary string,
) (httptransport.DrawDownAllResponse, error) {
	results, err := h.Service.DrawDownAll(ctx, beneficiary)
	if err != nil {
		return httptransport.DrawDownAllResponse{}, err
	}
	resp := httptransport.DrawDownAllResponse{
		Status:      "success",
		Beneficiary: beneficiary,
		ScheduleIDs: make([]uint64, 0, len(results)),
	}
	for _, result := range results {
		resp.ScheduleIDs = append(resp.ScheduleIDs, result.Schedule.ScheduleID)
		resp.TotalAmount += result.Amount
	}
	return resp, nil
}

func (h Handler) ActiveSchedulesHandler(
	ctx context.Context,
	beneficiary string,
) (httptransport.ActiveSchedulesResponse, error) {
	ids, err := h.Service.ActiveScheduleIDs(ctx, beneficiary)
	if err != nil {
		return httptransport.ActiveSchedulesResponse{}, err
	}
	return httptransport.ActiveSchedulesResponse{
		Status:      "success",
		Beneficiary: beneficiary,
		ScheduleIDs: ids,
	}, nil
}

func (h Handler) PauseHandler(ctx context.Context, callerID string) (httptransport.PauseResponse, error) {
	if err := h.Service.Pause(ctx, callerID); err != nil {
		return httptransport.PauseResponse{}, err
	}
	return httptransport.PauseResponse{Status: "success", Paused: true}, nil
}

func (h Handler) UnpauseHandler(ctx context.Context, callerID string) (httptransport.PauseResponse, error) {
	if err := h.Service.Unpause(ctx, callerID); err != nil {
		return httptransport.PauseResponse{}, err
	}
	return httptransport.PauseResponse{Status: "success", Paused: false}, nil
}

func (h Handler) WhitelistAssetHandler(
	ctx context.Context,
	callerID string,
	req httptransport.AssetRequest,
) (httptransport.AssetResponse, error) {
	if err := h.Service.WhitelistAsset(ctx, callerID, req.Asset); err != nil {
		return httptransport.AssetResponse{}, err
	}
	return httptransport.AssetResponse{Status: "success", Asset: req.Asset}, nil
}

func (h Handler) RemoveAssetHandler(
	ctx context.Context,
	callerID string,
	req httptransport.AssetRequest,
) (httptransport.AssetResponse, error) {
	if err := h.Service.RemoveAssetFromWhitelist(ctx, callerID, req.Asset); err != nil {
		return httptransport.AssetResponse{}, err
	}
	return httptransport.AssetResponse{Status: "success", Asset: req.Asset}, nil
}

func (h Handler) WithdrawHandler(
	ctx context.Context,
	callerID string,
	req httptransport.WithdrawRequest,
) (httptransport.WithdrawResponse, error) {
	if err := h.Service.Withdraw(ctx, callerID, req.Asset, req.To, req.Amount); err != nil {
		return httptransport.WithdrawResponse{}, err
	}
	return httptransport.WithdrawResponse{Status: "success", To: req.To, Amount: req.Amount}, nil
}

func (h Handler) WithdrawNativeHandler(
	ctx context.Context,
	callerID string,
	req httptransport.WithdrawRequest,
) (httptransport.WithdrawResponse, error) {
	if err := h.Service.WithdrawNative(ctx, callerID, req.To, req.Amount); err != nil {
		return httptransport.WithdrawResponse{}, err
	}
	return httptransport.WithdrawResponse{Status: "success", To: req.To, Amount: req.Amount}, nil
}

func toDTO(schedule entities.Schedule) httptransport.ScheduleDTO {
	return httptransport.ScheduleDTO{
		ScheduleID:           schedule.ScheduleID,
		Asset:                schedule.Asset,
		Beneficiary:          schedule.Beneficiary,
		Start:                schedule.Start,
		End:                  schedule.End,
		Cliff:                schedule.Cliff,
		TotalAmount:          schedule.TotalAmount,
		ReleaseRatePerSecond: schedule.ReleaseRatePerSecond,
		TotalDrawn:           schedule.TotalDrawn,
		LastDrawnAt:          schedule.LastDrawnAt,
	}
}
