package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	vestingerrors "vestra/contexts/treasury-core/vesting-ledger/domain/errors"
	vestinghttp "vestra/contexts/treasury-core/vesting-ledger/transport/http"
)

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	callerID := callerIdentity(r)
	if callerID == "" {
		writeVestingError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req vestinghttp.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVestingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.vesting.Handler.CreateScheduleHandler(r.Context(), callerID, req)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := parseScheduleID(w, r)
	if !ok {
		return
	}
	resp, err := s.vesting.Handler.GetScheduleHandler(r.Context(), scheduleID)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAvailableDrawDown(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := parseScheduleID(w, r)
	if !ok {
		return
	}
	resp, err := s.vesting.Handler.AvailableDrawDownHandler(r.Context(), scheduleID)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDrawDown(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := parseScheduleID(w, r)
	if !ok {
		return
	}
	resp, err := s.vesting.Handler.DrawDownHandler(r.Context(), scheduleID)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDrawDownAll(w http.ResponseWriter, r *http.Request) {
	beneficiary := r.PathValue("beneficiary")
	resp, err := s.vesting.Handler.DrawDownAllHandler(r.Context(), beneficiary)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActiveSchedules(w http.ResponseWriter, r *http.Request) {
	beneficiary := r.PathValue("beneficiary")
	resp, err := s.vesting.Handler.ActiveSchedulesHandler(r.Context(), beneficiary)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	resp, err := s.vesting.Handler.PauseHandler(r.Context(), callerIdentity(r))
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnpause(w http.ResponseWriter, r *http.Request) {
	resp, err := s.vesting.Handler.UnpauseHandler(r.Context(), callerIdentity(r))
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWhitelistAsset(w http.ResponseWriter, r *http.Request) {
	var req vestinghttp.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVestingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.vesting.Handler.WhitelistAssetHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveAsset(w http.ResponseWriter, r *http.Request) {
	var req vestinghttp.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVestingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.vesting.Handler.RemoveAssetHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req vestinghttp.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVestingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.vesting.Handler.WithdrawHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWithdrawNative(w http.ResponseWriter, r *http.Request) {
	var req vestinghttp.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVestingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.vesting.Handler.WithdrawNativeHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeVestingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseScheduleID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.PathValue("schedule_id")
	scheduleID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeVestingError(w, http.StatusBadRequest, "invalid_schedule_id", "schedule_id must be a non-negative integer")
		return 0, false
	}
	return scheduleID, true
}

func writeVestingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vestingerrors.ErrUnauthorized):
		writeVestingError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, vestingerrors.ErrAssetNotAllowed):
		writeVestingError(w, http.StatusBadRequest, "asset_not_allowed", err.Error())
	case errors.Is(err, vestingerrors.ErrInvalidBeneficiary),
		errors.Is(err, vestingerrors.ErrInvalidAmount),
		errors.Is(err, vestingerrors.ErrInvalidDuration),
		errors.Is(err, vestingerrors.ErrInvalidAsset),
		errors.Is(err, vestingerrors.ErrInvalidRecipient):
		writeVestingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, vestingerrors.ErrCliffExceedsDuration):
		writeVestingError(w, http.StatusUnprocessableEntity, "cliff_exceeds_duration", err.Error())
	case errors.Is(err, vestingerrors.ErrScheduleNotFound):
		writeVestingError(w, http.StatusNotFound, "schedule_not_found", err.Error())
	case errors.Is(err, vestingerrors.ErrScheduleEmpty):
		writeVestingError(w, http.StatusUnprocessableEntity, "schedule_empty", err.Error())
	case errors.Is(err, vestingerrors.ErrPaused):
		writeVestingError(w, http.StatusConflict, "ledger_paused", err.Error())
	case errors.Is(err, vestingerrors.ErrNothingToWithdraw):
		writeVestingError(w, http.StatusConflict, "nothing_to_withdraw", err.Error())
	case errors.Is(err, vestingerrors.ErrTransferFailed):
		writeVestingError(w, http.StatusBadGateway, "transfer_failed", err.Error())
	default:
		writeVestingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeVestingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, vestinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
