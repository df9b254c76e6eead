package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	payrollerrors "vestra/contexts/treasury-core/payroll-service/domain/errors"
	payrollhttp "vestra/contexts/treasury-core/payroll-service/transport/http"
)

func (s *Server) handleSetSalary(w http.ResponseWriter, r *http.Request) {
	var req payrollhttp.SetSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePayrollError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	level := r.PathValue("level")
	resp, err := s.payroll.Handler.SetSalaryHandler(r.Context(), callerIdentity(r), level, req)
	if err != nil {
		writePayrollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSalary(w http.ResponseWriter, r *http.Request) {
	level := r.PathValue("level")
	resp, err := s.payroll.Handler.GetSalaryHandler(r.Context(), level)
	if err != nil {
		writePayrollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePayrollSchedule(w http.ResponseWriter, r *http.Request) {
	callerID := callerIdentity(r)
	if callerID == "" {
		writePayrollError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req payrollhttp.CreatePayrollScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePayrollError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payroll.Handler.CreatePayrollScheduleHandler(r.Context(), callerID, req)
	if err != nil {
		writePayrollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func writePayrollDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payrollerrors.ErrUnauthorized):
		writePayrollError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, payrollerrors.ErrUnknownLevel):
		writePayrollError(w, http.StatusNotFound, "unknown_level", err.Error())
	case errors.Is(err, payrollerrors.ErrInvalidLevel),
		errors.Is(err, payrollerrors.ErrInvalidSalary):
		writePayrollError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		// Schedule creation delegates to the vesting ledger, so its
		// sentinel errors surface through payroll endpoints too.
		writeVestingDomainError(w, err)
	}
}

func writePayrollError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, payrollhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
