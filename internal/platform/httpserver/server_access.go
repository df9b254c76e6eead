package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	accesserrors "vestra/contexts/identity-access/access-policy/domain/errors"
	accesshttp "vestra/contexts/identity-access/access-policy/transport/http"
)

func (s *Server) handleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRoleChange(w, r)
	if !ok {
		return
	}
	resp, err := s.access.Handler.GrantAdminHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevokeAdmin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRoleChange(w, r)
	if !ok {
		return
	}
	resp, err := s.access.Handler.RevokeAdminHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGrantCreator(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRoleChange(w, r)
	if !ok {
		return
	}
	resp, err := s.access.Handler.GrantCreatorHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevokeCreator(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRoleChange(w, r)
	if !ok {
		return
	}
	resp, err := s.access.Handler.RevokeCreatorHandler(r.Context(), callerIdentity(r), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")
	resp, err := s.access.Handler.ListRolesHandler(r.Context(), identity)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeRoleChange(w http.ResponseWriter, r *http.Request) (accesshttp.RoleChangeRequest, bool) {
	var req accesshttp.RoleChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccessError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return accesshttp.RoleChangeRequest{}, false
	}
	return req, true
}

func writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrUnauthorized):
		writeAccessError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, accesserrors.ErrInvalidIdentity),
		errors.Is(err, accesserrors.ErrInvalidRole):
		writeAccessError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, accesserrors.ErrNotFound):
		writeAccessError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAccessError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accesshttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
