package httpadapter

import (
	"context"
	"log/slog"

	"vestra/contexts/identity-access/access-policy/application"
	"vestra/contexts/identity-access/access-policy/domain/entities"
	httptransport "vestra/contexts/identity-access/access-policy/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GrantAdminHandler(
	ctx context.Context,
	actorID string,
	req httptransport.RoleChangeRequest,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.GrantAdmin(ctx, actorID, req.Identity); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(req.Identity, entities.RoleAdmin), nil
}

func (h Handler) RevokeAdminHandler(
	ctx context.Context,
	actorID string,
	req httptransport.RoleChangeRequest,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.RevokeAdmin(ctx, actorID, req.Identity); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(req.Identity, entities.RoleAdmin), nil
}

func (h Handler) GrantCreatorHandler(
	ctx context.Context,
	actorID string,
	req httptransport.RoleChangeRequest,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.GrantCreator(ctx, actorID, req.Identity); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(req.Identity, entities.RoleCreator), nil
}

func (h Handler) RevokeCreatorHandler(
	ctx context.Context,
	actorID string,
	req httptransport.RoleChangeRequest,
) (httptransport.RoleChangeResponse, error) {
	if err := h.Service.RevokeCreator(ctx, actorID, req.Identity); err != nil {
		return httptransport.RoleChangeResponse{}, err
	}
	return roleChangeResponse(req.Identity, entities.RoleCreator), nil
}

func (h Handler) ListRolesHandler(
	ctx context.Context,
	identity string,
) (httptransport.ListRolesResponse, error) {
	roles, err := h.Service.ListRoles(ctx, identity)
	if err != nil {
		return httptransport.ListRolesResponse{}, err
	}
	return httptransport.ListRolesResponse{
		Status:   "success",
		Identity: identity,
		Roles:    roles,
	}, nil
}

func roleChangeResponse(identity string, role string) httptransport.RoleChangeResponse {
	return httptransport.RoleChangeResponse{
		Status:   "success",
		Identity: identity,
		Role:     role,
	}
}
