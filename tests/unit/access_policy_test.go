package unit

import (
	"context"
	"errors"
	"testing"

	accesspolicy "vestra/contexts/identity-access/access-policy"
	domainerrors "vestra/contexts/identity-access/access-policy/domain/errors"
	httptransport "vestra/contexts/identity-access/access-policy/transport/http"
)

func TestAccessGrantAndListRoles(t *testing.T) {
	module := accesspolicy.NewInMemoryModule("root", nil)
	ctx := context.Background()

	grant, err := module.Handler.GrantCreatorHandler(ctx, "root", httptransport.RoleChangeRequest{Identity: "user-1"})
	if err != nil {
		t.Fatalf("grant creator failed: %v", err)
	}
	if grant.Role != "whitelisted_creator" {
		t.Fatalf("grant role = %q, want whitelisted_creator", grant.Role)
	}

	roles, err := module.Handler.ListRolesHandler(ctx, "user-1")
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if len(roles.Roles) != 1 || roles.Roles[0] != "whitelisted_creator" {
		t.Fatalf("roles = %v, want [whitelisted_creator]", roles.Roles)
	}
}

func TestAccessMutationsRejectNonAdmins(t *testing.T) {
	module := accesspolicy.NewInMemoryModule("root", nil)
	ctx := context.Background()

	_, err := module.Handler.GrantAdminHandler(ctx, "user-1", httptransport.RoleChangeRequest{Identity: "user-2"})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("grant by non-admin got %v, want ErrUnauthorized", err)
	}

	_, err = module.Handler.RevokeAdminHandler(ctx, "", httptransport.RoleChangeRequest{Identity: "root"})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("revoke with no caller got %v, want ErrUnauthorized", err)
	}
}

func TestAccessAdminHandoff(t *testing.T) {
	module := accesspolicy.NewInMemoryModule("root", nil)
	ctx := context.Background()

	if _, err := module.Handler.GrantAdminHandler(ctx, "root", httptransport.RoleChangeRequest{Identity: "ops-1"}); err != nil {
		t.Fatalf("grant admin failed: %v", err)
	}
	if _, err := module.Handler.RevokeAdminHandler(ctx, "ops-1", httptransport.RoleChangeRequest{Identity: "root"}); err != nil {
		t.Fatalf("revoke by new admin failed: %v", err)
	}

	isAdmin, err := module.Service.IsAdmin(ctx, "root")
	if err != nil {
		t.Fatalf("admin query failed: %v", err)
	}
	if isAdmin {
		t.Fatalf("revoked bootstrap admin still reports admin role")
	}
}
