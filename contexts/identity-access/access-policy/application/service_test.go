package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"vestra/contexts/identity-access/access-policy/adapters/memory"
	domainerrors "vestra/contexts/identity-access/access-policy/domain/errors"
)

func newPolicy() (Service, *memory.Store) {
	store := memory.NewStore("root")
	service := Service{
		Repo:     store,
		Cache:    store,
		Outbox:   store,
		Clock:    fixedClock{now: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)},
		IDGen:    store,
		CacheTTL: 5 * time.Minute,
	}
	return service, store
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func TestBootstrapAdminIsSoleMember(t *testing.T) {
	service, _ := newPolicy()
	ctx := context.Background()

	isAdmin, err := service.IsAdmin(ctx, "root")
	if err != nil {
		t.Fatalf("admin query failed: %v", err)
	}
	if !isAdmin {
		t.Fatalf("bootstrap identity is not an admin")
	}

	isCreator, err := service.IsWhitelistedCreator(ctx, "root")
	if err != nil {
		t.Fatalf("creator query failed: %v", err)
	}
	if isCreator {
		t.Fatalf("bootstrap identity must not hold the creator role")
	}
}

func TestGrantRequiresAdmin(t *testing.T) {
	service, _ := newPolicy()
	ctx := context.Background()

	if err := service.GrantCreator(ctx, "stranger", "user-1"); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("grant by non-admin got %v, want ErrUnauthorized", err)
	}
	if err := service.RevokeAdmin(ctx, "", "root"); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("revoke with blank actor got %v, want ErrUnauthorized", err)
	}
}

func TestCreatorRoleRoundTrip(t *testing.T) {
	service, _ := newPolicy()
	ctx := context.Background()

	if err := service.GrantCreator(ctx, "root", "user-1"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	isCreator, err := service.IsWhitelistedCreator(ctx, "user-1")
	if err != nil {
		t.Fatalf("creator query failed: %v", err)
	}
	if !isCreator {
		t.Fatalf("grant did not take effect")
	}

	if err := service.RevokeCreator(ctx, "root", "user-1"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	isCreator, err = service.IsWhitelistedCreator(ctx, "user-1")
	if err != nil {
		t.Fatalf("creator query failed: %v", err)
	}
	if isCreator {
		t.Fatalf("revoke did not take effect")
	}
}

func TestGrantAndRevokeAreIdempotent(t *testing.T) {
	service, store := newPolicy()
	ctx := context.Background()

	if err := service.GrantAdmin(ctx, "root", "user-2"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if err := service.GrantAdmin(ctx, "root", "user-2"); err != nil {
		t.Fatalf("repeat grant must be a no-op, got %v", err)
	}
	if err := service.RevokeAdmin(ctx, "root", "user-2"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if err := service.RevokeAdmin(ctx, "root", "user-2"); err != nil {
		t.Fatalf("repeat revoke must be a no-op, got %v", err)
	}

	// Only the effective changes produce role-change events.
	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending outbox failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("outbox has %d events, want 2 (one grant, one revoke)", len(pending))
	}
}

func TestRevokedAdminLosesMutationRights(t *testing.T) {
	service, _ := newPolicy()
	ctx := context.Background()

	if err := service.GrantAdmin(ctx, "root", "user-3"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if err := service.GrantCreator(ctx, "user-3", "user-4"); err != nil {
		t.Fatalf("grant by new admin failed: %v", err)
	}
	if err := service.RevokeAdmin(ctx, "root", "user-3"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if err := service.GrantCreator(ctx, "user-3", "user-5"); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("grant by revoked admin got %v, want ErrUnauthorized", err)
	}
}

func TestListRolesRejectsBlankIdentity(t *testing.T) {
	service, _ := newPolicy()

	if _, err := service.ListRoles(context.Background(), "  "); !errors.Is(err, domainerrors.ErrInvalidIdentity) {
		t.Fatalf("blank identity got %v, want ErrInvalidIdentity", err)
	}
}
