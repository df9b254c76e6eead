package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"vestra/contexts/identity-access/access-policy/domain/entities"
	domainerrors "vestra/contexts/identity-access/access-policy/domain/errors"
	"vestra/contexts/identity-access/access-policy/ports"
)

// Service enforces the admin-gated role policy. Role queries are open to
// anyone; every mutation requires the acting identity to be a current
// administrator.
type Service struct {
	Repo     ports.Repository
	Cache    ports.RoleCache
	Outbox   ports.OutboxWriter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	CacheTTL time.Duration
	Logger   *slog.Logger
}

func (s Service) IsAdmin(ctx context.Context, identity string) (bool, error) {
	return s.hasRole(ctx, identity, entities.RoleAdmin)
}

func (s Service) IsWhitelistedCreator(ctx context.Context, identity string) (bool, error) {
	return s.hasRole(ctx, identity, entities.RoleCreator)
}

// ListRoles returns the role names currently held by identity.
func (s Service) ListRoles(ctx context.Context, identity string) ([]string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil, domainerrors.ErrInvalidIdentity
	}
	return s.loadRoles(ctx, identity)
}

func (s Service) GrantAdmin(ctx context.Context, actorID string, identity string) error {
	return s.grant(ctx, actorID, identity, entities.RoleAdmin)
}

func (s Service) RevokeAdmin(ctx context.Context, actorID string, identity string) error {
	return s.revoke(ctx, actorID, identity, entities.RoleAdmin)
}

func (s Service) GrantCreator(ctx context.Context, actorID string, identity string) error {
	return s.grant(ctx, actorID, identity, entities.RoleCreator)
}

func (s Service) RevokeCreator(ctx context.Context, actorID string, identity string) error {
	return s.revoke(ctx, actorID, identity, entities.RoleCreator)
}

func (s Service) grant(ctx context.Context, actorID string, identity string, role string) error {
	logger := ResolveLogger(s.Logger)
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return domainerrors.ErrInvalidIdentity
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	now := s.now()
	changed, err := s.Repo.Grant(ctx, ports.GrantInput{
		Identity:  identity,
		Role:      role,
		ActorID:   strings.TrimSpace(actorID),
		GrantedAt: now,
	})
	if err != nil {
		return err
	}
	if !changed {
		// Granting an existing member is a no-op, not an error.
		return nil
	}

	s.invalidate(ctx, identity)
	if err := s.appendRoleEvent(ctx, "access.role_granted", actorID, identity, role, now); err != nil {
		return err
	}

	logger.Info("role granted",
		"event", "access_role_granted",
		"module", "identity-access/access-policy",
		"layer", "application",
		"identity", identity,
		"role", role,
		"actor_id", strings.TrimSpace(actorID),
	)
	return nil
}

func (s Service) revoke(ctx context.Context, actorID string, identity string, role string) error {
	logger := ResolveLogger(s.Logger)
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return domainerrors.ErrInvalidIdentity
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	now := s.now()
	changed, err := s.Repo.Revoke(ctx, ports.RevokeInput{
		Identity:  identity,
		Role:      role,
		ActorID:   strings.TrimSpace(actorID),
		RevokedAt: now,
	})
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	s.invalidate(ctx, identity)
	if err := s.appendRoleEvent(ctx, "access.role_revoked", actorID, identity, role, now); err != nil {
		return err
	}

	logger.Info("role revoked",
		"event", "access_role_revoked",
		"module", "identity-access/access-policy",
		"layer", "application",
		"identity", identity,
		"role", role,
		"actor_id", strings.TrimSpace(actorID),
	)
	return nil
}

func (s Service) requireAdmin(ctx context.Context, actorID string) error {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return domainerrors.ErrUnauthorized
	}
	isAdmin, err := s.Repo.IsMember(ctx, actorID, entities.RoleAdmin)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

func (s Service) hasRole(ctx context.Context, identity string, role string) (bool, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return false, nil
	}
	roles, err := s.loadRoles(ctx, identity)
	if err != nil {
		return false, err
	}
	for _, held := range roles {
		if held == role {
			return true, nil
		}
	}
	return false, nil
}

func (s Service) loadRoles(ctx context.Context, identity string) ([]string, error) {
	logger := ResolveLogger(s.Logger)
	now := s.now()

	if s.Cache != nil {
		cached, found, err := s.Cache.Get(ctx, identity, now)
		if err != nil {
			logger.Warn("role cache read failed",
				"event", "access_role_cache_get_failed",
				"module", "identity-access/access-policy",
				"layer", "application",
				"identity", identity,
				"error", err.Error(),
			)
		} else if found {
			return cached, nil
		}
	}

	memberships, err := s.Repo.ListMemberships(ctx, identity)
	if err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		roles = append(roles, membership.Role)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, identity, roles, now.Add(s.cacheTTL())); err != nil {
			logger.Warn("role cache write failed",
				"event", "access_role_cache_set_failed",
				"module", "identity-access/access-policy",
				"layer", "application",
				"identity", identity,
				"error", err.Error(),
			)
		}
	}
	return roles, nil
}

func (s Service) invalidate(ctx context.Context, identity string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, identity); err != nil {
		ResolveLogger(s.Logger).Warn("role cache invalidate failed",
			"event", "access_role_cache_invalidation_failed",
			"module", "identity-access/access-policy",
			"layer", "application",
			"identity", identity,
			"error", err.Error(),
		)
	}
}

func (s Service) appendRoleEvent(
	ctx context.Context,
	eventType string,
	actorID string,
	identity string,
	role string,
	occurredAt time.Time,
) error {
	if s.Outbox == nil {
		return nil
	}
	eventID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	data, err := json.Marshal(map[string]any{
		"identity": identity,
		"role":     role,
		"actor_id": strings.TrimSpace(actorID),
	})
	if err != nil {
		return err
	}
	return s.Outbox.AppendOutbox(ctx, ports.EventEnvelope{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAt:       occurredAt.UTC(),
		SourceService:    "access-policy",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "identity",
		PartitionKey:     identity,
		Data:             data,
	})
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) cacheTTL() time.Duration {
	if s.CacheTTL <= 0 {
		return 5 * time.Minute
	}
	return s.CacheTTL
}
