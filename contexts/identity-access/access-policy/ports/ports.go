package ports

import (
	"context"
	"time"

	"vestra/contexts/identity-access/access-policy/domain/entities"
	contractsv1 "vestra/contracts/gen/events/v1"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for event/outbox rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// GrantInput is persisted together with its role-change outbox record.
type GrantInput struct {
	Identity  string
	Role      string
	ActorID   string
	GrantedAt time.Time
}

// RevokeInput captures revoke metadata.
type RevokeInput struct {
	Identity  string
	Role      string
	ActorID   string
	RevokedAt time.Time
}

// Repository is the write/read boundary for role state.
// Grant and Revoke report whether membership actually changed so the
// application layer can keep grant/revoke idempotent without extra reads.
type Repository interface {
	IsMember(ctx context.Context, identity string, role string) (bool, error)
	ListMemberships(ctx context.Context, identity string) ([]entities.Membership, error)
	Grant(ctx context.Context, input GrantInput) (bool, error)
	Revoke(ctx context.Context, input RevokeInput) (bool, error)
}

// RoleCache stores an identity's role names with TTL semantics.
type RoleCache interface {
	Get(ctx context.Context, identity string, now time.Time) ([]string, bool, error)
	Set(ctx context.Context, identity string, roles []string, expiresAt time.Time) error
	Invalidate(ctx context.Context, identity string) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// OutboxWriter appends role-change events in the same unit as the mutation.
type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

// OutboxMessage represents a pending relay message.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository supports worker relay polling and acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

// RoleChangedPublisher emits role change events to the event bus adapter.
type RoleChangedPublisher interface {
	PublishRoleChanged(ctx context.Context, event EventEnvelope) error
}
