package ports

import (
	"context"
	"time"

	"vestra/contexts/treasury-core/vesting-ledger/domain/entities"
	contractsv1 "vestra/contracts/gen/events/v1"
)

// Clock abstracts current time for deterministic tests. Cliff and end
// boundary behavior is untestable without it.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for event/outbox rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// RoleChecker is the read-only view of the access policy consulted on every
// gated operation.
type RoleChecker interface {
	IsAdmin(ctx context.Context, identity string) (bool, error)
	IsWhitelistedCreator(ctx context.Context, identity string) (bool, error)
}

// TokenTransfer signals asset movement out of the ledger. A non-nil error is
// a hard failure of the calling operation.
type TokenTransfer interface {
	Transfer(ctx context.Context, asset string, to string, amount uint64) error
	TransferNative(ctx context.Context, to string, amount uint64) error
}

// CreateScheduleInput is the transport-agnostic creation request. Days are
// converted to seconds by the application layer.
type CreateScheduleInput struct {
	Asset        string
	Beneficiary  string
	Amount       uint64
	Start        int64
	DurationDays int64
	CliffDays    int64
}

// DrawDownResult carries the post-mutation schedule, the drawn amount, and
// the prior accounting needed to compensate a failed transfer.
type DrawDownResult struct {
	Schedule            entities.Schedule
	Amount              uint64
	PreviousTotalDrawn  uint64
	PreviousLastDrawnAt int64
}

// Repository owns ledger state: the append-only schedule arena, the
// beneficiary index, the pause flag, and the asset allow-list.
//
// ApplyDrawDown performs the whole read-compute-write drawdown atomically
// under the repository's own serialization so two concurrent drawdowns can
// never both observe stale accounting. RestoreDrawDown is the compensation
// path for a transfer that failed after accounting was applied.
type Repository interface {
	AppendSchedule(ctx context.Context, schedule entities.Schedule) (entities.Schedule, error)
	GetSchedule(ctx context.Context, scheduleID uint64) (entities.Schedule, error)
	ScheduleCount(ctx context.Context) (uint64, error)
	ListScheduleIDs(ctx context.Context, beneficiary string) ([]uint64, error)

	ApplyDrawDown(ctx context.Context, scheduleID uint64, now int64) (DrawDownResult, error)
	RestoreDrawDown(ctx context.Context, scheduleID uint64, previousTotalDrawn uint64, previousLastDrawnAt int64) error

	SetPaused(ctx context.Context, paused bool) error
	IsPaused(ctx context.Context) (bool, error)

	AddAsset(ctx context.Context, asset string) error
	RemoveAsset(ctx context.Context, asset string) error
	IsAssetAllowed(ctx context.Context, asset string) (bool, error)
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// OutboxWriter appends ledger events in the same unit as the mutation.
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

// LedgerEventPublisher emits ledger events to the event bus adapter.
type LedgerEventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event EventEnvelope) error
}
