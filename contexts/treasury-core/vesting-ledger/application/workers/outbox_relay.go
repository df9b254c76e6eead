package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "vestra/contexts/treasury-core/vesting-ledger/application"
	"vestra/contexts/treasury-core/vesting-ledger/ports"
)

type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.LedgerEventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("vesting outbox list failed",
			"event", "vesting_outbox_list_failed",
			"module", "treasury-core/vesting-ledger",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var event ports.EventEnvelope
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			return err
		}
		if err := r.Publisher.PublishLedgerEvent(ctx, event); err != nil {
			logger.Error("vesting outbox publish failed",
				"event", "vesting_outbox_publish_failed",
				"module", "treasury-core/vesting-ledger",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, now); err != nil {
			return err
		}
	}
	return nil
}
