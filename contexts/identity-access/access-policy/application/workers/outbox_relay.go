package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "vestra/contexts/identity-access/access-policy/application"
	"vestra/contexts/identity-access/access-policy/ports"
)

type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.RoleChangedPublisher
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
		logger.Error("access outbox list failed",
			"event", "access_outbox_list_failed",
			"module", "identity-access/access-policy",
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
		if err := r.Publisher.PublishRoleChanged(ctx, event); err != nil {
			logger.Error("access outbox publish failed",
				"event", "access_outbox_publish_failed",
				"module", "identity-access/access-policy",
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
