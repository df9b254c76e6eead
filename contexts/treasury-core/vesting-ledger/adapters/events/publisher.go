package events

import (
	"context"
	"log/slog"

	"vestra/contexts/treasury-core/vesting-ledger/ports"
)

// Publisher forwards ledger events onto the platform event bus.
type Publisher struct {
	bus    Bus
	topic  string
	logger *slog.Logger
}

// Bus is the minimal publish surface of the platform messaging adapter.
type Bus interface {
	Publish(ctx context.Context, topic string, event ports.EventEnvelope) error
}

func NewPublisher(bus Bus, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	if topic == "" {
		topic = "vesting.ledger_events"
	}
	return &Publisher{bus: bus, topic: topic, logger: logger}
}

func (p Publisher) PublishLedgerEvent(ctx context.Context, event ports.EventEnvelope) error {
	if p.bus == nil {
		p.logger.Info("ledger event published",
			"event", "vesting_ledger_event_published",
			"module", "treasury-core/vesting-ledger",
			"layer", "adapter",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"partition_key", event.PartitionKey,
		)
		return nil
	}
	return p.bus.Publish(ctx, p.topic, event)
}
