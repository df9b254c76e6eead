package events

import (
	"context"
	"log/slog"

	"vestra/contexts/identity-access/access-policy/ports"
)

// Publisher forwards role-change events onto the platform event bus.
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
		topic = "access.role_changes"
	}
	return &Publisher{bus: bus, topic: topic, logger: logger}
}

func (p Publisher) PublishRoleChanged(ctx context.Context, event ports.EventEnvelope) error {
	if p.bus == nil {
		p.logger.Info("role changed event published",
			"event", "access_role_changed_published",
			"module", "identity-access/access-policy",
			"layer", "adapter",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"partition_key", event.PartitionKey,
		)
		return nil
	}
	return p.bus.Publish(ctx, p.topic, event)
}
