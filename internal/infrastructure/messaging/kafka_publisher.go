// Package messaging adapts the shared Kafka producer to the domain event port.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ouestbank/lending-service/internal/domain/event"
	"github.com/ouestbank/lending-service/pkg/kafka"
)

// KafkaEventPublisher implements port.EventPublisher. Events are published to
// a single topic keyed by aggregate ID so that all events of one loan land in
// the same partition, in order.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher writing to the given topic.
func NewKafkaEventPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serializes and sends the given events. A call with no events is a
// no-op, not an error.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", ev.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(ev.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_id":       ev.EventID(),
				"event_type":     ev.EventType(),
				"aggregate_type": ev.AggregateType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return err
	}

	for _, ev := range events {
		p.logger.Debug("domain event published",
			slog.String("event_type", ev.EventType()),
			slog.String("aggregate_id", ev.AggregateID()),
		)
	}
	return nil
}
