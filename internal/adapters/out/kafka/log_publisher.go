package kafka

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
)

var _ ports.EventPublisher = (*LogPublisher)(nil)

// LogPublisher stands in for Kafka when no brokers are configured.
// Every event is written to the log and reported as delivered.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.logger.Info("event published",
		"event_id", e.ID().String(),
		"type", e.Type(),
		"aggregate_type", e.AggregateType(),
		"aggregate_id", e.AggregateID().String(),
		"payload", string(e.Payload()),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
