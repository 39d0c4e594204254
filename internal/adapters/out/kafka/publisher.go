// Package kafka publishes outbox events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"

	"github.com/IBM/sarama"
)

const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Envelope is the message value written for every event.
type Envelope struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewProducerConfig returns the producer settings used in every environment.
func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Net.DialTimeout = 10 * time.Second
	cfg.Net.ReadTimeout = 10 * time.Second
	cfg.Net.WriteTimeout = 10 * time.Second
	return cfg
}

func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	logger.Info("kafka producer created", "brokers", brokers, "topic", topic)
	return NewPublisherWithProducer(producer, topic, logger), nil
}

func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}
}

// Publish sends e keyed by its aggregate id so events of one aggregate keep
// their order within a partition.
func (p *Publisher) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(Envelope{
		ID:            e.ID().String(),
		Type:          string(e.Type()),
		AggregateType: e.AggregateType(),
		AggregateID:   e.AggregateID().String(),
		OccurredAt:    e.OccurredAt().UTC(),
		Payload:       e.Payload(),
	})
	if err != nil {
		return fmt.Errorf("encode event %s: %w", e.ID(), err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.AggregateID().String()),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderEventID), Value: []byte(e.ID().String())},
			{Key: []byte(HeaderEventType), Value: []byte(e.Type())},
		},
		Timestamp: e.OccurredAt(),
	})
	if err != nil {
		p.logger.Error("failed to send event", "event_id", e.ID().String(), "type", e.Type(), "error", err)
		return fmt.Errorf("send event %s: %w", e.ID(), err)
	}

	p.logger.Debug("event sent",
		"event_id", e.ID().String(),
		"type", e.Type(),
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *Publisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
