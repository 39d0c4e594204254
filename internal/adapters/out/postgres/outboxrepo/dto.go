// Package outboxrepo implements the transactional outbox: events are written
// with the aggregates that produced them and relayed to the publisher later.
package outboxrepo

import (
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxMessageDTO is one outbox_messages row. Rows with a nil ProcessedAt
// are pending.
type OutboxMessageDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Type          string         `gorm:"size:64;not null"`
	AggregateType string         `gorm:"size:32;not null"`
	AggregateID   uuid.UUID      `gorm:"type:uuid;not null"`
	Payload       datatypes.JSON `gorm:"not null"`
	OccurredAt    time.Time      `gorm:"not null;index:ix_outbox_pending,priority:2"`
	ProcessedAt   *time.Time     `gorm:"index:ix_outbox_pending,priority:1"`
	Attempts      int            `gorm:"not null;default:0"`
	LastError     string
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(e event.Event) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:            e.ID().Bytes(),
		Type:          string(e.Type()),
		AggregateType: e.AggregateType(),
		AggregateID:   e.AggregateID().Bytes(),
		Payload:       datatypes.JSON(e.Payload()),
		OccurredAt:    e.OccurredAt(),
	}
}

func toDomain(dto OutboxMessageDTO) (event.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return event.Event{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return event.Event{}, err
	}

	return event.Restore(
		id,
		event.Type(dto.Type),
		dto.AggregateType,
		aggregateID,
		[]byte(dto.Payload),
		dto.OccurredAt.UTC(),
	)
}
