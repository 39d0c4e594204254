package outboxrepo

import (
	"context"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/event"

	"gorm.io/gorm"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]OutboxMessageDTO, 0, len(events))
	for _, e := range events {
		rows = append(rows, fromDomain(e))
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return pgerr.Translate("insert outbox messages", err)
	}
	return nil
}
