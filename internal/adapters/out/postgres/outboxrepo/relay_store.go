package outboxrepo

import (
	"context"
	"time"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxErrorLength = 1024

// RelayStore implements ports.OutboxRelayStore. A batch is claimed with
// FOR UPDATE SKIP LOCKED inside one transaction, so concurrent relays
// partition the pending rows instead of publishing them twice.
type RelayStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRelayStore(db *gorm.DB) *RelayStore {
	return &RelayStore{db: db, now: time.Now}
}

func (s *RelayStore) Relay(
	ctx context.Context,
	limit int,
	publish func(ctx context.Context, e event.Event) error,
) (ports.RelayStats, error) {
	var stats ports.RelayStats
	if limit <= 0 {
		return stats, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []OutboxMessageDTO
		err := tx.Clauses(clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Options:  clause.LockingOptionsSkipLocked,
		}).
			Where("processed_at IS NULL").
			Order("occurred_at").
			Limit(limit).
			Find(&rows).Error
		if err != nil {
			return err
		}

		for _, row := range rows {
			e, convErr := toDomain(row)
			if convErr == nil {
				convErr = publish(ctx, e)
			}

			if convErr != nil {
				stats.Failed++
				if err := tx.Model(&OutboxMessageDTO{}).Where("id = ?", row.ID).Updates(map[string]any{
					"attempts":   gorm.Expr("attempts + 1"),
					"last_error": truncate(convErr.Error(), maxErrorLength),
				}).Error; err != nil {
					return err
				}
				continue
			}

			stats.Published++
			if err := tx.Model(&OutboxMessageDTO{}).Where("id = ?", row.ID).Updates(map[string]any{
				"processed_at": s.now().UTC(),
				"attempts":     gorm.Expr("attempts + 1"),
				"last_error":   "",
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ports.RelayStats{}, pgerr.Translate("relay outbox", err)
	}
	return stats, nil
}

// Pending counts messages that were not published yet.
func (s *RelayStore) Pending(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&OutboxMessageDTO{}).Where("processed_at IS NULL").Count(&count).Error
	if err != nil {
		return 0, pgerr.Translate("count pending outbox messages", err)
	}
	return count, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
