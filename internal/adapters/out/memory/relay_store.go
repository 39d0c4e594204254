package memory

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/ports"
)

// RelayStore implements ports.OutboxRelayStore over the store's outbox.
// Claimed messages are published without holding the store lock.
type RelayStore struct {
	store *Store
	now   func() time.Time
}

func NewRelayStore(store *Store) *RelayStore {
	return &RelayStore{store: store, now: time.Now}
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

	batch := s.claim(limit)
	for i, msg := range batch {
		if err := ctx.Err(); err != nil {
			s.release(batch[i:])
			return stats, err
		}

		err := publish(ctx, msg.event)

		s.store.mu.Lock()
		msg.attempts++
		msg.claimed = false
		if err != nil {
			msg.lastError = err.Error()
			stats.Failed++
		} else {
			now := s.now().UTC()
			msg.processedAt = &now
			msg.lastError = ""
			stats.Published++
		}
		s.store.mu.Unlock()
	}
	return stats, nil
}

// Pending counts messages that were not published yet.
func (s *RelayStore) Pending(_ context.Context) (int64, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var n int64
	for _, msg := range s.store.outbox {
		if msg.processedAt == nil {
			n++
		}
	}
	return n, nil
}

// claim marks up to limit pending messages, oldest first, as owned by the caller.
func (s *RelayStore) claim(limit int) []*outboxMessage {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	batch := make([]*outboxMessage, 0, limit)
	for _, msg := range s.store.outbox {
		if len(batch) == limit {
			break
		}
		if msg.processedAt == nil && !msg.claimed {
			msg.claimed = true
			batch = append(batch, msg)
		}
	}
	return batch
}

func (s *RelayStore) release(batch []*outboxMessage) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, msg := range batch {
		msg.claimed = false
	}
}
