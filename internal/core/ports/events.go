package ports

import (
	"context"
	"io"

	"dispatch/internal/core/domain/model/event"
)

// EventPublisher delivers outbox events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
	Close() error
}

// RelayStats summarizes one outbox relay pass.
type RelayStats struct {
	Published int
	Failed    int
}

// OutboxRelayStore hands pending outbox events to publish, oldest first.
// Each event is marked processed when publish succeeds; on failure its
// attempt counter and last error are recorded and it stays pending.
// Concurrent relays never receive the same event.
type OutboxRelayStore interface {
	Relay(ctx context.Context, limit int, publish func(ctx context.Context, e event.Event) error) (RelayStats, error)
}

// ProofStorage keeps proof-of-delivery artifacts and returns their public URL.
type ProofStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
