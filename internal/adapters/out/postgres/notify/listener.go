// Package notify turns PostgreSQL NOTIFY messages into wake-up signals.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 500 * time.Millisecond
	maxReconnectInterval = 30 * time.Second
	pingInterval         = 90 * time.Second
)

// Listener subscribes to one channel. The notification payload is ignored;
// every notification, and every reconnect, calls the wake function.
type Listener struct {
	listener *pq.Listener
	channel  string
	logger   *slog.Logger
}

func NewListener(dsn, channel string, logger *slog.Logger) (*Listener, error) {
	logger = logger.With("component", "pg-listener", "channel", channel)

	l := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventDisconnected, pq.ListenerEventConnectionAttemptFailed:
			logger.Warn("listener connection problem", "error", err)
		case pq.ListenerEventReconnected:
			logger.Info("listener reconnected")
		}
	})
	if err := l.Listen(channel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("listen %s: %w", channel, err)
	}

	return &Listener{listener: l, channel: channel, logger: logger}, nil
}

// Run blocks until ctx is done and closes the listener on return.
func (l *Listener) Run(ctx context.Context, wake func()) error {
	defer func() {
		if err := l.listener.Close(); err != nil {
			l.logger.Warn("close listener", "error", err)
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.listener.Notify:
			// A nil notification follows a reconnect; messages may have been missed.
			wake()
		case <-ticker.C:
			if err := l.listener.Ping(); err != nil {
				l.logger.Warn("listener ping failed", "error", err)
			}
		}
	}
}
