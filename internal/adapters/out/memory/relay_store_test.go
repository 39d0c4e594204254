package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEvents(t *testing.T, factory *memory.UnitOfWorkFactory, n int) {
	t.Helper()
	events := make([]event.Event, 0, n)
	for i := range n {
		e, err := event.New(event.OrderReadyForDispatch, "order", kernel.NewUUID(), map[string]int{"n": i},
			epoch.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
		events = append(events, e)
	}
	require.NoError(t, factory.Create().OutboxRepository().Add(context.Background(), events...))
}

func TestRelayStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep failed events pending", func(t *testing.T) {
		store, factory := newFactory()
		relay := memory.NewRelayStore(store)
		addEvents(t, factory, 2)

		stats, err := relay.Relay(ctx, 10, func(context.Context, event.Event) error {
			return errors.New("broker down")
		})
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Failed)

		pending, err := relay.Pending(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), pending)

		stats, err = relay.Relay(ctx, 1, func(context.Context, event.Event) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Published)

		pending, err = relay.Pending(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), pending)
	})

	t.Run("should not hand one event to two relays", func(t *testing.T) {
		store, factory := newFactory()
		relay := memory.NewRelayStore(store)
		addEvents(t, factory, 50)

		var (
			mu   sync.Mutex
			seen = make(map[string]int)
			wg   sync.WaitGroup
		)
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					stats, err := relay.Relay(ctx, 7, func(_ context.Context, e event.Event) error {
						mu.Lock()
						seen[e.ID().String()]++
						mu.Unlock()
						return nil
					})
					if err != nil || stats.Published == 0 {
						return
					}
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, 50)
		for _, n := range seen {
			assert.Equal(t, 1, n)
		}
	})

	t.Run("should not publish events of a rolled back transaction", func(t *testing.T) {
		store, factory := newFactory()
		relay := memory.NewRelayStore(store)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		e, err := event.New(event.OrderCancelled, "order", kernel.NewUUID(), struct{}{}, epoch)
		require.NoError(t, err)
		require.NoError(t, uow.OutboxRepository().Add(ctx, e))
		require.NoError(t, uow.Rollback(ctx))

		pending, err := relay.Pending(ctx)
		require.NoError(t, err)
		assert.Zero(t, pending)
	})
}
