package event_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	aggregateID := kernel.NewUUID()
	at := time.Date(2026, 6, 1, 8, 0, 0, 0, time.FixedZone("X", 3600))

	e, err := event.New(event.DeliveryAssigned, "delivery", aggregateID, map[string]string{"driverId": "d-1"}, at)

	require.NoError(t, err)
	assert.False(t, e.ID().IsZero())
	assert.Equal(t, event.DeliveryAssigned, e.Type())
	assert.Equal(t, "delivery", e.AggregateType())
	assert.True(t, e.AggregateID().IsEqual(aggregateID))
	assert.JSONEq(t, `{"driverId":"d-1"}`, string(e.Payload()))
	assert.Equal(t, time.UTC, e.OccurredAt().Location())
}

func TestNew_InvalidPayload(t *testing.T) {
	_, err := event.New(event.OrderCancelled, "order", kernel.NewUUID(), make(chan int), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload")
}

func TestRestore(t *testing.T) {
	_, err := event.Restore(kernel.UUID{}, "", "", kernel.UUID{}, []byte("{"), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "eventType")
	assert.Contains(t, err.Error(), "aggregateType")
	assert.Contains(t, err.Error(), "payload")
}
