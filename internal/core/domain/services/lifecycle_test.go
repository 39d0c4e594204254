package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatched(t *testing.T) (*delivery.Delivery, *order.Order) {
	t.Helper()
	a := assignment(t)
	d, err := services.NewDispatcher().Dispatch(a, kernel.NewUUID(), now)
	require.NoError(t, err)
	return d, a.Order
}

func TestLifecycle_Advance(t *testing.T) {
	lifecycle := services.NewLifecycle()

	t.Run("should move order to delivered through transit", func(t *testing.T) {
		d, o := dispatched(t)

		require.NoError(t, lifecycle.Advance(d, o, delivery.PickedUp, "", nil, now))
		assert.Equal(t, order.InTransit, o.Status())
		require.NoError(t, lifecycle.Advance(d, o, delivery.InTransit, "", nil, now))
		assert.Equal(t, order.InTransit, o.Status())
		require.NoError(t, lifecycle.Advance(d, o, delivery.Delivered, "", nil, now))

		assert.Equal(t, order.Delivered, o.Status())
		assert.NotNil(t, o.CompletedAt())
		assert.Len(t, d.Timeline(), 4)
	})

	t.Run("should propagate failure", func(t *testing.T) {
		d, o := dispatched(t)

		require.NoError(t, lifecycle.Advance(d, o, delivery.Failed, "address not found", nil, now))

		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, delivery.Failed, d.Status())
	})

	t.Run("should leave order untouched on invalid transition", func(t *testing.T) {
		d, o := dispatched(t)

		err := lifecycle.Advance(d, o, delivery.Delivered, "", nil, now)

		require.ErrorIs(t, err, kernel.ErrInvalidTransition)
		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, delivery.Assigned, d.Status())
	})
}
