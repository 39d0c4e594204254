package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 5, 12, 0, 0, 0, time.UTC)

func readyOrder(t *testing.T, center kernel.Center) *order.Order {
	t.Helper()
	item, err := order.NewItem("SKU-1", 1, 100)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-100", "Ada", "1 Main St",
		[]order.Item{item}, order.PriorityNormal, center, now)
	require.NoError(t, err)
	require.NoError(t, o.MarkReadyForDispatch(now))
	return o
}

func approvedDriver(t *testing.T, center kernel.Center) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "D1", "", "", center, now)
	require.NoError(t, err)
	_, err = d.SetApproval(driver.ApprovalApproved)
	require.NoError(t, err)
	return d
}

func activeVehicle(t *testing.T, center kernel.Center) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "V1", "Van", 0, center, now)
	require.NoError(t, err)
	return v
}

func assignment(t *testing.T) services.Assignment {
	t.Helper()
	return services.Assignment{
		Order:       readyOrder(t, kernel.CenterNorth),
		Driver:      approvedDriver(t, kernel.CenterNorth),
		Vehicle:     activeVehicle(t, kernel.CenterNorth),
		RequestedBy: "officer-1",
		Notes:       "ring twice",
	}
}

func requireRule(t *testing.T, err error, rule error, resource string) {
	t.Helper()
	require.ErrorIs(t, err, rule)
	require.ErrorIs(t, err, errs.ErrConflict)
	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, resource, conflict.Resource)
}

func TestDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewDispatcher()

	t.Run("should create assigned delivery and assign order", func(t *testing.T) {
		a := assignment(t)
		id := kernel.NewUUID()

		d, err := dispatcher.Dispatch(a, id, now)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Equal(t, kernel.CenterNorth, d.Center())
		assert.True(t, d.DriverID().IsEqual(a.Driver.ID()))
		assert.True(t, d.VehicleID().IsEqual(a.Vehicle.ID()))
		assert.Equal(t, "officer-1", d.AssignedBy())
		assert.Equal(t, "ring twice", d.Notes())
		assert.Len(t, d.Timeline(), 1)
		assert.Equal(t, order.Assigned, a.Order.Status())
	})

	t.Run("should reject order that is not ready", func(t *testing.T) {
		a := assignment(t)
		require.NoError(t, a.Order.Assign(now))

		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)

		requireRule(t, err, services.ErrOrderNotDispatchable, "order")
	})

	t.Run("should report center mismatch before ineligibility", func(t *testing.T) {
		a := assignment(t)
		southDriver, err := driver.NewDriver(kernel.NewUUID(), "D2", "", "", kernel.CenterSouth, now)
		require.NoError(t, err)
		a.Driver = southDriver

		_, err = dispatcher.Dispatch(a, kernel.NewUUID(), now)

		requireRule(t, err, services.ErrDriverCenterMismatch, "driver")
		assert.Equal(t, order.ReadyForDispatch, a.Order.Status(), "no state mutated")
	})

	t.Run("should reject unapproved driver", func(t *testing.T) {
		a := assignment(t)
		_, err := a.Driver.SetApproval(driver.ApprovalRejected)
		require.NoError(t, err)

		_, err = dispatcher.Dispatch(a, kernel.NewUUID(), now)

		requireRule(t, err, services.ErrDriverIneligible, "driver")
	})

	t.Run("should reject inactive driver", func(t *testing.T) {
		a := assignment(t)
		a.Driver.SetActive(false)

		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)

		requireRule(t, err, services.ErrDriverIneligible, "driver")
	})

	t.Run("should check driver before vehicle", func(t *testing.T) {
		a := assignment(t)
		a.Driver.SetActive(false)
		a.Vehicle = activeVehicle(t, kernel.CenterEast)

		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)

		requireRule(t, err, services.ErrDriverIneligible, "driver")
	})

	t.Run("should reject vehicle from another center", func(t *testing.T) {
		a := assignment(t)
		a.Vehicle = activeVehicle(t, kernel.CenterEast)

		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)

		requireRule(t, err, services.ErrVehicleCenterMismatch, "vehicle")
	})

	t.Run("should reject inactive vehicle", func(t *testing.T) {
		a := assignment(t)
		a.Vehicle.SetActive(false)

		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)

		requireRule(t, err, services.ErrVehicleIneligible, "vehicle")
	})

	t.Run("should reject busy driver and busy vehicle", func(t *testing.T) {
		busy := kernel.NewUUID()

		a := assignment(t)
		a.DriverBusyWith = &busy
		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)
		requireRule(t, err, services.ErrResourceAlreadyAssigned, "driver")
		assert.Contains(t, err.Error(), busy.String())

		a = assignment(t)
		a.VehicleBusyWith = &busy
		_, err = dispatcher.Dispatch(a, kernel.NewUUID(), now)
		requireRule(t, err, services.ErrResourceAlreadyAssigned, "vehicle")
		assert.Equal(t, order.ReadyForDispatch, a.Order.Status())
	})

	t.Run("should require requesting user", func(t *testing.T) {
		a := assignment(t)
		a.RequestedBy = ""

		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.ReadyForDispatch, a.Order.Status())
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		a := assignment(t)
		a.Vehicle = &vehicle.Vehicle{}

		_, err := dispatcher.Dispatch(a, kernel.NewUUID(), now)

		require.ErrorIs(t, err, vehicle.ErrVehicleIsNotConstructed)
	})
}
