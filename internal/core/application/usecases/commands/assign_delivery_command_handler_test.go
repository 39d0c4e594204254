package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDeliveryCommandHandler(t *testing.T) {
	newCommand := func(t *testing.T, orderID, driverID, vehicleID kernel.UUID) commands.AssignDeliveryCommand {
		t.Helper()
		cmd, err := commands.NewAssignDeliveryCommand(kernel.NewUUID(), orderID, driverID, vehicleID, "officer-1", "fragile")
		require.NoError(t, err)
		return cmd
	}

	t.Run("should create delivery and assign order", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, true)
		drv := testDriver(t, kernel.CenterNorth, true)
		veh := testVehicle(t, kernel.CenterNorth)
		cmd := newCommand(t, o.ID(), drv.ID(), veh.ID())

		f.expectTx(true)
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.drivers.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()
		f.vehicles.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once()
		f.deliveries.On("ActiveForDriver", mock.Anything, drv.ID()).Return(nil, nil).Once()
		f.deliveries.On("ActiveForVehicle", mock.Anything, veh.ID()).Return(nil, nil).Once()
		f.deliveries.On("Add", mock.Anything, mock.MatchedBy(func(d *delivery.Delivery) bool {
			return d.ID().IsEqual(cmd.DeliveryID()) &&
				d.Status() == delivery.Assigned &&
				d.DriverID().IsEqual(drv.ID()) &&
				d.VehicleID().IsEqual(veh.ID()) &&
				d.AssignedBy() == "officer-1" &&
				len(d.Timeline()) == 1
		})).Return(nil).Once()
		f.orders.On("Update", mock.Anything, mock.MatchedBy(func(u *order.Order) bool {
			return u.Status() == order.Assigned
		})).Return(nil).Once()
		f.outbox.On("Add", mock.Anything, eventOfType(event.DeliveryAssigned)).Return(nil).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("should return not found for unknown order", func(t *testing.T) {
		f := newFixture()
		cmd := newCommand(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

		f.expectTx(false)
		f.orders.On("GetForUpdate", mock.Anything, cmd.OrderID()).
			Return(nil, errs.NewObjectNotFoundError("order", cmd.OrderID())).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.drivers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should reject order that is not ready before loading driver", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, false)
		cmd := newCommand(t, o.ID(), kernel.NewUUID(), kernel.NewUUID())

		f.expectTx(false)
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrOrderNotDispatchable)
		f.drivers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		f.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should reject driver from another center", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, true)
		drv := testDriver(t, kernel.CenterSouth, true)
		cmd := newCommand(t, o.ID(), drv.ID(), kernel.NewUUID())

		f.expectTx(false)
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.drivers.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrDriverCenterMismatch)
		f.vehicles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should reject driver that is not approved", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, true)
		drv := testDriver(t, kernel.CenterNorth, false)
		cmd := newCommand(t, o.ID(), drv.ID(), kernel.NewUUID())

		f.expectTx(false)
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.drivers.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrDriverIneligible)
		f.assertExpectations(t)
	})

	t.Run("should reject inactive vehicle", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, true)
		drv := testDriver(t, kernel.CenterNorth, true)
		veh := testVehicle(t, kernel.CenterNorth)
		veh.SetActive(false)
		cmd := newCommand(t, o.ID(), drv.ID(), veh.ID())

		f.expectTx(false)
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.drivers.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()
		f.vehicles.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrVehicleIneligible)
		f.deliveries.AssertNotCalled(t, "ActiveForDriver", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should reject busy driver", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, true)
		drv := testDriver(t, kernel.CenterNorth, true)
		veh := testVehicle(t, kernel.CenterNorth)
		cmd := newCommand(t, o.ID(), drv.ID(), veh.ID())
		busyWith := kernel.NewUUID()

		f.expectTx(false)
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.drivers.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()
		f.vehicles.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once()
		f.deliveries.On("ActiveForDriver", mock.Anything, drv.ID()).Return(&busyWith, nil).Once()
		f.deliveries.On("ActiveForVehicle", mock.Anything, veh.ID()).Return(nil, nil).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrResourceAlreadyAssigned)
		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "driver", conflict.Resource)
		assert.Equal(t, order.ReadyForDispatch, o.Status())
		f.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should surface store conflict from insert", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, true)
		drv := testDriver(t, kernel.CenterNorth, true)
		veh := testVehicle(t, kernel.CenterNorth)
		cmd := newCommand(t, o.ID(), drv.ID(), veh.ID())
		storeErr := errs.NewConflictError(services.ErrResourceAlreadyAssigned, "vehicle", veh.ID())

		f.expectTx(false)
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.drivers.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()
		f.vehicles.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once()
		f.deliveries.On("ActiveForDriver", mock.Anything, drv.ID()).Return(nil, nil).Once()
		f.deliveries.On("ActiveForVehicle", mock.Anything, veh.ID()).Return(nil, nil).Once()
		f.deliveries.On("Add", mock.Anything, mock.Anything).Return(storeErr).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, services.ErrResourceAlreadyAssigned)
		f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should return commit error", func(t *testing.T) {
		f := newFixture()
		o := testOrder(t, kernel.CenterNorth, true)
		drv := testDriver(t, kernel.CenterNorth, true)
		veh := testVehicle(t, kernel.CenterNorth)
		cmd := newCommand(t, o.ID(), drv.ID(), veh.ID())
		commitErr := errors.New("serialization failure")

		f.uow.On("Begin", mock.Anything).Return(nil).Once()
		f.uow.On("Commit", mock.Anything).Return(commitErr).Once()
		f.uow.On("Rollback", mock.Anything).Return(nil).Once()
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.drivers.On("Get", mock.Anything, drv.ID()).Return(drv, nil).Once()
		f.vehicles.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once()
		f.deliveries.On("ActiveForDriver", mock.Anything, drv.ID()).Return(nil, nil).Once()
		f.deliveries.On("ActiveForVehicle", mock.Anything, veh.ID()).Return(nil, nil).Once()
		f.deliveries.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
		f.orders.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		f.outbox.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commitErr)
		f.assertExpectations(t)
	})

	t.Run("should return error on begin failure", func(t *testing.T) {
		f := newFixture()
		beginErr := errors.New("pool exhausted")
		f.uow.On("Begin", mock.Anything).Return(beginErr).Once()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).
			Handle(t.Context(), newCommand(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()))

		require.ErrorIs(t, err, beginErr)
		f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should reject command not built by constructor", func(t *testing.T) {
		f := newFixture()

		err := commands.NewAssignDeliveryCommandHandler(f.factory).Handle(t.Context(), commands.AssignDeliveryCommand{})

		require.ErrorIs(t, err, commands.ErrAssignDeliveryCommandIsNotConstructed)
		f.factory.AssertNotCalled(t, "Create")
	})
}
