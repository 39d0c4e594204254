package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/services"
)

// AssignDeliveryCommandHandler is the assignment engine entry point.
//
// All reads and writes happen in one unit of work. The order row is locked
// first; the availability check is repeated by the store's uniqueness
// constraint, so of two racing assignments for the same driver or vehicle
// exactly one commits and the other fails with services.ErrResourceAlreadyAssigned.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrResourceAlreadyAssigned):
//	    // pick another driver or vehicle
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order, driver or vehicle
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

func NewAssignDeliveryCommandHandler(uowFactory UoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
	}
}

// Handle checks the preconditions in order (order, driver, vehicle,
// availability) and returns the first violation without mutating state.
//
// Parameters:
//   - ctx: bounds the unit of work
//   - cmd: built by NewAssignDeliveryCommand
//
// Returns:
//   - nil once the delivery, the Assigned order and the delivery.assigned
//     outbox event are committed together
//   - errs.ErrObjectNotFound for an unknown order, driver or vehicle
//   - an *errs.ConflictError wrapping the violated services rule
//   - errs.ErrStoreFailure when the store cannot be reached; nothing is written
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = services.CheckOrder(o); err != nil {
		return err
	}

	drv, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if err = services.CheckDriver(o, drv); err != nil {
		return err
	}

	veh, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if err = services.CheckVehicle(o, veh); err != nil {
		return err
	}

	driverBusyWith, err := deliveryRepo.ActiveForDriver(ctx, drv.ID())
	if err != nil {
		return err
	}
	vehicleBusyWith, err := deliveryRepo.ActiveForVehicle(ctx, veh.ID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d, err := h.dispatcher.Dispatch(services.Assignment{
		Order:           o,
		Driver:          drv,
		Vehicle:         veh,
		DriverBusyWith:  driverBusyWith,
		VehicleBusyWith: vehicleBusyWith,
		RequestedBy:     cmd.RequestedBy(),
		Notes:           cmd.Notes(),
	}, cmd.DeliveryID(), now)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	payload := deliveryPayload(d, cmd.RequestedBy(), now)
	payload.OrderCode = o.Code()
	payload.Note = d.Notes()
	evt, err := newDeliveryEvent(event.DeliveryAssigned, d, payload, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, evt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
