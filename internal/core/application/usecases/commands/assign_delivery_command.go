package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand binds a dispatch-ready order to a driver and a vehicle.
// The caller chooses the delivery id so a retried request can be recognized.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(kernel.NewUUID(), orderID, driverID, vehicleID, userID, "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	orderID     kernel.UUID
	driverID    kernel.UUID
	vehicleID   kernel.UUID
	requestedBy string
	notes       string

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(
	deliveryID, orderID, driverID, vehicleID kernel.UUID,
	requestedBy, notes string,
) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{guard: guard.NewConstructorGuard()}

	var requestedByErr, notesErr error
	cmd.requestedBy, requestedByErr = requireText("requestingUserId", requestedBy)
	cmd.notes, notesErr = optionalNote("notes", notes)

	if err := errors.Join(
		requireID("deliveryId", deliveryID),
		requireID("orderId", orderID),
		requireID("driverId", driverID),
		requireID("vehicleId", vehicleID),
		requestedByErr,
		notesErr,
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	cmd.deliveryID, cmd.orderID, cmd.driverID, cmd.vehicleID = deliveryID, orderID, driverID, vehicleID
	return cmd, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c AssignDeliveryCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c AssignDeliveryCommand) RequestedBy() string {
	return c.requestedBy
}

func (c AssignDeliveryCommand) Notes() string {
	return c.notes
}
