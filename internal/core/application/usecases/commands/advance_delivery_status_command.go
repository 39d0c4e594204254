package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand moves a delivery along its lifecycle. The status
// is parsed from its name, so "OnTheWay" arrives as InTransit.
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	status      delivery.Status
	note        string
	location    *kernel.GeoPoint
	requestedBy string

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryStatusCommand(
	deliveryID kernel.UUID,
	status string,
	note string,
	location *kernel.GeoPoint,
	requestedBy string,
) (AdvanceDeliveryStatusCommand, error) {
	cmd := AdvanceDeliveryStatusCommand{location: location, guard: guard.NewConstructorGuard()}

	var statusErr, noteErr, requestedByErr, locationErr error
	cmd.status, statusErr = delivery.ParseStatus(status)
	cmd.note, noteErr = optionalNote("note", note)
	cmd.requestedBy, requestedByErr = requireText("requestingUserId", requestedBy)
	if location != nil {
		locationErr = location.Validate()
	}

	if err := errors.Join(requireID("deliveryId", deliveryID), statusErr, noteErr, requestedByErr, locationErr); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	cmd.deliveryID = deliveryID
	return cmd, nil
}

func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

func (c AdvanceDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AdvanceDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c AdvanceDeliveryStatusCommand) Note() string {
	return c.note
}

func (c AdvanceDeliveryStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c AdvanceDeliveryStatusCommand) RequestedBy() string {
	return c.requestedBy
}
