package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRecordPositionCommandIsNotConstructed = errors.New(
	"RecordPositionCommand must be created via NewRecordPositionCommand constructor",
)

// RecordPositionCommand reports where the vehicle of a delivery is. A zero
// reportedAt means "now".
type RecordPositionCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	position   delivery.Position

	guard guard.ConstructorGuard
}

func NewRecordPositionCommand(
	deliveryID kernel.UUID,
	lat, lng float64,
	speed, heading *float64,
	reportedAt time.Time,
) (RecordPositionCommand, error) {
	if reportedAt.IsZero() {
		reportedAt = time.Now()
	}

	var position delivery.Position
	point, err := kernel.NewGeoPoint(lat, lng)
	if err == nil {
		position, err = delivery.NewPosition(point, speed, heading, reportedAt)
	}

	if err = errors.Join(requireID("deliveryId", deliveryID), err); err != nil {
		return RecordPositionCommand{}, err
	}

	return RecordPositionCommand{
		deliveryID: deliveryID,
		position:   position,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPositionCommand) Validate() error {
	return c.guard.Validate(ErrRecordPositionCommandIsNotConstructed)
}

func (c RecordPositionCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c RecordPositionCommand) Position() delivery.Position {
	return c.position
}
