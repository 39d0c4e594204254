package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
	ErrGetTimelineQueryIsNotConstructed = errors.New(
		"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
	)
)

type GetDeliveryQuery struct {
	deliveryID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := requireID("deliveryId", deliveryID); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetTimelineQuery reads the append-only timeline of one delivery.
type GetTimelineQuery struct {
	deliveryID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetTimelineQuery(deliveryID kernel.UUID) (GetTimelineQuery, error) {
	if err := requireID("deliveryId", deliveryID); err != nil {
		return GetTimelineQuery{}, err
	}
	return GetTimelineQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

func (q GetTimelineQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
