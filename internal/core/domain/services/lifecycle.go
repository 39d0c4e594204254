package services

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// Lifecycle advances a delivery and keeps its order in step:
//   - PickedUp or InTransit moves the order to InTransit
//   - Delivered moves the order to Delivered
//   - Failed moves the order to Failed
type Lifecycle struct{}

func NewLifecycle() Lifecycle {
	return Lifecycle{}
}

// Advance applies next to d and propagates it to o. On error either aggregate
// may be partially changed; callers discard both by rolling back.
func (Lifecycle) Advance(
	d *delivery.Delivery,
	o *order.Order,
	next delivery.Status,
	note string,
	location *kernel.GeoPoint,
	now time.Time,
) error {
	if err := d.AdvanceStatus(next, note, location, now); err != nil {
		return err
	}

	switch next {
	case delivery.PickedUp, delivery.InTransit:
		return o.StartTransit(now)
	case delivery.Delivered:
		return o.Deliver(now)
	case delivery.Failed:
		return o.Fail(now)
	default:
		return nil
	}
}
