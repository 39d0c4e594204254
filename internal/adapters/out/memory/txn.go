package memory

import (
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// txn stages writes over the store. The caller holds the store's write lock
// for the whole lifetime of a txn.
type txn struct {
	store      *Store
	orders     map[kernel.UUID]*order.Order
	drivers    map[kernel.UUID]*driver.Driver
	vehicles   map[kernel.UUID]*vehicle.Vehicle
	deliveries map[kernel.UUID]*delivery.Delivery
	outbox     []event.Event
}

func newTxn(store *Store) *txn {
	return &txn{
		store:      store,
		orders:     make(map[kernel.UUID]*order.Order),
		drivers:    make(map[kernel.UUID]*driver.Driver),
		vehicles:   make(map[kernel.UUID]*vehicle.Vehicle),
		deliveries: make(map[kernel.UUID]*delivery.Delivery),
	}
}

// apply publishes the staged writes to the store.
func (t *txn) apply() {
	for id, o := range t.orders {
		t.store.orders[id] = o
	}
	for id, d := range t.drivers {
		t.store.drivers[id] = d
	}
	for id, v := range t.vehicles {
		t.store.vehicles[id] = v
	}
	for id, d := range t.deliveries {
		t.store.deliveries[id] = d
	}
	for _, e := range t.outbox {
		t.store.outbox = append(t.store.outbox, &outboxMessage{event: e})
	}
}

func (t *txn) order(id kernel.UUID) (*order.Order, bool) {
	if o, ok := t.orders[id]; ok {
		return o, true
	}
	o, ok := t.store.orders[id]
	return o, ok
}

func (t *txn) driver(id kernel.UUID) (*driver.Driver, bool) {
	if d, ok := t.drivers[id]; ok {
		return d, true
	}
	d, ok := t.store.drivers[id]
	return d, ok
}

func (t *txn) vehicle(id kernel.UUID) (*vehicle.Vehicle, bool) {
	if v, ok := t.vehicles[id]; ok {
		return v, true
	}
	v, ok := t.store.vehicles[id]
	return v, ok
}

func (t *txn) delivery(id kernel.UUID) (*delivery.Delivery, bool) {
	if d, ok := t.deliveries[id]; ok {
		return d, true
	}
	d, ok := t.store.deliveries[id]
	return d, ok
}

// eachDelivery visits the staged version of every delivery.
func (t *txn) eachDelivery(fn func(d *delivery.Delivery)) {
	for _, d := range t.deliveries {
		fn(d)
	}
	for id, d := range t.store.deliveries {
		if _, staged := t.deliveries[id]; !staged {
			fn(d)
		}
	}
}

func (t *txn) eachOrder(fn func(o *order.Order)) {
	for _, o := range t.orders {
		fn(o)
	}
	for id, o := range t.store.orders {
		if _, staged := t.orders[id]; !staged {
			fn(o)
		}
	}
}

func (t *txn) checkOrderCode(o *order.Order) error {
	var clash bool
	t.eachOrder(func(other *order.Order) {
		if other.Code() == o.Code() && !other.ID().IsEqual(o.ID()) {
			clash = true
		}
	})
	if clash {
		return errs.NewConflictError(services.ErrDuplicateOrderCode, "order", o.Code())
	}
	return nil
}

// checkActiveUniqueness mirrors the partial unique indexes of the SQL store:
// one non-terminal delivery per driver, vehicle and order.
func (t *txn) checkActiveUniqueness(d *delivery.Delivery) error {
	if d.Status().IsTerminal() {
		return nil
	}

	var conflict error
	t.eachDelivery(func(other *delivery.Delivery) {
		if conflict != nil || other.ID().IsEqual(d.ID()) || other.Status().IsTerminal() {
			return
		}
		switch {
		case other.DriverID().IsEqual(d.DriverID()):
			conflict = activeConflict("driver", d.DriverID(), other.ID())
		case other.VehicleID().IsEqual(d.VehicleID()):
			conflict = activeConflict("vehicle", d.VehicleID(), other.ID())
		case other.OrderID().IsEqual(d.OrderID()):
			conflict = activeConflict("order", d.OrderID(), other.ID())
		}
	})
	return conflict
}

func activeConflict(resource string, id, boundTo kernel.UUID) error {
	return errs.NewConflictErrorWithDetail(services.ErrResourceAlreadyAssigned, resource, id.String(),
		fmt.Sprintf("bound to delivery %s", boundTo))
}
