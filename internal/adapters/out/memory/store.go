// Package memory is an in-process implementation of the dispatch ports.
//
// A unit of work holds the store's write lock from Begin until Commit or
// Rollback, so transactions are serialized. Writes are staged and applied on
// Commit. Aggregates are copied on the way in and out, so callers never share
// state with the store.
package memory

import (
	"sync"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

type Store struct {
	mu         sync.RWMutex
	orders     map[kernel.UUID]*order.Order
	drivers    map[kernel.UUID]*driver.Driver
	vehicles   map[kernel.UUID]*vehicle.Vehicle
	deliveries map[kernel.UUID]*delivery.Delivery
	outbox     []*outboxMessage
}

type outboxMessage struct {
	event       event.Event
	processedAt *time.Time
	attempts    int
	lastError   string
	claimed     bool
}

func NewStore() *Store {
	return &Store{
		orders:     make(map[kernel.UUID]*order.Order),
		drivers:    make(map[kernel.UUID]*driver.Driver),
		vehicles:   make(map[kernel.UUID]*vehicle.Vehicle),
		deliveries: make(map[kernel.UUID]*delivery.Delivery),
	}
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(),
		o.Code(),
		o.CustomerName(),
		o.Address(),
		o.Items(),
		o.Priority(),
		o.Center(),
		o.Status(),
		o.CreatedAt(),
		o.UpdatedAt(),
		copyTime(o.CompletedAt()),
	)
}

func cloneDriver(d *driver.Driver) (*driver.Driver, error) {
	return driver.RestoreDriver(
		d.ID(),
		d.Name(),
		d.Email(),
		d.Phone(),
		d.Center(),
		d.ApprovalStatus(),
		d.ActiveStatus(),
		d.CreatedAt(),
	)
}

func cloneVehicle(v *vehicle.Vehicle) (*vehicle.Vehicle, error) {
	return vehicle.RestoreVehicle(
		v.ID(),
		v.Plate(),
		v.Model(),
		v.CapacityKg(),
		v.Center(),
		v.ActiveStatus(),
		v.CreatedAt(),
	)
}

func cloneDelivery(d *delivery.Delivery) (*delivery.Delivery, error) {
	proof := d.Proof()
	return delivery.RestoreDelivery(delivery.State{
		ID:                d.ID(),
		OrderID:           d.OrderID(),
		DriverID:          d.DriverID(),
		VehicleID:         d.VehicleID(),
		Center:            d.Center(),
		Status:            d.Status(),
		AssignedBy:        d.AssignedBy(),
		AssignedAt:        d.AssignedAt(),
		CompletedAt:       copyTime(d.CompletedAt()),
		UpdatedAt:         d.UpdatedAt(),
		Notes:             d.Notes(),
		Timeline:          d.Timeline(),
		LastKnownPosition: d.LastKnownPosition(),
		Verified:          d.IsVerified(),
		Proof:             delivery.RestoreProof(proof.PhotoURL(), proof.SignatureURL(), copyTime(proof.Timestamp())),
	})
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
