// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories bound to a unit of work, the outbox, the event
// publisher and proof storage.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// OrderRepository persists order aggregates.
// Get methods return errs.ObjectNotFoundError for unknown orders.
type OrderRepository interface {
	// Add persists a new order. A duplicate code is reported as a conflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads the order and locks it until the unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCodeForUpdate resolves an order by its business code and locks it.
	GetByCodeForUpdate(ctx context.Context, code string) (*order.Order, error)
}

type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}

type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}

// DeliveryRepository persists delivery aggregates with their timelines.
//
// The store guarantees that at most one non-terminal delivery references a
// given driver, vehicle or order. Add and Update report a violation as an
// errs.ConflictError with services.ErrResourceAlreadyAssigned, either
// immediately or when the unit of work commits.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists status, position, proof and verification, and appends
	// timeline events that are not stored yet. Stored events are never rewritten.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate serializes concurrent mutations of one delivery.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// ActiveForDriver returns the id of the non-terminal delivery bound to the
	// driver, or nil when the driver is free.
	ActiveForDriver(ctx context.Context, driverID kernel.UUID) (*kernel.UUID, error)

	// ActiveForVehicle is ActiveForDriver for vehicles.
	ActiveForVehicle(ctx context.Context, vehicleID kernel.UUID) (*kernel.UUID, error)
}

// OutboxRepository stores events in the same transaction as the aggregates
// that produced them.
type OutboxRepository interface {
	Add(ctx context.Context, events ...event.Event) error
}
