package memory

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit without a preceding Begin.
var ErrNoTransaction = errors.New("no transaction in progress")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork. Repositories used before Begin
// apply each call immediately.
type UnitOfWork struct {
	store *Store
	tx    *txn
}

// Begin blocks until no other unit of work is open.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	if err := ctx.Err(); err != nil {
		u.store.mu.Unlock()
		return err
	}
	u.tx = newTxn(u.store)
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	u.tx.apply()
	u.tx = nil
	u.store.mu.Unlock()
	return nil
}

// Rollback discards staged writes. Without an open transaction it is a no-op.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}
	u.tx = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderRepository{uow: u}
}

func (u *UnitOfWork) DriverRepository() ports.DriverRepository {
	return driverRepository{uow: u}
}

func (u *UnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehicleRepository{uow: u}
}

func (u *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryRepository{uow: u}
}

func (u *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxRepository{uow: u}
}

// do runs fn inside the open transaction, or inside a single-call
// transaction that is applied when fn succeeds.
func (u *UnitOfWork) do(ctx context.Context, fn func(t *txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.tx != nil {
		return fn(u.tx)
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	t := newTxn(u.store)
	if err := fn(t); err != nil {
		return err
	}
	t.apply()
	return nil
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(t *txn) error {
		if _, exists := t.order(aggregate.ID()); exists {
			return errs.NewStoreFailureError("insert order", errors.New("duplicate id"))
		}
		if err := t.checkOrderCode(aggregate); err != nil {
			return err
		}
		stored, err := cloneOrder(aggregate)
		if err != nil {
			return err
		}
		t.orders[aggregate.ID()] = stored
		return nil
	})
}

func (r orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(t *txn) error {
		if _, exists := t.order(aggregate.ID()); !exists {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		stored, err := cloneOrder(aggregate)
		if err != nil {
			return err
		}
		t.orders[aggregate.ID()] = stored
		return nil
	})
}

func (r orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var found *order.Order
	err := r.uow.do(ctx, func(t *txn) error {
		o, ok := t.order(id)
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		var err error
		found, err = cloneOrder(o)
		return err
	})
	return found, err
}

// GetForUpdate is Get; the unit of work already serializes writers.
func (r orderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r orderRepository) GetByCodeForUpdate(ctx context.Context, code string) (*order.Order, error) {
	var found *order.Order
	err := r.uow.do(ctx, func(t *txn) error {
		var match *order.Order
		t.eachOrder(func(o *order.Order) {
			if o.Code() == code {
				match = o
			}
		})
		if match == nil {
			return errs.NewObjectNotFoundError("order", code)
		}
		var err error
		found, err = cloneOrder(match)
		return err
	})
	return found, err
}

type driverRepository struct {
	uow *UnitOfWork
}

func (r driverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	return r.save(ctx, aggregate, true)
}

func (r driverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	return r.save(ctx, aggregate, false)
}

func (r driverRepository) save(ctx context.Context, aggregate *driver.Driver, insert bool) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(t *txn) error {
		_, exists := t.driver(aggregate.ID())
		if insert && exists {
			return errs.NewStoreFailureError("insert driver", errors.New("duplicate id"))
		}
		if !insert && !exists {
			return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
		}
		stored, err := cloneDriver(aggregate)
		if err != nil {
			return err
		}
		t.drivers[aggregate.ID()] = stored
		return nil
	})
}

func (r driverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	var found *driver.Driver
	err := r.uow.do(ctx, func(t *txn) error {
		d, ok := t.driver(id)
		if !ok {
			return errs.NewObjectNotFoundError("driver", id.String())
		}
		var err error
		found, err = cloneDriver(d)
		return err
	})
	return found, err
}

type vehicleRepository struct {
	uow *UnitOfWork
}

func (r vehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	return r.save(ctx, aggregate, true)
}

func (r vehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	return r.save(ctx, aggregate, false)
}

func (r vehicleRepository) save(ctx context.Context, aggregate *vehicle.Vehicle, insert bool) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(t *txn) error {
		_, exists := t.vehicle(aggregate.ID())
		if insert && exists {
			return errs.NewStoreFailureError("insert vehicle", errors.New("duplicate id"))
		}
		if !insert && !exists {
			return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
		}
		stored, err := cloneVehicle(aggregate)
		if err != nil {
			return err
		}
		t.vehicles[aggregate.ID()] = stored
		return nil
	})
}

func (r vehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	var found *vehicle.Vehicle
	err := r.uow.do(ctx, func(t *txn) error {
		v, ok := t.vehicle(id)
		if !ok {
			return errs.NewObjectNotFoundError("vehicle", id.String())
		}
		var err error
		found, err = cloneVehicle(v)
		return err
	})
	return found, err
}

type deliveryRepository struct {
	uow *UnitOfWork
}

func (r deliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	return r.save(ctx, aggregate, true)
}

// Update replaces the stored delivery. The aggregate only ever appends to
// its timeline, so stored events are preserved.
func (r deliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	return r.save(ctx, aggregate, false)
}

func (r deliveryRepository) save(ctx context.Context, aggregate *delivery.Delivery, insert bool) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(t *txn) error {
		_, exists := t.delivery(aggregate.ID())
		if insert && exists {
			return errs.NewStoreFailureError("insert delivery", errors.New("duplicate id"))
		}
		if !insert && !exists {
			return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
		}
		if err := t.checkActiveUniqueness(aggregate); err != nil {
			return err
		}
		stored, err := cloneDelivery(aggregate)
		if err != nil {
			return err
		}
		t.deliveries[aggregate.ID()] = stored
		return nil
	})
}

func (r deliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	var found *delivery.Delivery
	err := r.uow.do(ctx, func(t *txn) error {
		d, ok := t.delivery(id)
		if !ok {
			return errs.NewObjectNotFoundError("delivery", id.String())
		}
		var err error
		found, err = cloneDelivery(d)
		return err
	})
	return found, err
}

func (r deliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.Get(ctx, id)
}

func (r deliveryRepository) ActiveForDriver(ctx context.Context, driverID kernel.UUID) (*kernel.UUID, error) {
	return r.active(ctx, func(d *delivery.Delivery) bool { return d.DriverID().IsEqual(driverID) })
}

func (r deliveryRepository) ActiveForVehicle(ctx context.Context, vehicleID kernel.UUID) (*kernel.UUID, error) {
	return r.active(ctx, func(d *delivery.Delivery) bool { return d.VehicleID().IsEqual(vehicleID) })
}

func (r deliveryRepository) active(ctx context.Context, match func(d *delivery.Delivery) bool) (*kernel.UUID, error) {
	var found *kernel.UUID
	err := r.uow.do(ctx, func(t *txn) error {
		t.eachDelivery(func(d *delivery.Delivery) {
			if found == nil && !d.Status().IsTerminal() && match(d) {
				id := d.ID()
				found = &id
			}
		})
		return nil
	})
	return found, err
}

type outboxRepository struct {
	uow *UnitOfWork
}

func (r outboxRepository) Add(ctx context.Context, events ...event.Event) error {
	if len(events) == 0 {
		return nil
	}
	return r.uow.do(ctx, func(t *txn) error {
		t.outbox = append(t.outbox, events...)
		return nil
	})
}
