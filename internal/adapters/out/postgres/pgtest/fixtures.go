package pgtest

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"
)

// Epoch is the creation time used by the fixture builders.
var Epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// Order builds an order of center; ready orders are already ReadyForDispatch.
func Order(code string, center kernel.Center, priority order.Priority, createdAt time.Time, ready bool) *order.Order {
	item, err := order.NewItem("SKU-1", 2, 1250)
	must(err)
	o, err := order.NewOrder(kernel.NewUUID(), code, "Jane Customer", "1 Main St", []order.Item{item},
		priority, center, createdAt)
	must(err)
	if ready {
		must(o.MarkReadyForDispatch(createdAt))
	}
	return o
}

// Driver builds an active driver of center; approved drivers are eligible.
func Driver(name string, center kernel.Center, approved bool) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), name, fmt.Sprintf("%s@example.com", kernel.NewUUID().String()[:8]),
		"+15550100", center, Epoch)
	must(err)
	if approved {
		_, err = d.SetApproval(driver.ApprovalApproved)
		must(err)
	}
	return d
}

func Vehicle(plate string, center kernel.Center) *vehicle.Vehicle {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), plate, "Ford Transit", 900, center, Epoch)
	must(err)
	return v
}

// Save stores the aggregates in one unit of work.
func Save(ctx context.Context, factory ports.UnitOfWorkFactory, aggregates ...any) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	for _, a := range aggregates {
		var err error
		switch v := a.(type) {
		case *order.Order:
			err = uow.OrderRepository().Add(ctx, v)
		case *driver.Driver:
			err = uow.DriverRepository().Add(ctx, v)
		case *vehicle.Vehicle:
			err = uow.VehicleRepository().Add(ctx, v)
		default:
			err = fmt.Errorf("unsupported aggregate %T", a)
		}
		if err != nil {
			return err
		}
	}
	return uow.Commit(ctx)
}

// UoWFactory adapts a ports factory to the command handlers.
type UoWFactory struct {
	Factory ports.UnitOfWorkFactory
}

func (f UoWFactory) Create() commands.UoW {
	return f.Factory.Create()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
