package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type uowFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.factory.Create()
}

func newOrder(t *testing.T, code string, center kernel.Center, priority order.Priority, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewItem("SKU-1", 1, 500)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), code, "Jane Customer", "1 Main St", []order.Item{item},
		priority, center, createdAt)
	require.NoError(t, err)
	require.NoError(t, o.MarkReadyForDispatch(createdAt))
	return o
}

func newDriver(t *testing.T, name string, center kernel.Center) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), name, fmt.Sprintf("%s@example.com", kernel.NewUUID().String()[:8]),
		"+15550100", center, epoch)
	require.NoError(t, err)
	_, err = d.SetApproval(driver.ApprovalApproved)
	require.NoError(t, err)
	return d
}

func newVehicle(t *testing.T, plate string, center kernel.Center) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), plate, "Cargo Bike", 40, center, epoch)
	require.NoError(t, err)
	return v
}

func save(t *testing.T, factory ports.UnitOfWorkFactory, aggregates ...any) {
	t.Helper()
	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, a := range aggregates {
		switch v := a.(type) {
		case *order.Order:
			require.NoError(t, uow.OrderRepository().Add(ctx, v))
		case *driver.Driver:
			require.NoError(t, uow.DriverRepository().Add(ctx, v))
		case *vehicle.Vehicle:
			require.NoError(t, uow.VehicleRepository().Add(ctx, v))
		default:
			t.Fatalf("unsupported aggregate %T", a)
		}
	}
	require.NoError(t, uow.Commit(ctx))
}

func newFactory() (*memory.Store, *memory.UnitOfWorkFactory) {
	store := memory.NewStore()
	return store, memory.NewUnitOfWorkFactory(store)
}
