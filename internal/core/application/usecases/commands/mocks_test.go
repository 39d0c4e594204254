package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCodeForUpdate(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) ActiveForDriver(ctx context.Context, id kernel.UUID) (*kernel.UUID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.UUID), args.Error(1)
}

func (m *MockDeliveryRepository) ActiveForVehicle(ctx context.Context, id kernel.UUID) (*kernel.UUID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.UUID), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, events ...event.Event) error {
	return m.Called(ctx, events).Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockProofStorage struct{ mock.Mock }

func (m *MockProofStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}

// fixture wires one MockUoW to fresh repository mocks. Repository accessors
// may be called any number of times; transaction calls are set per test.
type fixture struct {
	orders     *MockOrderRepository
	drivers    *MockDriverRepository
	vehicles   *MockVehicleRepository
	deliveries *MockDeliveryRepository
	outbox     *MockOutboxRepository
	uow        *MockUoW
	factory    *MockUoWFactory
}

func newFixture() *fixture {
	f := &fixture{
		orders:     new(MockOrderRepository),
		drivers:    new(MockDriverRepository),
		vehicles:   new(MockVehicleRepository),
		deliveries: new(MockDeliveryRepository),
		outbox:     new(MockOutboxRepository),
		uow:        new(MockUoW),
		factory:    new(MockUoWFactory),
	}
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("DriverRepository").Return(f.drivers).Maybe()
	f.uow.On("VehicleRepository").Return(f.vehicles).Maybe()
	f.uow.On("DeliveryRepository").Return(f.deliveries).Maybe()
	f.uow.On("OutboxRepository").Return(f.outbox).Maybe()
	f.factory.On("Create").Return(f.uow).Maybe()
	return f
}

// expectTx expects Begin, an optional Commit and the deferred Rollback.
func (f *fixture) expectTx(commit bool) {
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		f.uow.On("Commit", mock.Anything).Return(nil).Once()
	}
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.drivers.AssertExpectations(t)
	f.vehicles.AssertExpectations(t)
	f.deliveries.AssertExpectations(t)
	f.outbox.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func eventOfType(t event.Type) any {
	return mock.MatchedBy(func(events []event.Event) bool {
		return len(events) == 1 && events[0].Type() == t
	})
}

var fixtureTime = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func testOrder(t *testing.T, center kernel.Center, ready bool) *order.Order {
	t.Helper()
	item, err := order.NewItem("SKU-1", 1, 990)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-100", "Ada", "1 Main St",
		[]order.Item{item}, order.PriorityNormal, center, fixtureTime)
	require.NoError(t, err)
	if ready {
		require.NoError(t, o.MarkReadyForDispatch(fixtureTime))
	}
	return o
}

func testDriver(t *testing.T, center kernel.Center, approved bool) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "D1", "", "", center, fixtureTime)
	require.NoError(t, err)
	if approved {
		_, err = d.SetApproval(driver.ApprovalApproved)
		require.NoError(t, err)
	}
	return d
}

func testVehicle(t *testing.T, center kernel.Center) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "V1", "Van", 0, center, fixtureTime)
	require.NoError(t, err)
	return v
}

// testDelivery returns an Assigned delivery and its Assigned order.
func testDelivery(t *testing.T) (*delivery.Delivery, *order.Order) {
	t.Helper()
	o := testOrder(t, kernel.CenterNorth, true)
	require.NoError(t, o.Assign(fixtureTime))
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), kernel.NewUUID(), kernel.NewUUID(),
		o.Center(), "officer-1", "", fixtureTime)
	require.NoError(t, err)
	return d, o
}
