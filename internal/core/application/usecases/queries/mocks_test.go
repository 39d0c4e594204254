package queries_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockReader struct{ mock.Mock }

var _ queries.Reader = (*MockReader)(nil)

func (m *MockReader) ListDrivers(ctx context.Context, filter queries.DriverFilter) ([]queries.DriverView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.DriverView), args.Error(1)
}

func (m *MockReader) ListVehicles(ctx context.Context, filter queries.VehicleFilter) ([]queries.VehicleView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.VehicleView), args.Error(1)
}

func (m *MockReader) AvailableDrivers(ctx context.Context, center kernel.Center) ([]queries.DriverView, error) {
	args := m.Called(ctx, center)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.DriverView), args.Error(1)
}

func (m *MockReader) AvailableVehicles(ctx context.Context, center kernel.Center) ([]queries.VehicleView, error) {
	args := m.Called(ctx, center)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.VehicleView), args.Error(1)
}

func (m *MockReader) ListReadyForDispatch(ctx context.Context, filter queries.ReadyOrderFilter) ([]queries.OrderView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

func (m *MockReader) GetOrder(ctx context.Context, id kernel.UUID) (queries.OrderView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

func (m *MockReader) ListDeliveries(ctx context.Context, filter queries.DeliveryFilter) (queries.DeliveryPage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(queries.DeliveryPage), args.Error(1)
}

func (m *MockReader) GetDelivery(ctx context.Context, id kernel.UUID) (queries.DeliveryView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(queries.DeliveryView), args.Error(1)
}

func (m *MockReader) GetTimeline(ctx context.Context, id kernel.UUID) ([]queries.TimelineEventView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.TimelineEventView), args.Error(1)
}

func (m *MockReader) ListStale(ctx context.Context, before time.Time) ([]queries.StaleDeliveryView, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.StaleDeliveryView), args.Error(1)
}
