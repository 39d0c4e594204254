package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// DriverFilter narrows ListDrivers. Nil fields do not filter.
type DriverFilter struct {
	Center         *kernel.Center
	ApprovalStatus *driver.ApprovalStatus
	ActiveStatus   *kernel.ActiveStatus
	Search         string
}

type VehicleFilter struct {
	Center       *kernel.Center
	ActiveStatus *kernel.ActiveStatus
	Search       string
}

// ReadyOrderFilter narrows the dispatch queue. From and To bound created-at.
type ReadyOrderFilter struct {
	Center   *kernel.Center
	Priority *order.Priority
	From     *time.Time
	To       *time.Time
	Search   string
}

// DeliveryFilter selects one page of deliveries. StartDate and EndDate bound
// assigned-at.
type DeliveryFilter struct {
	Page      int
	Limit     int
	Center    *kernel.Center
	Status    *delivery.Status
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
}

// DirectoryReader answers resource and availability lookups.
type DirectoryReader interface {
	ListDrivers(ctx context.Context, filter DriverFilter) ([]DriverView, error)
	ListVehicles(ctx context.Context, filter VehicleFilter) ([]VehicleView, error)
	// AvailableDrivers returns eligible drivers of center that are not bound
	// to a non-terminal delivery, ordered by name.
	AvailableDrivers(ctx context.Context, center kernel.Center) ([]DriverView, error)
	// AvailableVehicles returns active vehicles of center that are not bound
	// to a non-terminal delivery, ordered by plate.
	AvailableVehicles(ctx context.Context, center kernel.Center) ([]VehicleView, error)
}

type OrderReader interface {
	// ListReadyForDispatch orders by priority (High first) then created-at ascending.
	ListReadyForDispatch(ctx context.Context, filter ReadyOrderFilter) ([]OrderView, error)
	GetOrder(ctx context.Context, id kernel.UUID) (OrderView, error)
}

type DeliveryReader interface {
	// ListDeliveries orders by assigned-at descending.
	ListDeliveries(ctx context.Context, filter DeliveryFilter) (DeliveryPage, error)
	GetDelivery(ctx context.Context, id kernel.UUID) (DeliveryView, error)
	// GetTimeline returns the events ordered by sequence.
	GetTimeline(ctx context.Context, id kernel.UUID) ([]TimelineEventView, error)
	// ListStale returns non-terminal deliveries whose last timeline event is
	// older than before.
	ListStale(ctx context.Context, before time.Time) ([]StaleDeliveryView, error)
}

// Reader is implemented by every storage adapter.
type Reader interface {
	DirectoryReader
	OrderReader
	DeliveryReader
}
