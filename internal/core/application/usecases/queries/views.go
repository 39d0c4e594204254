package queries

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// DriverView is the read model of a driver.
type DriverView struct {
	ID             kernel.UUID
	Name           string
	Email          string
	Phone          string
	Center         string
	ApprovalStatus string
	ActiveStatus   string
	CreatedAt      time.Time
}

// VehicleView is the read model of a vehicle.
type VehicleView struct {
	ID           kernel.UUID
	Plate        string
	Model        string
	CapacityKg   int
	Center       string
	ActiveStatus string
	CreatedAt    time.Time
}

type OrderItemView struct {
	ProductRef     string
	Quantity       int
	UnitPriceMinor int64
	SubtotalMinor  int64
}

// OrderView is the read model of an order. TotalMinor is always computed from
// the items.
type OrderView struct {
	ID           kernel.UUID
	Code         string
	CustomerName string
	Address      string
	Items        []OrderItemView
	TotalMinor   int64
	Priority     string
	Center       string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
}

type LocationView struct {
	Lat float64
	Lng float64
}

type PositionView struct {
	Lat       float64
	Lng       float64
	Speed     *float64
	Heading   *float64
	Timestamp time.Time
}

// TimelineEventView is one entry of a delivery timeline. Kind is either
// StatusChanged or PositionSampled.
type TimelineEventView struct {
	Sequence  int
	Kind      string
	Status    string
	Timestamp time.Time
	Note      string
	Location  *LocationView
}

type OrderSummary struct {
	ID           kernel.UUID
	Code         string
	CustomerName string
	Address      string
	Priority     string
	Status       string
}

type DriverSummary struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

type VehicleSummary struct {
	ID    kernel.UUID
	Plate string
	Model string
}

// DeliveryView embeds summaries of the order, driver and vehicle the
// delivery binds.
type DeliveryView struct {
	ID                kernel.UUID
	Center            string
	Status            string
	AssignedBy        string
	AssignedAt        time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
	Notes             string
	Verified          bool
	PhotoURL          string
	SignatureURL      string
	ProofTimestamp    *time.Time
	LastKnownPosition *PositionView
	Order             OrderSummary
	Driver            DriverSummary
	Vehicle           VehicleSummary
}

// DeliveryPage is one page of ListDeliveries. Pages is the page count for
// the filter at the requested limit.
type DeliveryPage struct {
	Data  []DeliveryView
	Total int64
	Page  int
	Limit int
	Pages int
}

// StaleDeliveryView is a non-terminal delivery without recent timeline activity.
type StaleDeliveryView struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	DriverID       kernel.UUID
	Center         string
	Status         string
	LastActivityAt time.Time
}

// PageCount returns the number of pages needed for total rows.
func PageCount(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
