package readmodel

import (
	"time"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const deliveryColumns = `deliveries.*,
	o.code AS order_code, o.customer_name AS order_customer_name, o.address AS order_address,
	o.priority AS order_priority, o.status AS order_status,
	dr.name AS driver_name, dr.phone AS driver_phone,
	v.plate AS vehicle_plate, v.model AS vehicle_model`

// deliveryRow is a deliveries row joined with its order, driver and vehicle.
type deliveryRow struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	DriverID          uuid.UUID
	VehicleID         uuid.UUID
	Center            string
	Status            int
	AssignedBy        string
	AssignedAt        time.Time
	CompletedAt       *time.Time
	UpdatedAt         time.Time
	Notes             string
	Verified          bool
	ProofPhotoURL     string
	ProofSignatureURL string
	ProofAt           *time.Time
	PositionLat       *float64
	PositionLng       *float64
	PositionSpeed     *float64
	PositionHeading   *float64
	PositionAt        *time.Time

	OrderCode         string
	OrderCustomerName string
	OrderAddress      string
	OrderPriority     string
	OrderStatus       int
	DriverName        string
	DriverPhone       string
	VehiclePlate      string
	VehicleModel      string
}

func (row deliveryRow) view() queries.DeliveryView {
	view := queries.DeliveryView{
		ID:             idOf(row.ID[:]),
		Center:         row.Center,
		Status:         delivery.Status(row.Status).String(),
		AssignedBy:     row.AssignedBy,
		AssignedAt:     row.AssignedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
		CompletedAt:    utcPtr(row.CompletedAt),
		Notes:          row.Notes,
		Verified:       row.Verified,
		PhotoURL:       row.ProofPhotoURL,
		SignatureURL:   row.ProofSignatureURL,
		ProofTimestamp: utcPtr(row.ProofAt),
		Order: queries.OrderSummary{
			ID:           idOf(row.OrderID[:]),
			Code:         row.OrderCode,
			CustomerName: row.OrderCustomerName,
			Address:      row.OrderAddress,
			Priority:     row.OrderPriority,
			Status:       order.Status(row.OrderStatus).String(),
		},
		Driver: queries.DriverSummary{
			ID:    idOf(row.DriverID[:]),
			Name:  row.DriverName,
			Phone: row.DriverPhone,
		},
		Vehicle: queries.VehicleSummary{
			ID:    idOf(row.VehicleID[:]),
			Plate: row.VehiclePlate,
			Model: row.VehicleModel,
		},
	}

	if row.PositionLat != nil && row.PositionLng != nil && row.PositionAt != nil {
		view.LastKnownPosition = &queries.PositionView{
			Lat:       *row.PositionLat,
			Lng:       *row.PositionLng,
			Speed:     row.PositionSpeed,
			Heading:   row.PositionHeading,
			Timestamp: row.PositionAt.UTC(),
		}
	}
	return view
}

func driverViews(rows []driverrepo.DriverDTO) []queries.DriverView {
	views := make([]queries.DriverView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.DriverView{
			ID:             idOf(row.ID[:]),
			Name:           row.Name,
			Email:          row.Email,
			Phone:          row.Phone,
			Center:         row.Center,
			ApprovalStatus: row.ApprovalStatus,
			ActiveStatus:   row.ActiveStatus,
			CreatedAt:      row.CreatedAt.UTC(),
		})
	}
	return views
}

func vehicleViews(rows []vehiclerepo.VehicleDTO) []queries.VehicleView {
	views := make([]queries.VehicleView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.VehicleView{
			ID:           idOf(row.ID[:]),
			Plate:        row.Plate,
			Model:        row.Model,
			CapacityKg:   row.CapacityKg,
			Center:       row.Center,
			ActiveStatus: row.ActiveStatus,
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return views
}

func orderView(row orderrepo.OrderDTO) queries.OrderView {
	items := make([]queries.OrderItemView, 0, len(row.Items))
	var total int64
	for _, item := range row.Items {
		subtotal := int64(item.Quantity) * item.UnitPriceMinor
		total += subtotal
		items = append(items, queries.OrderItemView{
			ProductRef:     item.ProductRef,
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
			SubtotalMinor:  subtotal,
		})
	}

	return queries.OrderView{
		ID:           idOf(row.ID[:]),
		Code:         row.Code,
		CustomerName: row.CustomerName,
		Address:      row.Address,
		Items:        items,
		TotalMinor:   total,
		Priority:     row.Priority,
		Center:       row.Center,
		Status:       order.Status(row.Status).String(),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
		CompletedAt:  utcPtr(row.CompletedAt),
	}
}

// idOf converts a stored uuid column; the columns are never nil UUIDs.
func idOf(b []byte) kernel.UUID {
	id, err := kernel.UUIDFromBytes(b)
	if err != nil {
		return kernel.UUID{}
	}
	return id
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
