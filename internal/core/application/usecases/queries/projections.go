package queries

import (
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// Projections from aggregates, for readers that hold the aggregates in memory.

func DriverViewOf(d *driver.Driver) DriverView {
	return DriverView{
		ID:             d.ID(),
		Name:           d.Name(),
		Email:          d.Email(),
		Phone:          d.Phone(),
		Center:         d.Center().String(),
		ApprovalStatus: d.ApprovalStatus().String(),
		ActiveStatus:   d.ActiveStatus().String(),
		CreatedAt:      d.CreatedAt(),
	}
}

func VehicleViewOf(v *vehicle.Vehicle) VehicleView {
	return VehicleView{
		ID:           v.ID(),
		Plate:        v.Plate(),
		Model:        v.Model(),
		CapacityKg:   v.CapacityKg(),
		Center:       v.Center().String(),
		ActiveStatus: v.ActiveStatus().String(),
		CreatedAt:    v.CreatedAt(),
	}
}

func OrderViewOf(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemView{
			ProductRef:     item.ProductRef(),
			Quantity:       item.Quantity(),
			UnitPriceMinor: item.UnitPriceMinor(),
			SubtotalMinor:  item.SubtotalMinor(),
		})
	}

	return OrderView{
		ID:           o.ID(),
		Code:         o.Code(),
		CustomerName: o.CustomerName(),
		Address:      o.Address(),
		Items:        items,
		TotalMinor:   o.TotalMinor(),
		Priority:     o.Priority().String(),
		Center:       o.Center().String(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		CompletedAt:  o.CompletedAt(),
	}
}

func TimelineViewOf(d *delivery.Delivery) []TimelineEventView {
	timeline := d.Timeline()
	views := make([]TimelineEventView, 0, len(timeline))
	for _, e := range timeline {
		view := TimelineEventView{
			Sequence:  e.Sequence(),
			Kind:      string(e.Kind()),
			Status:    e.Status().String(),
			Timestamp: e.Timestamp(),
			Note:      e.Note(),
		}
		if loc := e.Location(); loc != nil {
			view.Location = &LocationView{Lat: loc.Lat(), Lng: loc.Lng()}
		}
		views = append(views, view)
	}
	return views
}

// DeliveryViewOf joins a delivery with the aggregates it references.
func DeliveryViewOf(d *delivery.Delivery, o *order.Order, drv *driver.Driver, veh *vehicle.Vehicle) DeliveryView {
	proof := d.Proof()
	view := DeliveryView{
		ID:             d.ID(),
		Center:         d.Center().String(),
		Status:         d.Status().String(),
		AssignedBy:     d.AssignedBy(),
		AssignedAt:     d.AssignedAt(),
		UpdatedAt:      d.UpdatedAt(),
		CompletedAt:    d.CompletedAt(),
		Notes:          d.Notes(),
		Verified:       d.IsVerified(),
		PhotoURL:       proof.PhotoURL(),
		SignatureURL:   proof.SignatureURL(),
		ProofTimestamp: proof.Timestamp(),
		Order: OrderSummary{
			ID:           o.ID(),
			Code:         o.Code(),
			CustomerName: o.CustomerName(),
			Address:      o.Address(),
			Priority:     o.Priority().String(),
			Status:       o.Status().String(),
		},
		Driver:  DriverSummary{ID: drv.ID(), Name: drv.Name(), Phone: drv.Phone()},
		Vehicle: VehicleSummary{ID: veh.ID(), Plate: veh.Plate(), Model: veh.Model()},
	}

	if p := d.LastKnownPosition(); p != nil {
		view.LastKnownPosition = &PositionView{
			Lat:       p.Point().Lat(),
			Lng:       p.Point().Lng(),
			Speed:     p.Speed(),
			Heading:   p.Heading(),
			Timestamp: p.Timestamp(),
		}
	}
	return view
}

// StaleViewOf projects the fields the stale report needs.
func StaleViewOf(d *delivery.Delivery) StaleDeliveryView {
	return StaleDeliveryView{
		ID:             d.ID(),
		OrderID:        d.OrderID(),
		DriverID:       d.DriverID(),
		Center:         d.Center().String(),
		Status:         d.Status().String(),
		LastActivityAt: d.LastActivityAt(),
	}
}
