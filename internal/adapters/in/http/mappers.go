package http

import (
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/generated/servers"
)

func toDriver(v queries.DriverView) servers.Driver {
	return servers.Driver{
		Id:             v.ID.Bytes(),
		Name:           v.Name,
		Email:          optional(v.Email),
		Phone:          optional(v.Phone),
		Center:         v.Center,
		ApprovalStatus: v.ApprovalStatus,
		ActiveStatus:   v.ActiveStatus,
		CreatedAt:      v.CreatedAt,
	}
}

func toDrivers(views []queries.DriverView) []servers.Driver {
	response := make([]servers.Driver, len(views))
	for i, v := range views {
		response[i] = toDriver(v)
	}
	return response
}

func toVehicles(views []queries.VehicleView) []servers.Vehicle {
	response := make([]servers.Vehicle, len(views))
	for i, v := range views {
		response[i] = servers.Vehicle{
			Id:           v.ID.Bytes(),
			Plate:        v.Plate,
			Model:        v.Model,
			CapacityKg:   v.CapacityKg,
			Center:       v.Center,
			ActiveStatus: v.ActiveStatus,
			CreatedAt:    v.CreatedAt,
		}
	}
	return response
}

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			ProductRef: item.ProductRef,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPriceMinor,
			Subtotal:   item.SubtotalMinor,
		}
	}
	return servers.Order{
		Id:           v.ID.Bytes(),
		Code:         v.Code,
		CustomerName: v.CustomerName,
		Address:      v.Address,
		Items:        items,
		Total:        v.TotalMinor,
		Priority:     v.Priority,
		Center:       v.Center,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		CompletedAt:  v.CompletedAt,
	}
}

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toDelivery(v queries.DeliveryView) servers.Delivery {
	d := servers.Delivery{
		Id:             v.ID.Bytes(),
		Center:         v.Center,
		Status:         v.Status,
		AssignedBy:     v.AssignedBy,
		AssignedAt:     v.AssignedAt,
		UpdatedAt:      v.UpdatedAt,
		CompletedAt:    v.CompletedAt,
		Notes:          optional(v.Notes),
		Verified:       v.Verified,
		PhotoUrl:       optional(v.PhotoURL),
		SignatureUrl:   optional(v.SignatureURL),
		ProofTimestamp: v.ProofTimestamp,
		Order: servers.OrderSummary{
			Id:           v.Order.ID.Bytes(),
			Code:         v.Order.Code,
			CustomerName: v.Order.CustomerName,
			Address:      v.Order.Address,
			Priority:     v.Order.Priority,
			Status:       v.Order.Status,
		},
		Driver: servers.DriverSummary{
			Id:    v.Driver.ID.Bytes(),
			Name:  v.Driver.Name,
			Phone: optional(v.Driver.Phone),
		},
		Vehicle: servers.VehicleSummary{
			Id:    v.Vehicle.ID.Bytes(),
			Plate: v.Vehicle.Plate,
			Model: v.Vehicle.Model,
		},
	}
	if p := v.LastKnownPosition; p != nil {
		d.LastKnownPosition = &servers.Position{
			Lat:       p.Lat,
			Lng:       p.Lng,
			Speed:     p.Speed,
			Heading:   p.Heading,
			Timestamp: p.Timestamp,
		}
	}
	return d
}

func toDeliveryPage(page queries.DeliveryPage) servers.DeliveryPage {
	data := make([]servers.Delivery, len(page.Data))
	for i, v := range page.Data {
		data[i] = toDelivery(v)
	}
	return servers.DeliveryPage{
		Data:  data,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	}
}

func toTimeline(events []queries.TimelineEventView) []servers.TimelineEvent {
	response := make([]servers.TimelineEvent, len(events))
	for i, e := range events {
		response[i] = servers.TimelineEvent{
			Sequence:  e.Sequence,
			Kind:      e.Kind,
			Status:    optional(e.Status),
			Timestamp: e.Timestamp,
			Note:      optional(e.Note),
		}
		if e.Location != nil {
			response[i].Location = &servers.Location{Lat: e.Location.Lat, Lng: e.Location.Lng}
		}
	}
	return response
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
