package commands

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/order"
)

type orderEventPayload struct {
	OrderID   string `json:"orderId"`
	Code      string `json:"code"`
	Center    string `json:"center"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	ActorID   string `json:"actorId,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

type deliveryEventPayload struct {
	DeliveryID   string `json:"deliveryId"`
	OrderID      string `json:"orderId"`
	OrderCode    string `json:"orderCode,omitempty"`
	DriverID     string `json:"driverId"`
	VehicleID    string `json:"vehicleId"`
	Center       string `json:"center"`
	Status       string `json:"status"`
	FromStatus   string `json:"fromStatus,omitempty"`
	Note         string `json:"note,omitempty"`
	Verified     *bool  `json:"verified,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	SignatureURL string `json:"signatureUrl,omitempty"`
	ActorID      string `json:"actorId,omitempty"`
	Timestamp    string `json:"timestamp"`
}

type driverEventPayload struct {
	DriverID       string `json:"driverId"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Center         string `json:"center"`
	ApprovalStatus string `json:"approvalStatus"`
	Timestamp      string `json:"timestamp"`
}

func newOrderEvent(t event.Type, o *order.Order, actorID, reason string, at time.Time) (event.Event, error) {
	return event.New(t, "order", o.ID(), orderEventPayload{
		OrderID:   o.ID().String(),
		Code:      o.Code(),
		Center:    o.Center().String(),
		Priority:  o.Priority().String(),
		Status:    o.Status().String(),
		ActorID:   actorID,
		Reason:    reason,
		Timestamp: at.UTC().Format(time.RFC3339Nano),
	}, at)
}

// deliveryPayload fills the fields shared by every delivery event.
func deliveryPayload(d *delivery.Delivery, actorID string, at time.Time) deliveryEventPayload {
	return deliveryEventPayload{
		DeliveryID: d.ID().String(),
		OrderID:    d.OrderID().String(),
		DriverID:   d.DriverID().String(),
		VehicleID:  d.VehicleID().String(),
		Center:     d.Center().String(),
		Status:     d.Status().String(),
		ActorID:    actorID,
		Timestamp:  at.UTC().Format(time.RFC3339Nano),
	}
}

func newDeliveryEvent(t event.Type, d *delivery.Delivery, payload deliveryEventPayload, at time.Time) (event.Event, error) {
	return event.New(t, "delivery", d.ID(), payload, at)
}

func newDriverApprovalEvent(d *driver.Driver, at time.Time) (event.Event, error) {
	return event.New(event.DriverApprovalChanged, "driver", d.ID(), driverEventPayload{
		DriverID:       d.ID().String(),
		Name:           d.Name(),
		Email:          d.Email(),
		Center:         d.Center().String(),
		ApprovalStatus: d.ApprovalStatus().String(),
		Timestamp:      at.UTC().Format(time.RFC3339Nano),
	}, at)
}
