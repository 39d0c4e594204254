package services

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

// Assignment is the input of Dispatch. DriverBusyWith and VehicleBusyWith hold
// the id of a non-terminal delivery already referencing the resource, if any.
type Assignment struct {
	Order           *order.Order
	Driver          *driver.Driver
	Vehicle         *vehicle.Vehicle
	DriverBusyWith  *kernel.UUID
	VehicleBusyWith *kernel.UUID
	RequestedBy     string
	Notes           string
}

// Dispatcher binds a dispatchable order to a driver and a vehicle.
//
// Preconditions are checked in a fixed order and the first violation is
// returned:
//  1. the order is ReadyForDispatch
//  2. the driver belongs to the order's center and is eligible
//  3. the vehicle belongs to the order's center and is eligible
//  4. neither resource is referenced by a non-terminal delivery
//
// Center is checked before eligibility, so a cross-center resource always
// reports a mismatch. Dispatch mutates nothing when a precondition fails.
type Dispatcher struct{}

// NewDispatcher creates a stateless Dispatcher.
//
// Returns:
//   - Dispatcher: ready to use, safe to share between goroutines
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch creates the Assigned delivery and advances the order to Assigned.
//
// Parameters:
//   - a: the loaded order, driver and vehicle plus any delivery already holding
//     the driver or vehicle
//   - deliveryID: id of the delivery to create
//   - now: assignment time for the delivery and the order
//
// Returns:
//   - *delivery.Delivery: the new delivery; the caller persists it together with a.Order
//   - error: the first violated rule as an *errs.ConflictError (ErrOrderNotDispatchable,
//     ErrDriverCenterMismatch, ErrDriverIneligible, ErrVehicleCenterMismatch,
//     ErrVehicleIneligible, ErrResourceAlreadyAssigned), or a validation error
//
// Example usage:
//
//	d, err := services.NewDispatcher().Dispatch(services.Assignment{
//	    Order:       o,
//	    Driver:      drv,
//	    Vehicle:     veh,
//	    RequestedBy: "dispatcher-7",
//	}, kernel.NewUUID(), time.Now())
//	if errors.Is(err, services.ErrDriverCenterMismatch) {
//	    // offer drivers of o.Center() instead
//	}
func (Dispatcher) Dispatch(a Assignment, deliveryID kernel.UUID, now time.Time) (*delivery.Delivery, error) {
	if err := a.Order.Validate(); err != nil {
		return nil, err
	}
	if err := a.Driver.Validate(); err != nil {
		return nil, err
	}
	if err := a.Vehicle.Validate(); err != nil {
		return nil, err
	}

	if err := CheckPreconditions(a); err != nil {
		return nil, err
	}

	d, err := delivery.NewDelivery(deliveryID, a.Order.ID(), a.Driver.ID(), a.Vehicle.ID(),
		a.Order.Center(), a.RequestedBy, a.Notes, now)
	if err != nil {
		return nil, err
	}

	if err = a.Order.Assign(now); err != nil {
		return nil, err
	}

	return d, nil
}

// CheckPreconditions evaluates the four ordered assignment rules without
// mutating anything.
func CheckPreconditions(a Assignment) error {
	if err := CheckOrder(a.Order); err != nil {
		return err
	}
	if err := CheckDriver(a.Order, a.Driver); err != nil {
		return err
	}
	if err := CheckVehicle(a.Order, a.Vehicle); err != nil {
		return err
	}
	return CheckAvailability(a)
}

// CheckOrder is rule 1: the order is ReadyForDispatch.
func CheckOrder(o *order.Order) error {
	if !o.IsDispatchable() {
		return errs.NewConflictErrorWithDetail(ErrOrderNotDispatchable, "order", o.ID().String(),
			fmt.Sprintf("status is %s", o.Status()))
	}
	return nil
}

// CheckDriver is rule 2: same center first, then eligibility.
func CheckDriver(o *order.Order, d *driver.Driver) error {
	if d.Center() != o.Center() {
		return errs.NewConflictErrorWithDetail(ErrDriverCenterMismatch, "driver", d.ID().String(),
			fmt.Sprintf("driver center %s, order center %s", d.Center(), o.Center()))
	}
	if !d.IsEligible() {
		return errs.NewConflictErrorWithDetail(ErrDriverIneligible, "driver", d.ID().String(),
			fmt.Sprintf("approval %s, %s", d.ApprovalStatus(), d.ActiveStatus()))
	}
	return nil
}

// CheckVehicle is rule 3.
func CheckVehicle(o *order.Order, v *vehicle.Vehicle) error {
	if v.Center() != o.Center() {
		return errs.NewConflictErrorWithDetail(ErrVehicleCenterMismatch, "vehicle", v.ID().String(),
			fmt.Sprintf("vehicle center %s, order center %s", v.Center(), o.Center()))
	}
	if !v.IsEligible() {
		return errs.NewConflictErrorWithDetail(ErrVehicleIneligible, "vehicle", v.ID().String(),
			v.ActiveStatus().String())
	}
	return nil
}

// CheckAvailability is rule 4. The store's uniqueness constraint enforces the
// same rule for assignments racing past this check.
func CheckAvailability(a Assignment) error {
	if a.DriverBusyWith != nil {
		return errs.NewConflictErrorWithDetail(ErrResourceAlreadyAssigned, "driver", a.Driver.ID().String(),
			"bound to delivery "+a.DriverBusyWith.String())
	}
	if a.VehicleBusyWith != nil {
		return errs.NewConflictErrorWithDetail(ErrResourceAlreadyAssigned, "vehicle", a.Vehicle.ID().String(),
			"bound to delivery "+a.VehicleBusyWith.String())
	}
	return nil
}
