package services

import "errors"

// Conflict rules reported by the assignment engine. They are wrapped in
// errs.ConflictError together with the resource that violated them.
var (
	ErrOrderNotDispatchable    = errors.New("order not dispatchable")
	ErrDriverCenterMismatch    = errors.New("driver center mismatch")
	ErrDriverIneligible        = errors.New("driver ineligible")
	ErrVehicleCenterMismatch   = errors.New("vehicle center mismatch")
	ErrVehicleIneligible       = errors.New("vehicle ineligible")
	ErrResourceAlreadyAssigned = errors.New("resource already assigned")
)

// ErrDuplicateOrderCode is reported when intake reuses an order code.
var ErrDuplicateOrderCode = errors.New("duplicate order code")
