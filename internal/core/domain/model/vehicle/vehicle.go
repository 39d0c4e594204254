// Package vehicle provides the Vehicle aggregate of the resource directory.
package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle carries a delivery. Vehicles have no approval step, so an Active
// vehicle is eligible.
type Vehicle struct {
	id           kernel.UUID
	plate        string
	model        string
	capacityKg   int
	center       kernel.Center
	activeStatus kernel.ActiveStatus
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewVehicle creates an Active vehicle. The plate is normalized to upper case.
func NewVehicle(
	id kernel.UUID,
	plate, model string,
	capacityKg int,
	center kernel.Center,
	createdAt time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		activeStatus: kernel.Active,
		createdAt:    createdAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setModel(model),
		v.setCapacity(capacityKg),
		v.setCenter(center),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage.
func RestoreVehicle(
	id kernel.UUID,
	plate, model string,
	capacityKg int,
	center kernel.Center,
	activeStatus kernel.ActiveStatus,
	createdAt time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setModel(model),
		v.setCapacity(capacityKg),
		v.setCenter(center),
		v.setActiveStatus(activeStatus),
	); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) Plate() string {
	return v.plate
}

func (v *Vehicle) Model() string {
	return v.model
}

// CapacityKg is informational; zero means unknown.
func (v *Vehicle) CapacityKg() int {
	return v.capacityKg
}

func (v *Vehicle) Center() kernel.Center {
	return v.center
}

func (v *Vehicle) ActiveStatus() kernel.ActiveStatus {
	return v.activeStatus
}

func (v *Vehicle) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Vehicle) IsEligible() bool {
	return v.activeStatus.IsActive()
}

// SetActive toggles the active flag and reports whether it changed.
func (v *Vehicle) SetActive(active bool) bool {
	next := kernel.ActiveStatusOf(active)
	if v.activeStatus == next {
		return false
	}
	v.activeStatus = next
	return true
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setCapacity(capacityKg int) error {
	if capacityKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacityKg", fmt.Errorf("%d is negative", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}

func (v *Vehicle) setCenter(center kernel.Center) error {
	if err := center.Validate(); err != nil {
		return err
	}
	v.center = center
	return nil
}

func (v *Vehicle) setActiveStatus(status kernel.ActiveStatus) error {
	if _, err := kernel.ParseActiveStatus(string(status)); err != nil {
		return err
	}
	v.activeStatus = status
	return nil
}
