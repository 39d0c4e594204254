package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand registers an Active vehicle with a generated ID.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID  kernel.UUID
	plate      string
	model      string
	capacityKg int
	center     kernel.Center

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(plate, model string, capacityKg int, center string) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		vehicleID:  kernel.NewUUID(),
		capacityKg: capacityKg,
		guard:      guard.NewConstructorGuard(),
	}

	var plateErr, modelErr, capacityErr, centerErr error
	cmd.plate, plateErr = requireText("plate", plate)
	cmd.model, modelErr = requireText("model", model)
	if capacityKg < 0 {
		capacityErr = errs.NewValueIsInvalidErrorWithCause("capacityKg", fmt.Errorf("%d is negative", capacityKg))
	}
	cmd.center, centerErr = kernel.ParseCenter(center)

	if err := errors.Join(plateErr, modelErr, capacityErr, centerErr); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

func (c CreateVehicleCommand) Model() string {
	return c.model
}

func (c CreateVehicleCommand) CapacityKg() int {
	return c.capacityKg
}

func (c CreateVehicleCommand) Center() kernel.Center {
	return c.center
}
