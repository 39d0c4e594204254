package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/vehicle"
)

type CreateVehicleCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory UoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{uowFactory: uowFactory}
}

func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Plate(), cmd.Model(), cmd.CapacityKg(), cmd.Center(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
