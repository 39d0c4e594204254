package commands

import (
	"context"
)

type SetResourceActiveCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetResourceActiveCommandHandler(uowFactory UoWFactory) SetResourceActiveCommandHandler {
	return SetResourceActiveCommandHandler{uowFactory: uowFactory}
}

func (h SetResourceActiveCommandHandler) Handle(ctx context.Context, cmd SetResourceActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	switch cmd.Kind() {
	case ResourceDriver:
		repo := uow.DriverRepository()
		d, err := repo.Get(ctx, cmd.ID())
		if err != nil {
			return err
		}
		if !d.SetActive(cmd.Active()) {
			return nil
		}
		if err = repo.Update(ctx, d); err != nil {
			return err
		}
	case ResourceVehicle:
		repo := uow.VehicleRepository()
		v, err := repo.Get(ctx, cmd.ID())
		if err != nil {
			return err
		}
		if !v.SetActive(cmd.Active()) {
			return nil
		}
		if err = repo.Update(ctx, v); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
