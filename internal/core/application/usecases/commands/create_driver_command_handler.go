package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler stores a new driver in Pending approval.
type CreateDriverCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateDriverCommandHandler(uowFactory UoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{uowFactory: uowFactory}
}

func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Center(), time.Now())
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

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
