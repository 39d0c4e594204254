package commands

import (
	"context"
	"time"
)

// SetDriverApprovalCommandHandler stores the decision and emits
// driver.approval_changed when it differs from the current one.
type SetDriverApprovalCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetDriverApprovalCommandHandler(uowFactory UoWFactory) SetDriverApprovalCommandHandler {
	return SetDriverApprovalCommandHandler{uowFactory: uowFactory}
}

func (h SetDriverApprovalCommandHandler) Handle(ctx context.Context, cmd SetDriverApprovalCommand) error {
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

	driverRepo := uow.DriverRepository()
	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	changed, err := d.SetApproval(cmd.Status())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	evt, err := newDriverApprovalEvent(d, time.Now())
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, evt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
