package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/order"
)

// MarkOrderReadyCommandHandler moves a Pending order to ReadyForDispatch and
// announces it with an order.ready_for_dispatch event. A repeated signal for an
// order that already left Pending fails with kernel.ErrInvalidTransition.
type MarkOrderReadyCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkOrderReadyCommandHandler(uowFactory UoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{uowFactory: uowFactory}
}

func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	orderRepo := uow.OrderRepository()

	var (
		o   *order.Order
		err error
	)
	if cmd.OrderID().IsZero() {
		o, err = orderRepo.GetByCodeForUpdate(ctx, cmd.Code())
	} else {
		o, err = orderRepo.GetForUpdate(ctx, cmd.OrderID())
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = o.MarkReadyForDispatch(now); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	evt, err := newOrderEvent(event.OrderReadyForDispatch, o, "", "", now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, evt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
