package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
)

// CancelOrderCommandHandler cancels a Pending or ReadyForDispatch order.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = o.Cancel(now); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	evt, err := newOrderEvent(event.OrderCancelled, o, cmd.RequestedBy(), cmd.Reason(), now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, evt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
