package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/services"
)

// AdvanceDeliveryStatusCommandHandler applies one lifecycle move. The delivery
// and its order are both locked, so concurrent moves on the same delivery are
// serialized and the loser is judged against the winner's status.
type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.Lifecycle
}

func NewAdvanceDeliveryStatusCommandHandler(uowFactory UoWFactory) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewLifecycle(),
	}
}

func (h AdvanceDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()

	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	o, err := orderRepo.GetForUpdate(ctx, d.OrderID())
	if err != nil {
		return err
	}

	from := d.Status()
	now := time.Now().UTC()
	if err = h.lifecycle.Advance(d, o, cmd.Status(), cmd.Note(), cmd.Location(), now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	payload := deliveryPayload(d, cmd.RequestedBy(), now)
	payload.OrderCode = o.Code()
	payload.FromStatus = from.String()
	payload.Note = cmd.Note()
	evt, err := newDeliveryEvent(event.DeliveryStatusChanged, d, payload, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, evt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
