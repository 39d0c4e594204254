package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
)

// SetVerificationCommandHandler toggles verification independently of the
// delivery status. Setting the current value again is acknowledged without an event.
type SetVerificationCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetVerificationCommandHandler(uowFactory UoWFactory) SetVerificationCommandHandler {
	return SetVerificationCommandHandler{uowFactory: uowFactory}
}

func (h SetVerificationCommandHandler) Handle(ctx context.Context, cmd SetVerificationCommand) error {
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
	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if !d.SetVerification(cmd.Verified(), now) {
		return nil
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	verified := d.IsVerified()
	payload := deliveryPayload(d, cmd.RequestedBy(), now)
	payload.Verified = &verified
	evt, err := newDeliveryEvent(event.DeliveryVerificationChanged, d, payload, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, evt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
