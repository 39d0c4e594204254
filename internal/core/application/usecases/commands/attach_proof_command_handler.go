package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/event"
)

// AttachProofCommandHandler merges proof URLs into a delivery in any status.
type AttachProofCommandHandler struct {
	uowFactory UoWFactory
}

func NewAttachProofCommandHandler(uowFactory UoWFactory) AttachProofCommandHandler {
	return AttachProofCommandHandler{uowFactory: uowFactory}
}

func (h AttachProofCommandHandler) Handle(ctx context.Context, cmd AttachProofCommand) error {
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
	if err = d.AttachProof(cmd.PhotoURL(), cmd.SignatureURL(), now); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	payload := deliveryPayload(d, cmd.RequestedBy(), now)
	payload.PhotoURL = d.Proof().PhotoURL()
	payload.SignatureURL = d.Proof().SignatureURL()
	evt, err := newDeliveryEvent(event.DeliveryProofAttached, d, payload, now)
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, evt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
