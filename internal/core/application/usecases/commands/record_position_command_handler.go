package commands

import (
	"context"
	"time"
)

// RecordPositionCommandHandler stores the latest position of a delivery.
// Reports older than the stored position are acknowledged and dropped; reports
// dated ahead of the server clock count as received now.
// With a positive sample interval a PositionSampled timeline entry is appended
// at most once per interval.
type RecordPositionCommandHandler struct {
	uowFactory     UoWFactory
	sampleInterval time.Duration
	now            func() time.Time
}

func NewRecordPositionCommandHandler(uowFactory UoWFactory, sampleInterval time.Duration) RecordPositionCommandHandler {
	return RecordPositionCommandHandler{
		uowFactory:     uowFactory,
		sampleInterval: sampleInterval,
		now:            time.Now,
	}
}

func (h RecordPositionCommandHandler) Handle(ctx context.Context, cmd RecordPositionCommand) error {
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

	applied, _, err := d.RecordPosition(cmd.Position(), h.now(), h.sampleInterval)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
