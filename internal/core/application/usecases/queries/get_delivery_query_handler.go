package queries

import "context"

type GetDeliveryQueryHandler struct {
	reader DeliveryReader
}

func NewGetDeliveryQueryHandler(reader DeliveryReader) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{reader: reader}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}
	return h.reader.GetDelivery(ctx, query.DeliveryID())
}

type GetTimelineQueryHandler struct {
	reader DeliveryReader
}

func NewGetTimelineQueryHandler(reader DeliveryReader) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{reader: reader}
}

// Handle returns the events ordered by sequence, or errs.ObjectNotFoundError
// when the delivery does not exist.
func (h GetTimelineQueryHandler) Handle(ctx context.Context, query GetTimelineQuery) ([]TimelineEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.GetTimeline(ctx, query.DeliveryID())
}
