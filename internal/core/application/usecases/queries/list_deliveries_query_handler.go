package queries

import "context"

type ListDeliveriesQueryHandler struct {
	reader DeliveryReader
}

func NewListDeliveriesQueryHandler(reader DeliveryReader) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{reader: reader}
}

// Handle returns one page. Page and limit are echoed back and Pages is
// recomputed from the total so every reader reports it the same way.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) (DeliveryPage, error) {
	if err := query.Validate(); err != nil {
		return DeliveryPage{}, err
	}

	filter := query.Filter()
	page, err := h.reader.ListDeliveries(ctx, filter)
	if err != nil {
		return DeliveryPage{}, err
	}
	if page.Data == nil {
		page.Data = make([]DeliveryView, 0)
	}
	page.Page = filter.Page
	page.Limit = filter.Limit
	page.Pages = PageCount(page.Total, filter.Limit)
	return page, nil
}
