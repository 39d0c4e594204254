package queries

import "context"

type ListReadyOrdersQueryHandler struct {
	reader OrderReader
}

func NewListReadyOrdersQueryHandler(reader OrderReader) ListReadyOrdersQueryHandler {
	return ListReadyOrdersQueryHandler{reader: reader}
}

func (h ListReadyOrdersQueryHandler) Handle(ctx context.Context, query ListReadyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.ListReadyForDispatch(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]OrderView, 0)
	}
	return orders, nil
}
