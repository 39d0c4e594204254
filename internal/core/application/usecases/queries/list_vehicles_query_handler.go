package queries

import "context"

type ListVehiclesQueryHandler struct {
	reader DirectoryReader
}

func NewListVehiclesQueryHandler(reader DirectoryReader) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{reader: reader}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := h.reader.ListVehicles(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = make([]VehicleView, 0)
	}
	return vehicles, nil
}
