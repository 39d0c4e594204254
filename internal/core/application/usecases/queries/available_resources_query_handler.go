package queries

import "context"

type AvailableDriversQueryHandler struct {
	reader DirectoryReader
}

func NewAvailableDriversQueryHandler(reader DirectoryReader) AvailableDriversQueryHandler {
	return AvailableDriversQueryHandler{reader: reader}
}

func (h AvailableDriversQueryHandler) Handle(ctx context.Context, query AvailableDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers, err := h.reader.AvailableDrivers(ctx, query.Center())
	if err != nil {
		return nil, err
	}
	if drivers == nil {
		drivers = make([]DriverView, 0)
	}
	return drivers, nil
}

type AvailableVehiclesQueryHandler struct {
	reader DirectoryReader
}

func NewAvailableVehiclesQueryHandler(reader DirectoryReader) AvailableVehiclesQueryHandler {
	return AvailableVehiclesQueryHandler{reader: reader}
}

func (h AvailableVehiclesQueryHandler) Handle(ctx context.Context, query AvailableVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := h.reader.AvailableVehicles(ctx, query.Center())
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = make([]VehicleView, 0)
	}
	return vehicles, nil
}
