package queries

import "context"

type ListDriversQueryHandler struct {
	reader DirectoryReader
}

func NewListDriversQueryHandler(reader DirectoryReader) ListDriversQueryHandler {
	return ListDriversQueryHandler{reader: reader}
}

// Handle returns the matching drivers ordered by name. No match is an empty slice.
func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers, err := h.reader.ListDrivers(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if drivers == nil {
		drivers = make([]DriverView, 0)
	}
	return drivers, nil
}
