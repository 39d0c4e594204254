package queries

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrListStaleDeliveriesQueryIsNotConstructed = errors.New(
	"ListStaleDeliveriesQuery must be created via NewListStaleDeliveriesQuery constructor",
)

// ListStaleDeliveriesQuery finds non-terminal deliveries whose timeline has
// been silent for at least idleFor as of now. It only reports.
type ListStaleDeliveriesQuery struct {
	before time.Time
	guard  guard.ConstructorGuard
}

func NewListStaleDeliveriesQuery(now time.Time, idleFor time.Duration) (ListStaleDeliveriesQuery, error) {
	if idleFor <= 0 {
		return ListStaleDeliveriesQuery{}, errs.NewValueIsOutOfRangeError("idleFor", idleFor, "1ns", "unbounded")
	}
	return ListStaleDeliveriesQuery{before: now.Add(-idleFor).UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q ListStaleDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListStaleDeliveriesQueryIsNotConstructed)
}

// Before is the activity cutoff.
func (q ListStaleDeliveriesQuery) Before() time.Time {
	return q.before
}

type ListStaleDeliveriesQueryHandler struct {
	reader DeliveryReader
}

func NewListStaleDeliveriesQueryHandler(reader DeliveryReader) ListStaleDeliveriesQueryHandler {
	return ListStaleDeliveriesQueryHandler{reader: reader}
}

func (h ListStaleDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListStaleDeliveriesQuery,
) ([]StaleDeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.ListStale(ctx, query.Before())
}
