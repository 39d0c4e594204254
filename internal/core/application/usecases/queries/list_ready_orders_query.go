package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrListReadyOrdersQueryIsNotConstructed = errors.New(
	"ListReadyOrdersQuery must be created via NewListReadyOrdersQuery constructor",
)

// ListReadyOrdersQuery reads the dispatch queue: orders in ReadyForDispatch,
// High priority first, then oldest first.
//
// Example:
//
//	query, err := NewListReadyOrdersQuery("North", "", "", nil, nil)
//	orders, err := handler.Handle(ctx, query)
type ListReadyOrdersQuery struct {
	filter ReadyOrderFilter
	guard  guard.ConstructorGuard
}

func NewListReadyOrdersQuery(center, priority, search string, from, to *time.Time) (ListReadyOrdersQuery, error) {
	c, centerErr := optionalCenter(center)
	p, priorityErr := optionalPriority(priority)

	var rangeErr error
	if from != nil && to != nil && to.Before(*from) {
		rangeErr = errs.NewValueIsInvalidErrorWithCause("to", fmt.Errorf("%s is before from", to.Format(time.RFC3339)))
	}

	if err := errors.Join(centerErr, priorityErr, rangeErr); err != nil {
		return ListReadyOrdersQuery{}, err
	}

	return ListReadyOrdersQuery{
		filter: ReadyOrderFilter{
			Center:   c,
			Priority: p,
			From:     from,
			To:       to,
			Search:   strings.TrimSpace(search),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListReadyOrdersQueryIsNotConstructed)
}

func (q ListReadyOrdersQuery) Filter() ReadyOrderFilter {
	return q.filter
}
