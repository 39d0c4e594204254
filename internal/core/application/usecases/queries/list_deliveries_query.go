package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery pages through deliveries, newest assignment first.
// Search matches order code, customer name, driver name and vehicle plate.
// A zero page means 1 and a zero limit means DefaultPageLimit.
type ListDeliveriesQuery struct {
	filter DeliveryFilter
	guard  guard.ConstructorGuard
}

func NewListDeliveriesQuery(
	page, limit int,
	center, status, search string,
	startDate, endDate *time.Time,
) (ListDeliveriesQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}

	var pageErr, limitErr, rangeErr error
	if page < 1 {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 1 || limit > MaxPageLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		rangeErr = errs.NewValueIsInvalidErrorWithCause("endDate",
			fmt.Errorf("%s is before startDate", endDate.Format(time.RFC3339)))
	}
	c, centerErr := optionalCenter(center)
	s, statusErr := optionalDeliveryStatus(status)

	if err := errors.Join(pageErr, limitErr, rangeErr, centerErr, statusErr); err != nil {
		return ListDeliveriesQuery{}, err
	}

	return ListDeliveriesQuery{
		filter: DeliveryFilter{
			Page:      page,
			Limit:     limit,
			Center:    c,
			Status:    s,
			Search:    strings.TrimSpace(search),
			StartDate: startDate,
			EndDate:   endDate,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Filter() DeliveryFilter {
	return q.filter
}
