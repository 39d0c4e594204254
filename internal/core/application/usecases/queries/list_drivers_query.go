package queries

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery lists drivers of the directory. Every argument is optional;
// search matches name, email and phone case-insensitively.
//
// Example:
//
//	query, err := NewListDriversQuery("North", "Approved", "", "grace")
//	if err != nil {
//	    return err
//	}
//	drivers, err := handler.Handle(ctx, query)
type ListDriversQuery struct {
	filter DriverFilter
	guard  guard.ConstructorGuard
}

func NewListDriversQuery(center, approvalStatus, activeStatus, search string) (ListDriversQuery, error) {
	c, centerErr := optionalCenter(center)
	approval, approvalErr := optionalApprovalStatus(approvalStatus)
	active, activeErr := optionalActiveStatus(activeStatus)
	if err := errors.Join(centerErr, approvalErr, activeErr); err != nil {
		return ListDriversQuery{}, err
	}

	return ListDriversQuery{
		filter: DriverFilter{
			Center:         c,
			ApprovalStatus: approval,
			ActiveStatus:   active,
			Search:         strings.TrimSpace(search),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) Filter() DriverFilter {
	return q.filter
}
