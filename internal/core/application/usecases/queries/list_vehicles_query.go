package queries

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery lists vehicles; search matches model and plate.
type ListVehiclesQuery struct {
	filter VehicleFilter
	guard  guard.ConstructorGuard
}

func NewListVehiclesQuery(center, activeStatus, search string) (ListVehiclesQuery, error) {
	c, centerErr := optionalCenter(center)
	active, activeErr := optionalActiveStatus(activeStatus)
	if err := errors.Join(centerErr, activeErr); err != nil {
		return ListVehiclesQuery{}, err
	}

	return ListVehiclesQuery{
		filter: VehicleFilter{Center: c, ActiveStatus: active, Search: strings.TrimSpace(search)},
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) Filter() VehicleFilter {
	return q.filter
}
