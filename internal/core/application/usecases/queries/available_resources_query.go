package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAvailableDriversQueryIsNotConstructed = errors.New(
		"AvailableDriversQuery must be created via NewAvailableDriversQuery constructor",
	)
	ErrAvailableVehiclesQueryIsNotConstructed = errors.New(
		"AvailableVehiclesQuery must be created via NewAvailableVehiclesQuery constructor",
	)
)

// AvailableDriversQuery asks which drivers of a center can take a delivery
// right now: Approved, Active and not bound to a non-terminal delivery.
// The answer is computed at call time and may be stale by the time an
// assignment is attempted; assignment re-checks availability.
type AvailableDriversQuery struct {
	center kernel.Center
	guard  guard.ConstructorGuard
}

// NewAvailableDriversQuery requires a center.
func NewAvailableDriversQuery(center string) (AvailableDriversQuery, error) {
	c, err := requiredCenter(center)
	if err != nil {
		return AvailableDriversQuery{}, err
	}
	return AvailableDriversQuery{center: c, guard: guard.NewConstructorGuard()}, nil
}

func (q AvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrAvailableDriversQueryIsNotConstructed)
}

func (q AvailableDriversQuery) Center() kernel.Center {
	return q.center
}

// AvailableVehiclesQuery is the vehicle counterpart of AvailableDriversQuery.
type AvailableVehiclesQuery struct {
	center kernel.Center
	guard  guard.ConstructorGuard
}

func NewAvailableVehiclesQuery(center string) (AvailableVehiclesQuery, error) {
	c, err := requiredCenter(center)
	if err != nil {
		return AvailableVehiclesQuery{}, err
	}
	return AvailableVehiclesQuery{center: c, guard: guard.NewConstructorGuard()}, nil
}

func (q AvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrAvailableVehiclesQueryIsNotConstructed)
}

func (q AvailableVehiclesQuery) Center() kernel.Center {
	return q.center
}
