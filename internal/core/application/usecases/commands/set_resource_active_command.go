package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetResourceActiveCommandIsNotConstructed = errors.New(
	"SetResourceActiveCommand must be created via NewSetResourceActiveCommand constructor",
)

// ResourceKind names the resource a SetResourceActiveCommand addresses.
type ResourceKind string

const (
	ResourceDriver  ResourceKind = "driver"
	ResourceVehicle ResourceKind = "vehicle"
)

// SetResourceActiveCommand takes a driver or vehicle in or out of service.
// Deactivating a resource does not affect a delivery it is already bound to.
type SetResourceActiveCommand struct { //nolint:recvcheck //using for validation
	kind   ResourceKind
	id     kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

func NewSetResourceActiveCommand(kind ResourceKind, id kernel.UUID, active bool) (SetResourceActiveCommand, error) {
	var kindErr error
	if kind != ResourceDriver && kind != ResourceVehicle {
		kindErr = errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a resource kind", kind))
	}

	if err := errors.Join(kindErr, requireID(string(kind)+"Id", id)); err != nil {
		return SetResourceActiveCommand{}, err
	}

	return SetResourceActiveCommand{kind: kind, id: id, active: active, guard: guard.NewConstructorGuard()}, nil
}

func (c SetResourceActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetResourceActiveCommandIsNotConstructed)
}

func (c SetResourceActiveCommand) Kind() ResourceKind {
	return c.kind
}

func (c SetResourceActiveCommand) ID() kernel.UUID {
	return c.id
}

func (c SetResourceActiveCommand) Active() bool {
	return c.active
}
