package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetVerificationCommandIsNotConstructed = errors.New(
	"SetVerificationCommand must be created via NewSetVerificationCommand constructor",
)

// SetVerificationCommand sets the reviewer flag of a delivery.
type SetVerificationCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	verified    bool
	requestedBy string

	guard guard.ConstructorGuard
}

func NewSetVerificationCommand(deliveryID kernel.UUID, verified bool, requestedBy string) (SetVerificationCommand, error) {
	cmd := SetVerificationCommand{verified: verified, guard: guard.NewConstructorGuard()}

	var requestedByErr error
	cmd.requestedBy, requestedByErr = requireText("requestingUserId", requestedBy)

	if err := errors.Join(requireID("deliveryId", deliveryID), requestedByErr); err != nil {
		return SetVerificationCommand{}, err
	}

	cmd.deliveryID = deliveryID
	return cmd, nil
}

func (c SetVerificationCommand) Validate() error {
	return c.guard.Validate(ErrSetVerificationCommandIsNotConstructed)
}

func (c SetVerificationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c SetVerificationCommand) Verified() bool {
	return c.verified
}

func (c SetVerificationCommand) RequestedBy() string {
	return c.requestedBy
}
