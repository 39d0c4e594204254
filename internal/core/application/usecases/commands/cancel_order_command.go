package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws an order that has not been assigned yet.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy string
	reason      string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.UUID, requestedBy, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{guard: guard.NewConstructorGuard()}

	var requestedByErr, reasonErr error
	cmd.requestedBy, requestedByErr = requireText("requestingUserId", requestedBy)
	cmd.reason, reasonErr = optionalNote("reason", reason)

	if err := errors.Join(requireID("orderId", orderID), requestedByErr, reasonErr); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) RequestedBy() string {
	return c.requestedBy
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}
