package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand is sent by the inventory collaborator once an order has
// cleared stock processing. The order is addressed by id or, for messages that
// only know the business code, by code.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

func NewMarkOrderReadyCommand(orderID kernel.UUID) (MarkOrderReadyCommand, error) {
	if err := requireID("orderId", orderID); err != nil {
		return MarkOrderReadyCommand{}, err
	}
	return MarkOrderReadyCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func NewMarkOrderReadyByCodeCommand(code string) (MarkOrderReadyCommand, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return MarkOrderReadyCommand{}, errs.NewValueIsRequiredError("orderCode")
	}
	return MarkOrderReadyCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderID is zero when the command addresses the order by code.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkOrderReadyCommand) Code() string {
	return c.code
}
