package commands

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested order line. Prices are in minor units.
type OrderItemInput struct {
	ProductRef     string
	Quantity       int
	UnitPriceMinor int64
}

// CreateOrderCommand registers an order coming from intake. The order starts
// Pending; a code is generated when none is supplied.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "", "Ada", "1 Main St", "High", "North",
//	    []OrderItemInput{{ProductRef: "SKU-1", Quantity: 2, UnitPriceMinor: 1250}})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	code         string
	customerName string
	address      string
	priority     order.Priority
	center       kernel.Center
	items        []order.Item

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	code, customerName, address, priority, center string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		code:  strings.TrimSpace(code),
		guard: guard.NewConstructorGuard(),
	}

	var customerErr, addressErr, priorityErr, centerErr error
	cmd.customerName, customerErr = requireText("customerName", customerName)
	cmd.address, addressErr = requireText("address", address)
	cmd.priority, priorityErr = order.ParsePriority(priority)
	cmd.center, centerErr = kernel.ParseCenter(center)

	if err := errors.Join(
		requireID("orderId", orderID),
		customerErr,
		addressErr,
		priorityErr,
		centerErr,
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code is empty when the handler should generate one.
func (c CreateOrderCommand) Code() string {
	return c.code
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c CreateOrderCommand) Center() kernel.Center {
	return c.center
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setItems(inputs []OrderItemInput) error {
	if len(inputs) == 0 {
		return order.ErrItemsAreRequired
	}
	items := make([]order.Item, 0, len(inputs))
	var errList []error
	for i, in := range inputs {
		item, err := order.NewItem(in.ProductRef, in.Quantity, in.UnitPriceMinor)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.items = items
	return nil
}
