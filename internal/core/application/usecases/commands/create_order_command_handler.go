package commands

import (
	"context"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/order"

	"github.com/lucsky/cuid"
)

// CreateOrderCommandHandler stores a new Pending order. It is the intake hook
// used by the HTTP API and the seed command.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the code of the stored order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	code := cmd.Code()
	if code == "" {
		code = NewOrderCode()
	}

	o, err := order.NewOrder(cmd.OrderID(), code, cmd.CustomerName(), cmd.Address(),
		cmd.Items(), cmd.Priority(), cmd.Center(), time.Now())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return o.Code(), nil
}

// NewOrderCode returns a short collision-resistant order code such as "ORD-K3X9P2QA".
func NewOrderCode() string {
	return "ORD-" + strings.ToUpper(cuid.Slug())
}
