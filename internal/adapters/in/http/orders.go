package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - registers an order from intake.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	items := make([]commands.OrderItemInput, len(body.Items))
	for i, item := range body.Items {
		items[i] = commands.OrderItemInput{
			ProductRef:     item.ProductRef,
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPrice,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		deref(body.Code),
		body.CustomerName,
		body.Address,
		string(deref(body.Priority)),
		body.Center,
		items,
	)
	if err != nil {
		return err
	}

	if _, err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusCreated, cmd.OrderID())
}

// ListReadyOrders handles GET /api/v1/orders/ready - the dispatch queue.
func (s *Server) ListReadyOrders(ctx echo.Context, params servers.ListReadyOrdersParams) error {
	query, err := queries.NewListReadyOrdersQuery(
		deref(params.Center),
		string(deref(params.Priority)),
		deref(params.Search),
		params.From,
		params.To,
	)
	if err != nil {
		return err
	}

	orders, err := s.h.ListReadyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toID("orderId", orderId)
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// MarkOrderReady handles POST /api/v1/orders/{orderId}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toID("orderId", orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderReadyCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.MarkOrderReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId, params servers.CancelOrderParams) error {
	id, err := toID("orderId", orderId)
	if err != nil {
		return err
	}

	var body servers.Cancellation
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
		}
	}

	cmd, err := commands.NewCancelOrderCommand(id, params.XUserID, deref(body.Reason))
	if err != nil {
		return err
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	order, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(order))
}
