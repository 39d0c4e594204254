package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context, params servers.ListDriversParams) error {
	query, err := queries.NewListDriversQuery(
		deref(params.Center),
		string(deref(params.ApprovalStatus)),
		string(deref(params.ActiveStatus)),
		deref(params.Search),
	)
	if err != nil {
		return err
	}

	drivers, err := s.h.ListDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDrivers(drivers))
}

// CreateDriver handles POST /api/v1/drivers. Drivers start Pending approval.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body servers.NewDriver
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, deref(body.Email), deref(body.Phone), body.Center)
	if err != nil {
		return err
	}
	if err = s.h.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.DriverID().Bytes()})
}

// ListAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) ListAvailableDrivers(ctx echo.Context, params servers.ListAvailableDriversParams) error {
	query, err := queries.NewAvailableDriversQuery(params.Center)
	if err != nil {
		return err
	}

	drivers, err := s.h.AvailableDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDrivers(drivers))
}

// SetDriverApproval handles POST /api/v1/drivers/{driverId}/approval.
func (s *Server) SetDriverApproval(ctx echo.Context, driverId servers.DriverId) error {
	id, err := toID("driverId", driverId)
	if err != nil {
		return err
	}

	var body servers.ApprovalChange
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetDriverApprovalCommand(id, string(body.Status))
	if err != nil {
		return err
	}
	if err = s.h.SetDriverApproval.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetDriverActive handles POST /api/v1/drivers/{driverId}/active.
func (s *Server) SetDriverActive(ctx echo.Context, driverId servers.DriverId) error {
	return s.setActive(ctx, commands.ResourceDriver, "driverId", driverId)
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context, params servers.ListVehiclesParams) error {
	query, err := queries.NewListVehiclesQuery(
		deref(params.Center),
		string(deref(params.ActiveStatus)),
		deref(params.Search),
	)
	if err != nil {
		return err
	}

	vehicles, err := s.h.ListVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toVehicles(vehicles))
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body servers.NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateVehicleCommand(body.Plate, body.Model, deref(body.CapacityKg), body.Center)
	if err != nil {
		return err
	}
	if err = s.h.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.VehicleID().Bytes()})
}

// ListAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) ListAvailableVehicles(ctx echo.Context, params servers.ListAvailableVehiclesParams) error {
	query, err := queries.NewAvailableVehiclesQuery(params.Center)
	if err != nil {
		return err
	}

	vehicles, err := s.h.AvailableVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toVehicles(vehicles))
}

// SetVehicleActive handles POST /api/v1/vehicles/{vehicleId}/active.
func (s *Server) SetVehicleActive(ctx echo.Context, vehicleId servers.VehicleId) error {
	return s.setActive(ctx, commands.ResourceVehicle, "vehicleId", vehicleId)
}

func (s *Server) setActive(ctx echo.Context, kind commands.ResourceKind, param string, rawID openapi_types.UUID) error {
	id, err := toID(param, rawID)
	if err != nil {
		return err
	}

	var body servers.ActiveChange
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetResourceActiveCommand(kind, id, body.Active)
	if err != nil {
		return err
	}
	if err = s.h.SetResourceActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
