package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AssignDelivery handles POST /api/v1/deliveries - binds a ready order to a
// driver and a vehicle.
func (s *Server) AssignDelivery(ctx echo.Context, params servers.AssignDeliveryParams) error {
	var body servers.NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := s.newAssignCommand(body, params.XUserID)
	if err != nil {
		s.metrics.ObserveAssignment(err)
		return err
	}

	err = s.h.AssignDelivery.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveAssignment(err)
	if err != nil {
		return err
	}

	s.logger.Info("delivery assigned",
		"delivery_id", cmd.DeliveryID().String(),
		"order_id", cmd.OrderID().String(),
		"driver_id", cmd.DriverID().String(),
		"vehicle_id", cmd.VehicleID().String(),
		"user_id", params.XUserID,
	)
	return s.respondWithDelivery(ctx, http.StatusCreated, cmd.DeliveryID())
}

func (s *Server) newAssignCommand(body servers.NewDelivery, userID string) (commands.AssignDeliveryCommand, error) {
	orderID, orderErr := toID("orderId", body.OrderId)
	driverID, driverErr := toID("driverId", body.DriverId)
	vehicleID, vehicleErr := toID("vehicleId", body.VehicleId)
	if err := errors.Join(orderErr, driverErr, vehicleErr); err != nil {
		return commands.AssignDeliveryCommand{}, err
	}
	return commands.NewAssignDeliveryCommand(kernel.NewUUID(), orderID, driverID, vehicleID, userID, deref(body.Notes))
}

// ListDeliveries handles GET /api/v1/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context, params servers.ListDeliveriesParams) error {
	query, err := queries.NewListDeliveriesQuery(
		deref(params.Page),
		deref(params.Limit),
		deref(params.Center),
		deref(params.Status),
		deref(params.Search),
		params.StartDate,
		params.EndDate,
	)
	if err != nil {
		return err
	}

	page, err := s.h.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDeliveryPage(page))
}

// GetDelivery handles GET /api/v1/deliveries/{deliveryId}.
func (s *Server) GetDelivery(ctx echo.Context, deliveryId servers.DeliveryId) error {
	id, err := toID("deliveryId", deliveryId)
	if err != nil {
		return err
	}
	return s.respondWithDelivery(ctx, http.StatusOK, id)
}

// AdvanceDeliveryStatus handles POST /api/v1/deliveries/{deliveryId}/status.
func (s *Server) AdvanceDeliveryStatus(
	ctx echo.Context,
	deliveryId servers.DeliveryId,
	params servers.AdvanceDeliveryStatusParams,
) error {
	id, err := toID("deliveryId", deliveryId)
	if err != nil {
		return err
	}

	var body servers.StatusChange
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	var location *kernel.GeoPoint
	if body.Location != nil {
		point, pointErr := kernel.NewGeoPoint(body.Location.Lat, body.Location.Lng)
		if pointErr != nil {
			return pointErr
		}
		location = &point
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(id, body.Status, deref(body.Note), location, params.XUserID)
	if err != nil {
		return err
	}
	if err = s.h.AdvanceDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	s.metrics.ObserveTransition(cmd.Status().String())

	return s.respondWithDelivery(ctx, http.StatusOK, id)
}

// RecordPosition handles POST /api/v1/deliveries/{deliveryId}/position.
// Out-of-order reports are acknowledged without effect.
func (s *Server) RecordPosition(ctx echo.Context, deliveryId servers.DeliveryId) error {
	id, err := toID("deliveryId", deliveryId)
	if err != nil {
		return err
	}

	var body servers.PositionReport
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRecordPositionCommand(id, body.Lat, body.Lng, body.Speed, body.Heading, deref(body.Timestamp))
	if err != nil {
		return err
	}
	if err = s.h.RecordPosition.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetTimeline handles GET /api/v1/deliveries/{deliveryId}/timeline.
func (s *Server) GetTimeline(ctx echo.Context, deliveryId servers.DeliveryId) error {
	id, err := toID("deliveryId", deliveryId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetTimelineQuery(id)
	if err != nil {
		return err
	}

	events, err := s.h.GetTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTimeline(events))
}

// AttachProof handles POST /api/v1/deliveries/{deliveryId}/proof.
func (s *Server) AttachProof(ctx echo.Context, deliveryId servers.DeliveryId, params servers.AttachProofParams) error {
	id, err := toID("deliveryId", deliveryId)
	if err != nil {
		return err
	}

	var body servers.ProofLinks
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAttachProofCommand(id, deref(body.PhotoUrl), deref(body.SignatureUrl), params.XUserID)
	if err != nil {
		return err
	}
	if err = s.h.AttachProof.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithDelivery(ctx, http.StatusOK, id)
}

// UploadProof handles POST /api/v1/deliveries/{deliveryId}/proof/upload.
func (s *Server) UploadProof(ctx echo.Context, deliveryId servers.DeliveryId, params servers.UploadProofParams) error {
	id, err := toID("deliveryId", deliveryId)
	if err != nil {
		return err
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	file, err := header.Open()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("file", err)
	}
	defer file.Close()

	cmd, err := commands.NewUploadProofCommand(
		id,
		ctx.FormValue("kind"),
		header.Header.Get(echo.HeaderContentType),
		file,
		header.Size,
		params.XUserID,
	)
	if err != nil {
		return err
	}

	url, err := s.h.UploadProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.ProofUploaded{Url: url})
}

// SetVerification handles POST /api/v1/deliveries/{deliveryId}/verification.
func (s *Server) SetVerification(
	ctx echo.Context,
	deliveryId servers.DeliveryId,
	params servers.SetVerificationParams,
) error {
	id, err := toID("deliveryId", deliveryId)
	if err != nil {
		return err
	}

	var body servers.Verification
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetVerificationCommand(id, body.Verified, params.XUserID)
	if err != nil {
		return err
	}
	if err = s.h.SetVerification.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithDelivery(ctx, http.StatusOK, id)
}

func (s *Server) respondWithDelivery(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}

	delivery, err := s.h.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toDelivery(delivery))
}
