package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/deliveries)
	ListDeliveries(ctx echo.Context, params ListDeliveriesParams) error

	// (POST /api/v1/deliveries)
	AssignDelivery(ctx echo.Context, params AssignDeliveryParams) error

	// (GET /api/v1/deliveries/{deliveryId})
	GetDelivery(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /api/v1/deliveries/{deliveryId}/proof)
	AttachProof(ctx echo.Context, deliveryId DeliveryId, params AttachProofParams) error

	// (POST /api/v1/deliveries/{deliveryId}/proof/upload)
	UploadProof(ctx echo.Context, deliveryId DeliveryId, params UploadProofParams) error

	// (POST /api/v1/deliveries/{deliveryId}/position)
	RecordPosition(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /api/v1/deliveries/{deliveryId}/status)
	AdvanceDeliveryStatus(ctx echo.Context, deliveryId DeliveryId, params AdvanceDeliveryStatusParams) error

	// (GET /api/v1/deliveries/{deliveryId}/timeline)
	GetTimeline(ctx echo.Context, deliveryId DeliveryId) error

	// (POST /api/v1/deliveries/{deliveryId}/verification)
	SetVerification(ctx echo.Context, deliveryId DeliveryId, params SetVerificationParams) error

	// (GET /api/v1/drivers)
	ListDrivers(ctx echo.Context, params ListDriversParams) error

	// (POST /api/v1/drivers)
	CreateDriver(ctx echo.Context) error

	// (GET /api/v1/drivers/available)
	ListAvailableDrivers(ctx echo.Context, params ListAvailableDriversParams) error

	// (POST /api/v1/drivers/{driverId}/active)
	SetDriverActive(ctx echo.Context, driverId DriverId) error

	// (POST /api/v1/drivers/{driverId}/approval)
	SetDriverApproval(ctx echo.Context, driverId DriverId) error

	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// (GET /api/v1/orders/ready)
	ListReadyOrders(ctx echo.Context, params ListReadyOrdersParams) error

	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId, params CancelOrderParams) error

	// (POST /api/v1/orders/{orderId}/ready)
	MarkOrderReady(ctx echo.Context, orderId OrderId) error

	// (GET /api/v1/vehicles)
	ListVehicles(ctx echo.Context, params ListVehiclesParams) error

	// (POST /api/v1/vehicles)
	CreateVehicle(ctx echo.Context) error

	// (GET /api/v1/vehicles/available)
	ListAvailableVehicles(ctx echo.Context, params ListAvailableVehiclesParams) error

	// (POST /api/v1/vehicles/{vehicleId}/active)
	SetVehicleActive(ctx echo.Context, vehicleId VehicleId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveries(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListDeliveriesParams
	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// ------------- Optional query parameter "center" -------------

	err = runtime.BindQueryParameter("form", true, false, "center", ctx.QueryParams(), &params.Center)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter center: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "startDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "startDate", ctx.QueryParams(), &params.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter startDate: %s", err))
	}

	// ------------- Optional query parameter "endDate" -------------

	err = runtime.BindQueryParameter("form", true, false, "endDate", ctx.QueryParams(), &params.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter endDate: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDeliveries(ctx, params)
	return err
}

// AssignDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) AssignDelivery(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params AssignDeliveryParams

	headers := ctx.Request().Header
	// ------------- Required header parameter "X-User-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-ID")]; found {
		var XUserID UserId
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &XUserID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
		}

		params.XUserID = XUserID
	} else {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-ID is required, but not found")
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AssignDelivery(ctx, params)
	return err
}

// GetDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDelivery(ctx, deliveryId)
	return err
}

// AttachProof converts echo context to params.
func (w *ServerInterfaceWrapper) AttachProof(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params AttachProofParams

	headers := ctx.Request().Header
	// ------------- Required header parameter "X-User-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-ID")]; found {
		var XUserID UserId
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &XUserID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
		}

		params.XUserID = XUserID
	} else {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-ID is required, but not found")
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AttachProof(ctx, deliveryId, params)
	return err
}

// UploadProof converts echo context to params.
func (w *ServerInterfaceWrapper) UploadProof(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params UploadProofParams

	headers := ctx.Request().Header
	// ------------- Required header parameter "X-User-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-ID")]; found {
		var XUserID UserId
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &XUserID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
		}

		params.XUserID = XUserID
	} else {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-ID is required, but not found")
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UploadProof(ctx, deliveryId, params)
	return err
}

// RecordPosition converts echo context to params.
func (w *ServerInterfaceWrapper) RecordPosition(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RecordPosition(ctx, deliveryId)
	return err
}

// AdvanceDeliveryStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceDeliveryStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params AdvanceDeliveryStatusParams

	headers := ctx.Request().Header
	// ------------- Required header parameter "X-User-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-ID")]; found {
		var XUserID UserId
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &XUserID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
		}

		params.XUserID = XUserID
	} else {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-ID is required, but not found")
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdvanceDeliveryStatus(ctx, deliveryId, params)
	return err
}

// GetTimeline converts echo context to params.
func (w *ServerInterfaceWrapper) GetTimeline(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTimeline(ctx, deliveryId)
	return err
}

// SetVerification converts echo context to params.
func (w *ServerInterfaceWrapper) SetVerification(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params SetVerificationParams

	headers := ctx.Request().Header
	// ------------- Required header parameter "X-User-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-ID")]; found {
		var XUserID UserId
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &XUserID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
		}

		params.XUserID = XUserID
	} else {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-ID is required, but not found")
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetVerification(ctx, deliveryId, params)
	return err
}

// ListDrivers converts echo context to params.
func (w *ServerInterfaceWrapper) ListDrivers(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListDriversParams
	// ------------- Optional query parameter "center" -------------

	err = runtime.BindQueryParameter("form", true, false, "center", ctx.QueryParams(), &params.Center)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter center: %s", err))
	}

	// ------------- Optional query parameter "approvalStatus" -------------

	err = runtime.BindQueryParameter("form", true, false, "approvalStatus", ctx.QueryParams(), &params.ApprovalStatus)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter approvalStatus: %s", err))
	}

	// ------------- Optional query parameter "activeStatus" -------------

	err = runtime.BindQueryParameter("form", true, false, "activeStatus", ctx.QueryParams(), &params.ActiveStatus)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter activeStatus: %s", err))
	}

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDrivers(ctx, params)
	return err
}

// CreateDriver converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDriver(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateDriver(ctx)
	return err
}

// ListAvailableDrivers converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableDrivers(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListAvailableDriversParams
	// ------------- Required query parameter "center" -------------

	err = runtime.BindQueryParameter("form", true, true, "center", ctx.QueryParams(), &params.Center)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter center: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAvailableDrivers(ctx, params)
	return err
}

// SetDriverActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetDriverActive(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "driverId" -------------
	var driverId DriverId

	err = runtime.BindStyledParameterWithOptions("simple", "driverId", ctx.Param("driverId"), &driverId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetDriverActive(ctx, driverId)
	return err
}

// SetDriverApproval converts echo context to params.
func (w *ServerInterfaceWrapper) SetDriverApproval(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "driverId" -------------
	var driverId DriverId

	err = runtime.BindStyledParameterWithOptions("simple", "driverId", ctx.Param("driverId"), &driverId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetDriverApproval(ctx, driverId)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// ListReadyOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListReadyOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListReadyOrdersParams
	// ------------- Optional query parameter "center" -------------

	err = runtime.BindQueryParameter("form", true, false, "center", ctx.QueryParams(), &params.Center)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter center: %s", err))
	}

	// ------------- Optional query parameter "priority" -------------

	err = runtime.BindQueryParameter("form", true, false, "priority", ctx.QueryParams(), &params.Priority)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter priority: %s", err))
	}

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "from" -------------

	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	// ------------- Optional query parameter "to" -------------

	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListReadyOrders(ctx, params)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params CancelOrderParams

	headers := ctx.Request().Header
	// ------------- Required header parameter "X-User-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-User-ID")]; found {
		var XUserID UserId
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &XUserID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
		}

		params.XUserID = XUserID
	} else {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-ID is required, but not found")
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, orderId, params)
	return err
}

// MarkOrderReady converts echo context to params.
func (w *ServerInterfaceWrapper) MarkOrderReady(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkOrderReady(ctx, orderId)
	return err
}

// ListVehicles converts echo context to params.
func (w *ServerInterfaceWrapper) ListVehicles(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListVehiclesParams
	// ------------- Optional query parameter "center" -------------

	err = runtime.BindQueryParameter("form", true, false, "center", ctx.QueryParams(), &params.Center)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter center: %s", err))
	}

	// ------------- Optional query parameter "activeStatus" -------------

	err = runtime.BindQueryParameter("form", true, false, "activeStatus", ctx.QueryParams(), &params.ActiveStatus)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter activeStatus: %s", err))
	}

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListVehicles(ctx, params)
	return err
}

// CreateVehicle converts echo context to params.
func (w *ServerInterfaceWrapper) CreateVehicle(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateVehicle(ctx)
	return err
}

// ListAvailableVehicles converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableVehicles(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListAvailableVehiclesParams
	// ------------- Required query parameter "center" -------------

	err = runtime.BindQueryParameter("form", true, true, "center", ctx.QueryParams(), &params.Center)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter center: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAvailableVehicles(ctx, params)
	return err
}

// SetVehicleActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetVehicleActive(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "vehicleId" -------------
	var vehicleId VehicleId

	err = runtime.BindStyledParameterWithOptions("simple", "vehicleId", ctx.Param("vehicleId"), &vehicleId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vehicleId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetVehicleActive(ctx, vehicleId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/deliveries", wrapper.ListDeliveries)
	router.POST(baseURL+"/api/v1/deliveries", wrapper.AssignDelivery)
	router.GET(baseURL+"/api/v1/deliveries/:deliveryId", wrapper.GetDelivery)
	router.POST(baseURL+"/api/v1/deliveries/:deliveryId/proof", wrapper.AttachProof)
	router.POST(baseURL+"/api/v1/deliveries/:deliveryId/proof/upload", wrapper.UploadProof)
	router.POST(baseURL+"/api/v1/deliveries/:deliveryId/position", wrapper.RecordPosition)
	router.POST(baseURL+"/api/v1/deliveries/:deliveryId/status", wrapper.AdvanceDeliveryStatus)
	router.GET(baseURL+"/api/v1/deliveries/:deliveryId/timeline", wrapper.GetTimeline)
	router.POST(baseURL+"/api/v1/deliveries/:deliveryId/verification", wrapper.SetVerification)
	router.GET(baseURL+"/api/v1/drivers", wrapper.ListDrivers)
	router.POST(baseURL+"/api/v1/drivers", wrapper.CreateDriver)
	router.GET(baseURL+"/api/v1/drivers/available", wrapper.ListAvailableDrivers)
	router.POST(baseURL+"/api/v1/drivers/:driverId/active", wrapper.SetDriverActive)
	router.POST(baseURL+"/api/v1/drivers/:driverId/approval", wrapper.SetDriverApproval)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/ready", wrapper.ListReadyOrders)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/ready", wrapper.MarkOrderReady)
	router.GET(baseURL+"/api/v1/vehicles", wrapper.ListVehicles)
	router.POST(baseURL+"/api/v1/vehicles", wrapper.CreateVehicle)
	router.GET(baseURL+"/api/v1/vehicles/available", wrapper.ListAvailableVehicles)
	router.POST(baseURL+"/api/v1/vehicles/:vehicleId/active", wrapper.SetVehicleActive)

}
