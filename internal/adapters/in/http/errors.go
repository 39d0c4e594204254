package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

// Error names carried in the "error" field of every failure body.
const (
	ErrorValidation           = "ValidationError"
	ErrorNotFound             = "NotFound"
	ErrorConflict             = "Conflict"
	ErrorStoreFailure         = "StoreFailure"
	ErrorProofStorageDisabled = "ProofStorageDisabled"
	ErrorInternal             = "InternalError"
)

var ruleNames = []struct {
	rule error
	name string
}{
	{services.ErrOrderNotDispatchable, "OrderNotDispatchable"},
	{services.ErrDriverCenterMismatch, "DriverCenterMismatch"},
	{services.ErrDriverIneligible, "DriverIneligible"},
	{services.ErrVehicleCenterMismatch, "VehicleCenterMismatch"},
	{services.ErrVehicleIneligible, "VehicleIneligible"},
	{services.ErrResourceAlreadyAssigned, "ResourceAlreadyAssigned"},
	{services.ErrDuplicateOrderCode, "DuplicateOrderCode"},
	{kernel.ErrInvalidTransition, "InvalidTransition"},
}

// problem converts err into a status code and response body. Internal errors
// never leak their cause.
func problem(err error) (int, servers.Error) {
	var (
		conflict *errs.ConflictError
		notFound *errs.ObjectNotFoundError
		store    *errs.StoreFailureError
		request  *openapi3filter.RequestError
		httpErr  *echo.HTTPError
	)

	switch {
	case errs.IsValidation(err):
		details := map[string]interface{}{"fields": invalidFields(err)}
		return body(http.StatusBadRequest, ErrorValidation, err.Error(), &details)

	case errors.As(err, &notFound):
		details := map[string]interface{}{"resource": notFound.ParamName, "id": fmt.Sprint(notFound.ID)}
		return body(http.StatusNotFound, ErrorNotFound, err.Error(), &details)

	case errors.As(err, &conflict):
		details := map[string]interface{}{"resource": conflict.Resource, "id": fmt.Sprint(conflict.ID)}
		if conflict.Detail != "" {
			details["detail"] = conflict.Detail
		}
		return body(http.StatusConflict, ruleName(conflict.Rule), err.Error(), &details)

	case errors.As(err, &store):
		return body(http.StatusServiceUnavailable, ErrorStoreFailure,
			"the store is unavailable, retry later", nil)

	case errors.Is(err, commands.ErrProofStorageDisabled):
		return body(http.StatusNotImplemented, ErrorProofStorageDisabled, err.Error(), nil)

	case errors.As(err, &request):
		var details *map[string]interface{}
		if request.Parameter != nil {
			d := map[string]interface{}{"fields": []string{request.Parameter.Name}}
			details = &d
		}
		return body(http.StatusBadRequest, ErrorValidation, request.Error(), details)

	case errors.As(err, &httpErr):
		code := httpErr.Code
		name := strings.ReplaceAll(http.StatusText(code), " ", "")
		if code == http.StatusBadRequest {
			name = ErrorValidation
		}
		return body(code, name, fmt.Sprint(httpErr.Message), nil)

	default:
		return body(http.StatusInternalServerError, ErrorInternal, "internal server error", nil)
	}
}

func body(code int, name, message string, details *map[string]interface{}) (int, servers.Error) {
	return code, servers.Error{Code: code, Error: name, Message: message, Details: details}
}

func ruleName(rule error) string {
	for _, r := range ruleNames {
		if errors.Is(rule, r.rule) {
			return r.name
		}
	}
	return ErrorConflict
}

// invalidFields lists the parameters named by every validation error joined into err.
func invalidFields(err error) []string {
	fields := []string{}
	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) {
		case *errs.ValueIsRequiredError:
			fields = append(fields, v.ParamName)
			return
		case *errs.ValueIsInvalidError:
			fields = append(fields, v.ParamName)
			return
		case *errs.ValueIsOutOfRangeError:
			fields = append(fields, v.ParamName)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := u.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	return fields
}

// ErrorHandler renders every error returned by a handler or middleware.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, payload := problem(err)
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", code,
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, payload)
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
