// Package pgerr maps PostgreSQL errors to the dispatch error taxonomy.
package pgerr

import (
	"context"
	"errors"
	"strings"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Constraint names created by the schema migration.
const (
	ActiveDriverIndex  = "ux_deliveries_active_driver"
	ActiveVehicleIndex = "ux_deliveries_active_vehicle"
	ActiveOrderIndex   = "ux_deliveries_active_order"
	OrderCodeIndex     = "ux_orders_code"
)

var conflictByConstraint = map[string]struct {
	rule     error
	resource string
}{
	ActiveDriverIndex:  {services.ErrResourceAlreadyAssigned, "driver"},
	ActiveVehicleIndex: {services.ErrResourceAlreadyAssigned, "vehicle"},
	ActiveOrderIndex:   {services.ErrResourceAlreadyAssigned, "order"},
	OrderCodeIndex:     {services.ErrDuplicateOrderCode, "order"},
}

// Translate converts err into a ConflictError when it violates one of the
// known unique constraints and into a StoreFailureError otherwise. Domain
// errors pass through unchanged.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if c, ok := conflictByConstraint[pgErr.ConstraintName]; ok {
			return errs.NewConflictErrorWithDetail(c.rule, c.resource, keyValue(pgErr.Detail), pgErr.ConstraintName)
		}
	}

	if isDomainError(err) {
		return err
	}
	return errs.NewStoreFailureError(operation, err)
}

// NotFound returns an ObjectNotFoundError for gorm.ErrRecordNotFound and
// Translate(operation, err) otherwise.
func NotFound(operation, resource string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(resource, id)
	}
	return Translate(operation, err)
}

func isDomainError(err error) bool {
	return errs.IsValidation(err) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrStoreFailure) ||
		errors.Is(err, context.Canceled)
}

// keyValue extracts the offending value from a detail such as
// "Key (driver_id)=(5d7c...) already exists.".
func keyValue(detail string) string {
	_, rest, ok := strings.Cut(detail, ")=(")
	if !ok {
		return ""
	}
	value, _, _ := strings.Cut(rest, ")")
	return value
}
