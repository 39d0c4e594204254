package pgerr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("should map active driver index to resource already assigned", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: pgerr.ActiveDriverIndex,
			Detail:         "Key (driver_id)=(8b1f6c1e-0000-4000-8000-000000000001) already exists.",
		}

		err := pgerr.Translate("insert delivery", fmt.Errorf("wrapped: %w", pgErr))

		require.ErrorIs(t, err, services.ErrResourceAlreadyAssigned)
		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "driver", conflict.Resource)
		assert.Equal(t, "8b1f6c1e-0000-4000-8000-000000000001", conflict.ID)
	})

	t.Run("should map order code index to duplicate code", func(t *testing.T) {
		err := pgerr.Translate("insert order", &pgconn.PgError{Code: "23505", ConstraintName: pgerr.OrderCodeIndex})

		require.ErrorIs(t, err, services.ErrDuplicateOrderCode)
	})

	t.Run("should wrap unknown failures as store failure", func(t *testing.T) {
		cause := errors.New("connection reset")

		err := pgerr.Translate("update order", cause)

		require.ErrorIs(t, err, errs.ErrStoreFailure)
		require.ErrorIs(t, err, cause)
	})

	t.Run("should pass domain errors through", func(t *testing.T) {
		domainErr := errs.NewValueIsRequiredError("id")

		assert.Same(t, domainErr, pgerr.Translate("x", domainErr))
		assert.ErrorIs(t, pgerr.Translate("x", context.Canceled), context.Canceled)
		assert.NoError(t, pgerr.Translate("x", nil))
	})
}

func TestNotFound(t *testing.T) {
	err := pgerr.NotFound("get driver", "driver", "d-1", gorm.ErrRecordNotFound)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "driver d-1")
}
