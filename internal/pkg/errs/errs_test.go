package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driver", "123")

		assert.Equal(t, "driver", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: driver 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("order", "ORD-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order ORD-1 (cause: record not found)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("center")

		assert.Equal(t, "center", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: center", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("Nowhere is not a center")
		err := errs.NewValueIsInvalidErrorWithCause("center", cause)

		assert.Equal(t, "value is invalid: center (cause: Nowhere is not a center)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 91.0, -90.0, 90.0)

		assert.Equal(t, "lat", err.ParamName)
		assert.Equal(t, 91.0, err.Value)
		assert.Equal(t, "value is out of range: lat is 91, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("multiline values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredErrorWithCause("driverId", errors.New("empty"))

	assert.Equal(t, "value is required: driverId (cause: empty)", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	rule := errors.New("resource already assigned")

	t.Run("unwraps to kind and rule", func(t *testing.T) {
		err := errs.NewConflictError(rule, "driver", "d-1")

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, rule)
		assert.Equal(t, "conflict: driver d-1: resource already assigned", err.Error())
	})

	t.Run("detail is appended", func(t *testing.T) {
		err := errs.NewConflictErrorWithDetail(rule, "vehicle", "v-1", "bound to delivery x")

		assert.Equal(t, "conflict: vehicle v-1: resource already assigned (bound to delivery x)", err.Error())
	})

	t.Run("wrapped conflict is still detectable", func(t *testing.T) {
		var target *errs.ConflictError
		err := errors.Join(errors.New("outer"), errs.NewConflictError(rule, "order", "o-1"))

		require.ErrorAs(t, err, &target)
		assert.Equal(t, "order", target.Resource)
	})
}

func TestStoreFailureError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewStoreFailureError("insert delivery", cause)

	require.ErrorIs(t, err, errs.ErrStoreFailure)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "store failure: insert delivery (cause: connection refused)", err.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("x")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("x")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("x", 1, 2, 3)))
	assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("x", 1)))
	assert.False(t, errs.IsValidation(errs.NewConflictError(errors.New("r"), "x", 1)))
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "conflict", errs.ErrConflict.Error())
	assert.Equal(t, "store failure", errs.ErrStoreFailure.Error())
}
