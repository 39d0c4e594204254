package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListReadyOrdersQuery(t *testing.T) {
	t.Run("should leave empty priority unfiltered", func(t *testing.T) {
		query, err := queries.NewListReadyOrdersQuery("", "", "", nil, nil)

		require.NoError(t, err)
		assert.Nil(t, query.Filter().Priority)
		assert.Nil(t, query.Filter().Center)
	})

	t.Run("should parse priority", func(t *testing.T) {
		query, err := queries.NewListReadyOrdersQuery("Central", "High", "", nil, nil)

		require.NoError(t, err)
		require.NotNil(t, query.Filter().Priority)
		assert.Equal(t, order.PriorityHigh, *query.Filter().Priority)
	})

	t.Run("should reject inverted date range", func(t *testing.T) {
		from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		to := from.Add(-time.Hour)

		_, err := queries.NewListReadyOrdersQuery("", "", "", &from, &to)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestListReadyOrdersQueryHandler(t *testing.T) {
	reader := new(MockReader)
	query, err := queries.NewListReadyOrdersQuery("North", "", "ORD", nil, nil)
	require.NoError(t, err)
	views := []queries.OrderView{
		{ID: kernel.NewUUID(), Code: "ORD-2", Priority: "High", Status: "ReadyForDispatch"},
		{ID: kernel.NewUUID(), Code: "ORD-1", Priority: "Normal", Status: "ReadyForDispatch"},
	}
	reader.On("ListReadyForDispatch", mock.Anything, query.Filter()).Return(views, nil).Once()

	result, err := queries.NewListReadyOrdersQueryHandler(reader).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, views, result)
	reader.AssertExpectations(t)
}

func TestGetOrderQueryHandler(t *testing.T) {
	t.Run("should require id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return not found", func(t *testing.T) {
		reader := new(MockReader)
		id := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(id)
		require.NoError(t, err)
		reader.On("GetOrder", mock.Anything, id).Return(queries.OrderView{}, errs.NewObjectNotFoundError("order", id)).Once()

		_, err = queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
