package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceDeliveryStatusCommandHandler(t *testing.T) {
	t.Run("should pick up and propagate in transit to order", func(t *testing.T) {
		f := newFixture()
		d, o := testDelivery(t)
		cmd, err := commands.NewAdvanceDeliveryStatusCommand(d.ID(), "PickedUp", "left depot", nil, "driver-app")
		require.NoError(t, err)

		f.expectTx(true)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.deliveries.On("Update", mock.Anything, d).Return(nil).Once()
		f.orders.On("Update", mock.Anything, o).Return(nil).Once()
		f.outbox.On("Add", mock.Anything, mock.MatchedBy(func(events []event.Event) bool {
			return len(events) == 1 &&
				events[0].Type() == event.DeliveryStatusChanged &&
				strings.Contains(string(events[0].Payload()), `"fromStatus":"Assigned"`) &&
				strings.Contains(string(events[0].Payload()), `"status":"PickedUp"`)
		})).Return(nil).Once()

		err = commands.NewAdvanceDeliveryStatusCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, delivery.PickedUp, d.Status())
		assert.Equal(t, order.InTransit, o.Status())
		assert.Len(t, d.Timeline(), 2)
		f.assertExpectations(t)
	})

	t.Run("should accept OnTheWay as in transit", func(t *testing.T) {
		f := newFixture()
		d, o := testDelivery(t)
		cmd, err := commands.NewAdvanceDeliveryStatusCommand(d.ID(), "OnTheWay", "", nil, "driver-app")
		require.NoError(t, err)

		f.expectTx(true)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		f.deliveries.On("Update", mock.Anything, d).Return(nil).Once()
		f.orders.On("Update", mock.Anything, o).Return(nil).Once()
		f.outbox.On("Add", mock.Anything, eventOfType(event.DeliveryStatusChanged)).Return(nil).Once()

		err = commands.NewAdvanceDeliveryStatusCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, d.Status())
		f.assertExpectations(t)
	})

	t.Run("should reject skipping to delivered", func(t *testing.T) {
		f := newFixture()
		d, o := testDelivery(t)
		cmd, err := commands.NewAdvanceDeliveryStatusCommand(d.ID(), "Delivered", "", nil, "driver-app")
		require.NoError(t, err)

		f.expectTx(false)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
		f.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()

		err = commands.NewAdvanceDeliveryStatusCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, kernel.ErrInvalidTransition)
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Len(t, d.Timeline(), 1)
		f.deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should return not found for unknown delivery", func(t *testing.T) {
		f := newFixture()
		id := kernel.NewUUID()
		cmd, err := commands.NewAdvanceDeliveryStatusCommand(id, "Failed", "", nil, "driver-app")
		require.NoError(t, err)

		f.expectTx(false)
		f.deliveries.On("GetForUpdate", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("delivery", id)).Once()

		err = commands.NewAdvanceDeliveryStatusCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.assertExpectations(t)
	})
}

func TestRecordPositionCommandHandler(t *testing.T) {
	t.Run("should store newer position", func(t *testing.T) {
		f := newFixture()
		d, _ := testDelivery(t)
		reportedAt := fixtureTime.Add(time.Minute)
		cmd, err := commands.NewRecordPositionCommand(d.ID(), 52.1, 4.3, nil, nil, reportedAt)
		require.NoError(t, err)

		f.expectTx(true)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
		f.deliveries.On("Update", mock.Anything, d).Return(nil).Once()

		err = commands.NewRecordPositionCommandHandler(f.factory, 0).Handle(t.Context(), cmd)

		require.NoError(t, err)
		require.NotNil(t, d.LastKnownPosition())
		assert.InDelta(t, 52.1, d.LastKnownPosition().Point().Lat(), 1e-9)
		f.assertExpectations(t)
	})

	t.Run("should acknowledge stale report without writing", func(t *testing.T) {
		f := newFixture()
		d, _ := testDelivery(t)
		point, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)
		latest, err := delivery.NewPosition(point, nil, nil, fixtureTime.Add(time.Hour))
		require.NoError(t, err)
		_, _, err = d.RecordPosition(latest, fixtureTime.Add(time.Hour), 0)
		require.NoError(t, err)

		cmd, err := commands.NewRecordPositionCommand(d.ID(), 2, 2, nil, nil, fixtureTime.Add(time.Minute))
		require.NoError(t, err)

		f.expectTx(false)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()

		err = commands.NewRecordPositionCommandHandler(f.factory, 0).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, d.LastKnownPosition().Point().Lat(), 1e-9)
		f.deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should not let a future-dated report hide later ones", func(t *testing.T) {
		f := newFixture()
		d, _ := testDelivery(t)
		handler := commands.NewRecordPositionCommandHandler(f.factory, time.Minute)

		f.expectTx(true)
		f.expectTx(true)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Twice()
		f.deliveries.On("Update", mock.Anything, d).Return(nil).Twice()

		skewed, err := commands.NewRecordPositionCommand(d.ID(), 10, 10, nil, nil, time.Now().AddDate(74, 0, 0))
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), skewed))
		require.False(t, d.LastKnownPosition().Timestamp().After(time.Now()))

		current, err := commands.NewRecordPositionCommand(d.ID(), 20, 20, nil, nil, time.Now())
		require.NoError(t, err)
		require.NoError(t, handler.Handle(t.Context(), current))

		assert.InDelta(t, 20.0, d.LastKnownPosition().Point().Lat(), 1e-9)
		assert.False(t, d.LastActivityAt().After(time.Now()))
		for _, e := range d.Timeline() {
			assert.False(t, e.Timestamp().After(time.Now()))
		}
		f.assertExpectations(t)
	})

	t.Run("should reject position for finished delivery", func(t *testing.T) {
		f := newFixture()
		d, _ := testDelivery(t)
		require.NoError(t, d.AdvanceStatus(delivery.Failed, "", nil, fixtureTime))
		cmd, err := commands.NewRecordPositionCommand(d.ID(), 2, 2, nil, nil, fixtureTime.Add(time.Minute))
		require.NoError(t, err)

		f.expectTx(false)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()

		err = commands.NewRecordPositionCommandHandler(f.factory, 0).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, kernel.ErrInvalidTransition)
		f.assertExpectations(t)
	})
}

func TestAttachProofCommandHandler(t *testing.T) {
	t.Run("should merge proof and emit event", func(t *testing.T) {
		f := newFixture()
		d, _ := testDelivery(t)
		cmd, err := commands.NewAttachProofCommand(d.ID(), "https://cdn.example.com/p.jpg", "", "driver-app")
		require.NoError(t, err)

		f.expectTx(true)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
		f.deliveries.On("Update", mock.Anything, d).Return(nil).Once()
		f.outbox.On("Add", mock.Anything, eventOfType(event.DeliveryProofAttached)).Return(nil).Once()

		err = commands.NewAttachProofCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/p.jpg", d.Proof().PhotoURL())
		f.assertExpectations(t)
	})

	t.Run("should reject command without any url", func(t *testing.T) {
		_, err := commands.NewAttachProofCommand(kernel.NewUUID(), " ", "", "driver-app")

		require.ErrorIs(t, err, delivery.ErrProofIsRequired)
	})
}

func TestUploadProofCommandHandler(t *testing.T) {
	newCommand := func(t *testing.T, id kernel.UUID, kind string) commands.UploadProofCommand {
		t.Helper()
		cmd, err := commands.NewUploadProofCommand(id, kind, "image/png", strings.NewReader("png"), 3, "driver-app")
		require.NoError(t, err)
		return cmd
	}

	t.Run("should upload signature and attach its url", func(t *testing.T) {
		f := newFixture()
		storage := new(MockProofStorage)
		d, _ := testDelivery(t)
		cmd := newCommand(t, d.ID(), "signature")
		url := "https://bucket.s3.amazonaws.com/proofs/x.png"

		f.uow.On("Begin", mock.Anything).Return(nil).Twice()
		f.uow.On("Rollback", mock.Anything).Return(nil).Twice()
		f.uow.On("Commit", mock.Anything).Return(nil).Once()
		f.deliveries.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
		storage.On("Upload", mock.Anything,
			mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "proofs/"+d.ID().String()+"/signature-") && strings.HasSuffix(key, ".png")
			}),
			"image/png", mock.Anything, int64(3)).Return(url, nil).Once()
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
		f.deliveries.On("Update", mock.Anything, d).Return(nil).Once()
		f.outbox.On("Add", mock.Anything, eventOfType(event.DeliveryProofAttached)).Return(nil).Once()

		got, err := commands.NewUploadProofCommandHandler(f.factory, storage).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, url, got)
		assert.Equal(t, url, d.Proof().SignatureURL())
		assert.Empty(t, d.Proof().PhotoURL())
		storage.AssertExpectations(t)
		f.assertExpectations(t)
	})

	t.Run("should not upload for unknown delivery", func(t *testing.T) {
		f := newFixture()
		storage := new(MockProofStorage)
		id := kernel.NewUUID()

		f.expectTx(false)
		f.deliveries.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("delivery", id)).Once()

		_, err := commands.NewUploadProofCommandHandler(f.factory, storage).Handle(t.Context(), newCommand(t, id, "photo"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("should report disabled storage", func(t *testing.T) {
		f := newFixture()

		_, err := commands.NewUploadProofCommandHandler(f.factory, nil).Handle(t.Context(), newCommand(t, kernel.NewUUID(), "photo"))

		require.ErrorIs(t, err, commands.ErrProofStorageDisabled)
		f.factory.AssertNotCalled(t, "Create")
	})

	t.Run("should return storage failure", func(t *testing.T) {
		f := newFixture()
		storage := new(MockProofStorage)
		d, _ := testDelivery(t)
		uploadErr := errors.New("access denied")

		f.expectTx(false)
		f.deliveries.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
		storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", uploadErr).Once()

		_, err := commands.NewUploadProofCommandHandler(f.factory, storage).Handle(t.Context(), newCommand(t, d.ID(), "photo"))

		require.ErrorIs(t, err, uploadErr)
		assert.True(t, d.Proof().IsEmpty())
		f.assertExpectations(t)
	})
}

func TestSetVerificationCommandHandler(t *testing.T) {
	t.Run("should verify delivery in any status", func(t *testing.T) {
		f := newFixture()
		d, _ := testDelivery(t)
		cmd, err := commands.NewSetVerificationCommand(d.ID(), true, "officer-1")
		require.NoError(t, err)

		f.expectTx(true)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()
		f.deliveries.On("Update", mock.Anything, d).Return(nil).Once()
		f.outbox.On("Add", mock.Anything, mock.MatchedBy(func(events []event.Event) bool {
			return len(events) == 1 && strings.Contains(string(events[0].Payload()), `"verified":true`)
		})).Return(nil).Once()

		err = commands.NewSetVerificationCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, d.IsVerified())
		assert.Equal(t, delivery.Assigned, d.Status())
		f.assertExpectations(t)
	})

	t.Run("should acknowledge unchanged value without event", func(t *testing.T) {
		f := newFixture()
		d, _ := testDelivery(t)
		cmd, err := commands.NewSetVerificationCommand(d.ID(), false, "officer-1")
		require.NoError(t, err)

		f.expectTx(false)
		f.deliveries.On("GetForUpdate", mock.Anything, d.ID()).Return(d, nil).Once()

		err = commands.NewSetVerificationCommandHandler(f.factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		f.outbox.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}
