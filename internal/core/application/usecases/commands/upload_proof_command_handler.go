package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/ports"
)

// ErrProofStorageDisabled is returned when no artifact storage is configured.
var ErrProofStorageDisabled = errors.New("proof storage is not configured")

// UploadProofCommandHandler stores an artifact and attaches its URL.
// The delivery is checked before uploading so unknown ids never create objects.
type UploadProofCommandHandler struct {
	uowFactory UoWFactory
	storage    ports.ProofStorage
	attach     AttachProofCommandHandler
}

// NewUploadProofCommandHandler accepts a nil storage; Handle then returns
// ErrProofStorageDisabled.
func NewUploadProofCommandHandler(uowFactory UoWFactory, storage ports.ProofStorage) UploadProofCommandHandler {
	return UploadProofCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		attach:     NewAttachProofCommandHandler(uowFactory),
	}
}

// Handle returns the public URL of the stored artifact.
func (h UploadProofCommandHandler) Handle(ctx context.Context, cmd UploadProofCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	if h.storage == nil {
		return "", ErrProofStorageDisabled
	}

	if err := h.ensureDeliveryExists(ctx, cmd); err != nil {
		return "", err
	}

	url, err := h.storage.Upload(ctx, cmd.objectKey(), cmd.ContentType(), cmd.Body(), cmd.Size())
	if err != nil {
		return "", err
	}

	photoURL, signatureURL := url, ""
	if cmd.Kind() == ProofSignature {
		photoURL, signatureURL = "", url
	}

	attachCmd, err := NewAttachProofCommand(cmd.DeliveryID(), photoURL, signatureURL, cmd.RequestedBy())
	if err != nil {
		return "", err
	}
	if err = h.attach.Handle(ctx, attachCmd); err != nil {
		return "", err
	}

	return url, nil
}

func (h UploadProofCommandHandler) ensureDeliveryExists(ctx context.Context, cmd UploadProofCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	return err
}
