package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAttachProofCommandIsNotConstructed = errors.New(
	"AttachProofCommand must be created via NewAttachProofCommand constructor",
)

// AttachProofCommand records proof-of-delivery URLs. At least one URL is required.
type AttachProofCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	photoURL     string
	signatureURL string
	requestedBy  string

	guard guard.ConstructorGuard
}

func NewAttachProofCommand(deliveryID kernel.UUID, photoURL, signatureURL, requestedBy string) (AttachProofCommand, error) {
	cmd := AttachProofCommand{
		photoURL:     strings.TrimSpace(photoURL),
		signatureURL: strings.TrimSpace(signatureURL),
		guard:        guard.NewConstructorGuard(),
	}

	var proofErr, requestedByErr error
	if cmd.photoURL == "" && cmd.signatureURL == "" {
		proofErr = delivery.ErrProofIsRequired
	}
	cmd.requestedBy, requestedByErr = requireText("requestingUserId", requestedBy)

	if err := errors.Join(requireID("deliveryId", deliveryID), proofErr, requestedByErr); err != nil {
		return AttachProofCommand{}, err
	}

	cmd.deliveryID = deliveryID
	return cmd, nil
}

func (c AttachProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofCommandIsNotConstructed)
}

func (c AttachProofCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AttachProofCommand) PhotoURL() string {
	return c.photoURL
}

func (c AttachProofCommand) SignatureURL() string {
	return c.signatureURL
}

func (c AttachProofCommand) RequestedBy() string {
	return c.requestedBy
}
