package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// MaxProofSize bounds a single uploaded artifact.
const MaxProofSize = 10 << 20

var ErrUploadProofCommandIsNotConstructed = errors.New(
	"UploadProofCommand must be created via NewUploadProofCommand constructor",
)

// ProofKind selects which proof URL an upload fills.
type ProofKind string

const (
	ProofPhoto     ProofKind = "photo"
	ProofSignature ProofKind = "signature"
)

var proofContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// UploadProofCommand carries a proof artifact to be stored before its URL is attached.
type UploadProofCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	kind        ProofKind
	contentType string
	body        io.Reader
	size        int64
	requestedBy string

	guard guard.ConstructorGuard
}

func NewUploadProofCommand(
	deliveryID kernel.UUID,
	kind, contentType string,
	body io.Reader,
	size int64,
	requestedBy string,
) (UploadProofCommand, error) {
	cmd := UploadProofCommand{
		kind:        ProofKind(strings.ToLower(strings.TrimSpace(kind))),
		contentType: strings.ToLower(strings.TrimSpace(contentType)),
		body:        body,
		size:        size,
		guard:       guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList, requireID("deliveryId", deliveryID))
	if cmd.kind != ProofPhoto && cmd.kind != ProofSignature {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%q is neither photo nor signature", kind)))
	}
	if _, ok := proofContentTypes[cmd.contentType]; !ok {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("contentType",
			fmt.Errorf("%q is not accepted", contentType)))
	}
	if body == nil {
		errList = append(errList, errs.NewValueIsRequiredError("file"))
	}
	if size <= 0 || size > MaxProofSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("size", size, 1, MaxProofSize))
	}
	var requestedByErr error
	cmd.requestedBy, requestedByErr = requireText("requestingUserId", requestedBy)
	errList = append(errList, requestedByErr)

	if err := errors.Join(errList...); err != nil {
		return UploadProofCommand{}, err
	}

	cmd.deliveryID = deliveryID
	return cmd, nil
}

func (c UploadProofCommand) Validate() error {
	return c.guard.Validate(ErrUploadProofCommandIsNotConstructed)
}

func (c UploadProofCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UploadProofCommand) Kind() ProofKind {
	return c.kind
}

func (c UploadProofCommand) ContentType() string {
	return c.contentType
}

func (c UploadProofCommand) Body() io.Reader {
	return c.body
}

func (c UploadProofCommand) Size() int64 {
	return c.size
}

func (c UploadProofCommand) RequestedBy() string {
	return c.requestedBy
}

// objectKey is proofs/<deliveryId>/<kind>-<random><ext>.
func (c UploadProofCommand) objectKey() string {
	return fmt.Sprintf("proofs/%s/%s-%s%s", c.deliveryID, c.kind, kernel.NewUUID(), proofContentTypes[c.contentType])
}
