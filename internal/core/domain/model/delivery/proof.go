package delivery

import (
	"net/url"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

// Proof is the proof-of-delivery evidence. Absence of a URL is a valid state.
type Proof struct {
	photoURL     string
	signatureURL string
	timestamp    *time.Time
}

// RestoreProof rebuilds persisted proof.
func RestoreProof(photoURL, signatureURL string, timestamp *time.Time) Proof {
	return Proof{photoURL: photoURL, signatureURL: signatureURL, timestamp: timestamp}
}

func (p Proof) PhotoURL() string {
	return p.photoURL
}

func (p Proof) SignatureURL() string {
	return p.signatureURL
}

func (p Proof) Timestamp() *time.Time {
	return p.timestamp
}

// IsEmpty reports whether no evidence was ever attached.
func (p Proof) IsEmpty() bool {
	return p.photoURL == "" && p.signatureURL == ""
}

func validateProofURL(name, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "s3" {
		return "", errs.NewValueIsInvalidError(name)
	}
	return raw, nil
}
