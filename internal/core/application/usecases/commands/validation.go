package commands

import (
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const maxNoteLength = 1000

func requireID(name string, id kernel.UUID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireText(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(name)
	}
	return value, nil
}

func optionalNote(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) > maxNoteLength {
		return "", errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("length %d exceeds %d", len(value), maxNoteLength))
	}
	return value, nil
}
