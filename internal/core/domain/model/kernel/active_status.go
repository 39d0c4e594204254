package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ActiveStatus tells whether a driver or vehicle is in service.
type ActiveStatus string

const (
	Active   ActiveStatus = "Active"
	Inactive ActiveStatus = "Inactive"
)

// ParseActiveStatus accepts "Active" or "Inactive".
func ParseActiveStatus(s string) (ActiveStatus, error) {
	switch ActiveStatus(s) {
	case Active, Inactive:
		return ActiveStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("activeStatus", fmt.Errorf("%q is not an active status", s))
	}
}

// ActiveStatusOf maps a boolean flag to an ActiveStatus.
func ActiveStatusOf(active bool) ActiveStatus {
	if active {
		return Active
	}
	return Inactive
}

func (s ActiveStatus) IsActive() bool {
	return s == Active
}

func (s ActiveStatus) String() string {
	return string(s)
}
