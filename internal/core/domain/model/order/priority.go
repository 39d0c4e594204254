package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Priority orders the dispatch queue; High orders are listed first.
type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
)

// ParsePriority accepts "Normal" or "High"; an empty string means Normal.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return PriorityNormal, nil
	case PriorityNormal, PriorityHigh:
		return Priority(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a priority", s))
	}
}

func (p Priority) Validate() error {
	if p != PriorityNormal && p != PriorityHigh {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a priority", string(p)))
	}
	return nil
}

// Rank is used for sorting: higher rank is dispatched first.
func (p Priority) Rank() int {
	if p == PriorityHigh {
		return 1
	}
	return 0
}

func (p Priority) String() string {
	return string(p)
}
