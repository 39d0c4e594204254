package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the pipeline state of an order.
//
// State transitions:
//
//	Pending ──> ReadyForDispatch ──> Assigned ──> InTransit ──> Delivered
//	   │              │    │            │             │
//	   └──> Cancelled <┘    └────────────┴─────────────┴──> Failed
//
// The numeric order of the constants follows the happy path, so a sequence of
// observed statuses never decreases.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Pending is the initial status set by order intake.
	Pending
	// ReadyForDispatch is set once inventory processing has cleared the order.
	ReadyForDispatch
	// Assigned means a delivery binds the order to a driver and vehicle.
	Assigned
	// InTransit means the driver has started moving the order.
	InTransit
	// Delivered is terminal.
	Delivered
	// Failed is terminal.
	Failed
	// Cancelled is terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:          "Unknown",
	Pending:          "Pending",
	ReadyForDispatch: "ReadyForDispatch",
	Assigned:         "Assigned",
	InTransit:        "InTransit",
	Delivered:        "Delivered",
	Failed:           "Failed",
	Cancelled:        "Cancelled",
}

// transitions is the pipeline transition table keyed by source status.
var transitions = map[Status][]Status{
	Pending:          {ReadyForDispatch, Cancelled},
	ReadyForDispatch: {Assigned, Failed, Cancelled},
	Assigned:         {InTransit, Failed},
	InTransit:        {Delivered, Failed},
}

// ParseStatus resolves a status by its name. Unknown is not accepted.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

// Validate checks that s is one of the defined statuses.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// CanTransitionTo reports whether the table allows s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
