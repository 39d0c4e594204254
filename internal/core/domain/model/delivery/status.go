package delivery

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
//	Assigned ──> PickedUp ──> InTransit ──> Delivered
//	    │            │            ▲  │
//	    └────────────┼────────────┘  │
//	    └────────────┴───────────────┴──> Failed
type Status int

const (
	Unknown Status = iota
	Assigned
	PickedUp
	InTransit
	Delivered
	Failed
)

// aliasOnTheWay is accepted on input and resolves to InTransit.
const aliasOnTheWay = "OnTheWay"

var statusNames = map[Status]string{
	Unknown:   "Unknown",
	Assigned:  "Assigned",
	PickedUp:  "PickedUp",
	InTransit: "InTransit",
	Delivered: "Delivered",
	Failed:    "Failed",
}

var transitions = map[Status][]Status{
	Assigned:  {PickedUp, InTransit, Failed},
	PickedUp:  {InTransit, Failed},
	InTransit: {Delivered, Failed},
}

// NonTerminal lists the statuses that hold a driver and a vehicle.
func NonTerminal() []Status {
	return []Status{Assigned, PickedUp, InTransit}
}

// ParseStatus resolves a status name case-insensitively. "OnTheWay" is a
// display alias of InTransit.
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	if strings.EqualFold(trimmed, aliasOnTheWay) {
		return InTransit, nil
	}
	for status, name := range statusNames {
		if status != Unknown && strings.EqualFold(name, trimmed) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
