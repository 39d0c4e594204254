package kernel

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Center is a distribution center. It scopes which drivers, vehicles and
// orders may be matched together.
type Center string

const (
	CenterNorth   Center = "North"
	CenterSouth   Center = "South"
	CenterEast    Center = "East"
	CenterWest    Center = "West"
	CenterCentral Center = "Central"
)

// Centers lists the fixed set of distribution centers.
func Centers() []Center {
	return []Center{CenterNorth, CenterSouth, CenterEast, CenterWest, CenterCentral}
}

// ParseCenter resolves a center name case-insensitively.
//
// Returns:
//   - Center: one of Centers()
//   - error: ValueIsRequired for a blank name, ValueIsInvalid for an unknown one
//
// Example:
//
//	c, _ := kernel.ParseCenter(" north ") // kernel.CenterNorth
func ParseCenter(s string) (Center, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("center")
	}
	for _, c := range Centers() {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("center", fmt.Errorf("%q is not a distribution center", s))
}

// Validate rejects values outside of Centers().
func (c Center) Validate() error {
	for _, known := range Centers() {
		if c == known {
			return nil
		}
	}
	if c == "" {
		return errs.NewValueIsRequiredError("center")
	}
	return errs.NewValueIsInvalidErrorWithCause("center", fmt.Errorf("%q is not a distribution center", string(c)))
}

func (c Center) String() string {
	return string(c)
}
