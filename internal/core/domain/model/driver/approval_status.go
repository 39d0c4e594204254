package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ApprovalStatus is the onboarding decision for a driver.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("approvalStatus", fmt.Errorf("%q is not an approval status", s))
	}
}

func (s ApprovalStatus) Validate() error {
	_, err := ParseApprovalStatus(string(s))
	return err
}

func (s ApprovalStatus) String() string {
	return string(s)
}
